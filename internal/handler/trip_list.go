package handler

import (
	"context"
	"errors"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/handler/gen"
)

// ListTripLists handles GET /trip-lists.
func (s *Server) ListTripLists(ctx context.Context, _ gen.ListTripListsRequestObject) (gen.ListTripListsResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	lists, err := s.lists.List(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := make(gen.ListTripLists200JSONResponse, len(lists))
	for i, l := range lists {
		resp[i] = tripListToResponse(l)
	}
	return resp, nil
}

// CreateTripList handles POST /trip-lists.
func (s *Server) CreateTripList(ctx context.Context, req gen.CreateTripListRequestObject) (gen.CreateTripListResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.CreateTripList422JSONResponse(requestBody("request body is required")), nil
	}

	list, err := s.lists.Create(ctx, userID, req.Body.Name)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTripList422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.CreateTripList201JSONResponse(tripListToResponse(list)), nil
}

// GetTripList handles GET /trip-lists/{id}.
func (s *Server) GetTripList(ctx context.Context, req gen.GetTripListRequestObject) (gen.GetTripListResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.lists.GetByID(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTripList404JSONResponse(notFoundBody("trip list not found")), nil
		}
		return nil, err
	}
	return gen.GetTripList200JSONResponse(tripListToResponse(list)), nil
}

// RenameTripList handles PUT /trip-lists/{id}.
func (s *Server) RenameTripList(ctx context.Context, req gen.RenameTripListRequestObject) (gen.RenameTripListResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.RenameTripList422JSONResponse(requestBody("request body is required")), nil
	}

	list, err := s.lists.Rename(ctx, userID, req.Id, req.Body.Name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.RenameTripList404JSONResponse(notFoundBody("trip list not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.RenameTripList422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}
	return gen.RenameTripList200JSONResponse(tripListToResponse(list)), nil
}

// DeleteTripList handles DELETE /trip-lists/{id}.
func (s *Server) DeleteTripList(ctx context.Context, req gen.DeleteTripListRequestObject) (gen.DeleteTripListResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.lists.Delete(ctx, userID, req.Id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteTripList404JSONResponse(notFoundBody("trip list not found")), nil
		}
		return nil, err
	}
	return gen.DeleteTripList204Response{}, nil
}

// ShareTripList handles POST /trip-lists/{id}/share.
func (s *Server) ShareTripList(ctx context.Context, req gen.ShareTripListRequestObject) (gen.ShareTripListResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.lists.Share(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.ShareTripList404JSONResponse(notFoundBody("trip list not found")), nil
		}
		return nil, err
	}
	return gen.ShareTripList200JSONResponse(tripListToResponse(list)), nil
}

// UnshareTripList handles DELETE /trip-lists/{id}/share.
func (s *Server) UnshareTripList(ctx context.Context, req gen.UnshareTripListRequestObject) (gen.UnshareTripListResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	list, err := s.lists.Unshare(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UnshareTripList404JSONResponse(notFoundBody("trip list not found")), nil
		}
		return nil, err
	}
	return gen.UnshareTripList200JSONResponse(tripListToResponse(list)), nil
}

// tripListToResponse converts a domain.TripList into the generated type.
// The token is only exposed while the list is shared.
func tripListToResponse(l domain.TripList) gen.TripList {
	resp := gen.TripList{
		Id:        l.ID,
		Name:      l.Name,
		Shared:    l.IsShared(),
		CreatedAt: l.CreatedAt,
	}
	if l.IsShared() {
		token := *l.ShareToken
		resp.ShareToken = &token
	}
	return resp
}
