package handler

import (
	"context"
	"errors"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/economics"
	"github.com/pkordes/trip-planner/internal/handler/gen"
	"github.com/pkordes/trip-planner/internal/service"
)

// GetSharedTripList handles GET /shared/{token}. No authentication.
func (s *Server) GetSharedTripList(ctx context.Context, req gen.GetSharedTripListRequestObject) (gen.GetSharedTripListResponseObject, error) {
	shared, err := s.share.GetList(ctx, req.Token)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetSharedTripList404JSONResponse(notFoundBody("trip list not found")), nil
		}
		return nil, err
	}
	return gen.GetSharedTripList200JSONResponse{
		List:  tripListToResponse(shared.List),
		Trips: tripsToResponse(shared.Trips),
	}, nil
}

// GetSharedTrip handles GET /shared/{token}/trips/{tripId}.
// The comparison is drawn against the other trips of the shared list.
func (s *Server) GetSharedTrip(ctx context.Context, req gen.GetSharedTripRequestObject) (gen.GetSharedTripResponseObject, error) {
	trip, peers, err := s.share.GetTrip(ctx, req.Token, req.TripId)
	if err != nil {
		if errors.Is(err, service.ErrTripNotInList) {
			return gen.GetSharedTrip404JSONResponse(notFoundBody("trip not found in list")), nil
		}
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetSharedTrip404JSONResponse(notFoundBody("trip list not found")), nil
		}
		return nil, err
	}
	return gen.GetSharedTrip200JSONResponse{
		Trip:       tripToResponse(trip),
		Comparison: projectionToResponse(economics.Project(trip, peers)),
	}, nil
}
