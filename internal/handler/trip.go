package handler

import (
	"context"
	"errors"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/economics"
	"github.com/pkordes/trip-planner/internal/handler/gen"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
)

// CreateTrip handles POST /trips.
func (s *Server) CreateTrip(ctx context.Context, req gen.CreateTripRequestObject) (gen.CreateTripResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := requestToPendingTrip(req.Body)
	if err != nil {
		return gen.CreateTrip422JSONResponse(requestBody(err.Error())), nil
	}

	created, err := s.trips.Create(ctx, userID, pending)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.CreateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.CreateTrip201JSONResponse(tripToResponse(created)), nil
}

// PreviewTrip handles POST /trips/preview.
// Nothing is stored; the response carries the same figures a saved trip would.
func (s *Server) PreviewTrip(ctx context.Context, req gen.PreviewTripRequestObject) (gen.PreviewTripResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := requestToPendingTrip(req.Body)
	if err != nil {
		return gen.PreviewTrip422JSONResponse(requestBody(err.Error())), nil
	}

	summary, projection, err := s.trips.Preview(ctx, userID, pending)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return gen.PreviewTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.PreviewTrip200JSONResponse{
		Summary:    summaryToResponse(summary),
		Comparison: projectionToResponse(projection),
	}, nil
}

// ListTrips handles GET /trips.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100),
// plus ?list_id= or ?unlisted=true to narrow to one group.
func (s *Server) ListTrips(ctx context.Context, req gen.ListTripsRequestObject) (gen.ListTripsResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)
	filter := repo.TripFilter{ListID: req.Params.ListId}
	if filter.ListID == nil && req.Params.Unlisted != nil {
		filter.Unlisted = *req.Params.Unlisted
	}

	trips, total, err := s.trips.ListPaged(ctx, userID, filter, params)
	if err != nil {
		return nil, err
	}

	return gen.ListTrips200JSONResponse{
		Data: tripsToResponse(trips),
		Pagination: gen.Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	}, nil
}

// GetTrip handles GET /trips/{id}.
func (s *Server) GetTrip(ctx context.Context, req gen.GetTripRequestObject) (gen.GetTripResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	trip, err := s.trips.GetByID(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTrip200JSONResponse(tripToResponse(trip)), nil
}

// UpdateTrip handles PUT /trips/{id}.
func (s *Server) UpdateTrip(ctx context.Context, req gen.UpdateTripRequestObject) (gen.UpdateTripResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := requestToPendingTrip(req.Body)
	if err != nil {
		return gen.UpdateTrip422JSONResponse(requestBody(err.Error())), nil
	}

	updated, err := s.trips.Update(ctx, userID, req.Id, pending)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.UpdateTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.UpdateTrip422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.UpdateTrip200JSONResponse(tripToResponse(updated)), nil
}

// DeleteTrip handles DELETE /trips/{id}.
func (s *Server) DeleteTrip(ctx context.Context, req gen.DeleteTripRequestObject) (gen.DeleteTripResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	err = s.trips.Delete(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DeleteTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.DeleteTrip204Response{}, nil
}

// DuplicateTrip handles POST /trips/{id}/duplicate.
func (s *Server) DuplicateTrip(ctx context.Context, req gen.DuplicateTripRequestObject) (gen.DuplicateTripResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	dup, err := s.trips.Duplicate(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.DuplicateTrip404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.DuplicateTrip201JSONResponse(tripToResponse(dup)), nil
}

// EditTripSchedule handles PATCH /trips/{id}/schedule.
func (s *Server) EditTripSchedule(ctx context.Context, req gen.EditTripScheduleRequestObject) (gen.EditTripScheduleResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	if req.Body == nil {
		return gen.EditTripSchedule422JSONResponse(requestBody("request body is required")), nil
	}
	edit := service.ScheduleEdit{
		Field:  service.ScheduleField(req.Body.Field),
		Date:   derefString(req.Body.Date),
		Nights: derefInt(req.Body.Nights),
	}

	updated, err := s.trips.EditSchedule(ctx, userID, req.Id, edit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.EditTripSchedule404JSONResponse(notFoundBody("trip not found")), nil
		}
		if errors.Is(err, domain.ErrValidation) {
			return gen.EditTripSchedule422JSONResponse(validationBody(err)), nil
		}
		return nil, err
	}

	return gen.EditTripSchedule200JSONResponse(tripToResponse(updated)), nil
}

// GetTripComparison handles GET /trips/{id}/comparison.
func (s *Server) GetTripComparison(ctx context.Context, req gen.GetTripComparisonRequestObject) (gen.GetTripComparisonResponseObject, error) {
	userID, err := currentUser(ctx)
	if err != nil {
		return nil, err
	}
	projection, err := s.trips.Compare(ctx, userID, req.Id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return gen.GetTripComparison404JSONResponse(notFoundBody("trip not found")), nil
		}
		return nil, err
	}

	return gen.GetTripComparison200JSONResponse(projectionToResponse(projection)), nil
}

// --- mapping helpers --------------------------------------------------------

// requestToPendingTrip converts a TripInput body into a domain.PendingTrip.
// Absent numbers become zero; nullable ones stay nil.
func requestToPendingTrip(body *gen.TripInput) (domain.PendingTrip, error) {
	if body == nil {
		return domain.PendingTrip{}, errors.New("request body is required")
	}
	p := domain.PendingTrip{
		Name:                     body.Name,
		Fun:                      derefInt(body.Fun),
		Nights:                   derefInt(body.Nights),
		Adults:                   derefInt(body.Adults),
		Children:                 body.Children,
		FlightCostPerSeat:        body.FlightCostPerSeat,
		FlightCost:               body.FlightCost,
		TaxiOrRentalCar:          derefFloat(body.TaxiOrRentalCar),
		Entertainment:            derefFloat(body.Entertainment),
		SkiPassPerDay:            derefFloat(body.SkiPassPerDay),
		Childcare:                derefFloat(body.Childcare),
		LodgingTotal:             derefFloat(body.LodgingTotal),
		LodgingPerNight:          derefFloat(body.LodgingPerNight),
		LodgingPerPersonPerNight: derefFloat(body.LodgingPerPersonPerNight),
		FlightURL:                derefString(body.FlightUrl),
		LodgingURL:               derefString(body.LodgingUrl),
		TripListID:               body.TripListId,
	}
	if body.Arrive != nil {
		a := body.Arrive.Time
		p.Arrive = &a
	}
	if body.Depart != nil {
		d := body.Depart.Time
		p.Depart = &d
	}
	return p, nil
}

// tripToResponse converts a domain.Trip into the generated gen.Trip type,
// computing its summary on the way out.
func tripToResponse(t domain.Trip) gen.Trip {
	resp := gen.Trip{
		Id:                       t.ID,
		Name:                     t.Name,
		Fun:                      t.Fun,
		Nights:                   t.Nights,
		Adults:                   t.Adults,
		Children:                 t.Children,
		FlightCostPerSeat:        t.FlightCostPerSeat,
		FlightCost:               t.FlightCost,
		TaxiOrRentalCar:          t.TaxiOrRentalCar,
		Entertainment:            t.Entertainment,
		SkiPassPerDay:            t.SkiPassPerDay,
		Childcare:                t.Childcare,
		LodgingTotal:             t.LodgingTotal,
		LodgingPerNight:          t.LodgingPerNight,
		LodgingPerPersonPerNight: t.LodgingPerPersonPerNight,
		TripListId:               t.TripListID,
		Summary:                  summaryToResponse(economics.Summarize(t.PendingTrip)),
		CreatedAt:                t.CreatedAt,
		UpdatedAt:                t.UpdatedAt,
	}
	if t.Arrive != nil {
		resp.Arrive = &openapi_types.Date{Time: *t.Arrive}
	}
	if t.Depart != nil {
		resp.Depart = &openapi_types.Date{Time: *t.Depart}
	}
	if t.FlightURL != "" {
		resp.FlightUrl = &t.FlightURL
	}
	if t.LodgingURL != "" {
		resp.LodgingUrl = &t.LodgingURL
	}
	return resp
}

func tripsToResponse(trips []domain.Trip) []gen.Trip {
	out := make([]gen.Trip, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	return out
}

func summaryToResponse(s economics.Summary) gen.TripSummary {
	return gen.TripSummary{
		Nights:       s.Nights,
		Travelers:    s.Travelers,
		Flight:       s.Flight,
		Travel:       s.Travel,
		LodgingTotal: s.LodgingTotal,
		ExpenseTotal: s.ExpenseTotal,
		TotalCost:    s.TotalCost,
		Score:        s.Score,
		DateMode:     gen.DateMode(s.DateMode),
		Links: gen.TripLinks{
			Airbnb:  s.AirbnbLink,
			Flights: s.FlightLink,
			Hotels:  s.HotelsLink,
		},
	}
}

// projectionToResponse maps a projection onto the comparison schema.
// A nil projection (nothing scored) is reported as unavailable.
func projectionToResponse(p *economics.Projection) gen.Comparison {
	if p == nil {
		return gen.Comparison{Available: false, Points: []gen.Marker{}}
	}
	lowest := markerToResponse(p.Lowest)
	highest := markerToResponse(p.Highest)
	c := gen.Comparison{
		Available: true,
		Lowest:    &lowest,
		Highest:   &highest,
		Points:    make([]gen.Marker, len(p.Points)),
	}
	if p.Current != nil {
		current := markerToResponse(*p.Current)
		c.Current = &current
	}
	for i, m := range p.Points {
		c.Points[i] = markerToResponse(m)
	}
	return c
}

func markerToResponse(m economics.Marker) gen.Marker {
	out := gen.Marker{
		Name:     m.Name,
		Score:    m.Score,
		Position: m.Position,
		Align:    gen.Align(m.Align),
	}
	if m.TripID != uuid.Nil {
		id := m.TripID
		out.TripId = &id
	}
	return out
}

func derefInt(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

func derefFloat(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

func derefString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
