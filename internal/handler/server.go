// Package handler implements the HTTP handlers for the trip planner API.
// All handlers are methods on Server, which implements gen.StrictServerInterface.
// Methods are split into domain-specific files (health.go, trip.go, etc.) but
// all share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/auth"
	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/economics"
	"github.com/pkordes/trip-planner/internal/repo"
	"github.com/pkordes/trip-planner/internal/service"
)

// TripServicer defines the business operations the trip handlers depend on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the database or service layer.
type TripServicer interface {
	Create(ctx context.Context, userID string, p domain.PendingTrip) (domain.Trip, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error)
	ListPaged(ctx context.Context, userID string, f repo.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error)
	Update(ctx context.Context, userID string, id uuid.UUID, p domain.PendingTrip) (domain.Trip, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	Duplicate(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error)
	EditSchedule(ctx context.Context, userID string, id uuid.UUID, edit service.ScheduleEdit) (domain.Trip, error)
	Compare(ctx context.Context, userID string, id uuid.UUID) (*economics.Projection, error)
	Preview(ctx context.Context, userID string, p domain.PendingTrip) (economics.Summary, *economics.Projection, error)
}

// TripListServicer defines the business operations the trip list handlers depend on.
type TripListServicer interface {
	Create(ctx context.Context, userID, name string) (domain.TripList, error)
	GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.TripList, error)
	List(ctx context.Context, userID string) ([]domain.TripList, error)
	Rename(ctx context.Context, userID string, id uuid.UUID, name string) (domain.TripList, error)
	Delete(ctx context.Context, userID string, id uuid.UUID) error
	Share(ctx context.Context, userID string, id uuid.UUID) (domain.TripList, error)
	Unshare(ctx context.Context, userID string, id uuid.UUID) (domain.TripList, error)
}

// ShareServicer serves the anonymous read-only view of shared lists.
type ShareServicer interface {
	GetList(ctx context.Context, token string) (domain.SharedTripList, error)
	GetTrip(ctx context.Context, token string, tripID uuid.UUID) (domain.Trip, []domain.Trip, error)
}

// EnrichmentServicer fetches the display-only weather and events widgets.
type EnrichmentServicer interface {
	Weather(ctx context.Context, userID string, id uuid.UUID) (service.WeatherResult, error)
	Events(ctx context.Context, userID string, id uuid.UUID) (service.EventsResult, error)
}

// ExportServicer defines the export operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context, userID string, listID uuid.UUID) (service.ListExport, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, NewStrictOptions(logger)).
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	trips  TripServicer
	lists  TripListServicer
	share  ShareServicer
	enrich EnrichmentServicer
	export ExportServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(trips TripServicer, lists TripListServicer, share ShareServicer, enrich EnrichmentServicer, export ExportServicer) *Server {
	return &Server{trips: trips, lists: lists, share: share, enrich: enrich, export: export}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil, nil, nil)
}

// currentUser returns the authenticated user id placed on ctx by the auth
// middleware. A missing user surfaces as a 401 via the response error handler.
func currentUser(ctx context.Context) (string, error) {
	id, ok := auth.UserID(ctx)
	if !ok {
		return "", domain.ErrUnauthenticated
	}
	return id, nil
}
