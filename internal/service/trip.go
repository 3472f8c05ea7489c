// Package service holds the business rules of the trip planner: validation,
// ownership checks, and the glue between persistence and the economics engine.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/economics"
	"github.com/pkordes/trip-planner/internal/repo"
)

// copySuffix is appended to the name of a duplicated trip.
const copySuffix = " (copy)"

// ScheduleField names the schedule input a user just edited.
type ScheduleField string

const (
	ScheduleArrive ScheduleField = "arrive"
	ScheduleDepart ScheduleField = "depart"
	ScheduleNights ScheduleField = "nights"
)

// ScheduleEdit is one edit to a trip's arrive/depart/nights trio.
// Date is used for arrive and depart ("" clears arrive), Nights for nights.
type ScheduleEdit struct {
	Field  ScheduleField
	Date   string
	Nights int
}

// TripService implements business logic for Trip operations.
// It holds the list repo to check that a trip is only ever filed under one
// of its owner's lists.
type TripService struct {
	trips repo.TripRepo
	lists repo.TripListRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, lists repo.TripListRepo) *TripService {
	return &TripService{trips: trips, lists: lists}
}

// Create validates the trip and persists it for userID.
// Returns domain.ErrValidation if input violates business rules or names a
// trip list the user does not own.
func (s *TripService) Create(ctx context.Context, userID string, p domain.PendingTrip) (domain.Trip, error) {
	if err := validateTrip(p); err != nil {
		return domain.Trip{}, err
	}
	if err := s.checkList(ctx, userID, p.TripListID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	result, err := s.trips.Create(ctx, domain.Trip{UserID: userID, PendingTrip: p})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns one of userID's trips.
// Returns domain.ErrNotFound if no such trip exists.
func (s *TripService) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// List returns userID's trips matching f.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context, userID string, f repo.TripFilter) ([]domain.Trip, error) {
	trips, err := s.trips.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// ListPaged returns one page of userID's trips and the total count.
func (s *TripService) ListPaged(ctx context.Context, userID string, f repo.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListPaged(ctx, userID, f, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and replaces the editable fields of an existing trip.
// Returns domain.ErrValidation for invalid input, domain.ErrNotFound if the
// trip does not exist.
func (s *TripService) Update(ctx context.Context, userID string, id uuid.UUID, p domain.PendingTrip) (domain.Trip, error) {
	if err := validateTrip(p); err != nil {
		return domain.Trip{}, err
	}
	if err := s.checkList(ctx, userID, p.TripListID); err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	result, err := s.trips.Update(ctx, domain.Trip{ID: id, UserID: userID, PendingTrip: p})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// Delete removes one of userID's trips.
// Returns domain.ErrNotFound if the trip does not exist.
func (s *TripService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// Duplicate stores a copy of a trip under a new id, in the same list, with
// " (copy)" appended to its name.
func (s *TripService) Duplicate(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error) {
	src, err := s.trips.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Duplicate: %w", err)
	}
	p := src.PendingTrip
	p.Name += copySuffix
	result, err := s.trips.Create(ctx, domain.Trip{UserID: userID, PendingTrip: p})
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Duplicate: %w", err)
	}
	return result, nil
}

// EditSchedule applies one arrive/depart/nights edit using the coupled
// schedule rules and persists the result.
func (s *TripService) EditSchedule(ctx context.Context, userID string, id uuid.UUID, edit ScheduleEdit) (domain.Trip, error) {
	trip, err := s.trips.GetByID(ctx, userID, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.EditSchedule: %w", err)
	}

	sched := economics.NewSchedule(trip.PendingTrip)
	switch edit.Field {
	case ScheduleArrive:
		if !sched.SetArrive(edit.Date) {
			return domain.Trip{}, fmt.Errorf("%w: arrive must be a YYYY-MM-DD date", domain.ErrValidation)
		}
	case ScheduleDepart:
		if sched.Arrive() == "" {
			return domain.Trip{}, fmt.Errorf("%w: set arrive before depart", domain.ErrValidation)
		}
		if !sched.SetDepart(edit.Date) {
			return domain.Trip{}, fmt.Errorf("%w: depart must be a YYYY-MM-DD date", domain.ErrValidation)
		}
	case ScheduleNights:
		if edit.Nights < 0 {
			return domain.Trip{}, fmt.Errorf("%w: nights must be at least 0", domain.ErrValidation)
		}
		sched.SetNights(edit.Nights)
	default:
		return domain.Trip{}, fmt.Errorf("%w: unknown schedule field %q", domain.ErrValidation, edit.Field)
	}
	sched.Apply(&trip.PendingTrip)

	if err := validateTrip(trip.PendingTrip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.EditSchedule: %w", err)
	}
	return result, nil
}

// Compare projects a stored trip's score against its peers: the other trips
// in the same list, or the user's unlisted trips when it has no list.
// A nil projection means no trip in the group has a positive score.
func (s *TripService) Compare(ctx context.Context, userID string, id uuid.UUID) (*economics.Projection, error) {
	trip, err := s.trips.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Compare: %w", err)
	}
	peers, err := s.trips.List(ctx, userID, peerFilter(trip.TripListID))
	if err != nil {
		return nil, fmt.Errorf("service.TripService.Compare: %w", err)
	}
	return economics.Project(trip, peers), nil
}

// Preview computes the derived figures and projection of an unsaved trip
// without persisting it. The pending trip is compared with the group it
// would be filed under.
func (s *TripService) Preview(ctx context.Context, userID string, p domain.PendingTrip) (economics.Summary, *economics.Projection, error) {
	peers, err := s.trips.List(ctx, userID, peerFilter(p.TripListID))
	if err != nil {
		return economics.Summary{}, nil, fmt.Errorf("service.TripService.Preview: %w", err)
	}
	return economics.Summarize(p), economics.Project(domain.Trip{UserID: userID, PendingTrip: p}, peers), nil
}

func peerFilter(listID *uuid.UUID) repo.TripFilter {
	if listID != nil {
		return repo.TripFilter{ListID: listID}
	}
	return repo.TripFilter{Unlisted: true}
}

// checkList verifies that listID, when set, names one of userID's lists.
func (s *TripService) checkList(ctx context.Context, userID string, listID *uuid.UUID) error {
	if listID == nil {
		return nil
	}
	if _, err := s.lists.GetByID(ctx, userID, *listID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return fmt.Errorf("%w: trip list not found", domain.ErrValidation)
		}
		return err
	}
	return nil
}
