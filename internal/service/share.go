package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// ErrTripNotInList is returned by ShareService.GetTrip when the token is valid
// but the trip is not part of the shared list. It wraps domain.ErrNotFound.
var ErrTripNotInList = fmt.Errorf("%w: trip not in shared list", domain.ErrNotFound)

// ShareService serves anonymous, read-only views of shared lists.
type ShareService struct {
	share repo.ShareRepo
}

// NewShareService constructs a ShareService backed by the provided repo.
func NewShareService(share repo.ShareRepo) *ShareService {
	return &ShareService{share: share}
}

// GetList returns the shared list named by token together with its trips.
// Returns domain.ErrNotFound for an unknown or revoked token.
func (s *ShareService) GetList(ctx context.Context, token string) (domain.SharedTripList, error) {
	list, err := s.share.GetList(ctx, token)
	if err != nil {
		return domain.SharedTripList{}, fmt.Errorf("service.ShareService.GetList: %w", err)
	}
	trips, err := s.share.ListTrips(ctx, token)
	if err != nil {
		return domain.SharedTripList{}, fmt.Errorf("service.ShareService.GetList: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return domain.SharedTripList{List: list, Trips: trips}, nil
}

// GetTrip returns one trip of a shared list along with the list's other trips,
// which the viewer needs for the comparison axis.
// An unknown token yields domain.ErrNotFound; a trip outside the list yields
// ErrTripNotInList.
func (s *ShareService) GetTrip(ctx context.Context, token string, tripID uuid.UUID) (domain.Trip, []domain.Trip, error) {
	shared, err := s.GetList(ctx, token)
	if err != nil {
		return domain.Trip{}, nil, fmt.Errorf("service.ShareService.GetTrip: %w", err)
	}
	for _, t := range shared.Trips {
		if t.ID == tripID {
			return t, shared.Trips, nil
		}
	}
	return domain.Trip{}, nil, fmt.Errorf("service.ShareService.GetTrip: %w", ErrTripNotInList)
}
