package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// TripListService implements business logic for TripList operations,
// including turning read-only sharing on and off.
type TripListService struct {
	lists    repo.TripListRepo
	newToken func() string
}

// NewTripListService constructs a TripListService backed by the provided repo.
func NewTripListService(lists repo.TripListRepo) *TripListService {
	return &TripListService{lists: lists, newToken: newShareToken}
}

// newShareToken returns 32 hex characters of UUIDv4 randomness.
func newShareToken() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// Create validates the name and persists a new list for userID.
func (s *TripListService) Create(ctx context.Context, userID, name string) (domain.TripList, error) {
	name = strings.TrimSpace(name)
	if err := validateListName(name); err != nil {
		return domain.TripList{}, err
	}
	result, err := s.lists.Create(ctx, domain.TripList{UserID: userID, Name: name})
	if err != nil {
		return domain.TripList{}, fmt.Errorf("service.TripListService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns one of userID's lists, or domain.ErrNotFound.
func (s *TripListService) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.TripList, error) {
	result, err := s.lists.GetByID(ctx, userID, id)
	if err != nil {
		return domain.TripList{}, fmt.Errorf("service.TripListService.GetByID: %w", err)
	}
	return result, nil
}

// List returns all of userID's lists. Never nil.
func (s *TripListService) List(ctx context.Context, userID string) ([]domain.TripList, error) {
	lists, err := s.lists.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripListService.List: %w", err)
	}
	if lists == nil {
		return []domain.TripList{}, nil
	}
	return lists, nil
}

// Rename changes a list's name.
func (s *TripListService) Rename(ctx context.Context, userID string, id uuid.UUID, name string) (domain.TripList, error) {
	name = strings.TrimSpace(name)
	if err := validateListName(name); err != nil {
		return domain.TripList{}, err
	}
	result, err := s.lists.Rename(ctx, userID, id, name)
	if err != nil {
		return domain.TripList{}, fmt.Errorf("service.TripListService.Rename: %w", err)
	}
	return result, nil
}

// Delete removes a list. Its trips are kept and become unlisted.
func (s *TripListService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	if err := s.lists.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("service.TripListService.Delete: %w", err)
	}
	return nil
}

// Share enables read-only access to a list by token. Sharing an already
// shared list keeps its existing token so links already handed out stay valid.
func (s *TripListService) Share(ctx context.Context, userID string, id uuid.UUID) (domain.TripList, error) {
	list, err := s.lists.GetByID(ctx, userID, id)
	if err != nil {
		return domain.TripList{}, fmt.Errorf("service.TripListService.Share: %w", err)
	}
	if list.IsShared() {
		return list, nil
	}
	token := s.newToken()
	result, err := s.lists.SetShareToken(ctx, userID, id, &token)
	if err != nil {
		return domain.TripList{}, fmt.Errorf("service.TripListService.Share: %w", err)
	}
	return result, nil
}

// Unshare revokes the list's token. Old links stop resolving immediately.
func (s *TripListService) Unshare(ctx context.Context, userID string, id uuid.UUID) (domain.TripList, error) {
	result, err := s.lists.SetShareToken(ctx, userID, id, nil)
	if err != nil {
		return domain.TripList{}, fmt.Errorf("service.TripListService.Unshare: %w", err)
	}
	return result, nil
}
