package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

// mockTripRepo is a hand-written test double for repo.TripRepo.
// Each method is a function field; set only the ones your test needs.
type mockTripRepo struct {
	create    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error)
	list      func(ctx context.Context, userID string, f repo.TripFilter) ([]domain.Trip, error)
	listPaged func(ctx context.Context, userID string, f repo.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update    func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete    func(ctx context.Context, userID string, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripRepo) List(ctx context.Context, userID string, f repo.TripFilter) ([]domain.Trip, error) {
	return m.list(ctx, userID, f)
}
func (m *mockTripRepo) ListPaged(ctx context.Context, userID string, f repo.TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, userID, f, p)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}

// compile-time check: mockTripRepo must satisfy repo.TripRepo.
var _ repo.TripRepo = (*mockTripRepo)(nil)

// mockTripListRepo is a hand-written test double for repo.TripListRepo.
type mockTripListRepo struct {
	create        func(ctx context.Context, list domain.TripList) (domain.TripList, error)
	getByID       func(ctx context.Context, userID string, id uuid.UUID) (domain.TripList, error)
	listByUser    func(ctx context.Context, userID string) ([]domain.TripList, error)
	rename        func(ctx context.Context, userID string, id uuid.UUID, name string) (domain.TripList, error)
	delete        func(ctx context.Context, userID string, id uuid.UUID) error
	setShareToken func(ctx context.Context, userID string, id uuid.UUID, token *string) (domain.TripList, error)
}

func (m *mockTripListRepo) Create(ctx context.Context, list domain.TripList) (domain.TripList, error) {
	return m.create(ctx, list)
}
func (m *mockTripListRepo) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.TripList, error) {
	return m.getByID(ctx, userID, id)
}
func (m *mockTripListRepo) ListByUser(ctx context.Context, userID string) ([]domain.TripList, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockTripListRepo) Rename(ctx context.Context, userID string, id uuid.UUID, name string) (domain.TripList, error) {
	return m.rename(ctx, userID, id, name)
}
func (m *mockTripListRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return m.delete(ctx, userID, id)
}
func (m *mockTripListRepo) SetShareToken(ctx context.Context, userID string, id uuid.UUID, token *string) (domain.TripList, error) {
	return m.setShareToken(ctx, userID, id, token)
}

var _ repo.TripListRepo = (*mockTripListRepo)(nil)

// mockShareRepo is a hand-written test double for repo.ShareRepo.
type mockShareRepo struct {
	getList   func(ctx context.Context, token string) (domain.TripList, error)
	listTrips func(ctx context.Context, token string) ([]domain.Trip, error)
}

func (m *mockShareRepo) GetList(ctx context.Context, token string) (domain.TripList, error) {
	return m.getList(ctx, token)
}
func (m *mockShareRepo) ListTrips(ctx context.Context, token string) ([]domain.Trip, error) {
	return m.listTrips(ctx, token)
}

var _ repo.ShareRepo = (*mockShareRepo)(nil)

const userID = "user-1"

// storedTrips returns a mockTripRepo that serves trips from a map keyed by id
// and echoes writes back.
func storedTrips(trips ...domain.Trip) *mockTripRepo {
	byID := make(map[uuid.UUID]domain.Trip, len(trips))
	for _, t := range trips {
		byID[t.ID] = t
	}
	return &mockTripRepo{
		create: func(_ context.Context, t domain.Trip) (domain.Trip, error) {
			t.ID = uuid.New()
			return t, nil
		},
		getByID: func(_ context.Context, _ string, id uuid.UUID) (domain.Trip, error) {
			t, ok := byID[id]
			if !ok {
				return domain.Trip{}, domain.ErrNotFound
			}
			return t, nil
		},
		update: func(_ context.Context, t domain.Trip) (domain.Trip, error) { return t, nil },
	}
}
