package repo_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/repo"
)

func TestTripListRepo_CreateGetList(t *testing.T) {
	r := repo.NewTripListRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, domain.TripList{UserID: alice, Name: "Ski"})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.ID)
	assert.Nil(t, created.ShareToken)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := r.GetByID(ctx, alice, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ski", got.Name)

	_, err = r.GetByID(ctx, bob, created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	lists, err := r.ListByUser(ctx, alice)
	require.NoError(t, err)
	require.Len(t, lists, 1)
	assert.Equal(t, created.ID, lists[0].ID)
}

func TestTripListRepo_Rename(t *testing.T) {
	r := repo.NewTripListRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, domain.TripList{UserID: alice, Name: "Ski"})
	require.NoError(t, err)

	renamed, err := r.Rename(ctx, alice, created.ID, "Winter")
	require.NoError(t, err)
	assert.Equal(t, "Winter", renamed.Name)

	_, err = r.Rename(ctx, bob, created.ID, "Mine now")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripListRepo_Delete_OrphansTrips(t *testing.T) {
	tx := newTestTx(t)
	lists := repo.NewTripListRepo(tx)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	list, err := lists.Create(ctx, domain.TripList{UserID: alice, Name: "Doomed"})
	require.NoError(t, err)

	tr := tripFixture()
	tr.TripListID = &list.ID
	created, err := trips.Create(ctx, tr)
	require.NoError(t, err)

	require.NoError(t, lists.Delete(ctx, alice, list.ID))

	survivor, err := trips.GetByID(ctx, alice, created.ID)
	require.NoError(t, err, "deleting a list must not delete its trips")
	assert.Nil(t, survivor.TripListID)

	assert.ErrorIs(t, lists.Delete(ctx, alice, list.ID), domain.ErrNotFound)
}

func TestTripListRepo_SetShareToken(t *testing.T) {
	r := repo.NewTripListRepo(newTestTx(t))
	ctx := context.Background()

	created, err := r.Create(ctx, domain.TripList{UserID: alice, Name: "Shared"})
	require.NoError(t, err)

	token := "abc123"
	shared, err := r.SetShareToken(ctx, alice, created.ID, &token)
	require.NoError(t, err)
	require.NotNil(t, shared.ShareToken)
	assert.Equal(t, "abc123", *shared.ShareToken)
	assert.True(t, shared.IsShared())

	revoked, err := r.SetShareToken(ctx, alice, created.ID, nil)
	require.NoError(t, err)
	assert.Nil(t, revoked.ShareToken)
}
