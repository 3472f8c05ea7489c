package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/service"
)

func TestTripListService_Create(t *testing.T) {
	var stored domain.TripList
	r := &mockTripListRepo{
		create: func(_ context.Context, l domain.TripList) (domain.TripList, error) {
			stored = l
			l.ID = uuid.New()
			return l, nil
		},
	}
	svc := service.NewTripListService(r)

	got, err := svc.Create(context.Background(), userID, "  Ski trips ")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Ski trips", stored.Name, "name is trimmed")
	assert.Equal(t, userID, stored.UserID)
}

func TestTripListService_Create_BlankName(t *testing.T) {
	svc := service.NewTripListService(&mockTripListRepo{})

	_, err := svc.Create(context.Background(), userID, "   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripListService_List_Empty(t *testing.T) {
	r := &mockTripListRepo{
		listByUser: func(_ context.Context, _ string) ([]domain.TripList, error) { return nil, nil },
	}
	svc := service.NewTripListService(r)

	got, err := svc.List(context.Background(), userID)

	require.NoError(t, err)
	assert.NotNil(t, got)
}

func TestTripListService_Rename(t *testing.T) {
	r := &mockTripListRepo{
		rename: func(_ context.Context, _ string, id uuid.UUID, name string) (domain.TripList, error) {
			return domain.TripList{ID: id, Name: name}, nil
		},
	}
	svc := service.NewTripListService(r)

	got, err := svc.Rename(context.Background(), userID, uuid.New(), "Beach")
	require.NoError(t, err)
	assert.Equal(t, "Beach", got.Name)

	_, err = svc.Rename(context.Background(), userID, uuid.New(), "")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripListService_Delete_NotFound(t *testing.T) {
	r := &mockTripListRepo{
		delete: func(_ context.Context, _ string, _ uuid.UUID) error { return domain.ErrNotFound },
	}
	svc := service.NewTripListService(r)

	err := svc.Delete(context.Background(), userID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripListService_Share_GeneratesToken(t *testing.T) {
	id := uuid.New()
	var gotToken *string
	r := &mockTripListRepo{
		getByID: func(_ context.Context, _ string, id uuid.UUID) (domain.TripList, error) {
			return domain.TripList{ID: id, Name: "Ideas"}, nil
		},
		setShareToken: func(_ context.Context, _ string, id uuid.UUID, token *string) (domain.TripList, error) {
			gotToken = token
			return domain.TripList{ID: id, Name: "Ideas", ShareToken: token}, nil
		},
	}
	svc := service.NewTripListService(r)

	got, err := svc.Share(context.Background(), userID, id)

	require.NoError(t, err)
	require.NotNil(t, gotToken)
	assert.Len(t, *gotToken, 32)
	assert.True(t, got.IsShared())
}

func TestTripListService_Share_KeepsExistingToken(t *testing.T) {
	token := "existing"
	r := &mockTripListRepo{
		getByID: func(_ context.Context, _ string, id uuid.UUID) (domain.TripList, error) {
			return domain.TripList{ID: id, ShareToken: &token}, nil
		},
		setShareToken: func(_ context.Context, _ string, _ uuid.UUID, _ *string) (domain.TripList, error) {
			t.Fatal("an already shared list must keep its token")
			return domain.TripList{}, nil
		},
	}
	svc := service.NewTripListService(r)

	got, err := svc.Share(context.Background(), userID, uuid.New())

	require.NoError(t, err)
	assert.Equal(t, "existing", *got.ShareToken)
}

func TestTripListService_Share_NotFound(t *testing.T) {
	r := &mockTripListRepo{
		getByID: func(_ context.Context, _ string, _ uuid.UUID) (domain.TripList, error) {
			return domain.TripList{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripListService(r)

	_, err := svc.Share(context.Background(), userID, uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripListService_Unshare(t *testing.T) {
	var gotToken = new(string)
	r := &mockTripListRepo{
		setShareToken: func(_ context.Context, _ string, id uuid.UUID, token *string) (domain.TripList, error) {
			gotToken = token
			return domain.TripList{ID: id}, nil
		},
	}
	svc := service.NewTripListService(r)

	got, err := svc.Unshare(context.Background(), userID, uuid.New())

	require.NoError(t, err)
	assert.Nil(t, gotToken)
	assert.False(t, got.IsShared())
}
