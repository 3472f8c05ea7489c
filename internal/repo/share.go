package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/trip-planner/internal/domain"
)

// ShareRepo reads shared trip lists by token, without a user.
// Both methods go through the shared_trip_list* SQL functions so the
// token check lives in one place.
type ShareRepo interface {
	// GetList returns domain.ErrNotFound for an unknown or revoked token.
	GetList(ctx context.Context, token string) (domain.TripList, error)

	// ListTrips returns the trips in the token's list, or none for an
	// unknown or revoked token.
	ListTrips(ctx context.Context, token string) ([]domain.Trip, error)
}

type pgShareRepo struct {
	db db
}

// NewShareRepo constructs a ShareRepo backed by the provided db connection.
func NewShareRepo(db db) ShareRepo {
	return &pgShareRepo{db: db}
}

func (r *pgShareRepo) GetList(ctx context.Context, token string) (domain.TripList, error) {
	const q = `SELECT ` + tripListColumns + ` FROM shared_trip_list(@token)`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"token": token})
	result, err := scanTripList(row)
	if err != nil {
		return domain.TripList{}, fmt.Errorf("repo.ShareRepo.GetList: %w", err)
	}
	return result, nil
}

func (r *pgShareRepo) ListTrips(ctx context.Context, token string) ([]domain.Trip, error) {
	q := `SELECT ` + tripColumns + `
		FROM shared_trip_list_trips(@token)
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"token": token})
	if err != nil {
		return nil, fmt.Errorf("repo.ShareRepo.ListTrips: %w", err)
	}
	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.ShareRepo.ListTrips: %w", err)
	}
	return trips, nil
}
