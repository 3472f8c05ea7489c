package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// TripListRepo defines the persistence operations for TripLists.
// Like TripRepo, every method is scoped to one user.
type TripListRepo interface {
	Create(ctx context.Context, list domain.TripList) (domain.TripList, error)

	// GetByID returns domain.ErrNotFound if userID does not own the list.
	GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.TripList, error)

	// ListByUser returns the user's lists, oldest first.
	ListByUser(ctx context.Context, userID string) ([]domain.TripList, error)

	Rename(ctx context.Context, userID string, id uuid.UUID, name string) (domain.TripList, error)

	// Delete removes the list. Its trips survive with trip_list_id set to NULL.
	Delete(ctx context.Context, userID string, id uuid.UUID) error

	// SetShareToken sets or, when token is nil, revokes the list's share token.
	SetShareToken(ctx context.Context, userID string, id uuid.UUID, token *string) (domain.TripList, error)
}

type pgTripListRepo struct {
	db db
}

// NewTripListRepo constructs a TripListRepo backed by the provided db connection.
func NewTripListRepo(db db) TripListRepo {
	return &pgTripListRepo{db: db}
}

const tripListColumns = `id, user_id, name, share_token, created_at`

func (r *pgTripListRepo) Create(ctx context.Context, list domain.TripList) (domain.TripList, error) {
	const q = `
		INSERT INTO trip_lists (user_id, name)
		VALUES (@user_id, @name)
		RETURNING ` + tripListColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"user_id": list.UserID, "name": list.Name})
	result, err := scanTripList(row)
	if err != nil {
		return domain.TripList{}, fmt.Errorf("repo.TripListRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgTripListRepo) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.TripList, error) {
	const q = `SELECT ` + tripListColumns + `
		FROM trip_lists
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	result, err := scanTripList(row)
	if err != nil {
		return domain.TripList{}, fmt.Errorf("repo.TripListRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgTripListRepo) ListByUser(ctx context.Context, userID string) ([]domain.TripList, error) {
	const q = `SELECT ` + tripListColumns + `
		FROM trip_lists
		WHERE user_id = @user_id
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripListRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	var lists []domain.TripList
	for rows.Next() {
		l, err := scanTripList(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripListRepo.ListByUser: scan: %w", err)
		}
		lists = append(lists, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripListRepo.ListByUser: rows: %w", err)
	}
	return lists, nil
}

func (r *pgTripListRepo) Rename(ctx context.Context, userID string, id uuid.UUID, name string) (domain.TripList, error) {
	const q = `
		UPDATE trip_lists SET name = @name
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + tripListColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID, "name": name})
	result, err := scanTripList(row)
	if err != nil {
		return domain.TripList{}, fmt.Errorf("repo.TripListRepo.Rename: %w", err)
	}
	return result, nil
}

func (r *pgTripListRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	const q = `DELETE FROM trip_lists WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripListRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripListRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgTripListRepo) SetShareToken(ctx context.Context, userID string, id uuid.UUID, token *string) (domain.TripList, error) {
	const q = `
		UPDATE trip_lists SET share_token = @share_token
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + tripListColumns

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID, "share_token": token})
	result, err := scanTripList(row)
	if err != nil {
		return domain.TripList{}, fmt.Errorf("repo.TripListRepo.SetShareToken: %w", err)
	}
	return result, nil
}

func scanTripList(s scanner) (domain.TripList, error) {
	var (
		l     domain.TripList
		id    pgtype.UUID
		token pgtype.Text
	)
	if err := s.Scan(&id, &l.UserID, &l.Name, &token, &l.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripList{}, domain.ErrNotFound
		}
		return domain.TripList{}, err
	}
	l.ID = uuid.UUID(id.Bytes)
	if token.Valid {
		tok := token.String
		l.ShareToken = &tok
	}
	return l, nil
}
