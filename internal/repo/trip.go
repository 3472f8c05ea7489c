// Package repo contains all database access logic for the trip planner API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/trip-planner/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripFilter narrows a trip listing. The zero value matches every trip the
// user owns. ListID and Unlisted are mutually exclusive; ListID wins.
type TripFilter struct {
	ListID   *uuid.UUID
	Unlisted bool
}

// TripRepo defines the persistence operations for Trips.
// Every method is scoped to one user: a row owned by somebody else behaves
// exactly like a missing row.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record (with DB-generated
	// id, created_at, and updated_at populated). trip.UserID must be set.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetByID retrieves a single trip owned by userID.
	// Returns domain.ErrNotFound if no such trip exists.
	GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error)

	// List returns the user's trips matching f, oldest first.
	List(ctx context.Context, userID string, f TripFilter) ([]domain.Trip, error)

	// ListPaged returns one page of List plus the total number of matches.
	ListPaged(ctx context.Context, userID string, f TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error)

	// Update overwrites the mutable fields of an existing trip and returns the
	// updated record. Returns domain.ErrNotFound if trip.UserID does not own it.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, userID string, id uuid.UUID) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

// tripColumns is the SELECT list scanTrip expects, in order.
const tripColumns = `
	id, user_id, trip_list_id, name, fun, arrive, depart, nights, adults, children,
	flight_cost_per_seat, flight_cost, taxi_or_rental_car, entertainment,
	ski_pass_per_day, childcare, lodging_total, lodging_per_night,
	lodging_per_person_per_night, flight_url, lodging_url, created_at, updated_at`

// tripArgs maps the editable fields to named query arguments.
func tripArgs(t domain.Trip) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":                           t.ID,
		"user_id":                      t.UserID,
		"trip_list_id":                 t.TripListID, // nil becomes NULL
		"name":                         t.Name,
		"fun":                          t.Fun,
		"arrive":                       t.Arrive,
		"depart":                       t.Depart,
		"nights":                       t.Nights,
		"adults":                       t.Adults,
		"children":                     t.Children,
		"flight_cost_per_seat":         t.FlightCostPerSeat,
		"flight_cost":                  t.FlightCost,
		"taxi_or_rental_car":           t.TaxiOrRentalCar,
		"entertainment":                t.Entertainment,
		"ski_pass_per_day":             t.SkiPassPerDay,
		"childcare":                    t.Childcare,
		"lodging_total":                t.LodgingTotal,
		"lodging_per_night":            t.LodgingPerNight,
		"lodging_per_person_per_night": t.LodgingPerPersonPerNight,
		"flight_url":                   nullableText(t.FlightURL),
		"lodging_url":                  nullableText(t.LodgingURL),
	}
}

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	q := `
		INSERT INTO trips (
			user_id, trip_list_id, name, fun, arrive, depart, nights, adults, children,
			flight_cost_per_seat, flight_cost, taxi_or_rental_car, entertainment,
			ski_pass_per_day, childcare, lodging_total, lodging_per_night,
			lodging_per_person_per_night, flight_url, lodging_url)
		VALUES (
			@user_id, @trip_list_id, @name, @fun, @arrive, @depart, @nights, @adults, @children,
			@flight_cost_per_seat, @flight_cost, @taxi_or_rental_car, @entertainment,
			@ski_pass_per_day, @childcare, @lodging_total, @lodging_per_night,
			@lodging_per_person_per_night, @flight_url, @lodging_url)
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, tripArgs(trip))
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", mapFKViolation(err))
	}
	return result, nil
}

// GetByID retrieves a trip by primary key and owner.
func (r *pgTripRepo) GetByID(ctx context.Context, userID string, id uuid.UUID) (domain.Trip, error) {
	q := `SELECT ` + tripColumns + `
		FROM trips
		WHERE id = @id AND user_id = @user_id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByID: %w", err)
	}
	return result, nil
}

// filterClause returns the WHERE clause for f and its arguments.
func filterClause(userID string, f TripFilter) (string, pgx.NamedArgs) {
	args := pgx.NamedArgs{"user_id": userID}
	where := `WHERE user_id = @user_id`
	switch {
	case f.ListID != nil:
		where += ` AND trip_list_id = @trip_list_id`
		args["trip_list_id"] = *f.ListID
	case f.Unlisted:
		where += ` AND trip_list_id IS NULL`
	}
	return where, args
}

// List returns the user's trips in creation order.
func (r *pgTripRepo) List(ctx context.Context, userID string, f TripFilter) ([]domain.Trip, error) {
	where, args := filterClause(userID, f)
	q := `SELECT ` + tripColumns + `
		FROM trips ` + where + `
		ORDER BY created_at, id`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	trips, err := collectTrips(rows)
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.List: %w", err)
	}
	return trips, nil
}

// ListPaged returns one page of trips and the total count across all pages.
// The count comes from a window function so both are read in one round trip.
func (r *pgTripRepo) ListPaged(ctx context.Context, userID string, f TripFilter, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	where, args := filterClause(userID, f)
	args["limit"] = p.Limit
	args["offset"] = p.Offset()
	q := `SELECT ` + tripColumns + `, COUNT(*) OVER () AS total
		FROM trips ` + where + `
		ORDER BY created_at, id
		LIMIT @limit OFFSET @offset`

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: %w", err)
	}
	defer rows.Close()

	var (
		trips []domain.Trip
		total int64
	)
	for rows.Next() {
		t, err := scanTripWith(rows, &total)
		if err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: rows: %w", err)
	}

	// A page past the end has no rows to carry the window total.
	if len(trips) == 0 && p.Offset() > 0 {
		countQ := `SELECT COUNT(*) FROM trips ` + where
		if err := r.db.QueryRow(ctx, countQ, args).Scan(&total); err != nil {
			return nil, 0, fmt.Errorf("repo.TripRepo.ListPaged: count: %w", err)
		}
	}
	return trips, total, nil
}

// Update overwrites the mutable fields of a trip and returns the updated record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	q := `
		UPDATE trips
		SET trip_list_id                 = @trip_list_id,
		    name                         = @name,
		    fun                          = @fun,
		    arrive                       = @arrive,
		    depart                       = @depart,
		    nights                       = @nights,
		    adults                       = @adults,
		    children                     = @children,
		    flight_cost_per_seat         = @flight_cost_per_seat,
		    flight_cost                  = @flight_cost,
		    taxi_or_rental_car           = @taxi_or_rental_car,
		    entertainment                = @entertainment,
		    ski_pass_per_day             = @ski_pass_per_day,
		    childcare                    = @childcare,
		    lodging_total                = @lodging_total,
		    lodging_per_night            = @lodging_per_night,
		    lodging_per_person_per_night = @lodging_per_person_per_night,
		    flight_url                   = @flight_url,
		    lodging_url                  = @lodging_url,
		    updated_at                   = clock_timestamp()
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + tripColumns

	row := r.db.QueryRow(ctx, q, tripArgs(trip))
	result, err := scanTrip(row)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", mapFKViolation(err))
	}
	return result, nil
}

// Delete removes a trip by primary key and owner.
func (r *pgTripRepo) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing the scan helpers
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// collectTrips drains rows into a slice and closes them.
func collectTrips(rows pgx.Rows) ([]domain.Trip, error) {
	defer rows.Close()

	var trips []domain.Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	return trips, nil
}

// scanTrip maps a single tripColumns row into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	return scanTripWith(s)
}

// scanTripWith scans tripColumns followed by any extra destinations.
// It handles the UUID and nullable column conversions.
func scanTripWith(s scanner, extra ...any) (domain.Trip, error) {
	var (
		t          domain.Trip
		id         pgtype.UUID
		listID     pgtype.UUID
		arrive     pgtype.Date
		depart     pgtype.Date
		children   pgtype.Int4
		perSeat    pgtype.Float8
		flightCost pgtype.Float8
		flightURL  pgtype.Text
		lodgingURL pgtype.Text
	)

	dest := []any{
		&id, &t.UserID, &listID, &t.Name, &t.Fun, &arrive, &depart, &t.Nights, &t.Adults, &children,
		&perSeat, &flightCost, &t.TaxiOrRentalCar, &t.Entertainment,
		&t.SkiPassPerDay, &t.Childcare, &t.LodgingTotal, &t.LodgingPerNight,
		&t.LodgingPerPersonPerNight, &flightURL, &lodgingURL, &t.CreatedAt, &t.UpdatedAt,
	}
	if err := s.Scan(append(dest, extra...)...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	if listID.Valid {
		lid := uuid.UUID(listID.Bytes)
		t.TripListID = &lid
	}
	if arrive.Valid {
		a := arrive.Time
		t.Arrive = &a
	}
	if depart.Valid {
		d := depart.Time
		t.Depart = &d
	}
	if children.Valid {
		c := int(children.Int32)
		t.Children = &c
	}
	if perSeat.Valid {
		v := perSeat.Float64
		t.FlightCostPerSeat = &v
	}
	if flightCost.Valid {
		v := flightCost.Float64
		t.FlightCost = &v
	}
	t.FlightURL = flightURL.String
	t.LodgingURL = lodgingURL.String

	return t, nil
}

// nullableText stores empty strings as NULL.
func nullableText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

// mapFKViolation turns a reference to a missing trip list into ErrValidation.
func mapFKViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%w: trip list does not exist", domain.ErrValidation)
	}
	return err
}
