// Package repo contains all storage access for the Voyago API.
// Each resource has an interface, a Postgres implementation, and — because
// the planner can run without a database — an in-memory implementation in
// memory.go. No business logic lives here, only SQL and type mapping.
package repo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/voyago/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this instead of *pgxpool.Pool lets integration tests pass a
// transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TripRepo defines the persistence operations for trip records.
// The service layer depends on this interface, never on a concrete store.
type TripRepo interface {
	// Create inserts a whole trip record and returns it with the
	// store-generated id and timestamps populated.
	Create(ctx context.Context, trip domain.TripRecord) (domain.TripRecord, error)

	// GetByID retrieves a trip by primary key (participants not included —
	// see ParticipantRepo). Returns domain.ErrNotFound when absent.
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripRecord, error)

	// List returns all trips ordered by start_date descending.
	List(ctx context.Context) ([]domain.TripRecord, error)

	// Update overwrites the mutable fields of an existing trip and returns
	// the updated record. Returns domain.ErrNotFound when absent.
	Update(ctx context.Context, trip domain.TripRecord) (domain.TripRecord, error)

	// Delete removes a trip by id. Deleting an absent id is a no-op, not an
	// error — deletion is idempotent.
	Delete(ctx context.Context, id uuid.UUID) error
}

// tripDetails is the JSONB payload holding everything nested inside a trip.
// Spec-wise a trip is written and read as one row; splitting reservations
// into their own tables would buy nothing since they are never queried alone.
type tripDetails struct {
	Flights    []domain.FlightReservation   `json:"flights"`
	Hotel      *domain.HotelReservation     `json:"hotel,omitempty"`
	CarRental  *domain.CarRentalReservation `json:"car_rental,omitempty"`
	Activities []domain.ActivityReservation `json:"activities"`
	Itinerary  []domain.ItineraryDay        `json:"itinerary"`
	Budget     domain.Budget                `json:"budget"`
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback
// isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, name, status, source, origin, destination, start_date, end_date, travelers, details, created_at, updated_at`

// Create inserts a new trip row and returns the full persisted record.
func (r *pgTripRepo) Create(ctx context.Context, trip domain.TripRecord) (domain.TripRecord, error) {
	const q = `
		INSERT INTO trips (name, status, source, origin, destination, start_date, end_date, travelers, details)
		VALUES (@name, @status, @source, @origin, @destination, @start_date, @end_date, @travelers, @details)
		RETURNING ` + tripColumns

	details, err := marshalDetails(trip)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("repo.TripRepo.Create: %w", err)
	}

	args := pgx.NamedArgs{
		"name":        trip.Name,
		"status":      trip.Status,
		"source":      trip.Source,
		"origin":      trip.Origin,
		"destination": trip.Destination,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"travelers":   trip.Travelers,
		"details":     details,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TripRecord{}, wrapStoreErr("repo.TripRepo.Create", err)
	}
	return result, nil
}

// GetByID retrieves a trip by primary key.
func (r *pgTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TripRecord, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.TripRecord{}, wrapStoreErr("repo.TripRepo.GetByID", err)
	}
	return result, nil
}

// List returns all trips ordered by start_date descending (most recent first).
func (r *pgTripRepo) List(ctx context.Context) ([]domain.TripRecord, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips ORDER BY start_date DESC, created_at DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, wrapStoreErr("repo.TripRepo.List", err)
	}
	defer rows.Close()

	var trips []domain.TripRecord
	for rows.Next() {
		trip, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.List: scan: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("repo.TripRepo.List", err)
	}
	return trips, nil
}

// Update overwrites the mutable fields of a trip and returns the new record.
func (r *pgTripRepo) Update(ctx context.Context, trip domain.TripRecord) (domain.TripRecord, error) {
	const q = `
		UPDATE trips
		SET name        = @name,
		    status      = @status,
		    origin      = @origin,
		    destination = @destination,
		    start_date  = @start_date,
		    end_date    = @end_date,
		    travelers   = @travelers,
		    details     = @details,
		    updated_at  = now()
		WHERE id = @id
		RETURNING ` + tripColumns

	details, err := marshalDetails(trip)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("repo.TripRepo.Update: %w", err)
	}

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"name":        trip.Name,
		"status":      trip.Status,
		"origin":      trip.Origin,
		"destination": trip.Destination,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"travelers":   trip.Travelers,
		"details":     details,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.TripRecord{}, wrapStoreErr("repo.TripRepo.Update", err)
	}
	return result, nil
}

// Delete removes a trip by primary key. Zero rows affected is success.
func (r *pgTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM trips WHERE id = @id`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id}); err != nil {
		return wrapStoreErr("repo.TripRepo.Delete", err)
	}
	return nil
}

// marshalDetails packs the nested reservation data into the JSONB column value.
func marshalDetails(trip domain.TripRecord) ([]byte, error) {
	return json.Marshal(tripDetails{
		Flights:    trip.Flights,
		Hotel:      trip.Hotel,
		CarRental:  trip.CarRental,
		Activities: trip.Activities,
		Itinerary:  trip.Itinerary,
		Budget:     trip.Budget,
	})
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanTrip to be
// reused for QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanTrip maps a single database row into a domain.TripRecord, including
// the JSONB details unpacking.
func scanTrip(s scanner) (domain.TripRecord, error) {
	var (
		trip    domain.TripRecord
		id      pgtype.UUID
		start   pgtype.Date
		end     pgtype.Date
		details []byte
	)

	err := s.Scan(&id, &trip.Name, &trip.Status, &trip.Source, &trip.Origin, &trip.Destination,
		&start, &end, &trip.Travelers, &details, &trip.CreatedAt, &trip.UpdatedAt)
	if err != nil {
		return domain.TripRecord{}, err
	}

	trip.ID = uuid.UUID(id.Bytes)
	trip.StartDate = start.Time
	trip.EndDate = end.Time

	var d tripDetails
	if err := json.Unmarshal(details, &d); err != nil {
		return domain.TripRecord{}, fmt.Errorf("unpack details: %w", err)
	}
	trip.Flights = d.Flights
	trip.Hotel = d.Hotel
	trip.CarRental = d.CarRental
	trip.Activities = d.Activities
	trip.Itinerary = d.Itinerary
	trip.Budget = d.Budget

	return trip, nil
}

// wrapStoreErr maps storage failures onto the domain sentinels: missing rows
// become ErrNotFound, connection failures become ErrUnavailable so callers
// can tell "no data" apart from "backend down". Everything else is wrapped
// as-is.
func wrapStoreErr(op string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) {
		return fmt.Errorf("%s: %v: %w", op, err, domain.ErrUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
