package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/voyago/backend/internal/domain"
)

// fkViolation is the Postgres error code for foreign-key violations, raised
// when adding a participant to a trip that does not exist.
const fkViolation = "23503"

// ParticipantRepo defines the persistence operations for trip participants.
type ParticipantRepo interface {
	// Add inserts a participant under its TripID and returns the persisted
	// record. Returns domain.ErrNotFound when the trip does not exist.
	Add(ctx context.Context, p domain.Participant) (domain.Participant, error)

	// ListByTripID returns all participants of a trip ordered by join time.
	ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)

	// Remove deletes a participant scoped to its trip.
	// Returns domain.ErrNotFound when no such participant exists.
	Remove(ctx context.Context, tripID, participantID uuid.UUID) error
}

// pgParticipantRepo is the Postgres implementation of ParticipantRepo.
type pgParticipantRepo struct {
	db db
}

// NewParticipantRepo constructs a ParticipantRepo backed by the provided db.
func NewParticipantRepo(db db) ParticipantRepo {
	return &pgParticipantRepo{db: db}
}

const participantColumns = `id, trip_id, name, email, role, joined_at`

// Add inserts a new participant row.
func (r *pgParticipantRepo) Add(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	const q = `
		INSERT INTO trip_participants (trip_id, name, email, role)
		VALUES (@trip_id, @name, @email, @role)
		RETURNING ` + participantColumns

	// Empty email is stored as NULL, not "".
	var email any
	if p.Email != "" {
		email = p.Email
	}
	args := pgx.NamedArgs{
		"trip_id": p.TripID,
		"name":    p.Name,
		"email":   email,
		"role":    p.Role,
	}

	result, err := scanParticipant(r.db.QueryRow(ctx, q, args))
	if err != nil {
		// A foreign-key violation means the parent trip is gone.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == fkViolation {
			return domain.Participant{}, fmt.Errorf("repo.ParticipantRepo.Add: trip: %w", domain.ErrNotFound)
		}
		return domain.Participant{}, wrapStoreErr("repo.ParticipantRepo.Add", err)
	}
	return result, nil
}

// ListByTripID returns all participants of a trip, owner first by join time.
func (r *pgParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	const q = `SELECT ` + participantColumns + ` FROM trip_participants WHERE trip_id = @trip_id ORDER BY joined_at, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, wrapStoreErr("repo.ParticipantRepo.ListByTripID", err)
	}
	defer rows.Close()

	var participants []domain.Participant
	for rows.Next() {
		p, err := scanParticipant(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ParticipantRepo.ListByTripID: scan: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStoreErr("repo.ParticipantRepo.ListByTripID", err)
	}
	return participants, nil
}

// Remove deletes a participant by id, scoped to the given trip.
func (r *pgParticipantRepo) Remove(ctx context.Context, tripID, participantID uuid.UUID) error {
	const q = `DELETE FROM trip_participants WHERE id = @id AND trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": participantID, "trip_id": tripID})
	if err != nil {
		return wrapStoreErr("repo.ParticipantRepo.Remove", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ParticipantRepo.Remove: %w", domain.ErrNotFound)
	}
	return nil
}

// scanParticipant maps a single row into a domain.Participant.
func scanParticipant(s scanner) (domain.Participant, error) {
	var (
		p      domain.Participant
		id     pgtype.UUID
		tripID pgtype.UUID
		email  pgtype.Text
	)

	if err := s.Scan(&id, &tripID, &p.Name, &email, &p.Role, &p.JoinedAt); err != nil {
		return domain.Participant{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.TripID = uuid.UUID(tripID.Bytes)
	if email.Valid {
		p.Email = email.String
	}
	return p, nil
}
