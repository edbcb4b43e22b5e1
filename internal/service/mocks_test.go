package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/voyago/backend/internal/domain"
	"github.com/voyago/backend/internal/repo"
)

// mockTripRepo implements repo.TripRepo with pluggable functions so each
// test wires only the calls it cares about.
type mockTripRepo struct {
	createFn  func(ctx context.Context, trip domain.TripRecord) (domain.TripRecord, error)
	getByIDFn func(ctx context.Context, id uuid.UUID) (domain.TripRecord, error)
	listFn    func(ctx context.Context) ([]domain.TripRecord, error)
	updateFn  func(ctx context.Context, trip domain.TripRecord) (domain.TripRecord, error)
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

func (m *mockTripRepo) Create(ctx context.Context, trip domain.TripRecord) (domain.TripRecord, error) {
	return m.createFn(ctx, trip)
}

func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.TripRecord, error) {
	return m.getByIDFn(ctx, id)
}

func (m *mockTripRepo) List(ctx context.Context) ([]domain.TripRecord, error) {
	return m.listFn(ctx)
}

func (m *mockTripRepo) Update(ctx context.Context, trip domain.TripRecord) (domain.TripRecord, error) {
	return m.updateFn(ctx, trip)
}

func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

// mockParticipantRepo implements repo.ParticipantRepo.
type mockParticipantRepo struct {
	addFn          func(ctx context.Context, p domain.Participant) (domain.Participant, error)
	listByTripIDFn func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	removeFn       func(ctx context.Context, tripID, participantID uuid.UUID) error
}

var _ repo.ParticipantRepo = (*mockParticipantRepo)(nil)

func (m *mockParticipantRepo) Add(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	return m.addFn(ctx, p)
}

func (m *mockParticipantRepo) ListByTripID(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listByTripIDFn(ctx, tripID)
}

func (m *mockParticipantRepo) Remove(ctx context.Context, tripID, participantID uuid.UUID) error {
	return m.removeFn(ctx, tripID, participantID)
}

// passthroughTripRepo returns a mockTripRepo whose Create echoes the record
// back with an assigned ID, which is what most creation tests need.
func passthroughTripRepo() *mockTripRepo {
	return &mockTripRepo{
		createFn: func(_ context.Context, trip domain.TripRecord) (domain.TripRecord, error) {
			trip.ID = uuid.New()
			return trip, nil
		},
	}
}

// emptyParticipantRepo returns a mockParticipantRepo whose list is always
// empty.
func emptyParticipantRepo() *mockParticipantRepo {
	return &mockParticipantRepo{
		listByTripIDFn: func(context.Context, uuid.UUID) ([]domain.Participant, error) {
			return nil, nil
		},
	}
}
