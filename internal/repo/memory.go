package repo

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/voyago/backend/internal/domain"
)

// MemoryStore is the offline fallback store: trips and participants held in
// process memory, no persistence across restarts. It implements both TripRepo
// and ParticipantRepo and is selected via STORAGE=memory, mirroring the
// hosted-store/local-storage split of the original planner.
type MemoryStore struct {
	mu           sync.RWMutex
	trips        map[uuid.UUID]domain.TripRecord
	participants map[uuid.UUID][]domain.Participant // keyed by trip id
}

// Compile-time interface checks.
var (
	_ TripRepo        = (*MemoryStore)(nil)
	_ ParticipantRepo = (*MemoryStore)(nil)
)

// NewMemoryStore constructs an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		trips:        make(map[uuid.UUID]domain.TripRecord),
		participants: make(map[uuid.UUID][]domain.Participant),
	}
}

// Create stores a new trip under a fresh id.
func (m *MemoryStore) Create(_ context.Context, trip domain.TripRecord) (domain.TripRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().UTC()
	trip.ID = uuid.New()
	trip.CreatedAt = now
	trip.UpdatedAt = now
	m.trips[trip.ID] = trip
	return trip, nil
}

// GetByID returns the stored trip or domain.ErrNotFound.
func (m *MemoryStore) GetByID(_ context.Context, id uuid.UUID) (domain.TripRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	trip, ok := m.trips[id]
	if !ok {
		return domain.TripRecord{}, fmt.Errorf("repo.MemoryStore.GetByID: %w", domain.ErrNotFound)
	}
	return trip, nil
}

// List returns all trips ordered by start date descending.
func (m *MemoryStore) List(_ context.Context) ([]domain.TripRecord, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	trips := make([]domain.TripRecord, 0, len(m.trips))
	for _, t := range m.trips {
		trips = append(trips, t)
	}
	sort.Slice(trips, func(i, j int) bool {
		if !trips[i].StartDate.Equal(trips[j].StartDate) {
			return trips[i].StartDate.After(trips[j].StartDate)
		}
		return trips[i].CreatedAt.After(trips[j].CreatedAt)
	})
	return trips, nil
}

// Update overwrites an existing trip, preserving CreatedAt.
func (m *MemoryStore) Update(_ context.Context, trip domain.TripRecord) (domain.TripRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	current, ok := m.trips[trip.ID]
	if !ok {
		return domain.TripRecord{}, fmt.Errorf("repo.MemoryStore.Update: %w", domain.ErrNotFound)
	}
	trip.CreatedAt = current.CreatedAt
	trip.UpdatedAt = time.Now().UTC()
	m.trips[trip.ID] = trip
	return trip, nil
}

// Delete removes a trip and its participants. Absent ids are a no-op.
func (m *MemoryStore) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.trips, id)
	delete(m.participants, id)
	return nil
}

// Add appends a participant to an existing trip.
func (m *MemoryStore) Add(_ context.Context, p domain.Participant) (domain.Participant, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.trips[p.TripID]; !ok {
		return domain.Participant{}, fmt.Errorf("repo.MemoryStore.Add: trip: %w", domain.ErrNotFound)
	}
	p.ID = uuid.New()
	p.JoinedAt = time.Now().UTC()
	m.participants[p.TripID] = append(m.participants[p.TripID], p)
	return p, nil
}

// ListByTripID returns the participants of a trip in join order.
func (m *MemoryStore) ListByTripID(_ context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	list := m.participants[tripID]
	out := make([]domain.Participant, len(list))
	copy(out, list)
	return out, nil
}

// Remove deletes a participant scoped to its trip.
func (m *MemoryStore) Remove(_ context.Context, tripID, participantID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	list := m.participants[tripID]
	for i, p := range list {
		if p.ID == participantID {
			m.participants[tripID] = append(list[:i], list[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("repo.MemoryStore.Remove: %w", domain.ErrNotFound)
}
