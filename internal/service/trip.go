// Package service contains the business logic for the Voyago API.
// Services validate inputs, enforce business rules, and orchestrate the
// factories, the AI searcher, and the repos. No SQL and no HTTP live here.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/voyago/backend/internal/domain"
	"github.com/voyago/backend/internal/factory"
	"github.com/voyago/backend/internal/repo"
)

// TripService implements business logic for trip records and their
// participant lists.
type TripService struct {
	trips        repo.TripRepo
	participants repo.ParticipantRepo
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, participants repo.ParticipantRepo) *TripService {
	return &TripService{trips: trips, participants: participants}
}

// TripUpdate carries the mutable trip fields for UpdateMeta.
// Nil pointers leave the corresponding field untouched.
type TripUpdate struct {
	Name   *string
	Status *domain.TripStatus
}

// CreateCustom validates the preferences, assembles a trip from the selected
// options, and persists it whole. The record is never partially persisted —
// the factory output goes to the store in one create call.
func (s *TripService) CreateCustom(ctx context.Context, name string, prefs domain.TravelPreferences, sel factory.Selection) (domain.TripRecord, error) {
	if err := validatePreferences(prefs); err != nil {
		return domain.TripRecord{}, err
	}
	trip := factory.NewCustomTrip(name, prefs, sel)
	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("service.TripService.CreateCustom: %w", err)
	}
	return created, nil
}

// CreateDemo persists a trip filled with synthetic reservation data.
// Dates are optional here — the demo factory defaults them.
func (s *TripService) CreateDemo(ctx context.Context, name string, prefs domain.TravelPreferences) (domain.TripRecord, error) {
	if err := validateCityPair(prefs); err != nil {
		return domain.TripRecord{}, err
	}
	trip := factory.NewDemoTrip(name, prefs)
	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("service.TripService.CreateDemo: %w", err)
	}
	return created, nil
}

// CreatePackage persists a trip assembled from a pre-bundled package.
func (s *TripService) CreatePackage(ctx context.Context, name string, prefs domain.TravelPreferences, pkg factory.Package) (domain.TripRecord, error) {
	if err := validatePreferences(prefs); err != nil {
		return domain.TripRecord{}, err
	}
	trip := factory.NewPackageTrip(name, prefs, pkg)
	created, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("service.TripService.CreatePackage: %w", err)
	}
	return created, nil
}

// GetByID returns a single trip with its participant list attached.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.TripRecord, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	participants, err := s.participants.ListByTripID(ctx, id)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("service.TripService.GetByID: participants: %w", err)
	}
	trip.Participants = participants
	return trip, nil
}

// List returns all trips, most recent start date first, without participant
// lists (the list view does not need them).
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) List(ctx context.Context) ([]domain.TripRecord, error) {
	trips, err := s.trips.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.List: %w", err)
	}
	if trips == nil {
		return []domain.TripRecord{}, nil
	}
	return trips, nil
}

// UpdateMeta applies name and/or status edits to an existing trip.
// These are the only in-place mutations a saved trip supports besides
// participant changes.
func (s *TripService) UpdateMeta(ctx context.Context, id uuid.UUID, update TripUpdate) (domain.TripRecord, error) {
	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("service.TripService.UpdateMeta: %w", err)
	}

	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return domain.TripRecord{}, fmt.Errorf("%w: name must not be empty", domain.ErrValidation)
		}
		trip.Name = *update.Name
	}
	if update.Status != nil {
		if !domain.ValidStatus(*update.Status) {
			return domain.TripRecord{}, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, *update.Status)
		}
		trip.Status = *update.Status
	}

	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.TripRecord{}, fmt.Errorf("service.TripService.UpdateMeta: %w", err)
	}
	return updated, nil
}

// Delete removes a trip by id. Deleting an absent id succeeds — the
// operation is idempotent all the way down.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// AddParticipant validates and appends a participant to a trip.
// An empty role defaults to "participant".
func (s *TripService) AddParticipant(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	if strings.TrimSpace(p.Name) == "" {
		return domain.Participant{}, fmt.Errorf("%w: participant name is required", domain.ErrValidation)
	}
	if p.Role == "" {
		p.Role = domain.RoleParticipant
	}
	if !domain.ValidRole(p.Role) {
		return domain.Participant{}, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, p.Role)
	}
	added, err := s.participants.Add(ctx, p)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("service.TripService.AddParticipant: %w", err)
	}
	return added, nil
}

// ListParticipants returns all participants of a trip.
// Always returns a non-nil slice.
func (s *TripService) ListParticipants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.TripService.ListParticipants: %w", err)
	}
	list, err := s.participants.ListByTripID(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListParticipants: %w", err)
	}
	if list == nil {
		return []domain.Participant{}, nil
	}
	return list, nil
}

// RemoveParticipant removes a participant from a trip.
func (s *TripService) RemoveParticipant(ctx context.Context, tripID, participantID uuid.UUID) error {
	if err := s.participants.Remove(ctx, tripID, participantID); err != nil {
		return fmt.Errorf("service.TripService.RemoveParticipant: %w", err)
	}
	return nil
}

// validatePreferences enforces the rules shared by search and trip creation.
//   - Origin and destination must be non-empty.
//   - When both dates are set, the end must not precede the start.
//   - At least one traveler.
func validatePreferences(p domain.TravelPreferences) error {
	if err := validateCityPair(p); err != nil {
		return err
	}
	if !p.StartDate.IsZero() && !p.EndDate.IsZero() && p.EndDate.Before(p.StartDate) {
		return fmt.Errorf("%w: end date must not be before start date", domain.ErrValidation)
	}
	if p.Travelers < 1 {
		return fmt.Errorf("%w: at least one traveler is required", domain.ErrValidation)
	}
	return nil
}

// validateCityPair checks only origin and destination; the demo flow uses it
// because everything else is defaulted there.
func validateCityPair(p domain.TravelPreferences) error {
	if strings.TrimSpace(p.Origin) == "" {
		return fmt.Errorf("%w: origin is required", domain.ErrValidation)
	}
	if strings.TrimSpace(p.Destination) == "" {
		return fmt.Errorf("%w: destination is required", domain.ErrValidation)
	}
	return nil
}
