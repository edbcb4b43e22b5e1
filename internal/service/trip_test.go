package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voyago/backend/internal/domain"
	"github.com/voyago/backend/internal/factory"
	"github.com/voyago/backend/internal/service"
)

func validPrefs() domain.TravelPreferences {
	return domain.TravelPreferences{
		Origin:      "Santo Domingo",
		Destination: "Paris",
		StartDate:   time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC),
		EndDate:     time.Date(2024, 8, 24, 0, 0, 0, 0, time.UTC),
		Travelers:   2,
		Services:    []domain.Service{domain.ServiceFlights, domain.ServiceHotel},
		Topology:    domain.TopologyRoundTrip,
	}
}

func TestTripService_CreateCustom(t *testing.T) {
	trips := passthroughTripRepo()
	svc := service.NewTripService(trips, emptyParticipantRepo())

	sel := factory.Selection{
		Flights: []domain.FlightOption{{Airline: "Air France", Price: 680}},
		Hotel:   &domain.HotelOption{Name: "Hotel Le Six", PricePerNight: 400},
	}

	got, err := svc.CreateCustom(context.Background(), "Summer in Paris", validPrefs(), sel)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, got.ID)
	assert.Equal(t, "Summer in Paris", got.Name)
	assert.Equal(t, domain.SourceCustom, got.Source)
	require.NotNil(t, got.Hotel)
	assert.Equal(t, 3880.0, got.Budget.Total)
}

func TestTripService_CreateCustom_ValidationErrors(t *testing.T) {
	svc := service.NewTripService(passthroughTripRepo(), emptyParticipantRepo())

	tests := []struct {
		name   string
		mutate func(*domain.TravelPreferences)
	}{
		{"missing origin", func(p *domain.TravelPreferences) { p.Origin = "  " }},
		{"missing destination", func(p *domain.TravelPreferences) { p.Destination = "" }},
		{"end before start", func(p *domain.TravelPreferences) {
			p.EndDate = p.StartDate.AddDate(0, 0, -1)
		}},
		{"zero travelers", func(p *domain.TravelPreferences) { p.Travelers = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			prefs := validPrefs()
			tc.mutate(&prefs)

			_, err := svc.CreateCustom(context.Background(), "", prefs, factory.Selection{})

			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestTripService_CreateDemo_AllowsMissingDates(t *testing.T) {
	svc := service.NewTripService(passthroughTripRepo(), emptyParticipantRepo())

	prefs := validPrefs()
	prefs.StartDate, prefs.EndDate = time.Time{}, time.Time{}
	prefs.Travelers = 0

	got, err := svc.CreateDemo(context.Background(), "", prefs)

	require.NoError(t, err)
	assert.Equal(t, domain.SourceDemo, got.Source)
	assert.False(t, got.StartDate.IsZero(), "demo defaults missing dates")
}

func TestTripService_CreateDemo_RequiresDestination(t *testing.T) {
	svc := service.NewTripService(passthroughTripRepo(), emptyParticipantRepo())

	prefs := validPrefs()
	prefs.Destination = ""

	_, err := svc.CreateDemo(context.Background(), "", prefs)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_CreatePackage(t *testing.T) {
	svc := service.NewTripService(passthroughTripRepo(), emptyParticipantRepo())

	pkg := factory.Package{
		Name:   "Paris Essentials",
		Hotel:  &domain.HotelOption{Name: "Hotel Le Six", PricePerNight: 400},
		Extras: 150,
	}

	got, err := svc.CreatePackage(context.Background(), "", validPrefs(), pkg)

	require.NoError(t, err)
	assert.Equal(t, domain.SourcePackage, got.Source)
	assert.Equal(t, "Paris Essentials", got.Name)
}

func TestTripService_GetByID_AttachesParticipants(t *testing.T) {
	tripID := uuid.New()
	trips := &mockTripRepo{
		getByIDFn: func(_ context.Context, id uuid.UUID) (domain.TripRecord, error) {
			return domain.TripRecord{ID: id, Name: "Trip to Paris"}, nil
		},
	}
	participants := &mockParticipantRepo{
		listByTripIDFn: func(_ context.Context, id uuid.UUID) ([]domain.Participant, error) {
			return []domain.Participant{{ID: uuid.New(), TripID: id, Name: "Ana", Role: domain.RoleOwner}}, nil
		},
	}
	svc := service.NewTripService(trips, participants)

	got, err := svc.GetByID(context.Background(), tripID)

	require.NoError(t, err)
	require.Len(t, got.Participants, 1)
	assert.Equal(t, "Ana", got.Participants[0].Name)
}

func TestTripService_GetByID_NotFound(t *testing.T) {
	trips := &mockTripRepo{
		getByIDFn: func(context.Context, uuid.UUID) (domain.TripRecord, error) {
			return domain.TripRecord{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(trips, emptyParticipantRepo())

	_, err := svc.GetByID(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// TestTripService_List_PropagatesStoreErrors pins down that a failing store
// surfaces as an error rather than an empty list.
func TestTripService_List_PropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("connection refused")
	trips := &mockTripRepo{
		listFn: func(context.Context) ([]domain.TripRecord, error) {
			return nil, storeErr
		},
	}
	svc := service.NewTripService(trips, emptyParticipantRepo())

	got, err := svc.List(context.Background())

	assert.Nil(t, got)
	assert.ErrorIs(t, err, storeErr)
}

func TestTripService_List_EmptyStoreYieldsEmptySlice(t *testing.T) {
	trips := &mockTripRepo{
		listFn: func(context.Context) ([]domain.TripRecord, error) { return nil, nil },
	}
	svc := service.NewTripService(trips, emptyParticipantRepo())

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestTripService_UpdateMeta(t *testing.T) {
	stored := domain.TripRecord{ID: uuid.New(), Name: "Trip to Paris", Status: domain.StatusPlanned}
	trips := &mockTripRepo{
		getByIDFn: func(context.Context, uuid.UUID) (domain.TripRecord, error) {
			return stored, nil
		},
		updateFn: func(_ context.Context, trip domain.TripRecord) (domain.TripRecord, error) {
			return trip, nil
		},
	}
	svc := service.NewTripService(trips, emptyParticipantRepo())

	name := "Honeymoon"
	status := domain.StatusConfirmed
	got, err := svc.UpdateMeta(context.Background(), stored.ID, service.TripUpdate{Name: &name, Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "Honeymoon", got.Name)
	assert.Equal(t, domain.StatusConfirmed, got.Status)
}

func TestTripService_UpdateMeta_PartialPatch(t *testing.T) {
	stored := domain.TripRecord{ID: uuid.New(), Name: "Trip to Paris", Status: domain.StatusPlanned}
	trips := &mockTripRepo{
		getByIDFn: func(context.Context, uuid.UUID) (domain.TripRecord, error) {
			return stored, nil
		},
		updateFn: func(_ context.Context, trip domain.TripRecord) (domain.TripRecord, error) {
			return trip, nil
		},
	}
	svc := service.NewTripService(trips, emptyParticipantRepo())

	status := domain.StatusCompleted
	got, err := svc.UpdateMeta(context.Background(), stored.ID, service.TripUpdate{Status: &status})

	require.NoError(t, err)
	assert.Equal(t, "Trip to Paris", got.Name, "unset fields stay untouched")
	assert.Equal(t, domain.StatusCompleted, got.Status)
}

func TestTripService_UpdateMeta_Invalid(t *testing.T) {
	trips := &mockTripRepo{
		getByIDFn: func(context.Context, uuid.UUID) (domain.TripRecord, error) {
			return domain.TripRecord{Name: "Trip to Paris"}, nil
		},
	}
	svc := service.NewTripService(trips, emptyParticipantRepo())

	empty := ""
	_, err := svc.UpdateMeta(context.Background(), uuid.New(), service.TripUpdate{Name: &empty})
	assert.ErrorIs(t, err, domain.ErrValidation)

	bogus := domain.TripStatus("archived")
	_, err = svc.UpdateMeta(context.Background(), uuid.New(), service.TripUpdate{Status: &bogus})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_Delete_Idempotent(t *testing.T) {
	var gotID uuid.UUID
	trips := &mockTripRepo{
		deleteFn: func(_ context.Context, id uuid.UUID) error {
			gotID = id
			return nil
		},
	}
	svc := service.NewTripService(trips, emptyParticipantRepo())

	id := uuid.New()
	require.NoError(t, svc.Delete(context.Background(), id))
	assert.Equal(t, id, gotID)
}

func TestTripService_AddParticipant_DefaultsRole(t *testing.T) {
	participants := &mockParticipantRepo{
		addFn: func(_ context.Context, p domain.Participant) (domain.Participant, error) {
			p.ID = uuid.New()
			return p, nil
		},
	}
	svc := service.NewTripService(passthroughTripRepo(), participants)

	got, err := svc.AddParticipant(context.Background(), domain.Participant{TripID: uuid.New(), Name: "Ana"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleParticipant, got.Role)
}

func TestTripService_AddParticipant_Invalid(t *testing.T) {
	svc := service.NewTripService(passthroughTripRepo(), emptyParticipantRepo())

	_, err := svc.AddParticipant(context.Background(), domain.Participant{TripID: uuid.New(), Name: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.AddParticipant(context.Background(), domain.Participant{
		TripID: uuid.New(),
		Name:   "Ana",
		Role:   domain.ParticipantRole("admin"),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTripService_ListParticipants_UnknownTrip(t *testing.T) {
	trips := &mockTripRepo{
		getByIDFn: func(context.Context, uuid.UUID) (domain.TripRecord, error) {
			return domain.TripRecord{}, domain.ErrNotFound
		},
	}
	svc := service.NewTripService(trips, emptyParticipantRepo())

	_, err := svc.ListParticipants(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTripService_RemoveParticipant_NotFound(t *testing.T) {
	participants := &mockParticipantRepo{
		removeFn: func(context.Context, uuid.UUID, uuid.UUID) error {
			return domain.ErrNotFound
		},
	}
	svc := service.NewTripService(passthroughTripRepo(), participants)

	err := svc.RemoveParticipant(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
