package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/voyago/backend/internal/domain"
	"github.com/voyago/backend/internal/factory"
	"github.com/voyago/backend/internal/handler"
	"github.com/voyago/backend/internal/service"
)

// mockTripServicer is a test double for handler.TripServicer.
// Set only the method fields your test needs.
type mockTripServicer struct {
	createCustom      func(ctx context.Context, name string, prefs domain.TravelPreferences, sel factory.Selection) (domain.TripRecord, error)
	createDemo        func(ctx context.Context, name string, prefs domain.TravelPreferences) (domain.TripRecord, error)
	createPackage     func(ctx context.Context, name string, prefs domain.TravelPreferences, pkg factory.Package) (domain.TripRecord, error)
	getByID           func(ctx context.Context, id uuid.UUID) (domain.TripRecord, error)
	list              func(ctx context.Context) ([]domain.TripRecord, error)
	updateMeta        func(ctx context.Context, id uuid.UUID, update service.TripUpdate) (domain.TripRecord, error)
	delete            func(ctx context.Context, id uuid.UUID) error
	addParticipant    func(ctx context.Context, p domain.Participant) (domain.Participant, error)
	listParticipants  func(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	removeParticipant func(ctx context.Context, tripID, participantID uuid.UUID) error
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

func (m *mockTripServicer) CreateCustom(ctx context.Context, name string, prefs domain.TravelPreferences, sel factory.Selection) (domain.TripRecord, error) {
	return m.createCustom(ctx, name, prefs, sel)
}
func (m *mockTripServicer) CreateDemo(ctx context.Context, name string, prefs domain.TravelPreferences) (domain.TripRecord, error) {
	return m.createDemo(ctx, name, prefs)
}
func (m *mockTripServicer) CreatePackage(ctx context.Context, name string, prefs domain.TravelPreferences, pkg factory.Package) (domain.TripRecord, error) {
	return m.createPackage(ctx, name, prefs, pkg)
}
func (m *mockTripServicer) GetByID(ctx context.Context, id uuid.UUID) (domain.TripRecord, error) {
	return m.getByID(ctx, id)
}
func (m *mockTripServicer) List(ctx context.Context) ([]domain.TripRecord, error) {
	return m.list(ctx)
}
func (m *mockTripServicer) UpdateMeta(ctx context.Context, id uuid.UUID, update service.TripUpdate) (domain.TripRecord, error) {
	return m.updateMeta(ctx, id, update)
}
func (m *mockTripServicer) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}
func (m *mockTripServicer) AddParticipant(ctx context.Context, p domain.Participant) (domain.Participant, error) {
	return m.addParticipant(ctx, p)
}
func (m *mockTripServicer) ListParticipants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error) {
	return m.listParticipants(ctx, tripID)
}
func (m *mockTripServicer) RemoveParticipant(ctx context.Context, tripID, participantID uuid.UUID) error {
	return m.removeParticipant(ctx, tripID, participantID)
}

// mockSearchServicer is a test double for handler.SearchServicer.
type mockSearchServicer struct {
	search func(ctx context.Context, prefs domain.TravelPreferences) (service.SearchSession, error)
	get    func(id uuid.UUID) (service.SearchSession, error)
}

var _ handler.SearchServicer = (*mockSearchServicer)(nil)

func (m *mockSearchServicer) Search(ctx context.Context, prefs domain.TravelPreferences) (service.SearchSession, error) {
	return m.search(ctx, prefs)
}
func (m *mockSearchServicer) Get(id uuid.UUID) (service.SearchSession, error) {
	return m.get(id)
}

// ---- helpers ---------------------------------------------------------------

// newHTTPHandler wires a Server with the given mocks into the chi router,
// mirroring how main.go wires it in production.
func newHTTPHandler(search handler.SearchServicer, trips handler.TripServicer) http.Handler {
	return handler.NewServer(search, trips).Routes()
}

func tripRecordFixture() domain.TripRecord {
	start := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	return domain.TripRecord{
		ID:          uuid.New(),
		Name:        "Trip to Paris",
		Status:      domain.StatusPlanned,
		Source:      domain.SourceCustom,
		Origin:      "Santo Domingo",
		Destination: "Paris",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 9),
		Travelers:   2,
		Budget:      domain.Budget{Flights: 680, Hotel: 3200, Total: 3880},
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
}

func sessionFixture() service.SearchSession {
	return service.SearchSession{
		ID: uuid.New(),
		Preferences: domain.TravelPreferences{
			Origin:      "Santo Domingo",
			Destination: "Paris",
			Travelers:   2,
			Services:    []domain.Service{domain.ServiceFlights},
		},
		Result: domain.SearchResult{
			Flights: []domain.FlightOption{{Airline: "Air France", FlightNumber: "AF 0693", Price: 680}},
			Summary: "A direct Air France flight.",
		},
		CreatedAt: time.Now().UTC(),
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}
