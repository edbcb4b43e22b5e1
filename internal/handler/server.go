// Package handler implements the HTTP handlers for the Voyago API.
// All handlers are methods on Server; methods are split into domain-specific
// files (search.go, trip.go, participant.go, health.go) but share the same
// Server struct so they can access its dependencies. Routes assembles the
// chi router for the whole API surface.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/voyago/backend/internal/domain"
	"github.com/voyago/backend/internal/factory"
	"github.com/voyago/backend/internal/service"
	"github.com/voyago/backend/spec"
)

// SearchServicer defines the search operations the handlers depend on.
// Defining the interface here (in the consumer package) lets handler tests
// inject a mock without touching the AI client.
type SearchServicer interface {
	Search(ctx context.Context, prefs domain.TravelPreferences) (service.SearchSession, error)
	Get(id uuid.UUID) (service.SearchSession, error)
}

// TripServicer defines the trip operations the handlers depend on.
type TripServicer interface {
	CreateCustom(ctx context.Context, name string, prefs domain.TravelPreferences, sel factory.Selection) (domain.TripRecord, error)
	CreateDemo(ctx context.Context, name string, prefs domain.TravelPreferences) (domain.TripRecord, error)
	CreatePackage(ctx context.Context, name string, prefs domain.TravelPreferences, pkg factory.Package) (domain.TripRecord, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.TripRecord, error)
	List(ctx context.Context) ([]domain.TripRecord, error)
	UpdateMeta(ctx context.Context, id uuid.UUID, update service.TripUpdate) (domain.TripRecord, error)
	Delete(ctx context.Context, id uuid.UUID) error
	AddParticipant(ctx context.Context, p domain.Participant) (domain.Participant, error)
	ListParticipants(ctx context.Context, tripID uuid.UUID) ([]domain.Participant, error)
	RemoveParticipant(ctx context.Context, tripID, participantID uuid.UUID) error
}

// Server holds the handler dependencies for all API endpoints.
type Server struct {
	search SearchServicer
	trips  TripServicer
}

// NewServer constructs the Server with all its dependencies.
func NewServer(search SearchServicer, trips TripServicer) *Server {
	return &Server{search: search, trips: trips}
}

// Routes returns the API router. Cross-cutting middleware (request IDs,
// logging, CORS, body limits) is applied by the caller in main.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/healthz", s.Health)
	r.Get("/openapi.yaml", serveOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Post("/search", s.RunSearch)
		r.Get("/search/{searchID}", s.GetSearch)

		r.Route("/trips", func(r chi.Router) {
			r.Get("/", s.ListTrips)
			r.Post("/", s.CreateTrip)
			r.Get("/export", s.ExportTrips)
			r.Post("/demo", s.CreateDemoTrip)
			r.Post("/package", s.CreatePackageTrip)

			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.GetTrip)
				r.Patch("/", s.UpdateTrip)
				r.Delete("/", s.DeleteTrip)

				r.Get("/participants", s.ListParticipants)
				r.Post("/participants", s.AddParticipant)
				r.Delete("/participants/{participantID}", s.RemoveParticipant)
			})
		})
	})

	return r
}

func serveOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// uuidParam parses a chi URL parameter as a UUID.
func uuidParam(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	return id, err == nil
}
