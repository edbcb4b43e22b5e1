package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/google/uuid"

	"github.com/voyago/backend/internal/domain"
	"github.com/voyago/backend/internal/factory"
	"github.com/voyago/backend/internal/service"
)

// selectionPayload carries the options the user picked from a search result.
// The option types are the same ones the model returned, so a client can pass
// entries from a search response straight through.
type selectionPayload struct {
	Flights    []domain.FlightOption   `json:"flights,omitempty"`
	Hotel      *domain.HotelOption     `json:"hotel,omitempty"`
	CarRental  *domain.CarRentalOption `json:"carRental,omitempty"`
	Activities []domain.ActivityOption `json:"activities,omitempty"`
	Extras     float64                 `json:"extras,omitempty"`
}

func (p selectionPayload) toSelection() factory.Selection {
	return factory.Selection{
		Flights:    p.Flights,
		Hotel:      p.Hotel,
		CarRental:  p.CarRental,
		Activities: p.Activities,
		Extras:     p.Extras,
	}
}

// createTripRequest is the body for POST /api/trips. Preferences may be given
// inline or resolved from a cached search via searchId; inline preferences win
// when both are present.
type createTripRequest struct {
	Name        string              `json:"name,omitempty"`
	SearchID    *uuid.UUID          `json:"searchId,omitempty"`
	Preferences *preferencesPayload `json:"preferences,omitempty"`
	Selection   selectionPayload    `json:"selection"`
}

// createDemoTripRequest is the body for POST /api/trips/demo.
type createDemoTripRequest struct {
	Name        string             `json:"name,omitempty"`
	Preferences preferencesPayload `json:"preferences"`
}

// packagePayload is the wire form of a pre-bundled trip package.
type packagePayload struct {
	Name       string                  `json:"name"`
	Flights    []domain.FlightOption   `json:"flights,omitempty"`
	Hotel      *domain.HotelOption     `json:"hotel,omitempty"`
	CarRental  *domain.CarRentalOption `json:"carRental,omitempty"`
	Activities []domain.ActivityOption `json:"activities,omitempty"`
	Extras     float64                 `json:"extras,omitempty"`
}

// createPackageTripRequest is the body for POST /api/trips/package.
type createPackageTripRequest struct {
	Name        string             `json:"name,omitempty"`
	Preferences preferencesPayload `json:"preferences"`
	Package     packagePayload     `json:"package"`
}

// updateTripRequest is the body for PATCH /api/trips/{id}. Absent fields are
// left untouched.
type updateTripRequest struct {
	Name   *string            `json:"name,omitempty"`
	Status *domain.TripStatus `json:"status,omitempty"`
}

// CreateTrip handles POST /api/trips.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	var prefs domain.TravelPreferences
	switch {
	case req.Preferences != nil:
		prefs = req.Preferences.toDomain()
	case req.SearchID != nil:
		session, err := s.search.Get(*req.SearchID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				notFound(w, "search session expired or unknown; search again")
				return
			}
			respondError(w, err)
			return
		}
		prefs = session.Preferences
	default:
		badRequest(w, "either preferences or searchId is required")
		return
	}

	trip, err := s.trips.CreateCustom(r.Context(), req.Name, prefs, req.Selection.toSelection())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, trip)
}

// CreateDemoTrip handles POST /api/trips/demo.
func (s *Server) CreateDemoTrip(w http.ResponseWriter, r *http.Request) {
	var req createDemoTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	trip, err := s.trips.CreateDemo(r.Context(), req.Name, req.Preferences.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, trip)
}

// CreatePackageTrip handles POST /api/trips/package.
func (s *Server) CreatePackageTrip(w http.ResponseWriter, r *http.Request) {
	var req createPackageTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	pkg := factory.Package{
		Name:       req.Package.Name,
		Flights:    req.Package.Flights,
		Hotel:      req.Package.Hotel,
		CarRental:  req.Package.CarRental,
		Activities: req.Package.Activities,
		Extras:     req.Package.Extras,
	}

	trip, err := s.trips.CreatePackage(r.Context(), req.Name, req.Preferences.toDomain(), pkg)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, trip)
}

// ListTrips handles GET /api/trips.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.trips.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"data": trips})
}

// GetTrip handles GET /api/trips/{tripID}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "tripID")
	if !ok {
		notFound(w, "trip not found")
		return
	}

	trip, err := s.trips.GetByID(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

// UpdateTrip handles PATCH /api/trips/{tripID}.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "tripID")
	if !ok {
		notFound(w, "trip not found")
		return
	}

	var req updateTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	trip, err := s.trips.UpdateMeta(r.Context(), id, service.TripUpdate{Name: req.Name, Status: req.Status})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

// DeleteTrip handles DELETE /api/trips/{tripID}. Always 204 on success,
// including for ids that were never stored.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "tripID")
	if !ok {
		notFound(w, "trip not found")
		return
	}

	if err := s.trips.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
