package handler

import (
	"encoding/json"
	"net/http"

	"github.com/voyago/backend/internal/domain"
)

// addParticipantRequest is the body for POST /api/trips/{tripID}/participants.
type addParticipantRequest struct {
	Name  string                 `json:"name"`
	Email string                 `json:"email,omitempty"`
	Role  domain.ParticipantRole `json:"role,omitempty"`
}

// ListParticipants handles GET /api/trips/{tripID}/participants.
func (s *Server) ListParticipants(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(r, "tripID")
	if !ok {
		notFound(w, "trip not found")
		return
	}

	list, err := s.trips.ListParticipants(r.Context(), tripID)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"data": list})
}

// AddParticipant handles POST /api/trips/{tripID}/participants.
func (s *Server) AddParticipant(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(r, "tripID")
	if !ok {
		notFound(w, "trip not found")
		return
	}

	var req addParticipantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	added, err := s.trips.AddParticipant(r.Context(), domain.Participant{
		TripID: tripID,
		Name:   req.Name,
		Email:  req.Email,
		Role:   req.Role,
	})
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, added)
}

// RemoveParticipant handles DELETE /api/trips/{tripID}/participants/{participantID}.
func (s *Server) RemoveParticipant(w http.ResponseWriter, r *http.Request) {
	tripID, ok := uuidParam(r, "tripID")
	if !ok {
		notFound(w, "trip not found")
		return
	}
	participantID, ok := uuidParam(r, "participantID")
	if !ok {
		notFound(w, "participant not found")
		return
	}

	if err := s.trips.RemoveParticipant(r.Context(), tripID, participantID); err != nil {
		respondError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
