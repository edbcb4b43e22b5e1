package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/voyago/backend/internal/domain"
	"github.com/voyago/backend/internal/service"
)

// preferencesPayload is the wire form of domain.TravelPreferences. Dates come
// in date-only form ("2006-01-02"); everything else maps one to one.
type preferencesPayload struct {
	Origin            string                `json:"origin"`
	Destination       string                `json:"destination"`
	StartDate         *openapi_types.Date   `json:"startDate,omitempty"`
	EndDate           *openapi_types.Date   `json:"endDate,omitempty"`
	Travelers         int                   `json:"travelers"`
	FlightPreference  string                `json:"flightPreference,omitempty"`
	AccommodationType string                `json:"accommodationType,omitempty"`
	ActivityInterests []string              `json:"activityInterests,omitempty"`
	BudgetTier        string                `json:"budgetTier,omitempty"`
	Services          []domain.Service      `json:"services"`
	Topology          domain.FlightTopology `json:"topology,omitempty"`
	Segments          []segmentPayload      `json:"segments,omitempty"`
}

type segmentPayload struct {
	From string              `json:"from"`
	To   string              `json:"to"`
	Date *openapi_types.Date `json:"date,omitempty"`
}

func (p preferencesPayload) toDomain() domain.TravelPreferences {
	prefs := domain.TravelPreferences{
		Origin:            p.Origin,
		Destination:       p.Destination,
		Travelers:         p.Travelers,
		FlightPreference:  p.FlightPreference,
		AccommodationType: p.AccommodationType,
		ActivityInterests: p.ActivityInterests,
		BudgetTier:        p.BudgetTier,
		Services:          p.Services,
		Topology:          p.Topology,
	}
	if p.StartDate != nil {
		prefs.StartDate = p.StartDate.Time
	}
	if p.EndDate != nil {
		prefs.EndDate = p.EndDate.Time
	}
	for _, seg := range p.Segments {
		s := domain.FlightSegment{From: seg.From, To: seg.To}
		if seg.Date != nil {
			s.Date = seg.Date.Time
		}
		prefs.Segments = append(prefs.Segments, s)
	}
	return prefs
}

// searchResponse is the wire form of a search session. The preferences are
// not echoed back; the client already has them.
type searchResponse struct {
	SearchID  uuid.UUID           `json:"searchId"`
	Result    domain.SearchResult `json:"result"`
	CreatedAt time.Time           `json:"createdAt"`
}

func sessionToResponse(session service.SearchSession) searchResponse {
	return searchResponse{
		SearchID:  session.ID,
		Result:    session.Result,
		CreatedAt: session.CreatedAt,
	}
}

// RunSearch handles POST /api/search.
func (s *Server) RunSearch(w http.ResponseWriter, r *http.Request) {
	var payload preferencesPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		badRequest(w, "invalid request body")
		return
	}

	session, err := s.search.Search(r.Context(), payload.toDomain())
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sessionToResponse(session))
}

// GetSearch handles GET /api/search/{searchID}.
// Expired and unknown sessions are indistinguishable: both 404.
func (s *Server) GetSearch(w http.ResponseWriter, r *http.Request) {
	id, ok := uuidParam(r, "searchID")
	if !ok {
		notFound(w, "search not found")
		return
	}

	session, err := s.search.Get(id)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sessionToResponse(session))
}
