package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/voyago/backend/internal/domain"
)

// AISearcher produces travel options for a set of preferences.
// Implemented by ai.Searcher; defined here so tests can stub the AI call.
type AISearcher interface {
	Search(ctx context.Context, prefs domain.TravelPreferences) (domain.SearchResult, error)
}

// SearchSession is a completed search kept server-side for a limited time.
// The trip-creation endpoints reference it by ID so the client never has to
// re-send the full result payload.
type SearchSession struct {
	ID          uuid.UUID                `json:"id"`
	Preferences domain.TravelPreferences `json:"preferences"`
	Result      domain.SearchResult      `json:"result"`
	CreatedAt   time.Time                `json:"createdAt"`
}

// SearchService runs AI-backed travel searches and caches the results.
type SearchService struct {
	searcher AISearcher
	sessions *cache.Cache
}

// NewSearchService constructs a SearchService whose sessions expire after
// ttl. Expired sessions are swept at the same interval.
func NewSearchService(searcher AISearcher, ttl time.Duration) *SearchService {
	return &SearchService{
		searcher: searcher,
		sessions: cache.New(ttl, ttl),
	}
}

// Search validates the preferences, asks the AI for options, and stores the
// outcome as a retrievable session. At least one service must be requested —
// an empty selection would always come back empty.
func (s *SearchService) Search(ctx context.Context, prefs domain.TravelPreferences) (SearchSession, error) {
	if err := validatePreferences(prefs); err != nil {
		return SearchSession{}, err
	}
	if len(prefs.Services) == 0 {
		return SearchSession{}, fmt.Errorf("%w: at least one service must be requested", domain.ErrValidation)
	}

	result, err := s.searcher.Search(ctx, prefs)
	if err != nil {
		return SearchSession{}, fmt.Errorf("service.SearchService.Search: %w", err)
	}

	session := SearchSession{
		ID:          uuid.New(),
		Preferences: prefs,
		Result:      result,
		CreatedAt:   time.Now().UTC(),
	}
	s.sessions.SetDefault(session.ID.String(), session)
	return session, nil
}

// Get returns a stored search session. Expired or unknown sessions yield
// domain.ErrNotFound, which the client treats as "search again".
func (s *SearchService) Get(id uuid.UUID) (SearchSession, error) {
	v, ok := s.sessions.Get(id.String())
	if !ok {
		return SearchSession{}, fmt.Errorf("service.SearchService.Get: %w", domain.ErrNotFound)
	}
	return v.(SearchSession), nil
}
