package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/voyago/backend/internal/domain"
)

// requiredArrays are the top-level keys every search response must carry,
// even when the corresponding service was not requested (the prompt demands
// empty arrays in that case).
var requiredArrays = []string{"flights", "hotels", "carRentals", "activities"}

// parseSearchResult turns the raw completion text into a SearchResult.
// Markdown code fences are stripped first — models occasionally wrap JSON in
// ```json fences despite being told not to. A missing array key or non-JSON
// text yields ErrMalformedResponse; field-level shape is not validated beyond
// what unmarshalling enforces, and absent fields degrade to zero values.
func parseSearchResult(raw string) (domain.SearchResult, error) {
	text := stripFences(raw)

	var top map[string]json.RawMessage
	if err := json.Unmarshal([]byte(text), &top); err != nil {
		return domain.SearchResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	for _, key := range requiredArrays {
		if _, ok := top[key]; !ok {
			return domain.SearchResult{}, fmt.Errorf("%w: missing %q array", ErrMalformedResponse, key)
		}
	}

	var result domain.SearchResult
	if err := json.Unmarshal([]byte(text), &result); err != nil {
		return domain.SearchResult{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	return result, nil
}

// stripFences removes a surrounding Markdown code fence, with or without a
// language label, leaving any unfenced text untouched.
func stripFences(raw string) string {
	s := strings.TrimSpace(raw)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	// Drop the opening fence line ("```" or "```json").
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
