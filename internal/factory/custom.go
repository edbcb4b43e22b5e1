package factory

import "github.com/voyago/backend/internal/domain"

// NewCustomTrip builds a trip from the options the user picked out of a
// search result. Empty selections are fine: a trip with no reservations still
// gets a full itinerary and a zero budget.
func NewCustomTrip(name string, prefs domain.TravelPreferences, sel Selection) domain.TripRecord {
	return assemble(name, domain.SourceCustom, prefs, sel)
}
