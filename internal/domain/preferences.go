// Package domain contains the core data types for the Voyago travel planner.
// This package has zero dependencies on other internal packages and is
// imported by every layer above it (prompt, ai, factory, repo, service,
// handler).
package domain

import "time"

// Service identifies one plannable service category.
type Service string

// The full set of plannable services. A search or trip covers a subset.
const (
	ServiceFlights    Service = "flights"
	ServiceHotel      Service = "hotel"
	ServiceCar        Service = "car"
	ServiceActivities Service = "activities"
)

// AllServices lists every service in stable order.
// Used by the prompt builder to emit empty-array instructions for services
// the user did not request.
var AllServices = []Service{ServiceFlights, ServiceHotel, ServiceCar, ServiceActivities}

// FlightTopology describes the shape of the flight itinerary being planned.
type FlightTopology string

const (
	TopologyOneWay    FlightTopology = "one-way"
	TopologyRoundTrip FlightTopology = "round-trip"
	TopologyMultiCity FlightTopology = "multi-city"
)

// FlightSegment is one directional leg of a multi-city itinerary.
// Date is optional; a zero value means "let the model pick".
type FlightSegment struct {
	From string    `json:"from"`
	To   string    `json:"to"`
	Date time.Time `json:"date,omitzero"`
}

// TravelPreferences is the flat set of parameters collected by the planning
// wizard. It is the immutable input to the prompt builder and the trip
// factories; nothing in this repo mutates it after construction.
type TravelPreferences struct {
	Origin      string    `json:"origin"`
	Destination string    `json:"destination"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	Travelers   int       `json:"travelers"`

	// Free-form preference strings fed verbatim into the prompt.
	FlightPreference  string   `json:"flight_preference,omitempty"`
	AccommodationType string   `json:"accommodation_type,omitempty"`
	ActivityInterests []string `json:"activity_interests,omitempty"`
	BudgetTier        string   `json:"budget_tier,omitempty"`

	// Services is the subset of AllServices the user opted to plan.
	Services []Service `json:"services"`

	// Topology selects the flight itinerary shape; Segments is only consulted
	// for TopologyMultiCity.
	Topology FlightTopology  `json:"topology"`
	Segments []FlightSegment `json:"segments,omitempty"`
}

// HasService reports whether s is part of the selected service set.
func (p TravelPreferences) HasService(s Service) bool {
	for _, sel := range p.Services {
		if sel == s {
			return true
		}
	}
	return false
}
