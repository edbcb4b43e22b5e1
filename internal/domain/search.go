package domain

// SearchResult holds one AI search response: four option lists plus booking
// benefits and a one-paragraph summary. It is a session-scoped value — each
// new search replaces the previous result, and nothing here is persisted.
//
// The json tags mirror the schema the prompt builder asks the model for, so a
// validated response unmarshals directly into this type.
type SearchResult struct {
	Flights    []FlightOption    `json:"flights"`
	Hotels     []HotelOption     `json:"hotels"`
	CarRentals []CarRentalOption `json:"carRentals"`
	Activities []ActivityOption  `json:"activities"`
	Benefits   Benefits          `json:"benefits"`
	Summary    string            `json:"summary"`
}

// Benefits carries the policy strings the model attaches to a result set.
type Benefits struct {
	Cancellation string `json:"cancellation"`
	Payment      string `json:"payment"`
	Support      string `json:"support"`
}

// FlightOption is one candidate flight returned by the model.
// Departure/arrival times are display strings exactly as the model produced
// them; only Price participates in arithmetic.
type FlightOption struct {
	Airline       string  `json:"airline"`
	FlightNumber  string  `json:"flightNumber"`
	Departure     string  `json:"departure"`
	Arrival       string  `json:"arrival"`
	DepartureTime string  `json:"departureTime"`
	ArrivalTime   string  `json:"arrivalTime"`
	Duration      string  `json:"duration"`
	Price         float64 `json:"price"`
	BookingURL    string  `json:"bookingUrl"`

	// SegmentIndex/SegmentType tag the direction for round-trip and
	// multi-city searches (0=outbound, 1=return for round trips).
	SegmentIndex int    `json:"segmentIndex"`
	SegmentType  string `json:"segmentType"`
}

// HotelOption is one candidate hotel returned by the model.
type HotelOption struct {
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	PricePerNight float64  `json:"pricePerNight"`
	Rating        float64  `json:"rating"`
	Amenities     []string `json:"amenities"`
	BookingURL    string   `json:"bookingUrl"`
}

// CarRentalOption is one candidate car rental returned by the model.
type CarRentalOption struct {
	Company     string  `json:"company"`
	CarType     string  `json:"carType"`
	PricePerDay float64 `json:"pricePerDay"`
	BookingURL  string  `json:"bookingUrl"`
}

// ActivityOption is one candidate activity returned by the model.
// Date is a "2006-01-02" string (or empty); the factories parse it when
// assigning activities to itinerary days.
type ActivityOption struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Duration    string  `json:"duration"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
	BookingURL  string  `json:"bookingUrl"`
}
