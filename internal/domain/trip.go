package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus tracks the lifecycle of a saved trip.
type TripStatus string

const (
	StatusPlanned   TripStatus = "planned"
	StatusConfirmed TripStatus = "confirmed"
	StatusCompleted TripStatus = "completed"
	StatusCancelled TripStatus = "cancelled"
)

// ValidStatus reports whether s is one of the defined trip statuses.
func ValidStatus(s TripStatus) bool {
	switch s {
	case StatusPlanned, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// TripSource records which factory built a trip.
type TripSource string

const (
	SourceDemo    TripSource = "demo"
	SourceCustom  TripSource = "custom"
	SourcePackage TripSource = "package"
)

// TripRecord is the durable entity describing a planned journey and all its
// bundled reservations. A trip owns its nested reservations, itinerary, budget,
// and participant list by value; there are no cross-trip references.
//
// Invariants maintained by the factories:
//   - Budget.Total is the exact sum of the per-category amounts.
//   - Hotel.Nights equals the night count between CheckIn and CheckOut.
//   - len(Itinerary) equals the trip duration in days.
//   - Each itinerary day's activity list is the subset of Activities whose
//     date falls on that calendar day.
type TripRecord struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Status      TripStatus `json:"status"`
	Source      TripSource `json:"source"`
	Origin      string     `json:"origin"`
	Destination string     `json:"destination"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     time.Time  `json:"end_date"`
	Travelers   int        `json:"travelers"`

	Flights    []FlightReservation   `json:"flights"`
	Hotel      *HotelReservation     `json:"hotel,omitempty"`
	CarRental  *CarRentalReservation `json:"car_rental,omitempty"`
	Activities []ActivityReservation `json:"activities"`
	Itinerary  []ItineraryDay        `json:"itinerary"`
	Budget     Budget                `json:"budget"`

	Participants []Participant `json:"participants,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FlightReservation is a booked flight leg with a display-only confirmation code.
type FlightReservation struct {
	ConfirmationCode string  `json:"confirmation_code"`
	Airline          string  `json:"airline"`
	FlightNumber     string  `json:"flight_number"`
	From             string  `json:"from"`
	To               string  `json:"to"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	SegmentType      string  `json:"segment_type,omitempty"`
	Price            float64 `json:"price"`
}

// HotelReservation is the booked accommodation for the whole stay.
type HotelReservation struct {
	ConfirmationCode string    `json:"confirmation_code"`
	Name             string    `json:"name"`
	Address          string    `json:"address,omitempty"`
	CheckIn          time.Time `json:"check_in"`
	CheckOut         time.Time `json:"check_out"`
	Nights           int       `json:"nights"`
	PricePerNight    float64   `json:"price_per_night"`
	Total            float64   `json:"total"`
	Rating           float64   `json:"rating,omitempty"`
	Amenities        []string  `json:"amenities,omitempty"`
}

// CarRentalReservation is the booked rental car for the trip duration.
type CarRentalReservation struct {
	ConfirmationCode string    `json:"confirmation_code"`
	Company          string    `json:"company"`
	CarType          string    `json:"car_type"`
	PickUpDate       time.Time `json:"pick_up_date"`
	DropOffDate      time.Time `json:"drop_off_date"`
	Days             int       `json:"days"`
	PricePerDay      float64   `json:"price_per_day"`
	Total            float64   `json:"total"`
}

// ActivityReservation is one booked activity.
// Date is zero when the source option carried no parseable date; such
// activities appear in no itinerary day.
type ActivityReservation struct {
	ConfirmationCode string    `json:"confirmation_code"`
	Name             string    `json:"name"`
	Description      string    `json:"description,omitempty"`
	Date             time.Time `json:"date,omitzero"`
	Duration         string    `json:"duration,omitempty"`
	Location         string    `json:"location,omitempty"`
	Price            float64   `json:"price"`
}

// ItineraryDay is one calendar day of the trip with the activities booked for
// that day (by name) and the meals covered by the hotel.
type ItineraryDay struct {
	Day        int       `json:"day"` // 1-based
	Date       time.Time `json:"date"`
	Activities []string  `json:"activities"`
	Meals      Meals     `json:"meals"`
}

// Meals marks which meals are covered on an itinerary day.
type Meals struct {
	Breakfast bool `json:"breakfast"`
	Lunch     bool `json:"lunch"`
	Dinner    bool `json:"dinner"`
}

// Budget is the per-category cost breakdown of a trip.
// Total is always the exact arithmetic sum of the other fields; no currency
// rounding is applied anywhere in the pipeline.
type Budget struct {
	Flights    float64 `json:"flights"`
	Hotel      float64 `json:"hotel"`
	CarRental  float64 `json:"car_rental"`
	Activities float64 `json:"activities"`
	Extras     float64 `json:"extras"`
	Total      float64 `json:"total"`
}

// Sum returns the arithmetic sum of all budget categories.
func (b Budget) Sum() float64 {
	return b.Flights + b.Hotel + b.CarRental + b.Activities + b.Extras
}
