package factory

import (
	"fmt"
	"time"

	"github.com/voyago/backend/internal/domain"
)

// NewDemoTrip builds a trip populated with synthetic reservation data so the
// planner can be explored without calling the AI endpoint. The option values
// are fixed apart from the city names and dates taken from prefs. Missing
// dates default to a one-week trip starting two weeks out.
func NewDemoTrip(name string, prefs domain.TravelPreferences) domain.TripRecord {
	if prefs.StartDate.IsZero() {
		prefs.StartDate = demoStartDate(time.Now())
		prefs.EndDate = prefs.StartDate.AddDate(0, 0, 7)
	}
	return assemble(name, domain.SourceDemo, prefs, demoSelection(prefs))
}

// demoSelection fabricates a plausible round-trip selection for prefs.
func demoSelection(prefs domain.TravelPreferences) Selection {
	sel := Selection{
		Flights: []domain.FlightOption{
			{
				Airline:       placeholderAirline,
				FlightNumber:  "VY 101",
				Departure:     prefs.Origin,
				Arrival:       prefs.Destination,
				DepartureTime: "09:30",
				ArrivalTime:   "14:05",
				Duration:      "4h 35m",
				Price:         450,
				SegmentIndex:  0,
				SegmentType:   "outbound",
			},
			{
				Airline:       placeholderAirline,
				FlightNumber:  "VY 102",
				Departure:     prefs.Destination,
				Arrival:       prefs.Origin,
				DepartureTime: "16:20",
				ArrivalTime:   "20:55",
				Duration:      "4h 35m",
				Price:         430,
				SegmentIndex:  1,
				SegmentType:   "return",
			},
		},
		Hotel: &domain.HotelOption{
			Name:          "Grand Plaza Hotel",
			Address:       fmt.Sprintf("1 Main Square, %s", prefs.Destination),
			PricePerNight: 120,
			Rating:        4.3,
			Amenities:     []string{"WiFi", "Pool", "Breakfast included"},
		},
		CarRental: &domain.CarRentalOption{
			Company:     "City Rentals",
			CarType:     "Compact",
			PricePerDay: 45,
		},
	}

	// Two sample activities on the second and third day, when dates allow.
	if !prefs.StartDate.IsZero() {
		sel.Activities = []domain.ActivityOption{
			{
				Name:        fmt.Sprintf("%s walking tour", prefs.Destination),
				Description: "Guided old-town walking tour.",
				Date:        prefs.StartDate.AddDate(0, 0, 1).Format(domain.DateFormat),
				Duration:    "3h",
				Location:    prefs.Destination,
				Price:       35,
			},
			{
				Name:        "Food market visit",
				Description: "Tasting tour through the central market.",
				Date:        prefs.StartDate.AddDate(0, 0, 2).Format(domain.DateFormat),
				Duration:    "2h",
				Location:    prefs.Destination,
				Price:       55,
			},
		}
	}
	return sel
}

// demoStartDate is used by callers that want a demo trip without dates:
// two weeks out, at midnight UTC.
func demoStartDate(now time.Time) time.Time {
	d := now.UTC().AddDate(0, 0, 14)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
}
