package domain

import (
	"math"
	"time"
)

// DateFormat is the wire format for date-only values in option payloads.
const DateFormat = "2006-01-02"

// defaultTripDays is the assumed trip length when the date range is missing
// or nonsensical.
const defaultTripDays = 7

// CalculateNights returns the number of hotel nights between checkIn and
// checkOut, rounding partial days up. Returns 0 when checkOut is not after
// checkIn.
func CalculateNights(checkIn, checkOut time.Time) int {
	if !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
}

// TripDurationDays returns the trip length in days derived from the date
// range — the number of itinerary days a trip spans. A trip from the 15th to
// the 24th is 9 days (and 8 hotel nights). Falls back to 7 days when either
// date is zero or the range is inverted.
func TripDurationDays(start, end time.Time) int {
	if start.IsZero() || end.IsZero() || !end.After(start) {
		return defaultTripDays
	}
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// SameDay reports whether a and b fall on the same calendar day in UTC.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}
