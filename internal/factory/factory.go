// Package factory assembles TripRecord values from preferences and selected
// options. All factories are pure aside from confirmation-code randomness and
// total: missing inputs degrade to placeholder values instead of failing.
//
// Three entry points differ only in where the reservation data comes from —
// synthetic demo data (NewDemoTrip), a user-selected subset of a search
// result (NewCustomTrip), or a pre-bundled package (NewPackageTrip). All
// converge on the same derivation: trip length from the date range, option →
// reservation mapping with generated confirmation codes, a day-by-day
// itinerary, and a budget whose Total is the exact sum of its parts.
package factory

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/voyago/backend/internal/domain"
)

// placeholderAirline substitutes for options that arrive without an airline
// name, so a degraded record still renders.
const placeholderAirline = "Airline"

// Confirmation-code prefixes per reservation category.
const (
	flightCodePrefix   = "FL"
	hotelCodePrefix    = "HT"
	carCodePrefix      = "CR"
	activityCodePrefix = "AC"
	codeAlphabet       = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	codeLen            = 6
)

// Selection is the set of options the user picked from a SearchResult.
// Any field may be empty/nil; Extras is a free-form additional budget amount.
type Selection struct {
	Flights    []domain.FlightOption
	Hotel      *domain.HotelOption
	CarRental  *domain.CarRentalOption
	Activities []domain.ActivityOption
	Extras     float64
}

// confirmationCode returns prefix plus codeLen random base36 characters,
// uppercased. Display-only; not a real booking reference.
func confirmationCode(prefix string) string {
	b := make([]byte, codeLen)
	for i := range b {
		b[i] = codeAlphabet[rand.IntN(len(codeAlphabet))]
	}
	return prefix + string(b)
}

// assemble runs the shared derivation steps for every factory variant.
func assemble(name string, source domain.TripSource, prefs domain.TravelPreferences, sel Selection) domain.TripRecord {
	if strings.TrimSpace(name) == "" {
		name = fmt.Sprintf("Trip to %s", prefs.Destination)
	}

	days := domain.TripDurationDays(prefs.StartDate, prefs.EndDate)

	trip := domain.TripRecord{
		Name:        name,
		Status:      domain.StatusPlanned,
		Source:      source,
		Origin:      prefs.Origin,
		Destination: prefs.Destination,
		StartDate:   prefs.StartDate,
		EndDate:     prefs.EndDate,
		Travelers:   prefs.Travelers,
	}

	trip.Flights = lo.Map(sel.Flights, func(opt domain.FlightOption, _ int) domain.FlightReservation {
		return flightReservation(opt)
	})
	trip.Activities = lo.Map(sel.Activities, func(opt domain.ActivityOption, _ int) domain.ActivityReservation {
		return activityReservation(opt)
	})

	if sel.Hotel != nil {
		h := hotelReservation(*sel.Hotel, prefs.StartDate, days)
		trip.Hotel = &h
	}
	if sel.CarRental != nil {
		c := carRentalReservation(*sel.CarRental, prefs.StartDate, days)
		trip.CarRental = &c
	}

	trip.Itinerary = buildItinerary(prefs.StartDate, days, trip.Activities, trip.Hotel)
	trip.Budget = buildBudget(trip, sel.Extras)

	return trip
}

func flightReservation(opt domain.FlightOption) domain.FlightReservation {
	airline := opt.Airline
	if airline == "" {
		airline = placeholderAirline
	}
	return domain.FlightReservation{
		ConfirmationCode: confirmationCode(flightCodePrefix),
		Airline:          airline,
		FlightNumber:     opt.FlightNumber,
		From:             opt.Departure,
		To:               opt.Arrival,
		DepartureTime:    opt.DepartureTime,
		ArrivalTime:      opt.ArrivalTime,
		SegmentType:      opt.SegmentType,
		Price:            opt.Price,
	}
}

// hotelReservation books the full stay: check-in on the start date, one night
// per trip day minus the travel-home day ("9 days, 8 nights"), at least one
// night. Nights always equals CalculateNights(CheckIn, CheckOut).
func hotelReservation(opt domain.HotelOption, start time.Time, days int) domain.HotelReservation {
	nights := days - 1
	if nights < 1 {
		nights = 1
	}
	checkOut := start
	if !start.IsZero() {
		checkOut = start.AddDate(0, 0, nights)
	}
	return domain.HotelReservation{
		ConfirmationCode: confirmationCode(hotelCodePrefix),
		Name:             opt.Name,
		Address:          opt.Address,
		CheckIn:          start,
		CheckOut:         checkOut,
		Nights:           nights,
		PricePerNight:    opt.PricePerNight,
		Total:            opt.PricePerNight * float64(nights),
		Rating:           opt.Rating,
		Amenities:        opt.Amenities,
	}
}

// carRentalReservation rents for the whole trip, pickup on arrival day.
func carRentalReservation(opt domain.CarRentalOption, start time.Time, days int) domain.CarRentalReservation {
	dropOff := start
	if !start.IsZero() {
		dropOff = start.AddDate(0, 0, days)
	}
	return domain.CarRentalReservation{
		ConfirmationCode: confirmationCode(carCodePrefix),
		Company:          opt.Company,
		CarType:          opt.CarType,
		PickUpDate:       start,
		DropOffDate:      dropOff,
		Days:             days,
		PricePerDay:      opt.PricePerDay,
		Total:            opt.PricePerDay * float64(days),
	}
}

func activityReservation(opt domain.ActivityOption) domain.ActivityReservation {
	res := domain.ActivityReservation{
		ConfirmationCode: confirmationCode(activityCodePrefix),
		Name:             opt.Name,
		Description:      opt.Description,
		Duration:         opt.Duration,
		Location:         opt.Location,
		Price:            opt.Price,
	}
	// Unparseable or absent dates stay zero; the activity then belongs to no
	// itinerary day but still counts toward the budget.
	if d, err := time.Parse(domain.DateFormat, opt.Date); err == nil {
		res.Date = d
	}
	return res
}

// buildItinerary synthesizes one entry per trip day. Each day lists the
// booked activities whose date falls on that calendar day; meals come from
// the hotel's amenities.
func buildItinerary(start time.Time, days int, activities []domain.ActivityReservation, hotel *domain.HotelReservation) []domain.ItineraryDay {
	meals := mealsFromHotel(hotel)
	itinerary := make([]domain.ItineraryDay, days)
	for i := range itinerary {
		var date time.Time
		if !start.IsZero() {
			date = start.AddDate(0, 0, i)
		}
		day := domain.ItineraryDay{
			Day:        i + 1,
			Date:       date,
			Activities: []string{},
			Meals:      meals,
		}
		if !date.IsZero() {
			for _, act := range activities {
				if !act.Date.IsZero() && domain.SameDay(act.Date, date) {
					day.Activities = append(day.Activities, act.Name)
				}
			}
		}
		itinerary[i] = day
	}
	return itinerary
}

// mealsFromHotel derives the covered meals from the hotel's amenity list.
// "all inclusive" covers everything, "half board" breakfast and dinner, any
// breakfast amenity just breakfast.
func mealsFromHotel(hotel *domain.HotelReservation) domain.Meals {
	if hotel == nil {
		return domain.Meals{}
	}
	var m domain.Meals
	for _, a := range hotel.Amenities {
		switch lower := strings.ToLower(a); {
		case strings.Contains(lower, "all inclusive"), strings.Contains(lower, "all-inclusive"):
			return domain.Meals{Breakfast: true, Lunch: true, Dinner: true}
		case strings.Contains(lower, "half board"):
			m.Breakfast, m.Dinner = true, true
		case strings.Contains(lower, "breakfast"):
			m.Breakfast = true
		}
	}
	return m
}

// buildBudget sums per-category costs. Total is the exact arithmetic sum —
// no rounding anywhere, matching the rest of the pipeline.
func buildBudget(trip domain.TripRecord, extras float64) domain.Budget {
	b := domain.Budget{
		Flights:    lo.SumBy(trip.Flights, func(f domain.FlightReservation) float64 { return f.Price }),
		Activities: lo.SumBy(trip.Activities, func(a domain.ActivityReservation) float64 { return a.Price }),
		Extras:     extras,
	}
	if trip.Hotel != nil {
		b.Hotel = trip.Hotel.Total
	}
	if trip.CarRental != nil {
		b.CarRental = trip.CarRental.Total
	}
	b.Total = b.Sum()
	return b
}
