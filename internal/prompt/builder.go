// Package prompt builds the natural-language instruction sent to the model
// for a travel search. Build is pure: no I/O, no clock, no randomness — the
// same preferences always yield the same prompt, which keeps it trivially
// testable.
package prompt

import (
	"fmt"
	"strings"

	"github.com/voyago/backend/internal/domain"
)

// Schema fragments describing the exact JSON shape expected back per service.
// Field names here must match the json tags on the domain option types —
// a response following these fragments unmarshals directly.
const (
	flightSchema = `{"airline": "string", "flightNumber": "string", "departure": "city and airport", "arrival": "city and airport", "departureTime": "string", "arrivalTime": "string", "duration": "string", "price": number, "bookingUrl": "string", "segmentIndex": number, "segmentType": "string"}`

	hotelSchema = `{"name": "string", "address": "string", "pricePerNight": number, "rating": number, "amenities": ["string"], "bookingUrl": "string"}`

	carRentalSchema = `{"company": "string", "carType": "string", "pricePerDay": number, "bookingUrl": "string"}`

	activitySchema = `{"name": "string", "description": "string", "date": "YYYY-MM-DD", "duration": "string", "location": "string", "price": number, "bookingUrl": "string"}`

	benefitsSchema = `{"cancellation": "string", "payment": "string", "support": "string"}`
)

// Build renders the search instruction for the given preferences.
// For each requested service it emits the schema fragment above; for services
// the user did not request it instructs the model to return an empty array,
// so the response always carries all four keys.
//
// No date-ordering or geographic validation happens here — bad input produces
// a well-formed prompt and the response validator deals with whatever comes
// back.
func Build(p domain.TravelPreferences) string {
	var b strings.Builder

	b.WriteString("You are a travel booking assistant. Research realistic travel options for the following trip and respond with a single JSON object.\n\n")

	b.WriteString("Trip parameters:\n")
	fmt.Fprintf(&b, "- Origin: %s\n", p.Origin)
	fmt.Fprintf(&b, "- Destination: %s\n", p.Destination)
	if !p.StartDate.IsZero() {
		fmt.Fprintf(&b, "- Start date: %s\n", p.StartDate.Format(domain.DateFormat))
	}
	if !p.EndDate.IsZero() {
		fmt.Fprintf(&b, "- End date: %s\n", p.EndDate.Format(domain.DateFormat))
	}
	fmt.Fprintf(&b, "- Travelers: %d\n", p.Travelers)
	if p.FlightPreference != "" {
		fmt.Fprintf(&b, "- Flight preference: %s\n", p.FlightPreference)
	}
	if p.AccommodationType != "" {
		fmt.Fprintf(&b, "- Accommodation type: %s\n", p.AccommodationType)
	}
	if len(p.ActivityInterests) > 0 {
		fmt.Fprintf(&b, "- Activity interests: %s\n", strings.Join(p.ActivityInterests, ", "))
	}
	if p.BudgetTier != "" {
		fmt.Fprintf(&b, "- Budget tier: %s\n", p.BudgetTier)
	}

	b.WriteString("\nThe JSON object must have exactly these top-level keys: \"flights\", \"hotels\", \"carRentals\", \"activities\", \"benefits\", \"summary\".\n\n")

	writeServiceSection(&b, p, domain.ServiceFlights, "flights", "5", flightSchema)
	if p.HasService(domain.ServiceFlights) {
		writeFlightTopology(&b, p)
	}
	writeServiceSection(&b, p, domain.ServiceHotel, "hotels", "5", hotelSchema)
	writeServiceSection(&b, p, domain.ServiceCar, "carRentals", "3", carRentalSchema)
	writeServiceSection(&b, p, domain.ServiceActivities, "activities", "6", activitySchema)

	fmt.Fprintf(&b, "\"benefits\" must be an object of this shape: %s\n", benefitsSchema)
	b.WriteString("\"summary\" must be a short paragraph describing the overall package.\n\n")

	b.WriteString("Respond with ONLY the JSON object. No markdown fences, no commentary, no trailing text.\n")

	return b.String()
}

// writeServiceSection emits either the schema instruction for a requested
// service or the empty-array instruction for an unrequested one.
func writeServiceSection(b *strings.Builder, p domain.TravelPreferences, svc domain.Service, key, count, schema string) {
	if !p.HasService(svc) {
		fmt.Fprintf(b, "%q was not requested: return an empty array for %q.\n", key, key)
		return
	}
	fmt.Fprintf(b, "%q must be an array of up to %s objects of this shape: %s\n", key, count, schema)
}

// writeFlightTopology emits the direction-specific flight instructions.
// Round trips get two independently priced directions with from/to swapped;
// multi-city gets one block per user-supplied segment.
func writeFlightTopology(b *strings.Builder, p domain.TravelPreferences) {
	switch p.Topology {
	case domain.TopologyRoundTrip:
		b.WriteString("Flight topology: round-trip. Price each direction independently.\n")
		fmt.Fprintf(b, "Segment 0 (segmentIndex 0, segmentType \"outbound\"): from %s to %s", p.Origin, p.Destination)
		if !p.StartDate.IsZero() {
			fmt.Fprintf(b, " on %s", p.StartDate.Format(domain.DateFormat))
		}
		b.WriteString(".\n")
		fmt.Fprintf(b, "Segment 1 (segmentIndex 1, segmentType \"return\"): from %s to %s", p.Destination, p.Origin)
		if !p.EndDate.IsZero() {
			fmt.Fprintf(b, " on %s", p.EndDate.Format(domain.DateFormat))
		}
		b.WriteString(".\n")
	case domain.TopologyMultiCity:
		fmt.Fprintf(b, "Flight topology: multi-city with %d segments. Price each segment independently and tag it with its segmentIndex and segmentType \"leg\".\n", len(p.Segments))
		for i, seg := range p.Segments {
			fmt.Fprintf(b, "Segment %d (segmentIndex %d): from %s to %s", i, i, seg.From, seg.To)
			if !seg.Date.IsZero() {
				fmt.Fprintf(b, " on %s", seg.Date.Format(domain.DateFormat))
			}
			b.WriteString(".\n")
		}
	default:
		// One-way is the default for unknown topologies as well.
		fmt.Fprintf(b, "Flight topology: one-way (segmentIndex 0, segmentType \"outbound\"): from %s to %s", p.Origin, p.Destination)
		if !p.StartDate.IsZero() {
			fmt.Fprintf(b, " on %s", p.StartDate.Format(domain.DateFormat))
		}
		b.WriteString(".\n")
	}
}
