package factory

import "github.com/voyago/backend/internal/domain"

// Package is a pre-bundled set of reservations sold as one unit.
// Extras is a flat surcharge the bundle adds on top of its parts.
type Package struct {
	Name       string
	Flights    []domain.FlightOption
	Hotel      *domain.HotelOption
	CarRental  *domain.CarRentalOption
	Activities []domain.ActivityOption
	Extras     float64
}

// NewPackageTrip builds a trip from a pre-bundled package. The package name
// wins over an empty trip name; the derivation is otherwise identical to a
// custom trip.
func NewPackageTrip(name string, prefs domain.TravelPreferences, pkg Package) domain.TripRecord {
	if name == "" {
		name = pkg.Name
	}
	return assemble(name, domain.SourcePackage, prefs, Selection{
		Flights:    pkg.Flights,
		Hotel:      pkg.Hotel,
		CarRental:  pkg.CarRental,
		Activities: pkg.Activities,
		Extras:     pkg.Extras,
	})
}
