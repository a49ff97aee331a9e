// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"
)

// FuelType enumerates the propulsion of a catalog car.
type FuelType string

const (
	FuelGasoline FuelType = "GASOLINE"
	FuelDiesel   FuelType = "DIESEL"
	FuelElectric FuelType = "ELECTRIC"
	FuelHybrid   FuelType = "HYBRID"
	FuelLPG      FuelType = "LPG"
)

// IsValid checks if the FuelType is a valid value.
func (f FuelType) IsValid() bool {
	switch f {
	case FuelGasoline, FuelDiesel, FuelElectric, FuelHybrid, FuelLPG:
		return true
	default:
		return false
	}
}

// Transmission enumerates gearbox types.
type Transmission string

const (
	TransmissionManual        Transmission = "MANUAL"
	TransmissionAutomatic     Transmission = "AUTOMATIC"
	TransmissionSemiAutomatic Transmission = "SEMI_AUTOMATIC"
)

// IsValid checks if the Transmission is a valid value.
func (t Transmission) IsValid() bool {
	switch t {
	case TransmissionManual, TransmissionAutomatic, TransmissionSemiAutomatic:
		return true
	default:
		return false
	}
}

// MinCatalogYear is the exclusive lower bound for a car's model year.
const MinCatalogYear = 1900

// Car is a catalog entry. It is owned by the catalog, never by a single dealership.
type Car struct {
	ID           int64        // Surrogate identifier.
	Brand        string       // Manufacturer, e.g. "Toyota".
	Model        string       // Model name, e.g. "Corolla".
	Year         int          // Model year.
	Mileage      int          // Odometer reading in kilometres.
	Color        string       // Exterior colour.
	FuelType     FuelType     // Propulsion.
	Transmission Transmission // Gearbox.
	Plate        string       // Registration plate, unique in the catalog.
	Description  *string      // Optional free-text description.
	Images       []string     // Optional image references.
	Available    bool         // False once the car is retired from the catalog.
	PublishedAt  time.Time    // Publication timestamp.
	UpdatedAt    time.Time    // Timestamp of the last modification.
}

// FullName returns "Brand Model Year", used by summaries and alerts.
func (c *Car) FullName() string {
	return fmt.Sprintf("%s %s %d", c.Brand, c.Model, c.Year)
}

// CarFilter narrows catalog searches. Nil or empty fields act as wildcards and
// every supplied field must match.
type CarFilter struct {
	Keyword       string
	Brand         string
	YearFrom      *int
	YearTo        *int
	FuelType      *FuelType
	Transmission  *Transmission
	AvailableOnly bool
	Page          Page
}

// Page is a limit/offset window over a listing.
type Page struct {
	Limit  int
	Offset int
}

// DefaultPageLimit is applied when a listing asks for no limit.
const DefaultPageLimit = 50

// MaxPageLimit caps any listing window.
const MaxPageLimit = 200

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}

	return p
}
