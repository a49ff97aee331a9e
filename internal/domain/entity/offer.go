package entity

import (
	"math"
	"time"
)

// CarOffer is a dealership's priced listing of one catalog car.
// Availability flips only through purchase confirmation/cancellation or
// dealership delisting while no purchase references the offer.
type CarOffer struct {
	ID           int64     // Surrogate identifier.
	CarID        int64     // Listed catalog car.
	DealershipID int64     // Listing dealership (a User with RoleDealership).
	Price        float64   // Asking price, two decimals.
	Notes        *string   // Optional dealership notes.
	Available    bool      // Whether the offer can currently be purchased.
	Version      int64     // Optimistic lock counter, bumped on every write.
	OfferedAt    time.Time // Listing timestamp.
	UpdatedAt    time.Time // Timestamp of the last modification.
}

// RoundPrice rounds a monetary amount to two decimal places.
func RoundPrice(amount float64) float64 {
	return math.Round(amount*100) / 100
}
