// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// User is the core account entity. Role-specific attributes live in the optional
// profile pointers; exactly one of them is set for buyers and dealerships, none for admins.
type User struct {
	ID                int64              // Surrogate identifier.
	Email             string             // Login identifier, unique across all roles.
	PasswordHash      string             // bcrypt hash, never serialized.
	FirstName         string             // Given name.
	LastName          string             // Family name.
	Phone             string             // Contact phone number.
	Role              Role               // Immutable account role.
	Active            bool               // Soft-retirement flag.
	RegisteredAt      time.Time          // Registration timestamp.
	BuyerProfile      *BuyerProfile      // Set only when Role is RoleBuyer.
	DealershipProfile *DealershipProfile // Set only when Role is RoleDealership.
	UpdatedAt         time.Time          // Timestamp of the last modification.
}

// BuyerProfile holds data specific to the buyer role.
type BuyerProfile struct {
	UserID     int64  // Foreign key to the owning User.
	NationalID string // Unique national identity number.
	Address    string // Postal address.
}

// DealershipProfile holds data specific to the dealership role.
type DealershipProfile struct {
	UserID       int64  // Foreign key to the owning User.
	BusinessName string // Registered trading name.
	TaxID        string // Unique tax identifier.
	Address      string
	City         string
	Province     string
	Description  string
}

// FullName returns "First Last", trimmed when either part is empty.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// DisplayName is the name shown to other marketplace participants.
// Dealerships are presented by business name, everyone else by full name.
func (u *User) DisplayName() string {
	if u.Role == RoleDealership && u.DealershipProfile != nil && u.DealershipProfile.BusinessName != "" {
		return u.DealershipProfile.BusinessName
	}

	return u.FullName()
}

// IsBuyer reports whether the user is an active buyer.
func (u *User) IsBuyer() bool {
	return u.Role == RoleBuyer && u.Active
}

// IsDealership reports whether the user is an active dealership.
func (u *User) IsDealership() bool {
	return u.Role == RoleDealership && u.Active
}
