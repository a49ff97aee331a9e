// Package entity contains the core business objects of the project.
package entity

// Role represents the type of account a user holds in the marketplace.
// A user's role is fixed at registration and never changes.
type Role string

const (
	// RoleAdmin indicates a marketplace administrator.
	RoleAdmin Role = "ADMIN"
	// RoleBuyer indicates a buyer who purchases offers and keeps favorites.
	RoleBuyer Role = "BUYER"
	// RoleDealership indicates a seller that lists offers against catalog cars.
	RoleDealership Role = "DEALERSHIP"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleBuyer, RoleDealership:
		return true
	default:
		return false
	}
}
