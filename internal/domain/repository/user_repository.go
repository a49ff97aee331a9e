// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"carmarket/internal/domain/entity"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user with its role profile.
	FindByID(ctx context.Context, id int64) (*entity.User, error)

	// FindByEmail retrieves a single user by email, compared case-insensitively.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// ExistsByNationalID reports whether a buyer profile already uses the national ID.
	ExistsByNationalID(ctx context.Context, nationalID string) (bool, error)

	// ExistsByTaxID reports whether a dealership profile already uses the tax ID.
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)

	// Create persists a new user together with its role profile and fills in the generated ID.
	Create(ctx context.Context, user *entity.User) error

	// SetActive flips the soft-retirement flag.
	SetActive(ctx context.Context, id int64, active bool) error
}
