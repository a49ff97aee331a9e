// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
)

// --- Input DTOs ---

// AccountInput holds the fields shared by every registration.
type AccountInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string
}

// RegisterBuyerInput defines the data required to register a new buyer.
type RegisterBuyerInput struct {
	AccountInput
	NationalID string
	Address    string
}

// RegisterDealershipInput defines the data required to register a new dealership.
type RegisterDealershipInput struct {
	AccountInput
	BusinessName string
	TaxID        string
	Address      string
	City         string
	Province     string
	Description  string
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput returns the generated access token after a successful login.
type LoginOutput struct {
	AccessToken string
	User        *entity.User
}

// UserUsecase defines the interface for user-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterBuyer(ctx context.Context, input *RegisterBuyerInput) (*entity.User, error)
	RegisterDealership(ctx context.Context, input *RegisterDealershipInput) (*entity.User, error)
	// RegisterAdmin is restricted to administrators.
	RegisterAdmin(ctx context.Context, principal entity.Principal, input *AccountInput) (*entity.User, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetUser(ctx context.Context, principal entity.Principal, id int64) (*entity.User, error)
	SetUserActive(ctx context.Context, principal entity.Principal, id int64, active bool) error
	// EnsureAdmin creates the bootstrap administrator when no account uses its email yet.
	EnsureAdmin(ctx context.Context, input *AccountInput) error
}
