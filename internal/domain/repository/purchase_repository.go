package repository

import (
	"context"
	"errors"

	"carmarket/internal/domain/entity"
)

// ErrPurchaseNotFound is returned when a purchase is not found.
var ErrPurchaseNotFound = errors.New("purchase not found")

// PurchaseRepository defines persistence operations for the transaction ledger.
// Purchases are never deleted.
type PurchaseRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Purchase, error)

	// Create persists a new purchase and fills in the generated ID.
	Create(ctx context.Context, purchase *entity.Purchase) error

	// UpdateStatus saves the status and modification time of a purchase.
	UpdateStatus(ctx context.Context, purchase *entity.Purchase) error

	// HasActiveForOffer reports whether a non-cancelled purchase other than
	// excludeID references the offer.
	HasActiveForOffer(ctx context.Context, offerID, excludeID int64) (bool, error)

	// HasAnyForOffer reports whether any purchase, cancelled ones included, references the offer.
	HasAnyForOffer(ctx context.Context, offerID int64) (bool, error)

	// CountOpenByBuyer counts the buyer's PENDING and CONFIRMED purchases.
	CountOpenByBuyer(ctx context.Context, buyerID int64) (int64, error)

	ListByBuyer(ctx context.Context, buyerID int64, page entity.Page) ([]*entity.Purchase, error)
	ListByDealership(ctx context.Context, dealershipID int64, page entity.Page) ([]*entity.Purchase, error)
}
