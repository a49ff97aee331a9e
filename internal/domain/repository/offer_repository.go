package repository

import (
	"context"
	"errors"

	"carmarket/internal/domain/entity"
)

var (
	// ErrOfferNotFound is returned when an offer is not found.
	ErrOfferNotFound = errors.New("car offer not found")
	// ErrOfferVersionConflict is returned when a versioned offer write matched no row
	// because another transaction changed the offer first.
	ErrOfferVersionConflict = errors.New("car offer version conflict")
)

// OfferRepository defines persistence operations for the offer book.
type OfferRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.CarOffer, error)

	// FindByCarAndDealership returns the pair's open offer, or its most recent one
	// when none is open.
	FindByCarAndDealership(ctx context.Context, carID, dealershipID int64) (*entity.CarOffer, error)

	// ExistsOpen reports whether the pair has an available offer other than excludeID.
	ExistsOpen(ctx context.Context, carID, dealershipID, excludeID int64) (bool, error)

	// ExistsClaimed reports whether an offer of the pair other than excludeID is
	// referenced by a non-cancelled purchase.
	ExistsClaimed(ctx context.Context, carID, dealershipID, excludeID int64) (bool, error)

	// LockPair serializes listing changes of one (car, dealership) pair until the
	// surrounding transaction ends.
	LockPair(ctx context.Context, carID, dealershipID int64) error

	ListByDealership(ctx context.Context, dealershipID int64, page entity.Page) ([]*entity.CarOffer, error)
	ListAvailable(ctx context.Context, page entity.Page) ([]*entity.CarOffer, error)

	// Create persists a new offer with version 1 and fills in the generated ID.
	Create(ctx context.Context, offer *entity.CarOffer) error

	// UpdateWithVersion writes the offer only if its stored version still equals
	// offer.Version, then advances offer.Version. ErrOfferVersionConflict otherwise.
	UpdateWithVersion(ctx context.Context, offer *entity.CarOffer) error
}
