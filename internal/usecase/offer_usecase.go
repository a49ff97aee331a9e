package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
)

// CreateOfferInput defines the data required to list a car.
type CreateOfferInput struct {
	CarID        int64
	DealershipID int64
	Price        float64
	Notes        *string
}

// UpdateOfferInput carries a partial offer update. Nil fields are left unchanged.
type UpdateOfferInput struct {
	Price *float64
	Notes *string
}

// OfferUsecase manages the dealership offer book.
type OfferUsecase interface {
	CreateOffer(ctx context.Context, principal entity.Principal, input *CreateOfferInput) (*entity.CarOffer, error)
	// UpdateOffer publishes a price alert when the price goes down.
	UpdateOffer(ctx context.Context, principal entity.Principal, id int64, input *UpdateOfferInput) (*entity.CarOffer, error)
	CloseOffer(ctx context.Context, principal entity.Principal, id int64) (*entity.CarOffer, error)
	ReopenOffer(ctx context.Context, principal entity.Principal, id int64) (*entity.CarOffer, error)
	GetOffer(ctx context.Context, id int64) (*entity.CarOffer, error)
	FindOfferByCarAndDealership(ctx context.Context, carID, dealershipID int64) (*entity.CarOffer, error)
	ListOffersByDealership(ctx context.Context, dealershipID int64, page entity.Page) ([]*entity.CarOffer, error)
	ListAvailableOffers(ctx context.Context, page entity.Page) ([]*entity.CarOffer, error)
	// OfferQRCode renders a PNG QR code linking to the offer.
	OfferQRCode(ctx context.Context, id int64) ([]byte, error)
}
