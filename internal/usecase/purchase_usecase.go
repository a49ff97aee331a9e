package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
)

// CreatePurchaseInput defines the data required to buy an offer.
type CreatePurchaseInput struct {
	BuyerID       int64
	CarOfferID    int64
	FinalPrice    float64
	PaymentMethod entity.PaymentMethod
	Observations  *string
}

// PurchaseUsecase drives the purchase lifecycle and keeps offer availability in step with it.
type PurchaseUsecase interface {
	CreatePurchase(ctx context.Context, principal entity.Principal, input *CreatePurchaseInput) (*entity.Purchase, error)
	ConfirmPurchase(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error)
	CancelPurchase(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error)
	DeliverPurchase(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error)
	RevertToPending(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error)
	GetPurchase(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error)
	GetPurchaseSummary(ctx context.Context, principal entity.Principal, id int64) (*entity.PurchaseSummary, error)
	ListPurchasesByBuyer(ctx context.Context, principal entity.Principal, buyerID int64, page entity.Page) ([]*entity.Purchase, error)
	ListPurchasesByDealership(ctx context.Context, principal entity.Principal, dealershipID int64, page entity.Page) ([]*entity.Purchase, error)
}
