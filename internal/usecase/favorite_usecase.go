package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
)

// AddFavoriteInput defines the data required to bookmark a car. Rating and
// Comment optionally review the car in the same step.
type AddFavoriteInput struct {
	BuyerID            int64
	CarID              int64
	NotifyPriceChanges bool
	Rating             *int
	Comment            *string
}

// UpdateReviewInput carries a partial review update. Nil fields are left
// unchanged and a blank comment removes the comment.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// FavoriteUsecase manages buyer favorites, reviews and price alerts.
type FavoriteUsecase interface {
	AddFavorite(ctx context.Context, principal entity.Principal, input *AddFavoriteInput) (*entity.FavoriteCar, error)
	RemoveFavorite(ctx context.Context, principal entity.Principal, buyerID, carID int64) error
	UpdateFavoriteReview(ctx context.Context, principal entity.Principal, favoriteID int64, input *UpdateReviewInput) (*entity.FavoriteCar, error)
	SetPriceNotification(ctx context.Context, principal entity.Principal, favoriteID int64, enabled bool) (*entity.FavoriteCar, error)
	TogglePriceNotification(ctx context.Context, principal entity.Principal, favoriteID int64) (*entity.FavoriteCar, error)
	ListFavoritesByBuyer(ctx context.Context, principal entity.Principal, buyerID int64, page entity.Page) ([]*entity.FavoriteCar, error)
	GetCarReviewSummary(ctx context.Context, carID int64) (*entity.CarReviewSummary, error)
}
