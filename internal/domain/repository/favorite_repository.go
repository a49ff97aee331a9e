package repository

import (
	"context"
	"errors"

	"carmarket/internal/domain/entity"
)

// ErrFavoriteNotFound is returned when a favorite is not found.
var ErrFavoriteNotFound = errors.New("favorite not found")

// FavoriteRepository defines persistence operations for buyer favorites and reviews.
type FavoriteRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.FavoriteCar, error)
	FindByBuyerAndCar(ctx context.Context, buyerID, carID int64) (*entity.FavoriteCar, error)

	// Create persists a new favorite and fills in the generated ID.
	Create(ctx context.Context, favorite *entity.FavoriteCar) error

	// Update saves rating, comment and the price-alert flag.
	Update(ctx context.Context, favorite *entity.FavoriteCar) error

	Delete(ctx context.Context, id int64) error

	ListByBuyer(ctx context.Context, buyerID int64, page entity.Page) ([]*entity.FavoriteCar, error)

	// ListReviewedByCar returns the car's favorites carrying a rating or a comment.
	ListReviewedByCar(ctx context.Context, carID int64) ([]*entity.FavoriteCar, error)

	// ListPriceWatchers returns the buyers subscribed to price changes on the car.
	ListPriceWatchers(ctx context.Context, carID int64) ([]int64, error)
}
