package ledger

import (
	"time"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
)

// NewFavorite bookmarks car for buyer. exists reports whether the pair is already bookmarked.
func NewFavorite(buyer *entity.User, car *entity.Car, notify, exists bool, now time.Time) (entity.FavoriteCar, error) {
	if buyer == nil || buyer.Role != entity.RoleBuyer {
		return entity.FavoriteCar{}, domainerrors.ErrBuyerNotFound
	}
	if car == nil {
		return entity.FavoriteCar{}, domainerrors.ErrCarNotFound
	}
	if exists {
		return entity.FavoriteCar{}, domainerrors.ErrFavoriteAlreadyExists
	}

	return entity.FavoriteCar{
		BuyerID:            buyer.ID,
		CarID:              car.ID,
		NotifyPriceChanges: notify,
		AddedAt:            now,
		UpdatedAt:          now,
	}, nil
}

// ApplyReview sets the supplied rating and comment. A blank comment clears it.
func ApplyReview(fav entity.FavoriteCar, rating *int, comment *string, now time.Time) (entity.FavoriteCar, error) {
	if rating != nil {
		if !entity.ValidRating(*rating) {
			return fav, domainerrors.ErrInvalidRating
		}
		r := *rating
		fav.Rating = &r
	}
	if comment != nil {
		fav.Comment = normalizeText(comment)
	}
	fav.UpdatedAt = now

	return fav, nil
}
