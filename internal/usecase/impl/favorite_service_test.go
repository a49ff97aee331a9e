package impl

import (
	"context"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (f *marketFixture) favorite(t *testing.T, buyer entity.Principal, notify bool) *entity.FavoriteCar {
	t.Helper()

	fav, err := f.favorites.AddFavorite(context.Background(), buyer, &usecase.AddFavoriteInput{
		BuyerID: buyer.UserID, CarID: f.carID, NotifyPriceChanges: notify,
	})
	require.NoError(t, err)

	return fav
}

func TestFavoriteService_AddFavorite(t *testing.T) {
	f := newMarketFixture(t)
	ctx := context.Background()

	fav := f.favorite(t, f.buyer, true)
	assert.True(t, fav.NotifyPriceChanges)
	assert.Nil(t, fav.Rating)

	_, err := f.favorites.AddFavorite(ctx, f.buyer, &usecase.AddFavoriteInput{BuyerID: f.buyer.UserID, CarID: f.carID})
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)

	_, err = f.favorites.AddFavorite(ctx, f.buyer, &usecase.AddFavoriteInput{BuyerID: f.buyer.UserID, CarID: 9999})
	assert.ErrorIs(t, err, domainerrors.ErrCarNotFound)

	_, err = f.favorites.AddFavorite(ctx, f.dealer, &usecase.AddFavoriteInput{BuyerID: f.dealer.UserID, CarID: f.carID})
	assert.ErrorIs(t, err, domainerrors.ErrBuyerNotFound)

	_, err = f.favorites.AddFavorite(ctx, f.otherBuyer, &usecase.AddFavoriteInput{BuyerID: f.buyer.UserID, CarID: f.carID})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}

func TestFavoriteService_AddFavoriteWithReview(t *testing.T) {
	ctx := context.Background()

	t.Run("reviews in the same step", func(t *testing.T) {
		f := newMarketFixture(t)

		fav, err := f.favorites.AddFavorite(ctx, f.buyer, &usecase.AddFavoriteInput{
			BuyerID: f.buyer.UserID, CarID: f.carID, Rating: ptr(8), Comment: ptr("Great car"),
		})
		require.NoError(t, err)
		require.NotNil(t, fav.Rating)
		assert.Equal(t, 8, *fav.Rating)
		assert.Equal(t, "Great car", *fav.Comment)
		assert.True(t, fav.IsReviewed())

		summary, err := f.favorites.GetCarReviewSummary(ctx, f.carID)
		require.NoError(t, err)
		assert.Equal(t, 1, summary.TotalReviews)
		assert.Equal(t, 8.0, summary.AverageRating)
	})

	t.Run("blank comment is stored as absent", func(t *testing.T) {
		f := newMarketFixture(t)

		fav, err := f.favorites.AddFavorite(ctx, f.buyer, &usecase.AddFavoriteInput{
			BuyerID: f.buyer.UserID, CarID: f.carID, Comment: ptr("   "),
		})
		require.NoError(t, err)
		assert.Nil(t, fav.Comment)
		assert.False(t, fav.IsReviewed())
	})

	t.Run("invalid rating adds nothing", func(t *testing.T) {
		f := newMarketFixture(t)

		_, err := f.favorites.AddFavorite(ctx, f.buyer, &usecase.AddFavoriteInput{
			BuyerID: f.buyer.UserID, CarID: f.carID, Rating: ptr(11),
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)

		list, err := f.favorites.ListFavoritesByBuyer(ctx, f.buyer, f.buyer.UserID, entity.Page{})
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestFavoriteService_UpdateFavoriteReview(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		rating  int
		wantErr error
	}{
		{name: "lowest rating", rating: entity.MinRating},
		{name: "highest rating", rating: entity.MaxRating},
		{name: "below range", rating: -1, wantErr: domainerrors.ErrInvalidRating},
		{name: "above range", rating: 11, wantErr: domainerrors.ErrInvalidRating},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newMarketFixture(t)
			fav := f.favorite(t, f.buyer, false)

			got, err := f.favorites.UpdateFavoriteReview(ctx, f.buyer, fav.ID, &usecase.UpdateReviewInput{Rating: ptr(tt.rating)})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}
			require.NoError(t, err)
			require.NotNil(t, got.Rating)
			assert.Equal(t, tt.rating, *got.Rating)
		})
	}
}

func TestFavoriteService_ReviewSummary(t *testing.T) {
	f := newMarketFixture(t)
	ctx := context.Background()

	empty, err := f.favorites.GetCarReviewSummary(ctx, f.carID)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.TotalReviews)
	assert.Zero(t, empty.AverageRating)

	rated := f.favorite(t, f.buyer, false)
	_, err = f.favorites.UpdateFavoriteReview(ctx, f.buyer, rated.ID, &usecase.UpdateReviewInput{
		Rating: ptr(8), Comment: ptr("  smooth ride "),
	})
	require.NoError(t, err)

	commented := f.favorite(t, f.otherBuyer, false)
	_, err = f.favorites.UpdateFavoriteReview(ctx, f.otherBuyer, commented.ID, &usecase.UpdateReviewInput{Comment: ptr("noisy")})
	require.NoError(t, err)

	summary, err := f.favorites.GetCarReviewSummary(ctx, f.carID)
	require.NoError(t, err)
	assert.Equal(t, 1, summary.TotalReviews)
	assert.Equal(t, 8.0, summary.AverageRating)
	require.Len(t, summary.Reviews, 2)
	assert.Equal(t, "smooth ride", *summary.Reviews[0].Comment)

	// A blank comment clears it, and an unrated favorite drops out of the summary.
	_, err = f.favorites.UpdateFavoriteReview(ctx, f.otherBuyer, commented.ID, &usecase.UpdateReviewInput{Comment: ptr("   ")})
	require.NoError(t, err)

	summary, err = f.favorites.GetCarReviewSummary(ctx, f.carID)
	require.NoError(t, err)
	assert.Len(t, summary.Reviews, 1)

	_, err = f.favorites.GetCarReviewSummary(ctx, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrCarNotFound)
}

func TestFavoriteService_PriceNotification(t *testing.T) {
	f := newMarketFixture(t)
	ctx := context.Background()
	fav := f.favorite(t, f.buyer, false)

	toggled, err := f.favorites.TogglePriceNotification(ctx, f.buyer, fav.ID)
	require.NoError(t, err)
	assert.True(t, toggled.NotifyPriceChanges)

	toggled, err = f.favorites.TogglePriceNotification(ctx, f.buyer, fav.ID)
	require.NoError(t, err)
	assert.False(t, toggled.NotifyPriceChanges)

	set, err := f.favorites.SetPriceNotification(ctx, f.buyer, fav.ID, true)
	require.NoError(t, err)
	assert.True(t, set.NotifyPriceChanges)

	_, err = f.favorites.SetPriceNotification(ctx, f.otherBuyer, fav.ID, false)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = f.favorites.TogglePriceNotification(ctx, f.buyer, 9999)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)
}

func TestFavoriteService_RemoveAndList(t *testing.T) {
	f := newMarketFixture(t)
	ctx := context.Background()
	f.favorite(t, f.buyer, false)

	list, err := f.favorites.ListFavoritesByBuyer(ctx, f.buyer, f.buyer.UserID, entity.Page{})
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = f.favorites.ListFavoritesByBuyer(ctx, f.otherBuyer, f.buyer.UserID, entity.Page{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = f.favorites.RemoveFavorite(ctx, f.otherBuyer, f.buyer.UserID, f.carID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	require.NoError(t, f.favorites.RemoveFavorite(ctx, f.buyer, f.buyer.UserID, f.carID))

	err = f.favorites.RemoveFavorite(ctx, f.buyer, f.buyer.UserID, f.carID)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteNotFound)

	list, err = f.favorites.ListFavoritesByBuyer(ctx, f.admin, f.buyer.UserID, entity.Page{})
	require.NoError(t, err)
	assert.Empty(t, list)
}
