package handler

import (
	"net/http"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	mockUsecase "carmarket/internal/mocks/usecase"
	"carmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestFavoriteHandler(t *testing.T) (*FavoriteHandler, *mockUsecase.MockFavoriteUsecase) {
	favoriteUC := mockUsecase.NewMockFavoriteUsecase(t)

	return NewFavoriteHandler(FavoriteHandlerParams{FavoriteUC: favoriteUC, Logger: discardLogger()}), favoriteUC
}

func TestFavoriteHandler_AddFavorite(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, favoriteUC := newTestFavoriteHandler(t)
		e := newTestEcho()
		e.POST("/buyers/:id/favorites", h.AddFavorite, asPrincipal(buyerPrincipal))

		favoriteUC.EXPECT().AddFavorite(mock.Anything, buyerPrincipal, &usecase.AddFavoriteInput{
			BuyerID:            7,
			CarID:              5,
			NotifyPriceChanges: true,
		}).Return(&entity.FavoriteCar{ID: 2, BuyerID: 7, CarID: 5, NotifyPriceChanges: true}, nil)

		rec := serve(e, http.MethodPost, "/buyers/7/favorites", `{"car_id": 5, "notify_price_changes": true}`)

		assertStatus(t, rec, http.StatusCreated)
		var got FavoriteResponse
		decodeData(t, rec, &got)
		assert.Equal(t, int64(2), got.ID)
		assert.True(t, got.NotifyPriceChanges)
		assert.Nil(t, got.Rating)
	})

	t.Run("with review", func(t *testing.T) {
		h, favoriteUC := newTestFavoriteHandler(t)
		e := newTestEcho()
		e.POST("/buyers/:id/favorites", h.AddFavorite, asPrincipal(buyerPrincipal))

		rating := 8
		comment := "Great car"
		favoriteUC.EXPECT().AddFavorite(mock.Anything, buyerPrincipal, &usecase.AddFavoriteInput{
			BuyerID: 7,
			CarID:   5,
			Rating:  &rating,
			Comment: &comment,
		}).Return(&entity.FavoriteCar{ID: 3, BuyerID: 7, CarID: 5, Rating: &rating, Comment: &comment}, nil)

		rec := serve(e, http.MethodPost, "/buyers/7/favorites", `{"car_id": 5, "rating": 8, "comment": "Great car"}`)

		assertStatus(t, rec, http.StatusCreated)
		var got FavoriteResponse
		decodeData(t, rec, &got)
		require.NotNil(t, got.Rating)
		assert.Equal(t, 8, *got.Rating)
		assert.Equal(t, "Great car", *got.Comment)
	})

	t.Run("rating out of range", func(t *testing.T) {
		h, _ := newTestFavoriteHandler(t)
		e := newTestEcho()
		e.POST("/buyers/:id/favorites", h.AddFavorite, asPrincipal(buyerPrincipal))

		rec := serve(e, http.MethodPost, "/buyers/7/favorites", `{"car_id": 5, "rating": 11}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
	})

	t.Run("duplicate", func(t *testing.T) {
		h, favoriteUC := newTestFavoriteHandler(t)
		e := newTestEcho()
		e.POST("/buyers/:id/favorites", h.AddFavorite, asPrincipal(buyerPrincipal))

		favoriteUC.EXPECT().AddFavorite(mock.Anything, buyerPrincipal, mock.Anything).Return(nil, domainerrors.ErrFavoriteAlreadyExists)

		rec := serve(e, http.MethodPost, "/buyers/7/favorites", `{"car_id": 5}`)

		assertStatus(t, rec, http.StatusConflict)
		assert.Equal(t, "FAVORITE_ALREADY_EXISTS", decodeError(t, rec).Code)
	})
}

func TestFavoriteHandler_RemoveFavorite(t *testing.T) {
	h, favoriteUC := newTestFavoriteHandler(t)
	e := newTestEcho()
	e.DELETE("/buyers/:id/favorites/:carId", h.RemoveFavorite, asPrincipal(buyerPrincipal))

	favoriteUC.EXPECT().RemoveFavorite(mock.Anything, buyerPrincipal, int64(7), int64(5)).Return(nil)

	rec := serve(e, http.MethodDelete, "/buyers/7/favorites/5", "")

	assertStatus(t, rec, http.StatusNoContent)
}

func TestFavoriteHandler_UpdateReview(t *testing.T) {
	t.Run("rating and comment", func(t *testing.T) {
		h, favoriteUC := newTestFavoriteHandler(t)
		e := newTestEcho()
		e.PATCH("/favorites/:id/review", h.UpdateReview, asPrincipal(buyerPrincipal))

		rating := 10
		comment := "Smooth ride"
		favoriteUC.EXPECT().UpdateFavoriteReview(mock.Anything, buyerPrincipal, int64(2), &usecase.UpdateReviewInput{
			Rating:  &rating,
			Comment: &comment,
		}).Return(&entity.FavoriteCar{ID: 2, Rating: &rating, Comment: &comment}, nil)

		rec := serve(e, http.MethodPatch, "/favorites/2/review", `{"rating": 10, "comment": "Smooth ride"}`)

		assertStatus(t, rec, http.StatusOK)
	})

	t.Run("rating zero is accepted", func(t *testing.T) {
		h, favoriteUC := newTestFavoriteHandler(t)
		e := newTestEcho()
		e.PATCH("/favorites/:id/review", h.UpdateReview, asPrincipal(buyerPrincipal))

		rating := 0
		favoriteUC.EXPECT().UpdateFavoriteReview(mock.Anything, buyerPrincipal, int64(2), &usecase.UpdateReviewInput{Rating: &rating}).
			Return(&entity.FavoriteCar{ID: 2, Rating: &rating}, nil)

		rec := serve(e, http.MethodPatch, "/favorites/2/review", `{"rating": 0}`)

		assertStatus(t, rec, http.StatusOK)
	})

	t.Run("rating out of range", func(t *testing.T) {
		h, _ := newTestFavoriteHandler(t)
		e := newTestEcho()
		e.PATCH("/favorites/:id/review", h.UpdateReview, asPrincipal(buyerPrincipal))

		rec := serve(e, http.MethodPatch, "/favorites/2/review", `{"rating": 11}`)

		assertStatus(t, rec, http.StatusBadRequest)
		assert.Contains(t, decodeError(t, rec).Details, "rating must be at most 10")
	})
}

func TestFavoriteHandler_Notification(t *testing.T) {
	t.Run("set", func(t *testing.T) {
		h, favoriteUC := newTestFavoriteHandler(t)
		e := newTestEcho()
		e.PATCH("/favorites/:id/notification", h.SetNotification, asPrincipal(buyerPrincipal))

		favoriteUC.EXPECT().SetPriceNotification(mock.Anything, buyerPrincipal, int64(2), false).
			Return(&entity.FavoriteCar{ID: 2}, nil)

		rec := serve(e, http.MethodPatch, "/favorites/2/notification", `{"enabled": false}`)

		assertStatus(t, rec, http.StatusOK)
	})

	t.Run("toggle", func(t *testing.T) {
		h, favoriteUC := newTestFavoriteHandler(t)
		e := newTestEcho()
		e.POST("/favorites/:id/notification/toggle", h.ToggleNotification, asPrincipal(buyerPrincipal))

		favoriteUC.EXPECT().TogglePriceNotification(mock.Anything, buyerPrincipal, int64(2)).
			Return(&entity.FavoriteCar{ID: 2, NotifyPriceChanges: true}, nil)

		rec := serve(e, http.MethodPost, "/favorites/2/notification/toggle", "")

		assertStatus(t, rec, http.StatusOK)
		var got FavoriteResponse
		decodeData(t, rec, &got)
		assert.True(t, got.NotifyPriceChanges)
	})
}
