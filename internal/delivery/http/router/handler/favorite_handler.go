package handler

import (
	"log/slog"
	"net/http"

	"carmarket/internal/delivery/http/response"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FavoriteHandlerParams holds dependencies for FavoriteHandler, injected by Fx.
type FavoriteHandlerParams struct {
	fx.In

	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// FavoriteHandler serves buyer bookmarks and reviews
type FavoriteHandler struct {
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewFavoriteHandler is the constructor for FavoriteHandler
func NewFavoriteHandler(params FavoriteHandlerParams) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// AddFavoriteRequest represents the request body for bookmarking a car
type AddFavoriteRequest struct {
	CarID              int64   `json:"car_id" validate:"required,gt=0"`
	NotifyPriceChanges bool    `json:"notify_price_changes"`
	Rating             *int    `json:"rating" validate:"omitempty,min=0,max=10"`
	Comment            *string `json:"comment" validate:"omitempty,max=2000"`
}

// ReviewRequest updates the rating and/or the comment of a favorite.
type ReviewRequest struct {
	Rating  *int    `json:"rating" validate:"omitempty,min=0,max=10"`
	Comment *string `json:"comment" validate:"omitempty,max=2000"`
}

// NotificationRequest sets the price-alert subscription of a favorite.
type NotificationRequest struct {
	Enabled *bool `json:"enabled" validate:"required"`
}

// AddFavorite bookmarks a car for a buyer
func (h *FavoriteHandler) AddFavorite(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	buyerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AddFavoriteRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.AddFavorite(c.Request().Context(), principal, &usecase.AddFavoriteInput{
		BuyerID:            buyerID,
		CarID:              req.CarID,
		NotifyPriceChanges: req.NotifyPriceChanges,
		Rating:             req.Rating,
		Comment:            req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toFavoriteResponse(favorite))
}

// RemoveFavorite deletes a buyer's bookmark
func (h *FavoriteHandler) RemoveFavorite(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	buyerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	carID, err := pathID(c, "carId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.favoriteUC.RemoveFavorite(c.Request().Context(), principal, buyerID, carID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// ListByBuyer returns a buyer's favorites
func (h *FavoriteHandler) ListByBuyer(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	buyerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorites, err := h.favoriteUC.ListFavoritesByBuyer(c.Request().Context(), principal, buyerID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFavoriteResponses(favorites))
}

// UpdateReview sets the rating and/or comment of a favorite
func (h *FavoriteHandler) UpdateReview(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req ReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.UpdateFavoriteReview(c.Request().Context(), principal, id, &usecase.UpdateReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFavoriteResponse(favorite))
}

// SetNotification enables or disables price alerts on a favorite
func (h *FavoriteHandler) SetNotification(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req NotificationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.SetPriceNotification(c.Request().Context(), principal, id, *req.Enabled)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFavoriteResponse(favorite))
}

// ToggleNotification flips price alerts on a favorite
func (h *FavoriteHandler) ToggleNotification(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	favorite, err := h.favoriteUC.TogglePriceNotification(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFavoriteResponse(favorite))
}
