package handler

import (
	"log/slog"
	"net/http"

	"carmarket/internal/delivery/http/response"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OfferHandlerParams holds dependencies for OfferHandler, injected by Fx.
type OfferHandlerParams struct {
	fx.In

	OfferUC usecase.OfferUsecase
	Logger  *slog.Logger
}

// OfferHandler serves the offer book
type OfferHandler struct {
	offerUC usecase.OfferUsecase
	logger  *slog.Logger
}

// NewOfferHandler is the constructor for OfferHandler
func NewOfferHandler(params OfferHandlerParams) *OfferHandler {
	return &OfferHandler{
		offerUC: params.OfferUC,
		logger:  params.Logger,
	}
}

// CreateOfferRequest represents the request body for listing a car.
// DealershipID may be omitted by a dealership listing on its own behalf.
type CreateOfferRequest struct {
	CarID        int64   `json:"car_id" validate:"required,gt=0"`
	DealershipID int64   `json:"dealership_id" validate:"omitempty,gt=0"`
	Price        float64 `json:"price" validate:"required,gt=0"`
	Notes        *string `json:"notes" validate:"omitempty,max=1000"`
}

// UpdateOfferRequest represents a partial offer update
type UpdateOfferRequest struct {
	Price *float64 `json:"price" validate:"omitempty,gt=0"`
	Notes *string  `json:"notes" validate:"omitempty,max=1000"`
}

// CreateOffer handles offer creation
func (h *OfferHandler) CreateOffer(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreateOfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	dealershipID := req.DealershipID
	if dealershipID == 0 {
		dealershipID = principal.UserID
	}

	offer, err := h.offerUC.CreateOffer(c.Request().Context(), principal, &usecase.CreateOfferInput{
		CarID:        req.CarID,
		DealershipID: dealershipID,
		Price:        req.Price,
		Notes:        req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toOfferResponse(offer))
}

// UpdateOffer handles price and notes changes
func (h *OfferHandler) UpdateOffer(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateOfferRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.UpdateOffer(c.Request().Context(), principal, id, &usecase.UpdateOfferInput{
		Price: req.Price,
		Notes: req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer))
}

// CloseOffer withdraws an offer from sale
func (h *OfferHandler) CloseOffer(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.CloseOffer(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer))
}

// ReopenOffer puts a closed offer back on sale
func (h *OfferHandler) ReopenOffer(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.ReopenOffer(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer))
}

// GetOffer returns one offer
func (h *OfferHandler) GetOffer(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.GetOffer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer))
}

// ListAvailable returns the offers currently on sale
func (h *OfferHandler) ListAvailable(c echo.Context) error {
	page, err := pageFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offers, err := h.offerUC.ListAvailableOffers(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferResponses(offers))
}

// ListByDealership returns every offer of one dealership
func (h *OfferHandler) ListByDealership(c echo.Context) error {
	dealershipID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offers, err := h.offerUC.ListOffersByDealership(c.Request().Context(), dealershipID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferResponses(offers))
}

// FindByCarAndDealership returns the dealership's open offer for a car
func (h *OfferHandler) FindByCarAndDealership(c echo.Context) error {
	dealershipID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	carID, err := pathID(c, "carId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	offer, err := h.offerUC.FindOfferByCarAndDealership(c.Request().Context(), carID, dealershipID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toOfferResponse(offer))
}

// QRCode renders the offer's shareable QR code as PNG
func (h *OfferHandler) QRCode(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	png, err := h.offerUC.OfferQRCode(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
