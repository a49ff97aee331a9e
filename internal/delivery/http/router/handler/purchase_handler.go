package handler

import (
	"context"
	"log/slog"
	"net/http"

	"carmarket/internal/delivery/http/response"
	"carmarket/internal/domain/entity"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// PurchaseHandlerParams holds dependencies for PurchaseHandler, injected by Fx.
type PurchaseHandlerParams struct {
	fx.In

	PurchaseUC usecase.PurchaseUsecase
	Logger     *slog.Logger
}

// PurchaseHandler serves the transaction ledger
type PurchaseHandler struct {
	purchaseUC usecase.PurchaseUsecase
	logger     *slog.Logger
}

// NewPurchaseHandler is the constructor for PurchaseHandler
func NewPurchaseHandler(params PurchaseHandlerParams) *PurchaseHandler {
	return &PurchaseHandler{
		purchaseUC: params.PurchaseUC,
		logger:     params.Logger,
	}
}

// CreatePurchaseRequest represents the request body for buying an offer.
// BuyerID may be omitted by a buyer purchasing on its own behalf.
type CreatePurchaseRequest struct {
	BuyerID       int64   `json:"buyer_id" validate:"omitempty,gt=0"`
	CarOfferID    int64   `json:"car_offer_id" validate:"required,gt=0"`
	FinalPrice    float64 `json:"final_price" validate:"required,gt=0"`
	PaymentMethod string  `json:"payment_method" validate:"required,oneof=CASH CREDIT_CARD DEBIT_CARD BANK_TRANSFER FINANCING"`
	Observations  *string `json:"observations" validate:"omitempty,max=1000"`
}

type purchaseTransition func(ctx context.Context, principal entity.Principal, id int64) (*entity.Purchase, error)

// CreatePurchase opens a PENDING purchase
func (h *PurchaseHandler) CreatePurchase(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req CreatePurchaseRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	buyerID := req.BuyerID
	if buyerID == 0 {
		buyerID = principal.UserID
	}

	purchase, err := h.purchaseUC.CreatePurchase(c.Request().Context(), principal, &usecase.CreatePurchaseInput{
		BuyerID:       buyerID,
		CarOfferID:    req.CarOfferID,
		FinalPrice:    req.FinalPrice,
		PaymentMethod: entity.PaymentMethod(req.PaymentMethod),
		Observations:  req.Observations,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toPurchaseResponse(purchase))
}

// Confirm moves a purchase from PENDING to CONFIRMED
func (h *PurchaseHandler) Confirm(c echo.Context) error {
	return h.transition(c, h.purchaseUC.ConfirmPurchase)
}

// Deliver moves a purchase from CONFIRMED to DELIVERED
func (h *PurchaseHandler) Deliver(c echo.Context) error {
	return h.transition(c, h.purchaseUC.DeliverPurchase)
}

// Cancel cancels a PENDING or CONFIRMED purchase
func (h *PurchaseHandler) Cancel(c echo.Context) error {
	return h.transition(c, h.purchaseUC.CancelPurchase)
}

// Revert moves a CONFIRMED purchase back to PENDING
func (h *PurchaseHandler) Revert(c echo.Context) error {
	return h.transition(c, h.purchaseUC.RevertToPending)
}

func (h *PurchaseHandler) transition(c echo.Context, apply purchaseTransition) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	purchase, err := apply(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPurchaseResponse(purchase))
}

// GetPurchase returns one purchase to its parties
func (h *PurchaseHandler) GetPurchase(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	purchase, err := h.purchaseUC.GetPurchase(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPurchaseResponse(purchase))
}

// GetSummary returns the readable summary of a purchase
func (h *PurchaseHandler) GetSummary(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.purchaseUC.GetPurchaseSummary(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, summary)
}

// ListByBuyer returns a buyer's purchase history
func (h *PurchaseHandler) ListByBuyer(c echo.Context) error {
	return h.list(c, h.purchaseUC.ListPurchasesByBuyer)
}

// ListByDealership returns the purchases made on a dealership's offers
func (h *PurchaseHandler) ListByDealership(c echo.Context) error {
	return h.list(c, h.purchaseUC.ListPurchasesByDealership)
}

func (h *PurchaseHandler) list(
	c echo.Context,
	fetch func(ctx context.Context, principal entity.Principal, ownerID int64, page entity.Page) ([]*entity.Purchase, error),
) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	ownerID, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}
	page, err := pageFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	purchases, err := fetch(c.Request().Context(), principal, ownerID, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toPurchaseResponses(purchases))
}
