package handler

import (
	"net/http"
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/errors"
	mockUsecase "carmarket/internal/mocks/usecase"
	"carmarket/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newTestPurchaseHandler(t *testing.T) (*PurchaseHandler, *mockUsecase.MockPurchaseUsecase) {
	purchaseUC := mockUsecase.NewMockPurchaseUsecase(t)

	return NewPurchaseHandler(PurchaseHandlerParams{PurchaseUC: purchaseUC, Logger: discardLogger()}), purchaseUC
}

func TestPurchaseHandler_CreatePurchase(t *testing.T) {
	t.Run("buyer defaults to the caller", func(t *testing.T) {
		h, purchaseUC := newTestPurchaseHandler(t)
		e := newTestEcho()
		e.POST("/purchases", h.CreatePurchase, asPrincipal(buyerPrincipal))

		purchaseUC.EXPECT().CreatePurchase(mock.Anything, buyerPrincipal, &usecase.CreatePurchaseInput{
			BuyerID:       buyerPrincipal.UserID,
			CarOfferID:    9,
			FinalPrice:    24000,
			PaymentMethod: entity.PaymentFinancing,
		}).Return(&entity.Purchase{
			ID: 4, BuyerID: 7, CarOfferID: 9, FinalPrice: 24000,
			Status: entity.PurchaseStatusPending, PaymentMethod: entity.PaymentFinancing,
		}, nil)

		rec := serve(e, http.MethodPost, "/purchases", `{"car_offer_id": 9, "final_price": 24000, "payment_method": "FINANCING"}`)

		assertStatus(t, rec, http.StatusCreated)
		var got PurchaseResponse
		decodeData(t, rec, &got)
		assert.Equal(t, entity.PurchaseStatusPending, got.Status)
	})

	t.Run("unavailable offer", func(t *testing.T) {
		h, purchaseUC := newTestPurchaseHandler(t)
		e := newTestEcho()
		e.POST("/purchases", h.CreatePurchase, asPrincipal(buyerPrincipal))

		purchaseUC.EXPECT().CreatePurchase(mock.Anything, buyerPrincipal, mock.Anything).Return(nil, domainerrors.ErrOfferUnavailable)

		rec := serve(e, http.MethodPost, "/purchases", `{"car_offer_id": 9, "final_price": 24000, "payment_method": "CASH"}`)

		assertStatus(t, rec, http.StatusConflict)
		assert.Equal(t, "OFFER_UNAVAILABLE", decodeError(t, rec).Code)
	})

	t.Run("unknown payment method", func(t *testing.T) {
		h, _ := newTestPurchaseHandler(t)
		e := newTestEcho()
		e.POST("/purchases", h.CreatePurchase, asPrincipal(buyerPrincipal))

		rec := serve(e, http.MethodPost, "/purchases", `{"car_offer_id": 9, "final_price": 24000, "payment_method": "BARTER"}`)

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestPurchaseHandler_Transitions(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status entity.PurchaseStatus
		expect func(uc *mockUsecase.MockPurchaseUsecase, p *entity.Purchase)
	}{
		{
			name:   "confirm",
			path:   "/purchases/4/confirm",
			status: entity.PurchaseStatusConfirmed,
			expect: func(uc *mockUsecase.MockPurchaseUsecase, p *entity.Purchase) {
				uc.EXPECT().ConfirmPurchase(mock.Anything, dealershipPrincipal, int64(4)).Return(p, nil)
			},
		},
		{
			name:   "deliver",
			path:   "/purchases/4/deliver",
			status: entity.PurchaseStatusDelivered,
			expect: func(uc *mockUsecase.MockPurchaseUsecase, p *entity.Purchase) {
				uc.EXPECT().DeliverPurchase(mock.Anything, dealershipPrincipal, int64(4)).Return(p, nil)
			},
		},
		{
			name:   "cancel",
			path:   "/purchases/4/cancel",
			status: entity.PurchaseStatusCancelled,
			expect: func(uc *mockUsecase.MockPurchaseUsecase, p *entity.Purchase) {
				uc.EXPECT().CancelPurchase(mock.Anything, dealershipPrincipal, int64(4)).Return(p, nil)
			},
		},
		{
			name:   "revert",
			path:   "/purchases/4/revert",
			status: entity.PurchaseStatusPending,
			expect: func(uc *mockUsecase.MockPurchaseUsecase, p *entity.Purchase) {
				uc.EXPECT().RevertToPending(mock.Anything, dealershipPrincipal, int64(4)).Return(p, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, purchaseUC := newTestPurchaseHandler(t)
			e := newTestEcho()
			group := e.Group("/purchases", asPrincipal(dealershipPrincipal))
			group.POST("/:id/confirm", h.Confirm)
			group.POST("/:id/deliver", h.Deliver)
			group.POST("/:id/cancel", h.Cancel)
			group.POST("/:id/revert", h.Revert)

			tt.expect(purchaseUC, &entity.Purchase{ID: 4, Status: tt.status})

			rec := serve(e, http.MethodPost, tt.path, "")

			assertStatus(t, rec, http.StatusOK)
			var got PurchaseResponse
			decodeData(t, rec, &got)
			assert.Equal(t, tt.status, got.Status)
		})
	}
}

func TestPurchaseHandler_Cancel_Twice(t *testing.T) {
	h, purchaseUC := newTestPurchaseHandler(t)
	e := newTestEcho()
	e.POST("/purchases/:id/cancel", h.Cancel, asPrincipal(buyerPrincipal))

	purchaseUC.EXPECT().CancelPurchase(mock.Anything, buyerPrincipal, int64(4)).Return(nil, domainerrors.ErrInvalidTransition)

	rec := serve(e, http.MethodPost, "/purchases/4/cancel", "")

	assertStatus(t, rec, http.StatusUnprocessableEntity)
	assert.Equal(t, "INVALID_PURCHASE_TRANSITION", decodeError(t, rec).Code)
}

func TestPurchaseHandler_UnexpectedErrorIsOpaque(t *testing.T) {
	h, purchaseUC := newTestPurchaseHandler(t)
	e := newTestEcho()
	e.GET("/purchases/:id", h.GetPurchase, asPrincipal(buyerPrincipal))

	purchaseUC.EXPECT().GetPurchase(mock.Anything, buyerPrincipal, int64(4)).
		Return(nil, errors.New("pq: connection reset by peer"))

	rec := serve(e, http.MethodGet, "/purchases/4", "")

	assertStatus(t, rec, http.StatusInternalServerError)
	info := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", info.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestPurchaseHandler_GetSummary(t *testing.T) {
	h, purchaseUC := newTestPurchaseHandler(t)
	e := newTestEcho()
	e.GET("/purchases/:id/summary", h.GetSummary, asPrincipal(buyerPrincipal))

	purchaseUC.EXPECT().GetPurchaseSummary(mock.Anything, buyerPrincipal, int64(4)).Return(&entity.PurchaseSummary{
		PurchaseID:     4,
		CarFullName:    "Toyota Corolla 2020",
		BuyerFullName:  "buyer Tester",
		DealershipName: "dealer Motors",
		FinalPrice:     24000,
		Status:         entity.PurchaseStatusConfirmed,
	}, nil)

	rec := serve(e, http.MethodGet, "/purchases/4/summary", "")

	assertStatus(t, rec, http.StatusOK)
	var got entity.PurchaseSummary
	decodeData(t, rec, &got)
	assert.Equal(t, "Toyota Corolla 2020", got.CarFullName)
	assert.Equal(t, "dealer Motors", got.DealershipName)
}

func TestPurchaseHandler_ListByBuyer_Forbidden(t *testing.T) {
	h, purchaseUC := newTestPurchaseHandler(t)
	e := newTestEcho()
	e.GET("/buyers/:id/purchases", h.ListByBuyer, asPrincipal(buyerPrincipal))

	purchaseUC.EXPECT().ListPurchasesByBuyer(mock.Anything, buyerPrincipal, int64(8), entity.Page{}).
		Return(nil, domainerrors.ErrForbidden)

	rec := serve(e, http.MethodGet, "/buyers/8/purchases", "")

	assertStatus(t, rec, http.StatusForbidden)
}
