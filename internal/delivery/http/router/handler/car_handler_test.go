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
)

type carHandlerFixture struct {
	handler    *CarHandler
	catalogUC  *mockUsecase.MockCatalogUsecase
	favoriteUC *mockUsecase.MockFavoriteUsecase
}

func newCarHandlerFixture(t *testing.T) *carHandlerFixture {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	favoriteUC := mockUsecase.NewMockFavoriteUsecase(t)

	return &carHandlerFixture{
		handler:    NewCarHandler(CarHandlerParams{CatalogUC: catalogUC, FavoriteUC: favoriteUC, Logger: discardLogger()}),
		catalogUC:  catalogUC,
		favoriteUC: favoriteUC,
	}
}

func TestCarHandler_RegisterCar(t *testing.T) {
	fx := newCarHandlerFixture(t)
	e := newTestEcho()
	e.POST("/cars", fx.handler.RegisterCar, asPrincipal(dealershipPrincipal))

	fx.catalogUC.EXPECT().RegisterCar(mock.Anything, dealershipPrincipal, &usecase.RegisterCarInput{
		Brand:        "Toyota",
		Model:        "Corolla",
		Year:         2020,
		Mileage:      45000,
		Color:        "White",
		FuelType:     entity.FuelGasoline,
		Transmission: entity.TransmissionAutomatic,
		Plate:        "AB123CD",
		Images:       []string{"front.jpg"},
	}).Return(&entity.Car{
		ID: 5, Brand: "Toyota", Model: "Corolla", Year: 2020, Plate: "AB123CD", Available: true,
	}, nil)

	rec := serve(e, http.MethodPost, "/cars", `{
		"brand": "Toyota", "model": "Corolla", "year": 2020, "mileage": 45000, "color": "White",
		"fuel_type": "GASOLINE", "transmission": "AUTOMATIC", "plate": "AB123CD", "images": ["front.jpg"]
	}`)

	assertStatus(t, rec, http.StatusCreated)
	var got CarResponse
	decodeData(t, rec, &got)
	assert.Equal(t, int64(5), got.ID)
	assert.True(t, got.Available)
	assert.Empty(t, got.Images)
}

func TestCarHandler_RegisterCar_RejectsUnknownFuel(t *testing.T) {
	fx := newCarHandlerFixture(t)
	e := newTestEcho()
	e.POST("/cars", fx.handler.RegisterCar, asPrincipal(dealershipPrincipal))

	rec := serve(e, http.MethodPost, "/cars", `{
		"brand": "Toyota", "model": "Corolla", "year": 2020, "color": "White",
		"fuel_type": "STEAM", "transmission": "AUTOMATIC", "plate": "AB123CD"
	}`)

	assertStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, decodeError(t, rec).Details, "fuel_type must be one of")
}

func TestCarHandler_UpdateCar_DuplicatePlate(t *testing.T) {
	fx := newCarHandlerFixture(t)
	e := newTestEcho()
	e.PATCH("/cars/:id", fx.handler.UpdateCar, asPrincipal(dealershipPrincipal))

	plate := "ZZ999ZZ"
	manual := entity.TransmissionManual
	fx.catalogUC.EXPECT().UpdateCar(mock.Anything, dealershipPrincipal, int64(5), &usecase.UpdateCarInput{
		Plate:        &plate,
		Transmission: &manual,
	}).Return(nil, domainerrors.ErrDuplicatePlate)

	rec := serve(e, http.MethodPatch, "/cars/5", `{"plate": "ZZ999ZZ", "transmission": "MANUAL"}`)

	assertStatus(t, rec, http.StatusConflict)
	assert.Equal(t, "DUPLICATE_PLATE", decodeError(t, rec).Code)
}

func TestCarHandler_Search(t *testing.T) {
	t.Run("maps query parameters to the filter", func(t *testing.T) {
		fx := newCarHandlerFixture(t)
		e := newTestEcho()
		e.GET("/cars", fx.handler.Search)

		yearFrom := 2018
		fuel := entity.FuelHybrid
		fx.catalogUC.EXPECT().SearchCars(mock.Anything, entity.CarFilter{
			Keyword:       "corolla",
			Brand:         "toyota",
			YearFrom:      &yearFrom,
			FuelType:      &fuel,
			AvailableOnly: true,
			Page:          entity.Page{Limit: 10, Offset: 20},
		}).Return([]*entity.Car{{ID: 1, Brand: "Toyota", Model: "Corolla"}}, nil)

		rec := serve(e, http.MethodGet,
			"/cars?keyword=corolla&brand=toyota&year_from=2018&fuel_type=HYBRID&available_only=true&limit=10&offset=20", "")

		assertStatus(t, rec, http.StatusOK)
		var got []CarResponse
		decodeData(t, rec, &got)
		assert.Len(t, got, 1)
	})

	t.Run("empty result renders an empty list", func(t *testing.T) {
		fx := newCarHandlerFixture(t)
		e := newTestEcho()
		e.GET("/cars", fx.handler.Search)

		fx.catalogUC.EXPECT().SearchCars(mock.Anything, entity.CarFilter{}).Return(nil, nil)

		rec := serve(e, http.MethodGet, "/cars", "")

		assertStatus(t, rec, http.StatusOK)
		assert.Contains(t, rec.Body.String(), `"data":[]`)
	})

	t.Run("unknown transmission", func(t *testing.T) {
		fx := newCarHandlerFixture(t)
		e := newTestEcho()
		e.GET("/cars", fx.handler.Search)

		rec := serve(e, http.MethodGet, "/cars?transmission=CVT", "")

		assertStatus(t, rec, http.StatusBadRequest)
	})

	t.Run("malformed year", func(t *testing.T) {
		fx := newCarHandlerFixture(t)
		e := newTestEcho()
		e.GET("/cars", fx.handler.Search)

		rec := serve(e, http.MethodGet, "/cars?year_to=recent", "")

		assertStatus(t, rec, http.StatusBadRequest)
	})
}

func TestCarHandler_GetCar_NotFound(t *testing.T) {
	fx := newCarHandlerFixture(t)
	e := newTestEcho()
	e.GET("/cars/:id", fx.handler.GetCar)

	fx.catalogUC.EXPECT().GetCar(mock.Anything, int64(404)).Return(nil, domainerrors.ErrCarNotFound)

	rec := serve(e, http.MethodGet, "/cars/404", "")

	assertStatus(t, rec, http.StatusNotFound)
	assert.Equal(t, "CAR_NOT_FOUND", decodeError(t, rec).Code)
}

func TestCarHandler_ReviewSummary(t *testing.T) {
	fx := newCarHandlerFixture(t)
	e := newTestEcho()
	e.GET("/cars/:id/reviews", fx.handler.ReviewSummary)

	rating := 8
	fx.favoriteUC.EXPECT().GetCarReviewSummary(mock.Anything, int64(5)).Return(&entity.CarReviewSummary{
		CarID:         5,
		TotalReviews:  1,
		AverageRating: 8,
		Reviews:       []*entity.FavoriteCar{{ID: 2, BuyerID: 7, CarID: 5, Rating: &rating}},
	}, nil)

	rec := serve(e, http.MethodGet, "/cars/5/reviews", "")

	assertStatus(t, rec, http.StatusOK)
	var got ReviewSummaryResponse
	decodeData(t, rec, &got)
	assert.Equal(t, 1, got.TotalReviews)
	assert.InDelta(t, 8.0, got.AverageRating, 1e-9)
	if assert.Len(t, got.Reviews, 1) {
		assert.Equal(t, 8, *got.Reviews[0].Rating)
	}
}

func TestCarHandler_SetAvailability_RequiresFlag(t *testing.T) {
	fx := newCarHandlerFixture(t)
	e := newTestEcho()
	e.PATCH("/cars/:id/availability", fx.handler.SetAvailability, asPrincipal(dealershipPrincipal))

	rec := serve(e, http.MethodPatch, "/cars/5/availability", `{}`)

	assertStatus(t, rec, http.StatusBadRequest)
	assert.Contains(t, decodeError(t, rec).Details, "available is required")
}
