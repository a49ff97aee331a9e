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

func validCarInput(plate string) *usecase.RegisterCarInput {
	return &usecase.RegisterCarInput{
		Brand:        " Fiat ",
		Model:        "Cronos",
		Year:         2022,
		Mileage:      3000,
		Color:        "Red",
		FuelType:     entity.FuelGasoline,
		Transmission: entity.TransmissionManual,
		Plate:        plate,
		Images:       []string{"front.jpg", "  "},
	}
}

func TestCatalogService_RegisterCar(t *testing.T) {
	ctx := context.Background()

	t.Run("dealership registers a normalized car", func(t *testing.T) {
		f := newMarketFixture(t)

		car, err := f.catalog.RegisterCar(ctx, f.dealer, validCarInput(" ef456gh "))
		require.NoError(t, err)
		assert.NotZero(t, car.ID)
		assert.Equal(t, "Fiat", car.Brand)
		assert.Equal(t, "EF456GH", car.Plate)
		assert.Equal(t, []string{"front.jpg"}, car.Images)
		assert.True(t, car.Available)
		assert.False(t, car.PublishedAt.IsZero())
	})

	t.Run("buyers may not curate the catalog", func(t *testing.T) {
		f := newMarketFixture(t)

		_, err := f.catalog.RegisterCar(ctx, f.buyer, validCarInput("EF456GH"))
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)

		err = f.catalog.SetCarAvailability(ctx, f.buyer, f.carID, false)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("plates are unique", func(t *testing.T) {
		f := newMarketFixture(t)

		_, err := f.catalog.RegisterCar(ctx, f.admin, validCarInput("ab123cd"))
		assert.ErrorIs(t, err, domainerrors.ErrDuplicatePlate)
	})

	t.Run("invalid fields are rejected", func(t *testing.T) {
		f := newMarketFixture(t)

		input := validCarInput("XY000ZZ")
		input.Year = entity.MinCatalogYear
		input.Mileage = -5
		input.FuelType = "STEAM"

		_, err := f.catalog.RegisterCar(ctx, f.admin, input)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCatalogService_UpdateCar(t *testing.T) {
	f := newMarketFixture(t)
	ctx := context.Background()

	updated, err := f.catalog.UpdateCar(ctx, f.dealer, f.carID, &usecase.UpdateCarInput{
		Mileage: ptr(20000),
		Color:   ptr("Blue"),
	})
	require.NoError(t, err)
	assert.Equal(t, 20000, updated.Mileage)
	assert.Equal(t, "Blue", updated.Color)
	assert.Equal(t, "Toyota", updated.Brand)

	other := f.seedCar(t, "OP345QR")
	_, err = f.catalog.UpdateCar(ctx, f.dealer, other, &usecase.UpdateCarInput{Plate: ptr("ab123cd")})
	assert.ErrorIs(t, err, domainerrors.ErrDuplicatePlate)

	_, err = f.catalog.UpdateCar(ctx, f.dealer, f.carID, &usecase.UpdateCarInput{Brand: ptr("  ")})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = f.catalog.UpdateCar(ctx, f.dealer, 9999, &usecase.UpdateCarInput{})
	assert.ErrorIs(t, err, domainerrors.ErrCarNotFound)
}

func TestCatalogService_Search(t *testing.T) {
	f := newMarketFixture(t)
	ctx := context.Background()

	_, err := f.catalog.RegisterCar(ctx, f.admin, validCarInput("ST678UV"))
	require.NoError(t, err)
	retired := f.seedCar(t, "WX901YZ")
	require.NoError(t, f.catalog.SetCarAvailability(ctx, f.admin, retired, false))

	available, err := f.catalog.ListAvailableCars(ctx, entity.Page{})
	require.NoError(t, err)
	assert.Len(t, available, 2)

	fiats, err := f.catalog.SearchCars(ctx, entity.CarFilter{Keyword: "cron"})
	require.NoError(t, err)
	require.Len(t, fiats, 1)
	assert.Equal(t, "Cronos", fiats[0].Model)

	manual := entity.TransmissionManual
	byGearbox, err := f.catalog.SearchCars(ctx, entity.CarFilter{Transmission: &manual})
	require.NoError(t, err)
	assert.Len(t, byGearbox, 1)

	from := 2021
	recent, err := f.catalog.SearchCars(ctx, entity.CarFilter{YearFrom: &from})
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	toyotas, err := f.catalog.SearchCars(ctx, entity.CarFilter{Brand: "toyota"})
	require.NoError(t, err)
	assert.Len(t, toyotas, 2)

	car, err := f.catalog.GetCar(ctx, retired)
	require.NoError(t, err)
	assert.False(t, car.Available)
}
