package ledger

import (
	"testing"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCar() entity.Car {
	return entity.Car{
		Brand:        " Toyota ",
		Model:        "Corolla",
		Year:         2020,
		Mileage:      15000,
		Color:        "white",
		FuelType:     entity.FuelHybrid,
		Transmission: entity.TransmissionAutomatic,
		Plate:        "ab123cd",
		Images:       []string{"a.jpg", " ", "b.jpg"},
	}
}

func TestNewCar(t *testing.T) {
	car, err := NewCar(validCar(), testNow)
	require.NoError(t, err)
	assert.Equal(t, "Toyota", car.Brand)
	assert.Equal(t, "AB123CD", car.Plate)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, car.Images)
	assert.True(t, car.Available)
	assert.Equal(t, testNow, car.PublishedAt)
}

func TestValidateCar(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*entity.Car)
		detail string
	}{
		{"year at lower bound", func(c *entity.Car) { c.Year = 1900 }, "year must be after 1900"},
		{"blank brand", func(c *entity.Car) { c.Brand = "  " }, "brand is required"},
		{"blank plate", func(c *entity.Car) { c.Plate = "" }, "plate is required"},
		{"negative mileage", func(c *entity.Car) { c.Mileage = -1 }, "mileage must not be negative"},
		{"unknown fuel", func(c *entity.Car) { c.FuelType = "STEAM" }, "unknown fuel type"},
		{"unknown transmission", func(c *entity.Car) { c.Transmission = "CVT" }, "unknown transmission"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			car := validCar()
			tt.mutate(&car)

			_, err := NewCar(car, testNow)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
			assert.Contains(t, err.Error(), tt.detail)
		})
	}

	car := validCar()
	car.Year = 1901
	assert.NoError(t, ValidateCar(NormalizeCar(car)))
}

func TestFavoriteRules(t *testing.T) {
	buyer := activeBuyer()
	car := &entity.Car{ID: 3, Available: true}

	fav, err := NewFavorite(buyer, car, true, false, testNow)
	require.NoError(t, err)
	assert.True(t, fav.NotifyPriceChanges)
	assert.False(t, fav.IsReviewed())

	_, err = NewFavorite(buyer, car, false, true, testNow)
	assert.ErrorIs(t, err, domainerrors.ErrFavoriteAlreadyExists)

	_, err = NewFavorite(&entity.User{ID: 2, Role: entity.RoleDealership}, car, false, false, testNow)
	assert.ErrorIs(t, err, domainerrors.ErrBuyerNotFound)

	for _, rating := range []int{entity.MinRating, entity.MaxRating} {
		reviewed, err := ApplyReview(fav, &rating, nil, testNow)
		require.NoError(t, err)
		assert.Equal(t, rating, *reviewed.Rating)
	}

	for _, rating := range []int{-1, 11} {
		_, err := ApplyReview(fav, &rating, nil, testNow)
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRating)
	}

	blank := "   "
	comment := " great "
	reviewed, err := ApplyReview(fav, nil, &comment, testNow)
	require.NoError(t, err)
	assert.Equal(t, "great", *reviewed.Comment)

	cleared, err := ApplyReview(reviewed, nil, &blank, testNow)
	require.NoError(t, err)
	assert.Nil(t, cleared.Comment)
}
