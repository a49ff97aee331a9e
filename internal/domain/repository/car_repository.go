package repository

import (
	"context"
	"errors"

	"carmarket/internal/domain/entity"
)

// ErrCarNotFound is returned when a car is not found.
var ErrCarNotFound = errors.New("car not found")

// CarRepository defines persistence operations for the catalog.
type CarRepository interface {
	FindByID(ctx context.Context, id int64) (*entity.Car, error)

	// Create persists a new car and fills in the generated ID.
	Create(ctx context.Context, car *entity.Car) error

	// Update saves every mutable field of an existing car.
	Update(ctx context.Context, car *entity.Car) error

	SetAvailability(ctx context.Context, id int64, available bool) error

	// Search returns the cars matching every supplied field of the filter,
	// newest publication first.
	Search(ctx context.Context, filter entity.CarFilter) ([]*entity.Car, error)
}
