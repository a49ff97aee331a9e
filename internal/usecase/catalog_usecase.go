package usecase

import (
	"context"

	"carmarket/internal/domain/entity"
)

// RegisterCarInput defines the data required to add a car to the catalog.
type RegisterCarInput struct {
	Brand        string
	Model        string
	Year         int
	Mileage      int
	Color        string
	FuelType     entity.FuelType
	Transmission entity.Transmission
	Plate        string
	Description  *string
	Images       []string
}

// UpdateCarInput carries a partial car update. Nil fields are left unchanged.
type UpdateCarInput struct {
	Brand        *string
	Model        *string
	Year         *int
	Mileage      *int
	Color        *string
	FuelType     *entity.FuelType
	Transmission *entity.Transmission
	Plate        *string
	Description  *string
	Images       *[]string
}

// CatalogUsecase manages the shared car catalog.
type CatalogUsecase interface {
	RegisterCar(ctx context.Context, principal entity.Principal, input *RegisterCarInput) (*entity.Car, error)
	UpdateCar(ctx context.Context, principal entity.Principal, id int64, input *UpdateCarInput) (*entity.Car, error)
	SetCarAvailability(ctx context.Context, principal entity.Principal, id int64, available bool) error
	GetCar(ctx context.Context, id int64) (*entity.Car, error)
	ListAvailableCars(ctx context.Context, page entity.Page) ([]*entity.Car, error)
	SearchCars(ctx context.Context, filter entity.CarFilter) ([]*entity.Car, error)
}
