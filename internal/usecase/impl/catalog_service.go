package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/ledger"
	"carmarket/internal/domain/repository"
	"carmarket/internal/usecase"

	"go.uber.org/fx"
)

type catalogService struct {
	carRepo repository.CarRepository
	logger  *slog.Logger
	now     func() time.Time
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CarRepo repository.CarRepository
	Logger  *slog.Logger
}

// NewCatalogService wires the car catalog.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		carRepo: params.CarRepo,
		logger:  params.Logger,
		now:     systemClock,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// canCurate reports whether the principal may edit the shared catalog.
func canCurate(principal entity.Principal) bool {
	return principal.IsAdmin() || principal.Role == entity.RoleDealership
}

func (srv *catalogService) RegisterCar(ctx context.Context, principal entity.Principal, input *usecase.RegisterCarInput) (*entity.Car, error) {
	if !canCurate(principal) {
		return nil, forbidden("only dealerships and administrators may register cars")
	}

	car, err := ledger.NewCar(entity.Car{
		Brand:        input.Brand,
		Model:        input.Model,
		Year:         input.Year,
		Mileage:      input.Mileage,
		Color:        input.Color,
		FuelType:     input.FuelType,
		Transmission: input.Transmission,
		Plate:        input.Plate,
		Description:  input.Description,
		Images:       input.Images,
	}, srv.now())
	if err != nil {
		return nil, err
	}

	if err := srv.carRepo.Create(ctx, &car); err != nil {
		srv.log(ctx).Info("Car registration rejected", slog.String("plate", car.Plate), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Info("Car registered", slog.Int64("carID", car.ID), slog.String("plate", car.Plate))

	return &car, nil
}

func (srv *catalogService) UpdateCar(ctx context.Context, principal entity.Principal, id int64, input *usecase.UpdateCarInput) (*entity.Car, error) {
	if !canCurate(principal) {
		return nil, forbidden("only dealerships and administrators may edit cars")
	}

	current, err := srv.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err)
	}

	car := *current
	applyCarUpdate(&car, input)
	car = ledger.NormalizeCar(car)
	if err := ledger.ValidateCar(car); err != nil {
		return nil, err
	}
	car.UpdatedAt = srv.now()

	if err := srv.carRepo.Update(ctx, &car); err != nil {
		return nil, translateRepoError(err)
	}

	return &car, nil
}

func applyCarUpdate(car *entity.Car, input *usecase.UpdateCarInput) {
	if input.Brand != nil {
		car.Brand = *input.Brand
	}
	if input.Model != nil {
		car.Model = *input.Model
	}
	if input.Year != nil {
		car.Year = *input.Year
	}
	if input.Mileage != nil {
		car.Mileage = *input.Mileage
	}
	if input.Color != nil {
		car.Color = *input.Color
	}
	if input.FuelType != nil {
		car.FuelType = *input.FuelType
	}
	if input.Transmission != nil {
		car.Transmission = *input.Transmission
	}
	if input.Plate != nil {
		car.Plate = *input.Plate
	}
	if input.Description != nil {
		car.Description = input.Description
	}
	if input.Images != nil {
		car.Images = *input.Images
	}
}

// SetCarAvailability retires a car from, or returns it to, the catalog.
func (srv *catalogService) SetCarAvailability(ctx context.Context, principal entity.Principal, id int64, available bool) error {
	if !canCurate(principal) {
		return forbidden("only dealerships and administrators may change car availability")
	}

	if err := srv.carRepo.SetAvailability(ctx, id, available); err != nil {
		return translateRepoError(err)
	}

	srv.log(ctx).Info("Car availability changed", slog.Int64("carID", id), slog.Bool("available", available))

	return nil
}

func (srv *catalogService) GetCar(ctx context.Context, id int64) (*entity.Car, error) {
	car, err := srv.carRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateRepoError(err)
	}

	return car, nil
}

func (srv *catalogService) ListAvailableCars(ctx context.Context, page entity.Page) ([]*entity.Car, error) {
	return srv.carRepo.Search(ctx, entity.CarFilter{AvailableOnly: true, Page: page.Normalize()})
}

func (srv *catalogService) SearchCars(ctx context.Context, filter entity.CarFilter) ([]*entity.Car, error) {
	filter.Page = filter.Page.Normalize()

	return srv.carRepo.Search(ctx, filter)
}
