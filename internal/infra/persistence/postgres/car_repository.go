package postgres

import (
	"context"
	"strings"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/repository"
	"carmarket/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// carRepository implements the repository.CarRepository interface.
type carRepository struct {
	db *gorm.DB
}

// NewCarRepository is the constructor for carRepository.
func NewCarRepository(db *gorm.DB) repository.CarRepository {
	return &carRepository{
		db: db,
	}
}

func (repo *carRepository) FindByID(ctx context.Context, id int64) (*entity.Car, error) {
	var carM model.CarModel

	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&carM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCarNotFound
		}

		return nil, errors.Wrap(err, "failed to find car by id")
	}

	return toCarDomain(&carM), nil
}

func (repo *carRepository) Create(ctx context.Context, car *entity.Car) error {
	carM := fromCarDomain(car)

	if err := repo.db.WithContext(ctx).Create(carM).Error; err != nil {
		return translateCarWriteError(err, "failed to create car")
	}
	car.ID = carM.ID

	return nil
}

// Update rewrites every mutable column of the car.
func (repo *carRepository) Update(ctx context.Context, car *entity.Car) error {
	carM := fromCarDomain(car)

	result := repo.db.WithContext(ctx).
		Model(&model.CarModel{}).
		Where("id = ?", car.ID).
		Select("*").
		Omit("id", "published_at").
		Updates(carM)
	if result.Error != nil {
		return translateCarWriteError(result.Error, "failed to update car")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

func translateCarWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err, constraintCarsPlate):
		return domainerrors.ErrDuplicatePlate
	case isNotNullConstraintViolation(err), isCheckConstraintViolation(err):
		return domainerrors.ErrValidationFailed.WithDetails("car violates catalog constraints")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func (repo *carRepository) SetAvailability(ctx context.Context, id int64, available bool) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CarModel{}).
		Where("id = ?", id).
		Update("available", available)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update car availability")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCarNotFound
	}

	return nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes user input match literally inside a LIKE pattern, using the
// default backslash escape.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// Search lists cars matching every supplied filter field, newest first.
func (repo *carRepository) Search(ctx context.Context, filter entity.CarFilter) ([]*entity.Car, error) {
	query := repo.db.WithContext(ctx).Model(&model.CarModel{})

	if kw := strings.TrimSpace(filter.Keyword); kw != "" {
		like := "%" + escapeLike(kw) + "%"
		query = query.Where("(brand ILIKE ? OR model ILIKE ? OR description ILIKE ?)", like, like, like)
	}
	if brand := strings.TrimSpace(filter.Brand); brand != "" {
		query = query.Where("LOWER(brand) = LOWER(?)", brand)
	}
	if filter.YearFrom != nil {
		query = query.Where("year >= ?", *filter.YearFrom)
	}
	if filter.YearTo != nil {
		query = query.Where("year <= ?", *filter.YearTo)
	}
	if filter.FuelType != nil {
		query = query.Where("fuel_type = ?", string(*filter.FuelType))
	}
	if filter.Transmission != nil {
		query = query.Where("transmission = ?", string(*filter.Transmission))
	}
	if filter.AvailableOnly {
		query = query.Where("available = ?", true)
	}

	page := filter.Page.Normalize()

	var carModels []*model.CarModel
	if err := query.
		Order("published_at DESC, id DESC").
		Limit(page.Limit).
		Offset(page.Offset).
		Find(&carModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to search cars")
	}

	cars := make([]*entity.Car, 0, len(carModels))
	for _, carM := range carModels {
		cars = append(cars, toCarDomain(carM))
	}

	return cars, nil
}

// --- Mapper Functions ---

func toCarDomain(data *model.CarModel) *entity.Car {
	if data == nil {
		return nil
	}

	return &entity.Car{
		ID:           data.ID,
		Brand:        data.Brand,
		Model:        data.Model,
		Year:         data.Year,
		Mileage:      data.Mileage,
		Color:        data.Color,
		FuelType:     entity.FuelType(data.FuelType),
		Transmission: entity.Transmission(data.Transmission),
		Plate:        data.Plate,
		Description:  data.Description,
		Images:       append([]string{}, data.Images...),
		Available:    data.Available,
		PublishedAt:  data.PublishedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromCarDomain(data *entity.Car) *model.CarModel {
	if data == nil {
		return nil
	}

	return &model.CarModel{
		ID:           data.ID,
		Brand:        data.Brand,
		Model:        data.Model,
		Year:         data.Year,
		Mileage:      data.Mileage,
		Color:        data.Color,
		FuelType:     string(data.FuelType),
		Transmission: string(data.Transmission),
		Plate:        data.Plate,
		Description:  data.Description,
		Images:       datatypes.JSONSlice[string](append([]string{}, data.Images...)),
		Available:    data.Available,
		PublishedAt:  data.PublishedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
