package ledger

import (
	"fmt"
	"strings"
	"time"

	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
)

// ValidateCar checks the catalog invariants of a car about to be stored.
func ValidateCar(car entity.Car) error {
	var problems []string

	if strings.TrimSpace(car.Brand) == "" {
		problems = append(problems, "brand is required")
	}
	if strings.TrimSpace(car.Model) == "" {
		problems = append(problems, "model is required")
	}
	if strings.TrimSpace(car.Plate) == "" {
		problems = append(problems, "plate is required")
	}
	if car.Year <= entity.MinCatalogYear {
		problems = append(problems, fmt.Sprintf("year must be after %d", entity.MinCatalogYear))
	}
	if car.Mileage < 0 {
		problems = append(problems, "mileage must not be negative")
	}
	if !car.FuelType.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown fuel type %q", car.FuelType))
	}
	if !car.Transmission.IsValid() {
		problems = append(problems, fmt.Sprintf("unknown transmission %q", car.Transmission))
	}

	if len(problems) > 0 {
		return domainerrors.ErrValidationFailed.WithDetails(strings.Join(problems, "; "))
	}

	return nil
}

// NormalizeCar trims text fields, upper-cases the plate and drops a blank description.
func NormalizeCar(car entity.Car) entity.Car {
	car.Brand = strings.TrimSpace(car.Brand)
	car.Model = strings.TrimSpace(car.Model)
	car.Color = strings.TrimSpace(car.Color)
	car.Plate = strings.ToUpper(strings.TrimSpace(car.Plate))
	car.Description = normalizeText(car.Description)

	images := make([]string, 0, len(car.Images))
	for _, img := range car.Images {
		if img = strings.TrimSpace(img); img != "" {
			images = append(images, img)
		}
	}
	car.Images = images

	return car
}

// NewCar builds an available catalog entry published at now.
func NewCar(car entity.Car, now time.Time) (entity.Car, error) {
	car = NormalizeCar(car)
	if err := ValidateCar(car); err != nil {
		return entity.Car{}, err
	}

	car.Available = true
	car.PublishedAt = now
	car.UpdatedAt = now

	return car, nil
}
