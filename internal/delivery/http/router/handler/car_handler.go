package handler

import (
	"log/slog"
	"net/http"

	"carmarket/internal/delivery/http/response"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CarHandlerParams holds dependencies for CarHandler, injected by Fx.
type CarHandlerParams struct {
	fx.In

	CatalogUC  usecase.CatalogUsecase
	FavoriteUC usecase.FavoriteUsecase
	Logger     *slog.Logger
}

// CarHandler serves the catalog and its review summaries.
type CarHandler struct {
	catalogUC  usecase.CatalogUsecase
	favoriteUC usecase.FavoriteUsecase
	logger     *slog.Logger
}

// NewCarHandler is the constructor for CarHandler
func NewCarHandler(params CarHandlerParams) *CarHandler {
	return &CarHandler{
		catalogUC:  params.CatalogUC,
		favoriteUC: params.FavoriteUC,
		logger:     params.Logger,
	}
}

// RegisterCarRequest represents the request body for adding a car to the catalog
type RegisterCarRequest struct {
	Brand        string   `json:"brand" validate:"required,max=50"`
	Model        string   `json:"model" validate:"required,max=100"`
	Year         int      `json:"year" validate:"required,gt=1900"`
	Mileage      int      `json:"mileage" validate:"gte=0"`
	Color        string   `json:"color" validate:"required,max=30"`
	FuelType     string   `json:"fuel_type" validate:"required,oneof=GASOLINE DIESEL ELECTRIC HYBRID LPG"`
	Transmission string   `json:"transmission" validate:"required,oneof=MANUAL AUTOMATIC SEMI_AUTOMATIC"`
	Plate        string   `json:"plate" validate:"required,max=20"`
	Description  *string  `json:"description" validate:"omitempty,max=2000"`
	Images       []string `json:"images" validate:"omitempty,dive,required"`
}

// UpdateCarRequest carries a partial catalog update; absent fields are left untouched.
type UpdateCarRequest struct {
	Brand        *string   `json:"brand" validate:"omitempty,min=1,max=50"`
	Model        *string   `json:"model" validate:"omitempty,min=1,max=100"`
	Year         *int      `json:"year" validate:"omitempty,gt=1900"`
	Mileage      *int      `json:"mileage" validate:"omitempty,gte=0"`
	Color        *string   `json:"color" validate:"omitempty,min=1,max=30"`
	FuelType     *string   `json:"fuel_type" validate:"omitempty,oneof=GASOLINE DIESEL ELECTRIC HYBRID LPG"`
	Transmission *string   `json:"transmission" validate:"omitempty,oneof=MANUAL AUTOMATIC SEMI_AUTOMATIC"`
	Plate        *string   `json:"plate" validate:"omitempty,min=1,max=20"`
	Description  *string   `json:"description" validate:"omitempty,max=2000"`
	Images       *[]string `json:"images"`
}

// AvailabilityRequest sets the availability flag of a catalog car.
type AvailabilityRequest struct {
	Available *bool `json:"available" validate:"required"`
}

// RegisterCar handles catalog registration
func (h *CarHandler) RegisterCar(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req RegisterCarRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	car, err := h.catalogUC.RegisterCar(c.Request().Context(), principal, &usecase.RegisterCarInput{
		Brand:        req.Brand,
		Model:        req.Model,
		Year:         req.Year,
		Mileage:      req.Mileage,
		Color:        req.Color,
		FuelType:     entity.FuelType(req.FuelType),
		Transmission: entity.Transmission(req.Transmission),
		Plate:        req.Plate,
		Description:  req.Description,
		Images:       req.Images,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toCarResponse(car))
}

// UpdateCar handles partial catalog updates
func (h *CarHandler) UpdateCar(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req UpdateCarRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := &usecase.UpdateCarInput{
		Brand:       req.Brand,
		Model:       req.Model,
		Year:        req.Year,
		Mileage:     req.Mileage,
		Color:       req.Color,
		Plate:       req.Plate,
		Description: req.Description,
		Images:      req.Images,
	}
	if req.FuelType != nil {
		fuel := entity.FuelType(*req.FuelType)
		input.FuelType = &fuel
	}
	if req.Transmission != nil {
		transmission := entity.Transmission(*req.Transmission)
		input.Transmission = &transmission
	}

	car, err := h.catalogUC.UpdateCar(c.Request().Context(), principal, id, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCarResponse(car))
}

// SetAvailability handles retiring or restoring a catalog car
func (h *CarHandler) SetAvailability(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AvailabilityRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.catalogUC.SetCarAvailability(c.Request().Context(), principal, id, *req.Available); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetCar returns one catalog car
func (h *CarHandler) GetCar(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	car, err := h.catalogUC.GetCar(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCarResponse(car))
}

// ListAvailable returns the available catalog cars
func (h *CarHandler) ListAvailable(c echo.Context) error {
	page, err := pageFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cars, err := h.catalogUC.ListAvailableCars(c.Request().Context(), page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCarResponses(cars))
}

// Search handles catalog searches. Query parameters left out act as wildcards.
func (h *CarHandler) Search(c echo.Context) error {
	filter, err := carFilterFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cars, err := h.catalogUC.SearchCars(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toCarResponses(cars))
}

// ReviewSummary returns the review aggregate of a car
func (h *CarHandler) ReviewSummary(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	summary, err := h.favoriteUC.GetCarReviewSummary(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toReviewSummaryResponse(summary))
}

func carFilterFrom(c echo.Context) (entity.CarFilter, error) {
	var (
		filter           entity.CarFilter
		yearFrom, yearTo int
		fuel, gearbox    string
	)
	err := echo.QueryParamsBinder(c).
		String("keyword", &filter.Keyword).
		String("brand", &filter.Brand).
		Int("year_from", &yearFrom).
		Int("year_to", &yearTo).
		String("fuel_type", &fuel).
		String("transmission", &gearbox).
		Bool("available_only", &filter.AvailableOnly).
		Int("limit", &filter.Page.Limit).
		Int("offset", &filter.Page.Offset).
		BindError()
	if err != nil {
		return entity.CarFilter{}, domainerrors.ErrValidationFailed.WithDetails("malformed search query")
	}

	if c.QueryParam("year_from") != "" {
		filter.YearFrom = &yearFrom
	}
	if c.QueryParam("year_to") != "" {
		filter.YearTo = &yearTo
	}
	if fuel != "" {
		fuelType := entity.FuelType(fuel)
		if !fuelType.IsValid() {
			return entity.CarFilter{}, domainerrors.ErrValidationFailed.WithDetails("unknown fuel_type " + fuel)
		}
		filter.FuelType = &fuelType
	}
	if gearbox != "" {
		transmission := entity.Transmission(gearbox)
		if !transmission.IsValid() {
			return entity.CarFilter{}, domainerrors.ErrValidationFailed.WithDetails("unknown transmission " + gearbox)
		}
		filter.Transmission = &transmission
	}

	return filter, nil
}
