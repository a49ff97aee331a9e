package handler

import (
	"log/slog"
	"net/http"

	"carmarket/internal/delivery/http/response"
	"carmarket/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for user-related handlers
type UserHandler struct {
	userUC usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		userUC: params.UserUC,
		logger: params.Logger,
	}
}

// AccountRequest carries the credentials and contact data shared by every role.
type AccountRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Phone     string `json:"phone" validate:"required,max=30"`
}

func (r AccountRequest) toInput() usecase.AccountInput {
	return usecase.AccountInput{
		Email:     r.Email,
		Password:  r.Password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Phone:     r.Phone,
	}
}

// RegisterBuyerRequest represents the request body for buyer registration
type RegisterBuyerRequest struct {
	AccountRequest
	NationalID string `json:"national_id" validate:"required,max=30"`
	Address    string `json:"address" validate:"required,max=255"`
}

// RegisterDealershipRequest represents the request body for dealership registration
type RegisterDealershipRequest struct {
	AccountRequest
	BusinessName string `json:"business_name" validate:"required,max=150"`
	TaxID        string `json:"tax_id" validate:"required,max=30"`
	Address      string `json:"address" validate:"required,max=255"`
	City         string `json:"city" validate:"required,max=100"`
	Province     string `json:"province" validate:"required,max=100"`
	Description  string `json:"description" validate:"max=2000"`
}

// LoginRequest represents the request body for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	AccessToken string        `json:"access_token"`
	TokenType   string        `json:"token_type"`
	User        *UserResponse `json:"user"`
}

// SetActiveRequest toggles the soft-retirement flag of an account.
type SetActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

// RegisterBuyer handles buyer registration
func (h *UserHandler) RegisterBuyer(c echo.Context) error {
	var req RegisterBuyerRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.RegisterBuyer(c.Request().Context(), &usecase.RegisterBuyerInput{
		AccountInput: req.toInput(),
		NationalID:   req.NationalID,
		Address:      req.Address,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// RegisterDealership handles dealership registration
func (h *UserHandler) RegisterDealership(c echo.Context) error {
	var req RegisterDealershipRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.RegisterDealership(c.Request().Context(), &usecase.RegisterDealershipInput{
		AccountInput: req.toInput(),
		BusinessName: req.BusinessName,
		TaxID:        req.TaxID,
		Address:      req.Address,
		City:         req.City,
		Province:     req.Province,
		Description:  req.Description,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// RegisterAdmin handles admin creation by an existing admin
func (h *UserHandler) RegisterAdmin(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req AccountRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	input := req.toInput()
	user, err := h.userUC.RegisterAdmin(c.Request().Context(), principal, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// Login handles user login
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.userUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &LoginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "Bearer",
		User:        toUserResponse(output.User),
	})
}

// GetUser returns a user profile to the user themself or an admin
func (h *UserHandler) GetUser(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	user, err := h.userUC.GetUser(c.Request().Context(), principal, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// SetUserActive activates or retires an account
func (h *UserHandler) SetUserActive(c echo.Context) error {
	principal, err := principalFrom(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	id, err := pathID(c, "id")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var req SetActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.userUC.SetUserActive(c.Request().Context(), principal, id, *req.Active); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
