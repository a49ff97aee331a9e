package errors

import (
	"net/http"

	"carmarket/internal/errors"
)

// Kind classifies an application error into the categories the API boundary
// maps to distinct client-facing statuses.
type Kind string

const (
	KindValidation   Kind = "VALIDATION"
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindInvalidState Kind = "INVALID_STATE"
	KindForbidden    Kind = "FORBIDDEN"
	KindUnauthorized Kind = "UNAUTHORIZED"
	KindRateLimited  Kind = "RATE_LIMITED"
	KindInternal     Kind = "INTERNAL"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
	Kind() Kind        // Error category
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	kind      Kind
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(kind Kind, httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		kind:      kind,
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// Is matches any BaseError carrying the same business error code, so sentinels
// keep matching after WithDetails copies them.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return t.errorCode == e.errorCode
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// Kind returns the error category
func (e *BaseError) Kind() Kind {
	return e.kind
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		kind:      e.kind,
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Generic taxonomy
	ErrValidationFailed = NewBaseError(KindValidation, http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed", "")
	ErrNotFound         = NewBaseError(KindNotFound, http.StatusNotFound, "NOT_FOUND", "resource not found", "")
	ErrConflict         = NewBaseError(KindConflict, http.StatusConflict, "CONFLICT", "resource conflict", "")
	ErrInvalidState     = NewBaseError(KindInvalidState, http.StatusUnprocessableEntity, "INVALID_STATE", "illegal state transition", "")
	ErrForbidden        = NewBaseError(KindForbidden, http.StatusForbidden, "FORBIDDEN", "access denied", "")
	ErrInternalError    = NewBaseError(KindInternal, http.StatusInternalServerError, "INTERNAL_ERROR", "internal error", "")
	ErrUnauthorized     = NewBaseError(KindUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required", "")
	ErrInvalidToken     = NewBaseError(KindUnauthorized, http.StatusUnauthorized, "INVALID_TOKEN", "invalid or expired token", "")
	ErrTooManyRequests  = NewBaseError(KindRateLimited, http.StatusTooManyRequests, "RATE_LIMIT_EXCEEDED", "too many requests, please retry later", "")

	// User directory
	ErrUserNotFound       = NewBaseError(KindNotFound, http.StatusNotFound, "USER_NOT_FOUND", "user not found", "")
	ErrUserAlreadyExists  = NewBaseError(KindConflict, http.StatusConflict, "USER_ALREADY_EXISTS", "email is already registered", "")
	ErrIdentityInUse      = NewBaseError(KindConflict, http.StatusConflict, "IDENTITY_IN_USE", "national or tax identifier is already registered", "")
	ErrUserInactive       = NewBaseError(KindValidation, http.StatusBadRequest, "USER_INACTIVE", "user account is inactive", "")
	ErrInvalidCredentials = NewBaseError(KindUnauthorized, http.StatusUnauthorized, "INVALID_CREDENTIALS", "invalid email or password", "")
	ErrPasswordStrength   = NewBaseError(KindValidation, http.StatusBadRequest, "PASSWORD_STRENGTH", "password does not meet strength requirements", "")
	ErrPasswordHashFailed = NewBaseError(KindInternal, http.StatusInternalServerError, "PASSWORD_HASH_FAILED", "password processing failed", "")

	// Catalog
	ErrCarNotFound      = NewBaseError(KindNotFound, http.StatusNotFound, "CAR_NOT_FOUND", "car not found", "")
	ErrDuplicatePlate   = NewBaseError(KindConflict, http.StatusConflict, "DUPLICATE_PLATE", "a car with this plate is already registered", "")
	ErrCarNotAvailable  = NewBaseError(KindConflict, http.StatusConflict, "CAR_NOT_AVAILABLE", "car is not available", "")
	ErrDealershipAbsent = NewBaseError(KindNotFound, http.StatusNotFound, "DEALERSHIP_NOT_FOUND", "dealership not found", "")
	ErrBuyerNotFound    = NewBaseError(KindNotFound, http.StatusNotFound, "BUYER_NOT_FOUND", "buyer not found", "")

	// Offer book
	ErrOfferNotFound     = NewBaseError(KindNotFound, http.StatusNotFound, "OFFER_NOT_FOUND", "car offer not found", "")
	ErrOfferUnavailable  = NewBaseError(KindConflict, http.StatusConflict, "OFFER_UNAVAILABLE", "car offer is no longer available", "")
	ErrOfferAlreadyOpen  = NewBaseError(KindConflict, http.StatusConflict, "OFFER_ALREADY_OPEN", "dealership already has an open offer for this car", "")
	ErrOfferHasPurchase  = NewBaseError(KindConflict, http.StatusConflict, "OFFER_HAS_PURCHASE", "car offer is referenced by an active purchase", "")
	ErrOfferPairClaimed  = NewBaseError(KindConflict, http.StatusConflict, "OFFER_PAIR_CLAIMED", "an earlier offer for this car is held by an active purchase", "")
	ErrConcurrentUpdate  = NewBaseError(KindConflict, http.StatusConflict, "CONCURRENT_UPDATE", "resource was modified concurrently, please retry", "")
	ErrInvalidPrice      = NewBaseError(KindValidation, http.StatusBadRequest, "INVALID_PRICE", "price must be greater than zero", "")
	ErrPurchaseNotFound  = NewBaseError(KindNotFound, http.StatusNotFound, "PURCHASE_NOT_FOUND", "purchase not found", "")
	ErrPurchaseLimit     = NewBaseError(KindConflict, http.StatusConflict, "PURCHASE_LIMIT", "buyer already holds the maximum number of open purchases", "")
	ErrInvalidTransition = NewBaseError(KindInvalidState, http.StatusUnprocessableEntity, "INVALID_PURCHASE_TRANSITION", "purchase cannot move to the requested status", "")

	// Favorites
	ErrFavoriteNotFound      = NewBaseError(KindNotFound, http.StatusNotFound, "FAVORITE_NOT_FOUND", "favorite not found", "")
	ErrFavoriteAlreadyExists = NewBaseError(KindConflict, http.StatusConflict, "FAVORITE_ALREADY_EXISTS", "car is already in favorites", "")
	ErrInvalidRating         = NewBaseError(KindValidation, http.StatusBadRequest, "INVALID_RATING", "rating must be between 0 and 10", "")
)

// KindOf returns the category of the first AppError in err's chain, or
// KindInternal when err carries none.
func KindOf(err error) Kind {
	var appErr AppError
	if errors.As(err, &appErr) {
		return appErr.Kind()
	}

	return KindInternal
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// Unwrap exposes the driver error.
func (e *DatabaseExecuteError) Unwrap() error {
	return e.err
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}

// Kind returns the error category
func (e *DatabaseExecuteError) Kind() Kind {
	return KindInternal
}
