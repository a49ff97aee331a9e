package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint names declared by the migrations.
const (
	constraintUsersEmail       = "uq_users_email"
	constraintBuyerNationalID  = "uq_buyer_profiles_national_id"
	constraintDealershipTaxID  = "uq_dealership_profiles_tax_id"
	constraintCarsPlate        = "uq_cars_plate"
	constraintActivePurchase   = "uq_purchases_active_offer"
	constraintFavoriteBuyerCar = "uq_favorite_cars_buyer_car"
	pgUniqueViolation          = "23505"
	pgForeignKeyViolation      = "23503"
	pgNotNullViolation         = "23502"
	pgCheckViolation           = "23514"
)

// isUniqueConstraintViolation reports whether err is a unique violation.
// When constraint is non-empty the violated constraint must also match.
func isUniqueConstraintViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation && (constraint == "" || pgErr.ConstraintName == constraint)
	}

	// GORM's translated error drops the constraint name.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return constraint == ""
	}

	errMsg := strings.ToLower(err.Error())
	if !strings.Contains(errMsg, "duplicate key") && !strings.Contains(errMsg, pgUniqueViolation) {
		return false
	}

	return constraint == "" || strings.Contains(errMsg, constraint)
}

func isForeignKeyConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgNotNullViolation
	}

	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") || strings.Contains(errMsg, pgNotNullViolation)
}

func isCheckConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgCheckViolation
}
