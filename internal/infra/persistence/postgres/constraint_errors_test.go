package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	plateClash := &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintCarsPlate}

	tests := []struct {
		name       string
		err        error
		constraint string
		want       bool
	}{
		{name: "matching constraint", err: plateClash, constraint: constraintCarsPlate, want: true},
		{name: "wrapped pg error", err: errors.Wrap(plateClash, "insert car"), constraint: constraintCarsPlate, want: true},
		{name: "other constraint", err: plateClash, constraint: constraintActivePurchase, want: false},
		{name: "any constraint", err: plateClash, want: true},
		{name: "foreign key code", err: &pgconn.PgError{Code: pgForeignKeyViolation}, want: false},
		{name: "gorm duplicated key without name", err: gorm.ErrDuplicatedKey, want: true},
		{name: "gorm duplicated key with name", err: gorm.ErrDuplicatedKey, constraint: constraintUsersEmail, want: false},
		{
			name:       "driver message",
			err:        errors.New(`ERROR: duplicate key value violates unique constraint "uq_favorite_cars_buyer_car" (SQLSTATE 23505)`),
			constraint: constraintFavoriteBuyerCar,
			want:       true,
		},
		{name: "unrelated error", err: errors.New("connection refused"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err, tt.constraint))
		})
	}
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgForeignKeyViolation}))
	assert.True(t, isForeignKeyConstraintViolation(errors.WithStack(gorm.ErrForeignKeyViolated)))
	assert.False(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgUniqueViolation}))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgNotNullViolation}))
	assert.True(t, isNotNullConstraintViolation(errors.New(`null value in column "plate" violates not-null constraint`)))
	assert.False(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
}

func TestIsCheckConstraintViolation(t *testing.T) {
	assert.True(t, isCheckConstraintViolation(&pgconn.PgError{Code: pgCheckViolation}))
	assert.True(t, isCheckConstraintViolation(gorm.ErrCheckConstraintViolated))
	assert.False(t, isCheckConstraintViolation(errors.New("timeout")))
}
