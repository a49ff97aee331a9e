package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"carmarket/config"
	deliverycontext "carmarket/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferedGormLogger(debug bool) (*bytes.Buffer, logger.Interface) {
	var buf bytes.Buffer
	cfg := &config.Config{}
	cfg.Env.Debug = debug

	return &buf, newGormSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)), cfg)
}

func TestGormSlogLogger_Trace(t *testing.T) {
	query := func() (string, int64) { return "UPDATE car_offers SET available = false", 1 }

	tests := []struct {
		name    string
		debug   bool
		err     error
		want    string
		wantOut bool
	}{
		{name: "record not found is silent", err: gorm.ErrRecordNotFound},
		{
			name:    "constraint violation is a warning",
			err:     &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: constraintActivePurchase},
			want:    `level=WARN msg="GORM constraint rejected write"`,
			wantOut: true,
		},
		{
			name:    "other failures are errors",
			err:     errors.New("connection reset by peer"),
			want:    `level=ERROR msg="GORM query failed"`,
			wantOut: true,
		},
		{name: "successful query is quiet outside debug"},
		{name: "successful query is logged in debug", debug: true, want: `msg="GORM query"`, wantOut: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, l := newBufferedGormLogger(tt.debug)
			l.Trace(context.Background(), time.Now(), query, tt.err)

			if !tt.wantOut {
				assert.Zero(t, buf.Len())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "car_offers")
		})
	}
}

func TestGormSlogLogger_UsesRequestLogger(t *testing.T) {
	buf, l := newBufferedGormLogger(false)
	base := l.(*gormSlogLogger).logger

	ctx := deliverycontext.WithLogger(context.Background(), base.With(slog.String("request_id", "req-9")))
	l.Trace(ctx, time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))

	assert.Contains(t, buf.String(), "request_id=req-9")
}

func TestGormSlogLogger_TruncatesLongSQL(t *testing.T) {
	buf, l := newBufferedGormLogger(true)
	long := "SELECT " + strings.Repeat("x", maxLoggedSQLLength*2)

	l.Trace(context.Background(), time.Now(), func() (string, int64) { return long, 0 }, nil)

	assert.Contains(t, buf.String(), "...(truncated)")
	assert.Less(t, buf.Len(), maxLoggedSQLLength+512)
}

func TestGormSlogLogger_LogMode(t *testing.T) {
	buf, l := newBufferedGormLogger(true)
	silent := l.LogMode(logger.Silent)

	silent.Trace(context.Background(), time.Now(), func() (string, int64) { return "SELECT 1", 0 }, errors.New("boom"))
	silent.Error(context.Background(), "pool %s", "exhausted")
	assert.Zero(t, buf.Len())

	l.Warn(context.Background(), "pool %s", "busy")
	assert.Contains(t, buf.String(), "pool busy")
}
