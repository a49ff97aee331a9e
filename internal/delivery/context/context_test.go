package context

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"carmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestPrincipalRoundTrip(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetPrincipal(c)
	assert.False(t, ok)

	want := entity.Principal{UserID: 4, Role: entity.RoleBuyer}
	SetPrincipal(c, want)

	got, ok := GetPrincipal(c)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	fromCtx, ok := GetPrincipalFromContext(c.Request().Context())
	assert.True(t, ok)
	assert.Equal(t, want, fromCtx)
}

func TestGetLoggerOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))
	scoped := slog.New(slog.NewJSONHandler(io.Discard, nil))

	assert.Same(t, fallback, GetLoggerOrDefault(context.Background(), fallback))
	assert.Same(t, scoped, GetLoggerOrDefault(WithLogger(context.Background(), scoped), fallback))
	assert.Equal(t, "req-9", GetRequestIDFromContext(WithRequestID(context.Background(), "req-9")))
}
