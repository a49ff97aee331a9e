package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carmarket/config"
	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidRequestID(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want bool
	}{
		{name: "uuid", id: "7b0c3f64-0a43-4d5c-9a43-0d7ab3c2b2a1", want: true},
		{name: "trace style", id: "edge:lb-1.req_42", want: true},
		{name: "empty", id: "", want: false},
		{name: "too long", id: strings.Repeat("a", maxRequestIDLength+1), want: false},
		{name: "whitespace", id: "abc def", want: false},
		{name: "header injection", id: "abc\r\nSet-Cookie: x", want: false},
		{name: "json breaking", id: `abc"}`, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validRequestID(tt.id))
		})
	}
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	e := echo.New()
	e.Use(NewRequestIDMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).Process)

	var seenID string
	var scoped *slog.Logger
	e.GET("/offers/:id", func(c echo.Context) error {
		ctx := c.Request().Context()
		seenID = deliverycontext.GetRequestIDFromContext(ctx)
		scoped = deliverycontext.GetLogger(ctx)

		return c.NoContent(http.StatusNoContent)
	})

	t.Run("client id is reused", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/offers/3", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "client-req-1")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, "client-req-1", seenID)
		assert.Equal(t, "client-req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
		assert.NotNil(t, scoped)
	})

	t.Run("malformed client id is replaced", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/offers/3", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "bad id with spaces")
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.NotEqual(t, "bad id with spaces", seenID)
		assert.Len(t, seenID, 36)
		assert.Equal(t, seenID, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{}
	cfg.Env.Debug = true

	e := echo.New()
	e.Use(NewRequestIDMiddleware(logger).Process)
	e.Use(NewLoggerMiddleware(logger, cfg).Handle)

	authenticated := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			deliverycontext.SetPrincipal(c, entity.Principal{UserID: 7, Role: entity.RoleBuyer})

			return next(c)
		}
	}
	e.GET("/purchases/:id", func(c echo.Context) error {
		return c.JSON(http.StatusNotFound, map[string]string{"code": "PURCHASE_NOT_FOUND"})
	}, authenticated)

	req := httptest.NewRequest(http.MethodGet, "/purchases/99?expand=offer", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-77")
	e.ServeHTTP(httptest.NewRecorder(), req)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "HTTP Request", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "req-77", entry["request_id"])
	assert.Equal(t, "/purchases/:id", entry["route"])
	assert.Equal(t, "/purchases/99", entry["uri"])
	assert.Equal(t, "expand=offer", entry["query"])
	assert.EqualValues(t, http.StatusNotFound, entry["status"])
	assert.EqualValues(t, 7, entry["user_id"])
	assert.Equal(t, string(entity.RoleBuyer), entry["role"])
}

func TestLoggerMiddleware_DisabledWithoutDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	e := echo.New()
	e.Use(NewLoggerMiddleware(logger, &config.Config{}).Handle)
	e.GET("/cars", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/cars", nil))

	assert.Zero(t, buf.Len())
}

func TestLevelForStatus(t *testing.T) {
	assert.Equal(t, slog.LevelInfo, levelForStatus(http.StatusCreated))
	assert.Equal(t, slog.LevelWarn, levelForStatus(http.StatusConflict))
	assert.Equal(t, slog.LevelError, levelForStatus(http.StatusServiceUnavailable))
}
