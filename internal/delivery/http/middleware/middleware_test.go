package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carmarket/config"
	deliverycontext "carmarket/internal/delivery/context"
	"carmarket/internal/delivery/http/response"
	"carmarket/internal/domain/entity"
	domainerrors "carmarket/internal/domain/errors"
	"carmarket/internal/domain/service"
	"carmarket/internal/errors"
	mockSvc "carmarket/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError

	return e
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.NotNil(t, body.Error)

	return body.Error.Code
}

func whoAmI(c echo.Context) error {
	principal, ok := deliverycontext.GetPrincipal(c)
	if !ok {
		return c.NoContent(http.StatusTeapot)
	}
	fromCtx, _ := deliverycontext.GetPrincipalFromContext(c.Request().Context())

	return c.JSON(http.StatusOK, map[string]any{
		"user_id":     principal.UserID,
		"role":        principal.Role,
		"ctx_user_id": fromCtx.UserID,
	})
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(tokens *mockSvc.MockTokenService)
		wantStatus int
		wantCode   string
	}{
		{
			name:       "missing header",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "UNAUTHORIZED",
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "rejected token",
			header: "Bearer expired",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
			wantCode:   "INVALID_TOKEN",
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(tokens *mockSvc.MockTokenService) {
				tokens.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: 42, Role: entity.RoleDealership}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokens)
			}
			m := NewAuthMiddleware(tokens, discardLogger())
			e := newEcho()
			e.GET("/me", whoAmI, m.Authenticate)

			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				assert.Equal(t, tt.wantCode, errorCode(t, rec))

				return
			}

			var body map[string]any
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.EqualValues(t, 42, body["user_id"])
			assert.EqualValues(t, 42, body["ctx_user_id"])
			assert.Equal(t, "DEALERSHIP", body["role"])
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		principal  *entity.Principal
		wantStatus int
	}{
		{name: "no principal", wantStatus: http.StatusUnauthorized},
		{name: "wrong role", principal: &entity.Principal{UserID: 1, Role: entity.RoleBuyer}, wantStatus: http.StatusForbidden},
		{name: "admin", principal: &entity.Principal{UserID: 1, Role: entity.RoleAdmin}, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewAuthMiddleware(mockSvc.NewMockTokenService(t), discardLogger())
			e := newEcho()
			setPrincipal := func(next echo.HandlerFunc) echo.HandlerFunc {
				return func(c echo.Context) error {
					if tt.principal != nil {
						deliverycontext.SetPrincipal(c, *tt.principal)
					}

					return next(c)
				}
			}
			e.GET("/admin", whoAmI, setPrincipal, m.RequireRole(entity.RoleAdmin))

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "app error keeps its status",
			err:        errors.Wrap(domainerrors.ErrOfferUnavailable, "create purchase"),
			wantStatus: http.StatusConflict,
			wantCode:   "OFFER_UNAVAILABLE",
		},
		{
			name:       "echo http error",
			err:        echo.ErrMethodNotAllowed,
			wantStatus: http.StatusMethodNotAllowed,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "database error stays opaque",
			err:        domainerrors.NewDatabaseExecuteError(errors.New("deadlock detected"), "update offer"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
		{
			name:       "unknown error",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			e.GET("/fail", func(echo.Context) error { return tt.err })

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCode, errorCode(t, rec))
			assert.NotContains(t, rec.Body.String(), "deadlock")
		})
	}
}

func TestRateLimiter_Limit(t *testing.T) {
	rl := newRateLimiter(&config.RateLimitConfig{Enabled: true, RequestsPerSecond: 0.5, Burst: 2}, time.Minute, discardLogger())
	e := newEcho()
	e.GET("/cars", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, rl.Limit)

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/cars", nil)
		req.RemoteAddr = ip + ":12345"
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		return rec
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, call("10.0.0.1").Code)

	limited := call("10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "2", limited.Header().Get("Retry-After"))
	assert.Equal(t, "RATE_LIMIT_EXCEEDED", errorCode(t, limited))

	// Another client has its own bucket.
	assert.Equal(t, http.StatusOK, call("10.0.0.2").Code)
	assert.Equal(t, 2, rl.LimiterCount())
}

func TestRateLimiter_Disabled(t *testing.T) {
	rl := newRateLimiter(&config.RateLimitConfig{Enabled: false}, time.Minute, discardLogger())
	e := newEcho()
	e.GET("/cars", func(c echo.Context) error { return c.NoContent(http.StatusOK) }, rl.Limit)

	for range 10 {
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cars", nil))
		require.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Zero(t, rl.LimiterCount())
}

func TestRateLimiter_KeysAuthenticatedCallersByUser(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Equal(t, "ip:192.0.2.1", clientKey(c))

	deliverycontext.SetPrincipal(c, entity.Principal{UserID: 9, Role: entity.RoleBuyer})
	assert.Equal(t, "user:9", clientKey(c))
}

func TestRateLimiter_CleanupDropsIdleClients(t *testing.T) {
	rl := newRateLimiter(&config.RateLimitConfig{Enabled: true, RequestsPerSecond: 1, Burst: 1}, time.Minute, discardLogger())
	rl.limiterFor("ip:a")
	rl.limiterFor("ip:b")
	require.Equal(t, 2, rl.LimiterCount())

	rl.cleanup(time.Now().Add(time.Minute))
	assert.Equal(t, 2, rl.LimiterCount())

	rl.cleanup(time.Now().Add(3 * time.Minute))
	assert.Zero(t, rl.LimiterCount())
}

func TestMetricsMiddleware_RecordsFinalStatus(t *testing.T) {
	metrics := mockSvc.NewMockMarketMetrics(t)
	m := NewMetricsMiddleware(metrics)
	e := newEcho()
	e.Use(m.Handle)
	e.GET("/cars/:id", func(c echo.Context) error {
		return response.HandleAppError(c, domainerrors.ErrCarNotFound)
	})
	e.GET("/boom", func(echo.Context) error { return errors.New("boom") })

	metrics.EXPECT().RecordHTTPRequest(http.MethodGet, "/cars/:id", http.StatusNotFound, mock.AnythingOfType("time.Duration")).Once()
	metrics.EXPECT().RecordHTTPRequest(http.MethodGet, "/boom", http.StatusInternalServerError, mock.AnythingOfType("time.Duration")).Once()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/cars/1", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", errorCode(t, rec))
}
