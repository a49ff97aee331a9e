package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"carmarket/internal/domain/entity"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, "test")

	c.RecordPurchaseTransition(entity.PurchaseStatusConfirmed)
	c.RecordPurchaseTransition(entity.PurchaseStatusConfirmed)
	c.RecordPurchaseTransition(entity.PurchaseStatusCancelled)
	c.RecordOfferVersionConflict()
	c.RecordPriceAlert(3)

	assert.InDelta(t, 2.0, testutil.ToFloat64(c.purchaseTransitions.WithLabelValues("CONFIRMED")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.purchaseTransitions.WithLabelValues("CANCELLED")), 1e-9)
	assert.InDelta(t, 1.0, testutil.ToFloat64(c.offerConflicts), 1e-9)
	assert.InDelta(t, 3.0, testutil.ToFloat64(c.priceAlertTargets), 1e-9)
}

func TestHandler_ServesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewCollector(reg, "")
	c.RecordOfferCreated()
	c.RecordHTTPRequest(http.MethodGet, "/cars", http.StatusOK, 15*time.Millisecond)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	Handler(reg).ServeHTTP(w, req)

	resp := w.Result()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "carmarket_offers_created_total 1")
	assert.Contains(t, string(body), `carmarket_http_requests_total{method="GET",route="/cars",status_code="200"} 1`)
}
