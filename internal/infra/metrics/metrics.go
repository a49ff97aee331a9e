// Package metrics collects and exposes Prometheus metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"carmarket/config"
	"carmarket/internal/domain/entity"
	"carmarket/internal/domain/service"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "carmarket"

// Collector is the Prometheus implementation of service.MarketMetrics.
type Collector struct {
	purchaseTransitions *prometheus.CounterVec
	offerConflicts      prometheus.Counter
	offersCreated       prometheus.Counter
	priceAlerts         prometheus.Counter
	priceAlertTargets   prometheus.Counter
	httpRequests        *prometheus.CounterVec
	httpLatency         *prometheus.HistogramVec
}

var _ service.MarketMetrics = (*Collector)(nil)

// NewCollector creates a Collector and registers its metrics with reg.
func NewCollector(reg prometheus.Registerer, namespace string) *Collector {
	if namespace == "" {
		namespace = defaultNamespace
	}

	c := &Collector{
		purchaseTransitions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "purchase_transitions_total",
			Help:      "Committed purchase transitions by target status.",
		}, []string{"status"}),
		offerConflicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offer_version_conflicts_total",
			Help:      "Offer writes rejected by the optimistic lock.",
		}),
		offersCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "offers_created_total",
			Help:      "Car offers listed.",
		}),
		priceAlerts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_alerts_published_total",
			Help:      "Price alert events published.",
		}),
		priceAlertTargets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "price_alert_recipients_total",
			Help:      "Buyers addressed by published price alerts.",
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP responses by method, route and status code.",
		}, []string{"method", "route", "status_code"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency in seconds.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	reg.MustRegister(
		c.purchaseTransitions,
		c.offerConflicts,
		c.offersCreated,
		c.priceAlerts,
		c.priceAlertTargets,
		c.httpRequests,
		c.httpLatency,
	)

	return c
}

// NewFromConfig registers a Collector with the default Prometheus registry.
func NewFromConfig(cfg *config.Config) *Collector {
	namespace := ""
	if cfg.Metrics != nil {
		namespace = cfg.Metrics.Namespace
	}

	return NewCollector(prometheus.DefaultRegisterer, namespace)
}

func (c *Collector) RecordPurchaseTransition(to entity.PurchaseStatus) {
	c.purchaseTransitions.WithLabelValues(to.String()).Inc()
}

func (c *Collector) RecordOfferVersionConflict() {
	c.offerConflicts.Inc()
}

func (c *Collector) RecordOfferCreated() {
	c.offersCreated.Inc()
}

// RecordPriceAlert counts one published alert and its recipients.
func (c *Collector) RecordPriceAlert(subscribers int) {
	c.priceAlerts.Inc()
	c.priceAlertTargets.Add(float64(subscribers))
}

func (c *Collector) RecordHTTPRequest(method, route string, status int, elapsed time.Duration) {
	c.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.httpLatency.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Handler serves the metrics gathered by g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
