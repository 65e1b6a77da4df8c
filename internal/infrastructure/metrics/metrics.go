package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	vo "github.com/GraziArcH/domain-sales/internal/domain/plan/valueobjects"
)

// Metrics holds the Prometheus collectors of the service. It implements the
// seat engine's metrics port.
type Metrics struct {
	registry *prometheus.Registry

	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Seat engine metrics
	SeatAdmissionsTotal *prometheus.CounterVec
	SeatRejectionsTotal *prometheus.CounterVec
	SeatRemovalsTotal   *prometheus.CounterVec
	ScopeChangesTotal   *prometheus.CounterVec
	SyncSeatsTotal      *prometheus.CounterVec
	SyncRunsTotal       *prometheus.CounterVec

	// Subscription lifecycle metrics
	CancellationsTotal        *prometheus.CounterVec
	SubscriptionsExpiredTotal prometheus.Counter
}

// NewMetrics creates and registers all collectors on a dedicated registry,
// along with the Go runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	m := &Metrics{
		registry: registry,
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_sales_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "domain_sales_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		SeatAdmissionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_sales_seat_admissions_total",
				Help: "Seats admitted, by scope",
			},
			[]string{"scope"},
		),
		SeatRejectionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_sales_seat_rejections_total",
				Help: "Seat admissions or promotions refused, by scope and reason",
			},
			[]string{"scope", "reason"},
		),
		SeatRemovalsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_sales_seat_removals_total",
				Help: "Seats removed, by scope",
			},
			[]string{"scope"},
		),
		ScopeChangesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_sales_seat_scope_changes_total",
				Help: "Seat scope changes",
			},
			[]string{"from", "to"},
		),
		SyncSeatsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_sales_sync_seats_total",
				Help: "Seats processed by bulk synchronization, by outcome",
			},
			[]string{"outcome"},
		),
		SyncRunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_sales_sync_runs_total",
				Help: "Bulk synchronization runs, by result",
			},
			[]string{"result"},
		),
		CancellationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domain_sales_cancellations_total",
				Help: "Cancellation workflow transitions",
			},
			[]string{"status"},
		),
		SubscriptionsExpiredTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "domain_sales_subscriptions_expired_total",
				Help: "Subscriptions moved to expired by the expiry job",
			},
		),
	}

	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.SeatAdmissionsTotal,
		m.SeatRejectionsTotal,
		m.SeatRemovalsTotal,
		m.ScopeChangesTotal,
		m.SyncSeatsTotal,
		m.SyncRunsTotal,
		m.CancellationsTotal,
		m.SubscriptionsExpiredTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(method, path string, status int, seconds float64) {
	m.HTTPRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

func (m *Metrics) SeatAdmitted(scope vo.SeatScope) {
	m.SeatAdmissionsTotal.WithLabelValues(scope.String()).Inc()
}

func (m *Metrics) SeatRejected(scope vo.SeatScope, reason string) {
	m.SeatRejectionsTotal.WithLabelValues(scope.String(), reason).Inc()
}

func (m *Metrics) SeatRemoved(scope vo.SeatScope) {
	m.SeatRemovalsTotal.WithLabelValues(scope.String()).Inc()
}

func (m *Metrics) ScopeChanged(from, to vo.SeatScope) {
	m.ScopeChangesTotal.WithLabelValues(from.String(), to.String()).Inc()
}

func (m *Metrics) SyncCompleted(added, skipped, failed int) {
	m.SyncRunsTotal.WithLabelValues("completed").Inc()
	m.SyncSeatsTotal.WithLabelValues("added").Add(float64(added))
	m.SyncSeatsTotal.WithLabelValues("skipped").Add(float64(skipped))
	m.SyncSeatsTotal.WithLabelValues("failed").Add(float64(failed))
}

func (m *Metrics) SyncRejected() {
	m.SyncRunsTotal.WithLabelValues("rejected").Inc()
}

func (m *Metrics) CancellationRequested() {
	m.CancellationsTotal.WithLabelValues("requested").Inc()
}

func (m *Metrics) CancellationConfirmed() {
	m.CancellationsTotal.WithLabelValues("confirmed").Inc()
}

func (m *Metrics) SubscriptionsExpired(n int) {
	m.SubscriptionsExpiredTotal.Add(float64(n))
}
