// Package monitoring exposes Prometheus metrics for scenario computation and
// the HTTP API.
package monitoring

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rotisserie/eris"

	"github.com/sells-group/mandate-cli/internal/model"
)

// Outcome labels for scenario computations.
const (
	OutcomeOK                = "ok"
	OutcomeInvalidSelection  = "invalid_selection"
	OutcomeConfigUnavailable = "config_unavailable"
	OutcomeError             = "error"
)

// Collector bundles the service's Prometheus metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	Scenarios         *prometheus.CounterVec
	RejectedOverrides *prometheus.CounterVec
	StoredScenarios   prometheus.Gauge
}

// NewCollector registers metrics against reg, defaulting to the global
// registry when nil. Registering twice against the same registry reuses the
// existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	requests, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mandate_http_requests_total",
		Help: "HTTP requests handled, labeled by route, method and status code.",
	}, []string{"route", "method", "code"}), "mandate_http_requests_total")
	if err != nil {
		return nil, err
	}

	durations, err := register(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "mandate_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
	}, []string{"route", "method"}), "mandate_http_request_duration_seconds")
	if err != nil {
		return nil, err
	}

	scenarios, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mandate_scenarios_computed_total",
		Help: "Scenario computations, labeled by outcome and country.",
	}, []string{"outcome", "country"}), "mandate_scenarios_computed_total")
	if err != nil {
		return nil, err
	}

	rejected, err := register(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "mandate_override_rejections_total",
		Help: "Cost overrides rejected in favour of the configured default.",
	}, []string{"component"}), "mandate_override_rejections_total")
	if err != nil {
		return nil, err
	}

	stored, err := register(reg, prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "mandate_stored_scenarios",
		Help: "Scenarios currently held by the scenario store.",
	}), "mandate_stored_scenarios")
	if err != nil {
		return nil, err
	}

	return &Collector{
		gatherer:          gatherer,
		HTTPRequests:      requests,
		HTTPDurations:     durations,
		Scenarios:         scenarios,
		RejectedOverrides: rejected,
		StoredScenarios:   stored,
	}, nil
}

// Handler exposes a ready-to-use /metrics handler.
func (c *Collector) Handler() http.Handler {
	var gatherer prometheus.Gatherer
	if c != nil {
		gatherer = c.gatherer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// ObserveHTTP records one handled request.
func (c *Collector) ObserveHTTP(route, method string, code int, elapsed time.Duration) {
	if c == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	c.HTTPRequests.WithLabelValues(route, method, strconv.Itoa(code)).Inc()
	c.HTTPDurations.WithLabelValues(route, method).Observe(elapsed.Seconds())
}

// ObserveScenario records the outcome of a scenario build.
func (c *Collector) ObserveScenario(country model.Country, s *model.Scenario, err error) {
	if c == nil {
		return
	}
	c.Scenarios.WithLabelValues(Outcome(err), string(country)).Inc()
	if s == nil {
		return
	}
	for _, n := range s.Notices {
		if n.Code == "invalid_override" {
			c.RejectedOverrides.WithLabelValues(n.Component).Inc()
		}
	}
}

// SetStored updates the stored-scenario gauge.
func (c *Collector) SetStored(n int) {
	if c == nil {
		return
	}
	c.StoredScenarios.Set(float64(n))
}

// Outcome classifies a scenario build error.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, model.ErrInvalidSelection):
		return OutcomeInvalidSelection
	case errors.Is(err, model.ErrConfigurationUnavailable):
		return OutcomeConfigUnavailable
	default:
		return OutcomeError
	}
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T, name string) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
			var zero T
			return zero, eris.Errorf("monitoring: collector %s already registered with incompatible type", name)
		}
		var zero T
		return zero, eris.Wrapf(err, "monitoring: register %s", name)
	}
	return c, nil
}
