// Package metrics exposes request metrics and the Void's reply counter in
// Prometheus format.
package metrics

import (
	"fmt"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "voidinbox"

// Response outcomes.
const (
	OutcomeReplied = "replied"
	OutcomeSilent  = "silent"
)

// Metrics owns a private Prometheus registry so several servers (tests) can
// coexist in one process.
type Metrics struct {
	registry  *prometheus.Registry
	responses *prometheus.CounterVec
}

// New creates the registry and registers the runtime collectors and the
// response counter.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	responses := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "responses_total",
		Help:      "Messages answered by the responder, by outcome.",
	}, []string{"outcome"})
	reg.MustRegister(responses)

	// Pre-create both series so they are exported at zero.
	responses.WithLabelValues(OutcomeReplied)
	responses.WithLabelValues(OutcomeSilent)

	return &Metrics{registry: reg, responses: responses}
}

// ObserveResponse counts one responder decision.
func (m *Metrics) ObserveResponse(replied bool) {
	outcome := OutcomeSilent
	if replied {
		outcome = OutcomeReplied
	}
	m.responses.WithLabelValues(outcome).Inc()
}

// Middleware records request count, latency and sizes for every route except
// the metrics endpoint itself.
func (m *Metrics) Middleware(metricsPath string) (echo.MiddlewareFunc, error) {
	mw, err := echoprometheus.MiddlewareConfig{
		Namespace:  namespace,
		Registerer: m.registry,
		Skipper: func(c echo.Context) bool {
			return c.Path() == metricsPath
		},
	}.ToMiddleware()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics middleware: %w", err)
	}
	return mw, nil
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() echo.HandlerFunc {
	return echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: m.registry,
	})
}
