// Package metrics exposes ledger counters to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Prometheus metric names.
const (
	MetricOperationsTotal = "ledger_operations_total"
	MetricFundsTotal      = "ledger_funds_total"
)

// Ledger implements port.Metrics on its own registry so tests and multiple
// instances never collide on the default registerer.
//
// Thread Safety: Safe for concurrent use by multiple goroutines.
type Ledger struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	funds      *prometheus.CounterVec
}

// NewLedger creates the collectors and registers them together with the
// Go runtime and process collectors.
func NewLedger() *Ledger {
	m := &Ledger{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricOperationsTotal,
			Help: "Ledger operations by name and outcome (ok or error code).",
		}, []string{"op", "outcome"}),
		funds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: MetricFundsTotal,
			Help: "Amounts moved by the ledger in the smallest monetary unit, by flow.",
		}, []string{"flow"}),
	}
	m.registry.MustRegister(
		m.operations,
		m.funds,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return m
}

// RecordOperation counts one finished operation.
func (m *Ledger) RecordOperation(op, outcome string) {
	m.operations.WithLabelValues(op, outcome).Inc()
}

// RecordFunds adds amount to the counter of flow. Non-positive amounts are
// ignored since counters cannot decrease.
func (m *Ledger) RecordFunds(flow string, amount int64) {
	if amount <= 0 {
		return
	}
	m.funds.WithLabelValues(flow).Add(float64(amount))
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Ledger) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
