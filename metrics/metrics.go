package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "addressbook"

// Command results used as the "result" label.
const (
	ResultOK       = "ok"
	ResultRejected = "rejected"
	ResultNotFound = "not_found"
	ResultFailed   = "failed"
)

// Metrics holds the application collectors on a private registry.
type Metrics struct {
	reg *prometheus.Registry

	commands      *prometheus.CounterVec
	flushDuration prometheus.Histogram
	flushFailures prometheus.Counter
	contacts      prometheus.Gauge
}

func registerCollector(reg prometheus.Registerer, c prometheus.Collector) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			return
		}
		panic(err)
	}
}

// New creates the collectors. A nil registry gets a fresh one.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}

	m := &Metrics{
		reg: reg,
		commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Dispatched console commands by keyword and result.",
		}, []string{"command", "result"}),
		flushDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "flush_duration_seconds",
			Help:      "Time spent writing the address book to disk, retries included.",
			Buckets:   []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}),
		flushFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flush_failures_total",
			Help:      "Flushes that failed after all retries.",
		}),
		contacts: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "contacts",
			Help:      "Number of records in the address book.",
		}),
	}

	registerCollector(reg, m.commands)
	registerCollector(reg, m.flushDuration)
	registerCollector(reg, m.flushFailures)
	registerCollector(reg, m.contacts)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.reg }

// Command counts one dispatched command. Safe on a nil receiver.
func (m *Metrics) Command(command, result string) {
	if m == nil {
		return
	}
	m.commands.WithLabelValues(command, result).Inc()
}

// Flush records one flush of duration d; a non-nil err counts as a failure.
func (m *Metrics) Flush(d time.Duration, err error) {
	if m == nil {
		return
	}
	m.flushDuration.Observe(d.Seconds())
	if err != nil {
		m.flushFailures.Inc()
	}
}

func (m *Metrics) SetContacts(n int) {
	if m == nil {
		return
	}
	m.contacts.Set(float64(n))
}

// WriteTextfile writes the registry in the text exposition format, for the
// node_exporter textfile collector. An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
