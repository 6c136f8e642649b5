package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "branchfree"

// Registry holds the metrics of one benchmark run. It owns a private
// prometheus registry so nothing leaks into the process default.
type Registry struct {
	reg *prometheus.Registry

	// RunDurationSeconds is the raw wall time of each timed loop
	RunDurationSeconds *prometheus.GaugeVec

	// NetDurationSeconds is the raw wall time minus the baseline loop
	NetDurationSeconds *prometheus.GaugeVec

	// Iterations is the number of generator steps per timed loop
	Iterations prometheus.Gauge

	// CPUInfo is always 1; the labels describe the measuring machine
	CPUInfo *prometheus.GaugeVec

	// LogEntriesTotal counts log entries by level
	LogEntriesTotal *prometheus.CounterVec
}

// NewRegistry creates and registers all run metrics.
func NewRegistry() *Registry {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Registry{
		reg: reg,

		RunDurationSeconds: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "run_duration_seconds",
				Help:      "Wall-clock duration of one full generator cycle",
			},
			[]string{"operation", "variant"},
		),
		NetDurationSeconds: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "net_duration_seconds",
				Help:      "Run duration minus the empty-loop baseline, clamped at zero",
			},
			[]string{"operation", "variant"},
		),
		Iterations: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "iterations",
				Help:      "Generator steps per timed loop",
			},
		),
		CPUInfo: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "cpu_info",
				Help:      "CPU the benchmark ran on",
			},
			[]string{"vendor", "brand"},
		),
		LogEntriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "log_entries_total",
				Help:      "Total number of log entries by level",
			},
			[]string{"level"},
		),
	}
}

// ObserveBaseline records the empty loop.
func (r *Registry) ObserveBaseline(elapsed time.Duration) {
	r.RunDurationSeconds.WithLabelValues("baseline", "identity").Set(elapsed.Seconds())
}

// ObserveRun records one candidate loop.
func (r *Registry) ObserveRun(operation, variant string, elapsed, net time.Duration) {
	r.RunDurationSeconds.WithLabelValues(operation, variant).Set(elapsed.Seconds())
	r.NetDurationSeconds.WithLabelValues(operation, variant).Set(net.Seconds())
}

// SetCPU publishes the machine description.
func (r *Registry) SetCPU(vendor, brand string) {
	r.CPUInfo.WithLabelValues(vendor, brand).Set(1)
}

// Gatherer exposes the underlying registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// WriteTextfile writes all metrics in the text exposition format, atomically
// replacing path. The format is the one node_exporter's textfile collector reads.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}
