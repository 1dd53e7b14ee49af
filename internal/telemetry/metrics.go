package telemetry

import (
	"fmt"

	"microbench/internal/benchmark"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Metrics collects trial measurements in a private registry so they can
// be exported after a run.
type Metrics struct {
	Registry *prometheus.Registry

	TrialDuration   *prometheus.GaugeVec
	NormalizedRatio *prometheus.GaugeVec
	TrialsTotal     *prometheus.CounterVec
}

// NewMetrics creates and registers the benchmark metrics.
func NewMetrics() *Metrics {
	m := &Metrics{Registry: prometheus.NewRegistry()}

	m.TrialDuration = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "microbench_trial_duration_seconds",
			Help: "Wall-clock duration of the last run of a trial",
		},
		[]string{"suite", "trial"},
	)

	m.NormalizedRatio = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "microbench_trial_normalized_ratio",
			Help: "Trial duration divided by the baseline duration",
		},
		[]string{"suite", "trial"},
	)

	m.TrialsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "microbench_trials_total",
			Help: "Total number of trials executed",
		},
		[]string{"suite"},
	)

	m.Registry.MustRegister(m.TrialDuration, m.NormalizedRatio, m.TrialsTotal)
	return m
}

// ObserveTrial implements benchmark.Observer.
func (m *Metrics) ObserveTrial(suite string, r benchmark.Result) {
	m.TrialDuration.WithLabelValues(suite, r.Name).Set(r.Elapsed.Seconds())
	m.TrialsTotal.WithLabelValues(suite).Inc()
}

// ObserveReport records the normalized ratios of a finished report.
func (m *Metrics) ObserveReport(r *benchmark.Report) error {
	norm, err := r.Normalize()
	if err != nil {
		return err
	}
	for _, n := range norm {
		m.NormalizedRatio.WithLabelValues(r.Suite, n.Name).Set(n.Ratio)
	}
	return nil
}

// WriteTextfile writes the metrics in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}

// Push sends the metrics to a Prometheus Pushgateway.
func (m *Metrics) Push(url, job string) error {
	if err := push.New(url, job).Gatherer(m.Registry).Push(); err != nil {
		return fmt.Errorf("failed to push metrics to %s: %w", url, err)
	}
	return nil
}
