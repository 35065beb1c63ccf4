package services

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricLedgerOperation    = "ledger.operation"
	MetricLedgerTransactions = "ledger.transactions"
	MetricExport             = "export"
	MetricExportDuration     = "export.duration"
	MetricExportCircuitOpen  = "export.circuit_open"
	MetricSampleSeeded       = "sample.seeded"
)

type PrometheusMetrics struct {
	ledgerOperations   *prometheus.CounterVec
	ledgerTransactions prometheus.Gauge
	exportsTotal       *prometheus.CounterVec
	exportDuration     *prometheus.HistogramVec
	exportCircuitOpen  prometheus.Gauge
	sampleSeededTotal  prometheus.Counter
}

// NewPrometheusMetrics registers the ledger metrics with reg
func NewPrometheusMetrics(reg prometheus.Registerer) MetricsRecorderInterface {
	factory := promauto.With(reg)

	return &PrometheusMetrics{
		ledgerOperations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_operations_total",
				Help: "Total number of ledger operations by operation and outcome",
			},
			[]string{"operation", "status"},
		),
		ledgerTransactions: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_transactions",
				Help: "Current number of transactions in the ledger",
			},
		),
		exportsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ledger_exports_total",
				Help: "Total number of ledger exports by target and outcome",
			},
			[]string{"target", "status"},
		),
		exportDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "ledger_export_duration_milliseconds",
				Help:    "Ledger export duration in milliseconds",
				Buckets: prometheus.ExponentialBuckets(1, 2, 12),
			},
			[]string{"target"},
		),
		exportCircuitOpen: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "ledger_export_circuit_open",
				Help: "1 while database exports are refused after repeated storage failures",
			},
		),
		sampleSeededTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "ledger_sample_transactions_seeded_total",
				Help: "Total number of generated sample transactions added to the ledger",
			},
		),
	}
}

func (m *PrometheusMetrics) IncrementCounter(name string, tags map[string]string) {
	status := tags["status"]

	switch name {
	case MetricLedgerOperation:
		if operation := tags["operation"]; operation != "" {
			m.ledgerOperations.WithLabelValues(operation, status).Inc()
		}
	case MetricExport:
		if target := tags["target"]; target != "" {
			m.exportsTotal.WithLabelValues(target, status).Inc()
		}
	case MetricSampleSeeded:
		m.sampleSeededTotal.Inc()
	}
}

func (m *PrometheusMetrics) RecordProcessingTime(name string, duration time.Duration) {
	switch name {
	case MetricExportDuration + ".file":
		m.exportDuration.WithLabelValues("file").Observe(float64(duration.Milliseconds()))
	case MetricExportDuration + ".csv":
		m.exportDuration.WithLabelValues("csv").Observe(float64(duration.Milliseconds()))
	case MetricExportDuration + ".database":
		m.exportDuration.WithLabelValues("database").Observe(float64(duration.Milliseconds()))
	}
}

func (m *PrometheusMetrics) RecordGauge(name string, value float64, tags map[string]string) {
	switch name {
	case MetricLedgerTransactions:
		m.ledgerTransactions.Set(value)
	case MetricExportCircuitOpen:
		m.exportCircuitOpen.Set(value)
	}
}
