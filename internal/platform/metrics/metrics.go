package metrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "backoffice_"

	resultSuccess = "success"
	resultError   = "error"
	resultEmpty   = "empty"
)

var (
	registerOnce sync.Once

	statementBuildTotal   *prometheus.CounterVec
	statementBuildLatency *prometheus.HistogramVec
	statementExportTotal  *prometheus.CounterVec
	recordsRejectedTotal  *prometheus.CounterVec
)

// Init registers the back-office metrics with the given registerer, or the
// default registry when nil. Safe to call more than once.
func Init(reg prometheus.Registerer) {
	registerOnce.Do(func() {
		if reg == nil {
			reg = prometheus.DefaultRegisterer
		}

		statementBuildTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_build_total",
				Help: "Total statement builds by report and result",
			},
			[]string{"report", "result"},
		)
		statementBuildLatency = prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    metricPrefix + "statement_build_latency_seconds",
				Help:    "Statement build latency in seconds, including data fetches",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"report"},
		)
		statementExportTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "statement_export_total",
				Help: "Total statement exports by format and result",
			},
			[]string{"format", "result"},
		)
		recordsRejectedTotal = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "records_rejected_total",
				Help: "Source records left out of a computation, by source and reason",
			},
			[]string{"source", "reason"},
		)

		reg.MustRegister(
			statementBuildTotal,
			statementBuildLatency,
			statementExportTotal,
			recordsRejectedTotal,
		)
	})
}

// ObserveStatementBuild records a report build and its latency.
func ObserveStatementBuild(report, result string, duration time.Duration) {
	if report == "" {
		report = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if statementBuildTotal != nil {
		statementBuildTotal.WithLabelValues(report, result).Inc()
	}
	if statementBuildLatency != nil {
		statementBuildLatency.WithLabelValues(report).Observe(duration.Seconds())
	}
}

// IncStatementExport counts one export attempt.
func IncStatementExport(format, result string) {
	if format == "" {
		format = "unknown"
	}
	if result == "" {
		result = resultSuccess
	}
	if statementExportTotal != nil {
		statementExportTotal.WithLabelValues(format, result).Inc()
	}
}

// AddRejected counts skipped source records.
func AddRejected(source, reason string, count int) {
	if count <= 0 {
		return
	}
	if recordsRejectedTotal != nil {
		recordsRejectedTotal.WithLabelValues(source, reason).Add(float64(count))
	}
}

// Exported constants for callers.
const (
	ResultSuccess = resultSuccess
	ResultError   = resultError
	ResultEmpty   = resultEmpty
)
