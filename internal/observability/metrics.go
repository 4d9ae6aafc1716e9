// Package observability exposes Prometheus metrics for the record store.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	operationCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "store",
		Name:      "operations_total",
		Help:      "Record store operations grouped by table, operation and result.",
	}, []string{"table", "op", "result"})

	operationDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "fittrack",
		Subsystem: "store",
		Name:      "operation_duration_seconds",
		Help:      "Latency of record store operations including medium round trips.",
		Buckets:   prometheus.ExponentialBuckets(0.0005, 2, 14),
	}, []string{"table", "op"})

	tableRecordsGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fittrack",
		Subsystem: "store",
		Name:      "table_records",
		Help:      "Number of records in a table as of the last load or write.",
	}, []string{"table"})

	lastMutationGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "fittrack",
		Subsystem: "store",
		Name:      "last_mutation_timestamp_seconds",
		Help:      "Unix timestamp of the most recent committed write per table.",
	}, []string{"table"})

	corruptReadCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "store",
		Name:      "corrupt_reads_total",
		Help:      "Loads that found a blob which could not be decoded.",
	}, []string{"table"})

	recoveredListCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "fittrack",
		Subsystem: "store",
		Name:      "recovered_list_failures_total",
		Help:      "List calls that returned an empty table instead of a medium or decode failure.",
	}, []string{"table", "reason"})
)

func init() {
	prometheus.MustRegister(operationCounter, operationDuration, tableRecordsGauge, lastMutationGauge, corruptReadCounter, recoveredListCounter)
}

// RecordOperation counts one finished operation and observes its latency.
func RecordOperation(table, op string, started time.Time, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	operationCounter.WithLabelValues(table, op, result).Inc()
	operationDuration.WithLabelValues(table, op).Observe(time.Since(started).Seconds())
}

// RecordTableSize updates the record count gauge.
func RecordTableSize(table string, n int) {
	tableRecordsGauge.WithLabelValues(table).Set(float64(n))
}

// RecordTableMutated updates the write watermark gauge.
func RecordTableMutated(table string, ts time.Time) {
	if ts.IsZero() {
		return
	}
	lastMutationGauge.WithLabelValues(table).Set(float64(ts.Unix()))
}

// RecordCorruptRead counts an undecodable blob.
func RecordCorruptRead(table string) {
	corruptReadCounter.WithLabelValues(table).Inc()
}

// RecordRecoveredList counts a List call that fell back to an empty table.
func RecordRecoveredList(table, reason string) {
	recoveredListCounter.WithLabelValues(table, reason).Inc()
}
