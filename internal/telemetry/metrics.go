package telemetry

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	rowsNormalized = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alignbench_rows_normalized_total",
			Help: "Total number of benchmark rows passed through a normalizer",
		},
		[]string{"table"},
	)

	labelMisses = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "alignbench_label_misses_total",
			Help: "Total number of registry lookups for identifiers outside the vocabulary",
		},
		[]string{"kind", "policy"},
	)
)

func init() {
	prometheus.MustRegister(rowsNormalized, labelMisses)
}

// TrackRowsNormalized counts rows produced by the normalizer for table.
func TrackRowsNormalized(table string, n int) {
	rowsNormalized.WithLabelValues(table).Add(float64(n))
}

// TrackLabelMiss counts a lookup miss. policy is "fatal" or "fallback".
func TrackLabelMiss(kind, policy string) {
	labelMisses.WithLabelValues(kind, policy).Inc()
}

// RowsNormalized exposes the counter for tests and reports.
func RowsNormalized() *prometheus.CounterVec { return rowsNormalized }

// LabelMisses exposes the counter for tests and reports.
func LabelMisses() *prometheus.CounterVec { return labelMisses }

// WriteMetrics dumps the default registry in the node_exporter textfile
// format. The CLI is short-lived, so this replaces a scrape endpoint.
func WriteMetrics(path string) error {
	if err := prometheus.WriteToTextfile(path, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("failed to write metrics to %s: %w", path, err)
	}
	return nil
}
