// Package metrics defines the OpenTelemetry instruments recorded by the
// record pipeline along with shared histogram bucket defaults.
package metrics

import (
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// DefaultBuckets provides a common set of histogram buckets in seconds that can
// be reused across the application for latency metrics.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals

// Pipeline bundles the instruments the line pipeline records while
// processing. Instrument values are a side channel only; they never affect
// the pipeline's returned results.
type Pipeline struct {
	// LinesTotal counts processed lines, partitioned by a "result" attribute
	// of "ok" or "error".
	LinesTotal metric.Int64Counter
	// LineDuration observes the wall-clock duration of a single line's
	// parse-validate-enrich-format run.
	LineDuration metric.Float64Histogram
}

// NewPipeline creates the pipeline instruments on the provided meter.
func NewPipeline(meter metric.Meter) (*Pipeline, error) {
	linesTotal, err := meter.Int64Counter("pipeline_lines_total",
		metric.WithDescription("Number of lines processed by the pipeline, partitioned by result."))
	if err != nil {
		return nil, fmt.Errorf("could not create lines counter: %w", err)
	}

	lineDuration, err := meter.Float64Histogram("pipeline_line_duration_seconds",
		metric.WithDescription("Duration of processing a single line through all stages."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(DefaultBuckets...))
	if err != nil {
		return nil, fmt.Errorf("could not create line duration histogram: %w", err)
	}

	return &Pipeline{
		LinesTotal:   linesTotal,
		LineDuration: lineDuration,
	}, nil
}
