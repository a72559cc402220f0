package pipeline

import (
	"context"
	"fmt"
	"time"

	"userpipe/internal/config"
	"userpipe/pkg/domain"
	"userpipe/pkg/logger"
	"userpipe/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelmetric "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// instrumentationName identifies this package on the global tracer and meter
// providers.
const instrumentationName = "userpipe/internal/pipeline"

// Options holds the validation and enrichment rule parameters for one batch.
// They are supplied by the caller and immutable for the duration of the batch.
type Options struct {
	// MinAge is the minimum age a record must have to pass validation.
	MinAge uint8
	// StrictEmail selects the anchored regex email check instead of the
	// loose structural one.
	StrictEmail bool
	// AgeGrouping selects the age bucketing strategy used by enrichment.
	AgeGrouping domain.AgeGroupingMode
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) (Options, error) {
	mode, err := domain.ParseAgeGroupingMode(cfg.Pipeline.AgeGrouping)
	if err != nil {
		return Options{}, fmt.Errorf("could not parse age grouping mode: %w", err)
	}

	return Options{
		MinAge:      cfg.Pipeline.MinAge,
		StrictEmail: cfg.Pipeline.StrictEmail,
		AgeGrouping: mode,
	}, nil
}

// pipeline is the concrete implementation of the Pipeline interface.
// It holds the batch options and the telemetry side channel; per-line state
// never outlives a single call.
type pipeline struct {
	options Options
	metrics *metrics.Pipeline
	tracer  trace.Tracer
}

// batchCounters are the batch-scoped counters accumulated during one
// ProcessLines call. They are logged in the batch summary and discarded when
// the call returns; they are never shared across calls.
type batchCounters struct {
	linesTotal uint64
	linesOK    uint64
	linesErr   uint64
}

// New creates a new Pipeline configured with the given options. Instruments
// are created on the global meter provider; without a configured provider
// they are no-ops.
func New(options Options) (Pipeline, error) {
	m, err := metrics.NewPipeline(otel.Meter(instrumentationName))
	if err != nil {
		return nil, fmt.Errorf("could not create pipeline metrics: %w", err)
	}

	return &pipeline{
		options: options,
		metrics: m,
		tracer:  otel.Tracer(instrumentationName),
	}, nil
}

// ProcessLine runs parse, validate, enrich and format in sequence,
// propagating the first error. Later stages never see the output of a failed
// one.
func (p *pipeline) ProcessLine(ctx context.Context, line string) (string, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.ProcessLine")
	defer span.End()

	start := time.Now()
	formatted, err := p.runStages(line)
	p.metrics.LineDuration.Record(ctx, time.Since(start).Seconds())
	if err != nil {
		span.RecordError(err)
		p.metrics.LinesTotal.Add(ctx, 1, otelmetric.WithAttributes(attribute.String("result", "error")))

		return "", err
	}
	p.metrics.LinesTotal.Add(ctx, 1, otelmetric.WithAttributes(attribute.String("result", "ok")))

	return formatted, nil
}

// runStages is the sequential stage chain for a single line.
func (p *pipeline) runStages(line string) (string, error) {
	user, err := ParseLine(line)
	if err != nil {
		return "", err
	}

	user, err = ValidateUser(user, p.options)
	if err != nil {
		return "", err
	}

	return FormatUser(EnrichUser(user, p.options.AgeGrouping)), nil
}

// ProcessLines iterates lines in input order and collects their formatted
// results. The batch is fail-fast, not best-effort: the first failing line
// aborts processing, partial output is discarded and that line's error is
// returned. A summary of the batch counters is logged either way; logging is
// a side channel and never affects the returned values.
func (p *pipeline) ProcessLines(ctx context.Context, lines []string) ([]string, error) {
	ctx, span := p.tracer.Start(ctx, "pipeline.ProcessLines")
	defer span.End()

	var counters batchCounters
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		counters.linesTotal++

		formatted, err := p.ProcessLine(ctx, line)
		if err != nil {
			counters.linesErr++
			span.RecordError(err)
			logger.Error(ctx, "pipeline aborted due to error",
				zap.Uint64("linesTotal", counters.linesTotal),
				zap.Uint64("linesOk", counters.linesOK),
				zap.Uint64("linesErr", counters.linesErr),
				zap.Error(err))

			return nil, err
		}

		counters.linesOK++
		out = append(out, formatted)
	}

	logger.Info(ctx, "successfully processed lines",
		zap.Uint64("linesTotal", counters.linesTotal),
		zap.Uint64("linesOk", counters.linesOK),
		zap.Uint64("linesErr", counters.linesErr))

	return out, nil
}
