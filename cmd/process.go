package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"userpipe/internal/config"
	"userpipe/internal/input"
	"userpipe/internal/output"
	"userpipe/internal/pipeline"
	"userpipe/internal/telemetry"
	"userpipe/pkg/logger"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"
)

// setupTelemetry installs the global meter provider and, when an address is
// configured, starts the metrics/pprof HTTP server. The returned function
// stops the server again.
func setupTelemetry(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	mp, err := telemetry.NewMeterProvider()
	if err != nil {
		logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
	}
	otel.SetMeterProvider(mp)

	if cfg.Telemetry.Addr == "" {
		return func(context.Context) {}
	}

	server := telemetry.NewServer(telemetry.NewOptions(cfg))

	go func() {
		logger.Info(ctx, "starting telemetry server...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start telemetry server", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping telemetry server...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop telemetry server", zap.Error(err))
		}
	}
}

func processCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "process",
		Short:        "Runs the record pipeline over the configured input",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			ctx = logger.WithFields(ctx, zap.String("runID", uuid.New().String()))

			if cfg.Pipeline.Parallel > 1 {
				logger.Warn(ctx, "parallel flag is informational; running sequentially",
					zap.Int("requested", cfg.Pipeline.Parallel))
			}

			stopTelemetry := setupTelemetry(ctx, cfg)
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Telemetry.ShutdownTimeout)
				defer cancel()

				stopTelemetry(shutdownCtx)
			}()

			opts, err := pipeline.NewOptions(cfg)
			if err != nil {
				return fmt.Errorf("could not build pipeline options: %w", err)
			}

			pipe, err := pipeline.New(opts)
			if err != nil {
				return fmt.Errorf("could not create pipeline: %w", err)
			}

			lines, err := input.Read(ctx, cfg.Input.Source)
			if err != nil {
				return fmt.Errorf("could not read input: %w", err)
			}
			logger.Info(ctx, "loaded input lines", zap.Int("lines", len(lines)))

			results, err := pipe.ProcessLines(ctx, lines)
			if err != nil {
				return err
			}

			if err := output.Write(cfg.Output.Path, results, cfg.Output.Format); err != nil {
				return fmt.Errorf("could not write output: %w", err)
			}

			return nil
		},
	}

	// flags override the corresponding config values.
	cmd.Flags().StringVar(&cfg.Input.Source, "in", cfg.Input.Source,
		"Input source: file path, directory, or '-' for stdin")
	cmd.Flags().StringVar(&cfg.Output.Path, "out", cfg.Output.Path,
		"Output file (defaults to stdout)")
	cmd.Flags().StringVar(&cfg.Output.Format, "format", cfg.Output.Format,
		"Output format: text or json")
	cmd.Flags().Uint8Var(&cfg.Pipeline.MinAge, "min-age", cfg.Pipeline.MinAge,
		"Minimum allowed age")
	cmd.Flags().BoolVar(&cfg.Pipeline.StrictEmail, "strict-email", cfg.Pipeline.StrictEmail,
		"Enforce strict email validation using a regex")
	cmd.Flags().StringVar(&cfg.Pipeline.AgeGrouping, "age-grouping", cfg.Pipeline.AgeGrouping,
		"Age grouping strategy: default, fine-grained or wide")
	cmd.Flags().IntVar(&cfg.Pipeline.Parallel, "parallel", cfg.Pipeline.Parallel,
		"Hint for parallelism (currently informational only)")

	return cmd
}
