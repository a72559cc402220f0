// Package telemetry wires the OpenTelemetry metrics export and the optional
// HTTP server exposing Prometheus metrics and pprof handlers. It is a side
// channel only and has no influence on pipeline results.
package telemetry

import (
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"userpipe/internal/config"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	otelprom "go.opentelemetry.io/otel/exporters/prometheus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

// Options holds configuration for the telemetry HTTP server.
type Options struct {
	// Addr is the TCP address the server listens on, e.g. ":9090".
	Addr string
	// MetricsPath is the HTTP path at which Prometheus metrics are served.
	MetricsPath string
	// ReadHeaderTimeout is the amount of time allowed to read request headers.
	ReadHeaderTimeout time.Duration
}

// NewOptions constructs an Options value from the provided application configuration.
func NewOptions(cfg *config.Config) Options {
	return Options{
		Addr:              cfg.Telemetry.Addr,
		MetricsPath:       cfg.Telemetry.MetricsPath,
		ReadHeaderTimeout: cfg.Telemetry.ReadHeaderTimeout,
	}
}

// NewMeterProvider creates a meter provider backed by a Prometheus exporter
// registered on the default registerer. Install it globally with
// otel.SetMeterProvider so the pipeline instruments are collected.
func NewMeterProvider() (*sdkmetric.MeterProvider, error) {
	exp, err := otelprom.New(otelprom.WithRegisterer(prometheus.DefaultRegisterer))
	if err != nil {
		return nil, fmt.Errorf("could not create otel exporter: %w", err)
	}

	return sdkmetric.NewMeterProvider(sdkmetric.WithReader(exp)), nil
}

// NewServer wires up and returns a configured *http.Server exposing the
// Prometheus metrics endpoint (MetricsPath) and pprof endpoints for
// profiling.
func NewServer(opts Options) *http.Server {
	mux := http.NewServeMux()

	mux.Handle(opts.MetricsPath, promhttp.Handler())
	mux.Handle("/debug/pprof/", pprofMux())

	return &http.Server{
		Addr:              opts.Addr,
		Handler:           mux,
		ReadHeaderTimeout: opts.ReadHeaderTimeout,
	}
}

// pprofMux returns an http.ServeMux with net/http/pprof handlers registered.
func pprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/debug/pprof/", pprof.Index)
	mux.HandleFunc("/debug/pprof/cmdline", pprof.Cmdline)
	mux.HandleFunc("/debug/pprof/profile", pprof.Profile)
	mux.HandleFunc("/debug/pprof/symbol", pprof.Symbol)
	mux.HandleFunc("/debug/pprof/trace", pprof.Trace)

	return mux
}
