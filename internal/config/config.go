package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
// It contains settings for the environment, the record pipeline, input and
// output handling, and the optional telemetry server.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// Pipeline contains the tunable rule parameters consumed by the record pipeline.
	Pipeline struct {
		// MinAge is the minimum age a record must have to pass validation.
		MinAge uint8 `env:"PIPELINE_MIN_AGE" env-default:"0" yaml:"minAge"`
		// StrictEmail enables the anchored regex email check instead of the
		// loose structural one.
		StrictEmail bool `env:"PIPELINE_STRICT_EMAIL" env-default:"false" yaml:"strictEmail"`
		// AgeGrouping selects the age bucketing strategy: default, fine-grained or wide.
		AgeGrouping string `env:"PIPELINE_AGE_GROUPING" env-default:"default" yaml:"ageGrouping"`
		// Parallel is an informational hint only; processing is always sequential.
		Parallel int `env:"PIPELINE_PARALLEL" env-default:"0" yaml:"parallel"`
	} `yaml:"pipeline"`

	// Input contains settings for where raw lines are read from.
	Input struct {
		// Source is a file path, a directory of .csv/.txt files, or "-" for stdin.
		Source string `env:"INPUT_SOURCE" env-default:"-" yaml:"source"`
	} `yaml:"input"`

	// Output contains settings for where and how results are written.
	Output struct {
		// Path is the output file; empty means stdout.
		Path string `env:"OUTPUT_PATH" env-default:"" yaml:"path"`
		// Format is the rendering of the batch result, "text" or "json".
		Format string `env:"OUTPUT_FORMAT" env-default:"text" yaml:"format"`
	} `yaml:"output"`

	// Telemetry contains settings for the optional metrics/pprof HTTP server.
	Telemetry struct {
		// Addr is the TCP address the telemetry server listens on.
		// Empty disables the server entirely.
		Addr string `env:"TELEMETRY_ADDR" env-default:"" yaml:"addr"`
		// MetricsPath defines the URL path where metrics are exposed.
		MetricsPath string `env:"TELEMETRY_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers.
		ReadHeaderTimeout time.Duration `env:"TELEMETRY_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// ShutdownTimeout is the maximum duration to wait for the telemetry
		// server to drain during shutdown.
		ShutdownTimeout time.Duration `env:"TELEMETRY_SHUTDOWN_TIMEOUT" env-default:"5s" yaml:"shutdownTimeout"`
	} `yaml:"telemetry"`
}

// Load receives the path for yaml config file and returns a filled Config
// struct. When the file does not exist, configuration is read from the
// environment alone so the CLI remains usable without a config file.
func Load(configPath string) (*Config, error) {
	var cfg Config
	if _, err := os.Stat(configPath); err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("could not stat config file: %w", err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("could not read config from environment: %w", err)
		}

		return &cfg, nil
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
