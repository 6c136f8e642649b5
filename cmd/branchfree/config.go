package main

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	bferrors "github.com/23skdu/branchfree/internal/errors"
)

const envPrefix = "BRANCHFREE"

// Config is read from BRANCHFREE_* environment variables. None are required;
// the defaults reproduce the plain report-only run.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat   string `envconfig:"LOG_FORMAT" default:"console"`
	MetricsFile string `envconfig:"METRICS_FILE"`
	ResultsFile string `envconfig:"RESULTS_FILE"`
}

// Config validation errors
var (
	ErrInvalidLogFormat = errors.New("log_format must be 'json' or 'console'")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, error or disabled")
	ErrSameOutputFile   = errors.New("metrics_file and results_file must differ")
)

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" {
		return ErrInvalidLogFormat
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error", "disabled":
	default:
		return ErrInvalidLogLevel
	}
	if cfg.MetricsFile != "" && cfg.MetricsFile == cfg.ResultsFile {
		return ErrSameOutputFile
	}
	return nil
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		LogLevel:  "warn",
		LogFormat: "console",
	}
}

// LoadConfig reads an optional .env file from the working directory, then
// the environment.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, bferrors.WrapConfigurationError(err, "config.load", "read .env")
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, bferrors.WrapConfigurationError(err, "config.load", "process environment")
	}
	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, bferrors.WrapConfigurationError(err, "config.validate", "invalid configuration")
	}
	return cfg, nil
}
