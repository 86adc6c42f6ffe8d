// Package config resolves runtime settings from the environment.
//
// Recognized variables:
//
//	LOWLIGHT_THRESHOLD    luma threshold for dark pixels (default 80)
//	LOWLIGHT_WORKERS      concurrent files in batch mode (default: CPU count)
//	LOWLIGHT_OUTPUT_DIR   where outputs are written (default: next to input)
//	LOWLIGHT_LOG_LEVEL    zerolog level name (default "info")
//
// Command-line flags override these values.
package config

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/ironsheep/lowlight-enhancer/internal/enhance"
)

const (
	EnvThreshold = "LOWLIGHT_THRESHOLD"
	EnvWorkers   = "LOWLIGHT_WORKERS"
	EnvOutputDir = "LOWLIGHT_OUTPUT_DIR"
	EnvLogLevel  = "LOWLIGHT_LOG_LEVEL"
)

// Config holds everything the CLI and server need beyond the image paths.
type Config struct {
	Enhance   enhance.Options
	Workers   int
	OutputDir string
	LogLevel  string
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Enhance:  enhance.DefaultOptions(),
		Workers:  runtime.NumCPU(),
		LogLevel: "info",
	}
}

// FromEnv starts from Default and applies any LOWLIGHT_* variables.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvThreshold); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvThreshold, err)
		}
		cfg.Enhance.Threshold = n
	}
	if v, ok := lookup(EnvWorkers); ok && strings.TrimSpace(v) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvWorkers, err)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvOutputDir); ok {
		cfg.OutputDir = strings.TrimSpace(v)
	}
	if v, ok := lookup(EnvLogLevel); ok && strings.TrimSpace(v) != "" {
		cfg.LogLevel = strings.TrimSpace(v)
	}

	return cfg, cfg.Validate()
}

// Validate checks the combined settings.
func (c Config) Validate() error {
	if err := c.Enhance.Validate(); err != nil {
		return err
	}
	if c.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	return nil
}
