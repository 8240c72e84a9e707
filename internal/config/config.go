// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/mmynk/tipcalc/internal/tipform"
)

const (
	defaultPort               = 8080
	defaultLogLevel           = "info"
	defaultSessionIdleTimeout = 30 * time.Minute
	defaultSessionReapEvery   = time.Minute
)

// Config holds server configuration sourced from environment variables.
type Config struct {
	Port     int
	LogLevel string

	// SplitRange, SliderSteps and RecomputeOnBillChange are the defaults
	// for new tip form sessions.
	SplitRange            tipform.Range
	SliderSteps           int
	RecomputeOnBillChange bool

	SessionIdleTimeout  time.Duration
	SessionReapInterval time.Duration
}

// Load reads environment variables and returns a populated Config.
// A .env file in the working directory is loaded first if present;
// variables already set in the environment win.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{
		LogLevel: getEnv("LOG_LEVEL", defaultLogLevel),
	}

	var err error
	if cfg.Port, err = intEnv("PORT", defaultPort); err != nil {
		return Config{}, err
	}
	if cfg.SplitRange.Min, err = intEnv("SPLIT_MIN", tipform.DefaultRange.Min); err != nil {
		return Config{}, err
	}
	if cfg.SplitRange.Max, err = intEnv("SPLIT_MAX", tipform.DefaultRange.Max); err != nil {
		return Config{}, err
	}
	if err := cfg.SplitRange.Validate(); err != nil {
		return Config{}, fmt.Errorf("SPLIT_MIN/SPLIT_MAX: %w", err)
	}
	if cfg.SliderSteps, err = intEnv("SLIDER_STEPS", 0); err != nil {
		return Config{}, err
	}
	if cfg.SliderSteps < 0 {
		return Config{}, fmt.Errorf("SLIDER_STEPS must not be negative, got %d", cfg.SliderSteps)
	}
	if cfg.RecomputeOnBillChange, err = boolEnv("RECOMPUTE_ON_BILL_CHANGE", false); err != nil {
		return Config{}, err
	}
	if cfg.SessionIdleTimeout, err = durationEnv("SESSION_IDLE_TIMEOUT", defaultSessionIdleTimeout); err != nil {
		return Config{}, err
	}
	if cfg.SessionReapInterval, err = durationEnv("SESSION_REAP_INTERVAL", defaultSessionReapEvery); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// FormOptions returns the tip form defaults described by the config.
func (c Config) FormOptions() tipform.Options {
	return tipform.Options{
		SplitRange:            c.SplitRange,
		SliderSteps:           c.SliderSteps,
		RecomputeOnBillChange: c.RecomputeOnBillChange,
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q: %w", key, value, err)
	}
	return n, nil
}

func boolEnv(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q: %w", key, value, err)
	}
	return b, nil
}

func durationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, value, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s: duration must be positive, got %s", key, d)
	}
	return d, nil
}
