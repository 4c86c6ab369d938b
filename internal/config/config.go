// Package config reads server settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvLogLevel      = "IMAGE_FILTER_LOG_LEVEL"
	EnvLogFormat     = "IMAGE_FILTER_LOG_FORMAT"
	EnvDefaultKSize  = "IMAGE_FILTER_DEFAULT_KSIZE"
	EnvMaxKSize      = "IMAGE_FILTER_MAX_KSIZE"
	defaultKSize     = 3
	defaultMaxKSize  = 31
	defaultLogFormat = "console"
)

// Config holds the settings shared by the server and its tools.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string

	// LogFormat is "console" (human readable) or "json".
	LogFormat string

	// DefaultKernelSize is used when a tool call omits ksize.
	DefaultKernelSize int

	// MaxKernelSize bounds ksize. Larger kernels are rejected.
	MaxKernelSize int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:          "info",
		LogFormat:         defaultLogFormat,
		DefaultKernelSize: defaultKSize,
		MaxKernelSize:     defaultMaxKSize,
	}
}

// Load builds a Config from the process environment.
func Load() (Config, []string) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config using lookup for each variable. Invalid values
// are replaced by defaults; a warning is returned for each one.
func FromLookup(lookup func(string) (string, bool)) (Config, []string) {
	cfg := Default()
	var warnings []string

	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		level := strings.ToLower(strings.TrimSpace(v))
		switch level {
		case "debug", "info", "warn", "error":
			cfg.LogLevel = level
		default:
			warnings = append(warnings, fmt.Sprintf("%s=%q is not a log level, using %q", EnvLogLevel, v, cfg.LogLevel))
		}
	}

	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		format := strings.ToLower(strings.TrimSpace(v))
		switch format {
		case "console", "json":
			cfg.LogFormat = format
		default:
			warnings = append(warnings, fmt.Sprintf("%s=%q is not console or json, using %q", EnvLogFormat, v, cfg.LogFormat))
		}
	}

	if v, ok := lookup(EnvMaxKSize); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 || n%2 == 0 {
			warnings = append(warnings, fmt.Sprintf("%s=%q must be a positive odd integer, using %d", EnvMaxKSize, v, cfg.MaxKernelSize))
		} else {
			cfg.MaxKernelSize = n
		}
	}

	if v, ok := lookup(EnvDefaultKSize); ok && v != "" {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 1 || n%2 == 0 || n > cfg.MaxKernelSize {
			warnings = append(warnings, fmt.Sprintf("%s=%q must be a positive odd integer <= %d, using %d", EnvDefaultKSize, v, cfg.MaxKernelSize, cfg.DefaultKernelSize))
		} else {
			cfg.DefaultKernelSize = n
		}
	}

	return cfg, warnings
}
