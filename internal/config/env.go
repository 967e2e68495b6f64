package config

import (
	"os"
	"strconv"
	"strings"

	sanitize "github.com/mrz1836/go-sanitize"
)

// Environment variable names.
const (
	EnvHome         = "WHICHCHAIN_HOME"
	EnvRegistryDir  = "WHICHCHAIN_REGISTRY_DIR"
	EnvOutputFormat = "WHICHCHAIN_OUTPUT_FORMAT"
	EnvVerbose      = "WHICHCHAIN_VERBOSE"
	EnvLogLevel     = "WHICHCHAIN_LOG_LEVEL"
	EnvNoColor      = "NO_COLOR"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvRegistryDir); v != "" {
		cfg.Registry.Dir = SanitizePath(v)
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}

	// NO_COLOR disables colored output
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.Output.Color = "never"
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}

// SanitizePath trims whitespace and control characters from a user-provided
// filesystem path, keeping copy-paste artifacts out of registry lookups.
func SanitizePath(path string) string {
	return sanitize.SingleLine(strings.TrimSpace(path))
}
