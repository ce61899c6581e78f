package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
)

const (
	// EnvFontcoreHome is the environment variable to override the default fontcore home directory
	EnvFontcoreHome = "FONTCORE_HOME"

	// EnvScanWorkers is the environment variable to configure directory scan parallelism
	EnvScanWorkers = "FONTCORE_SCAN_WORKERS"

	// EnvParseCacheLimit is the environment variable to configure the parse cache entry limit
	EnvParseCacheLimit = "FONTCORE_PARSE_CACHE_LIMIT"

	// DefaultParseCacheLimit is the default number of memoized parse results (per cache)
	DefaultParseCacheLimit = 10000
)

// GetScanWorkers returns the configured scan parallelism from FONTCORE_SCAN_WORKERS.
// If not set or invalid, returns the CPU count. Values are clamped to [1, 64].
func GetScanWorkers() int {
	envValue := os.Getenv(EnvScanWorkers)
	if envValue == "" {
		return runtime.NumCPU()
	}

	n, err := strconv.Atoi(envValue)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid %s value %q, using CPU count\n",
			EnvScanWorkers, envValue)
		return runtime.NumCPU()
	}

	if n < 1 {
		fmt.Fprintf(os.Stderr, "Warning: %s too low (%d), using minimum 1\n",
			EnvScanWorkers, n)
		return 1
	}
	if n > 64 {
		fmt.Fprintf(os.Stderr, "Warning: %s too high (%d), using maximum 64\n",
			EnvScanWorkers, n)
		return 64
	}

	return n
}

// GetParseCacheLimit returns the configured parse cache entry limit from
// FONTCORE_PARSE_CACHE_LIMIT. If not set or invalid, returns
// DefaultParseCacheLimit. Zero disables caching.
func GetParseCacheLimit() int {
	envValue := os.Getenv(EnvParseCacheLimit)
	if envValue == "" {
		return DefaultParseCacheLimit
	}

	n, err := strconv.Atoi(envValue)
	if err != nil || n < 0 {
		fmt.Fprintf(os.Stderr, "Warning: invalid %s value %q, using default %d\n",
			EnvParseCacheLimit, envValue, DefaultParseCacheLimit)
		return DefaultParseCacheLimit
	}

	return n
}

// DefaultHomeOverride can be set by the binary's main package to change the
// default home directory. Used by dev builds (via ldflags) to default to
// .fontcore-dev instead of ~/.fontcore. FONTCORE_HOME still takes precedence.
var DefaultHomeOverride string

// Config holds fontcore directory layout
type Config struct {
	HomeDir    string // $FONTCORE_HOME
	CacheDir   string // $FONTCORE_HOME/cache
	ReportsDir string // $FONTCORE_HOME/reports (grouping and advisory reports)
	ConfigFile string // $FONTCORE_HOME/config.toml
}

// DefaultConfig returns the default configuration
func DefaultConfig() (*Config, error) {
	// Check for FONTCORE_HOME environment variable first
	fontcoreHome := os.Getenv(EnvFontcoreHome)
	if fontcoreHome == "" {
		if DefaultHomeOverride != "" {
			fontcoreHome = DefaultHomeOverride
		} else {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get user home directory: %w", err)
			}
			fontcoreHome = filepath.Join(home, ".fontcore")
		}
	}

	return &Config{
		HomeDir:    fontcoreHome,
		CacheDir:   filepath.Join(fontcoreHome, "cache"),
		ReportsDir: filepath.Join(fontcoreHome, "reports"),
		ConfigFile: filepath.Join(fontcoreHome, "config.toml"),
	}, nil
}

// EnsureDirectories creates all necessary directories
func (c *Config) EnsureDirectories() error {
	dirs := []string{
		c.HomeDir,
		c.CacheDir,
		c.ReportsDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// ReportFile returns the path for a named report under ReportsDir.
func (c *Config) ReportFile(name string) string {
	return filepath.Join(c.ReportsDir, name)
}
