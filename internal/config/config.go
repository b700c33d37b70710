package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/dshills/filesearch-mcp/internal/cache"
)

// Config holds the file-search server configuration.
type Config struct {
	Cache   CacheConfig   `yaml:"cache"`
	Walker  WalkerConfig  `yaml:"walker"`
	Logging LoggingConfig `yaml:"logging"`
}

// CacheConfig holds result-cache limits.
type CacheConfig struct {
	MaxEntries  int   `yaml:"max_entries"`
	TTLSec      int   `yaml:"ttl_sec"`
	MaxMemoryMB int   `yaml:"max_memory_mb"`
	EnableStats *bool `yaml:"enable_stats"` // default true
}

// WalkerConfig holds traversal settings.
type WalkerConfig struct {
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error (default: info)
}

// Load reads configuration from a YAML file. An empty path returns the
// defaults so the server runs with zero configuration.
func Load(path string) (Config, error) {
	var cfg Config

	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
		}

		// Substitute env variables of the form ${VAR} / ${VAR:-default}
		data = expandEnvVars(data)

		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// ApplyDefaults fills empty fields with default values.
func (c *Config) ApplyDefaults() {
	if c.Cache.MaxEntries <= 0 {
		c.Cache.MaxEntries = cache.DefaultMaxEntries
	}
	if c.Cache.TTLSec <= 0 {
		c.Cache.TTLSec = int(cache.DefaultTTL / time.Second)
	}
	if c.Cache.MaxMemoryMB <= 0 {
		c.Cache.MaxMemoryMB = int(cache.DefaultMaxMemoryUsage >> 20)
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
}

// Validate checks the configuration for correctness.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
		// ok
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// CacheManagerConfig converts the loaded settings into the cache
// manager's configuration.
func (c *Config) CacheManagerConfig() cache.Config {
	enableStats := true
	if c.Cache.EnableStats != nil {
		enableStats = *c.Cache.EnableStats
	}
	return cache.Config{
		MaxEntries:     c.Cache.MaxEntries,
		DefaultTTL:     time.Duration(c.Cache.TTLSec) * time.Second,
		MaxMemoryUsage: int64(c.Cache.MaxMemoryMB) << 20,
		EnableStats:    enableStats,
	}
}

// expandEnvVars replaces ${VAR} and ${VAR:-default} with environment
// variable values.
var envVarRegex = regexp.MustCompile(`\$\{([^}]+)\}`)

func expandEnvVars(data []byte) []byte {
	return envVarRegex.ReplaceAllFunc(data, func(match []byte) []byte {
		expr := string(match[2 : len(match)-1]) // strip ${ and }
		varName, defaultVal, hasDefault := strings.Cut(expr, ":-")
		val := os.Getenv(varName)
		if val == "" && hasDefault {
			val = defaultVal
		}
		return []byte(val)
	})
}
