package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Catalog source kinds.
const (
	CatalogBuiltin  = "builtin"
	CatalogFile     = "file"
	CatalogSQLite   = "sqlite"
	CatalogPostgres = "postgres"
)

const defaultCacheSize = 256

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Auth      AuthConfig      `yaml:"auth"`
	Tailscale TailscaleConfig `yaml:"tailscale"`
	Catalog   CatalogConfig   `yaml:"catalog"`
	Cache     CacheConfig     `yaml:"cache"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// AuthConfig protects the generate endpoint when APIKey is set.
type AuthConfig struct {
	APIKey string `yaml:"api_key"`
}

type TailscaleConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Hostname string `yaml:"hostname"`
	StateDir string `yaml:"state_dir"`
}

// CatalogConfig selects where week templates come from. Path is the YAML file
// for "file" and the database file for "sqlite"; DSN is used for "postgres".
type CatalogConfig struct {
	Source string `yaml:"source"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

// CacheConfig sizes the in-memory store of recent results kept for download.
type CacheConfig struct {
	Size int `yaml:"size"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns a config that needs no file: built-in templates, local
// listener on port 8080.
func Default() *Config {
	return &Config{
		Server:    ServerConfig{Host: "127.0.0.1", Port: 8080},
		Tailscale: TailscaleConfig{Hostname: "nextblock"},
		Catalog:   CatalogConfig{Source: CatalogBuiltin},
		Cache:     CacheConfig{Size: defaultCacheSize},
		Log:       LogConfig{Level: "info"},
	}
}

// Load reads config from a YAML file on top of Default, then applies
// environment variable overrides. Env vars use the prefix NEXTBLOCK_:
//
//	NEXTBLOCK_SERVER_HOST, NEXTBLOCK_SERVER_PORT, NEXTBLOCK_AUTH_API_KEY,
//	NEXTBLOCK_TAILSCALE_ENABLED, NEXTBLOCK_TAILSCALE_HOSTNAME,
//	NEXTBLOCK_CATALOG_SOURCE, NEXTBLOCK_CATALOG_PATH, NEXTBLOCK_CATALOG_DSN,
//	NEXTBLOCK_CACHE_SIZE, NEXTBLOCK_LOG_LEVEL
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return finish(cfg)
}

// FromEnv is Load without a file: Default plus environment overrides.
func FromEnv() (*Config, error) {
	return finish(Default())
}

func finish(cfg *Config) (*Config, error) {
	applyEnvOverrides(cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("NEXTBLOCK_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	if v := os.Getenv("NEXTBLOCK_SERVER_PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("NEXTBLOCK_AUTH_API_KEY"); v != "" {
		cfg.Auth.APIKey = v
	}
	if v := os.Getenv("NEXTBLOCK_TAILSCALE_ENABLED"); v != "" {
		if enabled, err := strconv.ParseBool(v); err == nil {
			cfg.Tailscale.Enabled = enabled
		}
	}
	if v := os.Getenv("NEXTBLOCK_TAILSCALE_HOSTNAME"); v != "" {
		cfg.Tailscale.Hostname = v
	}
	if v := os.Getenv("NEXTBLOCK_CATALOG_SOURCE"); v != "" {
		cfg.Catalog.Source = v
	}
	if v := os.Getenv("NEXTBLOCK_CATALOG_PATH"); v != "" {
		cfg.Catalog.Path = v
	}
	if v := os.Getenv("NEXTBLOCK_CATALOG_DSN"); v != "" {
		cfg.Catalog.DSN = v
	}
	if v := os.Getenv("NEXTBLOCK_CACHE_SIZE"); v != "" {
		if size, err := strconv.Atoi(v); err == nil {
			cfg.Cache.Size = size
		}
	}
	if v := os.Getenv("NEXTBLOCK_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
}

func (c *Config) validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Tailscale.Enabled && c.Tailscale.Hostname == "" {
		return fmt.Errorf("tailscale.hostname is required when tailscale is enabled")
	}
	switch c.Catalog.Source {
	case "", CatalogBuiltin:
		c.Catalog.Source = CatalogBuiltin
	case CatalogFile, CatalogSQLite:
		if c.Catalog.Path == "" {
			return fmt.Errorf("catalog.path is required for source %q", c.Catalog.Source)
		}
	case CatalogPostgres:
		if c.Catalog.DSN == "" {
			return fmt.Errorf("catalog.dsn is required for source %q", c.Catalog.Source)
		}
	default:
		return fmt.Errorf("catalog.source %q is not one of builtin, file, sqlite, postgres", c.Catalog.Source)
	}
	if c.Cache.Size <= 0 {
		return fmt.Errorf("cache.size must be positive")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// SlogLevel returns the configured log level.
func (c *Config) SlogLevel() slog.Level {
	l, _ := ParseLevel(c.Log.Level)
	return l
}

// ParseLevel maps debug, info, warn and error to slog levels; "" is info.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("log.level %q is not one of debug, info, warn, error", s)
}
