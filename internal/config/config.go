// Package config provides configuration management for Portside.
//
// This package handles loading configuration from multiple sources:
//   - YAML configuration files
//   - Environment variables (with PS_ prefix)
//   - .env files
//   - Default values
//
// # Configuration Sources Priority
//
// Configuration is loaded in the following order (later sources override earlier ones):
//  1. Default values (hardcoded)
//  2. Configuration files (./config.yaml, ./configs/config.yaml, ~/.portside/config.yaml, /etc/portside/config.yaml)
//  3. .env files
//  4. Environment variables (PS_ prefix)
//
// # Usage Example
//
//	cfg, err := config.Load("configs/config.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("Server: %s:%d\n", cfg.Server.Host, cfg.Server.Port)
//
// # Environment Variables
//
// Environment variables override all other configuration sources.
// Use PS_ prefix and underscores for nested keys:
//   - PS_SERVER_PORT=8001
//   - PS_COUCHDB_URL=http://localhost:5984
//   - PS_STORAGE_BACKEND=memory
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage backends selectable via storage.backend.
const (
	BackendCouchDB = "couchdb"
	BackendMemory  = "memory"
)

// Config is the root configuration structure for Portside.
type Config struct {
	// Server contains HTTP server configuration
	Server ServerConfig `mapstructure:"server"`

	// CouchDB contains database connection settings
	CouchDB CouchDBConfig `mapstructure:"couchdb"`

	// Storage selects the store backend
	Storage StorageConfig `mapstructure:"storage"`

	// Logging contains logging settings
	Logging LoggingConfig `mapstructure:"logging"`

	// Security contains CORS and rate limiting settings
	Security SecurityConfig `mapstructure:"security"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	// Host is the server bind address (default: 0.0.0.0)
	Host string `mapstructure:"host"`

	// Port is the server listen port (default: 8001)
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading requests
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration for writing responses
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// ShutdownTimeout is the maximum duration for graceful shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Debug enables debug logging
	Debug bool `mapstructure:"debug"`

	// TLSEnabled enables HTTPS
	TLSEnabled bool `mapstructure:"tls_enabled"`

	// TLSCert is the path to the TLS certificate file
	TLSCert string `mapstructure:"tls_cert"`

	// TLSKey is the path to the TLS private key file
	TLSKey string `mapstructure:"tls_key"`
}

// CouchDBConfig contains CouchDB connection settings.
type CouchDBConfig struct {
	// URL is the CouchDB server URL (e.g., http://localhost:5984)
	URL string `mapstructure:"url"`

	// Database is the database name to use
	Database string `mapstructure:"database"`

	// Username for CouchDB authentication
	Username string `mapstructure:"username"`

	// Password for CouchDB authentication
	Password string `mapstructure:"password"`

	// MaxConnections is the maximum number of concurrent connections
	MaxConnections int `mapstructure:"max_connections"`

	// Timeout in seconds for database operations
	Timeout int `mapstructure:"timeout"`
}

// StorageConfig selects the store backend.
type StorageConfig struct {
	// Backend is "couchdb" or "memory". The memory backend holds the
	// seeded demo data in process and needs no database.
	Backend string `mapstructure:"backend"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the log format (json, text)
	Format string `mapstructure:"format"`

	// Output is the log output destination (stdout, file)
	Output string `mapstructure:"output"`
}

// SecurityConfig contains CORS and rate limiting settings.
type SecurityConfig struct {
	// RateLimit is the maximum requests per second per client
	RateLimit int `mapstructure:"rate_limit"`

	// AllowedOrigins are the CORS allowed origins
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

var cfg *Config

// Load reads configuration from a file and environment variables.
// If cfgFile is empty, it searches for config.yaml in standard locations.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (PS_ prefix)
//  2. .env file
//  3. Configuration file
//  4. Default values
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./configs")
		v.AddConfigPath("$HOME/.portside")
		v.AddConfigPath("/etc/portside")
	}

	if err := v.ReadInConfig(); err != nil {
		// If config file was explicitly specified, fail on any error
		// other than "file not found"; for auto-discovery, only fail on
		// errors other than ConfigFileNotFoundError
		if cfgFile != "" {
			if !isFileNotFoundError(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.MergeInConfig() // Ignore error if .env file doesn't exist

	v.SetEnvPrefix("PS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8001)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.debug", false)
	v.SetDefault("server.tls_enabled", false)

	v.SetDefault("couchdb.url", "http://localhost:5984")
	v.SetDefault("couchdb.database", "portside")
	v.SetDefault("couchdb.username", "admin")
	v.SetDefault("couchdb.password", "password")
	v.SetDefault("couchdb.max_connections", 10)
	v.SetDefault("couchdb.timeout", 30)

	v.SetDefault("storage.backend", BackendCouchDB)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.output", "stdout")

	v.SetDefault("security.rate_limit", 100)
	v.SetDefault("security.allowed_origins", []string{"*"})
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}

	switch cfg.Storage.Backend {
	case BackendCouchDB:
		if cfg.CouchDB.URL == "" {
			return fmt.Errorf("couchdb url is required")
		}
		if cfg.CouchDB.Database == "" {
			return fmt.Errorf("couchdb database is required")
		}
	case BackendMemory:
		// Nothing to validate
	default:
		return fmt.Errorf("invalid storage backend: %s", cfg.Storage.Backend)
	}

	return nil
}

// Get returns the last loaded configuration.
func Get() *Config {
	return cfg
}

// isFileNotFoundError checks if an error is a file not found error.
func isFileNotFoundError(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr, os.ErrNotExist)
	}
	return false
}
