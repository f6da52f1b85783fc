package config

import (
	"fmt"
	"net"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds the entire application configuration
type Config struct {
	// gRPC server configuration
	GRPC GRPCConfig `yaml:"grpc"`

	// Redis store configuration
	Redis RedisConfig `yaml:"redis"`

	// Certificate issuance configuration
	Certificate CertificateConfig `yaml:"certificate"`

	// Renewal watcher configuration
	Watcher WatcherConfig `yaml:"watcher"`

	// Admin HTTP API configuration
	API APIConfig `yaml:"api"`

	// Logging configuration
	Log LogConfig `yaml:"log"`
}

// GRPCConfig contains gRPC server settings
type GRPCConfig struct {
	BindAddress    string `yaml:"bind_address"`
	MaxMessageSize int    `yaml:"max_message_size"`
	TLSCertFile    string `yaml:"tls_cert_file"`
	TLSKeyFile     string `yaml:"tls_key_file"`
}

// RedisConfig contains Redis connection settings
type RedisConfig struct {
	URL               string `yaml:"url"`
	MaxConnections    int    `yaml:"max_connections"`
	ConnectionTimeout string `yaml:"connection_timeout"`
	CommandTimeout    string `yaml:"command_timeout"`
}

// CertificateConfig contains CA and issuance settings
type CertificateConfig struct {
	CACertPath           string `yaml:"ca_cert_path"`
	CAKeyPath            string `yaml:"ca_key_path"`
	StoragePath          string `yaml:"storage_path"`
	DefaultValidityDays  int    `yaml:"default_validity_days"`
	RenewalThresholdDays int    `yaml:"renewal_threshold_days"`
	KeySize              int    `yaml:"key_size"`
	SignatureAlgorithm   string `yaml:"signature_algorithm"`
}

// WatcherConfig contains renewal watcher settings
type WatcherConfig struct {
	CheckIntervalSeconds  int `yaml:"check_interval_seconds"`
	RenewalThresholdDays  int `yaml:"renewal_threshold_days"`
	MaxConcurrentRenewals int `yaml:"max_concurrent_renewals"`
}

// APIConfig contains admin HTTP server settings
type APIConfig struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	ReadTimeout  string `yaml:"read_timeout"`
	WriteTimeout string `yaml:"write_timeout"`
}

// LogConfig contains logging configuration
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Output string `yaml:"output"`
}

// Load loads configuration from YAML file with defaults
func Load(configPath string) (*Config, error) {
	// Start with defaults
	config := getDefaults()

	// Load config file if provided or found
	var configFile string
	if configPath != "" {
		configFile = configPath
	} else {
		// Search for config file in standard locations
		searchPaths := []string{
			"./cert-agent.yaml",
			"./config/cert-agent.yaml",
			"/etc/cert-agent/cert-agent.yaml",
			filepath.Join(os.Getenv("HOME"), ".cert-agent", "cert-agent.yaml"),
		}

		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configFile = path
				break
			}
		}
	}

	// Read and parse config file if found
	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}

		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	// Apply environment variable overrides
	applyEnvOverrides(&config)

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// getDefaults returns a Config struct with default values
func getDefaults() Config {
	return Config{
		GRPC: GRPCConfig{
			BindAddress:    "0.0.0.0:50051",
			MaxMessageSize: 4 * 1024 * 1024, // 4MB
		},
		Redis: RedisConfig{
			URL:               "redis://localhost:6379",
			MaxConnections:    10,
			ConnectionTimeout: "5s",
			CommandTimeout:    "3s",
		},
		Certificate: CertificateConfig{
			CACertPath:           "./certs/ca.crt",
			CAKeyPath:            "./certs/ca.key",
			StoragePath:          "./certs/storage",
			DefaultValidityDays:  365,
			RenewalThresholdDays: 30,
			KeySize:              2048,
			SignatureAlgorithm:   "sha256",
		},
		Watcher: WatcherConfig{
			CheckIntervalSeconds:  3600, // 1 hour
			RenewalThresholdDays:  30,
			MaxConcurrentRenewals: 10,
		},
		API: APIConfig{
			Host:         "0.0.0.0",
			Port:         8080,
			ReadTimeout:  "30s",
			WriteTimeout: "30s",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
			Output: "stdout",
		},
	}
}

// validate validates the configuration
func (c *Config) validate() error {
	if _, _, err := net.SplitHostPort(c.GRPC.BindAddress); err != nil {
		return fmt.Errorf("invalid grpc bind address '%s': %w", c.GRPC.BindAddress, err)
	}
	if c.GRPC.MaxMessageSize <= 0 {
		return fmt.Errorf("invalid grpc max message size: %d", c.GRPC.MaxMessageSize)
	}

	if c.Redis.URL == "" {
		return fmt.Errorf("redis url must not be empty")
	}
	if c.Redis.MaxConnections < 1 {
		return fmt.Errorf("invalid redis max_connections: %d", c.Redis.MaxConnections)
	}

	if c.Certificate.DefaultValidityDays < 1 {
		return fmt.Errorf("invalid default_validity_days: %d", c.Certificate.DefaultValidityDays)
	}
	if c.Certificate.RenewalThresholdDays < 1 {
		return fmt.Errorf("invalid renewal_threshold_days: %d", c.Certificate.RenewalThresholdDays)
	}
	if c.Certificate.KeySize < 2048 {
		return fmt.Errorf("key_size must be at least 2048, got %d", c.Certificate.KeySize)
	}
	if c.Certificate.SignatureAlgorithm != "sha256" {
		return fmt.Errorf("unsupported signature_algorithm '%s'", c.Certificate.SignatureAlgorithm)
	}

	if c.Watcher.CheckIntervalSeconds < 1 {
		return fmt.Errorf("invalid check_interval_seconds: %d", c.Watcher.CheckIntervalSeconds)
	}
	if c.Watcher.MaxConcurrentRenewals < 1 {
		return fmt.Errorf("invalid max_concurrent_renewals: %d", c.Watcher.MaxConcurrentRenewals)
	}

	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("invalid API port: %d", c.API.Port)
	}

	return nil
}

// applyEnvOverrides applies CERT_AGENT_* environment variable overrides
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("CERT_AGENT_GRPC_BIND_ADDRESS"); env != "" {
		config.GRPC.BindAddress = env
	}
	if env := os.Getenv("CERT_AGENT_REDIS_URL"); env != "" {
		config.Redis.URL = env
	}
	if env := os.Getenv("CERT_AGENT_REDIS_MAX_CONNECTIONS"); env != "" {
		if n := parseIntEnv(env); n > 0 {
			config.Redis.MaxConnections = n
		}
	}
	if env := os.Getenv("CERT_AGENT_CA_CERT_PATH"); env != "" {
		config.Certificate.CACertPath = env
	}
	if env := os.Getenv("CERT_AGENT_CA_KEY_PATH"); env != "" {
		config.Certificate.CAKeyPath = env
	}
	if env := os.Getenv("CERT_AGENT_STORAGE_PATH"); env != "" {
		config.Certificate.StoragePath = env
	}
	if env := os.Getenv("CERT_AGENT_DEFAULT_VALIDITY_DAYS"); env != "" {
		if n := parseIntEnv(env); n > 0 {
			config.Certificate.DefaultValidityDays = n
		}
	}
	if env := os.Getenv("CERT_AGENT_RENEWAL_THRESHOLD_DAYS"); env != "" {
		if n := parseIntEnv(env); n > 0 {
			config.Certificate.RenewalThresholdDays = n
			config.Watcher.RenewalThresholdDays = n
		}
	}
	if env := os.Getenv("CERT_AGENT_CHECK_INTERVAL_SECONDS"); env != "" {
		if n := parseIntEnv(env); n > 0 {
			config.Watcher.CheckIntervalSeconds = n
		}
	}
	if env := os.Getenv("CERT_AGENT_MAX_CONCURRENT_RENEWALS"); env != "" {
		if n := parseIntEnv(env); n > 0 {
			config.Watcher.MaxConcurrentRenewals = n
		}
	}
	if env := os.Getenv("CERT_AGENT_API_PORT"); env != "" {
		if n := parseIntEnv(env); n > 0 {
			config.API.Port = n
		}
	}
	if env := os.Getenv("CERT_AGENT_LOG_LEVEL"); env != "" {
		config.Log.Level = env
	}
	if env := os.Getenv("CERT_AGENT_LOG_FORMAT"); env != "" {
		config.Log.Format = env
	}
}

// parseIntEnv safely parses an integer from environment variable
func parseIntEnv(env string) int {
	var i int
	if _, err := fmt.Sscanf(env, "%d", &i); err == nil {
		return i
	}
	return 0
}

// GetAddress returns the formatted address for the admin API
func (c *APIConfig) GetAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// IsTLSEnabled returns true if TLS is configured for gRPC
func (c *GRPCConfig) IsTLSEnabled() bool {
	return c.TLSCertFile != "" && c.TLSKeyFile != ""
}

// ConnectionTimeoutDuration returns the parsed connection timeout
func (c *RedisConfig) ConnectionTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.ConnectionTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// CommandTimeoutDuration returns the parsed command timeout
func (c *RedisConfig) CommandTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.CommandTimeout)
	if err != nil {
		return 3 * time.Second
	}
	return d
}

// CheckInterval returns the watcher tick interval
func (c *WatcherConfig) CheckInterval() time.Duration {
	return time.Duration(c.CheckIntervalSeconds) * time.Second
}
