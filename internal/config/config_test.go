package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	t.Run("should load default values", func(t *testing.T) {
		cfg, err := Load("")
		assert.NoError(t, err)
		assert.Equal(t, "0.0.0.0:50051", cfg.GRPC.BindAddress)
		assert.Equal(t, "redis://localhost:6379", cfg.Redis.URL)
		assert.Equal(t, 365, cfg.Certificate.DefaultValidityDays)
		assert.Equal(t, 30, cfg.Certificate.RenewalThresholdDays)
		assert.Equal(t, 2048, cfg.Certificate.KeySize)
		assert.Equal(t, 3600, cfg.Watcher.CheckIntervalSeconds)
		assert.Equal(t, 10, cfg.Watcher.MaxConcurrentRenewals)
		assert.Equal(t, 8080, cfg.API.Port)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("should load from environment variables", func(t *testing.T) {
		t.Setenv("CERT_AGENT_GRPC_BIND_ADDRESS", "127.0.0.1:9000")
		t.Setenv("CERT_AGENT_REDIS_URL", "redis://redis.internal:6380")
		t.Setenv("CERT_AGENT_DEFAULT_VALIDITY_DAYS", "90")
		t.Setenv("CERT_AGENT_CHECK_INTERVAL_SECONDS", "600")
		t.Setenv("CERT_AGENT_LOG_LEVEL", "debug")

		cfg, err := Load("")
		assert.NoError(t, err)
		assert.Equal(t, "127.0.0.1:9000", cfg.GRPC.BindAddress)
		assert.Equal(t, "redis://redis.internal:6380", cfg.Redis.URL)
		assert.Equal(t, 90, cfg.Certificate.DefaultValidityDays)
		assert.Equal(t, 600, cfg.Watcher.CheckIntervalSeconds)
		assert.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("should propagate renewal threshold to watcher", func(t *testing.T) {
		t.Setenv("CERT_AGENT_RENEWAL_THRESHOLD_DAYS", "14")

		cfg, err := Load("")
		assert.NoError(t, err)
		assert.Equal(t, 14, cfg.Certificate.RenewalThresholdDays)
		assert.Equal(t, 14, cfg.Watcher.RenewalThresholdDays)
	})

	t.Run("should load from config file", func(t *testing.T) {
		content := `
grpc:
  bind_address: "127.0.0.1:50052"
certificate:
  default_validity_days: 30
  renewal_threshold_days: 7
watcher:
  check_interval_seconds: 60
log:
  level: "warn"
`
		tmpfile, err := os.CreateTemp("", "config-*.yaml")
		assert.NoError(t, err)
		defer os.Remove(tmpfile.Name())

		_, err = tmpfile.WriteString(content)
		assert.NoError(t, err)
		err = tmpfile.Close()
		assert.NoError(t, err)

		cfg, err := Load(tmpfile.Name())
		assert.NoError(t, err)
		assert.Equal(t, "127.0.0.1:50052", cfg.GRPC.BindAddress)
		assert.Equal(t, 30, cfg.Certificate.DefaultValidityDays)
		assert.Equal(t, 7, cfg.Certificate.RenewalThresholdDays)
		assert.Equal(t, 60, cfg.Watcher.CheckIntervalSeconds)
		assert.Equal(t, "warn", cfg.Log.Level)
	})

	t.Run("should override config file with environment variables", func(t *testing.T) {
		content := `
grpc:
  bind_address: "127.0.0.1:50052"
`
		tmpfile, err := os.CreateTemp("", "config-*.yaml")
		assert.NoError(t, err)
		defer os.Remove(tmpfile.Name())

		_, err = tmpfile.WriteString(content)
		assert.NoError(t, err)
		assert.NoError(t, tmpfile.Close())

		t.Setenv("CERT_AGENT_GRPC_BIND_ADDRESS", "0.0.0.0:6000")

		cfg, err := Load(tmpfile.Name())
		assert.NoError(t, err)
		assert.Equal(t, "0.0.0.0:6000", cfg.GRPC.BindAddress)
	})

	t.Run("should fail on missing config file", func(t *testing.T) {
		_, err := Load("/nonexistent/cert-agent.yaml")
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	valid := getDefaults()

	t.Run("should accept defaults", func(t *testing.T) {
		cfg := valid
		assert.NoError(t, cfg.validate())
	})

	t.Run("should reject bad bind address", func(t *testing.T) {
		cfg := valid
		cfg.GRPC.BindAddress = "not-an-address"
		assert.Error(t, cfg.validate())
	})

	t.Run("should reject weak key size", func(t *testing.T) {
		cfg := valid
		cfg.Certificate.KeySize = 1024
		assert.Error(t, cfg.validate())
	})

	t.Run("should reject unknown signature algorithm", func(t *testing.T) {
		cfg := valid
		cfg.Certificate.SignatureAlgorithm = "md5"
		assert.Error(t, cfg.validate())
	})

	t.Run("should reject non-positive watcher interval", func(t *testing.T) {
		cfg := valid
		cfg.Watcher.CheckIntervalSeconds = 0
		assert.Error(t, cfg.validate())
	})

	t.Run("should reject out-of-range API port", func(t *testing.T) {
		cfg := valid
		cfg.API.Port = 70000
		assert.Error(t, cfg.validate())
	})
}

func TestHelpers(t *testing.T) {
	t.Run("GetAddress should join host and port", func(t *testing.T) {
		cfg := APIConfig{Host: "0.0.0.0", Port: 8080}
		assert.Equal(t, "0.0.0.0:8080", cfg.GetAddress())
	})

	t.Run("IsTLSEnabled requires both files", func(t *testing.T) {
		cfg := GRPCConfig{TLSCertFile: "server.crt"}
		assert.False(t, cfg.IsTLSEnabled())
		cfg.TLSKeyFile = "server.key"
		assert.True(t, cfg.IsTLSEnabled())
	})

	t.Run("timeout parsing falls back on bad input", func(t *testing.T) {
		cfg := RedisConfig{ConnectionTimeout: "bogus", CommandTimeout: "2s"}
		assert.Equal(t, "5s", cfg.ConnectionTimeoutDuration().String())
		assert.Equal(t, "2s", cfg.CommandTimeoutDuration().String())
	})
}
