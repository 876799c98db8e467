// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// KMS backends.
const (
	KMSBackendHTTP  = "http"
	KMSBackendVault = "vault"
)

// Config holds all configuration for the service.
type Config struct {
	Server     ServerConfig     `koanf:"server"`
	Log        LogConfig        `koanf:"log"`
	KMS        KMSConfig        `koanf:"kms"`
	Ediscovery EdiscoveryConfig `koanf:"ediscovery"`
	Transform  TransformConfig  `koanf:"transform"`
	Telemetry  TelemetryConfig  `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host           string        `koanf:"host"`
	Port           int           `koanf:"port"`
	ReadTimeout    time.Duration `koanf:"read_timeout"`
	WriteTimeout   time.Duration `koanf:"write_timeout"`
	IdleTimeout    time.Duration `koanf:"idle_timeout"`
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds downstream HTTP client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds outbound rate limiting settings. A zero
// RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// KMSConfig selects and configures the key-management backend.
type KMSConfig struct {
	Backend string       `koanf:"backend"`
	Client  ClientConfig `koanf:"client"`
	Vault   VaultConfig  `koanf:"vault"`
}

// VaultConfig holds HashiCorp Vault settings for the transit backend. Keys
// are created under TransitMount; resource bindings are kept in KVMount.
type VaultConfig struct {
	Address      string        `koanf:"address"`
	Token        string        `koanf:"token"`
	TransitMount string        `koanf:"transit_mount"`
	KVMount      string        `koanf:"kv_mount"`
	Timeout      time.Duration `koanf:"timeout"`
}

// EdiscoveryConfig holds settings for the eDiscovery container API.
type EdiscoveryConfig struct {
	Client ClientConfig `koanf:"client"`
}

// TransformConfig holds transform engine settings.
type TransformConfig struct {
	MaxWorkers int                  `koanf:"max_workers"`
	Retry      TransformRetryConfig `koanf:"retry"`
}

// TransformRetryConfig holds the per-path crypto retry policies.
type TransformRetryConfig struct {
	ReportContent RetryConfig `koanf:"report_content"`
	Conversation  RetryConfig `koanf:"conversation"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
