package config

import (
	"errors"
	"fmt"
)

// Validate checks all configuration values and returns aggregated errors.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.KMS.validate(),
		c.Ediscovery.Client.validate("ediscovery.client"),
		c.Transform.validate(),
		c.Telemetry.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", s.Port))
	}
	if s.ReadTimeout <= 0 {
		errs = append(errs, errors.New("server.read_timeout must be positive"))
	}
	if s.WriteTimeout <= 0 {
		errs = append(errs, errors.New("server.write_timeout must be positive"))
	}
	if s.RequestTimeout < 0 {
		errs = append(errs, errors.New("server.request_timeout must not be negative"))
	}
	if s.RequestTimeout > 0 && s.WriteTimeout > 0 && s.RequestTimeout >= s.WriteTimeout {
		errs = append(errs, fmt.Errorf(
			"server.request_timeout (%s) must be shorter than server.write_timeout (%s) so a 504 can still be written",
			s.RequestTimeout, s.WriteTimeout))
	}

	return errors.Join(errs...)
}

func (l *LogConfig) validate() error {
	var errs []error

	switch l.Level {
	case "debug", "info", "warn", "error":
		// Valid levels.
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", l.Level))
	}

	switch l.Format {
	case "json", "text":
		// Valid formats.
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", l.Format))
	}

	return errors.Join(errs...)
}

func (cl *ClientConfig) validate(prefix string) error {
	var errs []error

	if cl.BaseURL == "" {
		errs = append(errs, fmt.Errorf("%s.base_url must not be empty", prefix))
	}
	if cl.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%s.timeout must be positive", prefix))
	}
	if err := cl.Retry.validate(prefix + ".retry"); err != nil {
		errs = append(errs, err)
	}
	if cl.CircuitBreaker.MaxFailures < 1 {
		errs = append(errs, fmt.Errorf("%s.circuit_breaker.max_failures must be >= 1, got %d",
			prefix, cl.CircuitBreaker.MaxFailures))
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.requests_per_second must not be negative, got %f",
			prefix, cl.RateLimit.RequestsPerSecond))
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		errs = append(errs, fmt.Errorf("%s.rate_limit.burst_size must be >= 1 when rate limiting is enabled, got %d",
			prefix, cl.RateLimit.BurstSize))
	}

	return errors.Join(errs...)
}

func (r *RetryConfig) validate(prefix string) error {
	var errs []error

	if r.MaxAttempts < 1 {
		errs = append(errs, fmt.Errorf("%s.max_attempts must be >= 1, got %d", prefix, r.MaxAttempts))
	}
	if r.Multiplier <= 0 {
		errs = append(errs, fmt.Errorf("%s.multiplier must be positive, got %f", prefix, r.Multiplier))
	}
	if r.InitialInterval < 0 || r.MaxInterval < 0 {
		errs = append(errs, fmt.Errorf("%s intervals must not be negative", prefix))
	}

	return errors.Join(errs...)
}

func (k *KMSConfig) validate() error {
	switch k.Backend {
	case KMSBackendHTTP:
		err := k.Client.validate("kms.client")
		if k.Client.Retry.MaxAttempts > 1 {
			err = errors.Join(err, fmt.Errorf(
				"kms.client.retry.max_attempts must be 1, got %d: key management calls are retried by transform.retry",
				k.Client.Retry.MaxAttempts))
		}
		return err
	case KMSBackendVault:
		var errs []error
		if k.Vault.Address == "" {
			errs = append(errs, errors.New("kms.vault.address must not be empty"))
		}
		if k.Vault.TransitMount == "" {
			errs = append(errs, errors.New("kms.vault.transit_mount must not be empty"))
		}
		if k.Vault.KVMount == "" {
			errs = append(errs, errors.New("kms.vault.kv_mount must not be empty"))
		}
		return errors.Join(errs...)
	default:
		return fmt.Errorf("kms.backend must be one of: %s, %s; got %q", KMSBackendHTTP, KMSBackendVault, k.Backend)
	}
}

func (t *TransformConfig) validate() error {
	var errs []error

	if t.MaxWorkers < 1 {
		errs = append(errs, fmt.Errorf("transform.max_workers must be >= 1, got %d", t.MaxWorkers))
	}
	if err := t.Retry.ReportContent.validate("transform.retry.report_content"); err != nil {
		errs = append(errs, err)
	}
	if err := t.Retry.Conversation.validate("transform.retry.conversation"); err != nil {
		errs = append(errs, err)
	}

	return errors.Join(errs...)
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}

	var errs []error

	switch t.Exporter {
	case "stdout", "otlp":
		// Valid exporters.
	default:
		errs = append(errs, fmt.Errorf("telemetry.exporter must be one of: stdout, otlp; got %q", t.Exporter))
	}

	if t.Exporter == "otlp" && t.Endpoint == "" {
		errs = append(errs, errors.New("telemetry.endpoint must not be empty when exporter is otlp"))
	}

	return errors.Join(errs...)
}
