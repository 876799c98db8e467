package config

const (
	defaultServerPort = 8080

	defaultRetryMaxAttempts = 3
	defaultRetryMultiplier  = 2.0

	defaultCircuitBreakerMaxFailures = 5
	defaultCircuitBreakerHalfOpen    = 1

	defaultTransformMaxWorkers = 16
)

// defaults returns the default configuration values.
// These are loaded first and can be overridden by base.yaml, profile YAML, and env vars.
func defaults() map[string]any {
	m := map[string]any{
		"server.host":            "0.0.0.0",
		"server.port":            defaultServerPort,
		"server.read_timeout":    "5s",
		"server.write_timeout":   "30s",
		"server.idle_timeout":    "120s",
		"server.request_timeout": "25s",

		"log.level":  "info",
		"log.format": "json",

		"kms.backend":             KMSBackendHTTP,
		"kms.vault.address":       "http://127.0.0.1:8200",
		"kms.vault.token":         "",
		"kms.vault.transit_mount": "transit",
		"kms.vault.kv_mount":      "secret",
		"kms.vault.timeout":       "10s",

		"transform.max_workers": defaultTransformMaxWorkers,

		"transform.retry.report_content.max_attempts":     defaultRetryMaxAttempts,
		"transform.retry.report_content.initial_interval": "100ms",
		"transform.retry.report_content.max_interval":     "2s",
		"transform.retry.report_content.multiplier":       defaultRetryMultiplier,

		"transform.retry.conversation.max_attempts":     1,
		"transform.retry.conversation.initial_interval": "0s",
		"transform.retry.conversation.max_interval":     "0s",
		"transform.retry.conversation.multiplier":       1.0,

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "ediscovery-transforms",
	}

	clientDefaults(m, "kms.client", "http://localhost:8081")
	m["kms.client.retry.max_attempts"] = 1
	clientDefaults(m, "ediscovery.client", "http://localhost:8082")

	return m
}

// clientDefaults fills the defaults of one downstream ClientConfig rooted at
// prefix.
func clientDefaults(m map[string]any, prefix, baseURL string) {
	m[prefix+".base_url"] = baseURL
	m[prefix+".timeout"] = "30s"
	m[prefix+".retry.max_attempts"] = defaultRetryMaxAttempts
	m[prefix+".retry.initial_interval"] = "100ms"
	m[prefix+".retry.max_interval"] = "10s"
	m[prefix+".retry.multiplier"] = defaultRetryMultiplier
	m[prefix+".circuit_breaker.max_failures"] = defaultCircuitBreakerMaxFailures
	m[prefix+".circuit_breaker.timeout"] = "30s"
	m[prefix+".circuit_breaker.half_open_limit"] = defaultCircuitBreakerHalfOpen
	m[prefix+".rate_limit.requests_per_second"] = 0
	m[prefix+".rate_limit.burst_size"] = 0
}
