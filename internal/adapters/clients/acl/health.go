package acl

import "context"

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *KMSClient) Name() string {
	return "kms"
}

// HealthCheck reports the gateway's availability from the circuit breaker
// state. No network call is made. A half-open breaker wraps
// [ports.ErrDegraded]; readiness stays up while KMS calls are on trial.
func (c *KMSClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *EdiscoveryClient) Name() string {
	return "ediscovery-api"
}

// HealthCheck reports the eDiscovery API's availability from the circuit
// breaker state.
func (c *EdiscoveryClient) HealthCheck(ctx context.Context) error {
	return c.req.HealthCheck(ctx)
}
