package ports

import (
	"context"
	"errors"
)

// ErrDegraded marks a health check failure that still admits traffic, such
// as a downstream whose circuit breaker is half-open. Checkers wrap it.
var ErrDegraded = errors.New("degraded")

// HealthChecker is a dependency the readiness endpoint reports on: the
// key-management backend and the eDiscovery container API.
type HealthChecker interface {
	// Name keys the dependency in the readiness body, e.g. "kms".
	Name() string

	// HealthCheck returns nil when healthy, an error wrapping ErrDegraded
	// when impaired but usable, and any other error when unusable. It must
	// honor ctx.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for the readiness endpoint.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every check and returns results keyed by checker name.
	// Nil means healthy.
	CheckAll(ctx context.Context) map[string]error
}
