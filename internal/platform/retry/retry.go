// Package retry provides a bounded retry policy with exponential backoff and
// +/-25% jitter. It is used by the outbound HTTP client and, per call, by the
// transform engine's crypto adapter.
//
//	p := retry.FromConfig(cfg.Transform.Retry.ReportContent)
//	err := retry.Do(ctx, p, "decryptText", func(ctx context.Context) error {
//	    return km.DecryptText(ctx, ...)
//	})
package retry

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/config"
	"github.com/jsamuelsen11/go-ediscovery-transforms/internal/platform/logging"
)

// jitterFraction is the maximum jitter as a fraction of the delay (±25%).
const jitterFraction = 0.25

// Policy bounds how often and how fast an operation is retried.
// MaxAttempts counts the first call, so 1 disables retries.
type Policy struct {
	MaxAttempts     int
	InitialInterval time.Duration
	MaxInterval     time.Duration
	Multiplier      float64

	// Retryable classifies errors. Nil uses IsRetryable.
	Retryable func(error) bool
}

// None is the policy that calls the operation exactly once.
func None() Policy {
	return Policy{MaxAttempts: 1}
}

// FromConfig converts a config.RetryConfig into a Policy.
func FromConfig(cfg config.RetryConfig) Policy {
	return Policy{
		MaxAttempts:     cfg.MaxAttempts,
		InitialInterval: cfg.InitialInterval,
		MaxInterval:     cfg.MaxInterval,
		Multiplier:      cfg.Multiplier,
	}
}

// WithRetryable returns a copy of p using fn to classify errors.
func (p Policy) WithRetryable(fn func(error) bool) Policy {
	p.Retryable = fn
	return p
}

func (p Policy) retryable(err error) bool {
	if p.Retryable != nil {
		return p.Retryable(err)
	}
	return IsRetryable(err)
}

// Do calls fn until it succeeds, returns a non-retryable error, or the policy
// runs out of attempts. The last error is returned. op names the operation in
// retry logs.
func Do(ctx context.Context, p Policy, op string, fn func(context.Context) error) error {
	if p.MaxAttempts <= 0 {
		return fmt.Errorf("retry: maxAttempts must be >= 1, got %d", p.MaxAttempts)
	}

	var lastErr error
	for attempt := range p.MaxAttempts {
		if attempt > 0 {
			if err := Wait(ctx, p, op, attempt, lastErr); err != nil {
				return err
			}
		}

		lastErr = fn(ctx)
		if lastErr == nil {
			return nil
		}
		if !p.retryable(lastErr) {
			return lastErr
		}
	}

	return lastErr
}

// Wait logs the retry at WARN level and sleeps for the backoff of attempt, or
// until ctx is done. attempt is 1-indexed (1 is the first retry).
func Wait(ctx context.Context, p Policy, op string, attempt int, lastErr error) error {
	delay := Backoff(attempt, p)

	logging.FromContext(ctx).WarnContext(ctx, "retrying operation",
		slog.String("operation", op),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", p.MaxAttempts),
		slog.Duration("backoff", delay),
		slog.Any("error", lastErr),
	)

	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Backoff calculates the delay for a given retry attempt using exponential
// backoff with ±25% jitter. The attempt parameter is 1-indexed (attempt 1 is
// the first retry).
func Backoff(attempt int, p Policy) time.Duration {
	multiplier := p.Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	delay := float64(p.InitialInterval) * math.Pow(multiplier, float64(attempt-1))

	// Cap at max interval before applying jitter.
	if p.MaxInterval > 0 && delay > float64(p.MaxInterval) {
		delay = float64(p.MaxInterval)
	}

	jitter := delay * jitterFraction
	delay += jitter * (2*secureRandFloat64() - 1)

	if delay < 0 {
		delay = 0
	}

	return time.Duration(delay)
}

// IsRetryable reports whether err is worth another attempt. Context
// cancellation and deadline expiry are not; everything else is.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	return true
}

// IEEE 754 double-precision constants for random float generation.
const (
	significandBits = 53
	uint64Bits      = 64
)

// secureRandFloat64 returns a random float64 in [0, 1) using crypto/rand.
func secureRandFloat64() float64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0
	}
	return float64(binary.BigEndian.Uint64(b[:])>>(uint64Bits-significandBits)) / float64(uint64(1)<<significandBits)
}
