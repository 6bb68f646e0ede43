package site

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/adgen"
)

// LogFunc is the signature for a logging function.
type LogFunc func(format string, args ...any)

// DefaultRetryDelays returns the backoff delays for retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Retryable reports whether an operation that failed with err is worth
// repeating. Invalid input, missing resources and cancellation are final.
func Retryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	switch adgen.ErrorCode(err) {
	case adgen.EINVALID, adgen.ENOTFOUND:
		return false
	}
	return true
}

// Retry calls fn until it succeeds, fails with a non-retryable error, or
// the delays run out: len(delays)+1 attempts in total. The logger, if
// provided, is called before each retry with label identifying the work.
func Retry[T any](ctx context.Context, delays []time.Duration, logger LogFunc, label string, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		v, err := fn(ctx)
		if err == nil {
			return v, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || !Retryable(err) {
			break
		}

		if logger != nil {
			logger("  retry %s (attempt %d): %v", label, attempt+2, err)
		}

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return zero, lastErr
}
