package ratelimit

import "context"

// Limiter decides whether a caller may perform one more request in a scope.
type Limiter interface {
	// Allow consumes one request for the key and reports whether it fits
	// within the configured budget.
	Allow(ctx context.Context, key string) (bool, error)
}

// noopLimiter allows everything. Used when Redis is not configured.
type noopLimiter struct{}

func (noopLimiter) Allow(ctx context.Context, key string) (bool, error) {
	return true, nil
}

// NewNoopLimiter returns a limiter that never rejects.
func NewNoopLimiter() Limiter {
	return noopLimiter{}
}
