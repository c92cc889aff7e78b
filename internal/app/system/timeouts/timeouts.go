// Package timeouts provides centralized timeout values for handler
// operations.
//
// Guidelines for choosing a timeout:
//   - Ping: connectivity checks against the JotForm API
//   - Short: rendering pages that touch no remote data
//   - Fetch: a full paginated submission fetch plus aggregation
package timeouts

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing  = 3 * time.Second
	DefaultShort = 5 * time.Second
	DefaultFetch = 45 * time.Second
)

var mu sync.RWMutex

var (
	ping  = DefaultPing
	short = DefaultShort
	fetch = DefaultFetch
)

// Ping returns the timeout for API connectivity checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for simple page operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Fetch returns the timeout for a full dataset fetch, covering the
// bounded paginated request sequence including retries.
func Fetch() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return fetch
}

// Config holds timeout configuration values. Zero values are ignored.
type Config struct {
	Ping  time.Duration
	Short time.Duration
	Fetch time.Duration
}

// Configure sets custom timeout values during startup, before handlers
// are registered. Zero values keep the current settings.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Fetch > 0 {
		fetch = cfg.Fetch
	}
}

// Reset restores the defaults. Useful for testing.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	fetch = DefaultFetch
}

// WithTimeout creates a context with timeout and returns a cancel
// function that logs a warning if the deadline was exceeded.
func WithTimeout(parent context.Context, timeout time.Duration, log *zap.Logger, operation string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return ctx, func() {
		if ctx.Err() == context.DeadlineExceeded && log != nil {
			log.Warn("operation timed out",
				zap.String("operation", operation),
				zap.Duration("timeout", timeout),
			)
		}
		cancel()
	}
}
