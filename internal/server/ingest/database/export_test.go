package database

import (
	"context"
	"time"
)

type DBPool = dbPool

// WithNewPool overrides the function creating the connection pool.
func WithNewPool(newPool func(ctx context.Context, dsn string) (DBPool, error)) Options {
	return func(opts *options) {
		opts.newPool = newPool
	}
}

// WithCloseTimeout overrides how long Close waits for the pool.
func WithCloseTimeout(d time.Duration) Options {
	return func(opts *options) {
		opts.closeTimeout = d
	}
}
