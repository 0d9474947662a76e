// Package genstore keeps the generation counter that tags cached results.
//
// Every cached recommendation list records the generation it was computed
// under; Invalidate bumps it and older entries are dropped on read.
// LocalGenStore suits a single process. RedisGenStore shares the counter
// between replicas so an Invalidate on one is seen by all.
package genstore

import (
	"context"
	"time"
)

type GenStore interface {
	// Snapshot returns the current generation; missing => 0.
	Snapshot(ctx context.Context, key string) (uint64, error)
	// Bump atomically increments and returns the new generation.
	Bump(ctx context.Context, key string) (uint64, error)
	// Cleanup prunes counters untouched for longer than retention (no-op for Redis).
	Cleanup(retention time.Duration)
	// Close releases resources (no-op ok).
	Close(context.Context) error
}
