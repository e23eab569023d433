package config

import (
	"context"
	"sync"
)

// Future carries the outcome of a configuration load. It is resolved exactly once;
// any number of goroutines may wait on it.
type Future struct {
	once   sync.Once
	done   chan struct{}
	config *Config
	err    error
}

// NewFuture creates an unresolved future
func NewFuture() *Future {
	return &Future{done: make(chan struct{})}
}

// Resolve stores the load outcome. Calls after the first are ignored.
func (f *Future) Resolve(config *Config, err error) {
	f.once.Do(func() {
		f.config = config
		f.err = err
		close(f.done)
	})
}

// Ready reports whether the future has been resolved
func (f *Future) Ready() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the future is resolved or ctx is done
func (f *Future) Wait(ctx context.Context) (*Config, error) {
	select {
	case <-f.done:
		return f.config, f.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
