package storage

import (
	"context"
	"fmt"
	"sync"
)

// BackendConstructor is a function that creates a backend instance
type BackendConstructor func(ctx context.Context, cfg Config) (Backend, error)

var (
	registryMu      sync.RWMutex
	backendRegistry = make(map[string]BackendConstructor)
)

// RegisterBackend registers a backend constructor
func RegisterBackend(backendType string, constructor BackendConstructor) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backendRegistry[backendType] = constructor
}

// Factory creates storage backends from configuration
type Factory struct{}

// NewFactory creates a new factory instance
func NewFactory() *Factory {
	return &Factory{}
}

// Create instantiates a backend from config
func (f *Factory) Create(ctx context.Context, cfg Config) (Backend, error) {
	registryMu.RLock()
	constructor, ok := backendRegistry[cfg.Type]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("unknown backend type %q: %w", cfg.Type, ErrInvalidConfig)
	}

	return constructor(ctx, cfg)
}
