// Package session holds the application context shared by the upload
// dispatcher: the loaded configuration and the storage backend built from it.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/williamokano/video_uploader/pkg/config"
	"github.com/williamokano/video_uploader/pkg/storage"

	// Import backends to register them
	_ "github.com/williamokano/video_uploader/pkg/storage/local"
	_ "github.com/williamokano/video_uploader/pkg/storage/s3"
)

// BackendName is the name given to the upload backend in logs and errors
const BackendName = "video_upload"

// ErrClosed is returned by Initialize after Close
var ErrClosed = errors.New("session closed")

// BackendFactory builds a storage backend from configuration
type BackendFactory interface {
	Create(ctx context.Context, cfg storage.Config) (storage.Backend, error)
}

// App is the application context. Initialize settles it exactly once: either
// ready with a backend or failed with an error. The backend is never rebuilt.
type App struct {
	logger  zerolog.Logger
	factory BackendFactory

	once sync.Once
	done chan struct{} // closed once settled, on success or failure

	mu      sync.RWMutex
	config  *config.Config
	backend storage.Backend
	err     error
	closed  bool
}

// New creates an application context using the registered storage backends
func New(logger zerolog.Logger) *App {
	return NewWithFactory(logger, storage.NewFactory())
}

// NewWithFactory creates an application context with a custom backend factory
func NewWithFactory(logger zerolog.Logger, factory BackendFactory) *App {
	return &App{
		logger:  logger,
		factory: factory,
		done:    make(chan struct{}),
	}
}

// Initialize waits for the configuration and builds the storage backend. The
// backend is built at most once; later calls return the first outcome. A failed
// configuration load settles the app as failed; a cancelled ctx does not.
func (a *App) Initialize(ctx context.Context, future *config.Future) error {
	if _, err := future.Wait(ctx); err != nil && !future.Ready() {
		return fmt.Errorf("configuration unavailable: %w", err)
	}
	cfg, loadErr := future.Wait(context.Background())

	a.once.Do(func() {
		defer close(a.done)

		a.mu.Lock()
		defer a.mu.Unlock()

		if a.closed {
			a.err = ErrClosed
			return
		}

		if loadErr != nil {
			a.err = fmt.Errorf("configuration unavailable: %w", loadErr)
			a.logger.Error().Err(loadErr).Msg("configuration load failed")
			return
		}

		start := time.Now()
		backend, err := a.factory.Create(ctx, BackendConfig(cfg))
		if err != nil {
			a.err = fmt.Errorf("failed to initialize storage backend: %w", err)
			a.logger.Error().Err(err).Str("backend", cfg.VideoUpload.GetBackend()).Msg("storage backend initialization failed")
			return
		}

		a.config = cfg
		a.backend = backend

		a.logger.Info().
			Str("backend", backend.Type()).
			Str("bucket", cfg.VideoUpload.BucketName).
			Str("region", cfg.VideoUpload.BucketRegion).
			Dur("duration", time.Since(start)).
			Msg("storage backend initialized")
	})

	return a.Err()
}

// Ready reports whether the backend has been built
func (a *App) Ready() bool {
	select {
	case <-a.done:
		return a.Err() == nil
	default:
		return false
	}
}

// Err returns the initialization error, nil while unsettled or after success
func (a *App) Err() error {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.err
}

// Wait blocks until the app is settled or ctx is done. It returns the
// initialization error when the backend could not be built.
func (a *App) Wait(ctx context.Context) error {
	select {
	case <-a.done:
		return a.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Config returns the loaded configuration, nil before the app is ready
func (a *App) Config() *config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// Backend returns the storage backend, nil before the app is ready
func (a *App) Backend() storage.Backend {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.backend
}

// Close releases the backend
func (a *App) Close() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.closed = true
	if a.backend == nil {
		return nil
	}
	return a.backend.Close()
}

// BackendConfig translates the upload settings into a storage backend config
func BackendConfig(cfg *config.Config) storage.Config {
	v := cfg.VideoUpload

	options := map[string]interface{}{
		"region":           v.BucketRegion,
		"bucket":           v.BucketName,
		"identity_pool_id": v.IdentityPoolID,
		"force_path_style": v.ForcePathStyle,
	}
	if v.Endpoint != "" {
		options["endpoint"] = v.Endpoint
	}
	if v.HasStaticCredentials() {
		options["access_key_id"] = v.AccessKeyID
		options["secret_access_key"] = v.SecretAccessKey
	}
	if v.GetBackend() == "local" {
		options["path"] = v.LocalPath
	}

	return storage.Config{
		Name:    BackendName,
		Type:    v.GetBackend(),
		Options: options,
	}
}
