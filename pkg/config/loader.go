package config

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
)

// DefaultSource is the configuration document read when none is given
const DefaultSource = "./variables.json"

// Loader loads the configuration document once per process
type Loader struct {
	source string
	client *http.Client
	logger zerolog.Logger
	once   sync.Once
	future *Future
}

// NewLoader creates a loader for a file path, file:// URL or http(s):// URL
func NewLoader(source string, logger zerolog.Logger) *Loader {
	if source == "" {
		source = DefaultSource
	}
	return &Loader{
		source: source,
		client: http.DefaultClient,
		logger: logger,
		future: NewFuture(),
	}
}

// WithHTTPClient replaces the client used for http(s) sources
func (l *Loader) WithHTTPClient(client *http.Client) *Loader {
	l.client = client
	return l
}

// Future returns the future resolved by Load
func (l *Loader) Future() *Future {
	return l.future
}

// Load fetches and parses the document and resolves the future. Only the first
// call does any work; later calls return the first outcome.
func (l *Loader) Load(ctx context.Context) error {
	l.once.Do(func() {
		l.logger.Debug().Str("source", l.source).Msg("loading configuration")

		data, err := Fetch(ctx, l.client, l.source)
		if err != nil {
			l.future.Resolve(nil, err)
			return
		}

		config, err := Parse(data)
		if err != nil {
			l.future.Resolve(nil, err)
			return
		}

		l.logger.Info().
			Str("source", l.source).
			Str("bucket", config.VideoUpload.BucketName).
			Str("region", config.VideoUpload.BucketRegion).
			Msg("configuration loaded")

		l.future.Resolve(config, nil)
	})

	_, err := l.future.Wait(ctx)
	return err
}

// Fetch reads the raw configuration document
func Fetch(ctx context.Context, client *http.Client, source string) ([]byte, error) {
	u, err := url.Parse(source)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		path := strings.TrimPrefix(source, "file://")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build config request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch config: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch config: unexpected status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read config response: %w", err)
	}

	return data, nil
}
