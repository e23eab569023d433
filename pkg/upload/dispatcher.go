// Package upload sends a selected video file to the configured storage backend.
package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"

	"github.com/williamokano/video_uploader/pkg/config"
	"github.com/williamokano/video_uploader/pkg/storage"
)

// State is the stage an upload attempt has reached
type State string

const (
	StateIdle       State = "idle"
	StateValidating State = "validating"
	StateRejected   State = "rejected"
	StateDispatched State = "dispatched"
	StateSucceeded  State = "succeeded"
	StateFailed     State = "failed"
)

// ErrNoFileSelected rejects an attempt with an empty selection
var ErrNoFileSelected = errors.New("no file selected")

// Target is the application context the dispatcher uploads through
type Target interface {
	Wait(ctx context.Context) error
	Config() *config.Config
	Backend() storage.Backend
}

// Result represents the outcome of one upload attempt
type Result struct {
	State       State
	FileName    string
	Key         string
	Location    string
	ETag        string
	ContentType string
	Bytes       int64
	Ignored     []string // selected files beyond the first, not uploaded
	Overwritten bool     // an object with the same key existed before the upload
	Duration    time.Duration
}

// Dispatcher uploads the first selected file. It is safe for concurrent use;
// overlapping attempts share only the read-only backend.
type Dispatcher struct {
	target Target
	logger zerolog.Logger
}

// NewDispatcher creates a dispatcher for target
func NewDispatcher(target Target, logger zerolog.Logger) *Dispatcher {
	return &Dispatcher{target: target, logger: logger}
}

// Dispatch uploads the first of files. An empty selection is rejected before
// anything else happens. The returned result is never nil.
func (d *Dispatcher) Dispatch(ctx context.Context, files []File) (*Result, error) {
	start := time.Now()
	result := &Result{State: StateIdle}

	result.State = StateValidating
	if len(files) == 0 {
		result.State = StateRejected
		d.logger.Warn().Msg("upload rejected: no file selected")
		return result, ErrNoFileSelected
	}

	file := files[0]
	result.FileName = file.Name
	for _, extra := range files[1:] {
		result.Ignored = append(result.Ignored, extra.Name)
	}
	if len(result.Ignored) > 0 {
		d.logger.Warn().
			Str("file", file.Name).
			Strs("ignored", result.Ignored).
			Msg("multiple files selected, only the first is uploaded")
	}

	if err := d.target.Wait(ctx); err != nil {
		return d.fail(result, start, fmt.Errorf("storage not ready: %w", err))
	}

	cfg := d.target.Config()
	backend := d.target.Backend()
	result.Key = ObjectKey(cfg.VideoUpload.UploadKeyPrefix, file.Name)

	log := d.logger.With().
		Str("backend", backend.Name()).
		Str("key", result.Key).
		Logger()

	body, err := file.Open()
	if err != nil {
		return d.fail(result, start, fmt.Errorf("failed to open %s: %w", file.Name, err))
	}
	defer body.Close()

	contentType, err := detectContentType(body)
	if err != nil {
		return d.fail(result, start, fmt.Errorf("failed to read %s: %w", file.Name, err))
	}
	result.ContentType = contentType

	// Same-name objects are replaced; a failed lookup does not block the upload.
	exists, err := backend.Exists(ctx, result.Key)
	switch {
	case err != nil:
		log.Debug().Err(err).Msg("could not check for an existing object")
	case exists:
		result.Overwritten = true
		log.Warn().Msg("overwriting existing object")
	}

	counter := &countingReader{r: body}

	result.State = StateDispatched
	log.Info().Str("content_type", contentType).Msg("starting upload")

	info, err := backend.Upload(ctx, result.Key, counter, storage.UploadOptions{
		ACL:         storage.ACLBucketOwnerFullControl,
		ContentType: contentType,
	})
	result.Bytes = counter.n
	if err != nil {
		log.Error().Err(err).Dur("duration", time.Since(start)).Msg("upload failed")
		return d.fail(result, start, err)
	}

	result.State = StateSucceeded
	result.Location = info.Location
	result.ETag = info.ETag
	result.Duration = time.Since(start)

	log.Info().
		Int64("bytes", result.Bytes).
		Str("location", result.Location).
		Dur("duration", result.Duration).
		Msg("upload succeeded")

	return result, nil
}

func (d *Dispatcher) fail(result *Result, start time.Time, err error) (*Result, error) {
	result.State = StateFailed
	result.Duration = time.Since(start)
	return result, err
}

// detectContentType sniffs the payload and rewinds it
func detectContentType(body io.ReadSeeker) (string, error) {
	mtype, err := mimetype.DetectReader(body)
	if err != nil {
		return "", err
	}
	if _, err := body.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mtype.String(), nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}
