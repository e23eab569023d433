package storage

import (
	"context"
	"io"
	"time"
)

// ACLBucketOwnerFullControl grants the bucket owner full control of uploaded objects
const ACLBucketOwnerFullControl = "bucket-owner-full-control"

// Backend represents an object store bound to a single bucket or directory
type Backend interface {
	// Name returns a human-readable name for this backend (e.g., "video_upload")
	Name() string

	// Type returns the backend type (s3, local)
	Type() string

	// Upload stores body under key, replacing any existing object with the same key
	Upload(ctx context.Context, key string, body io.Reader, opts UploadOptions) (*UploadInfo, error)

	// Stat returns metadata about a stored object
	Stat(ctx context.Context, key string) (*FileInfo, error)

	// Exists checks if an object exists in the backend
	Exists(ctx context.Context, key string) (bool, error)

	// Close releases resources (connections, sessions)
	Close() error
}

// UploadOptions carries per-object settings
type UploadOptions struct {
	ACL         string // canned ACL, e.g. bucket-owner-full-control
	ContentType string // empty lets the backend decide
}

// UploadInfo describes a stored object
type UploadInfo struct {
	Key       string
	Location  string // URL or path of the stored object
	ETag      string
	VersionID string
}

// FileInfo represents metadata about a stored object
type FileInfo struct {
	Key         string
	Size        int64
	ModTime     time.Time
	ContentType string
}

// Config represents storage backend configuration
type Config struct {
	Name    string                 `json:"name"`    // User-friendly name
	Type    string                 `json:"type"`    // Backend type: s3, local
	Options map[string]interface{} `json:"options"` // Backend-specific options
}
