package local

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/williamokano/video_uploader/pkg/storage"
)

// Backend stores objects as files below a base directory. Object keys map to
// relative paths, so "upload/clip.mp4" becomes <base>/upload/clip.mp4.
type Backend struct {
	name     string
	basePath string
}

func init() {
	storage.RegisterBackend("local", func(ctx context.Context, cfg storage.Config) (storage.Backend, error) {
		return New(cfg)
	})
}

// New creates a new local filesystem backend
func New(cfg storage.Config) (*Backend, error) {
	path, _ := cfg.Options["path"].(string)
	if path == "" {
		return nil, fmt.Errorf("missing required option path: %w", storage.ErrInvalidConfig)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return nil, storage.WrapError(cfg.Name, "init", err)
	}

	return &Backend{
		name:     cfg.Name,
		basePath: path,
	}, nil
}

func (b *Backend) Name() string { return b.name }
func (b *Backend) Type() string { return "local" }

// Upload writes body to the file for key
func (b *Backend) Upload(ctx context.Context, key string, body io.Reader, opts storage.UploadOptions) (*storage.UploadInfo, error) {
	destFullPath, err := b.resolve(key)
	if err != nil {
		return nil, storage.WrapError(b.name, "upload", err)
	}

	if err := os.MkdirAll(filepath.Dir(destFullPath), 0755); err != nil {
		return nil, storage.WrapError(b.name, "upload", err)
	}

	dest, err := os.Create(destFullPath)
	if err != nil {
		return nil, storage.WrapError(b.name, "upload", err)
	}
	defer dest.Close()

	if _, err := io.Copy(dest, body); err != nil {
		os.Remove(destFullPath) // Clean up partial file
		return nil, storage.WrapError(b.name, "upload", err)
	}

	return &storage.UploadInfo{
		Key:      key,
		Location: destFullPath,
	}, nil
}

// Stat returns metadata about a file
func (b *Backend) Stat(ctx context.Context, key string) (*storage.FileInfo, error) {
	fullPath, err := b.resolve(key)
	if err != nil {
		return nil, storage.WrapError(b.name, "stat", err)
	}

	info, err := os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, storage.WrapError(b.name, "stat", fmt.Errorf("%s: %w", key, storage.ErrNotFound))
		}
		return nil, storage.WrapError(b.name, "stat", err)
	}

	return &storage.FileInfo{
		Key:     key,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}, nil
}

// Exists checks if a file exists
func (b *Backend) Exists(ctx context.Context, key string) (bool, error) {
	fullPath, err := b.resolve(key)
	if err != nil {
		return false, storage.WrapError(b.name, "exists", err)
	}

	_, err = os.Stat(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, storage.WrapError(b.name, "exists", err)
	}
	return true, nil
}

// Close is a no-op for local backend
func (b *Backend) Close() error {
	return nil
}

// resolve maps a key to a path, rejecting keys that escape the base directory
func (b *Backend) resolve(key string) (string, error) {
	full := filepath.Join(b.basePath, filepath.FromSlash(key))
	rel, err := filepath.Rel(b.basePath, full)
	if err != nil || rel == "." || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("key %q resolves outside %s", key, b.basePath)
	}
	return full, nil
}
