package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/williamokano/video_uploader/pkg/upload"
)

func writeLocalConfig(t *testing.T, dir string) string {
	t.Helper()
	doc := fmt.Sprintf(`{
		"log_level": "error",
		"video_upload": {
			"bucket_region": "local",
			"upload_bucket_name": "videos",
			"s3_upload_startkey": "upload",
			"backend": "local",
			"local_path": %q
		}
	}`, dir)

	path := filepath.Join(t.TempDir(), "variables.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))
	return path
}

func TestRun(t *testing.T) {
	t.Run("usage", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		code := run([]string{"video_uploader"}, &stdout, &stderr)

		assert.Equal(t, 2, code)
		assert.Contains(t, stderr.String(), "usage:")
		assert.Empty(t, stdout.String())
	})

	t.Run("missing_config", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		missing := filepath.Join(t.TempDir(), "missing.json")
		code := run([]string{"video_uploader", missing, "clip.mp4"}, &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.Empty(t, stdout.String())
	})

	t.Run("no_file_selected", func(t *testing.T) {
		var stdout, stderr bytes.Buffer
		cfgPath := writeLocalConfig(t, t.TempDir())
		code := run([]string{"video_uploader", cfgPath}, &stdout, &stderr)

		assert.Equal(t, 1, code)
		assert.Equal(t, upload.NoticeNoFile+"\n", stdout.String())
	})

	t.Run("uploads_to_local_backend", func(t *testing.T) {
		dest := t.TempDir()
		cfgPath := writeLocalConfig(t, dest)

		video := filepath.Join(t.TempDir(), "clip.mp4")
		require.NoError(t, os.WriteFile(video, []byte("not really a video"), 0o644))

		var stdout, stderr bytes.Buffer
		code := run([]string{"video_uploader", cfgPath, video}, &stdout, &stderr)

		require.Equal(t, 0, code)
		assert.Equal(t, upload.NoticeSuccess+"\n", stdout.String())

		data, err := os.ReadFile(filepath.Join(dest, "upload", "clip.mp4"))
		require.NoError(t, err)
		assert.Equal(t, "not really a video", string(data))
	})
}
