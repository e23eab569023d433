package upload

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
)

// File is one entry of a file selection
type File struct {
	Name string // original file name, used verbatim in the object key
	open func() (io.ReadSeekCloser, error)
}

// Open opens the file payload
func (f File) Open() (io.ReadSeekCloser, error) {
	return f.open()
}

// FromPath selects a file on the local filesystem
func FromPath(path string) File {
	return File{
		Name: filepath.Base(path),
		open: func() (io.ReadSeekCloser, error) {
			return os.Open(path)
		},
	}
}

// FromPaths selects several files; only the first is ever uploaded
func FromPaths(paths ...string) []File {
	files := make([]File, 0, len(paths))
	for _, p := range paths {
		files = append(files, FromPath(p))
	}
	return files
}

// FromBytes selects an in-memory payload
func FromBytes(name string, data []byte) File {
	return File{
		Name: name,
		open: func() (io.ReadSeekCloser, error) {
			return nopCloser{bytes.NewReader(data)}, nil
		},
	}
}

type nopCloser struct {
	io.ReadSeeker
}

func (nopCloser) Close() error { return nil }
