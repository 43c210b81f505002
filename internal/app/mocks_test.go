package app

import (
	"context"
	"errors"
	"io/fs"
	"time"

	appErrors "lapsecopy/internal/errors"
)

type mockExif struct {
	timestamps map[string]time.Time
	err        error
}

func (m mockExif) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	if m.err != nil {
		return time.Time{}, m.err
	}
	if ts, ok := m.timestamps[path]; ok {
		return ts, nil
	}
	return time.Time{}, appErrors.ErrMissingCaptureTime
}

type cancelExif struct{}

func (cancelExif) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	return time.Time{}, ctx.Err()
}

// failingFS wraps another FileSystem and fails CopyFile for chosen sources.
type failingFS struct {
	FileSystem
	failOn map[string]bool
	copied []string
}

func (f *failingFS) CopyFile(src, dst string) error {
	if f.failOn[src] {
		return errors.New("disk full")
	}
	f.copied = append(f.copied, src)
	return f.FileSystem.CopyFile(src, dst)
}

type mockFileInfo struct {
	name  string
	size  int64
	isDir bool
}

func (m mockFileInfo) Name() string       { return m.name }
func (m mockFileInfo) Size() int64        { return m.size }
func (m mockFileInfo) Mode() fs.FileMode  { return 0 }
func (m mockFileInfo) ModTime() time.Time { return time.Time{} }
func (m mockFileInfo) IsDir() bool        { return m.isDir }
func (m mockFileInfo) Sys() interface{}   { return nil }

// statFS answers Stat from a fixed size table; everything else is unused.
type statFS struct {
	FileSystem
	sizes map[string]int64
}

func (s statFS) Stat(path string) (fs.FileInfo, error) {
	size, ok := s.sizes[path]
	if !ok {
		return nil, fs.ErrNotExist
	}
	return mockFileInfo{name: path, size: size}, nil
}
