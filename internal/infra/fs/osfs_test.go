package fs

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestCopyFileDuplicatesBytes(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "G0041234.JPG")
	dst := filepath.Join(dir, "00000001.JPG")
	if err := os.WriteFile(src, []byte("frame-bytes"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := (OSFS{}).CopyFile(src, dst); err != nil {
		t.Fatalf("copy: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "frame-bytes" {
		t.Fatalf("unexpected content %q", got)
	}
	if _, err := os.Stat(src); err != nil {
		t.Fatalf("source should remain: %v", err)
	}
}

func TestMkdirReportsExisting(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "GoPro_001")
	osfs := OSFS{}
	if err := osfs.Mkdir(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := osfs.Mkdir(dir, 0o755); !errors.Is(err, fs.ErrExist) {
		t.Fatalf("expected ErrExist, got %v", err)
	}
	if info, err := osfs.Stat(dir); err != nil || !info.IsDir() {
		t.Fatalf("expected directory to exist: %v", err)
	}
}

func TestMkdirAllCreatesParents(t *testing.T) {
	dest := filepath.Join(t.TempDir(), "timelapse", "2024")
	osfs := OSFS{}
	if err := osfs.MkdirAll(dest, 0o755); err != nil {
		t.Fatalf("mkdirall: %v", err)
	}
	if err := osfs.MkdirAll(dest, 0o755); err != nil {
		t.Fatalf("mkdirall on existing directory: %v", err)
	}
	if err := osfs.Mkdir(filepath.Join(dest, "GoPro_001"), 0o755); err != nil {
		t.Fatalf("mkdir under created parent: %v", err)
	}
}
