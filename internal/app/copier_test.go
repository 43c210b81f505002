package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"lapsecopy/internal/domain"
	appErrors "lapsecopy/internal/errors"
	osfs "lapsecopy/internal/infra/fs"
)

func writeFrames(t *testing.T, dir string, names ...string) []domain.Image {
	t.Helper()
	var images []domain.Image
	for _, name := range names {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(name), 0o644); err != nil {
			t.Fatalf("write: %v", err)
		}
		images = append(images, domain.Image{Path: path, Ext: filepath.Ext(name)})
	}
	return images
}

func TestCopierNumbersFramesAndReportsProgress(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	images := writeFrames(t, src, "G0040002.JPG", "G0040001.JPG")

	var progress [][2]int
	c := Copier{
		FS: osfs.OSFS{},
		OnProgress: func(current, total int) {
			progress = append(progress, [2]int{current, total})
		},
	}
	copied, err := c.CopySession(context.Background(), dst, images)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if copied != 2 {
		t.Fatalf("expected 2 copied, got %d", copied)
	}

	got, err := os.ReadFile(filepath.Join(dst, "00000001.JPG"))
	if err != nil || string(got) != "G0040002.JPG" {
		t.Fatalf("unexpected first frame %q (%v)", got, err)
	}
	got, err = os.ReadFile(filepath.Join(dst, "00000002.JPG"))
	if err != nil || string(got) != "G0040001.JPG" {
		t.Fatalf("unexpected second frame %q (%v)", got, err)
	}
	if len(progress) != 2 || progress[1] != [2]int{2, 2} {
		t.Fatalf("unexpected progress %v", progress)
	}
}

func TestCopierStopsOnFailureWithoutRollback(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	images := writeFrames(t, src, "G0040001.JPG", "G0040002.JPG", "G0040003.JPG")

	fsys := &failingFS{FileSystem: osfs.OSFS{}, failOn: map[string]bool{images[1].Path: true}}
	c := Copier{FS: fsys}
	copied, err := c.CopySession(context.Background(), dst, images)
	if appErrors.KindOf(err) != appErrors.CopyFailure {
		t.Fatalf("expected copy failure, got %v", err)
	}
	if copied != 1 {
		t.Fatalf("expected 1 copied, got %d", copied)
	}
	if _, err := os.Stat(filepath.Join(dst, "00000001.JPG")); err != nil {
		t.Fatalf("first frame should remain: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dst, "00000003.JPG")); !os.IsNotExist(err) {
		t.Fatalf("third frame should not be copied")
	}
	if _, err := os.Stat(images[1].Path); err != nil {
		t.Fatalf("source must be untouched: %v", err)
	}
}
