package exif

import (
	"bytes"
	"context"
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	appErrors "lapsecopy/internal/errors"
)

const (
	tagExifIFDPointer   = 0x8769
	tagDateTimeOriginal = 0x9003
	typeASCII           = 2
	typeLong            = 4
)

// jpegWithCaptureTime builds a minimal JPEG whose APP1 block holds a
// big-endian TIFF with IFD0 -> Exif IFD -> DateTimeOriginal = value.
// An empty value leaves the Exif IFD without the tag.
func jpegWithCaptureTime(value string) []byte {
	var tiff bytes.Buffer
	be := binary.BigEndian
	put16 := func(v uint16) { binary.Write(&tiff, be, v) }
	put32 := func(v uint32) { binary.Write(&tiff, be, v) }

	// Header and IFD0 with a single pointer to the Exif IFD at offset 26.
	tiff.WriteString("MM")
	put16(42)
	put32(8)
	put16(1)
	put16(tagExifIFDPointer)
	put16(typeLong)
	put32(1)
	put32(26)
	put32(0)

	// Exif IFD at 26; the string lives right after it, at 44.
	if value == "" {
		put16(0)
		put32(0)
	} else {
		data := append([]byte(value), 0)
		put16(1)
		put16(tagDateTimeOriginal)
		put16(typeASCII)
		put32(uint32(len(data)))
		put32(44)
		put32(0)
		tiff.Write(data)
	}

	var out bytes.Buffer
	out.Write([]byte{0xFF, 0xD8, 0xFF, 0xE1})
	binary.Write(&out, be, uint16(2+6+tiff.Len()))
	out.WriteString("Exif\x00\x00")
	out.Write(tiff.Bytes())
	out.Write([]byte{0xFF, 0xD9})
	return out.Bytes()
}

func writeFrame(t *testing.T, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "G0041234.JPG")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestDateTimeOriginalReadsTag(t *testing.T) {
	path := writeFrame(t, jpegWithCaptureTime("2024:06:01 12:34:56"))

	got, err := Reader{}.DateTimeOriginal(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 6, 1, 12, 34, 56, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestDateTimeOriginalMalformedValue(t *testing.T) {
	path := writeFrame(t, jpegWithCaptureTime("2024-06-01 12:34:56"))

	_, err := Reader{}.DateTimeOriginal(context.Background(), path)
	if !errors.Is(err, appErrors.ErrMissingCaptureTime) {
		t.Fatalf("expected missing capture time, got %v", err)
	}
}

func TestDateTimeOriginalTagAbsent(t *testing.T) {
	path := writeFrame(t, jpegWithCaptureTime(""))

	_, err := Reader{}.DateTimeOriginal(context.Background(), path)
	if !errors.Is(err, appErrors.ErrMissingCaptureTime) {
		t.Fatalf("expected missing capture time, got %v", err)
	}
}

func TestDateTimeOriginalWithoutExif(t *testing.T) {
	path := writeFrame(t, []byte("not a jpeg"))

	_, err := Reader{}.DateTimeOriginal(context.Background(), path)
	if !errors.Is(err, appErrors.ErrMissingCaptureTime) {
		t.Fatalf("expected missing capture time, got %v", err)
	}
}

func TestDateTimeOriginalMissingFile(t *testing.T) {
	_, err := Reader{}.DateTimeOriginal(context.Background(), filepath.Join(t.TempDir(), "nope.JPG"))
	if err == nil || errors.Is(err, appErrors.ErrMissingCaptureTime) {
		t.Fatalf("expected open error, got %v", err)
	}
}

func TestDateTimeOriginalHonorsCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := (Reader{}).DateTimeOriginal(ctx, "ignored"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
