package exif

import (
	"context"
	"fmt"
	"os"
	"time"

	appErrors "lapsecopy/internal/errors"

	goexif "github.com/rwcarlsen/goexif/exif"
)

const captureLayout = "2006:01:02 15:04:05"

type Reader struct{}

// DateTimeOriginal returns the original capture time (tag 0x9003). Files
// without EXIF, or without that tag, yield ErrMissingCaptureTime. Unlike a
// general photo importer there is no fallback to DateTime or mtime; frame
// order depends on the capture clock.
func (Reader) DateTimeOriginal(ctx context.Context, path string) (time.Time, error) {
	select {
	case <-ctx.Done():
		return time.Time{}, ctx.Err()
	default:
	}

	file, err := os.Open(path)
	if err != nil {
		return time.Time{}, err
	}
	defer file.Close()

	x, err := goexif.Decode(file)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", appErrors.ErrMissingCaptureTime, err)
	}

	tag, err := x.Get(goexif.DateTimeOriginal)
	if err != nil {
		return time.Time{}, appErrors.ErrMissingCaptureTime
	}
	str, err := tag.StringVal()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", appErrors.ErrMissingCaptureTime, err)
	}
	parsed, err := time.Parse(captureLayout, str)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", appErrors.ErrMissingCaptureTime, err)
	}
	return parsed, nil
}
