package app

import (
	"context"
	"errors"
	"path/filepath"

	"lapsecopy/internal/domain"
	appErrors "lapsecopy/internal/errors"
)

type Parser struct {
	FS   FileSystem
	Exif ExifReader
}

// Parse reads a candidate's name, size and capture time. A name that does not
// match the frame pattern yields an Image with SessionID zero and no error.
// A matching frame without a capture time yields a MissingMetadata error.
func (p Parser) Parse(ctx context.Context, c domain.Candidate) (domain.Image, error) {
	name := filepath.Base(c.Path)
	sessionID, sequence, ok := domain.MatchImageName(name)
	if !ok {
		return domain.Image{Path: c.Path, FolderID: c.FolderID}, nil
	}

	info, err := p.FS.Stat(c.Path)
	if err != nil {
		return domain.Image{}, appErrors.Wrap(appErrors.IOFailure, "stat", c.Path, err)
	}

	takenAt, err := p.Exif.DateTimeOriginal(ctx, c.Path)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return domain.Image{}, err
		}
		if errors.Is(err, appErrors.ErrMissingCaptureTime) {
			return domain.Image{}, appErrors.Wrap(appErrors.MissingMetadata, "parse", c.Path, err)
		}
		return domain.Image{}, appErrors.Wrap(appErrors.ExifFailure, "exif", c.Path, err)
	}

	return domain.Image{
		Path:        c.Path,
		FolderID:    c.FolderID,
		SessionID:   sessionID,
		Sequence:    sequence,
		CaptureTime: takenAt,
		Size:        info.Size(),
		Ext:         filepath.Ext(name),
	}, nil
}
