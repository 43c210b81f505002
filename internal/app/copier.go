package app

import (
	"context"
	"errors"
	"path/filepath"

	"lapsecopy/internal/domain"
	appErrors "lapsecopy/internal/errors"
	"lapsecopy/internal/logging"
)

// Copier writes a session's frames into a destination directory as
// 00000001<ext>, 00000002<ext>, ...
type Copier struct {
	FS         FileSystem
	Logger     logging.Logger
	OnProgress ProgressFunc
}

// CopySession copies ordered into destDir and returns the number of files
// copied. The first failure stops the session; files already copied stay.
func (c *Copier) CopySession(ctx context.Context, destDir string, ordered []domain.Image) (int, error) {
	if c.FS == nil {
		return 0, errors.New("copier requires FS")
	}

	total := len(ordered)
	for i, img := range ordered {
		select {
		case <-ctx.Done():
			return i, ctx.Err()
		default:
		}

		target := filepath.Join(destDir, domain.FrameFileName(i+1, img.Ext))
		if err := c.FS.CopyFile(img.Path, target); err != nil {
			return i, appErrors.Wrap(appErrors.CopyFailure, "copy", img.Path, err)
		}
		c.Logger.Verbosef("Copied %s -> %s", img.Path, target)

		if c.OnProgress != nil {
			c.OnProgress(i+1, total)
		}
	}
	return total, nil
}
