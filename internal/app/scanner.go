package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"lapsecopy/internal/domain"
	appErrors "lapsecopy/internal/errors"
	"lapsecopy/internal/logging"
)

const mediaDirName = "DCIM"

type ScanResult struct {
	Sessions      []*domain.Session
	FilesExamined int
	Warnings      []string
}

// Scanner walks the camera folders under a mount point and aggregates the
// frames it finds.
type Scanner struct {
	FS     FileSystem
	Parser Parser
	Logger logging.Logger
	// Strict aborts the scan on the first frame that cannot be parsed
	// instead of skipping it with a warning.
	Strict     bool
	OnProgress ProgressFunc
}

func (s *Scanner) Scan(ctx context.Context, mountpoint string) (ScanResult, error) {
	if s.FS == nil || s.Parser.FS == nil || s.Parser.Exif == nil {
		return ScanResult{}, errors.New("scanner requires FS and Exif")
	}

	stop := s.Logger.Measure("Scanning " + mountpoint)
	defer stop()

	dcim := filepath.Join(mountpoint, mediaDirName)
	info, err := s.FS.Stat(dcim)
	if err != nil {
		return ScanResult{}, appErrors.Wrap(appErrors.NotFound, "stat", dcim, err)
	}
	if !info.IsDir() {
		return ScanResult{}, appErrors.Wrap(appErrors.NotFound, "stat", dcim, errors.New("not a directory"))
	}

	entries, err := s.FS.ReadDir(dcim)
	if err != nil {
		return ScanResult{}, appErrors.Wrap(appErrors.IOFailure, "readdir", dcim, err)
	}

	agg := NewAggregator()
	var result ScanResult

	for i, entry := range entries {
		folderPath := filepath.Join(dcim, entry.Name())
		if !entry.IsDir() {
			s.Logger.Verbosef("Skipping %s as not a directory", folderPath)
			s.reportProgress(i+1, len(entries))
			continue
		}
		folderID, ok := domain.MatchFolderName(entry.Name())
		if !ok {
			s.Logger.Verbosef("Skipping %s as it does not look like a camera folder", folderPath)
			s.reportProgress(i+1, len(entries))
			continue
		}

		files, err := s.FS.ReadDir(folderPath)
		if err != nil {
			return ScanResult{}, appErrors.Wrap(appErrors.IOFailure, "readdir", folderPath, err)
		}
		for _, f := range files {
			if f.IsDir() {
				continue
			}
			result.FilesExamined++

			img, err := s.Parser.Parse(ctx, domain.Candidate{
				Path:     filepath.Join(folderPath, f.Name()),
				FolderID: folderID,
			})
			if err != nil {
				if s.Strict || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return ScanResult{}, err
				}
				warning := skipWarning(f.Name(), err)
				s.Logger.Warnf("%s", warning)
				result.Warnings = append(result.Warnings, warning)
				continue
			}
			agg.Add(img)
		}
		s.reportProgress(i+1, len(entries))
	}

	result.Sessions = agg.Sessions()
	s.Logger.Verbosef("Examined %d files, found %d sessions (%d warnings)", result.FilesExamined, len(result.Sessions), len(result.Warnings))
	return result, nil
}

func skipWarning(name string, err error) string {
	if appErrors.KindOf(err) == appErrors.MissingMetadata {
		return fmt.Sprintf("No capture time for %s, skipped", name)
	}
	return fmt.Sprintf("Could not read %s, skipped: %v", name, err)
}

func (s *Scanner) reportProgress(current, total int) {
	if s.OnProgress != nil {
		s.OnProgress(current, total)
	}
}
