package app

import (
	"path/filepath"
	"strconv"
	"strings"

	"lapsecopy/internal/domain"
	appErrors "lapsecopy/internal/errors"
)

// CounterStore persists the last used session counter in a marker file in
// the destination base directory.
type CounterStore struct {
	FS FileSystem
}

// Read returns the stored counter. A missing or unparsable marker reads as 0.
func (c CounterStore) Read(baseDir string) int {
	data, err := c.FS.ReadFile(c.path(baseDir))
	if err != nil {
		return 0
	}
	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || value < 0 {
		return 0
	}
	return value
}

func (c CounterStore) Write(baseDir string, value int) error {
	path := c.path(baseDir)
	if err := c.FS.WriteFile(path, []byte(strconv.Itoa(value)), 0o644); err != nil {
		return appErrors.Wrap(appErrors.IOFailure, "write", path, err)
	}
	return nil
}

func (c CounterStore) path(baseDir string) string {
	return filepath.Join(baseDir, domain.CounterFileName)
}
