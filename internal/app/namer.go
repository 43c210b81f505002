package app

import (
	"errors"
	"io/fs"
	"path/filepath"

	"lapsecopy/internal/domain"
	appErrors "lapsecopy/internal/errors"
)

// Namer picks the first free <prefix>_<NNN> directory under a base directory.
type Namer struct {
	FS FileSystem
}

// Resolve creates and returns the first unused session directory, starting
// at counter start, together with the counter it used. Taken names are
// skipped; creating the directory is the existence check.
func (n Namer) Resolve(baseDir, prefix string, start int) (string, int, error) {
	if n.FS == nil {
		return "", 0, errors.New("namer requires FS")
	}
	counter := start
	for {
		dir := filepath.Join(baseDir, domain.SessionDirName(prefix, counter))
		err := n.FS.Mkdir(dir, 0o755)
		if err == nil {
			return dir, counter, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", 0, appErrors.Wrap(appErrors.IOFailure, "mkdir", dir, err)
		}
		counter++
	}
}
