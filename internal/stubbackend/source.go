package stubbackend

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/afero"
)

// errProfileNotFound means the profile file does not exist.
var errProfileNotFound = errors.New("profile not found")

// fileSource reads the profile JSON from a file on every request, so edits
// show up without a restart.
type fileSource struct {
	fs   afero.Fs
	path string
}

func (s *fileSource) load() ([]byte, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, os.ErrNotExist) {
		return nil, errProfileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read profile file: %w", err)
	}
	return data, nil
}
