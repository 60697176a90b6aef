package fileutil

import (
	"io"
	"os"

	"github.com/thoreinstein/mpm/internal/errors"
)

// MaxFileSize bounds the project, config and state files mpm reads (1MB).
const MaxFileSize = 1 << 20

// ErrFileTooLarge is returned when a file is larger than the read limit.
var ErrFileTooLarge = errors.New("file too large")

// ReadFileWithLimit reads path, refusing files larger than MaxFileSize.
func ReadFileWithLimit(path string) ([]byte, error) {
	return ReadFileLimit(path, MaxFileSize)
}

// ReadFileLimit reads path, refusing files larger than limit bytes. The
// size is checked before reading and again while reading, since the file
// may grow in between.
func ReadFileLimit(path string, limit int64) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening file")
	}
	defer f.Close()

	tooLarge := func(size int64) error {
		return errors.Wrapf(ErrFileTooLarge, "%s is %d bytes, limit is %d", path, size, limit)
	}

	if info, err := f.Stat(); err == nil && info.Size() > limit {
		return nil, tooLarge(info.Size())
	}

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, errors.Wrap(err, "reading file")
	}
	if int64(len(data)) > limit {
		return nil, tooLarge(int64(len(data)))
	}

	return data, nil
}
