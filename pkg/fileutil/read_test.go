package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mpm/internal/errors"
)

func TestReadFileWithLimit(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		size    int64
		wantErr bool
	}{
		{"small file", 100, false},
		{"exact limit", MaxFileSize, false},
		{"too large", MaxFileSize + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name)
			f, err := os.Create(path)
			require.NoError(t, err)
			require.NoError(t, f.Truncate(tt.size))
			require.NoError(t, f.Close())

			data, err := ReadFileWithLimit(path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrFileTooLarge))
				return
			}
			require.NoError(t, err)
			assert.Len(t, data, int(tt.size))
		})
	}
}

func TestReadFileLimit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "App.csproj")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 16)), 0o644))

	data, err := ReadFileLimit(path, 16)
	require.NoError(t, err)
	assert.Len(t, data, 16)

	_, err = ReadFileLimit(path, 15)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileTooLarge))
	assert.Contains(t, err.Error(), "is 16 bytes, limit is 15")
}

func TestReadFileWithLimit_Missing(t *testing.T) {
	_, err := ReadFileWithLimit(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
