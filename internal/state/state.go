// Package state persists what mpm remembers between invocations, currently
// the last project root chosen with "mpm use".
package state

import (
	"os"
	"path/filepath"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/paths"
	"github.com/thoreinstein/mpm/pkg/fileutil"
)

// State is the content of the state file.
type State struct {
	Project Project `toml:"project"`
}

// Project is the remembered project.
type Project struct {
	Root      string    `toml:"root"`
	UpdatedAt time.Time `toml:"updated_at,omitempty"`
}

// Store reads and writes the state file.
type Store struct {
	path string
}

// NewStore returns a store for the state file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Default returns a store for the standard state file location.
func Default() *Store {
	return NewStore(paths.StateFile())
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state file. A missing file yields an empty State.
func (s *Store) Load() (*State, error) {
	data, err := fileutil.ReadFileWithLimit(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &State{}, nil
		}
		return nil, errors.Wrap(err, "reading state file")
	}

	var st State
	if err := toml.Unmarshal(data, &st); err != nil {
		return nil, errors.Wrapf(err, "parsing state file %s", s.path)
	}
	return &st, nil
}

// Save writes st atomically, creating the state directory if needed.
func (s *Store) Save(st *State) error {
	if err := paths.EnsureDir(filepath.Dir(s.path), 0o755); err != nil {
		return errors.Wrap(err, "creating state directory")
	}
	if err := fileutil.AtomicWriteTOML(s.path, st, 0o644); err != nil {
		return errors.Wrap(err, "writing state file")
	}
	return nil
}

// Remember records root as the current project.
func (s *Store) Remember(root string) error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	st.Project = Project{Root: root, UpdatedAt: time.Now().UTC().Truncate(time.Second)}
	return s.Save(st)
}

// Forget clears the remembered project.
func (s *Store) Forget() error {
	st, err := s.Load()
	if err != nil {
		return err
	}
	st.Project = Project{}
	return s.Save(st)
}

// Root returns the remembered project root, or "" when none is stored.
func (s *Store) Root() (string, error) {
	st, err := s.Load()
	if err != nil {
		return "", err
	}
	return st.Project.Root, nil
}
