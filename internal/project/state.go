package project

import (
	"os"
)

// State is the derived lifecycle state of a project context.
type State int

const (
	// Unset means no project root has been chosen.
	Unset State = iota
	// Invalid means a root is set but it does not hold an application project.
	Invalid
	// Valid means the root holds an application project.
	Valid
)

// String returns the lowercase state name.
func (s State) String() string {
	switch s {
	case Unset:
		return "unset"
	case Invalid:
		return "invalid"
	case Valid:
		return "valid"
	default:
		return "unknown"
	}
}

// DeriveState computes the project state from the root path, whether that
// root exists on disk, and whether its descriptor declares an application.
func DeriveState(root string, rootExists, application bool) State {
	switch {
	case root == "":
		return Unset
	case rootExists && application:
		return Valid
	default:
		return Invalid
	}
}

// Context is the remembered location and kind of the current project.
type Context struct {
	Root           string `json:"root"`
	DescriptorPath string `json:"descriptor,omitempty"`
	Application    bool   `json:"application"`
}

// State derives the state of c, consulting the filesystem for the root.
func (c Context) State() State {
	return DeriveState(c.Root, dirExists(c.Root), c.Application)
}

func dirExists(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
