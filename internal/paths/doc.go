// Package paths resolves the locations mpm reads and writes outside of a
// project: its configuration directory and its state directory.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base
// Directory compliance. On Linux paths follow XDG conventions
// (~/.config/mpm, ~/.local/state/mpm); macOS and Windows use their native
// application directories.
//
// Both locations can be redirected with environment variables, which is
// what tests use:
//
//	MPM_CONFIG_DIR  overrides ConfigDir()
//	MPM_STATE_DIR   overrides StateDir()
package paths
