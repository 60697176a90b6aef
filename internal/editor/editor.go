// Package editor launches the user's text editor on a file.
package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/mpm/internal/errors"
)

// EnvEditor overrides every other editor setting for mpm.
const EnvEditor = "MPM_EDITOR"

// Open runs the user's editor on path, attached to the terminal.
func Open(path string) error {
	cmd := Command(path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return errors.Wrapf(err, "running editor %s", cmd.Path)
	}
	return nil
}

// Command builds the editor invocation for path. Editor settings may carry
// arguments, as in "code --wait".
func Command(path string) *exec.Cmd {
	fields := strings.Fields(detectEditor())
	args := append(fields[1:], path)
	return exec.Command(fields[0], args...)
}

// detectEditor returns the editor command to use.
// Fallback chain: $MPM_EDITOR → $EDITOR → $VISUAL → nano → vi
func detectEditor() string {
	for _, env := range []string{EnvEditor, "EDITOR", "VISUAL"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			return v
		}
	}

	if _, err := exec.LookPath("nano"); err == nil {
		return "nano"
	}

	return "vi"
}
