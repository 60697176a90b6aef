package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// fder is implemented by *os.File and terminal wrappers around it.
type fder interface {
	Fd() uintptr
}

// IsTTY reports whether w is attached to a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(fder)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SupportsColor reports whether ANSI colors should be written to w.
// NO_COLOR and TERM=dumb turn colors off; CLICOLOR_FORCE turns them on for
// writers that are not terminals, such as a pager pipe.
func SupportsColor(w io.Writer) bool {
	return colorEnabled(IsTTY(w), os.LookupEnv)
}

func colorEnabled(isTTY bool, lookup func(string) (string, bool)) bool {
	if _, ok := lookup("NO_COLOR"); ok {
		return false
	}
	if v, _ := lookup("TERM"); v == "dumb" {
		return false
	}
	if v, ok := lookup("CLICOLOR_FORCE"); ok && v != "" && v != "0" {
		return true
	}
	return isTTY
}
