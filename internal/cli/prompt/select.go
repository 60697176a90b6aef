// Package prompt provides interactive CLI prompts for user input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"

	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/platform"
)

// Sentinel errors for target selection.
var (
	ErrNoTargets          = errors.New("no targets to select from")
	ErrInvalidSelection   = errors.New("invalid selection")
	ErrSelectionCancelled = errors.New("selection cancelled")
)

// FindFunc picks an index from a list the way fuzzyfinder.Find does.
type FindFunc func(entries []platform.Entry) (int, error)

// Selector handles interactive prompts.
type Selector struct {
	reader io.Reader
	writer io.Writer
	find   FindFunc
}

// NewSelector creates a Selector using stdin and stdout. It uses the fuzzy
// finder only when interactive is true.
func NewSelector(interactive bool) *Selector {
	s := &Selector{
		reader: os.Stdin,
		writer: os.Stdout,
	}
	if interactive {
		s.find = fuzzyFind
	}
	return s
}

// NewSelectorWithIO creates a numbered-list Selector with custom reader and
// writer.
func NewSelectorWithIO(r io.Reader, w io.Writer) *Selector {
	return &Selector{
		reader: r,
		writer: w,
	}
}

// WithFinder returns a copy of s that selects through find.
func (s *Selector) WithFinder(find FindFunc) *Selector {
	c := *s
	c.find = find
	return &c
}

// SelectTarget asks the user to choose a target platform.
//
// Returns:
//   - ErrNoTargets if the list is empty
//   - The entry if only one exists (auto-selects without prompting)
//   - The entry chosen in the fuzzy finder, or from a numbered list
//   - ErrInvalidSelection if a numbered selection is out of range
//   - ErrSelectionCancelled on EOF or when the finder is aborted
func (s *Selector) SelectTarget(entries []platform.Entry) (*platform.Entry, error) {
	if len(entries) == 0 {
		return nil, ErrNoTargets
	}

	if len(entries) == 1 {
		return &entries[0], nil
	}

	if s.find != nil {
		idx, err := s.find(entries)
		if err != nil {
			if errors.Is(err, fuzzyfinder.ErrAbort) {
				return nil, ErrSelectionCancelled
			}
			return nil, errors.Wrap(err, "selecting target")
		}
		return &entries[idx], nil
	}

	fmt.Fprintln(s.writer, "Multiple target platforms declared:")
	for i, e := range entries {
		fmt.Fprintf(s.writer, "  [%d] %s (%s)\n", i+1, e.Name, e.Identifier)
	}
	fmt.Fprintf(s.writer, "Select [1]: ")

	reader := bufio.NewReader(s.reader)
	input, err := reader.ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && input == "":
		return nil, ErrSelectionCancelled
	case err != nil && !errors.Is(err, io.EOF):
		return nil, errors.Wrap(err, "reading selection")
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return &entries[0], nil
	}

	selection, err := strconv.Atoi(input)
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidSelection, "%q is not a number", input)
	}

	if selection < 1 || selection > len(entries) {
		return nil, errors.Wrapf(ErrInvalidSelection, "%d is out of range [1-%d]", selection, len(entries))
	}

	return &entries[selection-1], nil
}

// Confirm prints question and returns true only if the user answers "y" or
// "yes" (case-insensitive).
func (s *Selector) Confirm(question string) bool {
	fmt.Fprintf(s.writer, "%s [y/N]: ", question)

	reader := bufio.NewReader(s.reader)
	response, err := reader.ReadString('\n')
	if err != nil && response == "" {
		return false
	}

	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func fuzzyFind(entries []platform.Entry) (int, error) {
	return fuzzyfinder.Find(
		entries,
		func(i int) string {
			return fmt.Sprintf("%s (%s)", entries[i].Name, entries[i].Identifier)
		},
		fuzzyfinder.WithPromptString("run target> "),
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i == -1 {
				return ""
			}
			e := entries[i]
			host := platform.DetectPlatform(e.Name, runtime.GOOS)
			return fmt.Sprintf("Platform:  %s\nFramework: %s\nHost:      %s", e.Name, e.Identifier, host.Status)
		}),
	)
}
