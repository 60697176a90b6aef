package doctor

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/state"
)

// StateFileCheck validates the remembered-project state file. A remembered
// project whose directory is gone is fixable by forgetting it.
type StateFileCheck struct {
	store *state.Store
	stale bool
}

var (
	_ Check = (*StateFileCheck)(nil)
	_ Fixer = (*StateFileCheck)(nil)
)

// NewStateFileCheck creates a check over the given state store.
func NewStateFileCheck(store *state.Store) *StateFileCheck {
	return &StateFileCheck{store: store}
}

// Name returns the unique identifier for this check.
func (c *StateFileCheck) Name() string {
	return "state-file"
}

// Category returns the grouping for this check.
func (c *StateFileCheck) Category() string {
	return "config"
}

// Run loads the state file and checks the remembered root.
func (c *StateFileCheck) Run() *CheckResult {
	c.stale = false
	details := map[string]any{"path": c.store.Path()}

	st, err := c.store.Load()
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  formatTOMLError(err),
			Details:  details,
			FixHint:  fmt.Sprintf("delete %s and run: mpm use <path>", c.store.Path()),
		}
	}

	root := st.Project.Root
	details["root"] = root

	switch {
	case root == "":
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  "no remembered project",
			Details:  details,
		}
	case !isDir(root):
		c.stale = true
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityWarning,
			Message:  fmt.Sprintf("remembered project %s no longer exists", root),
			Details:  details,
			Fixable:  true,
			FixHint:  "run: mpm doctor --fix (or mpm use <path>)",
		}
	default:
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityPass,
			Message:  fmt.Sprintf("remembered project %s", root),
			Details:  details,
		}
	}
}

// CanFix reports whether the last Run found a stale project.
func (c *StateFileCheck) CanFix() bool {
	return c.stale
}

// Fix forgets the stale project.
func (c *StateFileCheck) Fix() []FixResult {
	if err := c.store.Forget(); err != nil {
		return []FixResult{{
			Path:        c.store.Path(),
			Description: "could not clear remembered project",
			Error:       err,
		}}
	}
	c.stale = false
	return []FixResult{{
		Path:        c.store.Path(),
		Fixed:       true,
		Description: "cleared remembered project",
	}}
}

// formatTOMLError extracts position information from TOML decode errors.
func formatTOMLError(err error) string {
	var decodeErr *toml.DecodeError
	if errors.As(err, &decodeErr) {
		row, col := decodeErr.Position()
		return fmt.Sprintf("TOML syntax error at line %d, column %d: %s",
			row, col, decodeErr.Error())
	}

	return fmt.Sprintf("TOML error: %v", err)
}
