package doctor

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mpm/internal/config"
	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/pkg/fileutil"
)

// ConfigFileCheck validates the config file. A missing file is fixable by
// writing the defaults.
type ConfigFileCheck struct {
	path    string
	missing bool
}

var (
	_ Check = (*ConfigFileCheck)(nil)
	_ Fixer = (*ConfigFileCheck)(nil)
)

// NewConfigFileCheck creates a check for the config file at path.
func NewConfigFileCheck(path string) *ConfigFileCheck {
	return &ConfigFileCheck{path: path}
}

// Name returns the unique identifier for this check.
func (c *ConfigFileCheck) Name() string {
	return "config-file"
}

// Category returns the grouping for this check.
func (c *ConfigFileCheck) Category() string {
	return "config"
}

// Run parses and validates the config file.
func (c *ConfigFileCheck) Run() *CheckResult {
	c.missing = false
	details := map[string]any{"path": c.path}

	data, err := fileutil.ReadFileWithLimit(c.path)
	if errors.Is(err, os.ErrNotExist) {
		c.missing = true
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no config file, using defaults",
			Details:  details,
			Fixable:  true,
			FixHint:  "run: mpm doctor --fix (or mpm config init)",
		}
	}
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("cannot read config file: %v", err),
			Details:  details,
		}
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("YAML syntax error: %v", err),
			Details:  details,
			FixHint:  "fix the file or regenerate it with: mpm config init --force",
		}
	}

	if errs := config.Validate(&cfg); len(errs) > 0 {
		details["issues"] = len(errs)
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  "invalid config: " + joinErrors(errs),
			Details:  details,
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("config file %s is valid", c.path),
		Details:  details,
	}
}

// CanFix reports whether the last Run found the file missing.
func (c *ConfigFileCheck) CanFix() bool {
	return c.missing
}

// Fix writes the default configuration.
func (c *ConfigFileCheck) Fix() []FixResult {
	if err := config.WriteDefault(c.path); err != nil {
		return []FixResult{{
			Path:        c.path,
			Description: "could not write default config",
			Error:       err,
		}}
	}
	c.missing = false
	return []FixResult{{
		Path:        c.path,
		Fixed:       true,
		Description: "wrote default config",
	}}
}
