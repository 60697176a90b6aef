package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/thoreinstein/mpm/internal/project"
	"github.com/thoreinstein/mpm/internal/shell"
)

// LookPathFunc resolves an executable name the way exec.LookPath does.
type LookPathFunc func(file string) (string, error)

// ToolchainCheck verifies the toolchain executable is on PATH.
type ToolchainCheck struct {
	toolchain string
	lookPath  LookPathFunc
}

var _ Check = (*ToolchainCheck)(nil)

// NewToolchainCheck creates a check for the named toolchain executable.
func NewToolchainCheck(toolchain string) *ToolchainCheck {
	return &ToolchainCheck{toolchain: toolchain, lookPath: exec.LookPath}
}

// Name returns the unique identifier for this check.
func (c *ToolchainCheck) Name() string {
	return "toolchain"
}

// Category returns the grouping for this check.
func (c *ToolchainCheck) Category() string {
	return "toolchain"
}

// Run looks the toolchain up on PATH.
func (c *ToolchainCheck) Run() *CheckResult {
	path, err := c.lookPath(c.toolchain)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("%q not found on PATH", c.toolchain),
			Details:  map[string]any{"toolchain": c.toolchain, "error": err.Error()},
			FixHint:  "install the .NET SDK with the MAUI workload, or set 'toolchain' in config.yaml",
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("found %s", path),
		Details:  map[string]any{"toolchain": c.toolchain, "path": path},
	}
}

// ShellCheck verifies the shell used to run commands is available.
type ShellCheck struct {
	family   shell.Family
	lookPath LookPathFunc
}

var _ Check = (*ShellCheck)(nil)

// NewShellCheck creates a check for the given shell family.
func NewShellCheck(family shell.Family) *ShellCheck {
	return &ShellCheck{family: family, lookPath: exec.LookPath}
}

// Name returns the unique identifier for this check.
func (c *ShellCheck) Name() string {
	return "shell"
}

// Category returns the grouping for this check.
func (c *ShellCheck) Category() string {
	return "toolchain"
}

// Run looks the family's shell program up.
func (c *ShellCheck) Run() *CheckResult {
	program := c.family.Program()
	details := map[string]any{"family": string(c.family), "program": program}

	path, err := c.lookPath(program)
	if err != nil {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityError,
			Message:  fmt.Sprintf("%s shell %q is not available", c.family, program),
			Details:  details,
			FixHint:  "set 'shell' in config.yaml to a family available on this host",
		}
	}

	details["path"] = path
	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%s shell at %s", c.family, path),
		Details:  details,
	}
}

// ProjectCheck reports on the selected project.
type ProjectCheck struct {
	project project.Context
}

var _ Check = (*ProjectCheck)(nil)

// NewProjectCheck creates a check for the given project context.
func NewProjectCheck(pc project.Context) *ProjectCheck {
	return &ProjectCheck{project: pc}
}

// Name returns the unique identifier for this check.
func (c *ProjectCheck) Name() string {
	return "project"
}

// Category returns the grouping for this check.
func (c *ProjectCheck) Category() string {
	return "project"
}

// Run classifies the project directory and descriptor.
func (c *ProjectCheck) Run() *CheckResult {
	pc := c.project
	result := &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Details: map[string]any{
			"root":       pc.Root,
			"descriptor": pc.DescriptorPath,
			"state":      pc.State().String(),
		},
	}

	switch {
	case pc.Root == "":
		result.Status = SeverityWarning
		result.Message = "no project directory selected"
		result.FixHint = "run: mpm use <path>"
	case !isDir(pc.Root):
		result.Status = SeverityError
		result.Message = fmt.Sprintf("project directory %s does not exist", pc.Root)
		result.FixHint = "run: mpm use <path> or mpm create"
	case pc.DescriptorPath == "":
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("no .csproj file in %s", pc.Root)
		result.FixHint = "run: mpm create"
	case !pc.Application:
		result.Status = SeverityWarning
		result.Message = fmt.Sprintf("%s is not a MAUI application (needs UseMaui=true and OutputType=Exe)", pc.DescriptorPath)
	default:
		result.Status = SeverityPass
		result.Message = fmt.Sprintf("MAUI application at %s", pc.DescriptorPath)
	}

	return result
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func joinErrors(errs []error) string {
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return strings.Join(msgs, "; ")
}
