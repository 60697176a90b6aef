package project

import (
	"fmt"
	"strings"
)

// Default toolchain settings.
const (
	DefaultToolchain     = "dotnet"
	DefaultTemplate      = "maui"
	DefaultAndroidDevice = "emulator-5554"
)

// Commands builds the toolchain command lines the manager runs.
type Commands struct {
	// Toolchain is the toolchain executable, e.g. "dotnet".
	Toolchain string
	// Template is the project template passed to the scaffold command.
	Template string
	// AndroidDevice is the device or emulator serial Android runs deploy to.
	AndroidDevice string
}

// DefaultCommands returns the commands for a stock dotnet MAUI setup.
func DefaultCommands() Commands {
	return Commands{
		Toolchain:     DefaultToolchain,
		Template:      DefaultTemplate,
		AndroidDevice: DefaultAndroidDevice,
	}
}

// Scaffold returns the command that generates a new project in place.
func (c Commands) Scaffold() string {
	return fmt.Sprintf("%s new %s", c.Toolchain, c.Template)
}

// Build returns the build command.
func (c Commands) Build() string {
	return c.Toolchain + " build"
}

// Restore returns the dependency restore command.
func (c Commands) Restore() string {
	return c.Toolchain + " restore"
}

// Clean returns the command that removes build outputs.
func (c Commands) Clean() string {
	return c.Toolchain + " clean"
}

// RunKind classifies how a run target is launched.
type RunKind int

const (
	// RunUnsupported targets produce no invocation.
	RunUnsupported RunKind = iota
	// RunAndroid deploys through a build with the Run target.
	RunAndroid
	// RunApple covers iOS and MacCatalyst, which have no launch command yet.
	RunApple
	// RunWindows launches through the toolchain's run verb.
	RunWindows
)

// ClassifyRunTarget matches target against the platform markers in order
// android, ios, maccatalyst, windows. Matching is case sensitive.
func ClassifyRunTarget(target string) RunKind {
	switch {
	case strings.Contains(target, "android"):
		return RunAndroid
	case strings.Contains(target, "ios"), strings.Contains(target, "maccatalyst"):
		return RunApple
	case strings.Contains(target, "windows"):
		return RunWindows
	default:
		return RunUnsupported
	}
}

// Run returns the command that launches the app for target. The boolean is
// false when the target has no launch command.
func (c Commands) Run(target string) (string, bool) {
	switch ClassifyRunTarget(target) {
	case RunAndroid:
		return fmt.Sprintf("%s build -t:Run -f %s -p:AndroidTarget=%s", c.Toolchain, target, c.AndroidDevice), true
	case RunWindows:
		return fmt.Sprintf("%s run --framework %s", c.Toolchain, target), true
	default:
		return "", false
	}
}
