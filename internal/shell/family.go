package shell

import (
	"runtime"
	"strings"
)

// Family identifies the kind of shell available on a host.
type Family string

const (
	// FamilyPOSIX covers Linux, macOS and the BSDs.
	FamilyPOSIX Family = "posix"

	// FamilyWindows runs commands through PowerShell.
	FamilyWindows Family = "windows"
)

// Families lists every supported family.
func Families() []Family {
	return []Family{FamilyPOSIX, FamilyWindows}
}

// ParseFamily converts a configuration value to a Family. The empty string
// selects the host family.
func ParseFamily(s string) (Family, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return HostFamily(), true
	case string(FamilyPOSIX):
		return FamilyPOSIX, true
	case string(FamilyWindows):
		return FamilyWindows, true
	default:
		return "", false
	}
}

// HostFamily returns the family of the running operating system.
func HostFamily() Family {
	return familyFor(runtime.GOOS)
}

func familyFor(goos string) Family {
	if goos == "windows" {
		return FamilyWindows
	}
	return FamilyPOSIX
}

// Spec is a fully resolved process invocation.
type Spec struct {
	Program string
	Args    []string
	Dir     string
}

// strategy builds the invocation for a command line.
type strategy func(dir, commandLine string) Spec

var strategies = map[Family]strategy{
	FamilyPOSIX: func(dir, commandLine string) Spec {
		return Spec{Program: "/bin/sh", Args: []string{"-c", commandLine}, Dir: dir}
	},
	FamilyWindows: func(dir, commandLine string) Spec {
		return Spec{
			Program: "powershell",
			Args:    []string{"-NoProfile", "-NonInteractive", "-Command", commandLine},
			Dir:     dir,
		}
	},
}

// Build returns the invocation of commandLine in dir for family f.
// Unknown families fall back to the host family.
func (f Family) Build(dir, commandLine string) Spec {
	s, ok := strategies[f]
	if !ok {
		s = strategies[HostFamily()]
	}
	return s(dir, commandLine)
}

// Program returns the shell executable the family launches.
func (f Family) Program() string {
	return f.Build("", "").Program
}
