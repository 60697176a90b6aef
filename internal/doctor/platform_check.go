package doctor

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/thoreinstein/mpm/internal/platform"
)

// PlatformCheck reports declared target platforms that cannot be built on
// this host.
type PlatformCheck struct {
	declared platform.Map
	goos     string
}

var _ Check = (*PlatformCheck)(nil)

// NewPlatformCheck creates a check over the project's declared platforms.
func NewPlatformCheck(declared platform.Map) *PlatformCheck {
	return &PlatformCheck{declared: declared, goos: runtime.GOOS}
}

// Name returns the unique identifier for this check.
func (c *PlatformCheck) Name() string {
	return "target-platforms"
}

// Category returns the grouping for this check.
func (c *PlatformCheck) Category() string {
	return "project"
}

// Run compares declared platforms with what the host can build.
func (c *PlatformCheck) Run() *CheckResult {
	entries := c.declared.Entries()
	if len(entries) == 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message:  "no target platforms declared",
		}
	}

	platforms := make(map[string]any, len(entries))
	var unsupported []string
	for _, e := range entries {
		r := platform.DetectPlatform(e.Name, c.goos)
		platforms[e.Name] = map[string]any{
			"framework": e.Identifier,
			"status":    string(r.Status),
		}
		if r.Status == platform.StatusUnsupported {
			unsupported = append(unsupported, fmt.Sprintf("%s (needs %s)", e.Name, r.Requires))
		}
	}

	details := map[string]any{
		"platforms":   platforms,
		"host":        c.goos,
		"unsupported": len(unsupported),
		"total":       len(entries),
	}

	if len(unsupported) > 0 {
		return &CheckResult{
			Name:     c.Name(),
			Category: c.Category(),
			Status:   SeverityInfo,
			Message: fmt.Sprintf("%d of %d platform(s) cannot be built on %s: %s",
				len(unsupported), len(entries), c.goos, strings.Join(unsupported, ", ")),
			Details: details,
		}
	}

	return &CheckResult{
		Name:     c.Name(),
		Category: c.Category(),
		Status:   SeverityPass,
		Message:  fmt.Sprintf("%d platform(s) buildable on %s", len(entries), c.goos),
		Details:  details,
	}
}
