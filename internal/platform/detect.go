package platform

import "runtime"

// HostStatus says whether a platform can be built on the current machine.
type HostStatus string

const (
	// StatusSupported means the host OS can build and deploy the platform.
	StatusSupported HostStatus = "supported"

	// StatusUnsupported means the platform needs a different host OS.
	StatusUnsupported HostStatus = "unsupported"
)

// hostRequirements lists the GOOS a platform must be built on. Platforms
// absent from the table build anywhere the toolchain runs.
var hostRequirements = map[string]string{
	IOS:         "darwin",
	MacCatalyst: "darwin",
	Windows:     "windows",
}

// DetectionResult describes a platform's buildability on a host.
type DetectionResult struct {
	Name   string
	Status HostStatus
	// Requires is the GOOS needed, empty when any host works.
	Requires string
}

// DetectPlatform checks a single platform against goos.
// Returns nil if the platform name is not canonical.
func DetectPlatform(name, goos string) *DetectionResult {
	if !Valid(name) {
		return nil
	}

	requires := hostRequirements[name]
	status := StatusSupported
	if requires != "" && requires != goos {
		status = StatusUnsupported
	}

	return &DetectionResult{
		Name:     name,
		Status:   status,
		Requires: requires,
	}
}

// DetectHost returns results for every platform on the running host, in
// canonical order.
func DetectHost() []*DetectionResult {
	names := Names()
	results := make([]*DetectionResult, 0, len(names))
	for _, name := range names {
		results = append(results, DetectPlatform(name, runtime.GOOS))
	}
	return results
}
