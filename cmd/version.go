// Package cmd holds the mpm build metadata stamped in at release time with
// -ldflags "-X github.com/thoreinstein/mpm/cmd.Version=...".
package cmd

// Reported by mpm version. Unreleased builds keep the defaults.
var (
	// Version is the release tag of the mpm binary.
	Version = "dev"
	// Commit is the source revision the binary was built from.
	Commit = "none"
	// Date is the UTC build timestamp.
	Date = "unknown"
)
