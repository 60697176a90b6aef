package doctor

// Fixer is an optional interface for checks that can repair what they find.
type Fixer interface {
	// CanFix returns true if the last Run found a fixable issue.
	CanFix() bool

	// Fix attempts the repair. Must be called after Run.
	Fix() []FixResult
}

// FixResult describes the outcome of an attempted fix.
type FixResult struct {
	// Path is the file or directory that was targeted.
	Path string `json:"path"`

	// Fixed indicates whether the fix was applied.
	Fixed bool `json:"fixed"`

	// Description explains what was done or why it could not be.
	Description string `json:"description"`

	// Error contains the failure, if any.
	Error error `json:"-"`
}
