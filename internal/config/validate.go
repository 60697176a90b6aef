package config

import (
	"strings"

	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/shell"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrMissingToolchain indicates the toolchain executable is empty.
	ErrMissingToolchain = errors.New("toolchain must not be empty")

	// ErrInvalidShell indicates an unrecognized shell family.
	ErrInvalidShell = errors.New("invalid shell family")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	if strings.TrimSpace(cfg.Toolchain) == "" {
		errs = append(errs, ErrMissingToolchain)
	}

	if cfg.Shell != "" {
		if _, ok := shell.ParseFamily(cfg.Shell); !ok {
			errs = append(errs, &FieldError{
				Field: "shell",
				Value: cfg.Shell,
				Err:   ErrInvalidShell,
			})
		}
	}

	return errs
}

// FieldError represents an invalid value for a specific field.
type FieldError struct {
	Field string
	Value string
	Err   error
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Value
}

func (e *FieldError) Unwrap() error {
	return e.Err
}
