// Package errors provides error handling conventions for the mpm CLI.
//
// It re-exports the constructors and inspection helpers of
// github.com/cockroachdb/errors so callers need a single import, and
// defines sentinel errors for common failure conditions, an ExitError type
// for CLI exit code handling, and exit code constants following standard
// Unix conventions.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, errors.ErrNoProject) {
//	    // handle missing project
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (toolchain failure, I/O, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion:
//
//	err := errors.NewUserError(errors.ErrNoTargets, "Run: mpm platforms")
//	var exitErr *errors.ExitError
//	if errors.As(err, &exitErr) {
//	    if exitErr.Suggestion != "" {
//	        fmt.Println("Suggestion:", exitErr.Suggestion)
//	    }
//	    os.Exit(exitErr.Code)
//	}
package errors
