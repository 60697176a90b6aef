// Package logging configures slog for the mpm CLI.
//
// Terminal output goes through [Handler], a single-line colorized format
// that masks secret-looking values and prints captured toolchain output as
// an indented block. --log-format json selects slog's JSON handler instead,
// and --log-file adds a JSON file through [MultiHandler].
//
// Verbosity maps to levels with [LevelFromVerbosity]; [LevelTrace] sits
// below debug and carries the stdout and stderr of every toolchain run.
//
//	logger := logging.New(logging.Config{Level: slog.LevelInfo})
//	ctx = logging.NewContext(ctx, logger)
//	logging.FromContext(ctx).Info("building", "root", root)
//
// Tests route logs through the test log with [ForTest]:
//
//	ctx := logging.NewContext(t.Context(), logging.ForTest(t))
package logging
