// Package commands implements the CLI commands for mpm.
package commands

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mpm/cmd"
	"github.com/thoreinstein/mpm/internal/config"
	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/logging"
)

// verbosity holds the count of -v flags.
var verbosity int

// quiet holds the value of the -q/--quiet flag.
var quiet bool

// logFormat holds the value of the --log-format flag.
var logFormat string

// logFile holds the path to the log file.
var logFile string

// projectFlag holds the value of the -C/--project flag.
var projectFlag string

// configFile holds the value of the --config flag.
var configFile string

// cfg is the loaded configuration; defaults when loading failed.
var cfg = config.Default()

// configLoadErr holds any error that occurred during config loading.
var configLoadErr error

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"increase verbosity level (e.g., -v, -vv)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text",
		"log format: text, json")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "",
		"write logs to file in JSON format")
	rootCmd.PersistentFlags().StringVarP(&projectFlag, "project", "C", "",
		"project directory or .csproj file (default: remembered project, then current directory)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "",
		"config file (default: ./config.yaml, then the user config directory)")

	rootCmd.Version = cmd.Version
	rootCmd.SetVersionTemplate("mpm version {{.Version}}\n")

	// Silence errors and usage so we can control error output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func initConfig() {
	config.Init()

	loaded, err := config.Load(configFile)
	configLoadErr = err
	if err == nil {
		cfg = loaded
	}
}

var rootCmd = &cobra.Command{
	Use:   "mpm",
	Short: "Manage .NET MAUI application projects",
	Long: `mpm drives the dotnet toolchain for a .NET MAUI application project.

It creates a project skeleton, restores dependencies, builds, runs the app
on a target platform, lists the platforms the project declares, and
deletes the project. Every toolchain invocation is reported as it starts,
succeeds, or fails.

The project directory is taken from --project, else from the project
remembered with 'mpm use', else from the current directory.`,
	Example: `  # Create a new app and remember it
  mpm use ./MyApp
  mpm create

  # Build and run on Android
  mpm build
  mpm run android

  # Check the environment
  mpm doctor

  See Also: mpm status, mpm platforms, mpm config`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := setupLogging(cmd); err != nil {
			return err
		}
		return checkConfig(cmd)
	},
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// configExempt lists commands that must work with a broken config file.
var configExempt = map[string]bool{
	"help":    true,
	"version": true,
	"doctor":  true,
	"init":    true,
	"edit":    true,
}

// checkConfig surfaces config load errors for commands that depend on it.
func checkConfig(cmd *cobra.Command) error {
	if configLoadErr == nil || configExempt[cmd.Name()] {
		return nil
	}
	return errors.NewConfigError(configLoadErr)
}

// setupLogging configures the default logger based on verbosity flags.
func setupLogging(cmd *cobra.Command) error {
	if quiet && verbosity > 0 {
		return errors.NewUserError(errors.New("conflicting flags"), "cannot use --quiet and --verbose together")
	}

	var level slog.Level
	if quiet {
		level = slog.LevelError
	} else {
		v := verbosity

		// CLI flags take precedence, but if not set, check env var
		if v == 0 {
			if val, ok := os.LookupEnv("MPM_DEBUG"); ok {
				switch val {
				case "1", "true":
					v = 2 // Debug
				case "2":
					v = 3 // Trace
				}
			}
		}
		level = logging.LevelFromVerbosity(v)
	}

	handlers := []slog.Handler{logging.New(logging.Config{
		Level:  level,
		Format: logging.Format(logFormat),
		Output: cmd.ErrOrStderr(),
	}).Handler()}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return errors.NewUserError(err, "failed to open log file")
		}
		// File output uses JSON format
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{
			Level: level,
		}))
	}

	var handler slog.Handler
	if len(handlers) > 1 {
		handler = logging.NewMultiHandler(handlers...)
	} else {
		handler = handlers[0]
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
