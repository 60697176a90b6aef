package commands

import (
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mpm/internal/cli/prompt"
	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/logging"
	"github.com/thoreinstein/mpm/internal/platform"
	"github.com/thoreinstein/mpm/internal/project"
)

// newSelector builds the target selector. Tests replace it.
var newSelector = func(cmd *cobra.Command) *prompt.Selector {
	interactive := logging.IsTTY(os.Stdin) && logging.IsTTY(os.Stdout)
	if interactive {
		return prompt.NewSelector(true)
	}
	return prompt.NewSelectorWithIO(cmd.InOrStdin(), cmd.ErrOrStderr())
}

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [target]",
	Short: "Run the app on a target platform",
	Long: `Build and launch the app for one target platform.

The target is either a platform name declared by the project (android,
windows, ...) or a target framework identifier such as net8.0-android.
Without a target, the only declared platform is used; when several are
declared you are asked to pick one.

Android targets deploy to the configured android_device. Windows targets
launch with 'dotnet run'. Launching iOS and MacCatalyst targets is not
supported yet.`,
	Example: `  # Run on the Android emulator
  mpm run android

  # Run a specific framework
  mpm run net8.0-windows10.0.19041.0

  # Pick interactively
  mpm run

See Also: mpm platforms, mpm config set android_device`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	if err := s.requireValid(); err != nil {
		return err
	}

	declared := s.manager.TargetPlatforms(cmd.Context())

	var target string
	if len(args) == 1 {
		target = resolveTarget(args[0], declared)
	} else {
		entry, err := newSelector(cmd).SelectTarget(declared.Entries())
		switch {
		case errors.Is(err, prompt.ErrNoTargets):
			return errors.NewUserError(
				errors.Wrap(errors.ErrNoTargets, "the project declares no target platforms"),
				"Add TargetFrameworks to "+s.manager.ProjectPath())
		case err != nil:
			return errors.NewUserError(err, "Choose one of: "+strings.Join(declared.Identifiers(), ", "))
		}
		target = entry.Identifier
	}

	switch project.ClassifyRunTarget(target) {
	case project.RunApple:
		return errors.NewUserError(
			errors.Newf("launching %s is not supported yet", target),
			"Build it with: mpm build")
	case project.RunUnsupported:
		return errors.NewUserError(
			errors.Newf("no launch command for target %q", target),
			"Run: mpm platforms")
	}

	s.manager.Run(cmd.Context(), target)
	return s.result()
}

// resolveTarget maps a platform name to the identifier the project declares
// for it. Anything else is taken as an identifier.
func resolveTarget(arg string, declared platform.Map) string {
	for name, id := range declared {
		if strings.EqualFold(name, arg) {
			return id
		}
	}
	return arg
}
