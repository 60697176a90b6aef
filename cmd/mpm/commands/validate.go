package commands

import (
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mpm/internal/descriptor"
	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/logging"
	"github.com/thoreinstein/mpm/internal/validator"
)

var validateJSON bool

func init() {
	validateCmd.Flags().BoolVar(&validateJSON, "json", false, "output findings as JSON")
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the project file",
	Long: `Check the project file for the declarations mpm relies on.

Errors are reported when UseMaui is not true or OutputType is not Exe.
Warnings are reported for target frameworks that name no platform, and for
frameworks that override an earlier one for the same platform. Every
recognized platform is listed as a note.

Exits with status 1 when errors are found.`,
	Example: `  mpm validate
  mpm validate --json -C ./MyApp

See Also: mpm platforms, mpm doctor`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, _ []string) error {
	dir, err := resolveExistingProjectDir(cmd)
	if err != nil {
		return err
	}

	s := openQuietSession(cmd, dir)
	path := s.manager.ProjectPath()
	if path == "" {
		return errors.NewUserError(
			errors.Wrapf(errors.ErrNoProject, "no .csproj file in %s", s.manager.Context().Root),
			"Run: mpm create")
	}

	d, err := descriptor.Load(path)
	if err != nil {
		return errors.NewUserError(err, "Fix the XML in "+path)
	}

	result := d.Lint()

	format := validator.FormatText
	if validateJSON {
		format = validator.FormatJSON
	}
	out := cmd.OutOrStdout()
	if err := validator.NewReporter(out, format, logging.SupportsColor(out)).Report(result); err != nil {
		return err
	}

	if result.HasErrors() {
		// The report already lists the errors.
		return errors.NewExitError(nil, errors.ExitUser)
	}
	return nil
}
