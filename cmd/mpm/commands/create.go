package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mpm/internal/errors"
)

func init() {
	rootCmd.AddCommand(createCmd)
}

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Scaffold a new MAUI project",
	Long: `Scaffold a new project in the project directory by running the
toolchain's 'new' command with the configured template (default: maui).

The project file is looked up again afterwards, so 'mpm status' and
'mpm platforms' reflect the generated project immediately.`,
	Example: `  # Create in the remembered project directory
  mpm create

  # Create in a specific directory
  mpm create -C ./MyApp

See Also: mpm use, mpm build`,
	Args: cobra.NoArgs,
	RunE: runCreate,
}

func runCreate(cmd *cobra.Command, _ []string) error {
	dir, err := resolveProjectDir(cmd)
	if err != nil {
		return err
	}
	s := openSessionAt(cmd, dir)

	s.manager.Create(cmd.Context())
	if err := s.result(); err != nil {
		return err
	}

	path := s.manager.ProjectPath()
	if path == "" {
		return errors.NewUserError(
			errors.Newf("no project file was generated in %s", s.manager.Context().Root),
			"Check the 'template' setting with: mpm config get template")
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Created %s (%s)\n", path, s.manager.State())
	}
	return nil
}
