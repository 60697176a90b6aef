package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mpm/internal/errors"
)

var useClear bool

func init() {
	useCmd.Flags().BoolVar(&useClear, "clear", false,
		"forget the remembered project")
	rootCmd.AddCommand(useCmd)
}

var useCmd = &cobra.Command{
	Use:   "use [path]",
	Short: "Select and remember the project directory",
	Long: `Select the project directory and remember it for later commands.

The path may name a directory or a .csproj file inside it. A directory that
does not exist yet is created, ready for 'mpm create'. Without a path the
current directory is used.`,
	Example: `  # Remember an existing project
  mpm use ~/src/MyApp

  # Prepare a new project directory
  mpm use ./NewApp && mpm create

  # Forget the remembered project
  mpm use --clear

See Also: mpm status, mpm create`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUse,
}

func runUse(cmd *cobra.Command, args []string) error {
	store := stateStore()

	if useClear {
		if err := store.Forget(); err != nil {
			return errors.NewSystemError(err, "Check permissions on "+store.Path())
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Forgot remembered project")
		return nil
	}

	path := "."
	if len(args) == 1 {
		path = args[0]
	}

	s := openSessionAt(cmd, path)
	if err := s.result(); err != nil {
		return err
	}

	pc := s.manager.Context()
	if err := store.Remember(pc.Root); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+store.Path())
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Using %s (%s)\n", pc.Root, s.manager.State())
	return nil
}
