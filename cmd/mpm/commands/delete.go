package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mpm/internal/project"
)

var deleteForce bool

func init() {
	deleteCmd.Flags().BoolVarP(&deleteForce, "force", "f", false,
		"skip confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Clean and delete the project directory",
	Long: `Run the toolchain's clean command, then delete the whole project
directory from disk. The removal is retried once if the directory is still
present afterwards.

If the deleted project was the remembered one, it is forgotten.`,
	Example: `  # Delete with confirmation
  mpm delete

  # Delete without asking
  mpm delete --force

See Also: mpm use --clear`,
	Args: cobra.NoArgs,
	RunE: runDelete,
}

func runDelete(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	if err := s.requireValid(); err != nil {
		return err
	}

	root := s.manager.Context().Root

	if !deleteForce {
		question := fmt.Sprintf("Delete %s and everything in it?", root)
		if !newSelector(cmd).Confirm(question) {
			fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
			return nil
		}
	}

	s.manager.Delete(cmd.Context())
	if err := s.result(); err != nil && s.manager.State() != project.Unset {
		return err
	}

	store := stateStore()
	if remembered, err := store.Root(); err == nil && remembered == root {
		if err := store.Forget(); err != nil {
			return err
		}
	}

	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", root)
	}
	return s.result()
}
