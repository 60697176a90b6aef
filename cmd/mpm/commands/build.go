package commands

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(restoreCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the project",
	Long:  `Build the project for every declared target platform.`,
	Example: `  mpm build
  mpm build -C ./MyApp

See Also: mpm restore, mpm run`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runProjectOp(cmd, func(s *session) { s.manager.Build(cmd.Context()) })
	},
}

var restoreCmd = &cobra.Command{
	Use:   "restore",
	Short: "Restore project dependencies",
	Long:  `Restore the NuGet dependencies of the project.`,
	Example: `  mpm restore

See Also: mpm build`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runProjectOp(cmd, func(s *session) { s.manager.Restore(cmd.Context()) })
	},
}

// runProjectOp opens a session, requires a valid project and runs op.
func runProjectOp(cmd *cobra.Command, op func(*session)) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	if err := s.requireValid(); err != nil {
		return err
	}

	op(s)
	return s.result()
}
