package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thoreinstein/mpm/internal/doctor"
	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/paths"
	"github.com/thoreinstein/mpm/internal/shell"
)

var (
	doctorJSON    bool
	doctorQuiet   bool
	doctorVerbose bool
	doctorFix     bool
)

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false,
		"output results as JSON")
	doctorCmd.Flags().BoolVar(&doctorQuiet, "quiet", false,
		"suppress output, exit code only")
	doctorCmd.Flags().BoolVar(&doctorVerbose, "verbose", false,
		"show detailed check-by-check output")
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false,
		"repair fixable issues, then check again")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Diagnose toolchain and project issues",
	Long: `Run diagnostic checks on the toolchain, configuration and the selected
project.

Checks that the toolchain and shell are available, that config.yaml and the
state file parse, and that the project directory holds a MAUI application
whose target platforms this host can build.

Output modes (mutually exclusive):
  (default)   Show errors and warnings
  --verbose   Show all checks including passed ones
  --quiet     No output, exit code only
  --json      Machine-readable JSON output

Exit codes:
  0 - All checks passed (no errors or warnings)
  1 - Warnings present, no errors
  2 - Errors present`,
	Args:    cobra.NoArgs,
	PreRunE: validateDoctorFlags,
	RunE:    runDoctor,
}

// validateDoctorFlags ensures output flags are mutually exclusive.
func validateDoctorFlags(_ *cobra.Command, _ []string) error {
	count := 0
	for _, set := range []bool{doctorJSON, doctorQuiet, doctorVerbose} {
		if set {
			count++
		}
	}

	if count > 1 {
		return errors.NewUserError(
			errors.New("flags --json, --quiet, and --verbose are mutually exclusive"),
			"Pick one output mode")
	}

	return nil
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	runner := newDoctorRunner(cmd)
	report := runner.Run()

	if doctorFix {
		fixes := runner.Fix()
		if !doctorQuiet && !doctorJSON {
			writeFixResults(cmd.OutOrStdout(), fixes)
		}
		if len(fixes) > 0 {
			report = newDoctorRunner(cmd).Run()
		}
	}

	if err := outputDoctorReport(cmd.OutOrStdout(), report); err != nil {
		return err
	}

	if code := report.ExitCode(); code != 0 {
		// The report already explains the failure.
		return errors.NewExitError(nil, code)
	}
	return nil
}

// newDoctorRunner registers every check against the current environment.
func newDoctorRunner(cmd *cobra.Command) *doctor.Runner {
	runner := doctor.NewRunner()

	family, ok := shell.ParseFamily(cfg.Shell)
	if !ok {
		family = shell.HostFamily()
	}

	configPath := configFile
	if configPath == "" {
		configPath = paths.ConfigFile()
	}

	runner.AddCheck(doctor.NewToolchainCheck(cfg.Toolchain))
	runner.AddCheck(doctor.NewShellCheck(family))
	runner.AddCheck(doctor.NewConfigFileCheck(configPath))
	runner.AddCheck(doctor.NewStateFileCheck(stateStore()))

	dir, err := resolveExistingProjectDir(cmd)
	if err == nil {
		// Checks must not print toolchain events, so the session is quiet.
		s := openQuietSession(cmd, dir)
		runner.AddCheck(doctor.NewProjectCheck(s.manager.Context()))
		runner.AddCheck(doctor.NewPlatformCheck(s.manager.TargetPlatforms(cmd.Context())))
	}

	return runner
}

func outputDoctorReport(w io.Writer, report *doctor.DoctorReport) error {
	if doctorQuiet {
		return nil
	}

	if doctorJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(report), "encoding JSON")
	}

	writeDoctorText(w, report)
	return nil
}

func writeDoctorText(w io.Writer, report *doctor.DoctorReport) {
	// In normal mode, show only errors and warnings
	showAll := doctorVerbose

	hasOutput := false
	for _, result := range report.Results {
		problem := result.Status == doctor.SeverityError || result.Status == doctor.SeverityWarning
		if !showAll && !problem {
			continue
		}

		hasOutput = true
		fmt.Fprintf(w, "%s [%s] %s: %s\n", statusIcon(result.Status), result.Category, result.Name, result.Message)

		if result.FixHint != "" && problem {
			fmt.Fprintf(w, "  hint: %s\n", result.FixHint)
		}
	}

	if hasOutput {
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d passed, %d info, %d warnings, %d errors\n",
		report.Summary.Passed, report.Summary.Info, report.Summary.Warnings, report.Summary.Errors)
}

func writeFixResults(w io.Writer, fixes []doctor.FixResult) {
	for _, f := range fixes {
		if f.Fixed {
			fmt.Fprintf(w, "fixed: %s (%s)\n", f.Description, f.Path)
			continue
		}
		fmt.Fprintf(w, "not fixed: %s (%s): %v\n", f.Description, f.Path, f.Error)
	}
}

func statusIcon(s doctor.Severity) string {
	switch s {
	case doctor.SeverityPass:
		return "✓"
	case doctor.SeverityInfo:
		return "ℹ"
	case doctor.SeverityWarning:
		return "⚠"
	case doctor.SeverityError:
		return "✗"
	default:
		return "?"
	}
}
