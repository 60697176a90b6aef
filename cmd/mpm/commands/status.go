package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thoreinstein/mpm/cmd"
	"github.com/thoreinstein/mpm/internal/logging"
	"github.com/thoreinstein/mpm/internal/platform"
	"github.com/thoreinstein/mpm/internal/project"
)

var statusJSON bool

func init() {
	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the selected project",
	Long: `Show the project directory mpm resolves, its project file and its
state:

  unset     no project directory
  invalid   the directory holds no MAUI application project
  valid     ready for build, run, and the other project commands`,
	Example: `  mpm status
  mpm status --json

See Also: mpm use, mpm doctor`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

type statusOutput struct {
	Version    string           `json:"version"`
	Root       string           `json:"root"`
	Descriptor string           `json:"descriptor,omitempty"`
	State      string           `json:"state"`
	Remembered string           `json:"remembered,omitempty"`
	Toolchain  string           `json:"toolchain"`
	Platforms  []platform.Entry `json:"platforms"`
}

func runStatus(c *cobra.Command, _ []string) error {
	s, err := openSession(c)
	if err != nil {
		return err
	}

	remembered, err := stateStore().Root()
	if err != nil {
		logging.FromContext(c.Context()).Warn("reading state file", "error", err)
	}

	pc := s.manager.Context()
	out := statusOutput{
		Version:    cmd.Version,
		Root:       pc.Root,
		Descriptor: pc.DescriptorPath,
		State:      s.manager.State().String(),
		Remembered: remembered,
		Toolchain:  cfg.Toolchain,
		Platforms:  s.manager.TargetPlatforms(c.Context()).Entries(),
	}

	if statusJSON {
		enc := json.NewEncoder(c.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	writeStatusText(c.OutOrStdout(), out, s.manager.State())
	return s.result()
}

func writeStatusText(w io.Writer, out statusOutput, state project.State) {
	stateColor := color.New(color.FgYellow)
	if state == project.Valid {
		stateColor = color.New(color.FgGreen)
	}
	if !logging.SupportsColor(w) {
		stateColor.DisableColor()
	}

	fmt.Fprintf(w, "mpm version %s\n\n", out.Version)
	fmt.Fprintf(w, "Project:    %s\n", valueOr(out.Root, "(none)"))
	fmt.Fprintf(w, "File:       %s\n", valueOr(out.Descriptor, "(none)"))
	fmt.Fprintf(w, "State:      %s\n", stateColor.Sprint(out.State))
	if out.Remembered != "" && out.Remembered != out.Root {
		fmt.Fprintf(w, "Remembered: %s\n", out.Remembered)
	}
	fmt.Fprintf(w, "Toolchain:  %s\n", out.Toolchain)

	if len(out.Platforms) > 0 {
		fmt.Fprintln(w, "Platforms:")
		for _, e := range out.Platforms {
			fmt.Fprintf(w, "  %-12s %s\n", e.Name, e.Identifier)
		}
	}
}

func valueOr(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}
