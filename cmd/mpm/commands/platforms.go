package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"runtime"
	"text/tabwriter"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/platform"
)

// Output formats accepted by -o.
const (
	outputTable = "table"
	outputJSON  = "json"
	outputYAML  = "yaml"
	outputTOML  = "toml"
)

var platformsOutput string

func init() {
	platformsCmd.Flags().StringVarP(&platformsOutput, "output", "o", outputTable,
		"output format: table, json, yaml, toml")
	rootCmd.AddCommand(platformsCmd)
}

var platformsCmd = &cobra.Command{
	Use:     "platforms",
	Aliases: []string{"targets"},
	Short:   "List the target platforms the project declares",
	Long: `List the target platforms declared by the project file's
TargetFrameworks elements, including platform-conditional ones.

Platforms are listed in the order Android, iOS, MacCatalyst, Windows,
Tizen. The table also shows whether this host can build each platform.`,
	Example: `  mpm platforms
  mpm platforms -o json

See Also: mpm run`,
	Args: cobra.NoArgs,
	PreRunE: func(_ *cobra.Command, _ []string) error {
		switch platformsOutput {
		case outputTable, outputJSON, outputYAML, outputTOML:
			return nil
		default:
			return errors.NewUserError(
				errors.Newf("unknown output format %q", platformsOutput),
				"Use one of: table, json, yaml, toml")
		}
	},
	RunE: runPlatforms,
}

func runPlatforms(cmd *cobra.Command, _ []string) error {
	s, err := openSession(cmd)
	if err != nil {
		return err
	}
	if err := s.requireValid(); err != nil {
		return err
	}

	declared := s.manager.TargetPlatforms(cmd.Context())
	return writePlatforms(cmd.OutOrStdout(), platformsOutput, declared.Entries())
}

// platformsDocument is the structured form of the platform list.
type platformsDocument struct {
	Platforms []platform.Entry `json:"platforms" yaml:"platforms" toml:"platforms"`
}

func writePlatforms(w io.Writer, format string, entries []platform.Entry) error {
	doc := platformsDocument{Platforms: entries}
	if doc.Platforms == nil {
		doc.Platforms = []platform.Entry{}
	}

	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(doc), "encoding JSON")
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "encoding YAML")
		}
		return errors.Wrap(enc.Close(), "encoding YAML")
	case outputTOML:
		return errors.Wrap(toml.NewEncoder(w).Encode(doc), "encoding TOML")
	}

	if len(entries) == 0 {
		fmt.Fprintln(w, "No target platforms declared.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PLATFORM\tFRAMEWORK\tHOST")
	for _, e := range entries {
		host := platform.DetectPlatform(e.Name, runtime.GOOS)
		fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Name, e.Identifier, host.Status)
	}
	return errors.Wrap(tw.Flush(), "flushing tabwriter")
}
