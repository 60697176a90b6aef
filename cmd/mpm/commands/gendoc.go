package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/thoreinstein/mpm/cmd"
	"github.com/thoreinstein/mpm/internal/errors"
)

var (
	genDocDir    string
	genDocFormat string
)

func init() {
	genDocCmd.Flags().StringVarP(&genDocDir, "dir", "d", "", "output directory for documentation")
	genDocCmd.Flags().StringVar(&genDocFormat, "format", "markdown", "documentation format: markdown, man")
	rootCmd.AddCommand(genDocCmd)
}

var genDocCmd = &cobra.Command{
	Use:    "gen-doc",
	Short:  "Generate reference documentation for the CLI",
	Hidden: true,
	Args:   cobra.NoArgs,
	RunE:   runGenDoc,
}

func runGenDoc(c *cobra.Command, _ []string) error {
	if genDocDir == "" {
		return errors.NewUserError(errors.New("output directory is required"), "Pass --dir <path>")
	}

	if err := os.MkdirAll(genDocDir, 0o755); err != nil {
		return errors.Wrap(err, "creating output directory")
	}

	var err error
	switch genDocFormat {
	case "markdown":
		err = doc.GenMarkdownTreeCustom(rootCmd, genDocDir, filePrepender, linkHandler)
	case "man":
		err = doc.GenManTree(rootCmd, &doc.GenManHeader{
			Title:   "MPM",
			Section: "1",
			Source:  "mpm " + cmd.Version,
		}, genDocDir)
	default:
		return errors.NewUserError(
			errors.Newf("unknown documentation format %q", genDocFormat),
			"Use one of: markdown, man")
	}
	if err != nil {
		return errors.Wrapf(err, "generating %s", genDocFormat)
	}

	fmt.Fprintf(c.OutOrStdout(), "Documentation generated in %s\n", genDocDir)
	return nil
}

// filePrepender adds front matter; mpm_config_init.md is titled
// "mpm config init".
func filePrepender(filename string) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	title := strings.ReplaceAll(base, "_", " ")

	return fmt.Sprintf(`---
title: "%s"
description: "Reference for the %s command"
draft: false
---
`, title, title)
}

func linkHandler(name string) string {
	base := strings.TrimSuffix(name, filepath.Ext(name))
	return "/docs/reference/" + strings.ToLower(base) + "/"
}
