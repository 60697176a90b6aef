package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mpm/internal/config"
	"github.com/thoreinstein/mpm/internal/editor"
	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/paths"
	"github.com/thoreinstein/mpm/pkg/fileutil"
)

// configKeys lists the settable keys in display order.
var configKeys = []string{"version", "toolchain", "template", "android_device", "shell"}

var configInitForce bool

func init() {
	configInitCmd.Flags().BoolVar(&configInitForce, "force", false,
		"overwrite an existing config file")

	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mpm configuration",
	Long: `Manage mpm configuration stored in config.yaml in the user config
directory (or ./config.yaml, or the file named by --config).

Every key can also be set through the environment with the MPM_ prefix,
for example MPM_TOOLCHAIN or MPM_ANDROID_DEVICE.

Without a subcommand, lists all configuration values.`,
	Example: `  # List all configuration
  mpm config

  # Deploy Android runs to a physical device
  mpm config set android_device R58M123456

  # Write the default file
  mpm config init

See Also: mpm doctor`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Example: `  mpm config get toolchain

See Also: mpm config set, mpm config list`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value and write the config file.

Valid keys: version, toolchain, template, android_device, shell.`,
	Example: `  mpm config set template maui-blazor
  mpm config set shell posix

See Also: mpm config get, mpm config list`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	RunE:  runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open configuration in your editor",
	Long: `Open the configuration file in your editor.

Uses $MPM_EDITOR, $EDITOR or $VISUAL, falling back to nano or vi. If no
configuration file exists, the defaults are written first.`,
	Example: `  mpm config edit
  EDITOR=nano mpm config edit`,
	RunE: runConfigEdit,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	Example: `  mpm config init
  mpm config init --force`,
	Args: cobra.NoArgs,
	RunE: runConfigInit,
}

// configPath returns the file config commands read and write.
func configPath() string {
	if configFile != "" {
		return configFile
	}
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return paths.ConfigFile()
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	if !viper.IsSet(key) {
		fmt.Fprintln(cmd.OutOrStdout(), "not set")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), viper.GetString(key))
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	if !slices.Contains(configKeys, key) {
		return errors.NewUserError(
			errors.Newf("unknown config key %q", key),
			"Valid keys: "+strings.Join(configKeys, ", "))
	}

	if key == "version" {
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.NewUserError(errors.Wrap(err, "parsing version"), "version must be a number")
		}
		viper.Set(key, n)
	} else {
		viper.Set(key, value)
	}

	current := currentConfig()
	if errs := config.Validate(current); len(errs) > 0 {
		return errors.NewUserError(errors.Wrap(errs[0], "invalid value"), "")
	}

	if err := writeConfig(current); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	data, err := yaml.Marshal(currentConfig())
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}

	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigEdit(_ *cobra.Command, _ []string) error {
	path := configPath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := config.WriteDefault(path); err != nil {
			return errors.NewSystemError(err, "Check permissions on "+path)
		}
	}

	return editor.Open(path)
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path := configFile
	if path == "" {
		path = paths.ConfigFile()
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return errors.NewUserError(
			errors.Newf("config file already exists at %s", path),
			"Use --force to overwrite it")
	}

	if err := config.WriteDefault(path); err != nil {
		return errors.NewSystemError(err, "Check permissions on "+path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}

// currentConfig reads every key from viper into a Config.
func currentConfig() *config.Config {
	return &config.Config{
		Version:       viper.GetInt("version"),
		Toolchain:     viper.GetString("toolchain"),
		Template:      viper.GetString("template"),
		AndroidDevice: viper.GetString("android_device"),
		Shell:         viper.GetString("shell"),
	}
}

func writeConfig(c *config.Config) error {
	path := configPath()

	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	if err := fileutil.AtomicWriteYAML(path, c); err != nil {
		return errors.Wrap(err, "writing config file")
	}

	return nil
}
