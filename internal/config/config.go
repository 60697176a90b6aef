// Package config provides configuration management for mpm using Viper.
package config

import (
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/paths"
	"github.com/thoreinstein/mpm/pkg/fileutil"
)

// Default values for configuration keys.
const (
	DefaultToolchain     = "dotnet"
	DefaultTemplate      = "maui"
	DefaultAndroidDevice = "emulator-5554"
)

// Config represents the top-level configuration structure.
type Config struct {
	Version int `mapstructure:"version" yaml:"version"`

	// Toolchain is the executable every project command is issued to.
	Toolchain string `mapstructure:"toolchain" yaml:"toolchain"`

	// Template is the scaffold template passed to "<toolchain> new".
	Template string `mapstructure:"template" yaml:"template"`

	// AndroidDevice is the device serial used when running Android targets.
	AndroidDevice string `mapstructure:"android_device" yaml:"android_device"`

	// Shell forces a shell family ("posix" or "windows"). Empty means
	// detect from the host OS.
	Shell string `mapstructure:"shell" yaml:"shell"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version:       1,
		Toolchain:     DefaultToolchain,
		Template:      DefaultTemplate,
		AndroidDevice: DefaultAndroidDevice,
	}
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	// Search paths (in order of precedence)
	viper.AddConfigPath(".")
	viper.AddConfigPath(paths.ConfigDir())

	viper.SetEnvPrefix("MPM")
	viper.AutomaticEnv()

	def := Default()
	viper.SetDefault("version", def.Version)
	viper.SetDefault("toolchain", def.Toolchain)
	viper.SetDefault("template", def.Template)
	viper.SetDefault("android_device", def.AndroidDevice)
	viper.SetDefault("shell", def.Shell)
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations and falls back to
// defaults when no file exists.
func Load(path string) (*Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound) && path == "":
			// implicit load, defaults apply
		case errors.As(err, &notFound):
			return nil, errors.Wrapf(err, "config file not found at %s", path)
		default:
			return nil, errors.Wrap(err, "reading config file")
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshaling config")
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.Wrap(errs[0], "validating config")
	}

	return &cfg, nil
}

// WriteDefault writes the default configuration to path, creating the
// parent directory if needed.
func WriteDefault(path string) error {
	if err := paths.EnsureDir(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	if err := fileutil.AtomicWriteYAML(path, Default()); err != nil {
		return errors.Wrap(err, "writing config file")
	}
	return nil
}
