// Package config provides configuration management for the mpm CLI.
//
// # Configuration File
//
// The default configuration file location is ~/.config/mpm/config.yaml
// (see package paths). A config.yaml in the working directory takes
// precedence. Every key can also be set through an MPM_ environment
// variable, e.g. MPM_TOOLCHAIN=/usr/local/share/dotnet/dotnet.
//
//	version: 1
//	toolchain: dotnet
//	template: maui
//	android_device: emulator-5554
//	shell: ""        # "", posix, windows
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//
// Load validates the result; [Validate] can also be called directly and
// returns every problem found.
package config
