package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mpm/internal/cli/prompt"
	"github.com/thoreinstein/mpm/internal/config"
	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/event"
	"github.com/thoreinstein/mpm/internal/paths"
	"github.com/thoreinstein/mpm/internal/project"
	"github.com/thoreinstein/mpm/internal/state"
)

const mauiProject = `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFrameworks>net8.0-android;net8.0-ios</TargetFrameworks>
    <TargetFrameworks Condition="$([MSBuild]::IsOSPlatform('windows'))">$(TargetFrameworks);net8.0-windows10.0.19041.0</TargetFrameworks>
    <OutputType>Exe</OutputType>
    <UseMaui>true</UseMaui>
  </PropertyGroup>
</Project>`

const libraryProject = `<Project Sdk="Microsoft.NET.Sdk">
  <PropertyGroup>
    <TargetFramework>net8.0</TargetFramework>
  </PropertyGroup>
</Project>`

// setupCommandTest isolates config and state in temp directories and
// resets the flag variables a previous command may have set.
func setupCommandTest(t *testing.T) {
	t.Helper()

	t.Setenv(paths.EnvConfigDir, t.TempDir())
	t.Setenv(paths.EnvStateDir, t.TempDir())
	t.Setenv("NO_COLOR", "1")

	verbosity = 0
	quiet = false
	logFormat = "text"
	logFile = ""
	projectFlag = ""
	configFile = ""
	cfg = config.Default()
	configLoadErr = nil

	deleteForce = false
	useClear = false
	statusJSON = false
	platformsOutput = outputTable
	configInitForce = false
	doctorJSON, doctorQuiet, doctorVerbose, doctorFix = false, false, false, false
	validateJSON = false

	origStore, origSelector := stateStore, newSelector
	newSelector = func(c *cobra.Command) *prompt.Selector {
		return prompt.NewSelectorWithIO(c.InOrStdin(), c.ErrOrStderr())
	}
	t.Cleanup(func() {
		stateStore = origStore
		newSelector = origSelector
	})
}

// executeCommand runs the root command with args and returns what it wrote
// to stdout and stderr.
func executeCommand(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// writeFakeToolchain installs a shell script standing in for dotnet and
// points the config at it. Every invocation is appended to the returned
// log file. Setting FAKE_TOOL_FAIL makes it fail with that text on stderr.
func writeFakeToolchain(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake toolchain is a POSIX shell script")
	}

	dir := t.TempDir()
	tool := filepath.Join(dir, "dotnet")
	logPath := filepath.Join(dir, "calls.log")

	script := "#!/bin/sh\n" +
		"echo \"$*\" >> \"$FAKE_TOOL_LOG\"\n" +
		"if [ -n \"$FAKE_TOOL_FAIL\" ]; then echo \"$FAKE_TOOL_FAIL\" >&2; exit 1; fi\n" +
		"case \"$1\" in\n" +
		"new)\n" +
		"cat > App.csproj <<'XML'\n" + mauiProject + "\nXML\n" +
		";;\n" +
		"build) echo \"Build succeeded.\" ;;\n" +
		"esac\n"
	require.NoError(t, os.WriteFile(tool, []byte(script), 0o755))

	t.Setenv("FAKE_TOOL_LOG", logPath)
	t.Setenv("MPM_TOOLCHAIN", tool)
	t.Setenv("MPM_SHELL", "posix")

	return logPath
}

// readCalls returns the toolchain arguments recorded by the fake toolchain.
func readCalls(t *testing.T, logPath string) []string {
	t.Helper()

	data, err := os.ReadFile(logPath)
	if os.IsNotExist(err) {
		return nil
	}
	require.NoError(t, err)
	return strings.Split(strings.TrimRight(string(data), "\n"), "\n")
}

// writeProject creates a project directory holding App.csproj.
func writeProject(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "App.csproj"), []byte(content), 0o644))
	return dir
}

func TestEventPrinter(t *testing.T) {
	tests := []struct {
		name       string
		quiet      bool
		event      event.Event
		wantOut    string
		wantErrOut string
	}{
		{"started", false, event.Event{Kind: event.Started, Text: "dotnet build"}, "", "==> dotnet build\n"},
		{"output adds newline", false, event.Event{Kind: event.Output, Text: "done"}, "done\n", ""},
		{"output keeps newline", false, event.Event{Kind: event.Output, Text: "done\n"}, "done\n", ""},
		{"empty output", false, event.Event{Kind: event.Output, Text: ""}, "", ""},
		{"error", false, event.Event{Kind: event.Error, Text: "boom\n"}, "", "error: boom\n"},
		{"completed", false, event.Event{Kind: event.Completed, Text: "dotnet build"}, "", "ok: dotnet build\n"},
		{"quiet hides started", true, event.Event{Kind: event.Started, Text: "dotnet build"}, "", ""},
		{"quiet hides output", true, event.Event{Kind: event.Output, Text: "done"}, "", ""},
		{"quiet keeps errors", true, event.Event{Kind: event.Error, Text: "boom"}, "", "error: boom\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			p := newEventPrinter(&out, &errOut, tt.quiet)

			p.Notify(tt.event)

			assert.Equal(t, tt.wantOut, out.String())
			assert.Equal(t, tt.wantErrOut, errOut.String())
		})
	}
}

func TestPrintError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "plain error",
			err:  errors.New("boom"),
			want: "Error: boom\n",
		},
		{
			name: "suggestion",
			err:  errors.NewUserError(errors.New("no project"), "Run: mpm use <path>"),
			want: "Error: no project\n  Run: mpm use <path>\n",
		},
		{
			name: "exit code only",
			err:  errors.NewExitError(nil, 2),
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			PrintError(&buf, tt.err)
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestResolveProjectDir(t *testing.T) {
	setupCommandTest(t)

	store := state.NewStore(filepath.Join(t.TempDir(), "state.toml"))
	stateStore = func() *state.Store { return store }

	wd, err := os.Getwd()
	require.NoError(t, err)

	t.Run("working directory by default", func(t *testing.T) {
		got, err := resolveProjectDir(rootCmd)
		require.NoError(t, err)
		assert.Equal(t, wd, got)
	})

	t.Run("remembered project", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, store.Remember(root))

		got, err := resolveProjectDir(rootCmd)
		require.NoError(t, err)
		assert.Equal(t, root, got)
	})

	t.Run("remembered project gone", func(t *testing.T) {
		require.NoError(t, store.Remember(filepath.Join(t.TempDir(), "gone")))

		got, err := resolveProjectDir(rootCmd)
		require.NoError(t, err)
		assert.Equal(t, wd, got)
	})

	t.Run("flag wins", func(t *testing.T) {
		projectFlag = "/some/where"
		defer func() { projectFlag = "" }()

		got, err := resolveProjectDir(rootCmd)
		require.NoError(t, err)
		assert.Equal(t, "/some/where", got)
	})
}

func TestSession_RequireValid(t *testing.T) {
	setupCommandTest(t)

	tests := []struct {
		name      string
		dir       func(t *testing.T) string
		wantErr   string
		wantState project.State
	}{
		{
			name:      "valid",
			dir:       func(t *testing.T) string { return writeProject(t, mauiProject) },
			wantState: project.Valid,
		},
		{
			name:      "no project file",
			dir:       func(t *testing.T) string { return t.TempDir() },
			wantErr:   "no .csproj file",
			wantState: project.Invalid,
		},
		{
			name:      "not an application",
			dir:       func(t *testing.T) string { return writeProject(t, libraryProject) },
			wantErr:   "is not a MAUI application",
			wantState: project.Invalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := openQuietSession(rootCmd, tt.dir(t))

			assert.Equal(t, tt.wantState, s.manager.State())
			err := s.requireValid()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
			assert.True(t, errors.Is(err, errors.ErrNoProject))
			assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
		})
	}
}

func TestSession_RequireValidUnset(t *testing.T) {
	setupCommandTest(t)

	s := openQuietSession(rootCmd, "")

	assert.Equal(t, project.Unset, s.manager.State())
	err := s.requireValid()
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNoProject))

	// The empty path itself is reported.
	require.Error(t, s.result())
	assert.Equal(t, errors.ExitSystem, errors.ExitCode(s.result()))
}

func TestProjectCommands_MissingDirectoryNotCreated(t *testing.T) {
	for _, name := range []string{"status", "platforms", "validate", "build", "restore", "run", "delete"} {
		t.Run(name, func(t *testing.T) {
			setupCommandTest(t)
			missing := filepath.Join(t.TempDir(), "missing")

			_, _, err := executeCommand(t, "", "-C", missing, name)

			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrNoProject))
			assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
			assert.Contains(t, err.Error(), "does not exist")
			assert.NoDirExists(t, missing)
		})
	}
}

func TestCreate_MakesMissingDirectory(t *testing.T) {
	setupCommandTest(t)
	writeFakeToolchain(t)
	dir := filepath.Join(t.TempDir(), "NewApp")

	_, _, err := executeCommand(t, "", "-C", dir, "create")

	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "App.csproj"))
}
