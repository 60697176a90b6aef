package commands

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/logging"
)

func TestSetupLogging_VerbosityFlags(t *testing.T) {
	setupCommandTest(t)
	t.Setenv("MPM_DEBUG", "")

	tests := []struct {
		name      string
		verbosity int
		wantLevel slog.Level
	}{
		{"default (0)", 0, slog.LevelWarn},
		{"verbose (1)", 1, slog.LevelInfo},
		{"debug (2)", 2, slog.LevelDebug},
		{"trace (3)", 3, logging.LevelTrace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verbosity = tt.verbosity
			defer func() { verbosity = 0 }()

			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel > logging.LevelTrace {
				assert.False(t, logger.Enabled(t.Context(), tt.wantLevel-4))
			}
		})
	}
}

func TestSetupLogging_EnvVar(t *testing.T) {
	setupCommandTest(t)

	tests := []struct {
		name      string
		envVal    string
		wantLevel slog.Level
	}{
		{"MPM_DEBUG=1", "1", slog.LevelDebug},
		{"MPM_DEBUG=true", "true", slog.LevelDebug},
		{"MPM_DEBUG=2", "2", logging.LevelTrace},
		{"MPM_DEBUG=0", "0", slog.LevelWarn},
		{"MPM_DEBUG=unknown", "foo", slog.LevelWarn},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("MPM_DEBUG", tt.envVal)

			require.NoError(t, setupLogging(rootCmd))

			logger := slog.Default()
			assert.True(t, logger.Enabled(t.Context(), tt.wantLevel))
			if tt.wantLevel == slog.LevelDebug {
				assert.False(t, logger.Enabled(t.Context(), logging.LevelTrace),
					"trace should stay off when MPM_DEBUG=1")
			}
		})
	}
}

func TestSetupLogging_FlagPrecedence(t *testing.T) {
	setupCommandTest(t)
	t.Setenv("MPM_DEBUG", "2")
	verbosity = 1
	defer func() { verbosity = 0 }()

	require.NoError(t, setupLogging(rootCmd))

	logger := slog.Default()
	assert.True(t, logger.Enabled(t.Context(), slog.LevelInfo))
	assert.False(t, logger.Enabled(t.Context(), slog.LevelDebug), "flag should override env var")
}

func TestSetupLogging_Quiet(t *testing.T) {
	setupCommandTest(t)
	quiet = true
	defer func() { quiet = false }()

	require.NoError(t, setupLogging(rootCmd))

	logger := slog.Default()
	assert.True(t, logger.Enabled(t.Context(), slog.LevelError))
	assert.False(t, logger.Enabled(t.Context(), slog.LevelWarn))
}

func TestSetupLogging_QuietMutualExclusion(t *testing.T) {
	setupCommandTest(t)
	verbosity = 1
	quiet = true
	defer func() {
		verbosity = 0
		quiet = false
	}()

	err := setupLogging(rootCmd)
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))
}

func TestSetupLogging_LogFile(t *testing.T) {
	setupCommandTest(t)
	logFile = filepath.Join(t.TempDir(), "mpm.log")
	defer func() { logFile = "" }()

	require.NoError(t, setupLogging(rootCmd))

	logging.FromContext(rootCmd.Context()).Warn("written to file", "key", "value")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"written to file"`)
}

func TestRoot_ConfigErrorBlocksProjectCommands(t *testing.T) {
	setupCommandTest(t)

	bad := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("toolchain: ''\n"), 0o644))

	_, _, err := executeCommand(t, "", "--config", bad, "build")
	require.Error(t, err)
	assert.Equal(t, errors.ExitUser, errors.ExitCode(err))

	// version is exempt.
	stdout, _, err := executeCommand(t, "", "--config", bad, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "mpm version")
}
