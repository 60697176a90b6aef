package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thoreinstein/mpm/internal/doctor"
	"github.com/thoreinstein/mpm/internal/errors"
	"github.com/thoreinstein/mpm/internal/paths"
)

func TestDoctor_MissingToolchain(t *testing.T) {
	setupCommandTest(t)
	t.Setenv("MPM_TOOLCHAIN", "mpm-test-no-such-toolchain")

	stdout, _, err := executeCommand(t, "", "doctor", "--quiet")
	require.Error(t, err)
	assert.Equal(t, 2, errors.ExitCode(err))
	assert.Empty(t, stdout)

	var buf bytes.Buffer
	PrintError(&buf, err)
	assert.Empty(t, buf.String(), "the report already explains the failure")
}

func TestDoctor_JSON(t *testing.T) {
	setupCommandTest(t)
	writeFakeToolchain(t)
	dir := writeProject(t, mauiProject)

	stdout, _, err := executeCommand(t, "", "-C", dir, "doctor", "--json")
	if err != nil {
		// Warnings are allowed, errors are not.
		require.Equal(t, 1, errors.ExitCode(err))
	}

	var report doctor.DoctorReport
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Zero(t, report.Summary.Errors)

	names := make([]string, 0, len(report.Results))
	for _, r := range report.Results {
		names = append(names, r.Name)
	}
	assert.Subset(t, names, []string{"toolchain", "shell", "project", "target-platforms"})
}

func TestDoctor_Fix(t *testing.T) {
	setupCommandTest(t)
	writeFakeToolchain(t)
	assert.NoFileExists(t, paths.ConfigFile())

	stdout, _, _ := executeCommand(t, "", "-C", writeProject(t, mauiProject), "doctor", "--fix")

	assert.Contains(t, stdout, "fixed:")
	assert.FileExists(t, paths.ConfigFile())
}

func TestDoctor_ExclusiveFlags(t *testing.T) {
	setupCommandTest(t)

	_, _, err := executeCommand(t, "", "doctor", "--json", "--quiet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}
