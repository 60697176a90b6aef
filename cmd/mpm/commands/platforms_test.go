package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/thoreinstein/mpm/internal/platform"
)

var sampleEntries = []platform.Entry{
	{Name: platform.Android, Identifier: "net8.0-android"},
	{Name: platform.IOS, Identifier: "net8.0-ios"},
}

func TestWritePlatforms_Structured(t *testing.T) {
	tests := []struct {
		format    string
		unmarshal func([]byte, any) error
	}{
		{outputJSON, json.Unmarshal},
		{outputYAML, yaml.Unmarshal},
		{outputTOML, toml.Unmarshal},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writePlatforms(&buf, tt.format, sampleEntries))

			var doc platformsDocument
			require.NoError(t, tt.unmarshal(buf.Bytes(), &doc))
			assert.Equal(t, sampleEntries, doc.Platforms)
		})
	}
}

func TestWritePlatforms_EmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePlatforms(&buf, outputJSON, nil))
	assert.JSONEq(t, `{"platforms": []}`, buf.String())
}

func TestWritePlatforms_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePlatforms(&buf, outputTable, sampleEntries))

	out := buf.String()
	assert.Contains(t, out, "PLATFORM")
	assert.Contains(t, out, "FRAMEWORK")
	assert.Contains(t, out, "net8.0-android")
	assert.Contains(t, out, "net8.0-ios")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Android")), bytes.Index(buf.Bytes(), []byte("iOS")))
}

func TestWritePlatforms_TableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writePlatforms(&buf, outputTable, nil))
	assert.Equal(t, "No target platforms declared.\n", buf.String())
}

func TestPlatformsCommand(t *testing.T) {
	setupCommandTest(t)
	dir := writeProject(t, mauiProject)

	stdout, _, err := executeCommand(t, "", "-C", dir, "platforms", "-o", "json")
	require.NoError(t, err)

	var doc platformsDocument
	require.NoError(t, json.Unmarshal([]byte(stdout), &doc))
	assert.Equal(t, []platform.Entry{
		{Name: platform.Android, Identifier: "net8.0-android"},
		{Name: platform.IOS, Identifier: "net8.0-ios"},
		{Name: platform.Windows, Identifier: "net8.0-windows10.0.19041.0"},
	}, doc.Platforms)
}

func TestPlatformsCommand_Errors(t *testing.T) {
	setupCommandTest(t)

	t.Run("unknown format", func(t *testing.T) {
		_, _, err := executeCommand(t, "", "-C", writeProject(t, mauiProject), "platforms", "-o", "xml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `unknown output format "xml"`)
		platformsOutput = outputTable
	})

	t.Run("not an application", func(t *testing.T) {
		_, _, err := executeCommand(t, "", "-C", writeProject(t, libraryProject), "platforms")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is not a MAUI application")
	})
}
