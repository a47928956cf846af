package generator

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mdwit/openapi2omg/internal/config"
	"github.com/mdwit/openapi2omg/internal/omg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testManifest() *omg.Manifest {
	return &omg.Manifest{
		OMG:                1,
		Source:             "openapi",
		FromOpenAPIVersion: "3.0.2",
		Info: omg.Info{
			Version: "1.0.0",
			Title:   "Petstore",
			License: omg.License{Name: "MIT"},
		},
		Contact: omg.Contact{Email: "pets@example.com"},
		Actions: map[string]omg.Action{
			"listPets": {HTTP: omg.HTTP{Method: "get", Path: "https://api.example.com/pets?limit=10&offset=0"}},
			"getPetsByPetId": {HTTP: omg.HTTP{Method: "get", Path: "https://api.example.com/pets/{petId}"}},
		},
	}
}

func TestGenerateStdoutJSON(t *testing.T) {
	cfg := config.DefaultConfig()
	var out bytes.Buffer

	gen := New(cfg, testManifest(), WithStdout(&out))
	require.NoError(t, gen.Generate())

	content := out.String()
	assert.True(t, strings.HasSuffix(content, "\n"))
	assert.Contains(t, content, "\n  \"source\": \"openapi\"")
	// & не экранируется
	assert.Contains(t, content, "limit=10&offset=0")

	var decoded omg.Manifest
	require.NoError(t, json.Unmarshal(out.Bytes(), &decoded))
	assert.Equal(t, *testManifest(), decoded)
}

func TestGenerateCompactJSON(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Indent = 0

	data, err := New(cfg, testManifest()).Render()
	require.NoError(t, err)
	assert.Equal(t, 1, bytes.Count(data, []byte("\n")))
	assert.True(t, bytes.HasPrefix(data, []byte(`{"omg":1,"source":"openapi","fromOpenAPIVersion":"3.0.2",`)))
}

func TestGenerateFileYAML(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()
	cfg.Format = config.FormatYAML
	cfg.Output = filepath.Join(tmpDir, "out", "omg.yaml")

	require.NoError(t, New(cfg, testManifest()).Generate())

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)

	content := string(data)
	assert.Contains(t, content, "omg: 1\n")
	assert.Contains(t, content, "fromOpenAPIVersion: 3.0.2\n")

	var decoded omg.Manifest
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, *testManifest(), decoded)
}

func TestRenderRejectsInvalidManifest(t *testing.T) {
	m := testManifest()
	m.Actions["upload"] = omg.Action{HTTP: omg.HTTP{Method: "put", Path: "ftp://files.example.com/upload"}}

	cfg := config.DefaultConfig()
	_, err := New(cfg, m).Render()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "manifest does not match schema")

	cfg.SkipSchema = true
	_, err = New(cfg, m).Render()
	assert.NoError(t, err)
}

func TestRenderInvalidFormat(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Format = "toml"

	_, err := New(cfg, testManifest()).Render()
	assert.ErrorIs(t, err, config.ErrInvalidFormat)
}

func TestRenderNilManifest(t *testing.T) {
	_, err := New(config.DefaultConfig(), nil).Render()
	assert.Error(t, err)
}
