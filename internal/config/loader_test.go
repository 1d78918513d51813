package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
host: 0.0.0.0
port: 8080
url: /api/v1
logStackOnError: false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, Port(8080), cfg.Port)
	assert.Equal(t, "/api/v1", cfg.URL)
	assert.False(t, cfg.LogStack())
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	_, err := LoadConfigFromReader(strings.NewReader("host: [unclosed"))

	assert.Error(t, err)
}

func TestEnvVarSubstitution(t *testing.T) {
	t.Setenv("ROUTEMAP_TEST_HOST", "envhost")

	cfg, err := LoadConfigFromReader(strings.NewReader("host: ${ROUTEMAP_TEST_HOST}"))

	require.NoError(t, err)
	assert.Equal(t, "envhost", cfg.Host)
}

func TestEnvVarSubstitutionDefault(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader(`host: ${ROUTEMAP_UNSET_VAR:-fallback}`))

	require.NoError(t, err)
	assert.Equal(t, "fallback", cfg.Host)
}

func TestEnvVarSubstitutionEscapedDollar(t *testing.T) {
	cfg, err := LoadConfigFromReader(strings.NewReader(`host: "$$literal"`))

	require.NoError(t, err)
	assert.Equal(t, "$literal", cfg.Host)
}

func TestEnvVarSubstitutionPortString(t *testing.T) {
	t.Setenv("ROUTEMAP_TEST_PORT", "9191")

	cfg, err := LoadConfigFromReader(strings.NewReader(`port: "${ROUTEMAP_TEST_PORT}"`))

	require.NoError(t, err)
	assert.Equal(t, Port(9191), cfg.Port)
}
