package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
format = "%artist/%album/%title"
remove_problematic = true
remove_non_fat = true
replace_spaces = false
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "%artist/%album/%title", cfg.Format)
	assert.True(t, cfg.RemoveProblematic)
	assert.True(t, cfg.RemoveNonFAT)
	assert.False(t, cfg.RemoveNonASCII)
	assert.False(t, cfg.ReplaceSpacesValue())
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultFormat, cfg.Format)
	assert.False(t, cfg.RemoveProblematic)
	assert.True(t, cfg.ReplaceSpacesValue(), "replace_spaces should default to on")
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoadBadTOML(t *testing.T) {
	path := writeConfig(t, "format = [broken")

	_, err := Load(path)
	assert.Error(t, err)
}
