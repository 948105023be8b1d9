package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadAppConfig_DefaultsWhenMissing(t *testing.T) {
	wd, err0 := os.Getwd()
	require.NoError(t, err0)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	cfg, err := LoadAppConfig("")
	require.NoError(t, err)
	require.Equal(t, "kml", cfg.Output.Adapter)
	require.Equal(t, "utf-8", cfg.Output.Encoding)
	require.Equal(t, "-", cfg.Input.Path)
	require.Equal(t, "info", cfg.Log.Level)
}

func TestLoadAppConfig_ExplicitMissingFile(t *testing.T) {
	_, err := LoadAppConfig(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestLoadAppConfig_FromFile(t *testing.T) {
	path := writeConfig(t, `
input:
  path: events.jsonl
output:
  path: out.kml
  adapter: kml
  encoding: iso-8859-1
  strict: true
log:
  level: debug
`)
	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	require.Equal(t, "events.jsonl", cfg.Input.Path)
	require.Equal(t, "out.kml", cfg.Output.Path)
	require.Equal(t, "iso-8859-1", cfg.Output.Encoding)
	require.True(t, cfg.Output.Strict)
	require.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadAppConfig_InvalidLogLevel(t *testing.T) {
	path := writeConfig(t, `
log:
  level: loud
`)
	_, err := LoadAppConfig(path)
	require.Error(t, err)
}

func TestLoadAppConfig_EnvOverrides(t *testing.T) {
	path := writeConfig(t, `
output:
  adapter: kml
  encoding: utf-8
`)
	t.Setenv("EVENTS2KML_ENCODING", "iso-8859-1")
	t.Setenv("EVENTS2KML_STRICT", "true")
	t.Setenv("EVENTS2KML_INPUT", "other.jsonl")

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	require.Equal(t, "iso-8859-1", cfg.Output.Encoding)
	require.True(t, cfg.Output.Strict)
	require.Equal(t, "other.jsonl", cfg.Input.Path)
}
