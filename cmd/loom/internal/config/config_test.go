package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadMergesWithDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName),
		[]byte("dev:\n  port: 9000\n"), 0o644))

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Dev.Port)
	assert.Equal(t, "localhost", cfg.Dev.Host)
	assert.Equal(t, 100, cfg.Dev.DebounceMS)
}

func TestLoadRejectsInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName),
		[]byte("dev: [not a map"), 0o644))

	_, err := Load(dir)
	assert.Error(t, err)
}
