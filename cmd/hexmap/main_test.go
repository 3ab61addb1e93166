package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "map.svg")
	require.NoError(t, writeOutput(path, []byte("<svg/>")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<svg/>", string(got))
}

func TestWriteOutput_Errors(t *testing.T) {
	err := writeOutput(filepath.Join(t.TempDir(), "missing", "map.svg"), []byte("x"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := loadConfig("", "other.yaml", true)
	require.NoError(t, err)
	assert.Equal(t, "other.yaml", cfg.Data)
	assert.True(t, cfg.DrawEmptyCells)
}
