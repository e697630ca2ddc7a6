package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwaldner/approxbench/internal/config"
	testdata "github.com/jwaldner/approxbench/test_data"
)

func scanConfig(variant, mode string) *config.Config {
	return &config.Config{
		Engine: config.EngineConfig{ExecutionMode: mode, Workers: 4},
		Sobel:  config.SobelConfig{Variant: variant},
	}
}

func TestRunScanOutput(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runScan(context.Background(), scanConfig("exact", "serial"), &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	interior := (testdata.ImageHeight - 2) * (testdata.ImageWidth - 2)
	require.Len(t, lines, interior+1)
	assert.Equal(t, "Sobel filtering", lines[len(lines)-1])
	for _, l := range lines[:interior] {
		assert.True(t, strings.HasPrefix(l, "New pixel "), l)
		assert.True(t, strings.HasSuffix(l, " "), "line %q keeps the trailing space", l)
	}
}

func TestRunScanParallelMatchesSerial(t *testing.T) {
	for _, v := range []string{"exact", "sw1", "sw2", "sw3", "sw4"} {
		var serial, parallel bytes.Buffer
		require.NoError(t, runScan(context.Background(), scanConfig(v, "serial"), &serial))
		require.NoError(t, runScan(context.Background(), scanConfig(v, "parallel"), &parallel))
		assert.Equal(t, serial.String(), parallel.String(), v)
	}
}

func TestRunScanUnknownVariant(t *testing.T) {
	var out bytes.Buffer
	err := runScan(context.Background(), scanConfig("sobel9", "serial"), &out)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRunCompare(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runCompare(context.Background(), scanConfig("exact", "serial"), &out))

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 6)
	assert.True(t, strings.HasPrefix(lines[0], "kernel"))
	assert.True(t, strings.HasPrefix(lines[1], "exact"))
	assert.True(t, strings.HasPrefix(lines[5], "sw4"))
}

func TestRejectsUnknownModeFromEnv(t *testing.T) {
	t.Setenv("ENGINE_EXECUTION_MODE", "paralel")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")})

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "serial|parallel|auto")
	assert.Empty(t, out.String())
}
