package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseCoefficients accepts separate args, comma lists and mixes.
func TestParseCoefficients(t *testing.T) {
	got, err := parseCoefficients([]string{"1", "2", "3", "4"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3, 4}, got)

	got, err = parseCoefficients([]string{"1,0,2,0,1"})
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 0, 2, 0, 1}, got)

	got, err = parseCoefficients([]string{"0.5,", "-2", " 3 "})
	require.NoError(t, err)
	assert.Equal(t, []float64{0.5, -2, 3}, got)

	_, err = parseCoefficients([]string{"1", "two"})
	assert.Error(t, err, "non-numeric coefficient rejected")

	_, err = parseCoefficients([]string{","})
	assert.Error(t, err, "nothing but separators rejected")
}

// TestLoadBatch parses the YAML schema and names anonymous entries.
func TestLoadBatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
systems:
  - name: plant A
    coefficients: [1, 2, 3, 4]
  - coefficients: [1, -2, 2]
`), 0o644))

	batch, err := loadBatch(path)
	require.NoError(t, err)
	require.Len(t, batch.Systems, 2)
	assert.Equal(t, "plant A", batch.Systems[0].Name)
	assert.Equal(t, []float64{1, 2, 3, 4}, batch.Systems[0].Coefficients)
	assert.Equal(t, "system 2", batch.Systems[1].Name, "anonymous entries get a fallback name")

	_, err = loadBatch(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(t.TempDir(), "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("systems: []\n"), 0o644))
	_, err = loadBatch(empty)
	assert.Error(t, err, "empty batch rejected")
}

// TestAnalyzeCommand_StableOutput runs the command tree end to end on
// a stable polynomial (no exit-code path) and checks the printed grid.
func TestAnalyzeCommand_StableOutput(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"analyze", "1", "2", "3", "4"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "s^3")
	assert.Contains(t, out.String(), "STABLE")
}

// TestAnalyzeCommand_FlagPrecedence: an explicit --epsilon reaches the
// engine and shows up in the pivot note.
func TestAnalyzeCommand_FlagPrecedence(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"analyze", "--epsilon", "0.0001", "1", "0", "2", "0"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "epsilon=0.0001")
}

// TestAnalyzeCommand_EnvOverridesDefault: HURWITZ_EPSILON reaches the
// engine when no flag is set.
func TestAnalyzeCommand_EnvOverridesDefault(t *testing.T) {
	t.Setenv("HURWITZ_EPSILON", "0.0001")

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"analyze", "1", "0", "2", "0"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "epsilon=0.0001")
}

// TestAnalyzeCommand_ConfigFile: tolerances load from a YAML config.
func TestAnalyzeCommand_ConfigFile(t *testing.T) {
	cfg := filepath.Join(t.TempDir(), "hurwitz.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("epsilon: 0.0001\n"), 0o644))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"analyze", "--config", cfg, "1", "0", "2", "0"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "epsilon=0.0001")
}

// TestBatchCommand_Summary counts unstable systems in the epilogue.
func TestBatchCommand_Summary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batch.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
systems:
  - name: stable plant
    coefficients: [1, 2, 3, 4]
  - name: unstable plant
    coefficients: [1, -2, 2]
`), 0o644))

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"batch", path})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "== stable plant ==")
	assert.Contains(t, out.String(), "== unstable plant ==")
	assert.Contains(t, out.String(), "2 system(s), 1 unstable")
}

// TestAnalyzeCommand_InvalidInput surfaces the engine's validation
// error instead of a partial table.
func TestAnalyzeCommand_InvalidInput(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"analyze", "0", "0", "0"})

	err := root.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid input")
}
