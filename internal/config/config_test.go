package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(LoadOptions{Defaults: DefaultConfig()})
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.DataRoot)
	assert.Equal(t, "suite.yaml", cfg.Manifest)
	assert.Equal(t, DefaultThreshold, cfg.Threshold)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadRejectsNonPositiveThreshold(t *testing.T) {
	defaults := DefaultConfig()
	defaults.Threshold = -1

	_, err := Load(LoadOptions{Defaults: defaults})
	assert.Error(t, err)
}

func writeManifest(t *testing.T, body string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "suite.yaml", []byte(body), 0o644))
	return fsys
}

func TestLoadManifest(t *testing.T) {
	fsys := writeManifest(t, `
cases:
  - name: simple max test
    op: Max
    inputs: {x: idx_data/input_x.idx}
    output: max_x
    reference: idx_data/output_max_x.idx
  - name: strict relu
    op: Relu
    inputs: {x: idx_data/input_x.idx}
    output: relu_x
    reference: idx_data/output_relu_x.idx
    threshold: 0.00001
`)

	m, err := LoadManifest(fsys, "suite.yaml", DefaultThreshold)
	require.NoError(t, err)
	require.Len(t, m.Cases, 2)

	assert.Equal(t, "simple max test", m.Cases[0].Name)
	assert.Equal(t, DefaultThreshold, m.Cases[0].Threshold, "missing threshold inherits the default")
	assert.Equal(t, 0.00001, m.Cases[1].Threshold)
	assert.Equal(t, "idx_data/input_x.idx", m.Cases[0].Inputs["x"])
}

func TestLoadManifestMissingFile(t *testing.T) {
	_, err := LoadManifest(afero.NewMemMapFs(), "suite.yaml", DefaultThreshold)
	assert.Error(t, err)
}

func TestLoadManifestEmpty(t *testing.T) {
	fsys := writeManifest(t, "cases: []\n")

	_, err := LoadManifest(fsys, "suite.yaml", DefaultThreshold)
	assert.Error(t, err)
}

func TestLoadManifestUnknownField(t *testing.T) {
	fsys := writeManifest(t, `
cases:
  - name: x
    op: Max
    inputs: {x: a.idx}
    output: y
    reference: b.idx
    tolerance: 0.1
`)

	_, err := LoadManifest(fsys, "suite.yaml", DefaultThreshold)
	assert.Error(t, err, "misspelled keys must not be dropped silently")
}

func TestLoadManifestValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing name", "cases:\n  - op: Max\n    inputs: {x: a.idx}\n    output: y\n    reference: b.idx\n"},
		{"missing op", "cases:\n  - name: c\n    inputs: {x: a.idx}\n    output: y\n    reference: b.idx\n"},
		{"missing output", "cases:\n  - name: c\n    op: Max\n    inputs: {x: a.idx}\n    reference: b.idx\n"},
		{"missing reference", "cases:\n  - name: c\n    op: Max\n    inputs: {x: a.idx}\n    output: y\n"},
		{"missing inputs", "cases:\n  - name: c\n    op: Max\n    output: y\n    reference: b.idx\n"},
		{"negative threshold", "cases:\n  - name: c\n    op: Max\n    inputs: {x: a.idx}\n    output: y\n    reference: b.idx\n    threshold: -0.5\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadManifest(writeManifest(t, tt.body), "suite.yaml", DefaultThreshold)
			assert.Error(t, err)
		})
	}
}
