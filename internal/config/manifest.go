package config

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// CaseSpec describes one golden-output test case.
type CaseSpec struct {
	// Name identifies the case in logs and the summary.
	Name string `yaml:"name"`
	// Op is the graph operator the case evaluates.
	Op string `yaml:"op"`
	// Inputs maps graph tensor names to idx files under the data root.
	Inputs map[string]string `yaml:"inputs"`
	// Output names the graph tensor compared against the reference.
	Output string `yaml:"output"`
	// Reference is the golden idx file under the data root.
	Reference string `yaml:"reference"`
	// Threshold is the maximum acceptable mean absolute error for a
	// pass. Zero means "use the suite default".
	Threshold float64 `yaml:"threshold"`
}

// Manifest lists the cases of one suite run.
type Manifest struct {
	Cases []CaseSpec `yaml:"cases"`
}

// LoadManifest reads and validates a YAML suite manifest from fsys.
// Cases without a threshold inherit defaultThreshold.
func LoadManifest(fsys afero.Fs, path string, defaultThreshold float64) (*Manifest, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", path, err)
	}

	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", path, err)
	}

	if len(m.Cases) == 0 {
		return nil, fmt.Errorf("manifest: %s declares no cases", path)
	}

	for i := range m.Cases {
		c := &m.Cases[i]
		if c.Threshold == 0 {
			c.Threshold = defaultThreshold
		}
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("manifest: case %d: %w", i, err)
		}
	}

	return &m, nil
}

func (c *CaseSpec) validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("missing name")
	case c.Op == "":
		return fmt.Errorf("case %q: missing op", c.Name)
	case c.Output == "":
		return fmt.Errorf("case %q: missing output", c.Name)
	case c.Reference == "":
		return fmt.Errorf("case %q: missing reference", c.Name)
	case len(c.Inputs) == 0:
		return fmt.Errorf("case %q: missing inputs", c.Name)
	case c.Threshold <= 0:
		return fmt.Errorf("case %q: threshold must be > 0, got %g", c.Name, c.Threshold)
	}
	return nil
}
