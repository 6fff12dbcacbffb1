// Package preset loads named parameter presets from YAML. A preset file
// carries the same ten-field parameter record the engine validates at its
// boundary; the loader re-validates each preset on load so a bad file fails
// fast with the offending preset and field named.
package preset

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/calebgw/driftbeam/internal/engine"
)

// File is a parsed preset file.
type File struct {
	Presets map[string]engine.Params `yaml:"presets"`
}

// Builtin returns the presets shipped with the CLI.
func Builtin() *File {
	return &File{Presets: map[string]engine.Params{
		"baseline": {
			Seed: 42, NodeCount: 24, EdgeDensity: 0.22, OverlapPercent: 0.3,
			RecursionDepth: 6, Rigidity: 0.3, BeamWidth: 4,
			ActivationThreshold: 0.5, ContextBlend: 0.55,
			WeightLearningRate: 0.2, DriftBias: 0.08,
		},
		"dense": {
			Seed: 7, NodeCount: 40, EdgeDensity: 0.5, OverlapPercent: 0.25,
			RecursionDepth: 8, Rigidity: 0.4, BeamWidth: 6,
			ActivationThreshold: 0.45, ContextBlend: 0.5,
			WeightLearningRate: 0.15, DriftBias: 0.05,
		},
		"drifty": {
			Seed: 1234, NodeCount: 30, EdgeDensity: 0.3, OverlapPercent: 0.4,
			RecursionDepth: 12, Rigidity: 0.25, BeamWidth: 5,
			ActivationThreshold: 0.5, ContextBlend: 0.6,
			WeightLearningRate: 0.3, DriftBias: 0.2,
		},
	}}
}

// Load reads and validates a preset file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading preset file: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing preset file: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("preset file %s defines no presets", path)
	}
	for name, p := range f.Presets {
		if err := engine.ValidateParams(p); err != nil {
			return nil, fmt.Errorf("preset %q: %w", name, err)
		}
	}
	return &f, nil
}

// Get returns the named preset.
func (f *File) Get(name string) (engine.Params, error) {
	p, ok := f.Presets[name]
	if !ok {
		return engine.Params{}, fmt.Errorf("unknown preset %q (have: %v)", name, f.Names())
	}
	return p, nil
}

// Names lists the preset names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
