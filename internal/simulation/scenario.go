package simulation

import (
	"testing"

	"github.com/calebgw/driftbeam/internal/engine"
	"github.com/calebgw/driftbeam/internal/preset"
)

// Scenario defines a complete simulation experiment.
type Scenario struct {
	// Name is a human-readable tag for debugging output.
	Name string

	// Params is the full parameter record the engine runs with.
	Params engine.Params
}

// StandardScenarios returns the scenarios every dynamics test sweeps: the
// built-in presets plus the degenerate shapes (single node, maximal density,
// loose and strict rigidity).
func StandardScenarios() []Scenario {
	var scenarios []Scenario

	builtin := preset.Builtin()
	for _, name := range builtin.Names() {
		p, _ := builtin.Get(name)
		scenarios = append(scenarios, Scenario{Name: "preset-" + name, Params: p})
	}

	base, _ := builtin.Get("baseline")

	single := base
	single.NodeCount = 1
	scenarios = append(scenarios, Scenario{Name: "single-node", Params: single})

	dense := base
	dense.EdgeDensity = 1.0
	dense.NodeCount = 12
	scenarios = append(scenarios, Scenario{Name: "complete-graph", Params: dense})

	loose := base
	loose.Rigidity = 0.05
	scenarios = append(scenarios, Scenario{Name: "loose-rigidity", Params: loose})

	strict := base
	strict.Rigidity = 1.0
	strict.ActivationThreshold = 0.8
	scenarios = append(scenarios, Scenario{Name: "strict-rigidity", Params: strict})

	return scenarios
}

// Run executes the scenario against the real engine and fails the test on
// any engine error.
func Run(t *testing.T, s Scenario) *engine.Result {
	t.Helper()
	res, err := engine.Run(s.Params)
	if err != nil {
		t.Fatalf("scenario %s: Run: %v", s.Name, err)
	}
	return res
}
