package simulation

import (
	"math"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/calebgw/driftbeam/internal/engine"
	"github.com/calebgw/driftbeam/internal/runlog"
)

// AssertDeterministic asserts that re-running the scenario reproduces the
// runlog bit for bit and the same canonical hash.
func AssertDeterministic(t *testing.T, s Scenario, result *engine.Result) {
	t.Helper()
	again := Run(t, s)
	if !reflect.DeepEqual(result.RunLog, again.RunLog) {
		t.Errorf("AssertDeterministic: scenario %s produced different runlogs across runs", s.Name)
	}
	h1, err := runlog.Hash(result.RunLog)
	if err != nil {
		t.Fatalf("AssertDeterministic: hash: %v", err)
	}
	h2, _ := runlog.Hash(again.RunLog)
	if h1 != h2 {
		t.Errorf("AssertDeterministic: scenario %s hashed %s then %s", s.Name, h1, h2)
	}
}

// AssertActiveSubsetOfKept asserts that in every step no active node was
// pruned. This must hold for every rigidity <= 1.
func AssertActiveSubsetOfKept(t *testing.T, result *engine.Result) {
	t.Helper()
	for _, step := range result.RunLog.Steps {
		pruned := make(map[string]bool, len(step.PrunedNodes))
		for _, id := range step.PrunedNodes {
			pruned[id] = true
		}
		for _, id := range step.ActiveNodes {
			if pruned[id] {
				t.Errorf("AssertActiveSubsetOfKept: step %d: active node %s was pruned", step.Step, id)
			}
		}
	}
}

// AssertDeltaContract asserts the delta base case (step 0 is exactly 0) and
// that every later delta equals the L2 distance between consecutive
// activation vectors.
func AssertDeltaContract(t *testing.T, result *engine.Result) {
	t.Helper()
	steps := result.RunLog.Steps
	if len(steps) == 0 {
		t.Fatal("AssertDeltaContract: empty runlog")
	}
	if steps[0].Delta != 0 {
		t.Errorf("AssertDeltaContract: step 0 delta = %v, want exactly 0", steps[0].Delta)
	}
	for i := 1; i < len(steps); i++ {
		ids := make([]string, 0, len(steps[i].Activations))
		for id := range steps[i].Activations {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		sum := 0.0
		for _, id := range ids {
			d := steps[i].Activations[id] - steps[i-1].Activations[id]
			sum += d * d
		}
		want := math.Round(math.Sqrt(sum)*1000) / 1000
		if steps[i].Delta != want {
			t.Errorf("AssertDeltaContract: step %d delta = %v, want %v", i, steps[i].Delta, want)
		}
	}
}

// AssertEdgeValidity asserts that no surviving edge in any step references a
// pruned endpoint, and that pruned edge IDs never repeat within a step.
func AssertEdgeValidity(t *testing.T, result *engine.Result) {
	t.Helper()
	for _, step := range result.RunLog.Steps {
		prunedNode := make(map[string]bool, len(step.PrunedNodes))
		for _, id := range step.PrunedNodes {
			prunedNode[id] = true
		}
		prunedEdge := make(map[string]bool, len(step.PrunedEdges))
		for _, id := range step.PrunedEdges {
			if prunedEdge[id] {
				t.Errorf("AssertEdgeValidity: step %d: duplicate pruned edge %s", step.Step, id)
			}
			prunedEdge[id] = true
		}
		for edgeID := range step.EdgeWeights {
			if prunedEdge[edgeID] {
				continue
			}
			parts := strings.SplitN(edgeID, "-", 2)
			if prunedNode[parts[0]] || prunedNode[parts[1]] {
				t.Errorf("AssertEdgeValidity: step %d: kept edge %s has pruned endpoint", step.Step, edgeID)
			}
		}
	}
	if err := result.FinalGraph.Validate(); err != nil {
		t.Errorf("AssertEdgeValidity: final graph: %v", err)
	}
}

// AssertBeamBounds asserts that every step has at least one candidate and
// that any expanded beam respects the configured width.
func AssertBeamBounds(t *testing.T, result *engine.Result) {
	t.Helper()
	width := result.RunLog.Params.BeamWidth
	nodeCount := result.RunLog.Params.NodeCount
	for _, step := range result.RunLog.Steps {
		if len(step.Beam) == 0 {
			// Only a fully pruned graph leaves nothing to seed from.
			if kept := nodeCount - len(step.PrunedNodes); kept > 0 {
				t.Errorf("AssertBeamBounds: step %d has no candidates with %d kept nodes", step.Step, kept)
			}
			continue
		}
		expanded := false
		for _, c := range step.Beam {
			if len(c.EdgePath) != len(c.NodePath)-1 {
				t.Errorf("AssertBeamBounds: step %d: candidate %v has mismatched edge path", step.Step, c.NodePath)
			}
			if len(c.NodePath) > 1 {
				expanded = true
			}
		}
		if expanded && len(step.Beam) > width {
			t.Errorf("AssertBeamBounds: step %d: %d candidates exceed width %d", step.Step, len(step.Beam), width)
		}
	}
}
