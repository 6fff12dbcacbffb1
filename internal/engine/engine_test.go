package engine

import (
	"errors"
	"math"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/calebgw/driftbeam/internal/runlog"
)

// scenarioParams is the reference parameter set from the acceptance scenario.
func scenarioParams() Params {
	return Params{
		Seed:                42,
		NodeCount:           24,
		EdgeDensity:         0.22,
		OverlapPercent:      0.3,
		RecursionDepth:      6,
		Rigidity:            0.3,
		BeamWidth:           4,
		ActivationThreshold: 0.5,
		ContextBlend:        0.55,
		WeightLearningRate:  0.2,
		DriftBias:           0.08,
	}
}

func mustRun(t *testing.T, p Params) *Result {
	t.Helper()
	res, err := Run(p)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

func TestRunDeterministic(t *testing.T) {
	p := scenarioParams()
	a := mustRun(t, p)
	b := mustRun(t, p)

	if !reflect.DeepEqual(a.RunLog, b.RunLog) {
		t.Error("identical params produced different runlogs")
	}
	ha, err := runlog.Hash(a.RunLog)
	if err != nil {
		t.Fatalf("Hash: %v", err)
	}
	hb, _ := runlog.Hash(b.RunLog)
	if ha != hb {
		t.Errorf("identical params hashed differently: %s vs %s", ha, hb)
	}
	if !reflect.DeepEqual(a.FinalGraph, b.FinalGraph) {
		t.Error("final graphs differ")
	}
	if !reflect.DeepEqual(a.FinalContext, b.FinalContext) {
		t.Error("final contexts differ")
	}
}

func TestRunSeedSensitivity(t *testing.T) {
	for _, pair := range [][2]uint32{{10, 11}, {100, 101}} {
		p := scenarioParams()
		p.Seed = pair[0]
		ha, _ := runlog.Hash(mustRun(t, p).RunLog)
		p.Seed = pair[1]
		hb, _ := runlog.Hash(mustRun(t, p).RunLog)
		if ha == hb {
			t.Errorf("seeds %d and %d produced the same hash %s", pair[0], pair[1], ha)
		}
	}
}

func TestRunLogShape(t *testing.T) {
	p := scenarioParams()
	res := mustRun(t, p)
	log := res.RunLog

	if log.Model != runlog.ModelName {
		t.Errorf("model = %q", log.Model)
	}
	if log.Timestamp != runlog.PlaceholderTimestamp {
		t.Errorf("timestamp = %q, want the stable placeholder", log.Timestamp)
	}
	if log.Params != p {
		t.Error("parameter snapshot does not match the invocation record")
	}
	if len(log.Steps) != p.RecursionDepth {
		t.Fatalf("expected %d steps, got %d", p.RecursionDepth, len(log.Steps))
	}
	for i, step := range log.Steps {
		if step.Step != i {
			t.Errorf("step %d has index %d", i, step.Step)
		}
		if step.Seed != p.Seed || step.Params != p {
			t.Errorf("step %d snapshot mismatch", i)
		}
		if len(step.Activations) != p.NodeCount {
			t.Errorf("step %d activation vector covers %d nodes, want %d",
				i, len(step.Activations), p.NodeCount)
		}
		if len(step.Beam) == 0 {
			t.Errorf("step %d has no beam candidates", i)
		}
		// Only an unexpanded seed beam may exceed the width.
		expanded := false
		for _, c := range step.Beam {
			if len(c.NodePath) > 1 {
				expanded = true
			}
		}
		if expanded && len(step.Beam) > p.BeamWidth {
			t.Errorf("step %d: expanded beam has %d candidates, width is %d",
				i, len(step.Beam), p.BeamWidth)
		}
	}
}

func TestActiveSubsetOfKeptPerStep(t *testing.T) {
	res := mustRun(t, scenarioParams())
	for _, step := range res.RunLog.Steps {
		pruned := make(map[string]bool, len(step.PrunedNodes))
		for _, id := range step.PrunedNodes {
			pruned[id] = true
		}
		for _, id := range step.ActiveNodes {
			if pruned[id] {
				t.Errorf("step %d: active node %s was pruned", step.Step, id)
			}
		}
	}
}

func TestDeltaBaseCaseAndL2(t *testing.T) {
	res := mustRun(t, scenarioParams())
	steps := res.RunLog.Steps

	if steps[0].Delta != 0 {
		t.Errorf("first step delta = %v, want exactly 0", steps[0].Delta)
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
			t.Errorf("step %d delta = %v, want %v", i, steps[i].Delta, want)
		}
	}
}

func TestPrunedEdgeValidityPerStep(t *testing.T) {
	res := mustRun(t, scenarioParams())
	for _, step := range res.RunLog.Steps {
		prunedNode := make(map[string]bool)
		for _, id := range step.PrunedNodes {
			prunedNode[id] = true
		}
		prunedEdge := make(map[string]bool)
		for _, id := range step.PrunedEdges {
			if prunedEdge[id] {
				t.Errorf("step %d: duplicate pruned edge id %s", step.Step, id)
			}
			prunedEdge[id] = true
		}
		// Every surviving edge must keep both endpoints in the kept set.
		for edgeID := range step.EdgeWeights {
			if prunedEdge[edgeID] {
				continue
			}
			parts := strings.SplitN(edgeID, "-", 2)
			if prunedNode[parts[0]] || prunedNode[parts[1]] {
				t.Errorf("step %d: kept edge %s has pruned endpoint", step.Step, edgeID)
			}
		}
	}
	if err := res.FinalGraph.Validate(); err != nil {
		t.Errorf("final graph invalid: %v", err)
	}
}

func TestWeightsDriftBetweenSteps(t *testing.T) {
	res := mustRun(t, scenarioParams())
	steps := res.RunLog.Steps
	if len(steps[0].EdgeWeights) == 0 {
		t.Skip("seed produced no edges")
	}
	changed := false
	for id, w0 := range steps[0].EdgeWeights {
		if steps[1].EdgeWeights[id] != w0 {
			changed = true
			break
		}
	}
	if !changed {
		t.Error("edge weights did not drift between steps 0 and 1")
	}
}

func TestSingleNodeRun(t *testing.T) {
	p := scenarioParams()
	p.NodeCount = 1
	res := mustRun(t, p)

	if len(res.FinalGraph.Edges) != 0 {
		t.Errorf("single-node run produced %d edges", len(res.FinalGraph.Edges))
	}
	for _, step := range res.RunLog.Steps {
		if len(step.Beam) != 1 {
			t.Fatalf("step %d: expected one trivial candidate, got %d", step.Step, len(step.Beam))
		}
		c := step.Beam[0]
		if len(c.NodePath) != 1 || len(c.EdgePath) != 0 {
			t.Errorf("step %d: candidate %+v is not the trivial one-node path", step.Step, c)
		}
		if len(step.Activations) != 1 {
			t.Errorf("step %d: activation vector has %d entries", step.Step, len(step.Activations))
		}
	}
}

func TestInvalidParams(t *testing.T) {
	cases := map[string]struct {
		mutate func(*Params)
		field  string
	}{
		"zero nodes":          {func(p *Params) { p.NodeCount = 0 }, "NodeCount"},
		"zero density":        {func(p *Params) { p.EdgeDensity = 0 }, "EdgeDensity"},
		"density above one":   {func(p *Params) { p.EdgeDensity = 1.5 }, "EdgeDensity"},
		"negative overlap":    {func(p *Params) { p.OverlapPercent = -0.1 }, "OverlapPercent"},
		"zero depth":          {func(p *Params) { p.RecursionDepth = 0 }, "RecursionDepth"},
		"zero rigidity":       {func(p *Params) { p.Rigidity = 0 }, "Rigidity"},
		"zero beam":           {func(p *Params) { p.BeamWidth = 0 }, "BeamWidth"},
		"threshold at one":    {func(p *Params) { p.ActivationThreshold = 1 }, "ActivationThreshold"},
		"blend above one":     {func(p *Params) { p.ContextBlend = 1.2 }, "ContextBlend"},
		"lr above one":        {func(p *Params) { p.WeightLearningRate = 2 }, "WeightLearningRate"},
		"drift bias negative": {func(p *Params) { p.DriftBias = -1 }, "DriftBias"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			p := scenarioParams()
			tc.mutate(&p)
			_, err := Run(p)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var ipe *InvalidParameterError
			if !errors.As(err, &ipe) {
				t.Fatalf("expected InvalidParameterError, got %T: %v", err, err)
			}
			if ipe.Field != tc.field {
				t.Errorf("error names field %s, want %s", ipe.Field, tc.field)
			}
		})
	}
}
