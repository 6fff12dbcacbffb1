// Package engine is the entry point of the simulation: it validates a
// parameter record once at the boundary, generates the seeded graph, then
// loops score → prune → reconstruct → interpret → delta for the configured
// recursion depth, drifting weights and context between steps. A run is a
// closed computation — no I/O, no globals, fresh RNG instances from derived
// seeds — so identical parameters always produce bit-identical runlogs.
package engine

import (
	"github.com/calebgw/driftbeam/internal/activation"
	"github.com/calebgw/driftbeam/internal/beam"
	"github.com/calebgw/driftbeam/internal/drift"
	"github.com/calebgw/driftbeam/internal/graph"
	"github.com/calebgw/driftbeam/internal/interpret"
	"github.com/calebgw/driftbeam/internal/pruning"
	"github.com/calebgw/driftbeam/internal/runlog"
)

// Params is the parameter record for one run. It is the runlog's parameter
// snapshot type, so the record embedded in every exported runlog is the
// exact record the engine was invoked with.
type Params = runlog.Params

// Result is everything a run returns. The runlog is a pure value with no
// back-reference to the final graph or context.
type Result struct {
	FinalGraph   *graph.Graph
	FinalContext graph.ContextVector
	RunLog       runlog.RunLog
}

// Run executes one full simulation. It fails synchronously with an
// InvalidParameterError before constructing any state if a parameter is out
// of its documented range; on valid input it never fails.
func Run(p Params) (*Result, error) {
	if err := ValidateParams(p); err != nil {
		return nil, err
	}

	g, ctx := graph.Generate(p.Seed, graph.Shape{
		NodeCount:      p.NodeCount,
		EdgeDensity:    p.EdgeDensity,
		OverlapPercent: p.OverlapPercent,
	})

	log := runlog.RunLog{
		Model:     runlog.ModelName,
		Timestamp: runlog.PlaceholderTimestamp,
		Params:    p,
		Steps:     make([]runlog.StepRunLog, 0, p.RecursionDepth),
	}

	var prev activation.Scores
	for step := 0; step < p.RecursionDepth; step++ {
		scores := activation.Score(g, ctx, p.ContextBlend)
		pruned := pruning.Prune(g, scores, p.ActivationThreshold, p.Rigidity)
		candidates := beam.Reconstruct(pruned.Kept, scores, pruned.Active, p.BeamWidth)
		summary := interpret.Summarize(pruned.Kept, scores, candidates)

		delta := 0.0
		if step > 0 {
			delta = drift.Delta(scores, prev)
		}

		log.Steps = append(log.Steps, runlog.StepRunLog{
			Step:           step,
			Seed:           p.Seed,
			Params:         p,
			ActiveNodes:    pruned.Active,
			PrunedNodes:    pruned.PrunedNodes,
			PrunedEdges:    pruned.PrunedEdges,
			Beam:           candidates,
			Interpretation: summary,
			Activations:    scores,
			EdgeWeights:    edgeWeights(g),
			Delta:          delta,
		})

		prev = scores
		if step < p.RecursionDepth-1 {
			// Weight updates draw from a generator seeded per step so any
			// step is replayable without replaying the ones before it.
			g = drift.UpdateWeights(g, scores, p.WeightLearningRate, p.DriftBias, p.Seed+uint32(step)+1)
			ctx = drift.UpdateContext(ctx, g.NodeIDs(), step, p.DriftBias)
		}
	}

	return &Result{FinalGraph: g, FinalContext: ctx, RunLog: log}, nil
}

// edgeWeights snapshots the current weight of every edge by ID.
func edgeWeights(g *graph.Graph) map[string]float64 {
	weights := make(map[string]float64, len(g.Edges))
	for _, e := range g.Edges {
		weights[e.ID] = e.Weight
	}
	return weights
}
