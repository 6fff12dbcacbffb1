// Package drift evolves the simulation between steps. Edge weights relax
// toward the mean activation of their endpoints with a drift bias favoring
// non-prior edges plus a small seeded stochastic term; context values take a
// bounded periodic perturbation that needs no RNG at all, keeping edge
// stochasticity and context drift on decoupled streams. The package also
// computes the delta shift metric between consecutive activation vectors.
package drift

import (
	"math"
	"sort"

	"github.com/calebgw/driftbeam/internal/activation"
	"github.com/calebgw/driftbeam/internal/graph"
	"github.com/calebgw/driftbeam/internal/mathutil"
	"github.com/calebgw/driftbeam/internal/rng"
)

// noveltyScale damps the drift bias applied to non-prior edges.
const noveltyScale = 0.05

// jitterSpan is the width of the symmetric stochastic term on weights.
const jitterSpan = 0.02

// UpdateWeights returns a copy of g with every edge weight moved toward the
// mean activation of its endpoints at rate lr, biased upward on non-prior
// edges, and jittered by one fresh draw per edge from a generator seeded
// with stepSeed. Weights are clamped to [0, 1] and rounded to three
// decimals. Node identity and edge order are preserved.
func UpdateWeights(g *graph.Graph, scores activation.Scores, lr, driftBias float64, stepSeed uint32) *graph.Graph {
	gen := rng.New(stepSeed)

	edges := make([]graph.Edge, len(g.Edges))
	for i, e := range g.Edges {
		meanActivation := (scores[e.Source] + scores[e.Target]) / 2
		noveltyPush := 0.0
		if !e.IsPrior {
			noveltyPush = driftBias
		}
		jitter := (gen.Next() - 0.5) * jitterSpan

		w := e.Weight*(1-lr) + meanActivation*lr + noveltyPush*noveltyScale + jitter
		e.Weight = mathutil.Round3(mathutil.Clamp01(w))
		edges[i] = e
	}

	return &graph.Graph{Nodes: g.Nodes, Edges: edges}
}

// UpdateContext returns a perturbed copy of ctx. Each entry moves by
// sin((step+1)*(index+1))*0.005 + driftBias*0.01, where index is the entry's
// position in nodeOrder (the graph's fixed node order). The perturbation is
// deterministic and periodic rather than random, so replaying a step never
// consumes RNG draws for context.
func UpdateContext(ctx graph.ContextVector, nodeOrder []string, step int, driftBias float64) graph.ContextVector {
	next := make(graph.ContextVector, len(ctx))
	for i, id := range nodeOrder {
		v := ctx[id] + math.Sin(float64(step+1)*float64(i+1))*0.005 + driftBias*0.01
		next[id] = mathutil.Round3(mathutil.Clamp01(v))
	}
	return next
}

// Delta is the L2 distance between two activation vectors, treating keys
// missing from one side as 0, rounded to three decimals. The squares are
// summed over the sorted key union so the result never depends on map
// iteration order.
func Delta(current, previous activation.Scores) float64 {
	union := make(map[string]bool, len(current))
	for id := range current {
		union[id] = true
	}
	for id := range previous {
		union[id] = true
	}
	ids := make([]string, 0, len(union))
	for id := range union {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	sum := 0.0
	for _, id := range ids {
		d := current[id] - previous[id]
		sum += d * d
	}
	return mathutil.Round3(math.Sqrt(sum))
}
