package graph

import (
	"fmt"
	"math"

	"github.com/calebgw/driftbeam/internal/mathutil"
	"github.com/calebgw/driftbeam/internal/rng"
)

// Shape holds the generation parameters.
type Shape struct {
	NodeCount      int
	EdgeDensity    float64
	OverlapPercent float64
}

// Context value composition: priors start higher than novel-only nodes, the
// novelty band gets a fixed boost, and a scaled draw spreads values apart.
const (
	priorBase    = 0.45
	nonPriorBase = 0.35
	novelBoost   = 0.20
	contextSpan  = 0.25
)

// Generate builds a graph and its initial context vector from a seed and
// shape parameters. The output is a pure function of the inputs: all draws
// come from one generator seeded with seed and are consumed in a fixed
// traversal order (edges by i<j pair order, then context by node order).
//
// The prior population is the first ~60% of nodes; the novel population
// starts overlapCount nodes before the priors end, creating a deliberate
// band of nodes that are both prior and novel.
func Generate(seed uint32, shape Shape) (*Graph, ContextVector) {
	g := rng.New(seed)

	overlapCount := int(math.Floor(float64(shape.NodeCount) * shape.OverlapPercent))
	if overlapCount < 1 {
		overlapCount = 1
	}
	priorCount := int(math.Floor(float64(shape.NodeCount) * 0.6))
	if priorCount < overlapCount+1 {
		priorCount = overlapCount + 1
	}

	nodes := make([]Node, shape.NodeCount)
	for i := range nodes {
		nodes[i] = Node{
			ID:      fmt.Sprintf("n%03d", i),
			IsPrior: i < priorCount,
			IsNovel: i >= priorCount-overlapCount,
		}
	}

	var edges []Edge
	for i := 0; i < shape.NodeCount; i++ {
		for j := i + 1; j < shape.NodeCount; j++ {
			if g.Next() > shape.EdgeDensity {
				continue
			}
			edges = append(edges, Edge{
				ID:      EdgeID(nodes[i].ID, nodes[j].ID),
				Source:  nodes[i].ID,
				Target:  nodes[j].ID,
				Weight:  mathutil.Round3(0.2 + g.Next()*0.8),
				IsPrior: nodes[i].IsPrior && nodes[j].IsPrior,
			})
		}
	}

	ctx := make(ContextVector, shape.NodeCount)
	for _, n := range nodes {
		base := nonPriorBase
		if n.IsPrior {
			base = priorBase
		}
		if n.IsNovel {
			base += novelBoost
		}
		ctx[n.ID] = mathutil.Round3(base + g.Next()*contextSpan)
	}

	return &Graph{Nodes: nodes, Edges: edges}, ctx
}
