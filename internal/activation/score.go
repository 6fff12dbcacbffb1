// Package activation computes per-node activation scores by blending each
// node's context value with the mean weight of its incident edges, then
// squashing the result through a sigmoid to sharpen the signal.
package activation

import (
	"math"

	"github.com/calebgw/driftbeam/internal/graph"
	"github.com/calebgw/driftbeam/internal/mathutil"
)

// NoveltyBonus is the additive boost applied to novel nodes before the
// sigmoid, nudging the newly-introduced population toward activation.
const NoveltyBonus = 0.08

// Scores maps node ID to an activation score in (0, 1).
type Scores map[string]float64

// Score evaluates every node of g. contextBlend in [0, 1] sets the mix
// between the node's context value and its structural degree score (mean
// incident edge weight, 0 for isolated nodes). The map is a stateless,
// order-independent function of its inputs.
func Score(g *graph.Graph, ctx graph.ContextVector, contextBlend float64) Scores {
	incident := g.IncidentEdges()
	scores := make(Scores, len(g.Nodes))
	for _, n := range g.Nodes {
		degreeScore := 0.0
		if idxs := incident[n.ID]; len(idxs) > 0 {
			sum := 0.0
			for _, i := range idxs {
				sum += g.Edges[i].Weight
			}
			degreeScore = sum / float64(len(idxs))
		}

		raw := contextBlend*ctx[n.ID] + (1-contextBlend)*degreeScore
		if n.IsNovel {
			raw += NoveltyBonus
		}
		scores[n.ID] = mathutil.Round3(sigmoid((raw - 0.5) * 4))
	}
	return scores
}

// sigmoid maps the centered, scaled raw score into (0, 1).
func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
