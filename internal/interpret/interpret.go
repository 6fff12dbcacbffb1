// Package interpret summarizes a step: the strongest nodes by activation,
// the edges carrying the most beam traffic, and a centroid of the kept
// graph's activation pattern. Summarization never mutates its inputs.
package interpret

import (
	"sort"

	"github.com/calebgw/driftbeam/internal/activation"
	"github.com/calebgw/driftbeam/internal/beam"
	"github.com/calebgw/driftbeam/internal/graph"
	"github.com/calebgw/driftbeam/internal/mathutil"
)

// TopN is how many nodes and edges a summary ranks.
const TopN = 5

// Ranked pairs an ID with the value that ranked it.
type Ranked struct {
	ID    string  `json:"id"`
	Score float64 `json:"score"`
}

// Summary is the interpretation of one step.
type Summary struct {
	// TopNodes are the highest-activation kept nodes, ties broken by ID.
	TopNodes []Ranked `json:"topNodes"`
	// TopEdges rank edges by the total score of surviving beam candidates
	// traversing them, ties broken by ID.
	TopEdges []Ranked `json:"topEdges"`
	// Centroid maps every kept node to its current activation score.
	Centroid map[string]float64 `json:"centroid"`
}

// Summarize builds the interpretation for one step from the kept graph, the
// activation scores, and the surviving beam candidates.
func Summarize(kept *graph.Graph, scores activation.Scores, candidates []beam.Candidate) Summary {
	nodes := make([]Ranked, 0, len(kept.Nodes))
	centroid := make(map[string]float64, len(kept.Nodes))
	for _, n := range kept.Nodes {
		nodes = append(nodes, Ranked{ID: n.ID, Score: scores[n.ID]})
		centroid[n.ID] = scores[n.ID]
	}

	contribution := make(map[string]float64)
	for _, cand := range candidates {
		for _, edgeID := range cand.EdgePath {
			contribution[edgeID] = mathutil.Round3(contribution[edgeID] + cand.Score)
		}
	}
	edges := make([]Ranked, 0, len(contribution))
	for id, total := range contribution {
		edges = append(edges, Ranked{ID: id, Score: total})
	}

	return Summary{
		TopNodes: top(nodes),
		TopEdges: top(edges),
		Centroid: centroid,
	}
}

// top sorts by score descending with ID-ascending tie-break and keeps the
// first TopN entries.
func top(ranked []Ranked) []Ranked {
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].ID < ranked[j].ID
	})
	if len(ranked) > TopN {
		ranked = ranked[:TopN]
	}
	return ranked
}
