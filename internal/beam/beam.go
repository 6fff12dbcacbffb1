// Package beam reconstructs high-scoring paths over a pruned graph with a
// bounded-width best-first search. Each round every surviving candidate
// extends along every incident edge to a neighbor not already on its path;
// the pooled expansions are ranked and truncated to the beam width. The
// search is fully deterministic: ties in score break on the lexicographic
// order of the concatenated node path.
package beam

import (
	"sort"
	"strings"

	"github.com/calebgw/driftbeam/internal/activation"
	"github.com/calebgw/driftbeam/internal/graph"
	"github.com/calebgw/driftbeam/internal/mathutil"
)

// Rounds is the fixed number of expansion rounds, independent of the
// engine's recursion depth.
const Rounds = 3

// fallbackSeeds caps how many graph-order nodes seed the search when the
// active set is empty.
const fallbackSeeds = 3

// Candidate is one reconstructed path. EdgePath runs parallel to NodePath
// with one fewer entry; Score accumulates by addition, rounded to three
// decimals at each extension.
type Candidate struct {
	NodePath []string `json:"nodePath"`
	EdgePath []string `json:"edgePath"`
	Score    float64  `json:"score"`
}

// Reconstruct runs the beam search over the pruned graph. Seeds are the
// active-set nodes, or the first few graph-order nodes when the active set
// is empty; each seed starts a single-node candidate scored with its own
// activation. The search stops early if a round produces no expansion.
func Reconstruct(pruned *graph.Graph, scores activation.Scores, active []string, beamWidth int) []Candidate {
	seeds := active
	if len(seeds) == 0 {
		n := min(fallbackSeeds, len(pruned.Nodes))
		seeds = make([]string, 0, n)
		for _, node := range pruned.Nodes[:n] {
			seeds = append(seeds, node.ID)
		}
	}

	beam := make([]Candidate, 0, len(seeds))
	for _, id := range seeds {
		beam = append(beam, Candidate{
			NodePath: []string{id},
			Score:    scores[id],
		})
	}
	rank(beam)

	incident := pruned.IncidentEdges()

	for round := 0; round < Rounds; round++ {
		var pool []Candidate
		for _, cand := range beam {
			tail := cand.NodePath[len(cand.NodePath)-1]
			for _, ei := range incident[tail] {
				e := pruned.Edges[ei]
				next := e.Target
				if next == tail {
					next = e.Source
				}
				if onPath(cand.NodePath, next) {
					continue
				}
				pool = append(pool, extend(cand, next, e.ID, scores[next]+e.Weight))
			}
		}
		if len(pool) == 0 {
			break
		}
		rank(pool)
		if len(pool) > beamWidth {
			pool = pool[:beamWidth]
		}
		beam = pool
	}

	return beam
}

// extend copies cand with one more hop appended.
func extend(cand Candidate, nodeID, edgeID string, gain float64) Candidate {
	nodePath := make([]string, len(cand.NodePath)+1)
	copy(nodePath, cand.NodePath)
	nodePath[len(cand.NodePath)] = nodeID

	edgePath := make([]string, len(cand.EdgePath)+1)
	copy(edgePath, cand.EdgePath)
	edgePath[len(cand.EdgePath)] = edgeID

	return Candidate{
		NodePath: nodePath,
		EdgePath: edgePath,
		Score:    mathutil.Round3(cand.Score + gain),
	}
}

// rank sorts candidates by score descending, ties broken by the
// concatenated node path ascending.
func rank(cands []Candidate) {
	sort.Slice(cands, func(i, j int) bool {
		if cands[i].Score != cands[j].Score {
			return cands[i].Score > cands[j].Score
		}
		return strings.Join(cands[i].NodePath, "") < strings.Join(cands[j].NodePath, "")
	})
}

func onPath(path []string, id string) bool {
	for _, p := range path {
		if p == id {
			return true
		}
	}
	return false
}
