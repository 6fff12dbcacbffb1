// Package pruning filters a scored graph by rigidity. Two thresholds apply:
// the activation threshold selects the active set (reported, and used to seed
// beam reconstruction), while the looser product threshold*rigidity decides
// structural retention. Edges survive only when both endpoints are kept and
// the edge weight itself clears the rigidity bar.
package pruning

import (
	"github.com/calebgw/driftbeam/internal/activation"
	"github.com/calebgw/driftbeam/internal/graph"
)

// Result is the outcome of one pruning pass. ID lists are sorted
// lexicographically for stable logging; Kept preserves generation order.
type Result struct {
	Kept        *graph.Graph
	Active      []string
	PrunedNodes []string
	PrunedEdges []string
}

// Prune applies the rigidity thresholds to g. For rigidity <= 1 the active
// set is always a subset of the kept node set, since the retention threshold
// activationThreshold*rigidity is then no stricter than activationThreshold.
func Prune(g *graph.Graph, scores activation.Scores, activationThreshold, rigidity float64) Result {
	retention := activationThreshold * rigidity

	kept := make(map[string]bool, len(g.Nodes))
	var keptNodes []graph.Node
	var active, prunedNodes []string
	for _, n := range g.Nodes {
		s := scores[n.ID]
		if s >= activationThreshold {
			active = append(active, n.ID)
		}
		if s >= retention {
			kept[n.ID] = true
			keptNodes = append(keptNodes, n)
		} else {
			prunedNodes = append(prunedNodes, n.ID)
		}
	}

	var keptEdges []graph.Edge
	var prunedEdges []string
	for _, e := range g.Edges {
		if kept[e.Source] && kept[e.Target] && e.Weight >= rigidity {
			keptEdges = append(keptEdges, e)
		} else {
			prunedEdges = append(prunedEdges, e.ID)
		}
	}

	return Result{
		Kept:        &graph.Graph{Nodes: keptNodes, Edges: keptEdges},
		Active:      graph.SortedIDs(active),
		PrunedNodes: graph.SortedIDs(prunedNodes),
		PrunedEdges: graph.SortedIDs(prunedEdges),
	}
}
