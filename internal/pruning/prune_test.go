package pruning

import (
	"sort"
	"testing"

	"github.com/calebgw/driftbeam/internal/activation"
	"github.com/calebgw/driftbeam/internal/graph"
)

func testGraph() *graph.Graph {
	return &graph.Graph{
		Nodes: []graph.Node{
			{ID: "n000"}, {ID: "n001"}, {ID: "n002"}, {ID: "n003"},
		},
		Edges: []graph.Edge{
			{ID: "n000-n001", Source: "n000", Target: "n001", Weight: 0.8},
			{ID: "n001-n002", Source: "n001", Target: "n002", Weight: 0.2},
			{ID: "n002-n003", Source: "n002", Target: "n003", Weight: 0.9},
		},
	}
}

func TestPruneThresholds(t *testing.T) {
	g := testGraph()
	scores := activation.Scores{"n000": 0.7, "n001": 0.55, "n002": 0.2, "n003": 0.05}

	// activationThreshold 0.5, rigidity 0.3 -> retention 0.15.
	res := Prune(g, scores, 0.5, 0.3)

	wantActive := []string{"n000", "n001"}
	if !equalIDs(res.Active, wantActive) {
		t.Errorf("active = %v, want %v", res.Active, wantActive)
	}
	if !equalIDs(res.PrunedNodes, []string{"n003"}) {
		t.Errorf("prunedNodes = %v, want [n003]", res.PrunedNodes)
	}

	// n002-n003 loses an endpoint; n001-n002 is pruned on weight (0.2 < 0.3).
	if !equalIDs(res.PrunedEdges, []string{"n001-n002", "n002-n003"}) {
		t.Errorf("prunedEdges = %v", res.PrunedEdges)
	}
	if len(res.Kept.Edges) != 1 || res.Kept.Edges[0].ID != "n000-n001" {
		t.Errorf("kept edges = %v", res.Kept.Edges)
	}
	if err := res.Kept.Validate(); err != nil {
		t.Errorf("kept graph invalid: %v", err)
	}
}

func TestActiveSubsetOfKept(t *testing.T) {
	g := testGraph()
	scores := activation.Scores{"n000": 0.9, "n001": 0.5, "n002": 0.45, "n003": 0.1}

	for _, rigidity := range []float64{0.1, 0.5, 1.0} {
		res := Prune(g, scores, 0.5, rigidity)
		kept := make(map[string]bool)
		for _, n := range res.Kept.Nodes {
			kept[n.ID] = true
		}
		for _, id := range res.Active {
			if !kept[id] {
				t.Errorf("rigidity %v: active node %s not in kept set", rigidity, id)
			}
		}
	}
}

func TestReportedIDsSorted(t *testing.T) {
	g := testGraph()
	scores := activation.Scores{"n000": 0.1, "n001": 0.1, "n002": 0.1, "n003": 0.1}
	res := Prune(g, scores, 0.5, 0.9)
	for name, ids := range map[string][]string{
		"active":      res.Active,
		"prunedNodes": res.PrunedNodes,
		"prunedEdges": res.PrunedEdges,
	} {
		if !sort.StringsAreSorted(ids) {
			t.Errorf("%s not sorted: %v", name, ids)
		}
	}
}

func equalIDs(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
