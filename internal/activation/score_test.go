package activation

import (
	"testing"

	"github.com/calebgw/driftbeam/internal/graph"
)

func testGraph() (*graph.Graph, graph.ContextVector) {
	g := &graph.Graph{
		Nodes: []graph.Node{
			{ID: "n000", IsPrior: true},
			{ID: "n001", IsPrior: true, IsNovel: true},
			{ID: "n002", IsNovel: true},
			{ID: "n003"}, // isolated
		},
		Edges: []graph.Edge{
			{ID: "n000-n001", Source: "n000", Target: "n001", Weight: 0.6, IsPrior: true},
			{ID: "n001-n002", Source: "n001", Target: "n002", Weight: 0.4},
		},
	}
	ctx := graph.ContextVector{"n000": 0.5, "n001": 0.7, "n002": 0.3, "n003": 0.9}
	return g, ctx
}

func TestScoreRange(t *testing.T) {
	g, ctx := testGraph()
	scores := Score(g, ctx, 0.55)
	if len(scores) != 4 {
		t.Fatalf("expected a score per node, got %d", len(scores))
	}
	for id, s := range scores {
		if s <= 0 || s >= 1 {
			t.Errorf("score[%s] = %v outside (0,1)", id, s)
		}
	}
}

func TestIsolatedNodeUsesContextOnly(t *testing.T) {
	g, ctx := testGraph()
	// With full context blend the isolated node and a hypothetical connected
	// node with the same context value score identically.
	full := Score(g, ctx, 1.0)
	structural := Score(g, ctx, 0.0)

	// contextBlend=1: raw = ctx + bonus; n003 raw=0.9, sigmoid((0.4)*4) ≈ 0.832.
	if full["n003"] != 0.832 {
		t.Errorf("full-blend isolated score = %v, want 0.832", full["n003"])
	}
	// contextBlend=0: isolated degreeScore is 0, raw=0, sigmoid(-2) ≈ 0.119.
	if structural["n003"] != 0.119 {
		t.Errorf("structural-blend isolated score = %v, want 0.119", structural["n003"])
	}
}

func TestNoveltyBonusApplied(t *testing.T) {
	g := &graph.Graph{
		Nodes: []graph.Node{{ID: "a"}, {ID: "b", IsNovel: true}},
	}
	ctx := graph.ContextVector{"a": 0.5, "b": 0.5}
	scores := Score(g, ctx, 1.0)
	if scores["b"] <= scores["a"] {
		t.Errorf("novel node should outscore identical plain node: %v vs %v",
			scores["b"], scores["a"])
	}
}

func TestScoreDeterministic(t *testing.T) {
	g, ctx := testGraph()
	a := Score(g, ctx, 0.55)
	b := Score(g, ctx, 0.55)
	for id := range a {
		if a[id] != b[id] {
			t.Errorf("score[%s] differs across calls: %v vs %v", id, a[id], b[id])
		}
	}
}
