// Package graph defines the synthetic graph model the engine simulates over:
// nodes carrying prior/novel membership flags, weighted undirected edges, and
// the per-node context vector. Graphs are treated as values — the engine
// replaces a graph between steps instead of mutating one in place, so every
// step snapshot is independently reproducible.
package graph

import (
	"fmt"
	"sort"
)

// Node is a vertex of the synthetic graph. Nodes are immutable once
// generated; identity is the zero-padded ID, stable across the whole run.
type Node struct {
	ID      string `json:"id"`
	IsPrior bool   `json:"isPrior"`
	IsNovel bool   `json:"isNovel"`
}

// Edge connects two nodes. Edges have undirected semantics but are stored
// with a fixed source/target order (generation index order), which also
// derives the ID — so no parallel edges can exist. Weight is the only
// mutable-between-steps field; IsPrior is set at generation time and holds
// iff both endpoints are prior nodes.
type Edge struct {
	ID      string  `json:"id"`
	Source  string  `json:"source"`
	Target  string  `json:"target"`
	Weight  float64 `json:"weight"`
	IsPrior bool    `json:"isPrior"`
}

// Graph is an ordered node sequence and an ordered edge sequence. Order is
// generation order (nodes by index, edges by nested i<j pair traversal) and
// is never re-sorted; reporting layers sort IDs themselves when they need a
// stable listing.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// ContextVector maps node ID to a context value in [0, 1], one entry per
// node. The key set is fixed for the whole run; values drift between steps.
type ContextVector map[string]float64

// EdgeID derives the identifier for the edge between two node IDs, in the
// stored source/target order.
func EdgeID(source, target string) string {
	return source + "-" + target
}

// IncidentEdges returns, for every node ID, the indices into g.Edges of the
// edges touching it. The map is a per-step transient; callers discard it
// before the next step.
func (g *Graph) IncidentEdges() map[string][]int {
	incident := make(map[string][]int, len(g.Nodes))
	for i, e := range g.Edges {
		incident[e.Source] = append(incident[e.Source], i)
		incident[e.Target] = append(incident[e.Target], i)
	}
	return incident
}

// NodeIDs returns the node identifiers in generation order.
func (g *Graph) NodeIDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// Validate checks the structural invariants: every edge's endpoints exist in
// the node sequence and no duplicate edge IDs appear.
func (g *Graph) Validate() error {
	nodes := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		nodes[n.ID] = true
	}
	seen := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		if seen[e.ID] {
			return fmt.Errorf("duplicate edge id %s", e.ID)
		}
		seen[e.ID] = true
		if !nodes[e.Source] || !nodes[e.Target] {
			return fmt.Errorf("edge %s references missing endpoint", e.ID)
		}
	}
	return nil
}

// SortedIDs returns a lexicographically sorted copy of ids.
func SortedIDs(ids []string) []string {
	out := make([]string, len(ids))
	copy(out, ids)
	sort.Strings(out)
	return out
}
