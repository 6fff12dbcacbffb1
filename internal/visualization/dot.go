// Package visualization renders a graph snapshot in DOT or JSON form for
// external tooling. It is presentation glue over the engine's output: it
// reads a final graph and its activation scores and never touches engine
// state.
package visualization

import (
	"fmt"
	"strings"

	"github.com/calebgw/driftbeam/internal/activation"
	"github.com/calebgw/driftbeam/internal/graph"
)

// Format specifies the output format for graph rendering.
type Format string

const (
	FormatDOT  Format = "dot"
	FormatJSON Format = "json"
)

// Node fill colors by population: the prior/novel overlap band gets its own
// color so the generation bands are visible at a glance.
const (
	colorPrior   = "steelblue"
	colorNovel   = "mediumseagreen"
	colorOverlap = "goldenrod"
	colorPlain   = "lightgray"
)

// RenderDOT produces a Graphviz DOT representation of the graph. Node labels
// carry the activation score when scores is non-nil; edge pen width scales
// with weight so heavy edges stand out.
func RenderDOT(g *graph.Graph, scores activation.Scores) string {
	var b strings.Builder
	b.WriteString("graph driftbeam {\n")
	b.WriteString("  layout=neato;\n")
	b.WriteString("  node [shape=circle, style=filled, fontname=\"Helvetica\"];\n")
	b.WriteString("  edge [fontname=\"Helvetica\", fontsize=9];\n\n")

	for _, n := range g.Nodes {
		label := n.ID
		if scores != nil {
			label = fmt.Sprintf("%s\\n%.3f", n.ID, scores[n.ID])
		}
		b.WriteString(fmt.Sprintf("  %q [label=%q, fillcolor=%q];\n", n.ID, label, nodeColor(n)))
	}
	b.WriteString("\n")

	for _, e := range g.Edges {
		b.WriteString(fmt.Sprintf("  %q -- %q [label=\"%.3f\", penwidth=%.2f];\n",
			e.Source, e.Target, e.Weight, 0.5+e.Weight*3))
	}

	b.WriteString("}\n")
	return b.String()
}

func nodeColor(n graph.Node) string {
	switch {
	case n.IsPrior && n.IsNovel:
		return colorOverlap
	case n.IsPrior:
		return colorPrior
	case n.IsNovel:
		return colorNovel
	default:
		return colorPlain
	}
}

// RenderJSON produces a plain nodes/edges representation suitable for
// feeding a renderer.
func RenderJSON(g *graph.Graph, scores activation.Scores) map[string]any {
	nodes := make([]map[string]any, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		entry := map[string]any{
			"id":      n.ID,
			"isPrior": n.IsPrior,
			"isNovel": n.IsNovel,
		}
		if scores != nil {
			entry["score"] = scores[n.ID]
		}
		nodes = append(nodes, entry)
	}

	edges := make([]map[string]any, 0, len(g.Edges))
	for _, e := range g.Edges {
		edges = append(edges, map[string]any{
			"id":      e.ID,
			"source":  e.Source,
			"target":  e.Target,
			"weight":  e.Weight,
			"isPrior": e.IsPrior,
		})
	}

	return map[string]any{"nodes": nodes, "edges": edges}
}
