package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sprout/pkg/genome"
)

// Options configures genome diagram rendering.
type Options struct {
	// Spine lists the skeleton path to highlight, usually [genome.Spine].
	// Nil highlights nothing.
	Spine []genome.NodeID

	// Detailed adds the node degree to each label.
	Detailed bool
}

// ToDOT converts a genome to an undirected Graphviz DOT graph.
// The resulting DOT string can be rendered using [RenderSVG].
//
// Spine nodes are filled and spine edges drawn bold so the body axis stands
// out from the limbs that become tubes.
func ToDOT(g *genome.Graph, opts Options) string {
	onSpine := make(map[genome.NodeID]bool, len(opts.Spine))
	for _, id := range opts.Spine {
		onSpine[id] = true
	}
	spineEdges := genome.PathEdges(opts.Spine)

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fillcolor=white, fontsize=14, width=0.4];\n")
	buf.WriteString("  edge [penwidth=1.5];\n")
	buf.WriteString("\n")

	for _, id := range g.Nodes() {
		attrs := fmtAttrs(g, id, onSpine[id], opts.Detailed)
		fmt.Fprintf(&buf, "  %d [%s];\n", id, attrs)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if spineEdges[e] {
			fmt.Fprintf(&buf, "  %d -- %d [penwidth=4, color=\"#2e7d32\"];\n", e.A, e.B)
			continue
		}
		fmt.Fprintf(&buf, "  %d -- %d;\n", e.A, e.B)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtAttrs(g *genome.Graph, id genome.NodeID, spine, detailed bool) string {
	label := strconv.Itoa(int(id))
	if detailed {
		label = fmt.Sprintf("%d\\ndeg %d", id, g.Degree(id))
	}
	attrs := fmt.Sprintf("label=\"%s\"", label)
	if spine {
		attrs += ", fillcolor=\"#a5d6a7\""
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
