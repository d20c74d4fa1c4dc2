package td

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
)

// ToDOT returns an undirected Graphviz DOT drawing of the bag tree. Each node
// is labeled with its bag's vertices, shifted by offset (pass 1 for the
// 1-based numbering of PACE files).
func (d *Decomposition) ToDOT(offset int) string {
	var buf bytes.Buffer
	buf.WriteString("graph TD {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"filled,rounded\", fillcolor=white];\n\n")
	for i, b := range d.Bags {
		ms := b.Members()
		parts := make([]string, len(ms))
		for j, v := range ms {
			parts[j] = fmt.Sprint(v + offset)
		}
		fmt.Fprintf(&buf, "  b%d [label=%q];\n", i, strings.Join(parts, " "))
	}
	for _, e := range d.Edges {
		fmt.Fprintf(&buf, "  b%d -- b%d;\n", e[0], e[1])
	}
	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG renders ToDOT(offset) to an SVG document with the in-process
// Graphviz library.
func (d *Decomposition) RenderSVG(ctx context.Context, offset int) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(d.ToDOT(offset)))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}
