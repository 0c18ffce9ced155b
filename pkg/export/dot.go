package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/caliper/pkg/core/constraint"
)

// Options configures DOT output.
type Options struct {
	// Hierarchy adds dashed container-to-child edges for every region that
	// appears in a constraint.
	Hierarchy bool
}

// ToDOT converts constraints to a Graphviz digraph. Each region is a node;
// each relational constraint is an edge from its first item to its second
// item labelled with the full equation. Literal constraints are listed in
// their region's node label.
func ToDOT(cs []*constraint.Constraint, opts Options) string {
	ids := newNodeIDs()
	literals := make(map[constraint.Region][]string)
	for _, c := range cs {
		if c == nil || c.Item == nil {
			continue
		}
		ids.add(c.Item)
		if c.IsLiteral() {
			literals[c.Item] = append(literals[c.Item], fmtLiteral(c))
		} else {
			ids.add(c.SecondItem)
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [fontsize=10];\n")
	buf.WriteString("\n")

	for _, r := range ids.order {
		label := strings.Join(append([]string{r.Name()}, literals[r]...), "\n")
		fmt.Fprintf(&buf, "  %q [label=%q];\n", ids.byRegion[r], label)
	}

	if opts.Hierarchy {
		buf.WriteString("\n")
		for _, r := range ids.order {
			if parent := r.Container(); parent != nil {
				if id, ok := ids.byRegion[parent]; ok {
					fmt.Fprintf(&buf, "  %q -> %q [style=dashed, color=grey, arrowhead=none];\n", id, ids.byRegion[r])
				}
			}
		}
	}

	buf.WriteString("\n")
	for _, c := range cs {
		if c == nil || c.Item == nil || c.IsLiteral() {
			continue
		}
		attrs := []string{fmt.Sprintf("label=%q", c.String())}
		if !c.Priority.IsRequired() {
			attrs = append(attrs, "style=dashed")
		}
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", ids.byRegion[c.Item], ids.byRegion[c.SecondItem], strings.Join(attrs, ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLiteral(c *constraint.Constraint) string {
	s := fmt.Sprintf("%s %s %g", c.Attribute, c.Relation, c.Constant)
	if !c.Priority.IsRequired() {
		s += fmt.Sprintf(" @%g", c.Priority)
	}
	return s
}

// nodeIDs assigns each region a stable DOT identifier. Regions sharing a
// name get a "#n" suffix.
type nodeIDs struct {
	byRegion map[constraint.Region]string
	taken    map[string]int
	order    []constraint.Region
}

func newNodeIDs() *nodeIDs {
	return &nodeIDs{
		byRegion: make(map[constraint.Region]string),
		taken:    make(map[string]int),
	}
}

func (n *nodeIDs) add(r constraint.Region) {
	if r == nil {
		return
	}
	if _, ok := n.byRegion[r]; ok {
		return
	}
	name := r.Name()
	n.taken[name]++
	id := name
	if k := n.taken[name]; k > 1 {
		id = fmt.Sprintf("%s#%d", name, k)
	}
	n.byRegion[r] = id
	n.order = append(n.order, r)
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

// normalizeViewBox rewrites the root svg tag so the drawing scales from a
// zero origin.
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

	tag := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`, w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(tag))
}
