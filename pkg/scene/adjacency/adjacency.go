// Package adjacency renders room-connectivity graphs for a floor. Rooms are
// nodes, shared walls are edges, and edges carrying a door are drawn solid
// while plain adjacencies are dashed.
package adjacency

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/Achu067/PLANEXA/pkg/geometry"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/scene/sink"
)

const wallTol = 0.1

// Node is one room in the adjacency graph.
type Node struct {
	ID    string
	Label string
	Type  string
}

// Edge connects two adjacent rooms. Doored is true when an interior door sits
// on the shared wall.
type Edge struct {
	From   string
	To     string
	Doored bool
}

// Graph holds the room-connectivity graph of one floor.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Build derives the adjacency graph from room geometry. Two rooms are
// adjacent when their rectangles touch along a wall segment longer than the
// alignment tolerance.
func Build(f *plan.Floor) Graph {
	var g Graph

	counts := make(map[string]int)
	ids := make([]string, len(f.Rooms))
	for i, r := range f.Rooms {
		counts[r.Type]++
		ids[i] = fmt.Sprintf("%s_%d", r.Type, counts[r.Type])
	}
	for i, r := range f.Rooms {
		label := strings.ReplaceAll(r.Type, "_", " ")
		if counts[r.Type] > 1 {
			label = fmt.Sprintf("%s %d", label, indexOf(ids[i]))
		}
		g.Nodes = append(g.Nodes, Node{ID: ids[i], Label: label, Type: r.Type})
	}

	for i := range f.Rooms {
		for j := i + 1; j < len(f.Rooms); j++ {
			seg, ok := sharedSegment(f.Rooms[i].Rect(), f.Rooms[j].Rect())
			if !ok {
				continue
			}
			g.Edges = append(g.Edges, Edge{
				From:   ids[i],
				To:     ids[j],
				Doored: hasDoorOn(f.Doors, seg),
			})
		}
	}
	return g
}

func indexOf(id string) int {
	parts := strings.Split(id, "_")
	n, _ := strconv.Atoi(parts[len(parts)-1])
	return n
}

// segment is a shared wall span between two rooms.
type segment struct {
	at         float64 // fixed coordinate of the shared wall
	start, end float64 // extent along the wall
	horizontal bool
}

func sharedSegment(a, b geometry.Rect) (segment, bool) {
	// Vertical wall: a's right edge meets b's left edge, or vice versa.
	for _, pair := range [][2]geometry.Rect{{a, b}, {b, a}} {
		l, r := pair[0], pair[1]
		if abs(l.MaxX()-r.X) <= wallTol {
			lo, hi := max(l.Y, r.Y), min(l.MaxY(), r.MaxY())
			if hi-lo > wallTol {
				return segment{at: l.MaxX(), start: lo, end: hi}, true
			}
		}
		if abs(l.MaxY()-r.Y) <= wallTol {
			lo, hi := max(l.X, r.X), min(l.MaxX(), r.MaxX())
			if hi-lo > wallTol {
				return segment{at: l.MaxY(), start: lo, end: hi, horizontal: true}, true
			}
		}
	}
	return segment{}, false
}

func hasDoorOn(doors []plan.Door, seg segment) bool {
	for _, d := range doors {
		if d.Kind != plan.DoorInterior {
			continue
		}
		cx, cy := (d.X1+d.X2)/2, (d.Y1+d.Y2)/2
		if seg.horizontal {
			if abs(cy-seg.at) <= wallTol && cx >= seg.start-wallTol && cx <= seg.end+wallTol {
				return true
			}
		} else {
			if abs(cx-seg.at) <= wallTol && cy >= seg.start-wallTol && cy <= seg.end+wallTol {
				return true
			}
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// ToDOT converts a floor's room adjacency to Graphviz DOT format. The
// resulting DOT string can be rendered with [RenderSVG].
func ToDOT(f *plan.Floor) string {
	g := Build(f)

	var buf bytes.Buffer
	buf.WriteString("graph plan {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontcolor=white, fontsize=14, margin=\"0.15,0.1\"];\n")
	buf.WriteString("\n")

	for _, n := range g.Nodes {
		color, ok := sink.Palette[n.Type]
		if !ok {
			color = "#95a5a6"
		}
		fmt.Fprintf(&buf, "  %q [label=%q, fillcolor=%q];\n", n.ID, n.Label, color)
	}

	buf.WriteString("\n")
	for _, e := range g.Edges {
		if e.Doored {
			fmt.Fprintf(&buf, "  %q -- %q [penwidth=2];\n", e.From, e.To)
		} else {
			fmt.Fprintf(&buf, "  %q -- %q [style=dashed, color=grey];\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
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

// normalizeViewBox rewrites the root svg element so width and height match
// the viewBox. Graphviz emits point units that confuse some rasterizers.
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

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
