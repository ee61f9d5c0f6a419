// Package sink renders floor plans into output documents: SVG vector scenes,
// directly rasterized PNGs, and a JSON document of the full building.
package sink

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/Achu067/PLANEXA/pkg/plan"
)

// Scale is the default plan resolution in pixels per meter.
const Scale = 50.0

// dimensionMargin reserves space on the east and south edges for the
// dimension lines, titleMargin at the top for the floor caption.
const (
	dimensionMargin = 60.0
	titleMargin     = 40.0
)

// Palette maps element kinds and room types to their fill colors.
var Palette = map[string]string{
	"bedroom":   "#3498db",
	"living":    "#2ecc71",
	"kitchen":   "#e74c3c",
	"bathroom":  "#9b59b6",
	"office":    "#f39c12",
	"hallway":   "#bdc3c7",
	"stairs":    "#34495e",
	"elevator":  "#16a085",
	"wall":      "#2c3e50",
	"window":    "#3498db",
	"door":      "#e74c3c",
	"furniture": "#7f8c8d",
	"grid":      "#e0e0e0",
}

const fallbackRoomColor = "#95a5a6"

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale     float64
	windows   bool
	furniture bool
	grid      bool
	legend    bool
	title     string
}

// WithoutWindows omits window openings from the drawing.
func WithoutWindows() SVGOption { return func(r *svgRenderer) { r.windows = false } }

// WithoutFurniture omits furniture from the drawing.
func WithoutFurniture() SVGOption { return func(r *svgRenderer) { r.furniture = false } }

// WithoutGrid drops the one-meter background grid.
func WithoutGrid() SVGOption { return func(r *svgRenderer) { r.grid = false } }

// WithoutLegend drops the color legend panel.
func WithoutLegend() SVGOption { return func(r *svgRenderer) { r.legend = false } }

// WithScale overrides the pixels-per-meter resolution.
func WithScale(pxPerMeter float64) SVGOption {
	return func(r *svgRenderer) { r.scale = pxPerMeter }
}

// WithTitle captions the drawing; the default titles by floor number.
func WithTitle(title string) SVGOption { return func(r *svgRenderer) { r.title = title } }

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{scale: Scale, windows: true, furniture: true, grid: true, legend: true}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// RenderSVG draws one floor as a standalone SVG document.
func RenderSVG(f *plan.Floor, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)
	if r.title == "" {
		r.title = fmt.Sprintf("Floor %d", f.Number)
	}

	planW := f.Footprint.Width * r.scale
	planL := f.Footprint.Length * r.scale
	totalW := planW + dimensionMargin
	totalH := planL + dimensionMargin + titleMargin

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		totalW, totalH, totalW, totalH)

	if r.grid {
		r.renderGridDefs(&buf)
	}
	r.renderTitle(&buf, f, totalW)

	fmt.Fprintf(&buf, `  <g transform="translate(0, %.1f)">`+"\n", titleMargin)

	if r.grid {
		fmt.Fprintf(&buf, `    <rect x="0" y="0" width="%.1f" height="%.1f" fill="url(#grid)"/>`+"\n", planW, planL)
	}
	for _, room := range f.Rooms {
		r.renderRoom(&buf, room)
	}
	for _, wall := range f.Walls {
		r.renderWall(&buf, wall)
	}
	if r.windows {
		for _, w := range f.Windows {
			r.renderWindow(&buf, w)
		}
	}
	for _, d := range f.Doors {
		r.renderDoor(&buf, d)
	}
	if r.furniture {
		for _, roomType := range sortedKeys(f.Furniture) {
			for _, item := range f.Furniture[roomType] {
				r.renderFurniture(&buf, item)
			}
		}
	}
	for _, s := range f.Stairs {
		r.renderStair(&buf, s)
	}
	r.renderDimensions(&buf, f.Footprint)

	buf.WriteString("  </g>\n")

	if r.legend {
		r.renderLegend(&buf, planW)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func (r *svgRenderer) renderGridDefs(buf *bytes.Buffer) {
	g := r.scale // one-meter grid
	fmt.Fprintf(buf, `  <defs>
    <pattern id="grid" width="%.1f" height="%.1f" patternUnits="userSpaceOnUse">
      <line x1="0" y1="0" x2="%.1f" y2="0" stroke="%s" stroke-width="1"/>
      <line x1="0" y1="0" x2="0" y2="%.1f" stroke="%s" stroke-width="1"/>
    </pattern>
  </defs>
`, g, g, g, Palette["grid"], g, Palette["grid"])
}

func (r *svgRenderer) renderTitle(buf *bytes.Buffer, f *plan.Floor, totalW float64) {
	caption := r.title
	if len(f.Features) > 0 {
		caption += " (" + strings.Join(f.Features, ", ") + ")"
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="18px" font-weight="bold" fill="#2c3e50">%s</text>`+"\n",
		totalW/2, titleMargin/2+6, xmlEscape(caption))
}

func (r *svgRenderer) renderRoom(buf *bytes.Buffer, room plan.Room) {
	color, ok := Palette[room.Type]
	if !ok {
		color = fallbackRoomColor
	}
	x, y := room.X*r.scale, room.Y*r.scale
	w, l := room.Width*r.scale, room.Length*r.scale

	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s" stroke-width="2" opacity="0.8"/>`+"\n",
		x, y, w, l, color, Palette["wall"])
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="14px" font-weight="bold" fill="white">%s %.1fm²</text>`+"\n",
		x+w/2, y+l/2, xmlEscape(titleCase(room.Type)), room.Area)
}

func (r *svgRenderer) renderWall(buf *bytes.Buffer, w plan.Wall) {
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="4" stroke-linecap="round"/>`+"\n",
		w.X1*r.scale, w.Y1*r.scale, w.X2*r.scale, w.Y2*r.scale, Palette["wall"])
}

func (r *svgRenderer) renderWindow(buf *bytes.Buffer, w plan.Window) {
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="3" stroke-dasharray="5,5"/>`+"\n",
		w.X1*r.scale, w.Y1*r.scale, w.X2*r.scale, w.Y2*r.scale, Palette["window"])
}

func (r *svgRenderer) renderDoor(buf *bytes.Buffer, d plan.Door) {
	x, y := d.X1*r.scale, d.Y1*r.scale
	w := (d.X2 - d.X1) * r.scale
	h := (d.Y2 - d.Y1) * r.scale

	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="%s" stroke-width="2"/>`+"\n",
		x, y, w, h, Palette["door"])

	if d.SwingSide == "outward" {
		radius := w
		if h > w {
			radius = h
		}
		fmt.Fprintf(buf, `    <path d="M %.1f %.1f A %.1f %.1f 0 0 1 %.1f %.1f" fill="none" stroke="%s" stroke-width="1" stroke-dasharray="2,2"/>`+"\n",
			x, y, radius, radius, x+w, y+h, Palette["door"])
	}
}

func (r *svgRenderer) renderFurniture(buf *bytes.Buffer, item plan.FurnitureItem) {
	rect := item.BoundingRect()
	x, y := rect.X*r.scale, rect.Y*r.scale
	w, l := rect.W*r.scale, rect.L*r.scale

	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="2" fill="%s" stroke="#7f8c8d" stroke-width="1"/>`+"\n",
		x, y, w, l, Palette["furniture"])
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="10px" fill="white">%s</text>`+"\n",
		x+w/2, y+l/2, xmlEscape(titleCase(item.Type)))
}

func (r *svgRenderer) renderStair(buf *bytes.Buffer, s plan.StairRef) {
	x, y := s.X*r.scale, s.Y*r.scale
	w, l := s.Width*r.scale, s.Length*r.scale

	fmt.Fprintf(buf, `    <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#2c3e50" stroke-width="2"/>`+"\n",
		x, y, w, l, Palette["stairs"])
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="middle" font-size="12px" font-weight="bold" fill="white">STAIRS</text>`+"\n",
		x+w/2, y+l/2)
}

func (r *svgRenderer) renderDimensions(buf *bytes.Buffer, fp plan.Footprint) {
	w, l := fp.Width*r.scale, fp.Length*r.scale

	fmt.Fprintf(buf, `    <line x1="0" y1="%.1f" x2="%.1f" y2="%.1f" stroke="black" stroke-width="1"/>`+"\n", l+20, w, l+20)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" font-size="12px" fill="black">%.1fm</text>`+"\n", w/2, l+35, fp.Width)
	fmt.Fprintf(buf, `    <line x1="%.1f" y1="0" x2="%.1f" y2="%.1f" stroke="black" stroke-width="1"/>`+"\n", w+20, w+20, l)
	fmt.Fprintf(buf, `    <text x="%.1f" y="%.1f" text-anchor="middle" font-size="12px" fill="black" writing-mode="tb">%.1fm</text>`+"\n", w+35, l/2, fp.Length)
}

func (r *svgRenderer) renderLegend(buf *bytes.Buffer, planW float64) {
	entries := []struct{ label, key string }{
		{"Bedroom", "bedroom"},
		{"Living Room", "living"},
		{"Kitchen", "kitchen"},
		{"Bathroom", "bathroom"},
		{"Office", "office"},
		{"Stairs", "stairs"},
		{"Wall", "wall"},
		{"Window", "window"},
		{"Door", "door"},
	}

	x := planW - 150
	y := titleMargin + 20.0

	fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="160" height="180" fill="white" stroke="#ccc" stroke-width="1" opacity="0.9"/>`+"\n", x-10, y-10)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" text-anchor="middle" font-size="14px" font-weight="bold" fill="black">Legend</text>`+"\n", x+70, y+10)

	for i, e := range entries {
		rowY := y + 30 + float64(i)*15
		fmt.Fprintf(buf, `  <rect x="%.1f" y="%.1f" width="10" height="10" fill="%s" stroke="#666" stroke-width="0.5"/>`+"\n",
			x, rowY-5, Palette[e.key])
		fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="10px" fill="black">%s</text>`+"\n",
			x+20, rowY+3, e.label)
	}
}

func sortedKeys(m map[string][]plan.FurnitureItem) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func titleCase(s string) string {
	words := strings.Split(s, "_")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func xmlEscape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;", `"`, "&quot;")
	return r.Replace(s)
}
