package sink

import (
	"bytes"
	"fmt"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/Achu067/PLANEXA/pkg/plan"
)

// RenderPNG rasterizes one floor directly to PNG. It shares the SVG
// renderer's options but draws with a raster canvas, so PNG export works
// without librsvg installed.
func RenderPNG(f *plan.Floor, opts ...SVGOption) ([]byte, error) {
	r := newSVGRenderer(opts...)
	if r.title == "" {
		r.title = fmt.Sprintf("Floor %d", f.Number)
	}

	planW := f.Footprint.Width * r.scale
	planL := f.Footprint.Length * r.scale
	width := int(planW + dimensionMargin)
	height := int(planL + dimensionMargin + titleMargin)

	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	dc.SetHexColor("#ffffff")
	dc.Clear()

	dc.SetHexColor("#2c3e50")
	dc.DrawStringAnchored(r.title, float64(width)/2, titleMargin/2, 0.5, 0.5)

	dc.Push()
	dc.Translate(0, titleMargin)

	if r.grid {
		dc.SetHexColor(Palette["grid"])
		dc.SetLineWidth(1)
		for x := 0.0; x <= planW; x += r.scale {
			dc.DrawLine(x, 0, x, planL)
		}
		for y := 0.0; y <= planL; y += r.scale {
			dc.DrawLine(0, y, planW, y)
		}
		dc.Stroke()
	}

	for _, room := range f.Rooms {
		color, ok := Palette[room.Type]
		if !ok {
			color = fallbackRoomColor
		}
		x, y := room.X*r.scale, room.Y*r.scale
		w, l := room.Width*r.scale, room.Length*r.scale

		dc.SetHexColor(color + "cc")
		dc.DrawRectangle(x, y, w, l)
		dc.Fill()
		dc.SetHexColor(Palette["wall"])
		dc.SetLineWidth(2)
		dc.DrawRectangle(x, y, w, l)
		dc.Stroke()

		dc.SetHexColor("#ffffff")
		label := fmt.Sprintf("%s %.1fm2", titleCase(room.Type), room.Area)
		dc.DrawStringAnchored(label, x+w/2, y+l/2, 0.5, 0.5)
	}

	dc.SetHexColor(Palette["wall"])
	dc.SetLineWidth(3)
	for _, w := range f.Walls {
		dc.DrawLine(w.X1*r.scale, w.Y1*r.scale, w.X2*r.scale, w.Y2*r.scale)
	}
	dc.Stroke()

	if r.windows {
		dc.SetHexColor(Palette["window"])
		dc.SetLineWidth(3)
		dc.SetDash(5, 5)
		for _, w := range f.Windows {
			dc.DrawLine(w.X1*r.scale, w.Y1*r.scale, w.X2*r.scale, w.Y2*r.scale)
		}
		dc.Stroke()
		dc.SetDash()
	}

	dc.SetHexColor(Palette["door"])
	dc.SetLineWidth(2)
	for _, d := range f.Doors {
		dc.DrawRectangle(d.X1*r.scale, d.Y1*r.scale, (d.X2-d.X1)*r.scale, (d.Y2-d.Y1)*r.scale)
	}
	dc.Stroke()

	if r.furniture {
		for _, roomType := range sortedKeys(f.Furniture) {
			for _, item := range f.Furniture[roomType] {
				rect := item.BoundingRect()
				x, y := rect.X*r.scale, rect.Y*r.scale
				w, l := rect.W*r.scale, rect.L*r.scale

				dc.SetHexColor(Palette["furniture"])
				dc.DrawRoundedRectangle(x, y, w, l, 2)
				dc.Fill()
			}
		}
	}

	for _, s := range f.Stairs {
		x, y := s.X*r.scale, s.Y*r.scale
		w, l := s.Width*r.scale, s.Length*r.scale

		dc.SetHexColor(Palette["stairs"])
		dc.DrawRectangle(x, y, w, l)
		dc.Fill()
		dc.SetHexColor("#ffffff")
		dc.DrawStringAnchored("STAIRS", x+w/2, y+l/2, 0.5, 0.5)
	}

	dc.SetHexColor("#000000")
	dc.SetLineWidth(1)
	dc.DrawLine(0, planL+20, planW, planL+20)
	dc.DrawLine(planW+20, 0, planW+20, planL)
	dc.Stroke()
	dc.DrawStringAnchored(fmt.Sprintf("%.1fm", f.Footprint.Width), planW/2, planL+35, 0.5, 0.5)
	dc.DrawStringAnchored(fmt.Sprintf("%.1fm", f.Footprint.Length), planW+35, planL/2, 0.5, 0.5)

	dc.Pop()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
