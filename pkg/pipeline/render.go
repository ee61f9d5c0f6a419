package pipeline

import (
	"bytes"
	"fmt"

	"github.com/Achu067/PLANEXA/pkg/errors"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/scene"
	"github.com/Achu067/PLANEXA/pkg/scene/adjacency"
	"github.com/Achu067/PLANEXA/pkg/scene/sink"
)

// Render produces the requested artifacts from a generated building.
// Artifact names follow a fixed scheme: per-floor documents are
// "floor_N.<ext>", whole-building documents are "building.<ext>".
func Render(b *plan.Building, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	svgOpts := sinkOptions(opts)
	artifacts := make(map[string][]byte)

	for _, format := range opts.Formats {
		switch format {
		case FormatSVG:
			for _, f := range b.Floors {
				artifacts[fmt.Sprintf("floor_%d.svg", f.Number)] = sink.RenderSVG(f, svgOpts...)
			}

		case FormatPNG:
			for _, f := range b.Floors {
				data, err := sink.RenderPNG(f, svgOpts...)
				if err != nil {
					return nil, errors.Wrap(errors.ErrCodeInternal, err, "render floor %d png", f.Number)
				}
				artifacts[fmt.Sprintf("floor_%d.png", f.Number)] = data
			}

		case FormatDOT:
			for _, f := range b.Floors {
				data, err := adjacency.RenderSVG(adjacency.ToDOT(f))
				if err != nil {
					return nil, errors.Wrap(errors.ErrCodeInternal, err, "render floor %d adjacency", f.Number)
				}
				artifacts[fmt.Sprintf("floor_%d.dot.svg", f.Number)] = data
			}

		case FormatJSON:
			data, err := sink.RenderJSON(b)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render building json")
			}
			artifacts["building.json"] = data

		case FormatPDF:
			pages := [][]byte{titlePage(b)}
			for _, f := range b.Floors {
				pages = append(pages, sink.RenderSVG(f, svgOpts...))
			}
			pages = append(pages, summaryPage(b))

			data, err := scene.ToPDFPages(pages)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInternal, err, "render building pdf")
			}
			artifacts["building.pdf"] = data

		default:
			return nil, errors.New(errors.ErrCodeUnsupported, "unsupported format: %s", format)
		}
	}

	return artifacts, nil
}

func sinkOptions(opts Options) []sink.SVGOption {
	var svgOpts []sink.SVGOption
	if !opts.Windows() {
		svgOpts = append(svgOpts, sink.WithoutWindows())
	}
	if !opts.Furniture() {
		svgOpts = append(svgOpts, sink.WithoutFurniture())
	}
	return svgOpts
}

// pageW and pageH size the PDF cover and summary pages. Floor pages keep
// their own plan-derived dimensions; rsvg-convert accepts mixed page sizes.
const (
	pageW = 800
	pageH = 600
)

func titlePage(b *plan.Building) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		pageW, pageH, pageW, pageH)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="#ffffff"/>`+"\n", pageW, pageH)
	fmt.Fprintf(&buf, `  <text x="%d" y="200" text-anchor="middle" font-size="36px" font-weight="bold" fill="#2c3e50">Building Plan</text>`+"\n", pageW/2)
	fmt.Fprintf(&buf, `  <text x="%d" y="260" text-anchor="middle" font-size="18px" fill="#2c3e50">Style: %s</text>`+"\n", pageW/2, b.Style)
	fmt.Fprintf(&buf, `  <text x="%d" y="290" text-anchor="middle" font-size="18px" fill="#2c3e50">Floors: %d</text>`+"\n", pageW/2, len(b.Floors))
	fmt.Fprintf(&buf, `  <text x="%d" y="320" text-anchor="middle" font-size="18px" fill="#2c3e50">Rooms: %d</text>`+"\n", pageW/2, b.Metrics.TotalRooms)
	fmt.Fprintf(&buf, `  <text x="%d" y="380" text-anchor="middle" font-size="12px" fill="#7f8c8d">Seed %d · Plan %s</text>`+"\n", pageW/2, b.Seed, b.ID)
	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func summaryPage(b *plan.Building) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		pageW, pageH, pageW, pageH)
	fmt.Fprintf(&buf, `  <rect width="%d" height="%d" fill="#ffffff"/>`+"\n", pageW, pageH)
	fmt.Fprintf(&buf, `  <text x="%d" y="80" text-anchor="middle" font-size="24px" font-weight="bold" fill="#2c3e50">Summary</text>`+"\n", pageW/2)

	y := 140
	for _, f := range b.Floors {
		fmt.Fprintf(&buf, `  <text x="100" y="%d" font-size="14px" fill="#2c3e50">Floor %d: %d rooms, %.2f m², efficiency %.1f%%</text>`+"\n",
			y, f.Number, f.Metrics.RoomCount, f.Metrics.TotalArea, f.Metrics.Efficiency)
		y += 28
	}

	y += 20
	fmt.Fprintf(&buf, `  <text x="100" y="%d" font-size="14px" font-weight="bold" fill="#2c3e50">Total: %d rooms, %.2f m², average efficiency %.1f%%</text>`+"\n",
		y, b.Metrics.TotalRooms, b.Metrics.TotalArea, b.Metrics.AverageEfficiency)
	fmt.Fprintf(&buf, `  <text x="100" y="%d" font-size="14px" fill="#2c3e50">Staircases: %d, Elevators: %d</text>`+"\n",
		y+28, len(b.Stairs), len(b.Elevators))

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
