// Package pkg provides the core libraries for Planexa floor plan generation.
//
// # Overview
//
// Planexa turns a building brief (footprint, room counts, floors, style)
// into a fully laid out multi-storey floor plan. The pkg directory is
// organized into five main areas:
//
//  1. [plan] - Domain model (buildings, floors, rooms, openings) and the
//     architectural standards tables
//  2. [gen] - Generation stages (allocation, packing, openings, furniture,
//     vertical circulation)
//  3. [scene] - Rendering (SVG, PNG, adjacency diagrams, format conversion)
//  4. [cache] - Plan and artifact caching (file, Redis, null backends)
//  5. [pipeline] - Orchestration (generate → render) shared by CLI and API
//
// # Architecture
//
// The typical data flow through Planexa:
//
//	Building brief (width, length, rooms, floors, style, seed)
//	         ↓
//	    [gen/alloc] package (room requests + per-floor distribution)
//	         ↓
//	    [gen/pack] package (rectangle packing + wall derivation)
//	         ↓
//	    [gen/opening] + [gen/furnish] + [gen/vertical] packages
//	         ↓
//	    [plan] metrics
//	         ↓
//	    [scene] rendering → SVG/PNG/PDF/JSON output
//
// # Quick Start
//
// Run the full pipeline through a Runner:
//
//	import (
//	    "context"
//	    "github.com/Achu067/PLANEXA/pkg/pipeline"
//	)
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Width:  12,
//	    Length: 10,
//	    Rooms:  map[string]int{"bedroom": 2, "bathroom": 1, "kitchen": 1},
//	    Floors: 2,
//	    Seed:   42,
//	})
//	if err != nil {
//	    // handle error
//	}
//	svg := result.Artifacts["floor_1.svg"]
//
// Or drive the stages directly:
//
//	b, err := pipeline.Generate(opts)
//	artifacts, err := pipeline.Render(b, opts)
//
// # Main Packages
//
// [plan] - Building, Floor, Room, Wall, Window, Door, FurnitureItem,
// Staircase and Elevator types, plus metric computation. [plan/standards]
// holds the per-style room area and dimension tables.
//
// [gen/alloc] - Expands room counts into sized requests and distributes
// them across floors first-fit-descending.
//
// [gen/pack] - Packs rooms into the footprint (grid scan with wall-contact
// scoring) and derives exterior and interior walls.
//
// [gen/opening] - Window and door placement along walls, with swing sides.
//
// [gen/furnish] - Furniture placement per room type with style-dependent
// sizing and clearance rules.
//
// [gen/vertical] - Staircases and elevators shared by all floors, linked
// into each floor's layout.
//
// [scene/sink] - SVG, PNG and JSON output. [scene/adjacency] renders room
// adjacency graphs via Graphviz. [scene] converts SVG to PDF/PNG through
// rsvg-convert.
//
// [cache] - Content-addressed caching of generated plans and rendered
// artifacts with file, Redis and null backends.
//
// [pipeline] - Options validation, the generation pipeline, rendering
// dispatch, and the caching Runner used by CLI and API.
//
// [errors] - Coded errors shared across the module.
//
// [observability] - Optional hooks for instrumenting pipeline and cache
// events.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...          # All tests
//	go test ./pkg/gen/...      # Generation stages only
//
// [plan]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/plan
// [plan/standards]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/plan/standards
// [gen]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/gen
// [gen/alloc]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/gen/alloc
// [gen/pack]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/gen/pack
// [gen/opening]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/gen/opening
// [gen/furnish]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/gen/furnish
// [gen/vertical]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/gen/vertical
// [scene]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/scene
// [scene/sink]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/scene/sink
// [scene/adjacency]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/scene/adjacency
// [cache]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/cache
// [pipeline]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/pipeline
// [errors]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/errors
// [observability]: https://pkg.go.dev/github.com/Achu067/PLANEXA/pkg/observability
package pkg
