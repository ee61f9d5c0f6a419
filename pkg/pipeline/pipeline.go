// Package pipeline provides the core generation pipeline for PLANEXA.
//
// This package implements the complete allocate → layout → render pipeline
// that can be used by CLI and API components. By centralizing this logic,
// we ensure consistent behavior across all entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Generate: distribute rooms across floors, pack each floor, derive
//     walls and openings, place furniture, plan vertical circulation, and
//     compute metrics
//  2. Render: produce per-floor and whole-building artifacts (SVG, PNG,
//     adjacency diagrams, multi-page PDF, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    Width:  10,
//	    Length: 8,
//	    Rooms:  map[string]int{"bedroom": 2, "bathroom": 1},
//	    Floors: 1,
//	    Style:  "modern",
//	    Formats: []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["floor_1.svg"]
package pipeline

import (
	"time"

	"github.com/Achu067/PLANEXA/pkg/cache"
	"github.com/Achu067/PLANEXA/pkg/errors"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

// Defaults applied by ValidateAndSetDefaults. CLI and API share these so a
// bare request means the same thing everywhere.
const (
	DefaultFloors = 1
	DefaultStyle  = standards.StyleModern

	// MaxFloors bounds a request. Taller buildings exhaust the corner
	// staircase slots long before this.
	MaxFloors = 50

	// MaxSide bounds footprint dimensions in meters.
	MaxSide = 200.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatPDF  = "pdf"
	FormatJSON = "json"
	FormatDOT  = "dot" // room-adjacency diagram, rendered as SVG
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatPDF:  true,
	FormatJSON: true,
	FormatDOT:  true,
}

// ValidStyles is the set of supported architectural styles.
var ValidStyles = map[string]bool{
	standards.StyleModern:      true,
	standards.StyleTraditional: true,
	standards.StyleMinimalist:  true,
	standards.StyleOpenPlan:    true,
}

// Options contains all configuration for the generation pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Footprint in meters, shared by every floor.
	Width  float64 `json:"width"`
	Length float64 `json:"length"`

	// Rooms maps room type to requested count.
	Rooms map[string]int `json:"rooms"`

	Floors int    `json:"floors,omitempty"`
	Style  string `json:"style,omitempty"`

	// Seed makes generation reproducible. Zero draws a fresh seed, which
	// is recorded on the Result and the Building.
	Seed uint64 `json:"seed,omitempty"`

	// IncludeWindows and IncludeFurniture default to true; use pointers so
	// an explicit false survives JSON round trips.
	IncludeWindows   *bool `json:"include_windows,omitempty"`
	IncludeFurniture *bool `json:"include_furniture,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Standards overrides the built-in style tables. Nil means defaults.
	Standards *standards.Standards `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Building is the complete generated model.
	Building *plan.Building

	// Seed is the seed actually used, for reproduction.
	Seed uint64

	// Artifacts contains rendered outputs keyed by name, e.g.
	// "floor_1.svg", "floor_1.dot.svg", "building.pdf", "building.json".
	Artifacts map[string][]byte

	// Stats contains timing information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	RoomCount    int
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	PlanHit   bool // Whether the building came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, pdf, json, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ValidateStyle checks that a style is valid.
func ValidateStyle(style string) error {
	if !ValidStyles[style] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid style: %q (must be one of: modern, traditional, minimalist, open_plan)", style)
	}
	return nil
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}

	if o.Width <= 0 || o.Length <= 0 {
		return errors.New(errors.ErrCodeInvalidFootprint,
			"footprint dimensions must be positive, got %.1fx%.1f", o.Width, o.Length)
	}
	if o.Width > MaxSide || o.Length > MaxSide {
		return errors.New(errors.ErrCodeInvalidFootprint,
			"footprint dimensions must not exceed %.0fm, got %.1fx%.1f", MaxSide, o.Width, o.Length)
	}

	if len(o.Rooms) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "at least one room is required")
	}
	for typ, n := range o.Rooms {
		if n <= 0 {
			return errors.New(errors.ErrCodeInvalidRoom,
				"room count for %q must be positive, got %d", typ, n)
		}
	}

	if o.Floors == 0 {
		o.Floors = DefaultFloors
	}
	if o.Floors < 1 || o.Floors > MaxFloors {
		return errors.New(errors.ErrCodeInvalidInput,
			"floors must be between 1 and %d, got %d", MaxFloors, o.Floors)
	}

	if o.Style == "" {
		o.Style = DefaultStyle
	}
	if err := ValidateStyle(o.Style); err != nil {
		return err
	}

	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}

	if o.Standards == nil {
		o.Standards = standards.Default()
	}

	o.validated = true
	return nil
}

// Windows reports whether window openings should be generated.
func (o *Options) Windows() bool {
	return o.IncludeWindows == nil || *o.IncludeWindows
}

// Furniture reports whether furniture should be placed.
func (o *Options) Furniture() bool {
	return o.IncludeFurniture == nil || *o.IncludeFurniture
}

// PlanKeyOpts returns cache key options for the generated building.
func (o *Options) PlanKeyOpts(seed uint64) cache.PlanKeyOpts {
	return cache.PlanKeyOpts{
		Width:     o.Width,
		Length:    o.Length,
		Rooms:     o.Rooms,
		Floors:    o.Floors,
		Style:     o.Style,
		Seed:      seed,
		Windows:   o.Windows(),
		Furniture: o.Furniture(),
	}
}

// ArtifactKeyOpts returns cache key options for one rendered artifact.
func (o *Options) ArtifactKeyOpts(format string, floor int) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:    format,
		Floor:     floor,
		Windows:   o.Windows(),
		Furniture: o.Furniture(),
	}
}
