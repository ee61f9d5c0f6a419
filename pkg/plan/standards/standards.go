// Package standards holds the architectural parameter tables that drive the
// layout engine: target room areas, minimum dimensions, aspect ratios, window
// and door standards, furniture templates, clearances, and per-style
// multipliers.
//
// A Standards value is constructed once at process start (see [Default]) and
// shared read-only by every generation request. Deployments can override
// individual tables from a TOML file with [Load]; sections absent from the
// file keep their defaults.
package standards

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Architectural style names accepted by the pipeline.
const (
	StyleModern      = "modern"
	StyleTraditional = "traditional"
	StyleMinimalist  = "minimalist"
	StyleOpenPlan    = "open_plan"
)

// Furniture placement modes referenced by templates.
const (
	PlaceAgainstWall = "against_wall"
	PlaceCenter      = "center"
	PlaceCorner      = "corner"
	PlaceNextToBed   = "next_to_bed"
	PlaceOnCounter   = "on_counter"
	PlaceAtDesk      = "at_desk"
)

// Dims is a minimum width/length pair in meters.
type Dims struct {
	Width  float64 `toml:"width"`
	Length float64 `toml:"length"`
}

// WindowStandard describes how many windows a room type gets and the size
// range each window is drawn from.
type WindowStandard struct {
	Min     int     `toml:"min"`
	Max     int     `toml:"max"`
	MinSize float64 `toml:"min_size"`
	MaxSize float64 `toml:"max_size"`
}

// DoorStandard is the leaf size for a door class.
type DoorStandard struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// FurnitureTemplate is one item of a room type's furniture set, in its
// unscaled catalog dimensions.
type FurnitureTemplate struct {
	Type      string  `toml:"type"`
	Width     float64 `toml:"width"`
	Length    float64 `toml:"length"`
	Placement string  `toml:"placement"`
}

// StyleFactors are the multipliers a style applies on top of the base tables.
type StyleFactors struct {
	WindowCount   float64 `toml:"window_count"`
	WindowSize    float64 `toml:"window_size"`
	FurnitureSize float64 `toml:"furniture_size"`
}

// Circulation bundles the stair and elevator constants.
type Circulation struct {
	FloorHeight    float64 `toml:"floor_height"`
	StairWidth     float64 `toml:"stair_width"`
	StepRise       float64 `toml:"step_rise"`
	StepRun        float64 `toml:"step_run"`
	LandingLength  float64 `toml:"landing_length"`
	ElevatorWidth  float64 `toml:"elevator_width"`
	ElevatorLength float64 `toml:"elevator_length"`
	ElevatorGap    float64 `toml:"elevator_gap"`
	ElevatorCap    int     `toml:"elevator_capacity"`
	ElevatorSpeed  float64 `toml:"elevator_speed"`
}

// Standards is the full parameter set. All maps are keyed by room type except
// AspectRatios and Factors, which are keyed by style first.
type Standards struct {
	Areas        map[string]float64             `toml:"areas"`
	MinDims      map[string]Dims                `toml:"min_dims"`
	AspectRatios map[string]map[string]float64  `toml:"aspect_ratios"`
	Windows      map[string]WindowStandard      `toml:"windows"`
	Doors        map[string]DoorStandard        `toml:"doors"`
	Furniture    map[string][]FurnitureTemplate `toml:"furniture"`
	Clearances   map[string]float64             `toml:"clearances"`
	Factors      map[string]StyleFactors        `toml:"factors"`
	Circulation  Circulation                    `toml:"circulation"`
}

// Fallbacks applied for room types missing from the tables.
const (
	fallbackArea        = 10.0
	fallbackMinDim      = 3.0
	fallbackAspectRatio = 1.2
	fallbackClearance   = 0.5
)

// Default returns the built-in parameter tables.
func Default() *Standards {
	return &Standards{
		Areas: map[string]float64{
			"bedroom":  12,
			"living":   20,
			"kitchen":  10,
			"bathroom": 6,
			"office":   10,
		},
		MinDims: map[string]Dims{
			"bedroom":  {3, 3},
			"living":   {4, 4},
			"kitchen":  {2.5, 3},
			"bathroom": {1.8, 2.4},
			"office":   {2.5, 3},
		},
		AspectRatios: map[string]map[string]float64{
			StyleModern: {
				"bedroom": 1.2, "living": 1.5, "kitchen": 1.8, "bathroom": 1.3, "office": 1.4,
			},
			StyleTraditional: {
				"bedroom": 1.1, "living": 1.3, "kitchen": 1.5, "bathroom": 1.2, "office": 1.3,
			},
			StyleMinimalist: {
				"bedroom": 1.0, "living": 1.2, "kitchen": 1.4, "bathroom": 1.1, "office": 1.2,
			},
			StyleOpenPlan: {
				"bedroom": 1.3, "living": 1.7, "kitchen": 2.0, "bathroom": 1.4, "office": 1.5,
			},
		},
		Windows: map[string]WindowStandard{
			"bedroom":  {Min: 1, Max: 2, MinSize: 1.2, MaxSize: 1.5},
			"living":   {Min: 2, Max: 4, MinSize: 1.5, MaxSize: 2.0},
			"kitchen":  {Min: 1, Max: 2, MinSize: 1.0, MaxSize: 1.2},
			"bathroom": {Min: 0, Max: 1, MinSize: 0.6, MaxSize: 0.8},
			"office":   {Min: 1, Max: 2, MinSize: 1.0, MaxSize: 1.5},
		},
		Doors: map[string]DoorStandard{
			"interior": {Width: 0.9, Height: 2.1},
			"exterior": {Width: 1.0, Height: 2.1},
			"bathroom": {Width: 0.8, Height: 2.0},
		},
		Furniture: map[string][]FurnitureTemplate{
			"bedroom": {
				{Type: "bed", Width: 1.9, Length: 2.0, Placement: PlaceAgainstWall},
				{Type: "wardrobe", Width: 1.2, Length: 0.6, Placement: PlaceAgainstWall},
				{Type: "desk", Width: 1.4, Length: 0.6, Placement: PlaceAgainstWall},
				{Type: "nightstand", Width: 0.5, Length: 0.4, Placement: PlaceNextToBed},
			},
			"living": {
				{Type: "sofa", Width: 2.0, Length: 0.9, Placement: PlaceAgainstWall},
				{Type: "coffee_table", Width: 1.2, Length: 0.6, Placement: PlaceCenter},
				{Type: "tv_stand", Width: 1.8, Length: 0.4, Placement: PlaceAgainstWall},
				{Type: "armchair", Width: 0.9, Length: 0.9, Placement: PlaceCorner},
			},
			"kitchen": {
				{Type: "kitchen_counter", Width: 3.0, Length: 0.6, Placement: PlaceAgainstWall},
				{Type: "refrigerator", Width: 0.7, Length: 0.7, Placement: PlaceCorner},
				{Type: "sink", Width: 0.8, Length: 0.5, Placement: PlaceOnCounter},
				{Type: "stove", Width: 0.6, Length: 0.6, Placement: PlaceOnCounter},
			},
			"bathroom": {
				{Type: "toilet", Width: 0.7, Length: 0.8, Placement: PlaceAgainstWall},
				{Type: "sink", Width: 0.6, Length: 0.5, Placement: PlaceAgainstWall},
				{Type: "shower", Width: 0.9, Length: 0.9, Placement: PlaceCorner},
				{Type: "bathtub", Width: 1.7, Length: 0.7, Placement: PlaceAgainstWall},
			},
			"office": {
				{Type: "desk", Width: 1.6, Length: 0.8, Placement: PlaceCenter},
				{Type: "office_chair", Width: 0.6, Length: 0.6, Placement: PlaceAtDesk},
				{Type: "bookshelf", Width: 1.0, Length: 0.3, Placement: PlaceAgainstWall},
				{Type: "filing_cabinet", Width: 0.5, Length: 0.6, Placement: PlaceCorner},
			},
		},
		Clearances: map[string]float64{
			"bed":      0.6,
			"desk":     0.8,
			"sofa":     0.5,
			"table":    0.9,
			"wardrobe": 0.4,
			"toilet":   0.6,
			"sink":     0.5,
		},
		Factors: map[string]StyleFactors{
			StyleModern:      {WindowCount: 1.2, WindowSize: 1.2, FurnitureSize: 0.9},
			StyleTraditional: {WindowCount: 1.0, WindowSize: 1.0, FurnitureSize: 1.0},
			StyleMinimalist:  {WindowCount: 0.8, WindowSize: 1.5, FurnitureSize: 0.8},
			StyleOpenPlan:    {WindowCount: 1.5, WindowSize: 1.3, FurnitureSize: 1.1},
		},
		Circulation: Circulation{
			FloorHeight:    3.0,
			StairWidth:     1.0,
			StepRise:       0.18,
			StepRun:        0.28,
			LandingLength:  1.2,
			ElevatorWidth:  2.2,
			ElevatorLength: 2.5,
			ElevatorGap:    0.3,
			ElevatorCap:    8,
			ElevatorSpeed:  1.0,
		},
	}
}

// Load reads a TOML override file and merges it over the defaults.
// Only sections present in the file replace their default counterparts.
func Load(path string) (*Standards, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read standards file: %w", err)
	}

	var overlay Standards
	if err := toml.Unmarshal(data, &overlay); err != nil {
		return nil, fmt.Errorf("parse standards file %s: %w", path, err)
	}

	s := Default()
	if len(overlay.Areas) > 0 {
		s.Areas = overlay.Areas
	}
	if len(overlay.MinDims) > 0 {
		s.MinDims = overlay.MinDims
	}
	if len(overlay.AspectRatios) > 0 {
		s.AspectRatios = overlay.AspectRatios
	}
	if len(overlay.Windows) > 0 {
		s.Windows = overlay.Windows
	}
	if len(overlay.Doors) > 0 {
		s.Doors = overlay.Doors
	}
	if len(overlay.Furniture) > 0 {
		s.Furniture = overlay.Furniture
	}
	if len(overlay.Clearances) > 0 {
		s.Clearances = overlay.Clearances
	}
	if len(overlay.Factors) > 0 {
		s.Factors = overlay.Factors
	}
	if overlay.Circulation != (Circulation{}) {
		s.Circulation = overlay.Circulation
	}
	return s, nil
}

// Area returns the target area for a room type, falling back to 10 m².
func (s *Standards) Area(roomType string) float64 {
	if a, ok := s.Areas[roomType]; ok {
		return a
	}
	return fallbackArea
}

// MinDim returns the minimum dimensions for a room type, falling back to 3×3 m.
func (s *Standards) MinDim(roomType string) Dims {
	if d, ok := s.MinDims[roomType]; ok {
		return d
	}
	return Dims{Width: fallbackMinDim, Length: fallbackMinDim}
}

// AspectRatio returns the width²-to-area ratio for a style and room type.
// Unknown styles fall back to modern; unknown room types to 1.2.
func (s *Standards) AspectRatio(style, roomType string) float64 {
	ratios, ok := s.AspectRatios[style]
	if !ok {
		ratios = s.AspectRatios[StyleModern]
	}
	if r, ok := ratios[roomType]; ok {
		return r
	}
	return fallbackAspectRatio
}

// Window returns the window standard for a room type. The second return is
// false for room types that get no windows at all.
func (s *Standards) Window(roomType string) (WindowStandard, bool) {
	w, ok := s.Windows[roomType]
	return w, ok
}

// Door returns the door standard for a class ("interior", "exterior",
// "bathroom"), falling back to the interior standard.
func (s *Standards) Door(class string) DoorStandard {
	if d, ok := s.Doors[class]; ok {
		return d
	}
	return s.Doors["interior"]
}

// Templates returns the furniture template set for a room type; nil when the
// type has no catalog entry.
func (s *Standards) Templates(roomType string) []FurnitureTemplate {
	return s.Furniture[roomType]
}

// Clearance returns the access buffer for a furniture type, falling back to 0.5 m.
func (s *Standards) Clearance(furnitureType string) float64 {
	if c, ok := s.Clearances[furnitureType]; ok {
		return c
	}
	return fallbackClearance
}

// StyleFactors returns the multipliers for a style. Unknown styles get
// neutral factors.
func (s *Standards) StyleFactors(style string) StyleFactors {
	if f, ok := s.Factors[style]; ok {
		return f
	}
	return StyleFactors{WindowCount: 1.0, WindowSize: 1.0, FurnitureSize: 1.0}
}
