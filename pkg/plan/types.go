// Package plan defines the building data model produced by the generation
// pipeline: floors, rooms, walls, openings, furniture, and the vertical
// circulation arena shared across floors.
//
// # Ownership
//
// A Building owns its Floors and the Staircase/Elevator records. Floors hold
// lightweight StairRef back-references into the building's stair arena; the
// full Staircase is never duplicated per floor. A Building is assembled by
// the pipeline, frozen once metrics are computed, and discarded after the
// response is returned; nothing in this package persists.
package plan

import "github.com/Achu067/PLANEXA/pkg/geometry"

// Footprint is the rectangular floor boundary in meters.
type Footprint struct {
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// Area returns the gross floor area.
func (f Footprint) Area() float64 { return f.Width * f.Length }

// RoomRequest is a single room to be placed, as computed by the area
// allocator. Immutable once created.
type RoomRequest struct {
	Type      string  `json:"type"`
	Area      float64 `json:"area"`
	MinWidth  float64 `json:"min_width"`
	MinLength float64 `json:"min_length"`
}

// Room is a placed room. Coordinates obey the boundary invariant
// (0 ≤ x, 0 ≤ y, x+width ≤ footprint.width, y+length ≤ footprint.length)
// and no two rooms on a floor overlap. Mutated only during packing and the
// style re-layout pass; immutable after a floor's packing completes.
type Room struct {
	Type   string  `json:"type"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Area   float64 `json:"area"`
}

// Rect returns the room's rectangle.
func (r Room) Rect() geometry.Rect {
	return geometry.Rect{X: r.X, Y: r.Y, W: r.Width, L: r.Length}
}

// Wall is a single wall segment. Four are derived per room, tagged exterior;
// coincident segments between adjacent rooms are tolerated and left to the
// renderer.
type Wall struct {
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
	Kind string  `json:"type"`
}

// Wall sides, named from the room's perspective with y growing north.
const (
	SideSouth = "south"
	SideEast  = "east"
	SideNorth = "north"
	SideWest  = "west"
)

// Window is an opening in exactly one room's wall.
type Window struct {
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	RoomType string  `json:"room_type"`
	WallSide string  `json:"wall_side"`
}

// Door classes and exterior subtypes.
const (
	DoorInterior = "interior"
	DoorExterior = "exterior"

	EntranceMain      = "main"
	EntranceSecondary = "secondary"
)

// Door is an opening connecting two rooms (interior) or a room and the
// outside (exterior, with a main/secondary subtype).
type Door struct {
	X1        float64 `json:"x1"`
	Y1        float64 `json:"y1"`
	X2        float64 `json:"x2"`
	Y2        float64 `json:"y2"`
	Kind      string  `json:"type"`
	Subtype   string  `json:"subtype,omitempty"`
	Width     float64 `json:"width"`
	RoomA     string  `json:"room_a"`
	RoomB     string  `json:"room_b,omitempty"`
	SwingSide string  `json:"swing_side"`
}

// FurnitureItem is a placed furniture piece. The rotation is one of
// 0, 90, 180, 270 degrees; the bounding rectangle swaps width/length for the
// 90/270 cases.
type FurnitureItem struct {
	Type     string  `json:"type"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Length   float64 `json:"length"`
	Rotation int     `json:"rotation"`
}

// BoundingRect returns the axis-aligned rectangle the item occupies,
// accounting for rotation.
func (f FurnitureItem) BoundingRect() geometry.Rect {
	w, l := f.Width, f.Length
	if f.Rotation == 90 || f.Rotation == 270 {
		w, l = l, w
	}
	return geometry.Rect{X: f.X, Y: f.Y, W: w, L: l}
}

// Step is one tread rectangle of a staircase, generated for visualization.
type Step struct {
	Number int     `json:"number"`
	Floor  int     `json:"floor"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

// AccessPoint is where a staircase meets one floor.
type AccessPoint struct {
	Floor           int     `json:"floor"`
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	DoorOrientation string  `json:"door_orientation"`
}

// Staircase orientations.
const (
	OrientNorthSouth = "north_south"
	OrientEastWest   = "east_west"
)

// Staircase is a single logical staircase serving every floor. Floors refer
// to it through StairRef; the record itself lives in the Building arena.
type Staircase struct {
	ID            string        `json:"id"`
	X             float64       `json:"x"`
	Y             float64       `json:"y"`
	Width         float64       `json:"width"`
	Length        float64       `json:"length"`
	Orientation   string        `json:"orientation"`
	FloorsServed  []int         `json:"floors_served"`
	StepsPerFloor int           `json:"steps_per_floor"`
	Steps         []Step        `json:"steps"`
	Access        []AccessPoint `json:"floor_access"`
}

// StairRef is a floor's lightweight reference to a staircase in the
// building arena.
type StairRef struct {
	ID     string  `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Length float64 `json:"length"`
}

// Elevator is one car of the elevator bank. Present only in buildings with
// three or more floors.
type Elevator struct {
	ID           string  `json:"id"`
	X            float64 `json:"x"`
	Y            float64 `json:"y"`
	Width        float64 `json:"width"`
	Length       float64 `json:"length"`
	FloorsServed []int   `json:"floors_served"`
	Capacity     int     `json:"capacity"`
	Speed        float64 `json:"speed"`
}

// FloorMetrics are the derived per-floor figures.
type FloorMetrics struct {
	TotalArea        float64 `json:"total_area"`
	RoomCount        int     `json:"room_count"`
	Efficiency       float64 `json:"efficiency"`
	CirculationArea  float64 `json:"circulation_area"`
	MaxStairDistance float64 `json:"max_stair_distance"`
}

// Floor is one storey of the building. Filled in pipeline order: rooms,
// walls, openings, furniture, stair references, then metrics.
//
// Furniture is keyed by room type; when a floor has several rooms of the
// same type their items accumulate under the shared key.
type Floor struct {
	Number      int                        `json:"floor_number"`
	Footprint   Footprint                  `json:"footprint"`
	Height      float64                    `json:"height"`
	GroundFloor bool                       `json:"is_ground_floor"`
	TopFloor    bool                       `json:"is_top_floor"`
	Features    []string                   `json:"features"`
	Rooms       []Room                     `json:"rooms"`
	Walls       []Wall                     `json:"walls"`
	Windows     []Window                   `json:"windows,omitempty"`
	Doors       []Door                     `json:"doors,omitempty"`
	Furniture   map[string][]FurnitureItem `json:"furniture,omitempty"`
	Stairs      []StairRef                 `json:"stairs"`
	Metrics     FloorMetrics               `json:"metrics"`
}

// BuildingMetrics are the aggregate figures across floors.
type BuildingMetrics struct {
	TotalArea         float64 `json:"total_area"`
	TotalRooms        int     `json:"total_rooms"`
	Floors            int     `json:"floors"`
	AverageEfficiency float64 `json:"average_efficiency"`
}

// Building is the top-level result: all floors plus the shared vertical
// circulation arena and aggregate metrics. The Seed reproduces the exact
// layout when fed back into the pipeline.
type Building struct {
	ID        string          `json:"id"`
	Style     string          `json:"style"`
	Floors    []*Floor        `json:"floors"`
	Stairs    []*Staircase    `json:"stairs"`
	Elevators []*Elevator     `json:"elevators"`
	Seed      uint64          `json:"seed"`
	Metrics   BuildingMetrics `json:"metrics"`
}
