// Package furnish places furniture inside placed rooms. Each room type has a
// catalog template set; items are scaled by style and room size, sorted
// largest-first, and placed by their template's placement mode. Items that
// fit nowhere are dropped silently.
package furnish

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/Achu067/PLANEXA/pkg/geometry"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

// maxItemShare caps any single item at this fraction of the room area;
// oversized items are scaled down proportionally.
const maxItemShare = 0.3

const randomAttempts = 50

// Layouter places furniture. Randomness flows through the injected source.
type Layouter struct {
	std *standards.Standards
	rng *rand.Rand
}

func New(std *standards.Standards, rng *rand.Rand) *Layouter {
	return &Layouter{std: std, rng: rng}
}

// Layout furnishes every room and returns the items keyed by room type.
// Several rooms of the same type accumulate under one key.
func (l *Layouter) Layout(rooms []plan.Room, style string) map[string][]plan.FurnitureItem {
	out := make(map[string][]plan.FurnitureItem)
	for _, r := range rooms {
		items := l.furnishRoom(r, style)
		if len(items) > 0 {
			out[r.Type] = append(out[r.Type], items...)
		}
	}
	return out
}

func (l *Layouter) furnishRoom(room plan.Room, style string) []plan.FurnitureItem {
	templates := l.std.Templates(room.Type)
	if len(templates) == 0 {
		return nil
	}

	scaled := l.scaleTemplates(templates, room, style)
	sort.SliceStable(scaled, func(i, j int) bool {
		return scaled[i].Width*scaled[i].Length > scaled[j].Width*scaled[j].Length
	})

	var (
		placed   []plan.FurnitureItem
		occupied []claim
	)
	for _, tpl := range scaled {
		item, onTop, ok := l.placeItem(tpl, room, placed, occupied)
		if !ok {
			continue
		}
		placed = append(placed, item)
		// items resting on another piece do not claim floor space
		if !onTop {
			occupied = append(occupied, claim{
				rect:      item.BoundingRect(),
				clearance: l.std.Clearance(item.Type),
			})
		}
	}
	return placed
}

// claim is floor space held by a placed item together with the access
// clearance it demands from later placements.
type claim struct {
	rect      geometry.Rect
	clearance float64
}

// scaleTemplates applies the style size factor and the per-item room-area
// cap to the catalog dimensions.
func (l *Layouter) scaleTemplates(templates []standards.FurnitureTemplate, room plan.Room, style string) []standards.FurnitureTemplate {
	mult := l.std.StyleFactors(style).FurnitureSize
	maxArea := room.Width * room.Length * maxItemShare

	out := make([]standards.FurnitureTemplate, len(templates))
	for i, tpl := range templates {
		tpl.Width = geometry.Round2(tpl.Width * mult)
		tpl.Length = geometry.Round2(tpl.Length * mult)
		if area := tpl.Width * tpl.Length; area > maxArea {
			scale := math.Sqrt(maxArea / area)
			tpl.Width = geometry.Round2(tpl.Width * scale)
			tpl.Length = geometry.Round2(tpl.Length * scale)
		}
		out[i] = tpl
	}
	return out
}

// placeItem dispatches on the template's placement mode. The second return
// reports whether the item sits on top of another piece (and therefore does
// not block floor space).
func (l *Layouter) placeItem(tpl standards.FurnitureTemplate, room plan.Room, placed []plan.FurnitureItem, occupied []claim) (plan.FurnitureItem, bool, bool) {
	clearance := l.std.Clearance(tpl.Type)

	var (
		pos   position
		ok    bool
		onTop bool
	)
	switch tpl.Placement {
	case standards.PlaceAgainstWall:
		pos, ok = l.againstWall(tpl, room, occupied, clearance)
	case standards.PlaceCenter:
		pos, ok = l.center(tpl, room, occupied, clearance)
	case standards.PlaceCorner:
		pos, ok = l.corner(tpl, room, occupied, clearance)
	case standards.PlaceNextToBed:
		pos, ok = l.nextToAnchor(tpl, room, placed, occupied, "bed", clearance)
	case standards.PlaceOnCounter:
		pos, ok = l.onAnchor(tpl, room, occupied, placed, "kitchen_counter")
		onTop = ok && hasAnchor(placed, "kitchen_counter")
	case standards.PlaceAtDesk:
		pos, ok = l.atDesk(tpl, room, placed, occupied)
	default:
		pos, ok = l.randomly(tpl, room, occupied, clearance)
	}
	if !ok {
		return plan.FurnitureItem{}, false, false
	}
	return plan.FurnitureItem{
		Type:     tpl.Type,
		X:        geometry.Round2(pos.x),
		Y:        geometry.Round2(pos.y),
		Width:    tpl.Width,
		Length:   tpl.Length,
		Rotation: pos.rotation,
	}, onTop, true
}

type position struct {
	x, y     float64
	rotation int
}

// snap rounds a candidate to centimeter precision before validation so the
// checked position is exactly the stored one.
func snap(c position) position {
	c.x = geometry.Round2(c.x)
	c.y = geometry.Round2(c.y)
	return c
}

// againstWall tries a flush placement on each of the four walls in random
// order. The west and east walls rotate the item 90 degrees.
func (l *Layouter) againstWall(tpl standards.FurnitureTemplate, room plan.Room, occupied []claim, clearance float64) (position, bool) {
	candidates := []position{
		{room.X, room.Y, 0},
		{room.X, room.Y + room.Length - tpl.Length, 0},
		{room.X, room.Y, 90},
		{room.X + room.Width - tpl.Length, room.Y, 90},
	}
	l.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, c := range candidates {
		c = snap(c)
		if l.valid(tpl, c, room, occupied, 0, clearance) {
			return c, true
		}
	}
	return position{}, false
}

// center puts the item at the room center, falling back to a 3x3 grid of
// half-meter offsets when the center collides.
func (l *Layouter) center(tpl standards.FurnitureTemplate, room plan.Room, occupied []claim, clearance float64) (position, bool) {
	cx := room.X + room.Width/2 - tpl.Width/2
	cy := room.Y + room.Length/2 - tpl.Length/2
	for _, dx := range []float64{0, -0.5, 0.5} {
		for _, dy := range []float64{0, -0.5, 0.5} {
			c := snap(position{cx + dx, cy + dy, 0})
			if l.valid(tpl, c, room, occupied, clearance, clearance) {
				return c, true
			}
		}
	}
	return position{}, false
}

func (l *Layouter) corner(tpl standards.FurnitureTemplate, room plan.Room, occupied []claim, clearance float64) (position, bool) {
	candidates := []position{
		{room.X + clearance, room.Y + clearance, 0},
		{room.X + room.Width - tpl.Width - clearance, room.Y + clearance, 0},
		{room.X + clearance, room.Y + room.Length - tpl.Length - clearance, 0},
		{room.X + room.Width - tpl.Width - clearance, room.Y + room.Length - tpl.Length - clearance, 0},
	}
	l.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	for _, c := range candidates {
		c = snap(c)
		if l.valid(tpl, c, room, occupied, 0, clearance) {
			return c, true
		}
	}
	return position{}, false
}

// nextToAnchor places the item beside an already-placed anchor piece,
// falling back to a wall placement when the anchor is absent.
func (l *Layouter) nextToAnchor(tpl standards.FurnitureTemplate, room plan.Room, placed []plan.FurnitureItem, occupied []claim, anchorType string, clearance float64) (position, bool) {
	anchor, ok := findAnchor(placed, anchorType)
	if !ok {
		return l.againstWall(tpl, room, occupied, clearance)
	}
	// the gap must satisfy the larger of the two clearance demands
	gap := clearance
	if ac := l.std.Clearance(anchor.Type); ac > gap {
		gap = ac
	}
	ar := anchor.BoundingRect()
	candidates := []position{
		{ar.MaxX() + gap, ar.Y, 0},
		{ar.X - tpl.Width - gap, ar.Y, 0},
		{ar.X, ar.MaxY() + gap, 0},
		{ar.X, ar.Y - tpl.Length - gap, 0},
	}
	for _, c := range candidates {
		c = snap(c)
		if l.valid(tpl, c, room, occupied, 0, 0) {
			return c, true
		}
	}
	return position{}, false
}

// onAnchor rests the item on top of an anchor piece (sink on counter). The
// position is only boundary-checked; overlapping the anchor is the point.
// Without the anchor the item falls back to a wall placement.
func (l *Layouter) onAnchor(tpl standards.FurnitureTemplate, room plan.Room, occupied []claim, placed []plan.FurnitureItem, anchorType string) (position, bool) {
	anchor, ok := findAnchor(placed, anchorType)
	if !ok {
		return l.againstWall(tpl, room, occupied, 0.1)
	}
	c := snap(position{anchor.X + 0.1, anchor.Y + 0.1, 0})
	if !l.insideRoom(tpl, c, room, 0) {
		return position{}, false
	}
	return c, true
}

// atDesk puts a chair in front of the desk, falling back to a center
// placement when there is no desk.
func (l *Layouter) atDesk(tpl standards.FurnitureTemplate, room plan.Room, placed []plan.FurnitureItem, occupied []claim) (position, bool) {
	desk, ok := findAnchor(placed, "desk")
	if !ok {
		return l.center(tpl, room, occupied, 0.3)
	}
	c := snap(position{
		x: desk.X + desk.Width/2 - tpl.Width/2,
		y: desk.Y - tpl.Length - 0.3,
	})
	if l.valid(tpl, c, room, occupied, 0.1, 0.1) {
		return c, true
	}
	return position{}, false
}

func (l *Layouter) randomly(tpl standards.FurnitureTemplate, room plan.Room, occupied []claim, clearance float64) (position, bool) {
	spanX := room.Width - tpl.Width - 2*clearance
	spanY := room.Length - tpl.Length - 2*clearance
	if spanX < 0 || spanY < 0 {
		return position{}, false
	}
	rotations := []int{0, 90, 180, 270}
	for i := 0; i < randomAttempts; i++ {
		c := position{
			x:        geometry.Round2(room.X + clearance + l.rng.Float64()*spanX),
			y:        geometry.Round2(room.Y + clearance + l.rng.Float64()*spanY),
			rotation: rotations[l.rng.IntN(len(rotations))],
		}
		if l.valid(tpl, c, room, occupied, 0, clearance) {
			return c, true
		}
	}
	return position{}, false
}

// valid runs the placement test: the rotated bounding rectangle must sit
// inside the room (inset by margin), must not overlap any claimed rectangle,
// its clearance-expanded envelope must stay off every claim, and it must
// stay out of every claim's own clearance envelope.
func (l *Layouter) valid(tpl standards.FurnitureTemplate, pos position, room plan.Room, occupied []claim, margin, clearance float64) bool {
	if !l.insideRoom(tpl, pos, room, margin) {
		return false
	}
	rect := boundingRect(tpl, pos)
	expanded := rect.Expand(clearance)
	for _, o := range occupied {
		if rect.Overlaps(o.rect) || expanded.Overlaps(o.rect) {
			return false
		}
		if rect.Overlaps(o.rect.Expand(o.clearance)) {
			return false
		}
	}
	return true
}

func (l *Layouter) insideRoom(tpl standards.FurnitureTemplate, pos position, room plan.Room, margin float64) bool {
	rect := boundingRect(tpl, pos)
	return rect.X >= room.X+margin &&
		rect.Y >= room.Y+margin &&
		rect.MaxX() <= room.X+room.Width-margin &&
		rect.MaxY() <= room.Y+room.Length-margin
}

func boundingRect(tpl standards.FurnitureTemplate, pos position) geometry.Rect {
	w, l := tpl.Width, tpl.Length
	if pos.rotation == 90 || pos.rotation == 270 {
		w, l = l, w
	}
	return geometry.Rect{X: pos.x, Y: pos.y, W: w, L: l}
}

func findAnchor(placed []plan.FurnitureItem, anchorType string) (plan.FurnitureItem, bool) {
	for _, f := range placed {
		if f.Type == anchorType {
			return f, true
		}
	}
	return plan.FurnitureItem{}, false
}

func hasAnchor(placed []plan.FurnitureItem, anchorType string) bool {
	_, ok := findAnchor(placed, anchorType)
	return ok
}
