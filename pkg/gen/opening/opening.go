// Package opening derives windows and doors for a placed floor. Windows are
// distributed over each room's walls by style and room type; interior doors
// are cut where adjacent rooms share enough wall, and exterior entrances come
// off the public rooms.
package opening

import (
	"math/rand/v2"

	"github.com/Achu067/PLANEXA/pkg/geometry"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

// adjacencyTol is the collinearity tolerance for treating two room edges as
// a shared wall.
const adjacencyTol = 0.1

// Planner generates openings. Randomness flows through the injected source.
type Planner struct {
	std *standards.Standards
	rng *rand.Rand
}

func New(std *standards.Standards, rng *rand.Rand) *Planner {
	return &Planner{std: std, rng: rng}
}

// Plan returns the windows and doors for one floor's rooms.
func (p *Planner) Plan(rooms []plan.Room, style string) ([]plan.Window, []plan.Door) {
	var windows []plan.Window
	for _, r := range rooms {
		windows = append(windows, p.windowsFor(r, style)...)
	}

	var doors []plan.Door
	for i := range rooms {
		for j := i + 1; j < len(rooms); j++ {
			if d, ok := p.interiorDoor(rooms[i], rooms[j]); ok {
				doors = append(doors, d)
			}
		}
	}
	doors = append(doors, p.exteriorDoors(rooms)...)
	return windows, doors
}

// wallSeg is one side of a room, parameterized along its run.
type wallSeg struct {
	side   string
	x, y   float64 // start corner
	length float64
	horiz  bool
}

func roomWalls(r plan.Room) []wallSeg {
	return []wallSeg{
		{side: plan.SideSouth, x: r.X, y: r.Y, length: r.Width, horiz: true},
		{side: plan.SideEast, x: r.X + r.Width, y: r.Y, length: r.Length},
		{side: plan.SideNorth, x: r.X, y: r.Y + r.Length, length: r.Width, horiz: true},
		{side: plan.SideWest, x: r.X, y: r.Y, length: r.Length},
	}
}

// windowsFor places windows on a random selection of the room's walls. The
// target count is randint(min,max) scaled by the style factor and clamped to
// [min, 2*max]; one window goes on each selected wall.
func (p *Planner) windowsFor(r plan.Room, style string) []plan.Window {
	ws, ok := p.std.Window(r.Type)
	if !ok {
		return nil
	}
	factors := p.std.StyleFactors(style)

	count := ws.Min
	if span := ws.Max - ws.Min; span >= 0 {
		count = ws.Min + p.rng.IntN(span+1)
	}
	count = int(float64(count) * factors.WindowCount)
	if count < ws.Min {
		count = ws.Min
	}
	if limit := ws.Max * 2; count > limit {
		count = limit
	}

	walls := roomWalls(r)
	p.rng.Shuffle(len(walls), func(i, j int) { walls[i], walls[j] = walls[j], walls[i] })
	if count > len(walls) {
		count = len(walls)
	}

	var windows []plan.Window
	for _, w := range walls[:count] {
		width := (ws.MinSize + p.rng.Float64()*(ws.MaxSize-ws.MinSize)) * factors.WindowSize
		width = geometry.Round2(width)
		if width > w.length*0.8 {
			width = w.length * 0.8
		}

		avail := w.length - width
		hi := avail - 0.1
		if hi < 0.2 {
			hi = 0.2
		}
		offset := 0.1 + p.rng.Float64()*(hi-0.1)

		win := plan.Window{RoomType: r.Type, WallSide: w.side}
		if w.horiz {
			win.X1 = geometry.Round2(w.x + offset)
			win.Y1 = geometry.Round2(w.y)
			win.X2 = geometry.Round2(w.x + offset + width)
			win.Y2 = win.Y1
		} else {
			win.X1 = geometry.Round2(w.x)
			win.Y1 = geometry.Round2(w.y + offset)
			win.X2 = win.X1
			win.Y2 = geometry.Round2(w.y + offset + width)
		}
		windows = append(windows, win)
	}
	return windows
}

// interiorDoor tests adjacency between two rooms and, when their shared wall
// overlap is at least the interior door width, cuts a door centered on the
// overlap.
func (p *Planner) interiorDoor(a, b plan.Room) (plan.Door, bool) {
	seg, ok := sharedWall(a, b)
	if !ok {
		return plan.Door{}, false
	}
	width := p.std.Door(plan.DoorInterior).Width
	if seg.end-seg.start < width {
		return plan.Door{}, false
	}

	mid := (seg.start+seg.end)/2 - width/2
	d := plan.Door{
		Kind:  plan.DoorInterior,
		Width: width,
		RoomA: a.Type,
		RoomB: b.Type,
	}
	if seg.horiz {
		d.X1 = geometry.Round2(mid)
		d.Y1 = geometry.Round2(seg.at)
		d.X2 = geometry.Round2(d.X1 + width)
		d.Y2 = d.Y1
		if seg.side == plan.SideSouth {
			d.SwingSide = "top"
		} else {
			d.SwingSide = "bottom"
		}
	} else {
		d.X1 = geometry.Round2(seg.at)
		d.Y1 = geometry.Round2(mid)
		d.X2 = d.X1
		d.Y2 = geometry.Round2(d.Y1 + width)
		if seg.side == plan.SideEast {
			d.SwingSide = "left"
		} else {
			d.SwingSide = "right"
		}
	}
	return d, true
}

// overlapSeg is the shared boundary between two adjacent rooms: a run
// [start, end] along one axis at fixed coordinate `at`, labeled with the
// first room's wall side.
type overlapSeg struct {
	side       string
	start, end float64
	at         float64
	horiz      bool
}

func sharedWall(a, b plan.Room) (overlapSeg, bool) {
	abs := func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}

	if abs(a.Y+a.Length-b.Y) < adjacencyTol {
		start, end := max(a.X, b.X), min(a.X+a.Width, b.X+b.Width)
		if end > start {
			return overlapSeg{side: plan.SideNorth, start: start, end: end, at: a.Y + a.Length, horiz: true}, true
		}
	}
	if abs(b.Y+b.Length-a.Y) < adjacencyTol {
		start, end := max(a.X, b.X), min(a.X+a.Width, b.X+b.Width)
		if end > start {
			return overlapSeg{side: plan.SideSouth, start: start, end: end, at: a.Y, horiz: true}, true
		}
	}
	if abs(a.X+a.Width-b.X) < adjacencyTol {
		start, end := max(a.Y, b.Y), min(a.Y+a.Length, b.Y+b.Length)
		if end > start {
			return overlapSeg{side: plan.SideEast, start: start, end: end, at: a.X + a.Width}, true
		}
	}
	if abs(b.X+b.Width-a.X) < adjacencyTol {
		start, end := max(a.Y, b.Y), min(a.Y+a.Length, b.Y+b.Length)
		if end > start {
			return overlapSeg{side: plan.SideWest, start: start, end: end, at: a.X}, true
		}
	}
	return overlapSeg{}, false
}

// exteriorDoors places the main entrance on the first living room's south
// wall, centered, and with 50% probability a secondary door off the first
// kitchen at a random wall position.
func (p *Planner) exteriorDoors(rooms []plan.Room) []plan.Door {
	var doors []plan.Door

	if living, ok := firstOfType(rooms, "living"); ok {
		if d, ok := p.exteriorDoor(living, plan.EntranceMain); ok {
			doors = append(doors, d)
		}
	}
	if kitchen, ok := firstOfType(rooms, "kitchen"); ok && p.rng.Float64() > 0.5 {
		if d, ok := p.exteriorDoor(kitchen, plan.EntranceSecondary); ok {
			doors = append(doors, d)
		}
	}
	return doors
}

func firstOfType(rooms []plan.Room, t string) (plan.Room, bool) {
	for _, r := range rooms {
		if r.Type == t {
			return r, true
		}
	}
	return plan.Room{}, false
}

func (p *Planner) exteriorDoor(r plan.Room, subtype string) (plan.Door, bool) {
	width := p.std.Door(plan.DoorExterior).Width

	walls := roomWalls(r)
	var w wallSeg
	if subtype == plan.EntranceMain {
		w = walls[0] // south
	} else {
		w = walls[p.rng.IntN(len(walls))]
	}
	if w.length < width {
		return plan.Door{}, false
	}

	var offset float64
	if subtype == plan.EntranceMain {
		offset = w.length/2 - width/2
	} else {
		span := w.length - width - 0.2
		if span < 0 {
			span = 0
		}
		offset = 0.1 + p.rng.Float64()*span
	}

	d := plan.Door{
		Kind:    plan.DoorExterior,
		Subtype: subtype,
		Width:   width,
		RoomA:   r.Type,
	}
	if w.horiz {
		d.X1 = geometry.Round2(w.x + offset)
		d.Y1 = geometry.Round2(w.y)
		d.X2 = geometry.Round2(w.x + offset + width)
		d.Y2 = d.Y1
		if w.side == plan.SideSouth {
			d.SwingSide = "outward"
		} else {
			d.SwingSide = "inward"
		}
	} else {
		d.X1 = geometry.Round2(w.x)
		d.Y1 = geometry.Round2(w.y + offset)
		d.X2 = d.X1
		d.Y2 = geometry.Round2(w.y + offset + width)
		if w.side == plan.SideWest {
			d.SwingSide = "outward"
		} else {
			d.SwingSide = "inward"
		}
	}
	return d, true
}
