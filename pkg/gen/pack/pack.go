// Package pack places rooms inside a floor footprint. Rooms are sized from
// their target area and a style-dependent aspect ratio, then positioned
// largest-first through a chain of strategies over an occupancy grid:
// along an exterior wall, in a corner, adjacent to an already-placed room,
// and finally at random. A room that fits nowhere is shrunk by 10% and
// retried down to a hard minimum dimension.
package pack

import (
	"math"
	"math/rand/v2"
	"sort"

	"github.com/Achu067/PLANEXA/pkg/errors"
	"github.com/Achu067/PLANEXA/pkg/geometry"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

const (
	// roomSpacing is the gap kept between a room and the neighbor it is
	// placed against.
	roomSpacing = 0.5

	// minRoomDim is the smallest dimension shrinking may reach before
	// placement is abandoned.
	minRoomDim = 1.0

	randomAttempts = 100
)

// Packer positions rooms on floors. All randomness flows through the
// injected source, so a fixed seed reproduces layouts exactly.
type Packer struct {
	std *standards.Standards
	rng *rand.Rand
}

func New(std *standards.Standards, rng *rand.Rand) *Packer {
	return &Packer{std: std, rng: rng}
}

// Pack places the requested rooms within the footprint, largest area first,
// then applies the style re-layout pass. It fails with PLACEMENT_EXHAUSTED
// when a room cannot be placed even after shrinking to the minimum size.
func (p *Packer) Pack(reqs []plan.RoomRequest, fp plan.Footprint, style string) ([]plan.Room, error) {
	ordered := make([]plan.RoomRequest, len(reqs))
	copy(ordered, reqs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Area > ordered[j].Area
	})

	g := newGrid(fp.Width, fp.Length)
	rooms := make([]plan.Room, 0, len(ordered))

	for _, req := range ordered {
		room := p.sizeRoom(req, style)
		placed, err := p.place(&room, g, rooms, fp)
		if err != nil {
			return nil, err
		}
		g.mark(placed.X, placed.Y, placed.Width, placed.Length)
		rooms = append(rooms, placed)
	}

	rooms, err := p.relayout(rooms, fp, style)
	if err != nil {
		return nil, err
	}

	for i := range rooms {
		rooms[i].X = geometry.Round1(rooms[i].X)
		rooms[i].Y = geometry.Round1(rooms[i].Y)
	}
	return rooms, nil
}

// sizeRoom derives dimensions from the target area and the style's aspect
// ratio for the room type, rounded to the 0.1m grid.
func (p *Packer) sizeRoom(req plan.RoomRequest, style string) plan.Room {
	ratio := p.std.AspectRatio(style, req.Type)
	width := geometry.Round1(math.Sqrt(req.Area * ratio))
	length := geometry.Round1(req.Area / math.Sqrt(req.Area*ratio))
	return plan.Room{
		Type:   req.Type,
		Width:  width,
		Length: length,
		Area:   geometry.Round2(width * length),
	}
}

// place runs the strategy chain for one room, shrinking and retrying on
// failure. The returned room carries its final position and dimensions.
func (p *Packer) place(room *plan.Room, g *grid, placed []plan.Room, fp plan.Footprint) (plan.Room, error) {
	for {
		if p.placeAlongWall(room, g, fp) ||
			p.placeInCorner(room, g, fp) ||
			p.placeAdjacent(room, g, placed, fp) ||
			p.placeRandomly(room, g, fp) {
			return *room, nil
		}
		room.Width = geometry.Round1(room.Width * 0.9)
		room.Length = geometry.Round1(room.Length * 0.9)
		if room.Width < minRoomDim || room.Length < minRoomDim {
			return plan.Room{}, errors.New(errors.ErrCodePlacementExhausted,
				"no valid position for %s room in %.1fx%.1fm footprint",
				room.Type, fp.Width, fp.Length)
		}
		room.Area = geometry.Round2(room.Width * room.Length)
	}
}

func (p *Packer) placeAlongWall(room *plan.Room, g *grid, fp plan.Footprint) bool {
	candidates := [][2]float64{
		{0, 0},
		{0, fp.Length - room.Length},
		{fp.Width - room.Width, 0},
	}
	p.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return p.tryPositions(room, g, candidates)
}

func (p *Packer) placeInCorner(room *plan.Room, g *grid, fp plan.Footprint) bool {
	candidates := [][2]float64{
		{0, 0},
		{0, fp.Length - room.Length},
		{fp.Width - room.Width, 0},
		{fp.Width - room.Width, fp.Length - room.Length},
	}
	p.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	return p.tryPositions(room, g, candidates)
}

func (p *Packer) placeAdjacent(room *plan.Room, g *grid, placed []plan.Room, fp plan.Footprint) bool {
	for _, other := range placed {
		candidates := [][2]float64{
			{other.X + other.Width + roomSpacing, other.Y},
			{other.X - room.Width - roomSpacing, other.Y},
			{other.X, other.Y + other.Length + roomSpacing},
			{other.X, other.Y - room.Length - roomSpacing},
		}
		if p.tryPositions(room, g, candidates) {
			return true
		}
	}
	return false
}

func (p *Packer) placeRandomly(room *plan.Room, g *grid, fp plan.Footprint) bool {
	maxX := fp.Width - room.Width
	maxY := fp.Length - room.Length
	if maxX < 0 || maxY < 0 {
		return false
	}
	for i := 0; i < randomAttempts; i++ {
		x := geometry.Round1(p.rng.Float64() * maxX)
		y := geometry.Round1(p.rng.Float64() * maxY)
		if g.free(x, y, room.Width, room.Length) {
			room.X, room.Y = x, y
			return true
		}
	}
	return false
}

func (p *Packer) tryPositions(room *plan.Room, g *grid, candidates [][2]float64) bool {
	for _, c := range candidates {
		if g.free(c[0], c[1], room.Width, room.Length) {
			room.X, room.Y = c[0], c[1]
			return true
		}
	}
	return false
}
