package pack

import (
	"github.com/Achu067/PLANEXA/pkg/geometry"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

// relayout applies style-specific positioning after the initial pack, then
// resolves any overlap or boundary violation the repositioning introduced.
// Styles without a repositioning rule return the pack unchanged.
func (p *Packer) relayout(rooms []plan.Room, fp plan.Footprint, style string) ([]plan.Room, error) {
	switch style {
	case standards.StyleOpenPlan:
		p.clusterOpenPlan(rooms, fp)
	case standards.StyleTraditional:
		p.zoneTraditional(rooms, fp)
	default:
		return rooms, nil
	}
	return p.resolveOverlaps(rooms, fp)
}

// clusterOpenPlan pulls living and kitchen rooms together into a two-column
// grid near the entrance corner. Applies only when at least two such rooms
// exist.
func (p *Packer) clusterOpenPlan(rooms []plan.Room, fp plan.Footprint) {
	var social []*plan.Room
	for i := range rooms {
		if rooms[i].Type == "living" || rooms[i].Type == "kitchen" {
			social = append(social, &rooms[i])
		}
	}
	if len(social) < 2 {
		return
	}
	arrange(social, fp.Width*0.1, fp.Length*0.1)
}

// zoneTraditional separates public rooms (living, kitchen) near the entrance
// from private rooms (bedroom, bathroom, office) deeper into the floor.
func (p *Packer) zoneTraditional(rooms []plan.Room, fp plan.Footprint) {
	var public, private []*plan.Room
	for i := range rooms {
		switch rooms[i].Type {
		case "living", "kitchen":
			public = append(public, &rooms[i])
		case "bedroom", "bathroom", "office":
			private = append(private, &rooms[i])
		}
	}
	arrange(public, fp.Width*0.1, fp.Length*0.1)
	arrange(private, fp.Width*0.6, fp.Length*0.6)
}

// arrange lays rooms out in a two-column grid from a base point, with the
// standard spacing between cells.
func arrange(rooms []*plan.Room, baseX, baseY float64) {
	for i, r := range rooms {
		r.X = baseX + float64(i%2)*(r.Width+roomSpacing)
		r.Y = baseY + float64(i/2)*(r.Length+roomSpacing)
	}
}

// resolveOverlaps re-validates every room against a fresh grid in slice
// order. Rooms whose repositioned spot collides or leaves the footprint are
// clamped into bounds and, if still colliding, re-placed through the full
// strategy chain, shrink retry included. Exhaustion here fails the pack
// exactly as it does on the first pass.
func (p *Packer) resolveOverlaps(rooms []plan.Room, fp plan.Footprint) ([]plan.Room, error) {
	g := newGrid(fp.Width, fp.Length)
	accepted := make([]plan.Room, 0, len(rooms))

	for i := range rooms {
		r := rooms[i]
		r.X = clamp(r.X, 0, fp.Width-r.Width)
		r.Y = clamp(r.Y, 0, fp.Length-r.Length)
		r.X = geometry.Round1(r.X)
		r.Y = geometry.Round1(r.Y)

		if !g.free(r.X, r.Y, r.Width, r.Length) {
			placed, err := p.place(&r, g, accepted, fp)
			if err != nil {
				return nil, err
			}
			r = placed
		}
		g.mark(r.X, r.Y, r.Width, r.Length)
		rooms[i] = r
		accepted = append(accepted, r)
	}
	return rooms, nil
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
