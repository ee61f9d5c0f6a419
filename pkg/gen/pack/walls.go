package pack

import "github.com/Achu067/PLANEXA/pkg/plan"

// Walls derives the four boundary segments of every room, wound
// counter-clockwise starting at the south edge. Segments shared by adjacent
// rooms are emitted once per room; the renderer draws them coincident.
func Walls(rooms []plan.Room) []plan.Wall {
	walls := make([]plan.Wall, 0, len(rooms)*4)
	for _, r := range rooms {
		x2, y2 := r.X+r.Width, r.Y+r.Length
		walls = append(walls,
			plan.Wall{X1: r.X, Y1: r.Y, X2: x2, Y2: r.Y, Kind: "exterior"},
			plan.Wall{X1: x2, Y1: r.Y, X2: x2, Y2: y2, Kind: "exterior"},
			plan.Wall{X1: x2, Y1: y2, X2: r.X, Y2: y2, Kind: "exterior"},
			plan.Wall{X1: r.X, Y1: y2, X2: r.X, Y2: r.Y, Kind: "exterior"},
		)
	}
	return walls
}
