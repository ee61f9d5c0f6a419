package plan

import (
	"math"

	"github.com/Achu067/PLANEXA/pkg/geometry"
)

// CirculationShare is the fraction of placed room area reserved for
// corridors and circulation when computing efficiency.
const CirculationShare = 0.15

// ComputeFloorMetrics derives the floor's area, circulation, and efficiency
// figures from its placed rooms and stair references, and stores them on the
// floor.
func ComputeFloorMetrics(f *Floor) {
	var total float64
	for _, r := range f.Rooms {
		total += r.Area
	}
	total = geometry.Round2(total)
	circ := geometry.Round2(total * CirculationShare)

	var eff float64
	if total > 0 {
		eff = math.Round((total-circ)/total*1000) / 10
	}

	f.Metrics = FloorMetrics{
		TotalArea:        total,
		RoomCount:        len(f.Rooms),
		Efficiency:       eff,
		CirculationArea:  circ,
		MaxStairDistance: maxStairDistance(f),
	}
}

// maxStairDistance is the largest straight-line distance from any room
// center to its nearest stair center, rounded to 2 decimal places. Zero when
// the floor has no stairs or no rooms.
func maxStairDistance(f *Floor) float64 {
	if len(f.Stairs) == 0 || len(f.Rooms) == 0 {
		return 0
	}
	var worst float64
	for _, r := range f.Rooms {
		cx, cy := r.Rect().CenterX(), r.Rect().CenterY()
		nearest := math.Inf(1)
		for _, s := range f.Stairs {
			sx := s.X + s.Width/2
			sy := s.Y + s.Length/2
			d := math.Hypot(cx-sx, cy-sy)
			if d < nearest {
				nearest = d
			}
		}
		if nearest > worst {
			worst = nearest
		}
	}
	return geometry.Round2(worst)
}

// ComputeBuildingMetrics aggregates floor metrics into building totals and
// stores them on the building. Floor metrics must already be computed.
func ComputeBuildingMetrics(b *Building) {
	var (
		area    float64
		rooms   int
		effSum  float64
		effed   int
	)
	for _, f := range b.Floors {
		area += f.Metrics.TotalArea
		rooms += f.Metrics.RoomCount
		if f.Metrics.RoomCount > 0 {
			effSum += f.Metrics.Efficiency
			effed++
		}
	}
	avg := 0.0
	if effed > 0 {
		avg = math.Round(effSum/float64(effed)*10) / 10
	}
	b.Metrics = BuildingMetrics{
		TotalArea:         geometry.Round2(area),
		TotalRooms:        rooms,
		Floors:            len(b.Floors),
		AverageEfficiency: avg,
	}
}
