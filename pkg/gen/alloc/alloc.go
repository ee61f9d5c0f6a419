// Package alloc turns requested room counts into concrete room requests and
// distributes them across floors with a first-fit-descending bin pack.
package alloc

import (
	"sort"

	"github.com/Achu067/PLANEXA/pkg/errors"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

// UsableShare is the fraction of the footprint a floor may fill with rooms;
// the remainder is held back for circulation.
const UsableShare = 0.85

// Rooms expands the requested type counts into one RoomRequest per room
// instance, looking up target area and minimum dimensions in the standards.
// Types with a non-positive count are rejected.
func Rooms(counts map[string]int, std *standards.Standards) ([]plan.RoomRequest, error) {
	types := make([]string, 0, len(counts))
	for t := range counts {
		types = append(types, t)
	}
	sort.Strings(types)

	var reqs []plan.RoomRequest
	for _, t := range types {
		n := counts[t]
		if n <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidRoom,
				"room count for %q must be positive, got %d", t, n)
		}
		dims := std.MinDim(t)
		for i := 0; i < n; i++ {
			reqs = append(reqs, plan.RoomRequest{
				Type:      t,
				Area:      std.Area(t),
				MinWidth:  dims.Width,
				MinLength: dims.Length,
			})
		}
	}
	return reqs, nil
}

// Distribute assigns room requests to floors, largest area first, filling
// each floor up to UsableShare of the footprint. Rooms that fit no floor
// overflow onto floor 0. The returned slice has one entry per floor; entries
// may be empty when there are more floors than rooms demand.
func Distribute(reqs []plan.RoomRequest, floors int, fp plan.Footprint) [][]plan.RoomRequest {
	ordered := make([]plan.RoomRequest, len(reqs))
	copy(ordered, reqs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Area > ordered[j].Area
	})

	capacity := fp.Area() * UsableShare
	perFloor := make([][]plan.RoomRequest, floors)
	used := make([]float64, floors)

	feasible := func(req plan.RoomRequest) bool {
		return req.MinWidth <= fp.Width && req.MinLength <= fp.Length
	}

	for _, req := range ordered {
		placed := false
		for f := 0; f < floors; f++ {
			if used[f]+req.Area <= capacity && feasible(req) {
				perFloor[f] = append(perFloor[f], req)
				used[f] += req.Area
				placed = true
				break
			}
		}
		if !placed {
			perFloor[0] = append(perFloor[0], req)
			used[0] += req.Area
		}
	}
	return perFloor
}
