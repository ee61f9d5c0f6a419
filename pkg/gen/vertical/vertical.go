// Package vertical plans the circulation shared across floors: staircases
// with generated step geometry and, for taller buildings, an elevator bank.
// Staircase and elevator records live once in the Building; floors hold
// references.
package vertical

import (
	"fmt"

	"github.com/Achu067/PLANEXA/pkg/geometry"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

// stairMargin keeps staircases off the exterior walls.
const stairMargin = 2.0

// midWallThreshold is the footprint dimension beyond which mid-wall stair
// candidates are added.
const midWallThreshold = 15.0

// Planner derives staircases and elevators from the footprint and floor
// count. It draws no randomness; circulation is fully determined by its
// inputs.
type Planner struct {
	std *standards.Standards
}

func New(std *standards.Standards) *Planner {
	return &Planner{std: std}
}

// StairCount returns the number of staircases for a floor count, with a
// floor of two for egress redundancy.
func StairCount(floors int) int {
	if n := floors / 2; n > 2 {
		return n
	}
	return 2
}

// Stairs creates the building's staircases. Candidates are the four corners
// plus mid-wall slots for footprints over 15 m; slots are consumed in fixed
// order, so a footprint can cap the stair count below the requested one.
func (p *Planner) Stairs(fp plan.Footprint, floorCount int) []*plan.Staircase {
	c := p.std.Circulation
	stepsPerFloor := int(c.FloorHeight / c.StepRise)
	runLength := geometry.Round2(float64(floorCount) * (float64(stepsPerFloor)*c.StepRun + c.LandingLength))

	candidates := stairCandidates(fp)
	count := StairCount(floorCount)
	if count > len(candidates) {
		count = len(candidates)
	}

	served := make([]int, floorCount)
	for i := range served {
		served[i] = i + 1
	}

	stairs := make([]*plan.Staircase, 0, count)
	for i := 0; i < count; i++ {
		cand := candidates[i]
		s := &plan.Staircase{
			ID:            fmt.Sprintf("stair_%d", i),
			X:             cand.x,
			Y:             cand.y,
			Orientation:   cand.orientation,
			FloorsServed:  served,
			StepsPerFloor: stepsPerFloor,
		}
		if cand.orientation == plan.OrientNorthSouth {
			s.Width, s.Length = c.StairWidth, runLength
		} else {
			s.Width, s.Length = runLength, c.StairWidth
		}
		s.Steps = p.steps(s, floorCount)
		stairs = append(stairs, s)
	}
	return stairs
}

type candidate struct {
	x, y        float64
	orientation string
}

func stairCandidates(fp plan.Footprint) []candidate {
	m := stairMargin
	out := []candidate{
		{m, m, plan.OrientNorthSouth},
		{fp.Width - m - 1.2, m, plan.OrientEastWest},
		{m, fp.Length - m - 2.5, plan.OrientEastWest},
		{fp.Width - m - 1.2, fp.Length - m - 2.5, plan.OrientNorthSouth},
	}
	if fp.Width > midWallThreshold {
		out = append(out,
			candidate{fp.Width/2 - 0.6, m, plan.OrientNorthSouth},
			candidate{fp.Width/2 - 0.6, fp.Length - m - 2.5, plan.OrientNorthSouth},
		)
	}
	if fp.Length > midWallThreshold {
		out = append(out,
			candidate{m, fp.Length/2 - 1.25, plan.OrientEastWest},
			candidate{fp.Width - m - 1.2, fp.Length/2 - 1.25, plan.OrientEastWest},
		)
	}
	return out
}

// steps generates the tread rectangles for visualization, stacked along the
// staircase's long axis, one flight per floor.
func (p *Planner) steps(s *plan.Staircase, floorCount int) []plan.Step {
	c := p.std.Circulation
	steps := make([]plan.Step, 0, floorCount*s.StepsPerFloor)
	for floor := 0; floor < floorCount; floor++ {
		base := float64(floor) * float64(s.StepsPerFloor) * c.StepRise
		for i := 0; i < s.StepsPerFloor; i++ {
			st := plan.Step{
				Number: floor*s.StepsPerFloor + i + 1,
				Floor:  floor + 1,
				Height: base + float64(i)*c.StepRise,
			}
			if s.Orientation == plan.OrientNorthSouth {
				st.X = geometry.Round2(s.X)
				st.Y = geometry.Round2(s.Y + float64(i)*c.StepRun)
				st.Width = s.Width
				st.Length = c.StepRise
			} else {
				st.X = geometry.Round2(s.X + float64(i)*c.StepRun)
				st.Y = geometry.Round2(s.Y)
				st.Width = c.StepRise
				st.Length = s.Length
			}
			steps = append(steps, st)
		}
	}
	return steps
}

// Elevators creates the elevator bank for buildings of three or more
// floors: between two and four cars in a row 3 m in from the south wall
// midpoint.
func (p *Planner) Elevators(fp plan.Footprint, floorCount int) []*plan.Elevator {
	if floorCount < 3 {
		return nil
	}
	c := p.std.Circulation

	count := floorCount / 2
	if count < 2 {
		count = 2
	}
	if count > 4 {
		count = 4
	}

	served := make([]int, floorCount)
	for i := range served {
		served[i] = i + 1
	}

	pitch := c.ElevatorLength // car length sets the bank pitch
	baseX := fp.Width/2 - float64(count)*pitch/2
	elevators := make([]*plan.Elevator, count)
	for i := 0; i < count; i++ {
		elevators[i] = &plan.Elevator{
			ID:           fmt.Sprintf("elevator_%d", i),
			X:            geometry.Round2(baseX + float64(i)*pitch),
			Y:            3.0,
			Width:        c.ElevatorWidth,
			Length:       c.ElevatorLength,
			FloorsServed: served,
			Capacity:     c.ElevatorCap,
			Speed:        c.ElevatorSpeed,
		}
	}
	return elevators
}

// Link attaches every staircase to every floor: an access point with the
// door orientation on the stair, and a lightweight reference on the floor.
func Link(b *plan.Building) {
	for _, s := range b.Stairs {
		s.Access = s.Access[:0]
		for _, f := range b.Floors {
			s.Access = append(s.Access, plan.AccessPoint{
				Floor:           f.Number,
				X:               s.X,
				Y:               s.Y,
				DoorOrientation: doorOrientation(s.Orientation),
			})
			f.Stairs = append(f.Stairs, plan.StairRef{
				ID:     s.ID,
				X:      s.X,
				Y:      s.Y,
				Width:  s.Width,
				Length: s.Length,
			})
		}
	}
}

// doorOrientation is the side of the stair enclosure the access door sits
// on: east for north-south runs, south for east-west runs.
func doorOrientation(stairOrientation string) string {
	if stairOrientation == plan.OrientNorthSouth {
		return plan.SideEast
	}
	return plan.SideSouth
}
