package vertical

import (
	"testing"

	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

func TestStairCount(t *testing.T) {
	tests := []struct {
		floors, want int
	}{
		{1, 2},
		{2, 2},
		{4, 2},
		{6, 3},
		{10, 5},
	}
	for _, tt := range tests {
		if got := StairCount(tt.floors); got != tt.want {
			t.Errorf("StairCount(%d) = %d, want %d", tt.floors, got, tt.want)
		}
	}
}

func TestStairsMinimumTwo(t *testing.T) {
	p := New(standards.Default())
	for _, floors := range []int{1, 2, 3} {
		stairs := p.Stairs(plan.Footprint{Width: 12, Length: 10}, floors)
		if len(stairs) < 2 {
			t.Errorf("floors=%d: %d staircases, want at least 2", floors, len(stairs))
		}
	}
}

func TestStairGeometry(t *testing.T) {
	p := New(standards.Default())
	stairs := p.Stairs(plan.Footprint{Width: 12, Length: 10}, 2)

	s := stairs[0]
	if s.StepsPerFloor != 16 {
		t.Errorf("steps per floor = %d, want 16", s.StepsPerFloor)
	}
	// 2 floors x (16 x 0.28 + 1.2) = 11.36
	if s.Orientation != plan.OrientNorthSouth {
		t.Fatalf("first stair orientation = %s", s.Orientation)
	}
	if s.Width != 1.0 || s.Length != 11.36 {
		t.Errorf("stair dims = %vx%v, want 1x11.36", s.Width, s.Length)
	}
	if s.X != 2 || s.Y != 2 {
		t.Errorf("stair at (%v, %v), want the corner slot (2, 2)", s.X, s.Y)
	}
	if len(s.Steps) != 32 {
		t.Fatalf("got %d steps, want 32", len(s.Steps))
	}
	if s.Steps[0].Number != 1 || s.Steps[0].Floor != 1 {
		t.Errorf("first step = %+v", s.Steps[0])
	}
	last := s.Steps[len(s.Steps)-1]
	if last.Number != 32 || last.Floor != 2 {
		t.Errorf("last step = %+v", last)
	}
	// second flight starts a level up
	if s.Steps[16].Height != 16*0.18 {
		t.Errorf("flight 2 base height = %v, want %v", s.Steps[16].Height, 16*0.18)
	}
}

func TestStairsServeEveryFloor(t *testing.T) {
	p := New(standards.Default())
	stairs := p.Stairs(plan.Footprint{Width: 12, Length: 10}, 4)
	for _, s := range stairs {
		if len(s.FloorsServed) != 4 {
			t.Fatalf("stair %s serves %d floors, want 4", s.ID, len(s.FloorsServed))
		}
		for i, f := range s.FloorsServed {
			if f != i+1 {
				t.Errorf("stair %s floor %d = %d", s.ID, i, f)
			}
		}
	}
}

func TestMidWallCandidatesForWideFootprint(t *testing.T) {
	p := New(standards.Default())
	// 8 floors ask for 4 stairs; a 20m-wide footprint adds mid-wall slots.
	stairs := p.Stairs(plan.Footprint{Width: 20, Length: 10}, 8)
	if len(stairs) != 4 {
		t.Errorf("got %d staircases, want 4", len(stairs))
	}
}

func TestElevatorThreshold(t *testing.T) {
	p := New(standards.Default())
	fp := plan.Footprint{Width: 20, Length: 15}
	if e := p.Elevators(fp, 2); len(e) != 0 {
		t.Errorf("floors=2: %d elevators, want 0", len(e))
	}
	if e := p.Elevators(fp, 3); len(e) == 0 {
		t.Error("floors=3: no elevators")
	}
}

func TestElevatorBank(t *testing.T) {
	p := New(standards.Default())
	fp := plan.Footprint{Width: 20, Length: 15}

	tests := []struct {
		floors, want int
	}{
		{3, 2},
		{4, 2},
		{6, 3},
		{8, 4},
		{12, 4}, // capped
	}
	for _, tt := range tests {
		e := p.Elevators(fp, tt.floors)
		if len(e) != tt.want {
			t.Errorf("floors=%d: %d elevators, want %d", tt.floors, len(e), tt.want)
		}
	}

	e := p.Elevators(fp, 4)
	for i, el := range e {
		if el.Width != 2.2 || el.Length != 2.5 {
			t.Errorf("car %d dims = %vx%v", i, el.Width, el.Length)
		}
		if el.Capacity != 8 || el.Speed != 1.0 {
			t.Errorf("car %d = %+v", i, el)
		}
		if el.Y != 3.0 {
			t.Errorf("car %d y = %v, want 3.0", i, el.Y)
		}
	}
	// bank centered on the south wall midpoint with a 2.5m pitch
	if e[1].X-e[0].X != 2.5 {
		t.Errorf("bank pitch = %v, want 2.5", e[1].X-e[0].X)
	}
}

func TestLinkAttachesStairsToFloors(t *testing.T) {
	p := New(standards.Default())
	fp := plan.Footprint{Width: 12, Length: 10}
	b := &plan.Building{
		Floors: []*plan.Floor{
			{Number: 1, Footprint: fp},
			{Number: 2, Footprint: fp},
		},
	}
	b.Stairs = p.Stairs(fp, 2)
	Link(b)

	for _, f := range b.Floors {
		if len(f.Stairs) != len(b.Stairs) {
			t.Fatalf("floor %d has %d stair refs, want %d", f.Number, len(f.Stairs), len(b.Stairs))
		}
	}
	for _, s := range b.Stairs {
		if len(s.Access) != 2 {
			t.Fatalf("stair %s has %d access points, want 2", s.ID, len(s.Access))
		}
		want := plan.SideEast
		if s.Orientation == plan.OrientEastWest {
			want = plan.SideSouth
		}
		for _, a := range s.Access {
			if a.DoorOrientation != want {
				t.Errorf("stair %s access door = %s, want %s", s.ID, a.DoorOrientation, want)
			}
		}
	}
}
