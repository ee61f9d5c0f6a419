package pack

import (
	"math/rand/v2"
	"testing"

	"github.com/Achu067/PLANEXA/pkg/errors"
	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

func testPacker(seed uint64) *Packer {
	return New(standards.Default(), rand.New(rand.NewPCG(seed, 0)))
}

func requests(types ...string) []plan.RoomRequest {
	std := standards.Default()
	reqs := make([]plan.RoomRequest, len(types))
	for i, t := range types {
		dims := std.MinDim(t)
		reqs[i] = plan.RoomRequest{Type: t, Area: std.Area(t), MinWidth: dims.Width, MinLength: dims.Length}
	}
	return reqs
}

func assertInsideAndDisjoint(t *testing.T, rooms []plan.Room, fp plan.Footprint) {
	t.Helper()
	for i, r := range rooms {
		if r.X < 0 || r.Y < 0 || r.X+r.Width > fp.Width+1e-9 || r.Y+r.Length > fp.Length+1e-9 {
			t.Errorf("room %d (%s) outside footprint: %+v", i, r.Type, r)
		}
		for j := i + 1; j < len(rooms); j++ {
			if r.Rect().Overlaps(rooms[j].Rect()) {
				t.Errorf("rooms %d (%s) and %d (%s) overlap", i, r.Type, j, rooms[j].Type)
			}
		}
	}
}

func TestPackBoundaryAndDisjoint(t *testing.T) {
	fp := plan.Footprint{Width: 20, Length: 15}
	for _, style := range []string{
		standards.StyleModern, standards.StyleMinimalist,
	} {
		p := testPacker(7)
		rooms, err := p.Pack(requests("living", "kitchen", "bedroom", "bedroom", "bathroom"), fp, style)
		if err != nil {
			t.Fatalf("%s: %v", style, err)
		}
		if len(rooms) != 5 {
			t.Fatalf("%s: placed %d rooms, want 5", style, len(rooms))
		}
		assertInsideAndDisjoint(t, rooms, fp)
	}
}

func TestPackDeterministicForSeed(t *testing.T) {
	fp := plan.Footprint{Width: 18, Length: 12}
	reqs := requests("living", "bedroom", "bathroom")

	a, err := testPacker(42).Pack(reqs, fp, standards.StyleModern)
	if err != nil {
		t.Fatal(err)
	}
	b, err := testPacker(42).Pack(reqs, fp, standards.StyleModern)
	if err != nil {
		t.Fatal(err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("room %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestSizeRoomUsesAspectRatio(t *testing.T) {
	p := testPacker(1)
	// modern bedroom: ratio 1.2, area 12 -> width sqrt(14.4)=3.794.. -> 3.8
	r := p.sizeRoom(plan.RoomRequest{Type: "bedroom", Area: 12}, standards.StyleModern)
	if r.Width != 3.8 {
		t.Errorf("width = %v, want 3.8", r.Width)
	}
	if r.Length != 3.2 {
		t.Errorf("length = %v, want 3.2", r.Length)
	}
	if r.Area != 12.16 {
		t.Errorf("area = %v, want 12.16", r.Area)
	}
}

func TestPackShrinksWhenTight(t *testing.T) {
	// A 6x6 footprint cannot hold living (20) + kitchen (10) at full size;
	// the packer must shrink rather than fail.
	fp := plan.Footprint{Width: 6, Length: 6}
	rooms, err := testPacker(3).Pack(requests("living", "kitchen"), fp, standards.StyleModern)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	assertInsideAndDisjoint(t, rooms, fp)
	for _, r := range rooms {
		if r.Width < minRoomDim || r.Length < minRoomDim {
			t.Errorf("room %s shrunk below minimum: %+v", r.Type, r)
		}
	}
}

func TestPackExhaustedOnImpossibleFootprint(t *testing.T) {
	fp := plan.Footprint{Width: 2, Length: 2}
	_, err := testPacker(5).Pack(requests("living", "living", "living", "living", "living"), fp, standards.StyleModern)
	if err == nil {
		t.Fatal("expected placement to fail")
	}
	if errors.GetCode(err) != errors.ErrCodePlacementExhausted {
		t.Errorf("code = %v, want %v", errors.GetCode(err), errors.ErrCodePlacementExhausted)
	}
}

func TestRelayoutOpenPlanKeepsInvariants(t *testing.T) {
	fp := plan.Footprint{Width: 20, Length: 16}
	rooms, err := testPacker(11).Pack(requests("living", "kitchen", "bedroom", "bathroom"), fp, standards.StyleOpenPlan)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	assertInsideAndDisjoint(t, rooms, fp)
}

func TestRelayoutTraditionalKeepsInvariants(t *testing.T) {
	fp := plan.Footprint{Width: 22, Length: 18}
	rooms, err := testPacker(13).Pack(requests("living", "kitchen", "bedroom", "bedroom", "bathroom", "office"), fp, standards.StyleTraditional)
	if err != nil {
		t.Fatalf("Pack: %v", err)
	}
	assertInsideAndDisjoint(t, rooms, fp)
}

func TestRelayoutCrowdedFloorStaysDisjoint(t *testing.T) {
	// Near-capacity floor where the style repositioning collides and the
	// recovery pass has to shrink rooms to fit them back in. Placement may
	// fail outright, but a returned layout must never overlap.
	fp := plan.Footprint{Width: 8, Length: 7}
	reqs := requests("living", "kitchen", "bedroom", "bedroom", "bathroom", "office")
	for _, style := range []string{standards.StyleOpenPlan, standards.StyleTraditional} {
		for seed := uint64(0); seed < 50; seed++ {
			rooms, err := testPacker(seed).Pack(reqs, fp, style)
			if err != nil {
				if errors.GetCode(err) != errors.ErrCodePlacementExhausted {
					t.Fatalf("%s seed %d: unexpected error %v", style, seed, err)
				}
				continue
			}
			for i, r := range rooms {
				if r.X < 0 || r.Y < 0 || r.X+r.Width > fp.Width+1e-9 || r.Y+r.Length > fp.Length+1e-9 {
					t.Fatalf("%s seed %d: %s outside footprint: %+v", style, seed, r.Type, r)
				}
				for j := i + 1; j < len(rooms); j++ {
					if r.Rect().Overlaps(rooms[j].Rect()) {
						t.Fatalf("%s seed %d: %s %+v overlaps %s %+v",
							style, seed, r.Type, r, rooms[j].Type, rooms[j])
					}
				}
			}
		}
	}
}

func TestPositionsOnTenCentimeterGrid(t *testing.T) {
	fp := plan.Footprint{Width: 20, Length: 15}
	rooms, err := testPacker(9).Pack(requests("living", "bedroom", "bathroom"), fp, standards.StyleModern)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range rooms {
		for _, v := range []float64{r.X, r.Y} {
			scaled := v * 10
			if diff := scaled - float64(int(scaled+0.5)); diff > 1e-6 || diff < -1e-6 {
				t.Errorf("coordinate %v of %s not on 0.1m grid", v, r.Type)
			}
		}
	}
}

func TestWallsFourPerRoom(t *testing.T) {
	rooms := []plan.Room{
		{Type: "bedroom", X: 1, Y: 2, Width: 4, Length: 3},
	}
	walls := Walls(rooms)
	if len(walls) != 4 {
		t.Fatalf("got %d walls, want 4", len(walls))
	}
	for _, w := range walls {
		if w.Kind != "exterior" {
			t.Errorf("wall kind = %q", w.Kind)
		}
	}
	// south edge
	if walls[0].X1 != 1 || walls[0].Y1 != 2 || walls[0].X2 != 5 || walls[0].Y2 != 2 {
		t.Errorf("south wall = %+v", walls[0])
	}
	// closing segment returns to the origin corner
	last := walls[3]
	if last.X2 != 1 || last.Y2 != 2 {
		t.Errorf("wall loop does not close: %+v", last)
	}
}

func TestGridFreeAndMark(t *testing.T) {
	g := newGrid(10, 10)
	if !g.free(0, 0, 5, 5) {
		t.Fatal("empty grid should be free")
	}
	g.mark(0, 0, 5, 5)
	if g.free(4.9, 4.9, 1, 1) {
		t.Error("overlapping region reported free")
	}
	if !g.free(5, 5, 5, 5) {
		t.Error("disjoint region reported occupied")
	}
	if g.free(6, 6, 5, 5) {
		t.Error("region past the boundary reported free")
	}
	if g.free(-1, 0, 2, 2) {
		t.Error("negative origin reported free")
	}
}

func TestGridExactFitAtBoundary(t *testing.T) {
	// A room flush against the far edge occupies cells up to the last index.
	g := newGrid(10, 10)
	if !g.free(5, 5, 5, 5) {
		t.Error("flush placement at far corner rejected")
	}
}
