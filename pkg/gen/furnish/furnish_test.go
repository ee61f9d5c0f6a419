package furnish

import (
	"math/rand/v2"
	"testing"

	"github.com/Achu067/PLANEXA/pkg/plan"
	"github.com/Achu067/PLANEXA/pkg/plan/standards"
)

func testLayouter(seed uint64) *Layouter {
	return New(standards.Default(), rand.New(rand.NewPCG(seed, 0)))
}

func TestLayoutItemsStayInRoom(t *testing.T) {
	rooms := []plan.Room{
		{Type: "bedroom", X: 2, Y: 3, Width: 4, Length: 3.5},
		{Type: "living", X: 8, Y: 0, Width: 5.5, Length: 3.7},
		{Type: "bathroom", X: 0, Y: 0, Width: 2.5, Length: 2},
	}
	roomByType := map[string]plan.Room{}
	for _, r := range rooms {
		roomByType[r.Type] = r
	}

	for seed := uint64(0); seed < 10; seed++ {
		furniture := testLayouter(seed).Layout(rooms, standards.StyleModern)
		for roomType, items := range furniture {
			room := roomByType[roomType]
			for _, it := range items {
				r := it.BoundingRect()
				if r.X < room.X-1e-9 || r.Y < room.Y-1e-9 ||
					r.MaxX() > room.X+room.Width+1e-9 || r.MaxY() > room.Y+room.Length+1e-9 {
					t.Errorf("seed %d: %s item %s outside room: %+v", seed, roomType, it.Type, it)
				}
			}
		}
	}
}

func TestLayoutClearanceInvariant(t *testing.T) {
	// Bedrooms and living rooms have no stacked items, so every pair of
	// placed pieces must keep clear of each other.
	std := standards.Default()
	rooms := []plan.Room{
		{Type: "bedroom", X: 0, Y: 0, Width: 4.5, Length: 4},
		{Type: "living", X: 5, Y: 0, Width: 6, Length: 4},
	}
	for seed := uint64(0); seed < 10; seed++ {
		furniture := testLayouter(seed).Layout(rooms, standards.StyleTraditional)
		for roomType, items := range furniture {
			for i, a := range items {
				expanded := a.BoundingRect().Expand(std.Clearance(a.Type))
				for j, b := range items {
					if i == j {
						continue
					}
					if a.BoundingRect().Overlaps(b.BoundingRect()) {
						t.Errorf("seed %d: %s items %s and %s overlap", seed, roomType, a.Type, b.Type)
					}
					if expanded.Overlaps(b.BoundingRect()) {
						t.Errorf("seed %d: %s clearance of %s intrudes on %s", seed, roomType, a.Type, b.Type)
					}
				}
			}
		}
	}
}

func TestLayoutAppendsAcrossSameTypeRooms(t *testing.T) {
	rooms := []plan.Room{
		{Type: "bathroom", X: 0, Y: 0, Width: 3, Length: 2.5},
		{Type: "bathroom", X: 4, Y: 0, Width: 3, Length: 2.5},
	}
	solo := testLayouter(7).Layout(rooms[:1], standards.StyleModern)
	both := testLayouter(7).Layout(rooms, standards.StyleModern)
	if len(both["bathroom"]) <= len(solo["bathroom"]) {
		t.Errorf("second bathroom added no items: solo %d, both %d",
			len(solo["bathroom"]), len(both["bathroom"]))
	}
}

func TestLayoutUnknownRoomTypeEmpty(t *testing.T) {
	rooms := []plan.Room{{Type: "corridor", X: 0, Y: 0, Width: 6, Length: 2}}
	furniture := testLayouter(1).Layout(rooms, standards.StyleModern)
	if len(furniture) != 0 {
		t.Errorf("furniture for unknown room type: %+v", furniture)
	}
}

func TestScaleTemplatesStyleAndCap(t *testing.T) {
	l := testLayouter(1)
	room := plan.Room{Type: "bedroom", X: 0, Y: 0, Width: 4, Length: 3}

	scaled := l.scaleTemplates(l.std.Templates("bedroom"), room, standards.StyleMinimalist)
	for _, tpl := range scaled {
		if tpl.Width*tpl.Length > room.Width*room.Length*maxItemShare+0.05 {
			t.Errorf("%s exceeds the per-item area cap: %vx%v", tpl.Type, tpl.Width, tpl.Length)
		}
	}
	// minimalist factor 0.8: wardrobe 1.2x0.6 -> 0.96x0.48, under cap
	for _, tpl := range scaled {
		if tpl.Type == "wardrobe" {
			if tpl.Width != 0.96 || tpl.Length != 0.48 {
				t.Errorf("wardrobe scaled to %vx%v, want 0.96x0.48", tpl.Width, tpl.Length)
			}
		}
	}
}

func TestSmallRoomDropsItems(t *testing.T) {
	// A tiny bedroom cannot hold the full template set; extra items must be
	// dropped without error.
	rooms := []plan.Room{{Type: "bedroom", X: 0, Y: 0, Width: 2, Length: 2}}
	furniture := testLayouter(3).Layout(rooms, standards.StyleModern)
	if len(furniture["bedroom"]) >= 4 {
		t.Errorf("tiny room placed all %d items", len(furniture["bedroom"]))
	}
}

func TestKitchenSinkRestsOnCounter(t *testing.T) {
	rooms := []plan.Room{{Type: "kitchen", X: 0, Y: 0, Width: 4.2, Length: 2.4}}
	for seed := uint64(0); seed < 10; seed++ {
		items := testLayouter(seed).Layout(rooms, standards.StyleTraditional)["kitchen"]
		var counter, sink *plan.FurnitureItem
		for i := range items {
			switch items[i].Type {
			case "kitchen_counter":
				counter = &items[i]
			case "sink":
				sink = &items[i]
			}
		}
		if counter == nil || sink == nil {
			continue
		}
		if !sink.BoundingRect().Overlaps(counter.BoundingRect()) {
			t.Errorf("seed %d: sink not on counter: sink %+v counter %+v", seed, *sink, *counter)
		}
	}
}

func TestLayoutDeterministicForSeed(t *testing.T) {
	rooms := []plan.Room{
		{Type: "bedroom", X: 0, Y: 0, Width: 4, Length: 3.5},
		{Type: "office", X: 5, Y: 0, Width: 3.5, Length: 3},
	}
	a := testLayouter(21).Layout(rooms, standards.StyleOpenPlan)
	b := testLayouter(21).Layout(rooms, standards.StyleOpenPlan)
	for k, items := range a {
		if len(b[k]) != len(items) {
			t.Fatalf("key %s: %d vs %d items", k, len(items), len(b[k]))
		}
		for i := range items {
			if items[i] != b[k][i] {
				t.Errorf("key %s item %d differs: %+v vs %+v", k, i, items[i], b[k][i])
			}
		}
	}
}
