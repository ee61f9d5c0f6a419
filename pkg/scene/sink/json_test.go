package sink

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/Achu067/PLANEXA/pkg/plan"
)

func testBuilding() *plan.Building {
	return &plan.Building{
		ID:    "bld_1",
		Style: "modern",
		Seed:  42,
		Floors: []*plan.Floor{
			testFloor(),
		},
	}
}

func TestRenderJSON_RoundTrip(t *testing.T) {
	stamp := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	data, err := RenderJSON(testBuilding(), WithJSONGeneratedAt(stamp))
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}

	var doc struct {
		GeneratedAt string        `json:"generated_at"`
		Building    plan.Building `json:"building"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if doc.GeneratedAt != "2026-03-01T12:00:00Z" {
		t.Errorf("generated_at = %q", doc.GeneratedAt)
	}
	if doc.Building.ID != "bld_1" || doc.Building.Seed != 42 {
		t.Errorf("building round trip lost fields: %+v", doc.Building)
	}
	if len(doc.Building.Floors) != 1 || len(doc.Building.Floors[0].Rooms) != 2 {
		t.Error("building round trip lost floor contents")
	}
}

func TestRenderJSON_Compact(t *testing.T) {
	pretty, err := RenderJSON(testBuilding())
	if err != nil {
		t.Fatalf("RenderJSON() error: %v", err)
	}
	compact, err := RenderJSON(testBuilding(), WithJSONCompact())
	if err != nil {
		t.Fatalf("RenderJSON() compact error: %v", err)
	}

	if !strings.Contains(string(pretty), "\n  ") {
		t.Error("default output should be indented")
	}
	if strings.Contains(string(compact), "\n") {
		t.Error("compact output should not contain newlines")
	}
	if len(compact) >= len(pretty) {
		t.Error("compact output should be smaller than indented output")
	}
}
