package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Achu067/PLANEXA/pkg/cache"
	"github.com/Achu067/PLANEXA/pkg/errors"
	"github.com/Achu067/PLANEXA/pkg/plan"
)

func baseOptions() Options {
	return Options{
		Width:  10,
		Length: 8,
		Rooms:  map[string]int{"bedroom": 2, "bathroom": 1},
		Floors: 1,
		Style:  "modern",
		Seed:   42,
	}
}

func TestGenerate_EndToEnd(t *testing.T) {
	b, err := Generate(baseOptions())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	if len(b.Floors) != 1 {
		t.Fatalf("floors = %d, want 1", len(b.Floors))
	}
	f := b.Floors[0]

	if len(f.Rooms) != 3 {
		t.Fatalf("rooms = %d, want 3", len(f.Rooms))
	}
	counts := map[string]int{}
	for _, r := range f.Rooms {
		counts[r.Type]++
	}
	if counts["bedroom"] != 2 || counts["bathroom"] != 1 {
		t.Errorf("room mix = %v", counts)
	}

	// Boundary and no-overlap invariants.
	for i, r := range f.Rooms {
		if !r.Rect().Within(10, 8) {
			t.Errorf("room %d out of bounds: %+v", i, r)
		}
		for j := i + 1; j < len(f.Rooms); j++ {
			if r.Rect().Overlaps(f.Rooms[j].Rect()) {
				t.Errorf("rooms %d and %d overlap", i, j)
			}
		}
	}

	if f.Metrics.RoomCount != 3 {
		t.Errorf("metrics room count = %d", f.Metrics.RoomCount)
	}
	// Target areas: 12 + 12 + 6. Shrink may reduce but never below half.
	if f.Metrics.TotalArea < 15 || f.Metrics.TotalArea > 30 {
		t.Errorf("total area = %.2f, want within [15, 30]", f.Metrics.TotalArea)
	}
	if f.Metrics.Efficiency != 85.0 {
		t.Errorf("efficiency = %.1f, want 85.0", f.Metrics.Efficiency)
	}
}

func TestGenerate_StairAndElevatorThresholds(t *testing.T) {
	opts := baseOptions()
	opts.Floors = 3
	b, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(b.Stairs) < 2 {
		t.Errorf("3 floors: stairs = %d, want >= 2", len(b.Stairs))
	}
	if len(b.Elevators) == 0 {
		t.Error("3 floors should have elevators")
	}

	opts = baseOptions()
	opts.Floors = 2
	b, err = Generate(opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(b.Elevators) != 0 {
		t.Errorf("2 floors: elevators = %d, want 0", len(b.Elevators))
	}
	if len(b.Stairs) < 2 {
		t.Errorf("2 floors: stairs = %d, want >= 2", len(b.Stairs))
	}
}

func TestGenerate_SingleFloorHasTwoStairs(t *testing.T) {
	b, err := Generate(baseOptions())
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(b.Stairs) < 2 {
		t.Errorf("stairs = %d, want >= 2", len(b.Stairs))
	}
	// Every floor references every staircase.
	for _, f := range b.Floors {
		if len(f.Stairs) != len(b.Stairs) {
			t.Errorf("floor %d references %d stairs, want %d", f.Number, len(f.Stairs), len(b.Stairs))
		}
	}
}

func TestGenerate_PlacementExhausted(t *testing.T) {
	opts := Options{
		Width:  2,
		Length: 2,
		Rooms:  map[string]int{"living": 1},
		Floors: 1,
		Seed:   1,
	}
	_, err := Generate(opts)
	if err == nil {
		t.Fatal("Generate() should fail on an impossible footprint")
	}
	if !errors.Is(err, errors.ErrCodePlacementExhausted) {
		t.Errorf("error code = %v, want PLACEMENT_EXHAUSTED", errors.GetCode(err))
	}
	if !strings.Contains(err.Error(), "floor 1") {
		t.Errorf("error should carry the floor index: %v", err)
	}
}

func TestGenerate_Reproducible(t *testing.T) {
	opts := baseOptions()
	opts.Floors = 2

	b1, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	b2, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	// IDs are fresh UUIDs; equality holds for everything else.
	b2.ID = b1.ID
	j1, _ := json.Marshal(b1)
	j2, _ := json.Marshal(b2)
	if string(j1) != string(j2) {
		t.Error("same seed should produce an identical building")
	}
}

func TestGenerate_FreshSeedRecorded(t *testing.T) {
	opts := baseOptions()
	opts.Seed = 0
	b, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if b.Seed == 0 {
		t.Error("a drawn seed should be recorded on the building")
	}
}

func TestGenerate_FloorFeatures(t *testing.T) {
	opts := baseOptions()
	opts.Floors = 3
	b, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	has := func(f *plan.Floor, feature string) bool {
		for _, x := range f.Features {
			if x == feature {
				return true
			}
		}
		return false
	}

	if !has(b.Floors[0], "main_entrance") || !has(b.Floors[0], "lobby") {
		t.Error("ground floor should carry main_entrance and lobby")
	}
	if !b.Floors[0].GroundFloor || b.Floors[0].TopFloor {
		t.Error("floor 1 flags wrong")
	}
	if !has(b.Floors[2], "roof_access") {
		t.Error("top floor should carry roof_access")
	}
	if !b.Floors[2].TopFloor {
		t.Error("floor 3 should be the top floor")
	}
	if has(b.Floors[1], "main_entrance") || has(b.Floors[1], "roof_access") {
		t.Error("middle floor should carry no features")
	}
}

func TestGenerate_UpperFloorsInteriorDoorsOnly(t *testing.T) {
	// 0.85 x 64 = 54.4 m² usable per floor; the fourth room (60 m² total
	// requested) spills onto floor 2.
	opts := Options{
		Width:  8,
		Length: 8,
		Rooms:  map[string]int{"living": 2, "kitchen": 2},
		Floors: 2,
		Style:  "modern",
		Seed:   7,
	}
	b, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(b.Floors[1].Rooms) == 0 {
		t.Fatal("expected overflow onto floor 2")
	}
	for _, f := range b.Floors[1:] {
		for _, d := range f.Doors {
			if d.Kind == plan.DoorExterior {
				t.Errorf("floor %d has an exterior door", f.Number)
			}
		}
	}
}

func TestGenerate_OptionFlags(t *testing.T) {
	no := false
	opts := baseOptions()
	opts.Rooms = map[string]int{"bedroom": 1, "living": 1}
	opts.IncludeWindows = &no
	opts.IncludeFurniture = &no

	b, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	f := b.Floors[0]
	if len(f.Windows) != 0 {
		t.Error("include_windows=false should drop windows")
	}
	if len(f.Furniture) != 0 {
		t.Error("include_furniture=false should drop furniture")
	}
}

func TestOptions_Validation(t *testing.T) {
	tests := []struct {
		name string
		mod  func(*Options)
		code errors.Code
	}{
		{"zero width", func(o *Options) { o.Width = 0 }, errors.ErrCodeInvalidFootprint},
		{"oversize", func(o *Options) { o.Length = 500 }, errors.ErrCodeInvalidFootprint},
		{"no rooms", func(o *Options) { o.Rooms = nil }, errors.ErrCodeInvalidInput},
		{"negative count", func(o *Options) { o.Rooms = map[string]int{"bedroom": -1} }, errors.ErrCodeInvalidRoom},
		{"bad style", func(o *Options) { o.Style = "brutalist" }, errors.ErrCodeInvalidStyle},
		{"bad format", func(o *Options) { o.Formats = []string{"gif"} }, errors.ErrCodeInvalidFormat},
		{"too many floors", func(o *Options) { o.Floors = 99 }, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := baseOptions()
			tt.mod(&opts)
			err := opts.ValidateAndSetDefaults()
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestOptions_Defaults(t *testing.T) {
	opts := Options{Width: 8, Length: 8, Rooms: map[string]int{"bedroom": 1}}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		t.Fatalf("ValidateAndSetDefaults() error: %v", err)
	}
	if opts.Floors != 1 || opts.Style != "modern" {
		t.Errorf("defaults = floors %d, style %q", opts.Floors, opts.Style)
	}
	if len(opts.Formats) != 1 || opts.Formats[0] != FormatSVG {
		t.Errorf("default formats = %v", opts.Formats)
	}
	if !opts.Windows() || !opts.Furniture() {
		t.Error("windows and furniture default on")
	}
}

func TestRender_SVGAndJSON(t *testing.T) {
	opts := baseOptions()
	opts.Floors = 2
	opts.Formats = []string{FormatSVG, FormatJSON}

	b, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	artifacts, err := Render(b, opts)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, name := range []string{"floor_1.svg", "floor_2.svg", "building.json"} {
		if len(artifacts[name]) == 0 {
			t.Errorf("missing artifact %s", name)
		}
	}
	if !strings.Contains(string(artifacts["floor_1.svg"]), "<svg") {
		t.Error("floor_1.svg is not an SVG document")
	}
	var doc map[string]any
	if err := json.Unmarshal(artifacts["building.json"], &doc); err != nil {
		t.Errorf("building.json invalid: %v", err)
	}
}

func TestRunner_CachesPlanAndArtifacts(t *testing.T) {
	ctx := context.Background()
	store, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache error: %v", err)
	}
	runner := NewRunner(store, nil, nil)
	defer runner.Close()

	opts := baseOptions()
	opts.Formats = []string{FormatSVG}

	first, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if first.CacheInfo.PlanHit || first.CacheInfo.RenderHit {
		t.Error("first run should miss the cache")
	}

	second, err := runner.Execute(ctx, opts)
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !second.CacheInfo.PlanHit {
		t.Error("second run should hit the plan cache")
	}
	if !second.CacheInfo.RenderHit {
		t.Error("second run should hit the artifact cache")
	}
	if string(first.Artifacts["floor_1.svg"]) != string(second.Artifacts["floor_1.svg"]) {
		t.Error("cached artifact should match the original")
	}
}

func TestArtifactNames(t *testing.T) {
	b := &plan.Building{Floors: []*plan.Floor{{Number: 1}, {Number: 2}}}

	names := artifactNames(b, []string{FormatSVG, FormatDOT, FormatPDF, FormatJSON})
	want := []string{
		"floor_1.svg", "floor_2.svg",
		"floor_1.dot.svg", "floor_2.dot.svg",
		"building.pdf", "building.json",
	}
	if len(names) != len(want) {
		t.Fatalf("names = %v", names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestParseArtifactName(t *testing.T) {
	tests := []struct {
		name   string
		format string
		floor  int
	}{
		{"floor_1.svg", FormatSVG, 1},
		{"floor_12.png", FormatPNG, 12},
		{"floor_3.dot.svg", FormatDOT, 3},
		{"building.json", FormatJSON, 0},
		{"building.pdf", FormatPDF, 0},
	}
	for _, tt := range tests {
		format, floor := parseArtifactName(tt.name)
		if format != tt.format || floor != tt.floor {
			t.Errorf("parseArtifactName(%q) = %s, %d", tt.name, format, floor)
		}
	}
}
