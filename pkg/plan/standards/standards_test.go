package standards

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTables(t *testing.T) {
	s := Default()

	if got := s.Area("living"); got != 20 {
		t.Errorf("Area(living) = %v, want 20", got)
	}
	if got := s.Area("garage"); got != 10 {
		t.Errorf("Area(garage) fallback = %v, want 10", got)
	}

	d := s.MinDim("bathroom")
	if d.Width != 1.8 || d.Length != 2.4 {
		t.Errorf("MinDim(bathroom) = %+v", d)
	}
	d = s.MinDim("garage")
	if d.Width != 3 || d.Length != 3 {
		t.Errorf("MinDim fallback = %+v", d)
	}
}

func TestAspectRatio(t *testing.T) {
	s := Default()

	tests := []struct {
		style, roomType string
		want            float64
	}{
		{StyleModern, "kitchen", 1.8},
		{StyleOpenPlan, "living", 1.7},
		{StyleMinimalist, "bedroom", 1.0},
		{"brutalist", "kitchen", 1.8},  // unknown style falls back to modern
		{StyleModern, "garage", 1.2},   // unknown room type
		{"brutalist", "garage", 1.2},   // both unknown
	}

	for _, tt := range tests {
		if got := s.AspectRatio(tt.style, tt.roomType); got != tt.want {
			t.Errorf("AspectRatio(%s, %s) = %v, want %v", tt.style, tt.roomType, got, tt.want)
		}
	}
}

func TestWindowStandard(t *testing.T) {
	s := Default()

	w, ok := s.Window("bathroom")
	if !ok {
		t.Fatal("bathroom should have a window standard")
	}
	if w.Min != 0 || w.Max != 1 {
		t.Errorf("bathroom window counts = %+v", w)
	}

	if _, ok := s.Window("hallway"); ok {
		t.Error("hallway should have no window standard")
	}
}

func TestClearanceFallback(t *testing.T) {
	s := Default()
	if got := s.Clearance("bed"); got != 0.6 {
		t.Errorf("Clearance(bed) = %v", got)
	}
	if got := s.Clearance("beanbag"); got != 0.5 {
		t.Errorf("Clearance fallback = %v, want 0.5", got)
	}
}

func TestStyleFactors(t *testing.T) {
	s := Default()
	f := s.StyleFactors(StyleMinimalist)
	if f.WindowSize != 1.5 || f.FurnitureSize != 0.8 {
		t.Errorf("minimalist factors = %+v", f)
	}
	f = s.StyleFactors("unknown")
	if f.WindowCount != 1.0 || f.WindowSize != 1.0 || f.FurnitureSize != 1.0 {
		t.Errorf("unknown style should get neutral factors, got %+v", f)
	}
}

func TestLoadPartialOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "standards.toml")
	override := `
[areas]
bedroom = 14.0
studio = 25.0
`
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// Overridden section replaced wholesale.
	if got := s.Area("bedroom"); got != 14 {
		t.Errorf("Area(bedroom) = %v, want 14", got)
	}
	if got := s.Area("studio"); got != 25 {
		t.Errorf("Area(studio) = %v, want 25", got)
	}

	// Untouched sections keep defaults.
	if got := s.AspectRatio(StyleModern, "living"); got != 1.5 {
		t.Errorf("aspect ratios should keep defaults, got %v", got)
	}
	if s.Circulation.StepRise != 0.18 {
		t.Errorf("circulation should keep defaults, got %+v", s.Circulation)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load("/nonexistent/standards.toml"); err == nil {
		t.Error("Load should fail for a missing file")
	}
}
