package sink

import (
	"bytes"
	"image/png"
	"testing"
)

func TestRenderPNG_Dimensions(t *testing.T) {
	data, err := RenderPNG(testFloor())
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != 560 || cfg.Height != 500 {
		t.Errorf("RenderPNG() size = %dx%d, want 560x500", cfg.Width, cfg.Height)
	}
}

func TestRenderPNG_ScaleOption(t *testing.T) {
	data, err := RenderPNG(testFloor(), WithScale(25))
	if err != nil {
		t.Fatalf("RenderPNG() error: %v", err)
	}

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode png: %v", err)
	}
	if cfg.Width != 310 || cfg.Height != 300 {
		t.Errorf("RenderPNG() size = %dx%d, want 310x300", cfg.Width, cfg.Height)
	}
}
