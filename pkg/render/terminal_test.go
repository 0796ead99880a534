package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-salvage/pkg/engine"
	"github.com/opd-ai/go-salvage/pkg/physics"
)

func testBounds() physics.Bounds {
	return physics.Bounds{
		Min: mgl64.Vec2{-0.85, -0.5},
		Max: mgl64.Vec2{0.85, 0.5},
	}
}

func activeAt(x, y float64) engine.Transform {
	return engine.Transform{
		Position:    mgl64.Vec3{x, y, 0},
		Orientation: mgl64.QuatIdent(),
		Active:      true,
	}
}

func TestRender_DrawsSymbols(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(40, 12, testBounds(), &buf)

	snap := engine.Snapshot{
		Craft:     activeAt(0, 0),
		Fuel:      0.6,
		Asteroids: []engine.Transform{activeAt(0.4, 0.2)},
		Junk:      []engine.Transform{activeAt(-0.4, -0.2)},
	}

	if err := r.Render(snap); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	for _, symbol := range []string{"@", "*", "#"} {
		if !strings.Contains(out, symbol) {
			t.Errorf("Expected output to contain %q", symbol)
		}
	}
	if !strings.Contains(out, "fuel [") {
		t.Error("Expected a fuel gauge line")
	}
}

func TestRender_InactiveCraftHidden(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(40, 12, testBounds(), &buf)

	snap := engine.Snapshot{
		Craft:  engine.Transform{Orientation: mgl64.QuatIdent()},
		Status: engine.StatusGameOver,
	}

	if err := r.Render(snap); err != nil {
		t.Fatalf("Render failed: %v", err)
	}

	out := buf.String()
	if strings.Contains(out, "@") {
		t.Error("Expected destroyed craft not to be drawn")
	}
	if !strings.Contains(out, "GAME OVER") {
		t.Error("Expected game over banner")
	}
}

func TestRender_OffFieldObjectsClipped(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalRenderer(40, 12, testBounds(), &buf)

	snap := engine.Snapshot{
		Craft:     engine.Transform{Orientation: mgl64.QuatIdent()},
		Asteroids: []engine.Transform{activeAt(5, 5)},
	}

	if err := r.Render(snap); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if strings.Contains(buf.String(), "*") {
		t.Error("Expected far off-field asteroid to be clipped")
	}
}

func TestFuelGauge_TwoStates(t *testing.T) {
	tests := []struct {
		name   string
		fuel   float64
		filled int
	}{
		{name: "above full threshold", fuel: 1.5, filled: 20},
		{name: "half", fuel: 0.5, filled: 10},
		{name: "empty", fuel: 0, filled: 0},
		{name: "negative clamps to empty", fuel: -0.2, filled: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gauge := fuelGauge(tt.fuel, 20)
			if got := strings.Count(gauge, "="); got != tt.filled {
				t.Errorf("Expected %d filled cells, got %d (%q)", tt.filled, got, gauge)
			}
		})
	}
}
