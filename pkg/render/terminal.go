package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-salvage/pkg/engine"
	"github.com/opd-ai/go-salvage/pkg/physics"
)

var _ Renderer = (*TerminalRenderer)(nil)

// TerminalRenderer provides a simple ASCII-based rendering for terminals.
type TerminalRenderer struct {
	width  int
	height int
	buffer [][]rune
	bounds physics.Bounds
	out    io.Writer
}

// NewTerminalRenderer creates a terminal renderer mapping the given
// field bounds onto a character grid of the specified dimensions.
func NewTerminalRenderer(width, height int, bounds physics.Bounds, out io.Writer) *TerminalRenderer {
	buffer := make([][]rune, height)
	for i := range buffer {
		buffer[i] = make([]rune, width)
	}

	return &TerminalRenderer{
		width:  width,
		height: height,
		buffer: buffer,
		bounds: bounds,
		out:    out,
	}
}

// worldToScreen converts field coordinates to buffer coordinates. The
// terminal y axis grows downward, so the vertical axis is flipped.
func (r *TerminalRenderer) worldToScreen(pos mgl64.Vec3) (int, int) {
	x := int((pos.X() - r.bounds.Min.X()) / r.bounds.Width() * float64(r.width))
	y := int((r.bounds.Max.Y() - pos.Y()) / r.bounds.Height() * float64(r.height))
	return x, y
}

func (r *TerminalRenderer) clear() {
	for y := range r.buffer {
		for x := range r.buffer[y] {
			r.buffer[y][x] = ' '
		}
	}
}

func (r *TerminalRenderer) plot(pos mgl64.Vec3, symbol rune) {
	x, y := r.worldToScreen(pos)
	if x >= 0 && x < r.width && y >= 0 && y < r.height {
		r.buffer[y][x] = symbol
	}
}

// Render implements Renderer. The craft draws as '@', asteroids as '*',
// junk as '#'; a fuel gauge and status line follow the grid.
func (r *TerminalRenderer) Render(snap engine.Snapshot) error {
	r.clear()

	for _, t := range snap.Asteroids {
		r.plot(t.Position, '*')
	}
	for _, t := range snap.Junk {
		r.plot(t.Position, '#')
	}
	if snap.Craft.Active {
		r.plot(snap.Craft.Position, '@')
	}

	var b strings.Builder

	// Home the cursor instead of clearing to avoid flicker.
	b.WriteString("\033[H")
	b.WriteString("+" + strings.Repeat("-", r.width) + "+\n")
	for y := range r.buffer {
		b.WriteString("|")
		b.WriteString(string(r.buffer[y]))
		b.WriteString("|\n")
	}
	b.WriteString("+" + strings.Repeat("-", r.width) + "+\n")
	b.WriteString(fuelGauge(snap.Fuel, r.width))
	if snap.Status == engine.StatusGameOver {
		b.WriteString("\n*** GAME OVER ***")
	}
	b.WriteString("\n")

	_, err := io.WriteString(r.out, b.String())
	return err
}

// fuelGauge renders the fuel indicator: a full bar above 1.0 and a
// proportional bar below.
func fuelGauge(fuel float64, width int) string {
	filled := width
	if fuel < 1.0 {
		filled = int(fuel * float64(width))
		if filled < 0 {
			filled = 0
		}
	}
	return fmt.Sprintf("fuel [%s%s] %.3f",
		strings.Repeat("=", filled),
		strings.Repeat(" ", width-filled),
		fuel)
}
