// Package ebitengine hosts the simulation in an Ebitengine window. It
// owns the host-loop duties the core delegates outward: translating key
// transitions into control events, clamping elapsed time, and advancing
// the frame counter.
package ebitengine

import (
	"image/color"
	"time"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/opd-ai/go-salvage/pkg/engine"
	"github.com/opd-ai/go-salvage/pkg/input"
)

// maxDeltaTime caps elapsed time so a stalled frame cannot produce a
// runaway integration step. The core requires pre-clamped dt.
const maxDeltaTime = 0.1

// keyBindings: Z/X yaw, arrows translate, space grabs.
var keyBindings = map[ebiten.Key]input.Key{
	ebiten.KeyZ:          input.KeyYawLeft,
	ebiten.KeyX:          input.KeyYawRight,
	ebiten.KeyArrowLeft:  input.KeyTransLeft,
	ebiten.KeyArrowRight: input.KeyTransRight,
	ebiten.KeyArrowUp:    input.KeyTransForward,
	ebiten.KeyArrowDown:  input.KeyTransBack,
	ebiten.KeySpace:      input.KeyGrab,
}

// Runner adapts an engine.Game to the ebiten.Game interface.
type Runner struct {
	game   *engine.Game
	width  int
	height int

	frame      uint64
	lastUpdate time.Time
}

// NewRunner wraps the simulation for windowed play.
func NewRunner(game *engine.Game, width, height int) *Runner {
	return &Runner{
		game:       game,
		width:      width,
		height:     height,
		lastUpdate: time.Now(),
	}
}

// Update implements ebiten.Game. Input events are drained before the
// simulation step, matching the original's event-then-update frame
// order.
func (r *Runner) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	for ebitenKey, gameKey := range keyBindings {
		// inpututil reports clean transitions, so repeat is never set.
		if inpututil.IsKeyJustPressed(ebitenKey) {
			r.game.HandleEvent(input.KeyEvent{Key: gameKey, Down: true})
		}
		if inpututil.IsKeyJustReleased(ebitenKey) {
			r.game.HandleEvent(input.KeyEvent{Key: gameKey, Down: false})
		}
	}

	now := time.Now()
	dt := now.Sub(r.lastUpdate).Seconds()
	r.lastUpdate = now
	if dt > maxDeltaTime {
		dt = maxDeltaTime
	}

	r.game.Update(dt, r.frame)
	r.frame++
	return nil
}

// Draw implements ebiten.Game.
func (r *Runner) Draw(screen *ebiten.Image) {
	snap := r.game.Snapshot()

	for _, t := range snap.Asteroids {
		x, y := r.worldToScreen(t.Position)
		vector.DrawFilledCircle(screen, x, y, 8, color.RGBA{160, 160, 170, 255}, true)
		r.drawSpinCue(screen, t, 8, color.RGBA{90, 90, 100, 255})
	}
	for _, t := range snap.Junk {
		x, y := r.worldToScreen(t.Position)
		vector.DrawFilledCircle(screen, x, y, 6, color.RGBA{200, 80, 60, 255}, true)
		r.drawSpinCue(screen, t, 6, color.RGBA{120, 40, 30, 255})
	}

	if snap.Craft.Active {
		x, y := r.worldToScreen(snap.Craft.Position)
		vector.DrawFilledCircle(screen, x, y, 10, color.RGBA{80, 180, 255, 255}, true)

		// Heading line: the craft's body-frame +y axis in world frame.
		heading := snap.Craft.Orientation.Rotate(mgl64.Vec3{0, 1, 0})
		hx := x + float32(heading.X()*20)
		hy := y - float32(heading.Y()*20)
		vector.StrokeLine(screen, x, y, hx, hy, 2, color.RGBA{220, 240, 255, 255}, true)
	}

	r.drawFuelBar(screen, snap.Fuel)

	if snap.Status == engine.StatusGameOver {
		ebitenutil.DebugPrintAt(screen, "GAME OVER", r.width/2-30, r.height/2)
	}
}

// Layout implements ebiten.Game.
func (r *Runner) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.width, r.height
}

// worldToScreen maps field coordinates onto the window. Screen y grows
// downward, so the vertical axis flips.
func (r *Runner) worldToScreen(pos mgl64.Vec3) (float32, float32) {
	field := r.game.Config.Field
	sx := (pos.X() - field.MinX) / (field.MaxX - field.MinX) * float64(r.width)
	sy := (field.MaxY - pos.Y()) / (field.MaxY - field.MinY) * float64(r.height)
	return float32(sx), float32(sy)
}

// drawSpinCue draws a short line from an object's center along its
// rotated body x axis, so the tumble is visible on a circle.
func (r *Runner) drawSpinCue(screen *ebiten.Image, t engine.Transform, radius float32, clr color.Color) {
	x, y := r.worldToScreen(t.Position)
	axis := t.Orientation.Rotate(mgl64.Vec3{1, 0, 0})
	vector.StrokeLine(screen, x, y,
		x+float32(axis.X())*radius, y-float32(axis.Y())*radius,
		1, clr, true)
}

// drawFuelBar renders the indicator along the left edge: solid green
// above 1.0, proportional below.
func (r *Runner) drawFuelBar(screen *ebiten.Image, fuel float64) {
	const barWidth, margin = 12, 10
	maxHeight := float64(r.height) - 2*margin

	vector.DrawFilledRect(screen, margin, margin,
		barWidth, float32(maxHeight), color.RGBA{40, 40, 50, 255}, true)

	level := fuel
	clr := color.RGBA{90, 220, 120, 255}
	if level >= 1.0 {
		level = 1.0
		clr = color.RGBA{250, 230, 90, 255}
	}
	if level < 0 {
		level = 0
	}
	h := maxHeight * level
	vector.DrawFilledRect(screen, margin, float32(margin+maxHeight-h),
		barWidth, float32(h), clr, true)
}
