package physics

import "github.com/go-gl/mathgl/mgl64"

// Edge identifies one of the four sides of the play field.
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// Bounds is the axis-aligned rectangle bounding the play field. Objects
// spawn on its edges; they are not clipped back to it afterwards.
type Bounds struct {
	Min mgl64.Vec2
	Max mgl64.Vec2
}

// Width returns the horizontal extent of the field.
func (b Bounds) Width() float64 {
	return b.Max.X() - b.Min.X()
}

// Height returns the vertical extent of the field.
func (b Bounds) Height() float64 {
	return b.Max.Y() - b.Min.Y()
}

// Contains reports whether the x/y components of p lie inside the field.
func (b Bounds) Contains(p mgl64.Vec3) bool {
	return p.X() >= b.Min.X() && p.X() <= b.Max.X() &&
		p.Y() >= b.Min.Y() && p.Y() <= b.Max.Y()
}
