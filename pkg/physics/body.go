// Package physics provides the kinematic state shared by every moving
// object in the game: a quaternion attitude, a quaternion per-step spin,
// and world-frame position and velocity.
package physics

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Body is the motion state of a single flying object. Orientation and
// AngularVelocity are unit quaternions; AngularVelocity is applied
// multiplicatively as a per-step rotation increment, not a rate vector.
type Body struct {
	Orientation     mgl64.Quat
	AngularVelocity mgl64.Quat
	Position        mgl64.Vec3
	LinearVelocity  mgl64.Vec3
}

// NewBody returns a body at rest at the origin with identity attitude.
func NewBody() Body {
	return Body{
		Orientation:     mgl64.QuatIdent(),
		AngularVelocity: mgl64.QuatIdent(),
	}
}

// DistanceTo returns the Euclidean distance between two body positions.
func (b *Body) DistanceTo(other *Body) float64 {
	return b.Position.Sub(other.Position).Len()
}

// Tumble composes a fixed-axis rotation of angle dt radians onto the
// orientation and advances the position by the x/y components of the
// linear velocity. The z velocity channel is ignored; field bodies stay
// in the z=0 plane. The orientation is renormalized after composition so
// floating-point drift never accumulates across steps.
func (b *Body) Tumble(dt float64, axis mgl64.Vec3) {
	b.Orientation = b.Orientation.Mul(mgl64.QuatRotate(dt, axis.Normalize())).Normalize()
	b.Position = b.Position.Add(mgl64.Vec3{
		b.LinearVelocity.X() * dt,
		b.LinearVelocity.Y() * dt,
		0,
	})
}
