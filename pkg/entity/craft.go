package entity

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-salvage/pkg/input"
	"github.com/opd-ai/go-salvage/pkg/physics"
)

// CraftTuning holds the thruster response constants for the player craft.
type CraftTuning struct {
	// LinearAccel scales body-frame translation thrust, per second.
	LinearAccel float64
	// AngularAccel scales the yaw increment added to the spin quaternion.
	AngularAccel float64
	// BurnPerThruster is the fuel burned per active thruster per step.
	// Deliberately not scaled by dt; see Step.
	BurnPerThruster float64
}

// Craft is the player-controlled satellite: one flying object plus the
// fuel resource. It is created once per session and only ever
// deactivated, never destroyed.
type Craft struct {
	Object FlyingObject
	Fuel   float64

	tuning CraftTuning
}

// NewCraft returns an active craft at the origin with the given starting
// fuel.
func NewCraft(fuel float64, tuning CraftTuning) *Craft {
	return &Craft{
		Object: FlyingObject{Body: physics.NewBody(), Active: true},
		Fuel:   fuel,
		tuning: tuning,
	}
}

// Step advances the craft by one simulation step. dt must already be
// clamped by the host loop.
//
// Translation thrust accumulates in the body frame and is rotated into
// the world frame by the pre-step orientation before it is applied to
// the velocity. Yaw thrust composes a z-axis rotation onto the spin
// quaternion, which is then composed onto the orientation; both are
// renormalized every step.
//
// Fuel burn is per-step per-thruster, independent of dt: kinematics are
// time-scaled but burn is frame-rate-bound.
func (c *Craft) Step(dt float64, ctrl input.Controls) {
	if !c.Object.Active {
		return
	}

	amtLin := dt * c.tuning.LinearAccel
	amtRot := dt * c.tuning.AngularAccel

	var dv mgl64.Vec3
	var dw float64

	if ctrl.YawLeft {
		dw += amtRot
	}
	if ctrl.YawRight {
		dw -= amtRot
	}
	if ctrl.TransLeft {
		dv = dv.Add(mgl64.Vec3{-amtLin, 0, 0})
	}
	if ctrl.TransRight {
		dv = dv.Add(mgl64.Vec3{amtLin, 0, 0})
	}
	if ctrl.TransForward {
		dv = dv.Add(mgl64.Vec3{0, amtLin, 0})
	}
	if ctrl.TransBack {
		dv = dv.Add(mgl64.Vec3{0, -amtLin, 0})
	}

	b := &c.Object.Body

	// Body frame to world frame, using the attitude before this step's
	// spin is applied.
	dv = b.Orientation.Rotate(dv)

	b.AngularVelocity = b.AngularVelocity.
		Mul(mgl64.QuatRotate(dw, mgl64.Vec3{0, 0, 1})).
		Normalize()
	b.Orientation = b.Orientation.Mul(b.AngularVelocity).Normalize()

	b.LinearVelocity = b.LinearVelocity.Add(dv)
	b.Position = b.Position.Add(b.LinearVelocity.Mul(dt))

	c.Fuel -= float64(ctrl.ThrusterCount()) * c.tuning.BurnPerThruster
	if c.Fuel < 0 {
		c.Object.Active = false
	}
}

// Refuel credits fuel for a captured asteroid.
func (c *Craft) Refuel(amount float64) {
	c.Fuel += amount
}
