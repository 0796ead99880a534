package physics

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

const tolerance = 1e-9

func TestNewBody_IdentityAtRest(t *testing.T) {
	b := NewBody()

	if got := b.Orientation.Len(); math.Abs(got-1) > tolerance {
		t.Errorf("Expected unit orientation, got length %f", got)
	}
	if got := b.AngularVelocity.Len(); math.Abs(got-1) > tolerance {
		t.Errorf("Expected unit angular velocity, got length %f", got)
	}
	if b.Position.Len() != 0 {
		t.Errorf("Expected origin position, got %v", b.Position)
	}
	if b.LinearVelocity.Len() != 0 {
		t.Errorf("Expected zero velocity, got %v", b.LinearVelocity)
	}
}

func TestTumble_PreservesUnitOrientation(t *testing.T) {
	tests := []struct {
		name string
		axis mgl64.Vec3
	}{
		{name: "asteroid axis", axis: mgl64.Vec3{1, 1, 1}},
		{name: "junk axis", axis: mgl64.Vec3{-1, 1, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody()
			for i := 0; i < 10000; i++ {
				b.Tumble(0.016, tt.axis)
				if got := b.Orientation.Len(); math.Abs(got-1) > tolerance {
					t.Fatalf("Orientation drifted to length %f after %d steps", got, i+1)
				}
			}
		})
	}
}

func TestTumble_AdvancesPlanarPositionOnly(t *testing.T) {
	b := NewBody()
	b.LinearVelocity = mgl64.Vec3{0.5, -0.25, 3.0}

	b.Tumble(2.0, mgl64.Vec3{1, 1, 1})

	if math.Abs(b.Position.X()-1.0) > tolerance {
		t.Errorf("Expected x position 1.0, got %f", b.Position.X())
	}
	if math.Abs(b.Position.Y()+0.5) > tolerance {
		t.Errorf("Expected y position -0.5, got %f", b.Position.Y())
	}
	if b.Position.Z() != 0 {
		t.Errorf("Expected z position to stay 0, got %f", b.Position.Z())
	}
}

func TestTumble_RotatesOrientation(t *testing.T) {
	b := NewBody()
	before := b.Orientation

	b.Tumble(1.0, mgl64.Vec3{1, 1, 1})

	if b.Orientation.ApproxEqual(before) {
		t.Error("Expected orientation to change after a tumble step")
	}
}

func TestDistanceTo(t *testing.T) {
	tests := []struct {
		name     string
		a, b     mgl64.Vec3
		expected float64
	}{
		{name: "coincident", a: mgl64.Vec3{}, b: mgl64.Vec3{}, expected: 0},
		{name: "unit apart", a: mgl64.Vec3{}, b: mgl64.Vec3{1, 0, 0}, expected: 1},
		{name: "diagonal", a: mgl64.Vec3{0.1, 0.2, 0}, b: mgl64.Vec3{0.1, 0.2, 0}.Add(mgl64.Vec3{0.03, 0.04, 0}), expected: 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewBody()
			a.Position = tt.a
			b := NewBody()
			b.Position = tt.b

			if got := a.DistanceTo(&b); math.Abs(got-tt.expected) > tolerance {
				t.Errorf("Expected distance %f, got %f", tt.expected, got)
			}
		})
	}
}
