package entity

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/opd-ai/go-salvage/pkg/physics"
)

func bodyAt(x, y float64) physics.Body {
	b := physics.NewBody()
	b.Position = mgl64.Vec3{x, y, 0}
	return b
}

func TestPopulation_SpawnAppends(t *testing.T) {
	var p Population

	i0 := p.Spawn(bodyAt(0, 0))
	i1 := p.Spawn(bodyAt(1, 0))

	if i0 != 0 || i1 != 1 {
		t.Errorf("Expected indices 0 and 1, got %d and %d", i0, i1)
	}
	if p.Live() != 2 {
		t.Errorf("Expected 2 live objects, got %d", p.Live())
	}
	if !p.At(i0).Active || !p.At(i1).Active {
		t.Error("Expected spawned objects to be active")
	}
}

func TestPopulation_DeactivateRecyclesSlot(t *testing.T) {
	var p Population

	p.Spawn(bodyAt(0, 0))
	mid := p.Spawn(bodyAt(1, 0))
	p.Spawn(bodyAt(2, 0))

	p.Deactivate(mid)

	if p.Live() != 2 {
		t.Errorf("Expected 2 live objects after deactivation, got %d", p.Live())
	}

	// The next spawn must reuse the freed slot instead of growing.
	reused := p.Spawn(bodyAt(3, 0))
	if reused != mid {
		t.Errorf("Expected spawn to reuse slot %d, got %d", mid, reused)
	}
	if p.Cap() != 3 {
		t.Errorf("Expected capacity to stay 3, got %d", p.Cap())
	}
	if got := p.At(reused).Body.Position.X(); got != 3 {
		t.Errorf("Expected recycled slot to hold the new body, got x=%f", got)
	}
}

func TestPopulation_DeactivateIsIdempotent(t *testing.T) {
	var p Population

	i := p.Spawn(bodyAt(0, 0))
	p.Deactivate(i)
	p.Deactivate(i)
	p.Deactivate(i)

	if p.Live() != 0 {
		t.Errorf("Expected 0 live objects, got %d", p.Live())
	}

	// A single freed slot must not be handed out twice.
	a := p.Spawn(bodyAt(1, 0))
	b := p.Spawn(bodyAt(2, 0))
	if a == b {
		t.Errorf("Expected distinct slots, got %d twice", a)
	}
}

func TestPopulation_DeactivateOutOfRange(t *testing.T) {
	var p Population

	p.Deactivate(-1)
	p.Deactivate(5)

	if p.Live() != 0 || p.Cap() != 0 {
		t.Errorf("Expected empty population to be untouched, live=%d cap=%d", p.Live(), p.Cap())
	}
}

func TestPopulation_ForEachSkipsInactive(t *testing.T) {
	var p Population

	p.Spawn(bodyAt(0, 0))
	dead := p.Spawn(bodyAt(1, 0))
	p.Spawn(bodyAt(2, 0))
	p.Deactivate(dead)

	var visited []int
	p.ForEach(func(i int, obj *FlyingObject) {
		if !obj.Active {
			t.Errorf("ForEach visited inactive slot %d", i)
		}
		visited = append(visited, i)
	})

	if len(visited) != 2 || visited[0] != 0 || visited[1] != 2 {
		t.Errorf("Expected slots [0 2], got %v", visited)
	}
}

func TestPopulation_ForEachAllowsMutation(t *testing.T) {
	var p Population

	i := p.Spawn(bodyAt(0, 0))
	p.ForEach(func(_ int, obj *FlyingObject) {
		obj.Body.Position = mgl64.Vec3{9, 9, 0}
	})

	if got := p.At(i).Body.Position.X(); got != 9 {
		t.Errorf("Expected in-place mutation to persist, got x=%f", got)
	}
}

func TestPopulation_EmptyIsNoOp(t *testing.T) {
	var p Population

	calls := 0
	p.ForEach(func(int, *FlyingObject) { calls++ })

	if calls != 0 {
		t.Errorf("Expected no iterations over an empty population, got %d", calls)
	}
}
