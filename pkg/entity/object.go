// Package entity defines the game's moving objects: the player craft and
// the two pooled field populations (asteroids and junk).
package entity

import (
	"github.com/opd-ai/go-salvage/pkg/physics"
)

// FlyingObject is a field body plus its liveness flag. Inactive objects
// are out of the simulation; their pool slot is recycled by the next
// spawn rather than reclaimed.
type FlyingObject struct {
	Body   physics.Body
	Active bool
}

// Population is a pooled collection of flying objects. Deactivated slots
// go on a free list and are reused by later spawns, so iteration cost is
// bounded by the peak live count rather than the total spawn count.
type Population struct {
	objects []FlyingObject
	free    []int
	live    int
}

// Spawn places a new active object in the population, reusing a free
// slot when one exists, and returns its index. Indices are stable for
// the lifetime of the object.
func (p *Population) Spawn(body physics.Body) int {
	obj := FlyingObject{Body: body, Active: true}

	if n := len(p.free); n > 0 {
		i := p.free[n-1]
		p.free = p.free[:n-1]
		p.objects[i] = obj
		p.live++
		return i
	}

	p.objects = append(p.objects, obj)
	p.live++
	return len(p.objects) - 1
}

// Deactivate removes the object at index i from the simulation and
// recycles its slot. Deactivating an already-inactive object is a no-op.
func (p *Population) Deactivate(i int) {
	if i < 0 || i >= len(p.objects) || !p.objects[i].Active {
		return
	}
	p.objects[i].Active = false
	p.free = append(p.free, i)
	p.live--
}

// ForEach calls fn for every active object, in slot order. Iteration is
// by index so fn may mutate the object in place; it must not spawn into
// the same population.
func (p *Population) ForEach(fn func(i int, obj *FlyingObject)) {
	for i := range p.objects {
		if p.objects[i].Active {
			fn(i, &p.objects[i])
		}
	}
}

// At returns the object at index i. The index must come from Spawn.
func (p *Population) At(i int) *FlyingObject {
	return &p.objects[i]
}

// Live returns the number of active objects.
func (p *Population) Live() int {
	return p.live
}

// Cap returns the number of allocated slots, live or not.
func (p *Population) Cap() int {
	return len(p.objects)
}
