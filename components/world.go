package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CollisionWorldData holds the ground plane and the static obstacle boxes.
// Obstacles keep their insertion order: support queries return the first
// obstacle that qualifies, so overlapping boxes at different heights are
// resolved by list order. That tie-break is part of the contract, not an
// accident.
//
// All boxes are axis-aligned resolv objects in world units with Y up:
// Object.Y is the bottom edge, Object.Y+Object.H the top.
type CollisionWorldData struct {
	Ground    *resolv.Object
	Obstacles []*resolv.Object
}

var CollisionWorld = donburi.NewComponentType[CollisionWorldData]()

// AddObstacle appends an obstacle box. Order matters, see above.
func (w *CollisionWorldData) AddObstacle(obj *resolv.Object) {
	w.Obstacles = append(w.Obstacles, obj)
}

// FindSupport reports the surface currently bearing the character's weight,
// if any, and the Y the caller must snap the character to.
//
// An obstacle grants support when the character's box overlaps it in X, the
// bottom edge projected one tick backward along velY would be at or above
// the obstacle's top, and the current bottom edge is at or below that top.
// The backward projection is what lets a falling character land on a box it
// has already sunk into this tick instead of tunneling through.
//
// The ground is the fallback: it grants support when the bottom edge is at
// or below the ground's top and posY is at or below zero. Both conditions
// are kept even though they coincide for a ground at Y=0.
func (w *CollisionWorldData) FindSupport(bounds *resolv.Object, posY, velY, dt float64) (*resolv.Object, float64, bool) {
	bottom := bounds.Y
	prevBottom := bottom - velY*dt

	for _, obs := range w.Obstacles {
		top := obs.Y + obs.H
		if bounds.X >= obs.X+obs.W || bounds.X+bounds.W <= obs.X {
			continue
		}
		if prevBottom < top {
			continue
		}
		if bottom > top {
			continue
		}
		return obs, top, true
	}

	if w.Ground != nil {
		top := w.Ground.Y + w.Ground.H
		if bottom <= top && posY <= 0 {
			return w.Ground, top, true
		}
	}

	return nil, 0, false
}

// HorizontallyBlocked reports whether translating the character's box by
// deltaX along X would intersect any obstacle. The ground never blocks
// horizontal movement. Pure query, no side effects.
func (w *CollisionWorldData) HorizontallyBlocked(bounds *resolv.Object, deltaX float64) bool {
	minX := bounds.X + deltaX
	maxX := minX + bounds.W

	for _, obs := range w.Obstacles {
		if minX >= obs.X+obs.W || maxX <= obs.X {
			continue
		}
		if bounds.Y >= obs.Y+obs.H || bounds.Y+bounds.H <= obs.Y {
			continue
		}
		return true
	}
	return false
}
