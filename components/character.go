package components

import (
	"github.com/yohamta/donburi"
)

// Vector3 is a world-space position. Movement is constrained to the X/Y
// plane; Z stays 0 for the lifetime of the character.
type Vector3 struct {
	X, Y, Z float64
}

// CharacterData is the controller-owned character state. Position.Y is the
// height of the character's feet; the bounding box in the Object component
// is kept in sync by the controller.
type CharacterData struct {
	Position  Vector3
	Facing    float64 // config.DirectionLeft or config.DirectionRight
	VelocityY float64
	// Grounded reports whether the last vertical resolve found a
	// supporting surface. Only a grounded character can launch a jump.
	Grounded bool
	// Jumping is set for the duration of a jump; it locks out the jump
	// command until the landing clears it.
	Jumping bool
}

var Character = donburi.NewComponentType[CharacterData]()
