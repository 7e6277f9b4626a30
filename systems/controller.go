package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
)

// UpdateController runs the character physics pass: support detection and
// vertical integration first, then the jump command, then horizontal
// movement. Movement is confined to the X/Y plane; Z is pinned at 0.
func UpdateController(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	dt := components.Clock.Get(clockEntry).Delta

	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	worldEntry, ok := components.CollisionWorld.First(e.World)
	if !ok {
		return
	}
	world := components.CollisionWorld.Get(worldEntry)

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		updateCharacter(entry, world, input, dt)
	})
}

func updateCharacter(entry *donburi.Entry, world *components.CollisionWorldData, input *components.InputData, dt float64) {
	char := components.Character.Get(entry)
	obj := components.Object.Get(entry)
	anim := components.Animation.Get(entry)

	resolveVertical(char, obj.Object, world, anim, input, dt)
	handleJumpInput(char, anim, input)
	handleMovementInput(char, obj.Object, world, input, dt)

	char.Position.Z = 0
}

// resolveVertical lands the character on whatever surface currently bears
// its weight, or integrates gravity when nothing does.
//
// The support query only runs while the character is not moving upward:
// on the launch frame the ground's resting conditions still hold, and
// checking them would cancel the jump before it leaves the ground. The
// obstacle conditions already reject ascending characters through their
// backward projection; gating the whole query extends the same rule to
// the ground fallback.
func resolveVertical(char *components.CharacterData, bounds *resolv.Object, world *components.CollisionWorldData, anim *components.AnimationData, input *components.InputData, dt float64) {
	if char.VelocityY <= 0 {
		if _, top, ok := world.FindSupport(bounds, char.Position.Y, char.VelocityY, dt); ok {
			char.Position.Y = top
			char.VelocityY = 0
			char.Grounded = true
			char.Jumping = false
			refreshClip(char, anim, input)
			syncBounds(char, bounds)
			return
		}
	}

	// Explicit Euler: accelerate, then move by the new velocity.
	char.Grounded = false
	char.VelocityY += cfg.Player.Gravity * dt
	char.Position.Y += char.VelocityY * dt
	syncBounds(char, bounds)
}

// handleJumpInput launches a jump on the press edge. Only a grounded
// character can launch: walking off a ledge leaves the character airborne
// with no jump in flight, and the command must not fire from there either.
// The lockout clears on landing.
func handleJumpInput(char *components.CharacterData, anim *components.AnimationData, input *components.InputData) {
	if !input.Action(cfg.ActionJump).JustPressed {
		return
	}
	if char.Jumping || !char.Grounded {
		return
	}
	char.Grounded = false
	char.Jumping = true
	char.VelocityY = cfg.Player.JumpSpeed
	anim.SetClip(cfg.Jump)
}

// handleMovementInput proposes a move per held direction and applies it
// only when the translated bounding box stays clear of every obstacle. A
// blocked move is discarded for the tick, no bounce, no event. Facing
// follows the held direction whether or not the move was applied.
func handleMovementInput(char *components.CharacterData, bounds *resolv.Object, world *components.CollisionWorldData, input *components.InputData, dt float64) {
	if input.Action(cfg.ActionMoveRight).Pressed {
		dx := cfg.Player.MoveSpeed * dt
		if !world.HorizontallyBlocked(bounds, dx) {
			char.Position.X += dx
			syncBounds(char, bounds)
		}
		char.Facing = cfg.DirectionRight
	}
	if input.Action(cfg.ActionMoveLeft).Pressed {
		dx := -cfg.Player.MoveSpeed * dt
		if !world.HorizontallyBlocked(bounds, dx) {
			char.Position.X += dx
			syncBounds(char, bounds)
		}
		char.Facing = cfg.DirectionLeft
	}
}

// syncBounds keeps the collision box centered on the character's feet.
func syncBounds(char *components.CharacterData, bounds *resolv.Object) {
	bounds.X = char.Position.X - bounds.W/2
	bounds.Y = char.Position.Y
}
