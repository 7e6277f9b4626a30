package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
)

// UpdateAnimations re-evaluates the clip selection on direction-key edges
// and advances the current clip. The landing re-evaluation lives in the
// controller; the edge refresh here covers direction changes made while
// falling without a jump, where no landing fires.
func UpdateAnimations(e *ecs.ECS) {
	inputEntry, ok := components.Input.First(e.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	left := input.Action(cfg.ActionMoveLeft)
	right := input.Action(cfg.ActionMoveRight)
	edge := left.JustPressed || left.JustReleased || right.JustPressed || right.JustReleased

	components.Character.Each(e.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		anim := components.Animation.Get(entry)

		if edge {
			refreshClip(char, anim, input)
		}
		if anim.CurrentClip != nil {
			anim.CurrentClip.Update()
		}
	})
}

// refreshClip applies the selection policy: a jump in flight owns the
// display; otherwise any held direction means Running, else Idle.
func refreshClip(char *components.CharacterData, anim *components.AnimationData, input *components.InputData) {
	if char.Jumping {
		return
	}
	if input.Action(cfg.ActionMoveLeft).Pressed || input.Action(cfg.ActionMoveRight).Pressed {
		anim.SetClip(cfg.Running)
		return
	}
	anim.SetClip(cfg.Idle)
}
