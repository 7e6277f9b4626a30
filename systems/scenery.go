package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/components"
)

// UpdateScenery drives the background drift tweens.
func UpdateScenery(e *ecs.ECS) {
	clockEntry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	dt := float32(components.Clock.Get(clockEntry).Delta)

	components.Tween.Each(e.World, func(entry *donburi.Entry) {
		tween := components.Tween.Get(entry)
		if tween.Sequence == nil {
			return
		}

		value, _, done := tween.Sequence.Update(dt)
		if done {
			tween.Sequence.Reset()
		}

		obj := components.Object.Get(entry)
		obj.X = tween.OriginX + float64(value)
	})
}
