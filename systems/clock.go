package systems

import (
	"time"

	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
)

// UpdateClock measures the elapsed seconds since the previous frame.
// Must run before every system that integrates over time. The delta is
// clamped so a stalled window doesn't turn into one giant physics step.
func UpdateClock(e *ecs.ECS) {
	entry, ok := components.Clock.First(e.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)

	now := time.Now()
	if clock.Last.IsZero() {
		clock.Delta = 0
	} else {
		clock.Delta = now.Sub(clock.Last).Seconds()
		if clock.Delta > cfg.World.MaxDelta {
			clock.Delta = cfg.World.MaxDelta
		}
	}
	clock.Last = now
}
