package systems

import (
	"math"

	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/components"
	"github.com/pixelforge/strider/config"
	"github.com/pixelforge/strider/tags"
)

// UpdateCamera follows the character with smoothing and a facing-direction
// look-ahead, clamped to the level's horizontal bounds.
func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	char := components.Character.Get(playerEntry)

	levelEntry, ok := components.Level.First(e.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)
	if levelData.CurrentLevel == nil {
		return
	}

	targetLookAhead := char.Facing * config.Camera.LookAheadDistanceX
	camera.LookAheadX += (targetLookAhead - camera.LookAheadX) * config.Camera.LookAheadSmoothing

	targetX := char.Position.X + camera.LookAheadX
	targetY := char.Position.Y + config.Camera.HeightOffset

	// Keep the level filling the screen horizontally
	halfW := float64(config.C.Width) / 2 / config.World.PixelsPerUnit
	minCameraX := halfW
	maxCameraX := levelData.CurrentLevel.Width - halfW
	targetX = math.Max(minCameraX, math.Min(maxCameraX, targetX))

	camera.Position.X += (targetX - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (targetY - camera.Position.Y) * config.Camera.FollowSmoothing
}
