package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"

	"github.com/pixelforge/strider/archetypes"
	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
)

func CreateCamera(ecs *ecs.ECS, x float64) *donburi.Entry {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.SetValue(camera, components.CameraData{
		Position: dmath.Vec2{X: x, Y: cfg.Camera.HeightOffset},
	})
	return camera
}

func CreateClock(ecs *ecs.ECS) *donburi.Entry {
	return archetypes.Clock.Spawn(ecs)
}
