package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
	"github.com/pixelforge/strider/tags"
)

var (
	Character = newArchetype(
		tags.Player,
		components.Character,
		components.Object,
		components.Animation,
	)
	Obstacle = newArchetype(
		tags.Obstacle,
		components.Object,
		components.Sprite,
	)
	Ground = newArchetype(
		tags.Ground,
		components.Object,
		components.Sprite,
	)
	Scenery = newArchetype(
		tags.Scenery,
		components.Object,
		components.Sprite,
		components.Tween,
	)
	CollisionWorld = newArchetype(
		components.CollisionWorld,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Level = newArchetype(
		components.Level,
	)
	Loader = newArchetype(
		components.Loader,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
