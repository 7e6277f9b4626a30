package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/archetypes"
	"github.com/pixelforge/strider/assets"
	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
	"github.com/pixelforge/strider/tags"
)

// CreateCollisionWorld builds the collision world from level data: the
// ground box spanning the level and the obstacle boxes in authored order.
// Each obstacle also gets its own drawable entity.
func CreateCollisionWorld(ecs *ecs.ECS, level *assets.Level) *donburi.Entry {
	worldEntry := archetypes.CollisionWorld.Spawn(ecs)

	ground := resolv.NewObject(
		0,
		cfg.World.GroundTop-cfg.World.GroundDepth,
		level.Width,
		cfg.World.GroundDepth,
		tags.ResolvGround,
	)

	world := components.CollisionWorldData{Ground: ground}
	for _, box := range level.Obstacles {
		obstacle := CreateObstacle(ecs, box.X, box.Y, box.W, box.H)
		world.AddObstacle(components.Object.Get(obstacle).Object)
	}
	components.CollisionWorld.SetValue(worldEntry, world)

	createGroundEntity(ecs, ground)
	return worldEntry
}

// CreateObstacle spawns one static obstacle box. Y is the bottom edge in
// world units.
func CreateObstacle(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	obstacle := archetypes.Obstacle.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvSolid)
	components.Object.SetValue(obstacle, components.ObjectData{Object: obj})
	components.Sprite.SetValue(obstacle, components.SpriteData{
		Color: cfg.BoxGray,
		W:     w,
		H:     h,
	})

	return obstacle
}

func createGroundEntity(ecs *ecs.ECS, obj *resolv.Object) *donburi.Entry {
	ground := archetypes.Ground.Spawn(ecs)
	components.Object.SetValue(ground, components.ObjectData{Object: obj})
	components.Sprite.SetValue(ground, components.SpriteData{
		Color: cfg.GroundBrown,
		W:     obj.W,
		H:     obj.H,
	})
	return ground
}
