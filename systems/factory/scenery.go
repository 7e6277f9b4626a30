package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/archetypes"
	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
)

// CreateCloud spawns a background cloud drifting back and forth around its
// authored position on a looping tween sequence.
func CreateCloud(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	cloud := archetypes.Scenery.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h)
	components.Object.SetValue(cloud, components.ObjectData{Object: obj})
	components.Sprite.SetValue(cloud, components.SpriteData{
		Color: cfg.CloudWhite,
		W:     w,
		H:     h,
	})

	dist := float32(cfg.Scenery.CloudDriftDistance)
	secs := cfg.Scenery.CloudDriftSeconds
	seq := gween.NewSequence(
		gween.New(0, dist, secs, ease.InOutQuad),
		gween.New(dist, 0, secs, ease.InOutQuad),
	)
	components.Tween.SetValue(cloud, components.TweenData{
		Sequence: seq,
		OriginX:  x,
	})

	return cloud
}
