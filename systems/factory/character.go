package factory

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/archetypes"
	"github.com/pixelforge/strider/assets"
	"github.com/pixelforge/strider/assets/animations"
	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
	"github.com/pixelforge/strider/tags"
)

// CreateCharacter spawns the playable character at x on the ground plane.
// Its clip maps start empty; sheets arrive through the loader entity and
// install as they decode.
func CreateCharacter(ecs *ecs.ECS, x float64) *donburi.Entry {
	character := archetypes.Character.Spawn(ecs)

	w := cfg.Player.CollisionWidth
	h := cfg.Player.CollisionHeight
	obj := resolv.NewObject(x-w/2, 0, w, h, tags.ResolvCharacter)
	components.Object.SetValue(character, components.ObjectData{Object: obj})

	components.Character.SetValue(character, components.CharacterData{
		Position: components.Vector3{X: x, Y: 0, Z: 0},
		Facing:   cfg.DirectionRight,
	})

	components.Animation.SetValue(character, components.AnimationData{
		Clips:        map[cfg.StateID]*animations.Clip{},
		SpriteSheets: map[cfg.StateID]*ebiten.Image{},
		CachedFrames: map[cfg.StateID]map[int]*ebiten.Image{},
		FrameWidth:   cfg.Player.FrameWidth,
		FrameHeight:  cfg.Player.FrameHeight,
	})

	return character
}

// CreateLoader starts the background sheet decode for the selected
// character and spawns the entity that ferries results into the frame loop.
func CreateLoader(ecs *ecs.ECS, character string) *donburi.Entry {
	loader := archetypes.Loader.Spawn(ecs)
	components.Loader.SetValue(loader, components.LoaderData{
		Character: character,
		Results:   assets.LoadCharacterSheets(character),
	})
	return loader
}
