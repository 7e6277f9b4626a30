package systems

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/assets"
	"github.com/pixelforge/strider/assets/animations"
	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
)

// UpdateLoading drains finished sprite-sheet decodes into the character's
// animation data. Each sheet installs exactly once; until it does, clip
// requests for that state keep no-opping and get retried by the next
// animation re-evaluation. Runs at the start of the frame so all shared
// state mutation stays within the frame pass.
func UpdateLoading(e *ecs.ECS) {
	entry, ok := components.Loader.First(e.World)
	if !ok {
		return
	}
	loader := components.Loader.Get(entry)

	for {
		select {
		case res, open := <-loader.Results:
			if !open {
				entry.Remove()
				return
			}
			if res.Err != nil {
				log.Printf("Warning: sprite sheet for %s not loaded: %v", res.State, res.Err)
				continue
			}
			installSheet(e, loader.Character, res)
		default:
			return
		}
	}
}

func installSheet(e *ecs.ECS, character string, res assets.SheetResult) {
	defs, ok := cfg.CharacterClips[character]
	if !ok {
		return
	}
	def, ok := defs[res.State]
	if !ok {
		return
	}

	sheet := ebiten.NewImageFromImage(res.Img)

	components.Animation.Each(e.World, func(entry *donburi.Entry) {
		anim := components.Animation.Get(entry)
		anim.SpriteSheets[res.State] = sheet
		anim.Clips[res.State] = animations.NewClip(def.First, def.Last, def.Step, def.Speed, def.Hold)
	})
}
