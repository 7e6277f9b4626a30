package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pixelforge/strider/assets/animations"
	"github.com/pixelforge/strider/config"
	"github.com/yohamta/donburi"
)

// AnimationData owns the character's clip set and the single current clip.
// Clips and sprite sheets are installed by the asset loader as they finish
// decoding; until a clip is installed, requests for it are dropped and
// retried on the next state re-evaluation.
type AnimationData struct {
	Clips        map[config.StateID]*animations.Clip
	SpriteSheets map[config.StateID]*ebiten.Image
	CachedFrames map[config.StateID]map[int]*ebiten.Image // pre-sliced frames keyed by sheet index
	Current      config.StateID
	CurrentClip  *animations.Clip
	FrameWidth   int
	FrameHeight  int
}

// SetClip makes the requested clip current. This is the only place clip
// playback starts and stops: the previous clip is stopped before the next
// one plays, so exactly one clip is ever playing. Calling it with the
// already-current clip is a no-op, as is requesting a clip whose assets
// have not been installed yet.
func (a *AnimationData) SetClip(state config.StateID) {
	if state == a.Current && a.CurrentClip != nil {
		return
	}

	clip, ok := a.Clips[state]
	if !ok || clip == nil {
		return
	}

	if a.CurrentClip != nil {
		a.CurrentClip.Stop()
	}
	a.CurrentClip = clip
	a.Current = state
	clip.Play()
}

var Animation = donburi.NewComponentType[AnimationData]()
