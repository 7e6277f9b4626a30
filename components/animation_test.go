package components

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/pixelforge/strider/assets/animations"
	"github.com/pixelforge/strider/config"
)

func newTestAnimation() *AnimationData {
	return &AnimationData{
		Clips: map[config.StateID]*animations.Clip{
			config.Idle:    animations.NewClip(0, 3, 1, 8, false),
			config.Running: animations.NewClip(0, 5, 1, 6, false),
			config.Jump:    animations.NewClip(0, 2, 1, 10, true),
		},
		SpriteSheets: map[config.StateID]*ebiten.Image{},
		CachedFrames: map[config.StateID]map[int]*ebiten.Image{},
	}
}

func TestSetClip_ExactlyOnePlaying(t *testing.T) {
	anim := newTestAnimation()

	anim.SetClip(config.Idle)
	anim.SetClip(config.Running)

	playing := 0
	for _, clip := range anim.Clips {
		if clip.Playing() {
			playing++
		}
	}
	if playing != 1 {
		t.Fatalf("playing clips = %d, want 1", playing)
	}
	if !anim.Clips[config.Running].Playing() {
		t.Fatalf("running clip stopped, want playing")
	}
	if anim.Current != config.Running {
		t.Fatalf("current = %v, want %v", anim.Current, config.Running)
	}
}

func TestSetClip_SameStateIsNoOp(t *testing.T) {
	anim := newTestAnimation()

	anim.SetClip(config.Idle)
	clip := anim.Clips[config.Idle]

	// Advance playback, then re-request the same state. A restart would
	// reset the frame.
	for i := 0; i < 20; i++ {
		clip.Update()
	}
	frame := clip.Frame()

	anim.SetClip(config.Idle)
	if clip.Frame() != frame {
		t.Fatalf("frame = %d after redundant SetClip, want %d", clip.Frame(), frame)
	}
	if !clip.Playing() {
		t.Fatalf("clip stopped by redundant SetClip")
	}
}

func TestSetClip_MissingClipLeavesCurrentAlone(t *testing.T) {
	anim := newTestAnimation()
	delete(anim.Clips, config.Jump)

	anim.SetClip(config.Running)
	anim.SetClip(config.Jump)

	if anim.Current != config.Running {
		t.Fatalf("current = %v, want %v", anim.Current, config.Running)
	}
	if !anim.Clips[config.Running].Playing() {
		t.Fatalf("running clip stopped by request for a missing clip")
	}
}

func TestSetClip_RetriesAfterInstall(t *testing.T) {
	// Dropped requests are not queued; the next state evaluation asks
	// again, and by then the clip may have been installed.
	anim := newTestAnimation()
	delete(anim.Clips, config.Jump)

	anim.SetClip(config.Jump)
	anim.Clips[config.Jump] = animations.NewClip(0, 2, 1, 10, true)
	anim.SetClip(config.Jump)

	if anim.Current != config.Jump {
		t.Fatalf("current = %v, want %v", anim.Current, config.Jump)
	}
}
