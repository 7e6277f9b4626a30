package systems

import (
	"testing"

	cfg "github.com/pixelforge/strider/config"
)

// stepAnimations runs one animation tick with the given actions held,
// without the controller, so the edge-driven refresh path is exercised on
// its own.
func (env *testEnv) stepAnimations(held ...cfg.ActionID) {
	input := getOrCreateInput(env.ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		input.Current[a] = true
	}

	UpdateAnimations(env.ecs)
}

func TestAnimations_ReleaseEdgeReturnsToIdle(t *testing.T) {
	env := newTestEnv(5)
	env.installClips()
	anim := env.animation()

	env.stepAnimations(cfg.ActionMoveRight)
	if anim.Current != cfg.Running {
		t.Fatalf("clip = %v while holding right, want %v", anim.Current, cfg.Running)
	}

	env.stepAnimations()
	if anim.Current != cfg.Idle {
		t.Fatalf("clip = %v after release, want %v", anim.Current, cfg.Idle)
	}
	if !anim.Clips[cfg.Idle].Playing() {
		t.Fatalf("idle clip not playing after release")
	}
}

func TestAnimations_NoEdgeNoRefresh(t *testing.T) {
	env := newTestEnv(5)
	env.installClips()
	anim := env.animation()

	env.stepAnimations(cfg.ActionMoveRight)
	running := anim.Clips[cfg.Running]
	for i := 0; i < 20; i++ {
		env.stepAnimations(cfg.ActionMoveRight)
	}

	// Holding steady produces no edge; the clip advances instead of
	// restarting every tick.
	if running.Frame() == running.First {
		t.Fatalf("running clip stuck on first frame, want playback to advance")
	}
	if anim.Current != cfg.Running {
		t.Fatalf("clip = %v, want %v", anim.Current, cfg.Running)
	}
}

func TestAnimations_JumpOwnsDisplayThroughEdges(t *testing.T) {
	env := newTestEnv(5)
	env.installClips()
	char := env.character()
	anim := env.animation()

	char.Jumping = true
	anim.SetClip(cfg.Jump)

	env.stepAnimations(cfg.ActionMoveRight)
	if anim.Current != cfg.Jump {
		t.Fatalf("clip = %v during jump, want %v", anim.Current, cfg.Jump)
	}
}
