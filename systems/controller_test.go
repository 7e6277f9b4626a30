package systems

import (
	"math"
	"testing"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/archetypes"
	"github.com/pixelforge/strider/assets/animations"
	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
	"github.com/pixelforge/strider/systems/factory"
	"github.com/pixelforge/strider/tags"
)

func approxEqual(t *testing.T, got, want, tol float64, field string) {
	t.Helper()
	if math.Abs(got-want) > tol {
		t.Fatalf("%s = %.8f, want %.8f (tol=%.8f)", field, got, want, tol)
	}
}

type testEnv struct {
	ecs  *ecs.ECS
	char *donburi.Entry
}

// newTestEnv builds a minimal world: clock, input, a ground plane with its
// top at Y=0, the given obstacles in order, and one character at x.
func newTestEnv(x float64, obstacles ...*resolv.Object) *testEnv {
	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateClock(e)
	getOrCreateInput(e)

	worldEntry := archetypes.CollisionWorld.Spawn(e)
	world := components.CollisionWorldData{
		Ground: resolv.NewObject(0, -2, 100, 2, tags.ResolvGround),
	}
	for _, obs := range obstacles {
		world.AddObstacle(obs)
	}
	components.CollisionWorld.SetValue(worldEntry, world)

	char := factory.CreateCharacter(e, x)
	return &testEnv{ecs: e, char: char}
}

func (env *testEnv) character() *components.CharacterData {
	return components.Character.Get(env.char)
}

func (env *testEnv) animation() *components.AnimationData {
	return components.Animation.Get(env.char)
}

// placeAt teleports the character to (x, y) and syncs its collision box.
func (env *testEnv) placeAt(x, y float64) {
	char := env.character()
	obj := components.Object.Get(env.char).Object
	char.Position.X = x
	char.Position.Y = y
	obj.X = x - obj.W/2
	obj.Y = y
}

// installClips gives the character a full clip set so state changes are
// observable without decoded sprite sheets.
func (env *testEnv) installClips() {
	anim := env.animation()
	anim.Clips[cfg.Idle] = animations.NewClip(0, 3, 1, 8, false)
	anim.Clips[cfg.Running] = animations.NewClip(0, 5, 1, 6, false)
	anim.Clips[cfg.Jump] = animations.NewClip(0, 2, 1, 10, true)
}

// step runs one controller tick with the given actions held.
func (env *testEnv) step(dt float64, held ...cfg.ActionID) {
	clockEntry, _ := components.Clock.First(env.ecs.World)
	components.Clock.Get(clockEntry).Delta = dt

	input := getOrCreateInput(env.ecs)
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}
	for _, a := range held {
		input.Current[a] = true
	}

	UpdateController(env.ecs)
}

func TestController_FreeFallOneTick(t *testing.T) {
	env := newTestEnv(5)
	env.placeAt(5, 5)

	env.step(0.1)

	char := env.character()
	approxEqual(t, char.VelocityY, -0.98, 1e-9, "velocityY")
	approxEqual(t, char.Position.Y, 4.902, 1e-9, "position.y")
	if char.Jumping {
		t.Fatalf("jumping = true, want false")
	}
}

func TestController_OvershootThenSnapToObstacleTop(t *testing.T) {
	box := resolv.NewObject(4.5, 0, 1, 1) // top at 1
	env := newTestEnv(5, box)
	env.placeAt(5, 1.05)
	env.character().VelocityY = -1

	// First tick: still above the surface, integration carries the
	// character below the top.
	env.step(0.1)
	char := env.character()
	approxEqual(t, char.VelocityY, -1.98, 1e-9, "velocityY after overshoot")
	approxEqual(t, char.Position.Y, 0.852, 1e-9, "position.y after overshoot")

	// Second tick: the backward projection sees last tick's bottom above
	// the top, so the obstacle bears the weight and the position snaps.
	env.step(0.1)
	approxEqual(t, char.VelocityY, 0, 1e-9, "velocityY after landing")
	approxEqual(t, char.Position.Y, 1, 1e-9, "position.y after landing")
	if char.Jumping {
		t.Fatalf("jumping = true after landing, want false")
	}
}

func TestController_JumpFromRest(t *testing.T) {
	env := newTestEnv(5)
	env.installClips()

	env.step(0.1, cfg.ActionJump)

	char := env.character()
	approxEqual(t, char.VelocityY, cfg.Player.JumpSpeed, 1e-9, "velocityY")
	approxEqual(t, char.Position.Y, 0, 1e-9, "position.y")
	if !char.Jumping {
		t.Fatalf("jumping = false, want true")
	}
	if env.animation().Current != cfg.Jump {
		t.Fatalf("clip = %v, want %v", env.animation().Current, cfg.Jump)
	}
}

func TestController_JumpLockedOutInFlight(t *testing.T) {
	env := newTestEnv(5)

	env.step(0.1, cfg.ActionJump)
	env.step(0.1) // release
	env.step(0.1, cfg.ActionJump)

	// The second press edge arrives mid-flight and must not relaunch.
	char := env.character()
	approxEqual(t, char.VelocityY, 5-2*0.98, 1e-9, "velocityY")
	if !char.Jumping {
		t.Fatalf("jumping = false, want true")
	}
}

func TestController_NoMidAirLaunchAfterWalkOff(t *testing.T) {
	env := newTestEnv(5)
	env.placeAt(5, 3)

	// One free-fall tick: airborne without a jump in flight
	env.step(0.1)
	char := env.character()
	approxEqual(t, char.VelocityY, -0.98, 1e-9, "velocityY before press")
	if char.Jumping {
		t.Fatalf("jumping = true in free fall, want false")
	}

	// The press edge arrives with nothing underfoot; the fall continues.
	env.step(0.1, cfg.ActionJump)
	approxEqual(t, char.VelocityY, -1.96, 1e-9, "velocityY after press")
	if char.Jumping {
		t.Fatalf("jumping = true after mid-air press, want false")
	}
}

func TestController_JumpArcLandsBackOnGround(t *testing.T) {
	env := newTestEnv(5)

	env.step(0.05, cfg.ActionJump)

	maxY := 0.0
	for i := 0; i < 60; i++ {
		env.step(0.05)
		if y := env.character().Position.Y; y > maxY {
			maxY = y
		}
	}

	char := env.character()
	if maxY < 1.0 || maxY > 1.4 {
		t.Fatalf("jump apex = %.4f, want around 1.15", maxY)
	}
	approxEqual(t, char.Position.Y, 0, 1e-9, "position.y after landing")
	approxEqual(t, char.VelocityY, 0, 1e-9, "velocityY after landing")
	if char.Jumping {
		t.Fatalf("jumping = true after landing, want false")
	}
}

func TestController_MoveRightExactDistance(t *testing.T) {
	env := newTestEnv(5)
	env.installClips()

	env.step(0.1, cfg.ActionMoveRight)

	char := env.character()
	approxEqual(t, char.Position.X, 5.3, 1e-9, "position.x")
	if char.Facing != cfg.DirectionRight {
		t.Fatalf("facing = %v, want right", char.Facing)
	}
	if env.animation().Current != cfg.Running {
		t.Fatalf("clip = %v, want %v", env.animation().Current, cfg.Running)
	}

	obj := components.Object.Get(env.char).Object
	approxEqual(t, obj.X, 5.3-obj.W/2, 1e-9, "bounds.x")
}

func TestController_BlockedMoveDiscardedButFacingUpdates(t *testing.T) {
	// Obstacle flush against the character's right edge
	box := resolv.NewObject(5.3, 0, 1, 1)
	env := newTestEnv(5, box)
	env.character().Facing = cfg.DirectionLeft

	env.step(0.1, cfg.ActionMoveRight)

	char := env.character()
	approxEqual(t, char.Position.X, 5, 1e-9, "position.x")
	if char.Facing != cfg.DirectionRight {
		t.Fatalf("facing = %v, want right even when blocked", char.Facing)
	}
}

func TestController_MoveAlongObstacleTop(t *testing.T) {
	box := resolv.NewObject(4, 0, 3, 1)
	env := newTestEnv(5, box)
	env.placeAt(5, 1)

	env.step(0.1, cfg.ActionMoveRight)

	// Standing exactly on the top edge there is no vertical overlap, so
	// the box underfoot must not block walking.
	char := env.character()
	approxEqual(t, char.Position.X, 5.3, 1e-9, "position.x")
	approxEqual(t, char.Position.Y, 1, 1e-9, "position.y")
}

func TestController_ZStaysPinned(t *testing.T) {
	env := newTestEnv(5)
	env.character().Position.Z = 3

	env.step(0.1)

	approxEqual(t, env.character().Position.Z, 0, 1e-9, "position.z")
}

func TestController_IdleAtRest(t *testing.T) {
	env := newTestEnv(5)
	env.installClips()

	env.step(0.1)

	if env.animation().Current != cfg.Idle {
		t.Fatalf("clip = %v, want %v", env.animation().Current, cfg.Idle)
	}
}
