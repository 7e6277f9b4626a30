package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
	"github.com/pixelforge/strider/systems"
	"github.com/pixelforge/strider/systems/factory"
)

// WorldScene runs the side-scrolling scene for one character.
type WorldScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	character    string
	once         sync.Once
}

// NewWorldScene creates the scene for the given character key
func NewWorldScene(sc SceneChanger, character string) *WorldScene {
	return &WorldScene{sceneChanger: sc, character: character}
}

func (ws *WorldScene) Update() {
	ws.once.Do(ws.configure)
	ws.ecs.Update()

	// Escape returns to character select
	if input, ok := components.Input.First(ws.ecs.World); ok {
		if components.Input.Get(input).Action(cfg.ActionMenuBack).JustPressed {
			ws.sceneChanger.ChangeScene(NewMenuScene(ws.sceneChanger))
		}
	}
}

func (ws *WorldScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ws.ecs == nil {
		return
	}
	ws.ecs.Draw(screen)
}

func (ws *WorldScene) configure() {
	ws.ecs = ecs.NewECS(donburi.NewWorld())

	// Update order matters: clock and input feed the controller, the
	// controller moves the character before animation and camera read it.
	ws.ecs.AddSystem(systems.UpdateClock)
	ws.ecs.AddSystem(systems.UpdateInput)
	ws.ecs.AddSystem(systems.UpdateLoading)
	ws.ecs.AddSystem(systems.UpdateController)
	ws.ecs.AddSystem(systems.UpdateAnimations)
	ws.ecs.AddSystem(systems.UpdateScenery)
	ws.ecs.AddSystem(systems.UpdateCamera)

	ws.ecs.AddRenderer(cfg.Default, systems.DrawBackdrop)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawScenery)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawLevel)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawCharacters)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawHUD)
	ws.ecs.AddRenderer(cfg.Default, systems.DrawDebug)

	// Level data first: the collision world and spawn point come from it
	levelEntry, err := factory.CreateLevel(ws.ecs, 0)
	if err != nil {
		log.Fatalf("could not load level: %v", err)
	}
	level := components.Level.Get(levelEntry).CurrentLevel

	factory.CreateCollisionWorld(ws.ecs, level)
	factory.CreateClock(ws.ecs)
	factory.CreateCamera(ws.ecs, level.SpawnX)

	factory.CreateCharacter(ws.ecs, level.SpawnX)
	factory.CreateLoader(ws.ecs, ws.character)

	for _, cloud := range level.Clouds {
		factory.CreateCloud(ws.ecs, cloud.X, cloud.Y, cloud.W, cloud.H)
	}
}
