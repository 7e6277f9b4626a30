package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
	"github.com/pixelforge/strider/fonts"
	"github.com/pixelforge/strider/tags"
)

// DrawHUD renders the character state readout in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	char := components.Character.Get(playerEntry)
	anim := components.Animation.Get(playerEntry)

	facing := "right"
	if char.Facing == cfg.DirectionLeft {
		facing = "left"
	}

	line := fmt.Sprintf("x %.2f  y %.2f  vy %.2f  %s  clip %s",
		char.Position.X, char.Position.Y, char.VelocityY, facing, anim.Current)

	margin := int(cfg.HUD.Margin)
	text.Draw(screen, line, fonts.Small.Get(), margin, margin+12, cfg.HUD.TextColor)
}
