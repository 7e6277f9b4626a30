package systems

import (
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"

	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
	"github.com/pixelforge/strider/fonts"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateMenu creates an UpdateMenu system with scene transition
// capability. createWorldScene receives the chosen character key.
func NewUpdateMenu(sceneChanger SceneChanger, createWorldScene func(character string) interface{}) ecs.System {
	return func(e *ecs.ECS) {
		menu := GetOrCreateMenu(e)
		input := getOrCreateInput(e)

		numOptions := len(menu.Options)
		if numOptions == 0 {
			return
		}

		// Navigate with wrap-around
		if input.Action(cfg.ActionMenuUp).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex - 1 + numOptions) % numOptions
		}
		if input.Action(cfg.ActionMenuDown).JustPressed {
			menu.SelectedIndex = (menu.SelectedIndex + 1) % numOptions
		}

		if input.Action(cfg.ActionMenuSelect).JustPressed {
			character := menu.Options[menu.SelectedIndex]
			// Save errors are logged inside; a failed save only loses the
			// default-selection next run
			_ = SaveSelectedCharacter(character)
			sceneChanger.ChangeScene(createWorldScene(character))
		}

		if input.Action(cfg.ActionMenuBack).JustPressed {
			os.Exit(0)
		}
	}
}

// DrawMenu renders the character-select screen
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	menu := GetOrCreateMenu(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Menu.BackgroundColor,
		false,
	)

	titleFont := fonts.Title.Get()
	title := "STRIDER"
	text.Draw(screen, title, titleFont, centeredX(titleFont, title, width), int(cfg.Menu.TitleY), cfg.Menu.TitleColor)

	menuFont := fonts.Body.Get()

	for i, option := range menu.Options {
		y := cfg.Menu.MenuStartY + float64(i)*(cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap)

		textColor := cfg.Menu.TextColorNormal
		if i == menu.SelectedIndex {
			textColor = cfg.Menu.TextColorSelected
		}

		label := strings.ToUpper(option)
		text.Draw(screen, label, menuFont, centeredX(menuFont, label, width), int(y)+int(cfg.Menu.MenuItemHeight), textColor)
	}

	hint := "Arrows: Navigate   Enter: Select   Esc: Quit"
	hintFont := fonts.Small.Get()
	text.Draw(screen, hint, hintFont, centeredX(hintFont, hint, width), int(height)-12, cfg.Menu.TextColorNormal)
}

// centeredX returns the left edge that centers s on a line of the given
// width, measured on the actual face so the TTF and the bitmap fallback
// both center correctly.
func centeredX(face font.Face, s string, width float64) int {
	return int((width - float64(font.MeasureString(face, s).Ceil())) / 2)
}

// GetOrCreateMenu returns the singleton Menu component, creating if needed
func GetOrCreateMenu(e *ecs.ECS) *components.MenuData {
	if _, ok := components.Menu.First(e.World); !ok {
		ent := e.World.Entry(e.World.Create(components.Menu))
		components.Menu.SetValue(ent, components.MenuData{
			SelectedIndex: 0,
			Options:       cfg.Characters,
		})
	}

	ent, _ := components.Menu.First(e.World)
	return components.Menu.Get(ent)
}
