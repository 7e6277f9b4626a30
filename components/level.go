package components

import (
	"github.com/pixelforge/strider/assets"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	LevelIndex   int
	Names        []string
}

var Level = donburi.NewComponentType[LevelData]()
