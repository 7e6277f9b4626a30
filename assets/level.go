package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"

	"github.com/pixelforge/strider/config"
)

//go:embed all:levels
var levelFS embed.FS

// Box is an axis-aligned box in world units with Y up: Y is the bottom
// edge, Y+H the top.
type Box struct {
	X, Y, W, H float64
}

// Level is the parsed scene: obstacle boxes in the order they were
// authored, background scenery, and the character spawn point.
type Level struct {
	Name      string
	Width     float64 // world units
	Height    float64
	Obstacles []Box // TMX author order; support tie-breaks follow it
	Clouds    []Box
	SpawnX    float64
}

// LoadLevel parses one TMX file. Levels are authored in Tiled's pixel
// space (Y down); the map's groundY property pins the walkable plane, and
// everything is converted to world units with the ground top at Y=0.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	ppu := config.World.PixelsPerUnit
	groundY := float64(levelMap.Properties.GetInt("groundY"))

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  float64(levelMap.Width*levelMap.TileWidth) / ppu,
		Height: float64(levelMap.Height*levelMap.TileHeight) / ppu,
	}

	toWorld := func(o *tiled.Object) Box {
		return Box{
			X: o.X / ppu,
			Y: (groundY - (o.Y + o.Height)) / ppu,
			W: o.Width / ppu,
			H: o.Height / ppu,
		}
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Obstacles":
			for _, o := range og.Objects {
				level.Obstacles = append(level.Obstacles, toWorld(o))
			}
		case "Scenery":
			for _, o := range og.Objects {
				level.Clouds = append(level.Clouds, toWorld(o))
			}
		case "PlayerSpawn":
			for _, o := range og.Objects {
				level.SpawnX = o.X / ppu
			}
		}
	}

	return level, nil
}

// LoadAllLevels discovers every .tmx under levels/ in the embedded
// filesystem and returns them keyed by stem name plus a sorted name list.
func LoadAllLevels() (map[string]*Level, []string, error) {
	return loadAllLevels(levelFS, "levels")
}

func loadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		level, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[level.Name] = level
		names = append(names, level.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}
