package factory

import (
	"fmt"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/archetypes"
	"github.com/pixelforge/strider/assets"
	"github.com/pixelforge/strider/components"
)

// CreateLevel loads the embedded levels and spawns the level entity for
// the one at index (clamped into range, names sorted).
func CreateLevel(ecs *ecs.ECS, index int) (*donburi.Entry, error) {
	levels, names, err := assets.LoadAllLevels()
	if err != nil {
		return nil, fmt.Errorf("load levels: %w", err)
	}

	if index < 0 || index >= len(names) {
		index = 0
	}

	entry := archetypes.Level.Spawn(ecs)
	components.Level.SetValue(entry, components.LevelData{
		CurrentLevel: levels[names[index]],
		LevelIndex:   index,
		Names:        names,
	})
	return entry, nil
}
