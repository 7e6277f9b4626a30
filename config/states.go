package config

import "github.com/yohamta/donburi/ecs"

// StateID identifies a character animation state. Exactly one is current
// once clips are installed.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Running
	Jump
)

// StateToFileName maps a state to the sprite sheet file stem on disk.
var StateToFileName = map[StateID]string{
	Idle:    "idle",
	Running: "run",
	Jump:    "jump",
}

func (s StateID) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Jump:
		return "jump"
	}
	return "none"
}

// Default is the single render layer.
const Default ecs.LayerID = 0
