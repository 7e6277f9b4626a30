package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Obstacle = donburi.NewTag().SetName("Obstacle")
	Ground   = donburi.NewTag().SetName("Ground")
	Scenery  = donburi.NewTag().SetName("Scenery")
)

// Resolv tags for collision objects
const (
	ResolvSolid     = "solid"
	ResolvGround    = "ground"
	ResolvCharacter = "character"
)
