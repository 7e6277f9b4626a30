package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween drives scenery drift; the scenery system applies the sequence's
// current value to the entity's X position.
type TweenData struct {
	Sequence *gween.Sequence
	OriginX  float64
}

var Tween = donburi.NewComponentType[TweenData]()
