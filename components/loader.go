package components

import (
	"github.com/pixelforge/strider/assets"
	"github.com/yohamta/donburi"
)

// LoaderData carries sprite sheets decoded by the background loader into
// the frame loop. The install system drains Results at the start of each
// frame, so shared animation state is only ever mutated frame-confined.
type LoaderData struct {
	Character string
	Results   <-chan assets.SheetResult
}

var Loader = donburi.NewComponentType[LoaderData]()
