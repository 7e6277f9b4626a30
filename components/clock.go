package components

import (
	"time"

	"github.com/yohamta/donburi"
)

// ClockData supplies the elapsed seconds between successive frames.
// Delta is written once per frame by the clock system and read by
// everything else; tests set it directly.
type ClockData struct {
	Last  time.Time
	Delta float64
}

var Clock = donburi.NewComponentType[ClockData]()
