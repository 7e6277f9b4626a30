package animations

// Clip is a strip of sprite sheet frames played at a fixed tick rate.
type Clip struct {
	First      int
	Last       int
	Step       int     // how many sheet indices we move per frame
	SpeedInTps float32 // how many ticks before the next frame
	// Hold freezes the clip on its last frame once it finishes playing
	// instead of looping back to the beginning.
	Hold bool

	frameCounter float32
	frame        int
	playing      bool
	Finished     bool // set once the clip has passed its last frame
}

func NewClip(first, last, step int, speed float32, hold bool) *Clip {
	return &Clip{
		First:        first,
		Last:         last,
		Step:         step,
		SpeedInTps:   speed,
		Hold:         hold,
		frameCounter: speed,
		frame:        first,
	}
}

// Update advances playback by one tick. Stopped clips don't move.
func (c *Clip) Update() {
	if !c.playing {
		return
	}
	c.frameCounter -= 1.0
	if c.frameCounter < 0.0 {
		c.frameCounter = c.SpeedInTps
		c.frame += c.Step
		if c.frame > c.Last {
			c.Finished = true
			if c.Hold {
				c.frame = c.Last
			} else {
				c.frame = c.First
			}
		}
	}
}

func (c *Clip) Frame() int {
	return c.frame
}

// Play restarts the clip from its first frame.
func (c *Clip) Play() {
	c.frame = c.First
	c.frameCounter = c.SpeedInTps
	c.Finished = false
	c.playing = true
}

func (c *Clip) Stop() {
	c.playing = false
}

func (c *Clip) Playing() bool {
	return c.playing
}
