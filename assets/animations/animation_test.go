package animations

import "testing"

// advance runs enough ticks to move the clip exactly one frame forward.
func advance(c *Clip) {
	for i := 0; i <= int(c.SpeedInTps); i++ {
		c.Update()
	}
}

func TestClip_LoopsWithoutHold(t *testing.T) {
	c := NewClip(0, 2, 1, 1, false)
	c.Play()

	for i := 0; i < 3; i++ {
		advance(c)
	}

	if c.Frame() != 0 {
		t.Fatalf("frame = %d after passing last, want wrap to 0", c.Frame())
	}
	if !c.Finished {
		t.Fatalf("finished = false after passing last frame")
	}
}

func TestClip_HoldFreezesOnLastFrame(t *testing.T) {
	c := NewClip(0, 2, 1, 1, true)
	c.Play()

	for i := 0; i < 10; i++ {
		advance(c)
	}

	if c.Frame() != 2 {
		t.Fatalf("frame = %d, want hold on last frame 2", c.Frame())
	}
	if !c.Finished {
		t.Fatalf("finished = false, want true")
	}
}

func TestClip_StoppedClipDoesNotAdvance(t *testing.T) {
	c := NewClip(0, 5, 1, 1, false)
	c.Play()
	advance(c)
	frame := c.Frame()

	c.Stop()
	for i := 0; i < 10; i++ {
		c.Update()
	}

	if c.Frame() != frame {
		t.Fatalf("stopped clip advanced from %d to %d", frame, c.Frame())
	}
}

func TestClip_PlayRestartsFromFirst(t *testing.T) {
	c := NewClip(0, 5, 1, 1, false)
	c.Play()
	advance(c)
	advance(c)

	c.Play()
	if c.Frame() != 0 {
		t.Fatalf("frame = %d after Play, want restart at 0", c.Frame())
	}
	if c.Finished {
		t.Fatalf("finished not cleared by Play")
	}
}
