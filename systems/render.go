package systems

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/pixelforge/strider/components"
	cfg "github.com/pixelforge/strider/config"
	"github.com/pixelforge/strider/tags"
)

var drawOp = &ebiten.DrawImageOptions{}

// worldToScreen projects a world-space point (units, Y up) to screen
// pixels through the camera.
func worldToScreen(camera *components.CameraData, wx, wy float64) (float32, float32) {
	ppu := cfg.World.PixelsPerUnit
	sx := (wx-camera.Position.X)*ppu + float64(cfg.C.Width)/2
	sy := float64(cfg.C.Height)/2 - (wy-camera.Position.Y)*ppu
	return float32(sx), float32(sy)
}

func currentCamera(e *ecs.ECS) (*components.CameraData, bool) {
	entry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(entry), true
}

// DrawBackdrop clears the frame to the sky color.
func DrawBackdrop(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyBlue)
}

// DrawScenery renders the background clouds.
func DrawScenery(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := currentCamera(e)
	if !ok {
		return
	}
	tags.Scenery.Each(e.World, func(entry *donburi.Entry) {
		drawBoxSprite(screen, camera, entry)
	})
}

// DrawLevel renders the ground plane and the obstacle boxes.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := currentCamera(e)
	if !ok {
		return
	}
	tags.Ground.Each(e.World, func(entry *donburi.Entry) {
		drawBoxSprite(screen, camera, entry)
	})
	tags.Obstacle.Each(e.World, func(entry *donburi.Entry) {
		drawBoxSprite(screen, camera, entry)
	})
}

func drawBoxSprite(screen *ebiten.Image, camera *components.CameraData, entry *donburi.Entry) {
	obj := components.Object.Get(entry)
	sprite := components.Sprite.Get(entry)

	sx, sy := worldToScreen(camera, obj.X, obj.Y+obj.H)
	sw := float32(obj.W * cfg.World.PixelsPerUnit)
	sh := float32(obj.H * cfg.World.PixelsPerUnit)

	if sprite.Image != nil {
		drawOp.GeoM.Reset()
		drawOp.GeoM.Translate(float64(sx), float64(sy))
		screen.DrawImage(sprite.Image, drawOp)
		return
	}
	vector.FillRect(screen, sx, sy, sw, sh, sprite.Color, false)
}

// DrawCharacters renders the character's current animation frame anchored
// at its feet, flipped by facing. Until the sheet for the current state is
// installed, a placeholder box stands in so physics stays visible.
func DrawCharacters(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := currentCamera(e)
	if !ok {
		return
	}

	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		char := components.Character.Get(entry)
		anim := components.Animation.Get(entry)

		fx, fy := worldToScreen(camera, char.Position.X, char.Position.Y)

		img := currentFrame(anim)
		if img == nil {
			w := float32(cfg.Player.CollisionWidth * cfg.World.PixelsPerUnit)
			h := float32(cfg.Player.CollisionHeight * cfg.World.PixelsPerUnit)
			vector.FillRect(screen, fx-w/2, fy-h, w, h, cfg.White, false)
			return
		}

		drawOp.GeoM.Reset()
		// Anchor at bottom-center so the feet line up with the collision box
		drawOp.GeoM.Translate(-float64(anim.FrameWidth)/2, -float64(anim.FrameHeight))
		drawOp.GeoM.Scale(char.Facing, 1)
		drawOp.GeoM.Translate(float64(fx), float64(fy))
		screen.DrawImage(img, drawOp)
	})
}

// currentFrame returns the pre-sliced frame image for the current clip,
// slicing and caching on first use.
func currentFrame(anim *components.AnimationData) *ebiten.Image {
	if anim.CurrentClip == nil {
		return nil
	}
	frame := anim.CurrentClip.Frame()

	if frames, ok := anim.CachedFrames[anim.Current]; ok {
		if img := frames[frame]; img != nil {
			return img
		}
	}

	sheet := anim.SpriteSheets[anim.Current]
	if sheet == nil {
		return nil
	}

	sx := frame * anim.FrameWidth
	srcRect := image.Rect(sx, 0, sx+anim.FrameWidth, anim.FrameHeight)
	img := sheet.SubImage(srcRect).(*ebiten.Image)

	if anim.CachedFrames[anim.Current] == nil {
		anim.CachedFrames[anim.Current] = make(map[int]*ebiten.Image)
	}
	anim.CachedFrames[anim.Current][frame] = img
	return img
}

// DrawDebug outlines collision boxes when enabled.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.DrawBoxes {
		return
	}
	camera, ok := currentCamera(e)
	if !ok {
		return
	}

	components.Object.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Object.Get(entry)
		sx, sy := worldToScreen(camera, obj.X, obj.Y+obj.H)
		sw := float32(obj.W * cfg.World.PixelsPerUnit)
		sh := float32(obj.H * cfg.World.PixelsPerUnit)
		vector.StrokeRect(screen, sx, sy, sw, sh, 1, cfg.DebugGreen, false)
	})
}
