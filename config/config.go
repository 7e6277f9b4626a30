package config

import "image/color"

// PlayerConfig contains all character-controller configuration values.
// Distances are in world units, speeds in units per second.
type PlayerConfig struct {
	// Movement
	JumpSpeed float64 // launch speed applied upward when a jump starts
	MoveSpeed float64
	Gravity   float64 // negative, applied per second of elapsed time

	// Bounding box
	CollisionWidth  float64
	CollisionHeight float64

	// Sprite sheet frame dimensions (pixels)
	FrameWidth  int
	FrameHeight int
}

// WorldConfig describes the fixed scene: the ground plane and the
// projection from world units to screen pixels.
type WorldConfig struct {
	GroundTop     float64 // Y of the walkable plane's top surface
	GroundDepth   float64 // thickness of the ground box below its top
	PixelsPerUnit float64
	MaxDelta      float64 // clamp for per-frame elapsed seconds
}

// CameraConfig contains camera follow behavior.
type CameraConfig struct {
	FollowSmoothing    float64 // how fast camera tracks the character (0.0-1.0)
	LookAheadDistanceX float64 // horizontal look-ahead offset in world units
	LookAheadSmoothing float64
	HeightOffset       float64 // camera center above the character's feet
}

// MenuConfig contains character-select menu layout values.
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
}

// HUDConfig contains debug HUD values.
type HUDConfig struct {
	TextColor color.RGBA
	Margin    float64
}

// SceneryConfig contains background scenery tuning.
type SceneryConfig struct {
	CloudDriftDistance float64 // world units a cloud drifts before turning back
	CloudDriftSeconds  float32
}

// Config holds general game configuration.
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var World WorldConfig
var Camera CameraConfig
var Menu MenuConfig
var HUD HUDConfig
var Scenery SceneryConfig

// DebugConfig contains debug/testing command-line options.
type DebugConfig struct {
	SkipMenu  bool // skip character select and go directly to the scene
	DrawBoxes bool // outline collision boxes
}

var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	SkyBlue      = color.RGBA{R: 120, G: 180, B: 235, A: 255}
	GroundBrown  = color.RGBA{R: 110, G: 80, B: 50, A: 255}
	BoxGray      = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	CloudWhite   = color.RGBA{R: 245, G: 248, B: 252, A: 230}
	DebugGreen   = color.RGBA{R: 0, G: 255, B: 60, A: 255}
)

// Direction constants for character facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	Player = PlayerConfig{
		JumpSpeed: 5.0,
		MoveSpeed: 3.0,
		Gravity:   -9.8,

		CollisionWidth:  0.6,
		CollisionHeight: 1.7,

		FrameWidth:  96,
		FrameHeight: 84,
	}

	World = WorldConfig{
		GroundTop:     0.0,
		GroundDepth:   2.0,
		PixelsPerUnit: 48.0,
		MaxDelta:      0.1,
	}

	Camera = CameraConfig{
		FollowSmoothing:    0.1,
		LookAheadDistanceX: 1.25,
		LookAheadSmoothing: 0.05,
		HeightOffset:       1.2,
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        BrightOrange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            60,
		MenuStartY:        130,
		MenuItemHeight:    30,
		MenuItemGap:       12,
	}

	HUD = HUDConfig{
		TextColor: White,
		Margin:    8,
	}

	Scenery = SceneryConfig{
		CloudDriftDistance: 3.0,
		CloudDriftSeconds:  6,
	}

	Debug = DebugConfig{
		SkipMenu:  false,
		DrawBoxes: false,
	}
}
