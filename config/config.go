package config

import "image/color"

// TPS is the fixed simulation rate. Timers configured in seconds are
// converted to tick counts with this value.
const TPS = 60

// RespawnConfig contains the life-loss and respawn orchestration options
type RespawnConfig struct {
	// Delay between an accepted loss and the respawn executing
	DelaySeconds float64
	// Duration of the paddle growth animation after a respawn.
	// Runs concurrently with nothing else blocking it; defaults to DelaySeconds.
	GrowthDurationSeconds float64
	// Lives at the start of a run
	StartingLives int
	// Paddle visual scale at the bottom of the shrink animation
	MinScale float64
}

// DelayFrames returns the respawn delay in simulation ticks.
func (c RespawnConfig) DelayFrames() int {
	return int(c.DelaySeconds * TPS)
}

// GrowthFrames returns the paddle growth duration in simulation ticks.
func (c RespawnConfig) GrowthFrames() int {
	return int(c.GrowthDurationSeconds * TPS)
}

// PaddleConfig contains paddle movement and dimension values
type PaddleConfig struct {
	Speed  float64
	Width  float64
	Height float64
}

// BallConfig contains ball movement and dimension values
type BallConfig struct {
	Size       float64
	ServeSpeed float64
	// Horizontal component of the serve direction (vertical is always up)
	ServeAngle float64
	MaxSpeed   float64
}

// HazardConfig contains drifting hazard behavior values
type HazardConfig struct {
	Size           float64
	PatrolDistance float64
	PatrolSeconds  float64
}

// SizeEffectConfig contains the paddle size powerup values
type SizeEffectConfig struct {
	ShrinkMultiplier  float64
	EnlargeMultiplier float64
	DurationSeconds   float64
	MinWidthScale     float64
	MaxWidthScale     float64
	ShrinkBrickType   int
	EnlargeBrickType  int
}

// DurationFrames returns the powerup duration in simulation ticks.
func (c SizeEffectConfig) DurationFrames() int {
	return int(c.DurationSeconds * TPS)
}

// BrickConfig contains brick classification values
type BrickConfig struct {
	// Type ID that marks a brick as indestructible
	IndestructibleType int
}

// FadeConfig contains the respawn fade overlay values
type FadeConfig struct {
	MaxAlpha float32
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin         float64
	HeartSize      float64
	HeartGap       float64
	HeartColor     color.RGBA
	LastLifeColor  color.RGBA
	LevelTextColor color.RGBA
}

// PauseConfig contains pause menu configuration values
type PauseConfig struct {
	OverlayColor      color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// PlayfieldConfig contains entity colors for the flat-shaded renderer
type PlayfieldConfig struct {
	BackgroundColor color.RGBA
	WallColor       color.RGBA
	BrickColor      color.RGBA
	HardBrickColor  color.RGBA
	ShrinkColor     color.RGBA
	EnlargeColor    color.RGBA
	PaddleColor     color.RGBA
	BallColor       color.RGBA
	HazardColor     color.RGBA
	GoalColor       color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool
	DrawHitboxes bool
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
}

// Global configuration instances
var C *Config
var Respawn RespawnConfig
var Paddle PaddleConfig
var Ball BallConfig
var Hazard HazardConfig
var SizeEffect SizeEffectConfig
var Brick BrickConfig
var Fade FadeConfig
var HUD HUDConfig
var Pause PauseConfig
var Menu MenuConfig
var GameOver GameOverConfig
var Playfield PlayfieldConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
	}

	// Respawn Config (recognized options: respawn delay, growth duration,
	// starting lives; growth duration defaults to the respawn delay)
	Respawn = RespawnConfig{
		DelaySeconds:          1.0,
		GrowthDurationSeconds: 1.0,
		StartingLives:         3,
		MinScale:              0.05,
	}

	Paddle = PaddleConfig{
		Speed:  5.0,
		Width:  64.0,
		Height: 10.0,
	}

	Ball = BallConfig{
		Size:       8.0,
		ServeSpeed: 4.0,
		ServeAngle: 0.5,
		MaxSpeed:   6.0,
	}

	Hazard = HazardConfig{
		Size:           14.0,
		PatrolDistance: 96.0,
		PatrolSeconds:  2.0,
	}

	// Matches the original powerup bricks: type 30 shrinks to 70%,
	// type 32 enlarges to 150%, for 10 seconds, replacing each other.
	SizeEffect = SizeEffectConfig{
		ShrinkMultiplier:  0.7,
		EnlargeMultiplier: 1.5,
		DurationSeconds:   10.0,
		MinWidthScale:     0.5,
		MaxWidthScale:     1.5,
		ShrinkBrickType:   30,
		EnlargeBrickType:  32,
	}

	Brick = BrickConfig{
		IndestructibleType: 1,
	}

	Fade = FadeConfig{
		MaxAlpha: 0.6,
	}

	HUD = HUDConfig{
		Margin:         10.0,
		HeartSize:      10.0,
		HeartGap:       4.0,
		HeartColor:     color.RGBA{R: 220, G: 40, B: 60, A: 255},
		LastLifeColor:  BrightOrange,
		LevelTextColor: White,
	}

	Pause = PauseConfig{
		OverlayColor:      BlackOverlay,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Resume", "Exit"},
	}

	Menu = MenuConfig{
		BackgroundColor:   color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:        Orange,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            80,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuItemGap:       12,
		MenuOptions:       []string{"Play", "Exit"},
	}

	GameOver = GameOverConfig{
		BackgroundColor:   color.RGBA{R: 40, G: 10, B: 10, A: 255},
		TitleColor:        LightRed,
		TextColorNormal:   White,
		TextColorSelected: BrightOrange,
		TitleY:            100,
		MenuStartY:        160,
		MenuItemHeight:    30,
		MenuItemGap:       15,
		MenuOptions:       []string{"Retry", "Main Menu"},
	}

	Playfield = PlayfieldConfig{
		BackgroundColor: color.RGBA{R: 12, G: 14, B: 24, A: 255},
		WallColor:       color.RGBA{R: 90, G: 95, B: 110, A: 255},
		BrickColor:      color.RGBA{R: 70, G: 130, B: 200, A: 255},
		HardBrickColor:  color.RGBA{R: 130, G: 130, B: 130, A: 255},
		ShrinkColor:     color.RGBA{R: 200, G: 70, B: 70, A: 255},
		EnlargeColor:    color.RGBA{R: 70, G: 200, B: 70, A: 255},
		PaddleColor:     color.RGBA{R: 230, G: 230, B: 240, A: 255},
		BallColor:       White,
		HazardColor:     color.RGBA{R: 255, G: 80, B: 190, A: 255},
		GoalColor:       color.RGBA{R: 30, G: 10, B: 10, A: 255},
	}

	Debug = DebugConfig{
		SkipMenu:     false,
		DrawHitboxes: false,
	}
}
