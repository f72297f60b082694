package components

import "github.com/yohamta/donburi"

// PaddleData stores the paddle's base dimensions; the live width is
// BaseWidth scaled by ScaleData and any active size effect.
type PaddleData struct {
	BaseWidth float64
	Rotation  float64
}

var Paddle = donburi.NewComponentType[PaddleData]()

// BallData stores the ball's square collision size.
type BallData struct {
	Size float64
}

var Ball = donburi.NewComponentType[BallData]()

// BrickData stores the brick's type ID from level data. Type IDs follow the
// classic numbering: 1 is indestructible, 30/32 are the size powerups.
type BrickData struct {
	TypeID int
}

var Brick = donburi.NewComponentType[BrickData]()

// HazardData stores a drifting hazard's patrol anchor. The tween drives an
// offset from OriginX along the horizontal axis.
type HazardData struct {
	OriginX float64
	OriginY float64
}

var Hazard = donburi.NewComponentType[HazardData]()
