package tags

import "github.com/yohamta/donburi"

var (
	Paddle = donburi.NewTag().SetName("Paddle")
	Ball   = donburi.NewTag().SetName("Ball")
	Brick  = donburi.NewTag().SetName("Brick")
	Wall   = donburi.NewTag().SetName("Wall")
	Goal   = donburi.NewTag().SetName("Goal")
	Hazard = donburi.NewTag().SetName("Hazard")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPaddle = "paddle"
	ResolvBall   = "ball"
	ResolvBrick  = "brick"
	ResolvGoal   = "goal"
	ResolvHazard = "hazard"
)
