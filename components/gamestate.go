package components

import "github.com/yohamta/donburi"

// GameStateData is the per-run state singleton. Tick is the simulation tick
// counter all timestamps refer to. GameOver is latched when the terminal
// loss is accepted; the scene reads it and transitions out of play.
type GameStateData struct {
	Tick     int
	GameOver bool
}

var GameState = donburi.NewComponentType[GameStateData]()
