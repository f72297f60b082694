// Package events defines the run-level events published by the gameplay
// systems. Subscribers run when systems.UpdateEvents drains the queue at the
// end of each tick.
package events

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"

	"github.com/automoto/brickfall/components"
)

type LifeLostData struct {
	Cause          components.LossCause
	LivesRemaining int
}

type RespawnScheduledData struct {
	ETATicks int
}

type RespawnExecutedData struct {
	Paddle donburi.Entity
	Ball   donburi.Entity
}

type RespawnCompletedData struct{}

type GameOverRequestedData struct{}

type LevelLoadedData struct {
	Name       string
	LevelIndex int
}

var (
	LifeLost          = events.NewEventType[LifeLostData]()
	RespawnScheduled  = events.NewEventType[RespawnScheduledData]()
	RespawnExecuted   = events.NewEventType[RespawnExecutedData]()
	RespawnCompleted  = events.NewEventType[RespawnCompletedData]()
	GameOverRequested = events.NewEventType[GameOverRequestedData]()
	LevelLoaded       = events.NewEventType[LevelLoadedData]()
)

// ProcessAll drains every queued event, invoking subscribers in publish order.
func ProcessAll(w donburi.World) {
	events.ProcessAllEvents(w)
}
