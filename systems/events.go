package systems

import (
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/events"
)

// UpdateEvents drains the event queue. Runs last so subscribers observe the
// tick's final state.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAll(ecs.World)
}
