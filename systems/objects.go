package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
)

func UpdateObjects(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}

// removeEntity despawns an entity, detaching its collision object from the
// space first.
func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if spaceEntry, ok := components.Space.First(ecs.World); ok {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}

// UpdateTicker advances the simulation tick counter. Runs first so every
// system on the tick sees the same timestamp.
func UpdateTicker(ecs *ecs.ECS) {
	if entry, ok := components.GameState.First(ecs.World); ok {
		components.GameState.Get(entry).Tick++
	}
}
