package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/archetypes"
	"github.com/automoto/brickfall/components"
	"github.com/automoto/brickfall/tags"
)

// CreateGoal creates the out-of-bounds strip below the playfield. A ball
// overlapping it counts as lost.
func CreateGoal(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	goal := archetypes.Goal.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvGoal)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = goal

	components.Object.SetValue(goal, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return goal
}
