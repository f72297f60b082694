package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/archetypes"
	"github.com/automoto/brickfall/components"
	"github.com/automoto/brickfall/tags"
)

func CreateBrick(ecs *ecs.ECS, x, y, w, h float64, typeID int) *donburi.Entry {
	brick := archetypes.Brick.Spawn(ecs)

	obj := resolv.NewObject(x, y, w, h, tags.ResolvBrick, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = brick

	components.Brick.SetValue(brick, components.BrickData{TypeID: typeID})
	components.Object.SetValue(brick, components.ObjectData{Object: obj})
	addToSpace(ecs, obj)

	return brick
}
