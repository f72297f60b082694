package factory

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/archetypes"
	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/tags"
)

// CreateHazard spawns a drifting hazard at x, y. The hazard patrols
// horizontally using a looping sequence of tweens.
func CreateHazard(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	hazard := archetypes.Hazard.Spawn(ecs)

	size := cfg.Hazard.Size
	obj := resolv.NewObject(x, y, size, size, tags.ResolvHazard)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = hazard

	components.Hazard.SetValue(hazard, components.HazardData{OriginX: x, OriginY: y})
	components.Object.SetValue(hazard, components.ObjectData{Object: obj})

	half := float32(cfg.Hazard.PatrolSeconds)
	dist := float32(cfg.Hazard.PatrolDistance)
	tw := gween.NewSequence()
	tw.Add(
		gween.New(float32(x), float32(x)+dist, half, ease.InOutSine),
		gween.New(float32(x)+dist, float32(x), half, ease.InOutSine),
	)
	tw.SetLoop(-1)
	components.Tween.Set(hazard, tw)

	addToSpace(ecs, obj)

	return hazard
}
