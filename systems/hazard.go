package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/tags"
)

// UpdateHazards advances each hazard along its patrol tween.
func UpdateHazards(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(cfg.TPS))

	tags.Hazard.Each(ecs.World, func(e *donburi.Entry) {
		tween := components.Tween.Get(e)
		x, _, _ := tween.Update(dt)

		obj := components.Object.Get(e)
		obj.X = float64(x)
		obj.Update()
	})
}
