package systems

import (
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/tags"
)

// StartShrink begins the paddle's shrink animation, running over the respawn
// delay. Starting from whatever the current scale is makes preemption an
// unconditional overwrite: a second loss mid-growth simply shrinks from
// there.
func StartShrink(e *donburi.Entry) {
	scale := components.Scale.Get(e)
	scale.Phase = components.ScaleShrinking
	scale.Tween = gween.New(
		float32(scale.Scale),
		float32(cfg.Respawn.MinScale),
		float32(cfg.Respawn.DelaySeconds),
		ease.OutCubic,
	)
}

// StartGrowth begins the paddle's grow-back animation after a reposition.
func StartGrowth(e *donburi.Entry) {
	scale := components.Scale.Get(e)
	scale.Phase = components.ScaleGrowing
	scale.Tween = gween.New(
		float32(scale.Scale),
		1,
		float32(cfg.Respawn.GrowthDurationSeconds),
		ease.OutCubic,
	)
}

// UpdatePaddleScale advances the active scale tween and applies the
// resulting width to the paddle's collision object.
func UpdatePaddleScale(ecs *ecs.ECS) {
	dt := float32(1.0 / float64(cfg.TPS))

	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		scale := components.Scale.Get(e)
		if scale.Tween == nil {
			return
		}

		value, done := scale.Tween.Update(dt)
		scale.Scale = float64(value)
		if done {
			scale.Tween = nil
			switch scale.Phase {
			case components.ScaleShrinking:
				scale.Phase = components.ScaleMinimum
			case components.ScaleGrowing:
				scale.Phase = components.ScaleNormal
				scale.Scale = 1
			}
		}

		resizePaddle(e)
	})
}

// resizePaddle recomputes the paddle's collision width from its base width,
// the scale animation and any active size powerup, keeping the center fixed.
func resizePaddle(e *donburi.Entry) {
	paddle := components.Paddle.Get(e)
	scale := components.Scale.Get(e)
	obj := components.Object.Get(e)

	widthMul := 1.0
	if e.HasComponent(components.SizeEffect) {
		widthMul = components.SizeEffect.Get(e).WidthMul
	}

	newW := paddle.BaseWidth * scale.Scale * widthMul
	if newW == obj.W {
		return
	}

	center := obj.X + obj.W/2
	obj.W = newW
	obj.X = center - newW/2
	obj.SetShape(resolv.NewRectangle(0, 0, newW, obj.H))
	obj.Update()
}
