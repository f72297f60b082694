package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/tags"
)

// ApplySizeEffect starts a paddle size powerup. A new effect replaces any
// active one outright, timer included.
func ApplySizeEffect(ecs *ecs.ECS, effectType components.SizeEffectType) {
	widthMul := cfg.SizeEffect.EnlargeMultiplier
	if effectType == components.SizeEffectShrink {
		widthMul = cfg.SizeEffect.ShrinkMultiplier
	}
	if widthMul < cfg.SizeEffect.MinWidthScale {
		widthMul = cfg.SizeEffect.MinWidthScale
	} else if widthMul > cfg.SizeEffect.MaxWidthScale {
		widthMul = cfg.SizeEffect.MaxWidthScale
	}

	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.SizeEffect) {
			e.AddComponent(components.SizeEffect)
		}
		components.SizeEffect.SetValue(e, components.SizeEffectData{
			Type:      effectType,
			Remaining: cfg.SizeEffect.DurationFrames(),
			WidthMul:  widthMul,
		})
		resizePaddle(e)
	})
}

// UpdateSizeEffects counts down the active powerup and removes it on expiry.
func UpdateSizeEffects(ecs *ecs.ECS) {
	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(components.SizeEffect) {
			return
		}
		effect := components.SizeEffect.Get(e)
		effect.Remaining--
		if effect.Remaining <= 0 {
			e.RemoveComponent(components.SizeEffect)
			resizePaddle(e)
		}
	})
}

// ClearSizeEffects drops any active powerup immediately. Called on life loss
// and on level switch.
func ClearSizeEffects(ecs *ecs.ECS) {
	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		if e.HasComponent(components.SizeEffect) {
			e.RemoveComponent(components.SizeEffect)
			resizePaddle(e)
		}
	})
}
