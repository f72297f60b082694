package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
)

// StartFade kicks off the respawn screen fade: alpha ramps up over the
// respawn delay and back down over the growth, matching the recovery arc.
// A second loss mid-fade restarts the sequence.
func StartFade(ecs *ecs.ECS) {
	entry, ok := components.FadeOverlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.FadeOverlay.Get(entry)

	seq := gween.NewSequence()
	seq.Add(
		gween.New(overlay.Alpha, cfg.Fade.MaxAlpha, float32(cfg.Respawn.DelaySeconds), ease.OutQuad),
		gween.New(cfg.Fade.MaxAlpha, 0, float32(cfg.Respawn.GrowthDurationSeconds), ease.InQuad),
	)
	overlay.Active = true
	overlay.Seq = seq
}

// UpdateEffects advances the fade overlay.
func UpdateEffects(ecs *ecs.ECS) {
	entry, ok := components.FadeOverlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.FadeOverlay.Get(entry)
	if !overlay.Active || overlay.Seq == nil {
		return
	}

	dt := float32(1.0 / float64(cfg.TPS))
	value, _, done := overlay.Seq.Update(dt)
	overlay.Alpha = value
	if done {
		overlay.Active = false
		overlay.Alpha = 0
		overlay.Seq = nil
	}
}

// DrawEffects renders the fade overlay above the playfield.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.FadeOverlay.First(ecs.World)
	if !ok {
		return
	}
	overlay := components.FadeOverlay.Get(entry)
	if !overlay.Active || overlay.Alpha <= 0 {
		return
	}

	vector.FillRect(
		screen,
		0, 0,
		float32(cfg.C.Width), float32(cfg.C.Height),
		color.RGBA{A: uint8(overlay.Alpha * 255)},
		false,
	)
}
