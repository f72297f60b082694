package systems

import (
	"math"
	"testing"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/tags"
)

func TestSizeEffectWidensAndNarrowsPaddle(t *testing.T) {
	e := newTestECS(t)
	paddle, _ := tags.Paddle.First(e.World)
	obj := components.Object.Get(paddle)

	ApplySizeEffect(e, components.SizeEffectEnlarge)
	wantW := cfg.Paddle.Width * cfg.SizeEffect.EnlargeMultiplier
	if math.Abs(obj.W-wantW) > 0.001 {
		t.Fatalf("enlarged width = %v, want %v", obj.W, wantW)
	}

	ApplySizeEffect(e, components.SizeEffectShrink)
	wantW = cfg.Paddle.Width * cfg.SizeEffect.ShrinkMultiplier
	if math.Abs(obj.W-wantW) > 0.001 {
		t.Fatalf("shrunk width = %v, want %v", obj.W, wantW)
	}
}

func TestSizeEffectReplacementResetsTimer(t *testing.T) {
	e := newTestECS(t)
	paddle, _ := tags.Paddle.First(e.World)

	ApplySizeEffect(e, components.SizeEffectShrink)
	for i := 0; i < cfg.SizeEffect.DurationFrames()/2; i++ {
		UpdateSizeEffects(e)
	}

	ApplySizeEffect(e, components.SizeEffectEnlarge)
	effect := components.SizeEffect.Get(paddle)
	if effect.Type != components.SizeEffectEnlarge {
		t.Fatalf("effect type = %v, want enlarge", effect.Type)
	}
	if effect.Remaining != cfg.SizeEffect.DurationFrames() {
		t.Fatalf("remaining = %d, want full duration %d",
			effect.Remaining, cfg.SizeEffect.DurationFrames())
	}
}

func TestSizeEffectExpiresBackToBaseWidth(t *testing.T) {
	e := newTestECS(t)
	paddle, _ := tags.Paddle.First(e.World)
	obj := components.Object.Get(paddle)

	ApplySizeEffect(e, components.SizeEffectEnlarge)
	for i := 0; i < cfg.SizeEffect.DurationFrames(); i++ {
		UpdateSizeEffects(e)
	}

	if paddle.HasComponent(components.SizeEffect) {
		t.Fatal("effect should be removed after its duration")
	}
	if math.Abs(obj.W-cfg.Paddle.Width) > 0.001 {
		t.Fatalf("width = %v, want base %v", obj.W, cfg.Paddle.Width)
	}
}

func TestLifeLossClearsSizeEffect(t *testing.T) {
	e := newTestECS(t)
	paddle, _ := tags.Paddle.First(e.World)

	ApplySizeEffect(e, components.SizeEffectEnlarge)

	moveBallIntoGoal(t, e)
	UpdateContacts(e)
	UpdateLossArbiter(e)

	if paddle.HasComponent(components.SizeEffect) {
		t.Fatal("life loss must clear the active size effect")
	}
}
