package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FadeOverlayData tracks the full-screen fade that runs alongside the
// respawn countdown. The sequence ramps alpha up then back down over the
// respawn delay; a new loss restarts it.
type FadeOverlayData struct {
	Active bool
	Alpha  float32
	Seq    *gween.Sequence
}

var FadeOverlay = donburi.NewComponentType[FadeOverlayData]()

// SizeEffectType distinguishes the two paddle size powerups.
type SizeEffectType int

const (
	SizeEffectShrink SizeEffectType = iota
	SizeEffectEnlarge
)

func (t SizeEffectType) String() string {
	if t == SizeEffectShrink {
		return "shrink"
	}
	return "enlarge"
}

// SizeEffectData tracks an active paddle size powerup. Effects replace each
// other and clear on life loss and level switch.
type SizeEffectData struct {
	Type      SizeEffectType
	Remaining int
	WidthMul  float64
}

var SizeEffect = donburi.NewComponentType[SizeEffectData]()
