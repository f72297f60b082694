package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// ScalePhase is the paddle's visual-scale state tag. Preemption is an
// unconditional overwrite of the phase plus a fresh tween; there is no
// async task to cancel.
type ScalePhase int

const (
	ScaleNormal ScalePhase = iota
	ScaleShrinking
	ScaleMinimum
	ScaleGrowing
)

func (p ScalePhase) String() string {
	switch p {
	case ScaleNormal:
		return "normal"
	case ScaleShrinking:
		return "shrinking"
	case ScaleMinimum:
		return "minimum"
	case ScaleGrowing:
		return "growing"
	}
	return "unknown"
}

// ScaleData tracks the paddle's visual scale animation across ticks.
// Scale multiplies the paddle's base width for rendering and collision.
type ScaleData struct {
	Phase ScalePhase
	Scale float64
	Tween *gween.Tween
}

var Scale = donburi.NewComponentType[ScaleData]()
