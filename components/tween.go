package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// Tween holds a gween sequence driving an entity's patrol movement.
var Tween = donburi.NewComponentType[gween.Sequence]()
