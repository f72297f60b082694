package components

import "github.com/yohamta/donburi"

// LockData holds the per-entity recovery flags other systems must honor.
// Frozen entities don't move; input-locked entities ignore player input.
// Set by the loss arbiter the tick a loss is accepted, cleared only by the
// growth controller when the full recovery sequence finishes - and always for
// the ball/paddle pair in the same tick.
type LockData struct {
	Frozen      bool
	InputLocked bool
}

var Lock = donburi.NewComponentType[LockData]()
