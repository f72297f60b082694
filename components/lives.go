package components

import "github.com/yohamta/donburi"

// LivesData tracks the remaining lives for the run. Mutated only by the loss
// arbiter; everything else reads it.
type LivesData struct {
	Lives      int
	OnLastLife bool
}

// Decrement removes one life, stopping at zero, and keeps the last-life flag
// consistent (OnLastLife is true exactly when one life remains).
func (l *LivesData) Decrement() {
	if l.Lives > 0 {
		l.Lives--
	}
	l.OnLastLife = l.Lives == 1
}

// Reset restores the counter for a fresh run.
func (l *LivesData) Reset(lives int) {
	l.Lives = lives
	l.OnLastLife = lives == 1
}

var Lives = donburi.NewComponentType[LivesData]()
