package components

import "github.com/yohamta/donburi"

// ContactPair is one newly-formed contact between two entities, delivered to
// the trigger detectors once on the tick the contact starts.
type ContactPair struct {
	A *donburi.Entry
	B *donburi.Entry
}

// ContactKey identifies a contact pair across ticks for edge detection.
type ContactKey struct {
	A donburi.Entity
	B donburi.Entity
}

// ContactFeedData is the per-tick collision feed. Started holds only
// contacts that did not exist on the previous tick; Previous is the overlap
// set carried across ticks to compute that edge.
type ContactFeedData struct {
	Started  []ContactPair
	Previous map[ContactKey]bool
}

var ContactFeed = donburi.NewComponentType[ContactFeedData]()
