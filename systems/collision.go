package systems

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	"github.com/automoto/brickfall/tags"
)

// UpdateContacts builds the per-tick contact feed for the loss detectors.
// Only contacts that did not exist on the previous tick land in Started, so
// a ball resting inside the goal strip or a paddle overlapping a hazard for
// several ticks produces exactly one started contact.
func UpdateContacts(ecs *ecs.ECS) {
	feedEntry, ok := components.ContactFeed.First(ecs.World)
	if !ok {
		return
	}
	feed := components.ContactFeed.Get(feedEntry)
	feed.Started = feed.Started[:0]

	// Started keeps detector order: ball-goal contacts first, then
	// paddle-hazard. Arbitration reads the feed front to back, so the
	// order must be stable from run to run.
	current := map[components.ContactKey]bool{}
	record := func(a *donburi.Entry, otherObj *resolv.Object) {
		b, ok := otherObj.Data.(*donburi.Entry)
		if !ok || !b.Valid() {
			return
		}
		key := components.ContactKey{A: a.Entity(), B: b.Entity()}
		if current[key] {
			return
		}
		current[key] = true
		if !feed.Previous[key] {
			feed.Started = append(feed.Started, components.ContactPair{A: a, B: b})
		}
	}

	// Ball crossing the out-of-bounds strip.
	tags.Ball.Each(ecs.World, func(ball *donburi.Entry) {
		obj := components.Object.Get(ball)
		if check := obj.Check(0, 0, tags.ResolvGoal); check != nil {
			for _, other := range check.Objects {
				record(ball, other)
			}
		}
	})

	// Paddle touching a drifting hazard.
	tags.Paddle.Each(ecs.World, func(paddle *donburi.Entry) {
		obj := components.Object.Get(paddle)
		if check := obj.Check(0, 0, tags.ResolvHazard); check != nil {
			for _, other := range check.Objects {
				record(paddle, other)
			}
		}
	})

	feed.Previous = current
}
