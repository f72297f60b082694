package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/events"
	"github.com/automoto/brickfall/tags"
)

// UpdateLossArbiter turns the tick's started contacts into at most one
// accepted life loss. Simultaneous triggers (ball out plus hazard touch on
// the same tick) deduplicate to a single loss; a ball that crossed the
// boundary is despawned even when its loss is the one deduplicated away.
func UpdateLossArbiter(ecs *ecs.ECS) {
	feedEntry, ok := components.ContactFeed.First(ecs.World)
	if !ok {
		return
	}
	runEntry, ok := components.Lives.First(ecs.World)
	if !ok {
		return
	}

	feed := components.ContactFeed.Get(feedEntry)
	state := components.GameState.Get(runEntry)

	accepted := false
	for _, pair := range feed.Started {
		cause, lostBall, isLoss := classifyContact(pair)
		if !isLoss {
			continue
		}

		// The crossed ball is gone no matter what the arbiter decides.
		if lostBall != nil && lostBall.Valid() {
			removeEntity(ecs, lostBall)
		}

		if state.GameOver || accepted {
			continue
		}
		accepted = true
		acceptLoss(ecs, runEntry, cause)
	}
}

// classifyContact maps a started contact to a loss cause. The contact feed
// only carries ball-goal and paddle-hazard pairs; anything else is ignored.
func classifyContact(pair components.ContactPair) (cause components.LossCause, lostBall *donburi.Entry, isLoss bool) {
	switch {
	case pair.A.HasComponent(tags.Ball) && pair.B.HasComponent(tags.Goal):
		return components.CauseBoundaryExit, pair.A, true
	case pair.A.HasComponent(tags.Paddle) && pair.B.HasComponent(tags.Hazard):
		return components.CauseHazardContact, nil, true
	}
	return 0, nil, false
}

// acceptLoss decrements lives and either schedules a respawn or latches the
// game over state. Locks and the paddle shrink only apply on the respawn
// path; a terminal loss leaves entities as they are for the scene to sweep.
func acceptLoss(ecs *ecs.ECS, runEntry *donburi.Entry, cause components.LossCause) {
	lives := components.Lives.Get(runEntry)
	state := components.GameState.Get(runEntry)
	schedule := components.RespawnSchedule.Get(runEntry)
	points := components.SpawnPoints.Get(runEntry)

	lives.Decrement()
	schedule.LastTriggerTick = state.Tick
	schedule.HasTriggered = true

	log.Printf("Life lost (%s), %d remaining", cause, lives.Lives)
	events.LifeLost.Publish(ecs.World, events.LifeLostData{
		Cause:          cause,
		LivesRemaining: lives.Lives,
	})

	if lives.Lives <= 0 {
		state.GameOver = true
		events.GameOverRequested.Publish(ecs.World, events.GameOverRequestedData{})
		return
	}

	lockPaddleAndBalls(ecs)
	ClearSizeEffects(ecs)
	StartFade(ecs)

	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		StartShrink(e)
	})

	request := components.RespawnRequest{
		Cause:       cause,
		PaddlePoint: points.Paddle,
		BallPoint:   points.Ball,
	}
	if schedule.Pending == nil {
		startCountdown(ecs, schedule, request)
	} else {
		schedule.Queue = append(schedule.Queue, request)
	}
}

// startCountdown makes the request pending with a full-length timer. The
// install tick is recorded so the first decrement happens one tick later,
// whether the arbiter or the queue installed the request.
func startCountdown(ecs *ecs.ECS, schedule *components.RespawnScheduleData, request components.RespawnRequest) {
	schedule.Pending = &request
	schedule.Timer = cfg.Respawn.DelayFrames()
	if runEntry, ok := components.GameState.First(ecs.World); ok {
		schedule.InstalledTick = components.GameState.Get(runEntry).Tick
	}
	events.RespawnScheduled.Publish(ecs.World, events.RespawnScheduledData{
		ETATicks: schedule.Timer,
	})
}

func lockPaddleAndBalls(ecs *ecs.ECS) {
	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		lock := components.Lock.Get(e)
		lock.Frozen = true
		lock.InputLocked = true
	})
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		lock := components.Lock.Get(e)
		lock.Frozen = true
		lock.InputLocked = true
	})
}
