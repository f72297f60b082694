package systems

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/events"
	"github.com/automoto/brickfall/systems/factory"
	"github.com/automoto/brickfall/tags"
)

// UpdateRespawn runs the delayed recovery. While a request is pending the
// countdown ticks; at zero the paddle and ball are repositioned and the
// paddle starts growing back. When the schedule drains and the growth
// finishes, the paddle and every ball unlock together on the same tick.
func UpdateRespawn(ecs *ecs.ECS) {
	runEntry, ok := components.RespawnSchedule.First(ecs.World)
	if !ok {
		return
	}
	schedule := components.RespawnSchedule.Get(runEntry)

	if schedule.Pending != nil {
		// The install tick does not count toward the delay.
		if components.GameState.Get(runEntry).Tick != schedule.InstalledTick {
			schedule.Timer--
		}
		if schedule.Timer <= 0 {
			executeRespawn(ecs, schedule)
		}
		return
	}

	if len(schedule.Queue) == 0 {
		tryUnlock(ecs)
	}
}

// executeRespawn repositions the paddle at its spawn point, replaces every
// ball with one fresh frozen ball, and starts the growth animation. If more
// losses queued up, the next countdown starts on this same tick at full
// length.
func executeRespawn(ecs *ecs.ECS, schedule *components.RespawnScheduleData) {
	request := *schedule.Pending
	schedule.Pending = nil

	var ballsToRemove []*donburi.Entry
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ballsToRemove = append(ballsToRemove, e)
	})
	for _, e := range ballsToRemove {
		removeEntity(ecs, e)
	}
	ball := factory.CreateBall(ecs, request.BallPoint, true)
	components.Lock.Get(ball).InputLocked = true

	var paddleEntity donburi.Entity
	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		paddleEntity = e.Entity()
		paddle := components.Paddle.Get(e)
		obj := components.Object.Get(e)

		obj.X = request.PaddlePoint.X - obj.W/2
		obj.Y = request.PaddlePoint.Y - obj.H/2
		paddle.Rotation = request.PaddlePoint.Rotation
		components.Physics.Get(e).SpeedX = 0
		obj.Update()

		// Scale is pinned to minimum regardless of where the shrink
		// animation got to, so growth always covers the full range.
		components.Scale.Get(e).Scale = cfg.Respawn.MinScale
		StartGrowth(e)
	})

	log.Printf("Respawn executed (%s)", request.Cause)
	events.RespawnExecuted.Publish(ecs.World, events.RespawnExecutedData{
		Paddle: paddleEntity,
		Ball:   ball.Entity(),
	})

	if len(schedule.Queue) > 0 {
		next := schedule.Queue[0]
		schedule.Queue = schedule.Queue[1:]
		startCountdown(ecs, schedule, next)
	}
}

// tryUnlock clears the recovery locks once the growth animation has
// finished. The paddle and all balls unlock in the same tick.
func tryUnlock(ecs *ecs.ECS) {
	paddleEntry, ok := tags.Paddle.First(ecs.World)
	if !ok {
		return
	}
	lock := components.Lock.Get(paddleEntry)
	if !lock.Frozen && !lock.InputLocked {
		return
	}
	if components.Scale.Get(paddleEntry).Phase != components.ScaleNormal {
		return
	}

	lock.Frozen = false
	lock.InputLocked = false
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		ballLock := components.Lock.Get(e)
		ballLock.Frozen = false
		ballLock.InputLocked = false
	})

	events.RespawnCompleted.Publish(ecs.World, events.RespawnCompletedData{})
}
