package systems

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/events"
	"github.com/automoto/brickfall/systems/factory"
	"github.com/automoto/brickfall/tags"
)

// newTestECS builds a headless world with the run singletons, a collision
// space, a paddle, a ball, a goal strip at the bottom and one hazard off to
// the side.
func newTestECS(t *testing.T) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())

	factory.CreateRun(e)
	factory.CreateContactFeed(e)
	factory.CreateFadeOverlay(e)
	factory.CreateSpace(e, 640, 360, 16, 16)

	runEntry, _ := components.SpawnPoints.First(e.World)
	components.SpawnPoints.Set(runEntry, &components.SpawnPointsData{
		Paddle: components.SpawnPoint{X: 320, Y: 320},
		Ball:   components.SpawnPoint{X: 320, Y: 300},
	})

	factory.CreateGoal(e, 0, 344, 640, 8)
	factory.CreateHazard(e, 40, 180)
	factory.CreatePaddle(e, components.SpawnPoint{X: 320, Y: 320})
	factory.CreateBall(e, components.SpawnPoint{X: 320, Y: 300}, false)

	return e
}

func getRun(t *testing.T, e *ecs.ECS) *donburi.Entry {
	t.Helper()
	runEntry, ok := components.Lives.First(e.World)
	if !ok {
		t.Fatal("run entity missing")
	}
	return runEntry
}

func moveBallIntoGoal(t *testing.T, e *ecs.ECS) {
	t.Helper()
	ball, ok := tags.Ball.First(e.World)
	if !ok {
		t.Fatal("ball entity missing")
	}
	obj := components.Object.Get(ball)
	obj.X, obj.Y = 320, 346
	obj.Update()
}

func movePaddleOntoHazard(t *testing.T, e *ecs.ECS) {
	t.Helper()
	paddle, ok := tags.Paddle.First(e.World)
	if !ok {
		t.Fatal("paddle entity missing")
	}
	hazard, ok := tags.Hazard.First(e.World)
	if !ok {
		t.Fatal("hazard entity missing")
	}
	hazardObj := components.Object.Get(hazard)
	paddleObj := components.Object.Get(paddle)
	paddleObj.X, paddleObj.Y = hazardObj.X, hazardObj.Y
	paddleObj.Update()
}

func countBalls(e *ecs.ECS) int {
	n := 0
	tags.Ball.Each(e.World, func(entry *donburi.Entry) {
		n++
	})
	return n
}

func TestBoundaryExitLosesLifeAndSchedulesRespawn(t *testing.T) {
	e := newTestECS(t)
	run := getRun(t, e)

	moveBallIntoGoal(t, e)
	UpdateContacts(e)
	UpdateLossArbiter(e)

	lives := components.Lives.Get(run)
	if lives.Lives != cfg.Respawn.StartingLives-1 {
		t.Fatalf("lives = %d, want %d", lives.Lives, cfg.Respawn.StartingLives-1)
	}

	schedule := components.RespawnSchedule.Get(run)
	if schedule.Pending == nil {
		t.Fatal("expected a pending respawn request")
	}
	if schedule.Pending.Cause != components.CauseBoundaryExit {
		t.Fatalf("cause = %v, want boundary_exit", schedule.Pending.Cause)
	}
	if schedule.Timer != cfg.Respawn.DelayFrames() {
		t.Fatalf("timer = %d, want %d", schedule.Timer, cfg.Respawn.DelayFrames())
	}

	if countBalls(e) != 0 {
		t.Fatalf("crossed ball should despawn, %d balls remain", countBalls(e))
	}

	paddle, _ := tags.Paddle.First(e.World)
	lock := components.Lock.Get(paddle)
	if !lock.Frozen || !lock.InputLocked {
		t.Fatalf("paddle should be frozen and input-locked, got %+v", lock)
	}
	if components.Scale.Get(paddle).Phase != components.ScaleShrinking {
		t.Fatalf("paddle phase = %v, want shrinking", components.Scale.Get(paddle).Phase)
	}
}

func TestHazardContactLosesLife(t *testing.T) {
	e := newTestECS(t)
	run := getRun(t, e)

	movePaddleOntoHazard(t, e)
	UpdateContacts(e)
	UpdateLossArbiter(e)

	lives := components.Lives.Get(run)
	if lives.Lives != cfg.Respawn.StartingLives-1 {
		t.Fatalf("lives = %d, want %d", lives.Lives, cfg.Respawn.StartingLives-1)
	}
	schedule := components.RespawnSchedule.Get(run)
	if schedule.Pending == nil || schedule.Pending.Cause != components.CauseHazardContact {
		t.Fatalf("expected pending hazard_contact request, got %+v", schedule.Pending)
	}
}

func TestSimultaneousTriggersDeduplicateToOneLoss(t *testing.T) {
	e := newTestECS(t)
	run := getRun(t, e)

	lifeLosses := 0
	events.LifeLost.Subscribe(e.World, func(w donburi.World, ev events.LifeLostData) {
		lifeLosses++
	})

	moveBallIntoGoal(t, e)
	movePaddleOntoHazard(t, e)
	UpdateContacts(e)
	UpdateLossArbiter(e)
	events.ProcessAll(e.World)

	if lifeLosses != 1 {
		t.Fatalf("life lost events = %d, want 1", lifeLosses)
	}
	lives := components.Lives.Get(run)
	if lives.Lives != cfg.Respawn.StartingLives-1 {
		t.Fatalf("lives = %d, want %d", lives.Lives, cfg.Respawn.StartingLives-1)
	}
	if countBalls(e) != 0 {
		t.Fatal("crossed ball should despawn even when its loss deduplicates")
	}
	schedule := components.RespawnSchedule.Get(run)
	if len(schedule.Queue) != 0 {
		t.Fatalf("deduplicated trigger must not queue, queue len = %d", len(schedule.Queue))
	}
}

func TestSimultaneousContactsArbitrateInDetectorOrder(t *testing.T) {
	// Repeat with fresh worlds; the winning cause must never vary.
	for i := 0; i < 10; i++ {
		e := newTestECS(t)
		run := getRun(t, e)

		moveBallIntoGoal(t, e)
		movePaddleOntoHazard(t, e)
		UpdateContacts(e)

		feedEntry, _ := components.ContactFeed.First(e.World)
		feed := components.ContactFeed.Get(feedEntry)
		if len(feed.Started) != 2 {
			t.Fatalf("started contacts = %d, want 2", len(feed.Started))
		}
		if !feed.Started[0].A.HasComponent(tags.Ball) {
			t.Fatal("ball-goal contact must precede paddle-hazard in the feed")
		}

		UpdateLossArbiter(e)

		schedule := components.RespawnSchedule.Get(run)
		if schedule.Pending == nil || schedule.Pending.Cause != components.CauseBoundaryExit {
			t.Fatalf("winning cause = %+v, want boundary_exit", schedule.Pending)
		}
	}
}

func TestPersistentOverlapTriggersOnce(t *testing.T) {
	e := newTestECS(t)
	run := getRun(t, e)

	movePaddleOntoHazard(t, e)
	for i := 0; i < 5; i++ {
		UpdateContacts(e)
		UpdateLossArbiter(e)
	}

	lives := components.Lives.Get(run)
	if lives.Lives != cfg.Respawn.StartingLives-1 {
		t.Fatalf("lives = %d after 5 overlapping ticks, want %d",
			lives.Lives, cfg.Respawn.StartingLives-1)
	}
}

func TestLossWhilePendingAppendsToQueue(t *testing.T) {
	e := newTestECS(t)
	run := getRun(t, e)

	moveBallIntoGoal(t, e)
	UpdateContacts(e)
	UpdateLossArbiter(e)

	schedule := components.RespawnSchedule.Get(run)
	firstPending := schedule.Pending
	firstTimer := schedule.Timer

	// Next tick: a hazard loss arrives while the countdown runs.
	movePaddleOntoHazard(t, e)
	UpdateContacts(e)
	UpdateLossArbiter(e)

	if schedule.Pending != firstPending {
		t.Fatal("pending request must not be overwritten by a queued loss")
	}
	if schedule.Timer != firstTimer {
		t.Fatalf("countdown must not restart: timer = %d, want %d", schedule.Timer, firstTimer)
	}
	if len(schedule.Queue) != 1 {
		t.Fatalf("queue len = %d, want 1", len(schedule.Queue))
	}
	if schedule.Queue[0].Cause != components.CauseHazardContact {
		t.Fatalf("queued cause = %v, want hazard_contact", schedule.Queue[0].Cause)
	}
	lives := components.Lives.Get(run)
	if lives.Lives != cfg.Respawn.StartingLives-2 {
		t.Fatalf("lives = %d, want %d", lives.Lives, cfg.Respawn.StartingLives-2)
	}
}

func TestTerminalLossRequestsGameOverOnce(t *testing.T) {
	e := newTestECS(t)
	run := getRun(t, e)

	components.Lives.Get(run).Reset(1)

	gameOvers := 0
	events.GameOverRequested.Subscribe(e.World, func(w donburi.World, ev events.GameOverRequestedData) {
		gameOvers++
	})

	moveBallIntoGoal(t, e)
	UpdateContacts(e)
	UpdateLossArbiter(e)
	events.ProcessAll(e.World)

	state := components.GameState.Get(run)
	if !state.GameOver {
		t.Fatal("game over should latch at zero lives")
	}
	if gameOvers != 1 {
		t.Fatalf("game over events = %d, want 1", gameOvers)
	}

	schedule := components.RespawnSchedule.Get(run)
	if schedule.Pending != nil || len(schedule.Queue) != 0 {
		t.Fatal("terminal loss must not schedule a respawn")
	}

	paddle, _ := tags.Paddle.First(e.World)
	if components.Lock.Get(paddle).Frozen {
		t.Fatal("terminal loss must not freeze the paddle")
	}

	// Another trigger at zero lives is a no-op, but the ball still despawns.
	factory.CreateBall(e, components.SpawnPoint{X: 320, Y: 346}, false)
	UpdateContacts(e)
	UpdateLossArbiter(e)
	events.ProcessAll(e.World)

	if gameOvers != 1 {
		t.Fatalf("game over events after repeat trigger = %d, want 1", gameOvers)
	}
	if components.Lives.Get(run).Lives != 0 {
		t.Fatalf("lives = %d, want 0", components.Lives.Get(run).Lives)
	}
	if countBalls(e) != 0 {
		t.Fatal("crossed ball should despawn after game over too")
	}
}

func TestLifeLostEventCarriesCauseAndRemaining(t *testing.T) {
	e := newTestECS(t)

	var got []events.LifeLostData
	events.LifeLost.Subscribe(e.World, func(w donburi.World, ev events.LifeLostData) {
		got = append(got, ev)
	})

	moveBallIntoGoal(t, e)
	UpdateContacts(e)
	UpdateLossArbiter(e)
	events.ProcessAll(e.World)

	if len(got) != 1 {
		t.Fatalf("life lost events = %d, want 1", len(got))
	}
	if got[0].Cause != components.CauseBoundaryExit {
		t.Fatalf("cause = %v, want boundary_exit", got[0].Cause)
	}
	if got[0].LivesRemaining != cfg.Respawn.StartingLives-1 {
		t.Fatalf("remaining = %d, want %d", got[0].LivesRemaining, cfg.Respawn.StartingLives-1)
	}
}
