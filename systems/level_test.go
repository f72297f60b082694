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

// newLevelECS builds a world from real embedded level data, the way the
// gameplay scene does.
func newLevelECS(t *testing.T) *ecs.ECS {
	t.Helper()

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRun(e)
	factory.CreateContactFeed(e)
	factory.CreateFadeOverlay(e)

	level := factory.CreateLevel(e)
	levelData := components.Level.Get(level)
	factory.CreateSpace(e, levelData.CurrentLevel.MapWidth, levelData.CurrentLevel.MapHeight, 16, 16)
	factory.SetupLevel(e, levelData.CurrentLevel)

	return e
}

func TestSetupLevelBuildsPlayfield(t *testing.T) {
	e := newLevelECS(t)

	if _, ok := tags.Paddle.First(e.World); !ok {
		t.Fatal("no paddle spawned")
	}
	if countBalls(e) != 1 {
		t.Fatalf("balls = %d, want 1", countBalls(e))
	}
	if n := destructibleBricksLeft(e); n == 0 {
		t.Fatal("first level should have destructible bricks")
	}

	runEntry, _ := components.SpawnPoints.First(e.World)
	points := components.SpawnPoints.Get(runEntry)
	if points.Paddle.X != 320 || points.Paddle.Y != 320 {
		t.Fatalf("paddle spawn = (%v, %v), want marker position (320, 320)",
			points.Paddle.X, points.Paddle.Y)
	}
	if points.PaddleFallback || points.BallFallback {
		t.Fatal("markers present, fallback flags must stay false")
	}
}

func TestClearingBricksAdvancesLevel(t *testing.T) {
	e := newLevelECS(t)

	// Seed an in-flight recovery to prove the switch discards it.
	runEntry, _ := components.RespawnSchedule.First(e.World)
	schedule := components.RespawnSchedule.Get(runEntry)
	schedule.Pending = &components.RespawnRequest{Cause: components.CauseBoundaryExit}
	schedule.Timer = 30

	var bricks []*donburi.Entry
	tags.Brick.Each(e.World, func(entry *donburi.Entry) {
		if components.Brick.Get(entry).TypeID != cfg.Brick.IndestructibleType {
			bricks = append(bricks, entry)
		}
	})
	for _, b := range bricks {
		removeEntity(e, b)
	}

	UpdateLevel(e)

	levelEntry, _ := components.Level.First(e.World)
	levelData := components.Level.Get(levelEntry)
	if levelData.LevelIndex != 1 {
		t.Fatalf("level index = %d, want 1", levelData.LevelIndex)
	}

	// Second level has patrolling hazards.
	hazards := 0
	tags.Hazard.Each(e.World, func(entry *donburi.Entry) {
		hazards++
	})
	if hazards != 2 {
		t.Fatalf("hazards = %d, want 2", hazards)
	}

	if schedule.Pending != nil || schedule.Timer != 0 {
		t.Fatalf("level switch must drop the in-flight respawn: %+v", schedule)
	}

	if _, ok := tags.Paddle.First(e.World); !ok {
		t.Fatal("no paddle after level switch")
	}
	if countBalls(e) != 1 {
		t.Fatalf("balls after switch = %d, want 1", countBalls(e))
	}
}

func TestInitialLevelLoadPublishesEvent(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateRun(e)
	factory.CreateContactFeed(e)
	factory.CreateFadeOverlay(e)

	var got []events.LevelLoadedData
	events.LevelLoaded.Subscribe(e.World, func(w donburi.World, ev events.LevelLoadedData) {
		got = append(got, ev)
	})

	level := factory.CreateLevel(e)
	levelData := components.Level.Get(level)
	factory.CreateSpace(e, levelData.CurrentLevel.MapWidth, levelData.CurrentLevel.MapHeight, 16, 16)

	// Same call the gameplay scene makes for its first load.
	SwitchToLevel(e, levelData, levelData.LevelIndex)
	events.ProcessAll(e.World)

	if len(got) != 1 {
		t.Fatalf("level loaded events after initial load = %d, want 1", len(got))
	}
	if got[0].LevelIndex != 0 || got[0].Name == "" {
		t.Fatalf("event = %+v, want index 0 with a level name", got[0])
	}
}

func TestIndestructibleBricksDontBlockLevelAdvance(t *testing.T) {
	e := newLevelECS(t)

	var all []*donburi.Entry
	tags.Brick.Each(e.World, func(entry *donburi.Entry) {
		if components.Brick.Get(entry).TypeID != cfg.Brick.IndestructibleType {
			all = append(all, entry)
		}
	})
	for _, b := range all {
		removeEntity(e, b)
	}

	if destructibleBricksLeft(e) != 0 {
		t.Fatalf("destructible bricks left = %d, want 0", destructibleBricksLeft(e))
	}
}

func TestServeLaunchesStationaryBall(t *testing.T) {
	e := newTestECS(t)

	ball, _ := tags.Ball.First(e.World)
	physics := components.Physics.Get(ball)
	if physics.SpeedX != 0 || physics.SpeedY != 0 {
		t.Fatalf("ball should start at rest, got (%v, %v)", physics.SpeedX, physics.SpeedY)
	}

	UpdateBall(e)

	if physics.SpeedY >= 0 {
		t.Fatalf("serve must launch upward, SpeedY = %v", physics.SpeedY)
	}
	if physics.SpeedX == 0 {
		t.Fatal("serve should carry a horizontal component")
	}
}

func TestFrozenBallDoesNotServe(t *testing.T) {
	e := newTestECS(t)

	ball, _ := tags.Ball.First(e.World)
	components.Lock.Get(ball).Frozen = true

	UpdateBall(e)

	physics := components.Physics.Get(ball)
	if physics.SpeedX != 0 || physics.SpeedY != 0 {
		t.Fatalf("frozen ball moved: (%v, %v)", physics.SpeedX, physics.SpeedY)
	}
}
