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

// UpdateLevel advances to the next level once every destructible brick is
// cleared, and handles the R restart key.
func UpdateLevel(ecs *ecs.ECS) {
	levelEntry, ok := components.Level.First(ecs.World)
	if !ok {
		return
	}
	levelData := components.Level.Get(levelEntry)

	input := getOrCreateInput(ecs)
	if GetAction(input, cfg.ActionRestart).JustPressed {
		restartRun(ecs, levelData)
		return
	}

	if destructibleBricksLeft(ecs) > 0 {
		return
	}

	nextIndex := (levelData.LevelIndex + 1) % len(levelData.Levels)
	SwitchToLevel(ecs, levelData, nextIndex)
}

func destructibleBricksLeft(ecs *ecs.ECS) int {
	n := 0
	tags.Brick.Each(ecs.World, func(e *donburi.Entry) {
		if components.Brick.Get(e).TypeID != cfg.Brick.IndestructibleType {
			n++
		}
	})
	return n
}

// restartRun reloads the current level with fresh lives.
func restartRun(ecs *ecs.ECS, levelData *components.LevelData) {
	log.Printf("Run restarted on level %d", levelData.LevelIndex+1)
	if runEntry, ok := components.Lives.First(ecs.World); ok {
		components.Lives.Get(runEntry).Reset(cfg.Respawn.StartingLives)
		state := components.GameState.Get(runEntry)
		state.GameOver = false
	}
	SwitchToLevel(ecs, levelData, levelData.LevelIndex)
}

// SwitchToLevel tears down the playfield and rebuilds it for the given
// level. Size effects and any in-flight respawn are discarded; lives carry
// over. The gameplay scene uses it for the initial load too, so every load
// publishes LevelLoaded.
func SwitchToLevel(ecs *ecs.ECS, levelData *components.LevelData, index int) {
	ClearSizeEffects(ecs)
	clearPlayfield(ecs)
	resetRecoveryState(ecs)

	levelData.LevelIndex = index
	levelData.CurrentLevel = levelData.Levels[index]
	factory.SetupLevel(ecs, levelData.CurrentLevel)

	log.Printf("Level loaded: %s", levelData.CurrentLevel.Name)
	events.LevelLoaded.Publish(ecs.World, events.LevelLoadedData{
		Name:       levelData.CurrentLevel.Name,
		LevelIndex: index,
	})
}

func clearPlayfield(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry
	collect := func(e *donburi.Entry) {
		toRemove = append(toRemove, e)
	}
	tags.Paddle.Each(ecs.World, collect)
	tags.Ball.Each(ecs.World, collect)
	tags.Brick.Each(ecs.World, collect)
	tags.Wall.Each(ecs.World, collect)
	tags.Goal.Each(ecs.World, collect)
	tags.Hazard.Each(ecs.World, collect)
	for _, e := range toRemove {
		removeEntity(ecs, e)
	}
}

// resetRecoveryState drops any pending respawn and stale contact history so
// the new level starts clean.
func resetRecoveryState(ecs *ecs.ECS) {
	if runEntry, ok := components.RespawnSchedule.First(ecs.World); ok {
		schedule := components.RespawnSchedule.Get(runEntry)
		schedule.Pending = nil
		schedule.Queue = nil
		schedule.Timer = 0
	}
	if feedEntry, ok := components.ContactFeed.First(ecs.World); ok {
		feed := components.ContactFeed.Get(feedEntry)
		feed.Started = feed.Started[:0]
		feed.Previous = map[components.ContactKey]bool{}
	}
	if overlayEntry, ok := components.FadeOverlay.First(ecs.World); ok {
		overlay := components.FadeOverlay.Get(overlayEntry)
		overlay.Active = false
		overlay.Alpha = 0
		overlay.Seq = nil
	}
}
