package factory

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/archetypes"
	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
)

// CreateRun spawns the singleton entity carrying the run state: lives,
// the respawn schedule and the game state counter.
func CreateRun(ecs *ecs.ECS) *donburi.Entry {
	run := archetypes.Run.Spawn(ecs)

	components.Lives.SetValue(run, components.LivesData{
		Lives:      cfg.Respawn.StartingLives,
		OnLastLife: cfg.Respawn.StartingLives == 1,
	})
	components.RespawnSchedule.SetValue(run, components.RespawnScheduleData{
		LastTriggerTick: -1,
	})
	components.SpawnPoints.Set(run, &components.SpawnPointsData{})
	components.GameState.SetValue(run, components.GameStateData{})

	return run
}

// CreateContactFeed spawns the singleton entity collecting contact-started
// pairs between collision updates and the loss arbiter.
func CreateContactFeed(ecs *ecs.ECS) *donburi.Entry {
	feed := archetypes.ContactFeed.Spawn(ecs)
	components.ContactFeed.Set(feed, &components.ContactFeedData{
		Previous: map[components.ContactKey]bool{},
	})
	return feed
}

// CreateFadeOverlay spawns the singleton screen fade used during respawn.
func CreateFadeOverlay(ecs *ecs.ECS) *donburi.Entry {
	overlay := archetypes.FadeOverlay.Spawn(ecs)
	components.FadeOverlay.SetValue(overlay, components.FadeOverlayData{})
	return overlay
}
