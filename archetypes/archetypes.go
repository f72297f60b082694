package archetypes

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/tags"
)

var (
	Paddle = newArchetype(
		tags.Paddle,
		components.Paddle,
		components.Object,
		components.Physics,
		components.Lock,
		components.Scale,
	)
	Ball = newArchetype(
		tags.Ball,
		components.Ball,
		components.Object,
		components.Physics,
		components.Lock,
	)
	Brick = newArchetype(
		tags.Brick,
		components.Brick,
		components.Object,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Goal = newArchetype(
		tags.Goal,
		components.Object,
	)
	Hazard = newArchetype(
		tags.Hazard,
		components.Hazard,
		components.Object,
		components.Tween,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	// Run holds the per-run singletons: lives, respawn schedule, spawn
	// points and overall game state.
	Run = newArchetype(
		components.Lives,
		components.RespawnSchedule,
		components.SpawnPoints,
		components.GameState,
	)
	ContactFeed = newArchetype(
		components.ContactFeed,
	)
	FadeOverlay = newArchetype(
		components.FadeOverlay,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
