package factory

import (
	"log"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/archetypes"
	"github.com/automoto/brickfall/components"
	"github.com/automoto/brickfall/leveldata"
	"github.com/automoto/brickfall/levels"
)

func CreateLevel(ecs *ecs.ECS) *donburi.Entry {
	return CreateLevelAtIndex(ecs, 0)
}

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	loaded, err := leveldata.LoadAll(levels.FS, ".")
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	if levelIndex < 0 || levelIndex >= len(loaded) {
		levelIndex = 0
	}

	levelData := &components.LevelData{
		Levels:       loaded,
		LevelIndex:   levelIndex,
		CurrentLevel: loaded[levelIndex],
	}

	components.Level.Set(level, levelData)

	return level
}

// SetupLevel builds the playfield entities for the given level: walls,
// bricks, goals, hazards, then the paddle and the ball at their resolved
// spawn points. Spawn points are stored on the run entity so the respawn
// system can reuse them.
func SetupLevel(ecs *ecs.ECS, level *leveldata.Level) {
	for _, wall := range level.Walls {
		CreateWall(ecs, wall.X, wall.Y, wall.W, wall.H)
	}
	for _, brick := range level.Bricks {
		CreateBrick(ecs, brick.X, brick.Y, brick.W, brick.H, brick.TypeID)
	}
	for _, goal := range level.Goals {
		CreateGoal(ecs, goal.X, goal.Y, goal.W, goal.H)
	}
	for _, hazard := range level.Hazards {
		CreateHazard(ecs, hazard.X, hazard.Y)
	}

	points := ResolveSpawnPoints(level)
	if runEntry, ok := components.SpawnPoints.First(ecs.World); ok {
		components.SpawnPoints.Set(runEntry, points)
	}

	CreatePaddle(ecs, points.Paddle)
	CreateBall(ecs, points.Ball, false)
}

// ResolveSpawnPoints picks the paddle and ball spawn points from the level
// markers, falling back to the map center when a marker is missing. The
// fallback is logged once per level load.
func ResolveSpawnPoints(level *leveldata.Level) *components.SpawnPointsData {
	centerX, centerY := level.FallbackCenter()
	points := &components.SpawnPointsData{
		FallbackCenter: components.SpawnPoint{X: centerX, Y: centerY},
	}

	if level.PaddleSpawn != nil {
		points.Paddle = components.SpawnPoint{
			X:        level.PaddleSpawn.X,
			Y:        level.PaddleSpawn.Y,
			Rotation: level.PaddleSpawn.Rotation,
		}
	} else {
		points.Paddle = points.FallbackCenter
		points.PaddleFallback = true
		log.Printf("Level %s has no paddle spawn marker, using map center", level.Name)
	}

	if level.BallSpawn != nil {
		points.Ball = components.SpawnPoint{
			X:        level.BallSpawn.X,
			Y:        level.BallSpawn.Y,
			Rotation: level.BallSpawn.Rotation,
		}
	} else {
		points.Ball = points.FallbackCenter
		points.BallFallback = true
		log.Printf("Level %s has no ball spawn marker, using map center", level.Name)
	}

	return points
}
