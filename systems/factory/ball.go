package factory

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/archetypes"
	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/tags"
)

// CreateBall spawns a ball centered on the given spawn point. Balls spawn
// stationary; the ball system serves any unfrozen stationary ball.
func CreateBall(ecs *ecs.ECS, spawn components.SpawnPoint, frozen bool) *donburi.Entry {
	ball := archetypes.Ball.Spawn(ecs)

	size := cfg.Ball.Size
	obj := resolv.NewObject(spawn.X-size/2, spawn.Y-size/2, size, size, tags.ResolvBall)
	obj.SetShape(resolv.NewRectangle(0, 0, size, size))
	obj.Data = ball

	components.Ball.SetValue(ball, components.BallData{Size: size})
	components.Object.SetValue(ball, components.ObjectData{Object: obj})
	components.Physics.SetValue(ball, components.PhysicsData{MaxSpeed: cfg.Ball.MaxSpeed})
	components.Lock.SetValue(ball, components.LockData{Frozen: frozen})
	addToSpace(ecs, obj)

	return ball
}
