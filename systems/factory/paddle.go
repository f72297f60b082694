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

// CreatePaddle spawns the paddle centered on the given spawn point.
func CreatePaddle(ecs *ecs.ECS, spawn components.SpawnPoint) *donburi.Entry {
	paddle := archetypes.Paddle.Spawn(ecs)

	w := cfg.Paddle.Width
	h := cfg.Paddle.Height
	obj := resolv.NewObject(spawn.X-w/2, spawn.Y-h/2, w, h, tags.ResolvPaddle, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = paddle

	components.Paddle.SetValue(paddle, components.PaddleData{
		BaseWidth: w,
		Rotation:  spawn.Rotation,
	})
	components.Object.SetValue(paddle, components.ObjectData{Object: obj})
	components.Physics.SetValue(paddle, components.PhysicsData{MaxSpeed: cfg.Paddle.Speed})
	components.Lock.SetValue(paddle, components.LockData{})
	components.Scale.SetValue(paddle, components.ScaleData{
		Phase: components.ScaleNormal,
		Scale: 1,
	})
	addToSpace(ecs, obj)

	return paddle
}
