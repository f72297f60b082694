package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/tags"
)

// UpdatePaddle moves the paddle from player input. Input-locked paddles
// (mid-respawn) ignore movement entirely.
func UpdatePaddle(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	tags.Paddle.Each(ecs.World, func(e *donburi.Entry) {
		lock := components.Lock.Get(e)
		if lock.InputLocked || lock.Frozen {
			return
		}

		physics := components.Physics.Get(e)
		obj := components.Object.Get(e)

		dx := 0.0
		if GetAction(input, cfg.ActionMoveLeft).Pressed {
			dx -= physics.MaxSpeed
		}
		if GetAction(input, cfg.ActionMoveRight).Pressed {
			dx += physics.MaxSpeed
		}
		if dx == 0 {
			physics.SpeedX = 0
			return
		}

		if collision := obj.Check(dx, 0, tags.ResolvSolid); collision != nil {
			dx = collision.ContactWithObject(collision.Objects[0]).X()
		}

		obj.X += dx
		physics.SpeedX = dx
		obj.Update()
	})
}
