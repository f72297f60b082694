package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/tags"
)

// UpdateBall moves every ball, bouncing off solids, destroying bricks and
// deflecting off the paddle. Frozen balls don't move; a stationary unfrozen
// ball is served.
func UpdateBall(ecs *ecs.ECS) {
	tags.Ball.Each(ecs.World, func(e *donburi.Entry) {
		lock := components.Lock.Get(e)
		if lock.Frozen {
			return
		}

		physics := components.Physics.Get(e)
		if physics.SpeedX == 0 && physics.SpeedY == 0 {
			serveBall(ecs, physics)
		}

		obj := components.Object.Get(e)
		moveBallX(ecs, obj.Object, physics)
		moveBallY(ecs, obj.Object, physics)
		obj.Update()
	})
}

// serveBall launches a resting ball upward. The horizontal sign alternates
// with the tick parity so consecutive serves don't repeat the same line.
func serveBall(ecs *ecs.ECS, physics *components.PhysicsData) {
	sign := 1.0
	if entry, ok := components.GameState.First(ecs.World); ok {
		if components.GameState.Get(entry).Tick%2 == 1 {
			sign = -1.0
		}
	}
	physics.SpeedX = cfg.Ball.ServeSpeed * cfg.Ball.ServeAngle * sign
	physics.SpeedY = -cfg.Ball.ServeSpeed
}

func moveBallX(ecs *ecs.ECS, obj *resolv.Object, physics *components.PhysicsData) {
	dx := physics.SpeedX
	if collision := obj.Check(dx, 0, tags.ResolvSolid); collision != nil {
		dx = collision.ContactWithObject(collision.Objects[0]).X()
		physics.SpeedX = -physics.SpeedX
		hitBricks(ecs, collision)
	}
	obj.X += dx
}

func moveBallY(ecs *ecs.ECS, obj *resolv.Object, physics *components.PhysicsData) {
	dy := physics.SpeedY
	if collision := obj.Check(0, dy, tags.ResolvSolid); collision != nil {
		dy = collision.ContactWithObject(collision.Objects[0]).Y()

		if paddles := collision.ObjectsByTags(tags.ResolvPaddle); len(paddles) > 0 && physics.SpeedY > 0 {
			deflectOffPaddle(obj, paddles[0], physics)
		} else {
			physics.SpeedY = -physics.SpeedY
		}
		hitBricks(ecs, collision)
	}
	obj.Y += dy
}

// deflectOffPaddle sets the outgoing angle from where the ball struck the
// paddle: center hits go straight up, edge hits go out steeply.
func deflectOffPaddle(ball, paddle *resolv.Object, physics *components.PhysicsData) {
	ballCenter := ball.X + ball.W/2
	paddleCenter := paddle.X + paddle.W/2
	offset := (ballCenter - paddleCenter) / (paddle.W / 2)
	if offset > 1 {
		offset = 1
	} else if offset < -1 {
		offset = -1
	}

	speed := math.Hypot(physics.SpeedX, physics.SpeedY)
	if speed > physics.MaxSpeed {
		speed = physics.MaxSpeed
	}
	physics.SpeedX = offset * speed
	physics.SpeedY = -math.Sqrt(math.Max(speed*speed-physics.SpeedX*physics.SpeedX, 1))
}

// hitBricks resolves every brick the ball struck this move: destructible
// bricks despawn, powerup bricks also start a paddle size effect.
func hitBricks(ecs *ecs.ECS, collision *resolv.Collision) {
	for _, brickObj := range collision.ObjectsByTags(tags.ResolvBrick) {
		entry, ok := brickObj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() {
			continue
		}
		brick := components.Brick.Get(entry)
		if brick.TypeID == cfg.Brick.IndestructibleType {
			continue
		}

		switch brick.TypeID {
		case cfg.SizeEffect.ShrinkBrickType:
			ApplySizeEffect(ecs, components.SizeEffectShrink)
		case cfg.SizeEffect.EnlargeBrickType:
			ApplySizeEffect(ecs, components.SizeEffectEnlarge)
		}

		removeEntity(ecs, entry)
	}
}
