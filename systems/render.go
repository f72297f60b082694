package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/tags"
)

// DrawPlayfield renders every entity as a flat-shaded rectangle.
func DrawPlayfield(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Playfield.BackgroundColor)

	tags.Goal.Each(ecs.World, draw(screen, cfg.Playfield.GoalColor))
	tags.Wall.Each(ecs.World, draw(screen, cfg.Playfield.WallColor))

	tags.Brick.Each(ecs.World, func(e *donburi.Entry) {
		brickColor := cfg.Playfield.BrickColor
		switch components.Brick.Get(e).TypeID {
		case cfg.Brick.IndestructibleType:
			brickColor = cfg.Playfield.HardBrickColor
		case cfg.SizeEffect.ShrinkBrickType:
			brickColor = cfg.Playfield.ShrinkColor
		case cfg.SizeEffect.EnlargeBrickType:
			brickColor = cfg.Playfield.EnlargeColor
		}
		drawObject(screen, e, brickColor)
	})

	tags.Hazard.Each(ecs.World, draw(screen, cfg.Playfield.HazardColor))
	tags.Paddle.Each(ecs.World, draw(screen, cfg.Playfield.PaddleColor))
	tags.Ball.Each(ecs.World, draw(screen, cfg.Playfield.BallColor))

	if cfg.Debug.DrawHitboxes {
		drawHitboxes(ecs, screen)
	}
}

func draw(screen *ebiten.Image, c color.RGBA) func(e *donburi.Entry) {
	return func(e *donburi.Entry) {
		drawObject(screen, e, c)
	}
}

func drawObject(screen *ebiten.Image, e *donburi.Entry, c color.RGBA) {
	obj := components.Object.Get(e)
	vector.FillRect(
		screen,
		float32(obj.X), float32(obj.Y),
		float32(obj.W), float32(obj.H),
		c,
		false,
	)
}

func drawHitboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	outline := color.RGBA{R: 0, G: 255, B: 0, A: 255}
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		vector.StrokeRect(
			screen,
			float32(obj.X), float32(obj.Y),
			float32(obj.W), float32(obj.H),
			1,
			outline,
			false,
		)
	}
}
