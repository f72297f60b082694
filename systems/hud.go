package systems

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/brickfall/components"
	cfg "github.com/automoto/brickfall/config"
	"github.com/automoto/brickfall/fonts"
)

// DrawHUD renders the remaining lives and the level name.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	runEntry, ok := components.Lives.First(ecs.World)
	if !ok {
		return
	}
	lives := components.Lives.Get(runEntry)

	heartColor := cfg.HUD.HeartColor
	if lives.OnLastLife {
		heartColor = cfg.HUD.LastLifeColor
	}
	for i := 0; i < lives.Lives; i++ {
		x := cfg.HUD.Margin + float64(i)*(cfg.HUD.HeartSize+cfg.HUD.HeartGap)
		vector.FillRect(
			screen,
			float32(x), float32(cfg.HUD.Margin),
			float32(cfg.HUD.HeartSize), float32(cfg.HUD.HeartSize),
			heartColor,
			false,
		)
	}

	if levelEntry, ok := components.Level.First(ecs.World); ok {
		levelData := components.Level.Get(levelEntry)
		label := fmt.Sprintf("%d. %s", levelData.LevelIndex+1, levelData.CurrentLevel.Name)
		fontFace := fonts.Small.Get()
		textWidth := len(label) * 5
		x := cfg.C.Width - textWidth - int(cfg.HUD.Margin)
		text.Draw(screen, label, fontFace, x, int(cfg.HUD.Margin)+8, cfg.HUD.LevelTextColor)
	}
}
