package components

import (
	"github.com/automoto/brickfall/leveldata"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Levels       []*leveldata.Level
	LevelIndex   int
	CurrentLevel *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
