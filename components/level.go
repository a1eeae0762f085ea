package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/nightwarden/leveldata"
)

type LevelData struct {
	CurrentLevel *leveldata.Level
}

var Level = donburi.NewComponentType[LevelData]()
