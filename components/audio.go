package components

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi"

	"github.com/automoto/nightwarden/config"
)

type AudioData struct {
	Context     *audio.Context
	MusicVolume float64
	SFXVolume   float64
	PendingSFX  []config.SoundID
}

var Audio = donburi.NewComponentType[AudioData]()
