package systems

import (
	"bytes"
	"math"
	"sync"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
)

// Global audio state - created once and shared across all scenes
var (
	globalAudioContext *audio.Context
	globalAmbient      *audio.Player
	globalMusicVolume  float64 = cfg.Audio.DefaultMusicVol
	globalSFXVolume    float64 = cfg.Audio.DefaultSFXVol
	tonePCM            map[cfg.SoundID][]byte
	audioInitOnce      sync.Once
)

// initGlobalAudio initializes the audio context and synthesizes every
// cue. Called lazily from the render path so headless tests never touch
// the audio device.
func initGlobalAudio() {
	audioInitOnce.Do(func() {
		globalAudioContext = audio.NewContext(cfg.Audio.SampleRate)
		tonePCM = make(map[cfg.SoundID][]byte, len(cfg.Sound.Tones))
		for id, spec := range cfg.Sound.Tones {
			tonePCM[id] = synthesizeTone(spec)
		}
	})
}

// UpdateAudio drains queued cues and keeps the ambient drone running.
func UpdateAudio(e *ecs.ECS) {
	initGlobalAudio()

	if globalAmbient == nil {
		startAmbient()
	}

	entry, ok := components.Audio.First(e.World)
	if !ok {
		return
	}
	audioData := components.Audio.Get(entry)
	for _, soundID := range audioData.PendingSFX {
		playTone(soundID)
	}
	audioData.PendingSFX = audioData.PendingSFX[:0]
}

// PlaySFX queues a sound cue to be played on the next audio cycle.
func PlaySFX(e *ecs.ECS, sound cfg.SoundID) {
	audioData := GetOrCreateAudio(e)
	audioData.PendingSFX = append(audioData.PendingSFX, sound)
}

func playTone(soundID cfg.SoundID) {
	if globalSFXVolume <= 0 {
		return
	}
	pcm, ok := tonePCM[soundID]
	if !ok {
		return
	}

	volume := globalSFXVolume
	if mult, ok := cfg.Sound.VolumeMultipliers[soundID]; ok {
		volume *= mult
	}

	player := audio.NewPlayerFromBytes(globalAudioContext, pcm)
	player.SetVolume(math.Min(volume, 1.0))
	player.Play()
}

// startAmbient loops a low synthesized drone as the scene's music bed.
func startAmbient() {
	pcm := synthesizeTone(cfg.ToneSpec{
		Frequency: cfg.Audio.AmbientHz,
		Duration:  4.0,
		Volume:    0.25,
	})
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	player, err := globalAudioContext.NewPlayer(loop)
	if err != nil {
		return
	}
	player.SetVolume(globalMusicVolume)
	player.Play()
	globalAmbient = player
}

// synthesizeTone renders a cue to 16-bit little-endian stereo PCM with a
// short attack/release envelope so cues never click.
func synthesizeTone(spec cfg.ToneSpec) []byte {
	rate := float64(cfg.Audio.SampleRate)
	samples := int(spec.Duration * rate)
	out := make([]byte, samples*4)

	phase := 0.0
	for i := 0; i < samples; i++ {
		t := float64(i) / rate
		freq := spec.Frequency + spec.Slide*(t/spec.Duration)
		phase += 2 * math.Pi * freq / rate

		env := 1.0
		attack := 0.01 * rate
		release := 0.05 * rate
		if fi := float64(i); fi < attack {
			env = fi / attack
		} else if rem := float64(samples - i); rem < release {
			env = rem / release
		}

		v := int16(math.Sin(phase) * spec.Volume * env * math.MaxInt16)
		out[i*4] = byte(v)
		out[i*4+1] = byte(v >> 8)
		out[i*4+2] = byte(v)
		out[i*4+3] = byte(v >> 8)
	}
	return out
}

// SetMusicVolume changes the ambient volume, clamped to 0.0 - 1.0
func SetMusicVolume(volume float64) {
	globalMusicVolume = gamemath.Clamp(volume, 0, 1)
	if globalAmbient != nil {
		globalAmbient.SetVolume(globalMusicVolume)
	}
}

// SetSFXVolume changes the cue volume, clamped to 0.0 - 1.0
func SetSFXVolume(volume float64) {
	globalSFXVolume = gamemath.Clamp(volume, 0, 1)
}

// GetMusicVolume returns the current ambient volume (0.0 - 1.0)
func GetMusicVolume() float64 { return globalMusicVolume }

// GetSFXVolume returns the current cue volume (0.0 - 1.0)
func GetSFXVolume() float64 { return globalSFXVolume }

// GetOrCreateAudio returns the singleton Audio component for this ECS,
// creating it if needed. The audio context itself stays lazy.
func GetOrCreateAudio(e *ecs.ECS) *components.AudioData {
	entry, ok := components.Audio.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Audio))
		components.Audio.SetValue(entry, components.AudioData{
			Context:     globalAudioContext,
			MusicVolume: globalMusicVolume,
			SFXVolume:   globalSFXVolume,
			PendingSFX:  make([]cfg.SoundID, 0, 8),
		})
	}
	return components.Audio.Get(entry)
}
