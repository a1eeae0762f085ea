package config

// SoundID represents a logical sound cue
type SoundID int

const (
	SoundNone SoundID = iota
	// Warden cues
	SoundDetect
	SoundCapture
	SoundCooldownEnd
	// Player cues
	SoundRespawn
	// UI sounds
	SoundMenuSelect
)

// ToneSpec describes a procedurally synthesized cue. All cues are generated
// at startup so the module ships no audio assets.
type ToneSpec struct {
	Frequency float64 // Hz
	Duration  float64 // Seconds
	Volume    float64 // 0..1 amplitude scale
	Slide     float64 // Hz drift over the cue's duration (negative = down)
}

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate      int
	DefaultMusicVol float64
	DefaultSFXVol   float64
	AmbientHz       float64 // Base frequency of the looping ambient drone
}

// SoundConfig maps sound IDs to their synthesized tones
type SoundConfig struct {
	Tones             map[SoundID]ToneSpec
	VolumeMultipliers map[SoundID]float64
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:      44100,
		DefaultMusicVol: 0.5,
		DefaultSFXVol:   1.0,
		AmbientHz:       55.0,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneSpec{
			SoundDetect:      {Frequency: 880, Duration: 0.12, Volume: 0.5},
			SoundCapture:     {Frequency: 220, Duration: 0.8, Volume: 0.8, Slide: -120},
			SoundCooldownEnd: {Frequency: 440, Duration: 0.15, Volume: 0.4},
			SoundRespawn:     {Frequency: 330, Duration: 0.3, Volume: 0.5, Slide: 110},
			SoundMenuSelect:  {Frequency: 660, Duration: 0.08, Volume: 0.4},
		},
		VolumeMultipliers: map[SoundID]float64{
			SoundCapture: 1.5,
		},
	}
}
