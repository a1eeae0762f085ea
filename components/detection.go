package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
)

// DetectionData is the sensor's output. It is exclusively owned and
// mutated by the perception sensor; every other system reads it only.
//
// While Seen is true purely from memory, Now <= MemoryExpiry holds; Seen
// flips to false on the first sensor tick where the memory window has
// lapsed and no direct detection occurred.
type DetectionData struct {
	Seen         bool
	HasTarget    bool
	TargetID     donburi.Entity
	LastSeenPos  gamemath.Vec2
	MemoryExpiry float64
}

var Detection = donburi.NewComponentType[DetectionData]()

// SensorData holds the perception sensor's per-instance schedule and
// tunables. Config is copied per instance so agents can be tuned
// independently of the global defaults.
type SensorData struct {
	Config     config.SensorConfig
	NextTickAt float64 // Sensor ticks are phase-offset per instance
}

var Sensor = donburi.NewComponentType[SensorData]()
