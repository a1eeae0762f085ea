package config

import (
	"image/color"

	"github.com/automoto/nightwarden/gamemath"
)

// SensorConfig contains the perception sensor tunables.
type SensorConfig struct {
	Radius         float64 // Broad-phase detection radius
	HalfFOVDegrees float64 // Vision cone half-angle, clamped to [1, 179]
	EyeOffset      float64 // Eye position offset forward of the agent origin
	MemoryDuration float64 // Seconds a detection persists after sight is lost
	TickInterval   float64 // Seconds between sensor evaluations
	MaxCandidates  int     // Broad-phase candidate cap

	// Local sample points on the target body, relative to its bounds
	// center. Line of sight succeeds on the first unobstructed sample.
	SampleOffsets []gamemath.Vec2

	TargetTags   []string // Resolv tags identifying detectable targets
	ObstacleTags []string // Resolv tags identifying sight blockers
}

// WardenConfig contains the pursuit behavior tunables.
type WardenConfig struct {
	PatrolSpeed float64
	ChaseSpeed  float64

	CaptureDistance float64 // Overlap distance that triggers a capture
	RepathInterval  float64 // Min seconds between chase destination updates

	WaitAtWaypoint   float64 // Dwell seconds at each patrol waypoint
	ArrivalTolerance float64 // Remaining-distance threshold for arrival

	CaptureHoldDuration float64 // Seconds held on the capture viewpoint
	CooldownDuration    float64 // Refractory seconds after a capture

	// Optional explicit respawn pose. When nil, the session's per-scene
	// spawn lookup is used instead.
	RespawnOverride *gamemath.Vec2

	CollisionWidth  float64
	CollisionHeight float64
}

// PlayerConfig contains player movement tunables.
type PlayerConfig struct {
	MoveSpeed    float64
	SprintSpeed  float64
	StaminaMax   float64
	StaminaDrain float64 // Per second while sprinting
	StaminaRegen float64 // Per second while not sprinting

	CollisionWidth  float64
	CollisionHeight float64
}

// NavConfig contains navigation agent tunables.
type NavConfig struct {
	CellSize         float64 // Nav grid cell size in pixels
	StoppingDistance float64 // Agents hold this far short of destinations
	WaypointReached  float64 // Distance at which a path corner is consumed
}

// CameraConfig contains camera behavior tunables.
type CameraConfig struct {
	FollowSmoothing float64
	CaptureFadeTime float32 // Seconds for the capture viewpoint fade
}

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	Title  string
}

// Global configuration instances
var C *Config
var Sensor SensorConfig
var Warden WardenConfig
var Player PlayerConfig
var Nav NavConfig
var Camera CameraConfig

// Palette used by the vector renderer and HUD.
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Gray         = color.RGBA{R: 120, G: 120, B: 120, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Red          = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	Green        = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	Amber        = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	Blue         = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 360,
		Title:  "nightwarden",
	}

	Sensor = SensorConfig{
		Radius:         180.0,
		HalfFOVDegrees: 60.0,
		EyeOffset:      6.0,
		MemoryDuration: 3.0,
		TickInterval:   0.1,
		MaxCandidates:  8,
		SampleOffsets: []gamemath.Vec2{
			{X: 0, Y: 0},  // Center
			{X: -6, Y: 0}, // Trailing edge
			{X: 6, Y: 0},  // Leading edge
			{X: 0, Y: -6},
			{X: 0, Y: 6},
		},
		TargetTags:   []string{"Player"},
		ObstacleTags: []string{"solid"},
	}

	Warden = WardenConfig{
		PatrolSpeed:         55.0,
		ChaseSpeed:          95.0,
		CaptureDistance:     14.0,
		RepathInterval:      0.35,
		WaitAtWaypoint:      1.5,
		ArrivalTolerance:    4.0,
		CaptureHoldDuration: 2.0,
		CooldownDuration:    4.0,
		CollisionWidth:      14.0,
		CollisionHeight:     14.0,
	}

	Player = PlayerConfig{
		MoveSpeed:       80.0,
		SprintSpeed:     130.0,
		StaminaMax:      100.0,
		StaminaDrain:    35.0,
		StaminaRegen:    20.0,
		CollisionWidth:  12.0,
		CollisionHeight: 12.0,
	}

	Nav = NavConfig{
		CellSize:         16.0,
		StoppingDistance: 6.0,
		WaypointReached:  4.0,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.08,
		CaptureFadeTime: 0.4,
	}
}

// ClampHalfFOV keeps a configured half-angle inside the valid cone range.
func ClampHalfFOV(degrees float64) float64 {
	return gamemath.Clamp(degrees, 1.0, 179.0)
}
