package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"

	"github.com/automoto/nightwarden/gamemath"
)

// CameraMode identifies the active viewpoint.
type CameraMode int

const (
	CameraFollow CameraMode = iota
	CameraCapture
)

// CameraData drives the active viewpoint and the audio listener. Listener
// always equals Mode, so exactly one listener is active by construction.
type CameraData struct {
	Position gamemath.Vec2
	Mode     CameraMode
	Listener CameraMode

	// Capture viewpoint target while Mode == CameraCapture.
	CaptureTarget gamemath.Vec2

	// Fade eases the capture transition overlay.
	Fade      *gween.Tween
	FadeAlpha float32
}

var Camera = donburi.NewComponentType[CameraData]()
