package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClampHalfFOV(t *testing.T) {
	assert.Equal(t, 1.0, ClampHalfFOV(0))
	assert.Equal(t, 1.0, ClampHalfFOV(-45))
	assert.Equal(t, 60.0, ClampHalfFOV(60))
	assert.Equal(t, 179.0, ClampHalfFOV(200))
}

func TestDefaultsAreSane(t *testing.T) {
	assert.Greater(t, Sensor.Radius, 0.0)
	assert.Greater(t, Sensor.TickInterval, 0.0)
	assert.NotEmpty(t, Sensor.SampleOffsets)
	assert.NotEmpty(t, Sensor.TargetTags)
	assert.NotEmpty(t, Sensor.ObstacleTags)

	assert.Greater(t, Warden.ChaseSpeed, Warden.PatrolSpeed,
		"a chase must be faster than a patrol")
	assert.Greater(t, Warden.CooldownDuration, 0.0)
	assert.Greater(t, Warden.CaptureHoldDuration, 0.0)
}
