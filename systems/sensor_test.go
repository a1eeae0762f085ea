package systems

import (
	"testing"

	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/automoto/nightwarden/components"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/systems/factory"
	"github.com/automoto/nightwarden/tags"
)

func TestSensorDetectsTargetInCone(t *testing.T) {
	e := newTestECS(nil)
	warden := factory.CreateWarden(e, 100, 100, nil, 1)
	factory.CreatePlayer(e, 160, 100)

	query := WorldQuery(e)
	require.NotNil(t, query)

	TickSensor(warden, query, query, 10.0)

	det := components.Detection.Get(warden)
	assert.True(t, det.Seen)
	assert.True(t, det.HasTarget)
	assert.InDelta(t, 160, det.LastSeenPos.X, 0.001)
	assert.InDelta(t, 100, det.LastSeenPos.Y, 0.001)

	sc := components.Sensor.Get(warden).Config
	assert.InDelta(t, 10.0+sc.MemoryDuration, det.MemoryExpiry, 1e-9)
}

func TestSensorIgnoresTargetOutsideRadius(t *testing.T) {
	e := newTestECS(nil)
	warden := factory.CreateWarden(e, 100, 100, nil, 1)
	sc := &components.Sensor.Get(warden).Config
	sc.Radius = 50

	factory.CreatePlayer(e, 200, 100)

	query := WorldQuery(e)
	TickSensor(warden, query, query, 0)

	det := components.Detection.Get(warden)
	assert.False(t, det.Seen)
	assert.False(t, det.HasTarget)
}

func TestSensorIgnoresTargetBehind(t *testing.T) {
	e := newTestECS(nil)
	warden := factory.CreateWarden(e, 100, 100, nil, 1)
	// Facing +X, target dead behind.
	factory.CreatePlayer(e, 40, 100)

	query := WorldQuery(e)
	TickSensor(warden, query, query, 0)

	assert.False(t, components.Detection.Get(warden).Seen)
}

func TestSensorFOVBoundaryInclusive(t *testing.T) {
	e := newTestECS(nil)
	warden := factory.CreateWarden(e, 100, 100, nil, 1)
	sc := &components.Sensor.Get(warden).Config
	sc.HalfFOVDegrees = 45
	sc.EyeOffset = 0 // Eye on the origin keeps the angles exact

	// Exactly on the 45 degree edge.
	onEdge := factory.CreatePlayer(e, 150, 150)

	query := WorldQuery(e)
	TickSensor(warden, query, query, 0)
	assert.True(t, components.Detection.Get(warden).Seen,
		"target exactly on the cone edge must be detected")

	// Nudge past the edge.
	obj := components.Object.Get(onEdge)
	obj.SetCenter(gamemath.Vec2{X: 150, Y: 155})
	obj.Update()

	det := components.Detection.Get(warden)
	*det = components.DetectionData{}
	TickSensor(warden, query, query, 0)
	assert.False(t, det.Seen, "target past the cone edge must not be detected")
}

func TestSensorOcclusionSampling(t *testing.T) {
	e := newTestECS(nil)
	warden := factory.CreateWarden(e, 100, 100, nil, 1)
	sc := &components.Sensor.Get(warden).Config
	sc.Radius = 250
	sc.SampleOffsets = []gamemath.Vec2{{X: 0, Y: 0}, {X: 0, Y: -6}}

	factory.CreatePlayer(e, 200, 100)

	// Short wall near the target: blocks the center ray but not the
	// offset sample passing above it.
	factory.CreateWall(e, 180, 96, 8, 8)

	query := WorldQuery(e)
	TickSensor(warden, query, query, 0)
	assert.True(t, components.Detection.Get(warden).Seen,
		"an offset sample clearing the wall must count as line of sight")

	// With only the center sample the same wall fully occludes.
	sc.SampleOffsets = []gamemath.Vec2{{X: 0, Y: 0}}
	det := components.Detection.Get(warden)
	*det = components.DetectionData{}
	TickSensor(warden, query, query, 0)
	assert.False(t, det.Seen)
}

func TestSensorEnclosedTargetStaysUnseen(t *testing.T) {
	e := newTestECS(nil)
	warden := factory.CreateWarden(e, 100, 100, nil, 1)
	sc := &components.Sensor.Get(warden).Config
	sc.Radius = 400

	factory.CreatePlayer(e, 300, 100)

	// A closed box around the target taller and wider than every sample
	// offset.
	factory.CreateWall(e, 280, 78, 40, 8)  // Top
	factory.CreateWall(e, 280, 114, 40, 8) // Bottom
	factory.CreateWall(e, 272, 78, 8, 44)  // Left
	factory.CreateWall(e, 320, 78, 8, 44)  // Right

	query := WorldQuery(e)
	TickSensor(warden, query, query, 0)

	assert.False(t, components.Detection.Get(warden).Seen)
}

func TestSensorMemoryWindow(t *testing.T) {
	e := newTestECS(nil)
	warden := factory.CreateWarden(e, 100, 100, nil, 1)
	sc := &components.Sensor.Get(warden).Config
	sc.MemoryDuration = 3.0

	player := factory.CreatePlayer(e, 160, 100)
	query := WorldQuery(e)

	TickSensor(warden, query, query, 0)
	det := components.Detection.Get(warden)
	require.True(t, det.Seen)
	require.InDelta(t, 3.0, det.MemoryExpiry, 1e-9)

	// Target leaves the detection radius entirely.
	obj := components.Object.Get(player)
	obj.SetCenter(gamemath.Vec2{X: 5000, Y: 5000})
	obj.Update()

	TickSensor(warden, query, query, 2.9)
	assert.True(t, det.Seen, "memory must persist inside the window")
	assert.True(t, det.HasTarget)

	TickSensor(warden, query, query, 3.0)
	assert.True(t, det.Seen, "the window boundary itself is inclusive")

	TickSensor(warden, query, query, 3.001)
	assert.False(t, det.Seen, "memory must lapse past the window")
	assert.False(t, det.HasTarget)
}

func TestSensorRedetectionExtendsMemory(t *testing.T) {
	e := newTestECS(nil)
	warden := factory.CreateWarden(e, 100, 100, nil, 1)
	sc := &components.Sensor.Get(warden).Config
	sc.MemoryDuration = 3.0

	factory.CreatePlayer(e, 160, 100)
	query := WorldQuery(e)

	TickSensor(warden, query, query, 0)
	TickSensor(warden, query, query, 2.0)

	det := components.Detection.Get(warden)
	assert.InDelta(t, 5.0, det.MemoryExpiry, 1e-9,
		"each direct detection restarts the memory window")
}

func TestSensorPrefersNearestTarget(t *testing.T) {
	e := newTestECS(nil)
	warden := factory.CreateWarden(e, 100, 100, nil, 1)
	sc := &components.Sensor.Get(warden).Config
	sc.Radius = 300

	factory.CreatePlayer(e, 240, 100)

	// A second detectable body, closer than the player.
	space := components.Space.Get(components.Space.MustFirst(e.World))
	decoy := resolv.NewObject(154, 94, 12, 12, tags.ResolvPlayer)
	decoy.SetShape(resolv.NewRectangle(0, 0, 12, 12))
	space.Add(decoy)

	query := WorldQuery(e)
	TickSensor(warden, query, query, 0)

	det := components.Detection.Get(warden)
	require.True(t, det.Seen)
	assert.InDelta(t, 160, det.LastSeenPos.X, 0.001)
}

func TestUpdateSensorsHonorsTickInterval(t *testing.T) {
	e := newTestECS(nil)
	warden := factory.CreateWarden(e, 100, 100, nil, 1)
	sensor := components.Sensor.Get(warden)
	sensor.Config.TickInterval = 0.5
	sensor.NextTickAt = 1.0

	factory.CreatePlayer(e, 160, 100)

	setClock(e, 0.5)
	UpdateSensors(e)
	assert.False(t, components.Detection.Get(warden).Seen,
		"the sensor must not evaluate before its tick deadline")

	setClock(e, 1.0)
	UpdateSensors(e)
	assert.True(t, components.Detection.Get(warden).Seen)
	assert.InDelta(t, 1.5, sensor.NextTickAt, 1e-9)
}
