package factory

import (
	"math/rand"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/archetypes"
	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
	"github.com/automoto/nightwarden/tags"
)

// CreateWarden spawns a pursuit agent at a world position with its patrol
// route. x, y is the bounds center. seed drives waypoint selection and the
// sensor tick phase so multiple wardens stay cheap and deterministic.
func CreateWarden(ecs *ecs.ECS, x, y float64, waypoints []gamemath.Vec2, seed int64) *donburi.Entry {
	warden := archetypes.Warden.Spawn(ecs)

	w := cfg.Warden.CollisionWidth
	h := cfg.Warden.CollisionHeight
	obj := resolv.NewObject(x-w/2, y-h/2, w, h)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.AddTags("character", tags.ResolvWarden)
	obj.Data = warden

	components.Object.SetValue(warden, components.ObjectData{Object: obj})

	r := rand.New(rand.NewSource(seed))
	route := make([]gamemath.Vec2, len(waypoints))
	copy(route, waypoints)

	components.Warden.SetValue(warden, components.WardenData{
		Direction:        gamemath.Vec2{X: 1, Y: 0},
		PatrolSpeed:      cfg.Warden.PatrolSpeed,
		ChaseSpeed:       cfg.Warden.ChaseSpeed,
		CaptureDistance:  cfg.Warden.CaptureDistance,
		RepathInterval:   cfg.Warden.RepathInterval,
		Waypoints:        route,
		CurrentWaypoint:  0,
		PreviousWaypoint: -1,
		ArrivalTolerance: cfg.Warden.ArrivalTolerance,
		WaitAtWaypoint:   cfg.Warden.WaitAtWaypoint,
		Rand:             r,
	})
	components.State.SetValue(warden, components.StateData{
		CurrentState:  cfg.StatePatrol,
		PreviousState: cfg.StateNone,
	})

	sensorCfg := cfg.Sensor
	sensorCfg.HalfFOVDegrees = cfg.ClampHalfFOV(sensorCfg.HalfFOVDegrees)
	components.Sensor.SetValue(warden, components.SensorData{
		Config: sensorCfg,
		// Staggered so wardens don't all evaluate on the same cycle.
		NextTickAt: r.Float64() * sensorCfg.TickInterval,
	})
	components.Detection.SetValue(warden, components.DetectionData{})

	components.NavAgent.SetValue(warden, components.NavAgentData{
		Speed:        cfg.Warden.PatrolSpeed,
		StoppingDist: cfg.Nav.StoppingDistance,
		AgentRadius:  w / 2,
	})

	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	return warden
}
