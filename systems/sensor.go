package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	cfg "github.com/automoto/nightwarden/config"
	"github.com/automoto/nightwarden/gamemath"
)

// Aim point fallback above an object's origin when it has no usable
// bounding volume.
const aimFallbackOffset = 4.0

// cosComparisonEpsilon keeps the field-of-view boundary inclusive under
// float rounding: a candidate exactly on the cone edge passes.
const cosComparisonEpsilon = 1e-9

// UpdateSensors runs every perception sensor whose tick deadline has
// lapsed. Sensors tick on their own interval, phase-offset per instance,
// independent of the control-cycle rate.
func UpdateSensors(e *ecs.ECS) {
	timeEntry, ok := components.Time.First(e.World)
	if !ok {
		return
	}
	now := components.Time.Get(timeEntry).Now

	query := WorldQuery(e)
	if query == nil {
		return
	}

	components.Sensor.Each(e.World, func(entry *donburi.Entry) {
		sensor := components.Sensor.Get(entry)
		if now < sensor.NextTickAt {
			return
		}
		sensor.NextTickAt = now + sensor.Config.TickInterval
		TickSensor(entry, query, query, now)
	})
}

// TickSensor evaluates one perception tick for the given agent: broad
// phase, cone test, occlusion sampling, nearest selection, then the
// memory rule. It mutates only the agent's DetectionData.
func TickSensor(entry *donburi.Entry, candidates CandidateSource, rays RayCaster, now float64) {
	sensor := components.Sensor.Get(entry)
	det := components.Detection.Get(entry)
	obj := components.Object.Get(entry)
	if obj == nil || obj.Object == nil {
		return
	}
	sc := &sensor.Config

	facing := sensorFacing(entry)
	origin := obj.Center()
	eye := origin.Add(facing.Scale(sc.EyeOffset))
	cosHalf := math.Cos(cfg.ClampHalfFOV(sc.HalfFOVDegrees) * math.Pi / 180)

	found := candidates.QueryInRadius(origin, sc.Radius, sc.MaxCandidates, sc.TargetTags...)

	var best *resolv.Object
	var bestAim gamemath.Vec2
	bestDist := math.Inf(1)

	for _, cand := range found {
		if cand == obj.Object {
			continue
		}

		aim := aimPoint(cand)
		dir, ok := aim.Sub(eye).Normalized()
		if !ok {
			continue // Degenerate direction, unscorable
		}
		if dir.Dot(facing) < cosHalf-cosComparisonEpsilon {
			continue // Outside the vision cone
		}
		if !lineOfSight(rays, eye, aim, cand, sc) {
			continue
		}

		// Nearest candidate wins. Exact ties keep the earlier
		// candidate; the broad-phase iteration order is not defined.
		d := origin.DistanceTo(aim)
		if d < bestDist {
			best = cand
			bestAim = aim
			bestDist = d
		}
	}

	if best != nil {
		det.Seen = true
		det.HasTarget = true
		if targetEntry, ok := best.Data.(*donburi.Entry); ok && targetEntry != nil {
			det.TargetID = targetEntry.Entity()
		}
		det.LastSeenPos = bestAim
		det.MemoryExpiry = now + sc.MemoryDuration
		return
	}

	// Memory rule: a lost target stays "seen" until the memory window
	// lapses, then flips false on the first tick past the expiry. Without
	// a prior detection there is nothing to remember.
	det.Seen = det.HasTarget && now <= det.MemoryExpiry
	if !det.Seen {
		det.HasTarget = false
	}
}

// lineOfSight reports whether any configured sample point on the target
// is unobstructed from the eye. It short-circuits on the first clear
// sample; a hit on the target's own body counts as clear.
func lineOfSight(rays RayCaster, eye, aim gamemath.Vec2, target *resolv.Object, sc *cfg.SensorConfig) bool {
	offsets := sc.SampleOffsets
	if len(offsets) == 0 {
		offsets = []gamemath.Vec2{{}}
	}

	for _, off := range offsets {
		sample := aim.Add(off)
		dir := sample.Sub(eye)
		dist := dir.Len()
		unit, ok := dir.Normalized()
		if !ok {
			continue
		}
		hit, blocked := rays.CastRay(eye, unit, dist, sc.ObstacleTags...)
		if !blocked || hit.Object == target {
			return true
		}
	}
	return false
}

// aimPoint picks the spot on a candidate the sensor aims rays at: the
// bounding-volume center, or a fixed offset above the origin when the
// candidate has no usable volume.
func aimPoint(obj *resolv.Object) gamemath.Vec2 {
	if obj.W <= 0 && obj.H <= 0 {
		return gamemath.Vec2{X: obj.X, Y: obj.Y - aimFallbackOffset}
	}
	return gamemath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
}

// sensorFacing resolves the agent's forward direction.
func sensorFacing(entry *donburi.Entry) gamemath.Vec2 {
	if entry.HasComponent(components.Warden) {
		if dir, ok := components.Warden.Get(entry).Direction.Normalized(); ok {
			return dir
		}
	}
	return gamemath.Vec2{X: 1, Y: 0}
}
