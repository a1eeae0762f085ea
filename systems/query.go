package systems

import (
	"math"

	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/nightwarden/components"
	"github.com/automoto/nightwarden/gamemath"
)

// RayHit describes the nearest obstruction found by a ray cast.
type RayHit struct {
	Object   *resolv.Object
	Point    gamemath.Vec2
	Distance float64
}

// RayCaster is the occlusion query capability the sensor consumes.
type RayCaster interface {
	// CastRay returns the nearest hit along origin+dir*t for t in
	// [0, maxDist], considering only objects carrying at least one of
	// the given tags.
	CastRay(origin, dir gamemath.Vec2, maxDist float64, tags ...string) (RayHit, bool)
}

// CandidateSource is the broad-phase query capability the sensor consumes.
type CandidateSource interface {
	// QueryInRadius returns up to max objects whose bounds center lies
	// within radius of origin, carrying at least one of the given tags.
	QueryInRadius(origin gamemath.Vec2, radius float64, max int, tags ...string) []*resolv.Object
}

// SpaceQuery backs both sensor capabilities with the resolv space.
type SpaceQuery struct {
	Space *resolv.Space
}

// WorldQuery resolves the scene's space into a SpaceQuery, or nil when no
// space entity exists.
func WorldQuery(e *ecs.ECS) *SpaceQuery {
	spaceEntry, ok := components.Space.First(e.World)
	if !ok {
		return nil
	}
	return &SpaceQuery{Space: components.Space.Get(spaceEntry)}
}

func hasAnyTag(obj *resolv.Object, tags []string) bool {
	for _, t := range tags {
		if obj.HasTags(t) {
			return true
		}
	}
	return false
}

func (q *SpaceQuery) QueryInRadius(origin gamemath.Vec2, radius float64, max int, tags ...string) []*resolv.Object {
	var out []*resolv.Object
	for _, obj := range q.Space.Objects() {
		if len(out) >= max {
			break
		}
		if !hasAnyTag(obj, tags) {
			continue
		}
		center := gamemath.Vec2{X: obj.X + obj.W/2, Y: obj.Y + obj.H/2}
		if center.DistanceTo(origin) <= radius {
			out = append(out, obj)
		}
	}
	return out
}

func (q *SpaceQuery) CastRay(origin, dir gamemath.Vec2, maxDist float64, tags ...string) (RayHit, bool) {
	unit, ok := dir.Normalized()
	if !ok || maxDist <= 0 {
		return RayHit{}, false
	}
	end := origin.Add(unit.Scale(maxDist))
	line := resolv.NewLine(origin.X, origin.Y, end.X, end.Y)

	// Ray bounding box for a cheap prefilter before the precise
	// line-shape intersection.
	minX, maxX := math.Min(origin.X, end.X), math.Max(origin.X, end.X)
	minY, maxY := math.Min(origin.Y, end.Y), math.Max(origin.Y, end.Y)

	best := RayHit{Distance: math.Inf(1)}
	found := false
	for _, obj := range q.Space.Objects() {
		if !hasAnyTag(obj, tags) {
			continue
		}
		if obj.X > maxX || obj.X+obj.W < minX || obj.Y > maxY || obj.Y+obj.H < minY {
			continue
		}
		if obj.Shape == nil {
			continue
		}
		contact := line.Intersection(0, 0, obj.Shape)
		if contact == nil {
			continue
		}
		for _, p := range contact.Points {
			hit := gamemath.Vec2{X: p[0], Y: p[1]}
			d := hit.DistanceTo(origin)
			if d < best.Distance {
				best = RayHit{Object: obj, Point: hit, Distance: d}
				found = true
			}
		}
	}
	if !found {
		return RayHit{}, false
	}
	return best, true
}
