// Package gamemath provides the 2D vector math shared by the sensor,
// navigation, and behavior systems. It has no dependencies on ebitengine,
// donburi, or resolv.
package gamemath

import "math"

// Vec2 is a 2D point or direction in world space.
type Vec2 struct {
	X, Y float64
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{v.X + o.X, v.Y + o.Y} }

func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{v.X - o.X, v.Y - o.Y} }

func (v Vec2) Scale(s float64) Vec2 { return Vec2{v.X * s, v.Y * s} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

func (v Vec2) Len() float64 { return math.Hypot(v.X, v.Y) }

func (v Vec2) DistanceTo(o Vec2) float64 { return o.Sub(v).Len() }

// Normalized returns the unit vector in v's direction, and false when v is
// too short to carry a meaningful direction.
func (v Vec2) Normalized() (Vec2, bool) {
	l := v.Len()
	if l < 1e-9 {
		return Vec2{}, false
	}
	return Vec2{v.X / l, v.Y / l}, true
}

// Rotated returns v rotated by angle radians (counter-clockwise in screen
// space, where +Y points down).
func (v Vec2) Rotated(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}

// Angle returns the heading of v in radians.
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// FromAngle returns the unit vector pointing along angle radians.
func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos, sin}
}

// MoveToward moves from toward to by at most maxDelta, without overshooting.
func MoveToward(from, to Vec2, maxDelta float64) Vec2 {
	d := to.Sub(from)
	dist := d.Len()
	if dist <= maxDelta || dist < 1e-9 {
		return to
	}
	return from.Add(d.Scale(maxDelta / dist))
}

// Clamp clamps v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
