package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalized(t *testing.T) {
	v, ok := Vec2{X: 3, Y: 4}.Normalized()
	require.True(t, ok)
	assert.InDelta(t, 0.6, v.X, 1e-12)
	assert.InDelta(t, 0.8, v.Y, 1e-12)
	assert.InDelta(t, 1.0, v.Len(), 1e-12)
}

func TestNormalizedDegenerate(t *testing.T) {
	_, ok := Vec2{}.Normalized()
	assert.False(t, ok)

	_, ok = Vec2{X: 1e-12, Y: -1e-12}.Normalized()
	assert.False(t, ok, "vectors below the direction threshold carry no heading")
}

func TestMoveTowardClampsAtTarget(t *testing.T) {
	from := Vec2{X: 0, Y: 0}
	to := Vec2{X: 10, Y: 0}

	mid := MoveToward(from, to, 4)
	assert.Equal(t, Vec2{X: 4, Y: 0}, mid)

	// Never overshoots.
	assert.Equal(t, to, MoveToward(from, to, 25))
	assert.Equal(t, to, MoveToward(to, to, 1))
}

func TestRotatedAndFromAngle(t *testing.T) {
	right := Vec2{X: 1, Y: 0}

	down := right.Rotated(math.Pi / 2)
	assert.InDelta(t, 0, down.X, 1e-12)
	assert.InDelta(t, 1, down.Y, 1e-12)

	v := FromAngle(math.Pi)
	assert.InDelta(t, -1, v.X, 1e-12)
	assert.InDelta(t, 0, v.Y, 1e-12)

	assert.InDelta(t, math.Pi/4, Vec2{X: 1, Y: 1}.Angle(), 1e-12)
}

func TestDistanceAndDot(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 4, Y: 6}

	assert.InDelta(t, 5, a.DistanceTo(b), 1e-12)
	assert.InDelta(t, 16, a.Dot(b), 1e-12)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(7, 0, 5))
	assert.Equal(t, 0.0, Clamp(-1, 0, 5))
	assert.Equal(t, 3.0, Clamp(3, 0, 5))
}
