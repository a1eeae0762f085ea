package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"

	"github.com/automoto/nightwarden/gamemath"
)

type ObjectData struct {
	*resolv.Object
}

// Center returns the world-space center of the collision bounds.
func (o *ObjectData) Center() gamemath.Vec2 {
	return gamemath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the collision bounds so its center sits at pos.
func (o *ObjectData) SetCenter(pos gamemath.Vec2) {
	o.X = pos.X - o.W/2
	o.Y = pos.Y - o.H/2
}

var Object = donburi.NewComponentType[ObjectData]()
