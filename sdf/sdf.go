// Package sdf provides signed distance fields for the marcher.
//
// Negative inside, zero on the surface, positive outside. The returned
// distance must never exceed the true distance to the nearest surface,
// the marcher steps by it unconditionally.
package sdf

import (
	"github.com/lixenwraith/raymarch/vmath"
)

// DefaultRadius of the scene sphere
const DefaultRadius float32 = 0.2

// Field returns the signed distance from p to the nearest surface
type Field interface {
	Distance(p vmath.Vec3) float32
}

// FieldFunc adapts a plain function to Field
type FieldFunc func(p vmath.Vec3) float32

func (f FieldFunc) Distance(p vmath.Vec3) float32 {
	return f(p)
}

// Sphere is an exact distance field for a sphere
type Sphere struct {
	Center vmath.Vec3
	Radius float32
}

// Default returns the scene: radius 0.2 centered at the origin
func Default() Sphere {
	return Sphere{Radius: DefaultRadius}
}

func (s Sphere) Distance(p vmath.Vec3) float32 {
	return vmath.V3Mag(vmath.V3Sub(p, s.Center)) - s.Radius
}
