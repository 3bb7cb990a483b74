// Package shade maps surface hit points to glyphs of a fixed brightness ramp.
package shade

import (
	"math"

	"github.com/lixenwraith/raymarch/sdf"
	"github.com/lixenwraith/raymarch/vmath"
)

// Ramp orders glyphs from emptiest to densest
const Ramp = " .:+|0#"

const (
	RampSize      = len(Ramp)
	Empty    byte = ' '
	Dense    byte = '#'
)

// Lighting constants
const (
	GradientStep     float32 = 1e-6
	DegenerateNormal float32 = 1e-9
	LightOrbitRadius float64 = 50
	LightOrbitHeight float64 = 20
)

// Shader returns the glyph for a confirmed surface hit
// t is the animation clock in seconds, fixed for the whole frame
type Shader interface {
	Shade(p vmath.Vec3, t float64) byte
}

// ShaderFunc adapts a plain function to Shader
type ShaderFunc func(p vmath.Vec3, t float64) byte

func (f ShaderFunc) Shade(p vmath.Vec3, t float64) byte {
	return f(p, t)
}

// Flat marks every hit with the densest glyph, depth-only view
type Flat struct{}

func (Flat) Shade(vmath.Vec3, float64) byte {
	return Dense
}

// Lit picks a glyph from the diffuse term of a light orbiting the Y axis
type Lit struct {
	Field       sdf.Field
	OrbitRadius float64
	OrbitHeight float64
}

// NewLit creates a lit shader over field with the default light orbit
func NewLit(field sdf.Field) *Lit {
	return &Lit{
		Field:       field,
		OrbitRadius: LightOrbitRadius,
		OrbitHeight: LightOrbitHeight,
	}
}

// LightDir returns the unit light direction at clock t
// One revolution every 2π seconds in the XZ plane
func (l *Lit) LightDir(t float64) vmath.Vec3 {
	pos := vmath.Vec3F{
		X: l.OrbitRadius * math.Sin(t),
		Y: l.OrbitHeight,
		Z: l.OrbitRadius * math.Cos(t),
	}
	return vmath.V3Normalize(vmath.V3FToVec3(pos))
}

// Normal returns the shading normal at p, false when it is degenerate
//
// Forward differences of the field are taken per axis, then the position
// component is subtracted before dividing by the step:
//
//	N.x = ((f(p+dt·x̂) - f(p)) - p.x) / dt
//
// This is not the field gradient; the position term dominates and the
// result points roughly toward the center. Rendered output depends on it.
func (l *Lit) Normal(p vmath.Vec3) (vmath.Vec3, bool) {
	dt := GradientStep
	base := l.Field.Distance(p)

	dx := l.Field.Distance(vmath.Vec3{X: p.X + dt, Y: p.Y, Z: p.Z}) - base
	dy := l.Field.Distance(vmath.Vec3{X: p.X, Y: p.Y + dt, Z: p.Z}) - base
	dz := l.Field.Distance(vmath.Vec3{X: p.X, Y: p.Y, Z: p.Z + dt}) - base

	n := vmath.Vec3{
		X: (dx - p.X) / dt,
		Y: (dy - p.Y) / dt,
		Z: (dz - p.Z) / dt,
	}
	if vmath.V3Mag(n) < DegenerateNormal {
		return vmath.Vec3{}, false
	}
	return vmath.V3Normalize(n), true
}

func (l *Lit) Shade(p vmath.Vec3, t float64) byte {
	n, ok := l.Normal(p)
	if !ok {
		return Empty
	}
	diffuse := vmath.V3Dot(l.LightDir(t), n)
	return Ramp[RampIndex(diffuse)]
}

// RampIndex quantizes a diffuse term in [-1, 1] into [0, RampSize)
// Exactly 1 lands on bucket RampSize and wraps to 0
// Non-finite input maps to 0
func RampIndex(diffuse float32) int {
	q := float32((float64(diffuse) + 1.0) / 2.0 * float64(RampSize))
	f := math.Floor(float64(q))
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	i := int(f) % RampSize
	if i < 0 {
		i += RampSize
	}
	return i
}
