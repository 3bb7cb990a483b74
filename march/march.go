// Package march implements sphere marching of a distance field into a glyph frame.
//
// Each pixel is independent: a ray from the fixed eye through the view
// plane is advanced by the field distance until it hits the surface,
// escapes the scene bounds, or runs out of steps.
package march

import (
	"github.com/lixenwraith/raymarch/sdf"
	"github.com/lixenwraith/raymarch/shade"
	"github.com/lixenwraith/raymarch/vmath"
)

// Marching constants
const (
	MaxSteps           = 15000
	Divergence float32 = 9999
	HitEpsilon float32 = 1e-6
	ViewPlaneZ float32 = -1.5
	// Vertical stretch compensating for tall terminal cells
	CellAspect float32 = 1.5
)

// Eye is the fixed camera position
var Eye = vmath.Vec3{Z: -3}

// Outcome is how a single ray terminated
type Outcome uint8

const (
	Exhausted Outcome = iota
	Hit
	Escaped
)

func (o Outcome) String() string {
	switch o {
	case Hit:
		return "hit"
	case Escaped:
		return "escaped"
	default:
		return "exhausted"
	}
}

// Result of marching one ray
type Result struct {
	Outcome Outcome
	Glyph   byte
	Pos     vmath.Vec3
	Steps   int
}

// Marcher renders a field with a shader
type Marcher struct {
	Field  sdf.Field
	Shader shade.Shader

	// Workers selects row parallelism for Render
	// 0 or 1: sequential, -1: library default, >1: fixed goroutine count
	Workers int
}

// New creates a sequential marcher
func New(field sdf.Field, shader shade.Shader) *Marcher {
	return &Marcher{
		Field:  field,
		Shader: shader,
	}
}

// PixelRay returns the camera ray through pixel (x, y) of a width×height image
func PixelRay(x, y, width, height int) (origin, dir vmath.Vec3) {
	w, h := float32(width), float32(height)
	target := vmath.Vec3{
		X: float32(x)/w - 0.5,
		Y: (float32(y)/h - 0.5) * (h / w) * CellAspect,
		Z: ViewPlaneZ,
	}
	return Eye, vmath.V3Normalize(vmath.V3Sub(target, Eye))
}

// March advances a ray from origin along dir, t is passed through to the shader
// dir must be unit length for the step to stay within the field bound
func (m *Marcher) March(origin, dir vmath.Vec3, t float64) Result {
	pos := origin
	for i := 0; i < MaxSteps; i++ {
		if vmath.V3Exceeds(pos, Divergence) {
			return Result{Outcome: Escaped, Glyph: shade.Empty, Pos: pos, Steps: i}
		}

		d := m.Field.Distance(pos)
		if d < HitEpsilon {
			return Result{Outcome: Hit, Glyph: m.Shader.Shade(pos, t), Pos: pos, Steps: i}
		}

		pos = vmath.V3Add(pos, vmath.V3Scale(dir, d))
	}
	return Result{Outcome: Exhausted, Glyph: shade.Empty, Pos: pos, Steps: MaxSteps}
}
