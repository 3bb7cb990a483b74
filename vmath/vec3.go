package vmath

import (
	"math"
)

// Vec3 is a single-precision 3D vector
// Value type: every operation returns a new vector
type Vec3 struct {
	X, Y, Z float32
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Scale(v Vec3, s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

func V3Dot(a, b Vec3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

func V3MagSq(v Vec3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// V3Mag returns the Euclidean norm, NaN components propagate
func V3Mag(v Vec3) float32 {
	return float32(math.Sqrt(float64(V3MagSq(v))))
}

// V3Normalize divides each component by the magnitude
// Zero vector is not guarded: 0/0 yields NaN components
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	return Vec3{v.X / mag, v.Y / mag, v.Z / mag}
}

// V3Exceeds reports whether any component magnitude is above limit
// NaN components never exceed
func V3Exceeds(v Vec3, limit float32) bool {
	return abs32(v.X) > limit || abs32(v.Y) > limit || abs32(v.Z) > limit
}

func abs32(f float32) float32 {
	return math.Float32frombits(math.Float32bits(f) &^ (1 << 31))
}
