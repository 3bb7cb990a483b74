package vmath

// Vec3F is a float64 3D vector for quantities derived from the wall clock
// The light orbit angle is a Unix timestamp in seconds, float32 cannot hold it
type Vec3F struct {
	X, Y, Z float64
}

// V3FToVec3 rounds each component to single precision
func V3FToVec3(v Vec3F) Vec3 {
	return Vec3{
		X: float32(v.X),
		Y: float32(v.Y),
		Z: float32(v.Z),
	}
}
