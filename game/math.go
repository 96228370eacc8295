package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Vec32To64 converts a 32-bit vector to a 64-bit one.
func Vec32To64(vec3 mgl32.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{float64(vec3[0]), float64(vec3[1]), float64(vec3[2])}
}

// Vec64To32 converts a 64-bit vector to a 32-bit one.
func Vec64To32(vec3 mgl64.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(vec3[0]), float32(vec3[1]), float32(vec3[2])}
}

// DirectionVector returns the camera forward vector for a yaw and pitch in radians. The vector points
// away from what the camera looks at; negate it for the view ray.
func DirectionVector(yaw, pitch float32) mgl32.Vec3 {
	ys, yc := math32.Sincos(yaw)
	ps, pc := math32.Sincos(pitch)
	return mgl32.Vec3{ys * pc, ps, yc * pc}
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// SpaceshipOp returns -1 if x < y, 0 if x == y, or 1 if x > y.
func SpaceshipOp(x, y float64) int {
	if x < y {
		return -1
	} else if x == y {
		return 0
	}

	return 1
}
