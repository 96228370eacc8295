package actor

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/milieu/game"
)

// Camera is the pose the renderer draws from.
type Camera struct {
	Eye        mgl32.Vec3
	Yaw, Pitch float32
}

// Forward returns the camera's forward axis. It points from the view target towards the eye.
func (c Camera) Forward() mgl32.Vec3 {
	return game.DirectionVector(c.Yaw, c.Pitch)
}

// Ray returns the eye and the direction the camera looks in, suitable for a viewcast.
func (c Camera) Ray() (origin, dir mgl64.Vec3) {
	return game.Vec32To64(c.Eye), game.Vec32To64(c.Forward().Mul(-1))
}
