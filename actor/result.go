package actor

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// TickResult captures the outcome of a single simulated tick.
type TickResult struct {
	Position mgl64.Vec3
	Velocity mgl64.Vec3

	OnGround bool
	// Collisions holds, per axis, the voxel the actor collided with this tick.
	Collisions [3]*cube.Pos

	Stance Stance
}

// Collided reports whether movement along axis was blocked.
func (r TickResult) Collided(axis int) bool {
	return r.Collisions[axis] != nil
}
