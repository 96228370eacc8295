package actor

import "github.com/go-gl/mathgl/mgl64"

// MovementState holds the physical state of an actor.
type MovementState struct {
	Pos, LastPos mgl64.Vec3
	Vel, LastVel mgl64.Vec3
	// Cam is the free camera position, only moved while NoClip is set.
	Cam mgl64.Vec3

	// Yaw and Pitch are in radians.
	Yaw, Pitch float32

	Stance   Stance
	OnGround bool
	NoClip   bool
}

func (s *MovementState) SetPos(newPos mgl64.Vec3) {
	s.LastPos = s.Pos
	s.Pos = newPos
}

func (s *MovementState) SetVel(newVel mgl64.Vec3) {
	s.LastVel = s.Vel
	s.Vel = newVel
}
