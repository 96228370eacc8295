package actor

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
)

// Options define actor behaviour outside of movement tuning.
type Options struct {
	// PassUnexplored lets the actor move through voxels whose chunk was never allocated. By default they
	// are as solid as Full voxels.
	PassUnexplored bool

	// Debugf receives per-tick simulation traces for callers that need deep diagnostics.
	Debugf func(format string, args ...any)
}

// Actor is an entity that walks through and collides with the voxel world.
type Actor struct {
	State    MovementState
	Controls Controls
	Tuning   Tuning
	Options  Options

	debug [3]AxisDebug
}

// New returns a standing actor at pos.
func New(pos mgl64.Vec3, tuning Tuning, opts Options) *Actor {
	a := &Actor{Tuning: tuning, Options: opts}
	a.State.Pos, a.State.LastPos, a.State.Cam = pos, pos, pos
	a.State.OnGround = true
	for i := range a.debug {
		a.debug[i] = AxisDebug{Position: "0.0000", Velocity: "0.0000", Collision: formatCollision(nil)}
	}
	return a
}

// Position returns the position of the actor's feet.
func (a *Actor) Position() mgl64.Vec3 {
	return a.State.Pos
}

// Press handles a movement key being pressed. Pressing crawl outside no-clip starts crawling.
func (a *Actor) Press(key Key) {
	a.Controls.Press(key)
	if key == KeyCrawl && !a.State.NoClip {
		a.State.Stance = StanceCrawl
	}
}

// Release handles a movement key being released. A released crawl turns into a stand once there is room.
func (a *Actor) Release(key Key) {
	a.Controls.Release(key)
	if key == KeyCrawl && a.State.Stance == StanceCrawl {
		a.State.Stance = StanceWait
	}
}

// Look turns the camera by a relative mouse movement.
func (a *Actor) Look(dx, dy float32) {
	dx *= a.Tuning.MouseSensitivityHorizontal
	dy *= a.Tuning.MouseSensitivityVertical

	a.State.Yaw = math32.Mod(a.State.Yaw-dx/360*math32.Pi/4, 2*math32.Pi)
	a.State.Pitch += dy / 360 * math32.Pi / 4
	a.State.Pitch = math32.Max(-math32.Pi/2, math32.Min(math32.Pi/2, a.State.Pitch))
}

// DropPlayer moves the actor to the free camera and leaves no-clip.
func (a *Actor) DropPlayer() {
	a.State.NoClip = false
	a.State.SetPos(a.State.Cam)
}

// DropCamera toggles no-clip. The free camera starts from the actor's position.
func (a *Actor) DropCamera() {
	a.State.NoClip = !a.State.NoClip
	a.State.Cam = a.State.Pos
}

// Camera returns the current camera pose.
func (a *Actor) Camera() Camera {
	p := a.State.Pos
	if a.State.NoClip {
		p = a.State.Cam
	}
	offset := a.Tuning.HeadOffset
	if a.State.Stance.Crawling() && !a.State.NoClip {
		offset = a.Tuning.HeadOffsetCrawl
	}
	return Camera{
		Eye:   mgl32.Vec3{float32(p[0]), float32(p[1]) + offset, float32(p[2])},
		Yaw:   a.State.Yaw,
		Pitch: a.State.Pitch,
	}
}

// HitboxHeight returns the height of the current hitbox.
func (a *Actor) HitboxHeight() float64 {
	if a.State.Stance.Crawling() {
		return a.Tuning.HitboxHeightCrawl
	}
	return a.Tuning.HitboxHeight
}

// BoundingBox returns the hitbox of the actor in world space.
func (a *Actor) BoundingBox() cube.BBox {
	r := a.Tuning.HitboxRadius
	return cube.Box(-r, 0, -r, r, a.HitboxHeight(), r).Translate(a.State.Pos)
}

// Debug returns the per-axis position, velocity and last collision text of the last tick.
func (a *Actor) Debug() [3]AxisDebug {
	return a.debug
}

func (a *Actor) debugf(format string, args ...any) {
	if a.Options.Debugf != nil {
		a.Options.Debugf(format, args...)
	}
}

// yawSinCos returns the sine and cosine of the actor's yaw.
func (a *Actor) yawSinCos() (float64, float64) {
	return math.Sincos(float64(a.State.Yaw))
}
