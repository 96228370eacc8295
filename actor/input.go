package actor

import "github.com/go-gl/mathgl/mgl64"

// Key is a movement key that can be held.
type Key uint8

const (
	KeyMoveForward Key = 1 << iota
	KeyMoveBackward
	KeyStrafeLeft
	KeyStrafeRight
	KeyJump
	KeyCrawl
)

// Keys is the set of held keys.
type Keys uint8

func (k Keys) Has(key Key) bool { return k&Keys(key) != 0 }

// Controls tracks held keys and the local movement direction they produce. Forward is -X, strafing left is
// +Z, and Y is used by the free camera only. The most recently pressed key of an opposing pair wins.
type Controls struct {
	keys Keys
	dir  mgl64.Vec3
}

// Keys returns the held keys.
func (c *Controls) Keys() Keys {
	return c.keys
}

// Direction returns the local movement direction. Diagonals are normalised.
func (c *Controls) Direction() mgl64.Vec3 {
	return c.dir
}

// Press marks key as held.
func (c *Controls) Press(key Key) {
	dx, dy, dz := c.dir[0], c.dir[1], c.dir[2]
	switch key {
	case KeyMoveForward:
		dx = -1
	case KeyMoveBackward:
		dx = 1
	case KeyStrafeLeft:
		dz = 1
	case KeyStrafeRight:
		dz = -1
	case KeyJump:
		dy = 1
	case KeyCrawl:
		dy = -1
	}
	c.keys |= Keys(key)
	c.set(dx, dy, dz)
}

// Release marks key as no longer held, falling back to its opposite if that is still held.
func (c *Controls) Release(key Key) {
	dx, dy, dz := c.dir[0], c.dir[1], c.dir[2]
	switch key {
	case KeyMoveForward:
		dx = c.release(key, KeyMoveBackward, 1)
	case KeyMoveBackward:
		dx = c.release(key, KeyMoveForward, -1)
	case KeyStrafeLeft:
		dz = c.release(key, KeyStrafeRight, -1)
	case KeyStrafeRight:
		dz = c.release(key, KeyStrafeLeft, 1)
	case KeyJump:
		dy = c.release(key, KeyCrawl, -1)
	case KeyCrawl:
		dy = c.release(key, KeyJump, 1)
	default:
		c.keys &^= Keys(key)
		return
	}
	c.set(dx, dy, dz)
}

func (c *Controls) release(key, opposite Key, fallback float64) float64 {
	c.keys &^= Keys(key)
	if c.keys.Has(opposite) {
		return fallback
	}
	return 0
}

func (c *Controls) set(x, y, z float64) {
	x, z = sign(x), sign(z)
	if x != 0 && z != 0 {
		x, z = x*MaxNormalizedImpulse, z*MaxNormalizedImpulse
	}
	c.dir = mgl64.Vec3{x, y, z}
}

func sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
