package actor

const (
	// MaxNormalizedImpulse scales each component of a diagonal movement direction.
	MaxNormalizedImpulse = 0.70710678118 // 1/sqrt(2)

	// CrawlSpeedMultiplier applies to horizontal speed while crawling outside no-clip.
	CrawlSpeedMultiplier = 0.5
	// NoClipSpeedMultiplier applies to the free camera.
	NoClipSpeedMultiplier = 4.0

	// CollisionEpsilon keeps a resolved hitbox from touching the voxel it collided with.
	CollisionEpsilon = 1e-6
	// MaxCollisionStep is the furthest the hitbox moves along any axis between two collision checks.
	MaxCollisionStep = 0.5
)
