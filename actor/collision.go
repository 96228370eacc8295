package actor

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
)

// bound returns the voxel offsets, relative to floor(p), covered along a horizontal axis by a hitbox of
// radius r centred on p.
func bound(p, r float64) (int, int) {
	frac := p - math.Floor(p)
	ri := int(math.Ceil(r))
	rf := math.Mod(r, 1)

	b1, b2 := -ri+1, ri-1
	if frac < rf {
		b1 = -ri
	}
	if frac > 1-rf {
		b2 = ri
	}
	return b1, b2
}

// boundV returns the voxel offsets, relative to floor(p), covered vertically by a hitbox of height h standing
// at p.
func boundV(p, h float64) (int, int) {
	frac := p - math.Floor(p)
	hi := int(math.Ceil(h))
	if frac > 1-math.Mod(h, 1) {
		return 0, hi
	}
	return 0, hi - 1
}

func floor(v float64) int {
	return int(math.Floor(v))
}

// solid reports whether the voxel at pos blocks movement.
func (ctx *tickContext) solid(pos cube.Pos) bool {
	s, ok := ctx.src.SpotAt(pos)
	if !ok {
		return !ctx.actor.Options.PassUnexplored
	}
	return !s.IsEmpty()
}

// tryCollisions clips the proposed movement against the world one axis at a time, Y first so that ground
// contact is known before horizontal movement is resolved. The movement is split into steps shorter than a
// voxel so that no voxel layer can be passed over within one tick.
func (ctx *tickContext) tryCollisions() {
	ctx.actor.State.OnGround = false

	ctx.pos = ctx.actor.State.Pos
	delta := ctx.mov.Sub(ctx.pos)
	longest := math.Max(math.Abs(delta[0]), math.Max(math.Abs(delta[1]), math.Abs(delta[2])))
	steps := max(1, int(math.Ceil(longest/MaxCollisionStep)))
	step := delta.Mul(1 / float64(steps))

	for range steps {
		for i := range 3 {
			if ctx.collisions[i] != nil {
				step[i] = 0
			}
		}
		ctx.mov = ctx.pos.Add(step)
		ctx.collideY()
		ctx.collideX()
		ctx.collideZ()
		ctx.pos = ctx.mov
	}
}

func (ctx *tickContext) collideY() {
	a := ctx.actor
	if a.State.Vel[1] == 0 || ctx.collisions[1] != nil {
		return
	}
	pos, r, h := ctx.pos, a.Tuning.HitboxRadius, a.HitboxHeight()
	bx1, bx2 := bound(pos[0], r)
	bz1, bz2 := bound(pos[2], r)
	by1, by2 := boundV(ctx.mov[1], h)

	falling := a.State.Vel[1] < 0
	y := by2
	if falling {
		y = by1
	}
	fx, fy, fz := floor(pos[0]), floor(ctx.mov[1]), floor(pos[2])
	for x := bx1; x <= bx2; x++ {
		for z := bz1; z <= bz2; z++ {
			p := cube.Pos{fx + x, fy + y, fz + z}
			if !ctx.solid(p) {
				continue
			}
			a.State.Vel[1] = 0
			if falling {
				ctx.mov[1] = float64(p[1] + 1)
				if a.Controls.Keys().Has(KeyJump) {
					a.State.Vel[1] = a.Tuning.JumpForce
				} else {
					a.State.OnGround = true
				}
			} else {
				ctx.mov[1] = float64(p[1]) - h - CollisionEpsilon
			}
			ctx.collisions[1] = &p
			a.debugf("collideY: hit %v, mov.y=%.4f", p, ctx.mov[1])
			return
		}
	}
}

func (ctx *tickContext) collideX() {
	a := ctx.actor
	if a.State.Vel[0] == 0 || ctx.collisions[0] != nil {
		return
	}
	r, h := a.Tuning.HitboxRadius, a.HitboxHeight()
	bx1, bx2 := bound(ctx.mov[0], r)
	by1, by2 := boundV(ctx.mov[1], h)
	bz1, bz2 := bound(ctx.pos[2], r)

	low := a.State.Vel[0] < 0
	x := bx2
	if low {
		x = bx1
	}
	fx, fy, fz := floor(ctx.mov[0]), floor(ctx.mov[1]), floor(ctx.pos[2])
	for y := by1; y <= by2; y++ {
		for z := bz1; z <= bz2; z++ {
			p := cube.Pos{fx + x, fy + y, fz + z}
			if !ctx.solid(p) {
				continue
			}
			a.State.Vel[0] = 0
			ctx.mov[0] = ctx.clipHorizontal(p[0], low)
			ctx.collisions[0] = &p
			a.debugf("collideX: hit %v, mov.x=%.4f", p, ctx.mov[0])
			return
		}
	}
}

func (ctx *tickContext) collideZ() {
	a := ctx.actor
	if a.State.Vel[2] == 0 || ctx.collisions[2] != nil {
		return
	}
	r, h := a.Tuning.HitboxRadius, a.HitboxHeight()
	bx1, bx2 := bound(ctx.mov[0], r)
	by1, by2 := boundV(ctx.mov[1], h)
	bz1, bz2 := bound(ctx.mov[2], r)

	low := a.State.Vel[2] < 0
	z := bz2
	if low {
		z = bz1
	}
	fx, fy, fz := floor(ctx.mov[0]), floor(ctx.mov[1]), floor(ctx.mov[2])
	for y := by1; y <= by2; y++ {
		for x := bx1; x <= bx2; x++ {
			p := cube.Pos{fx + x, fy + y, fz + z}
			if !ctx.solid(p) {
				continue
			}
			a.State.Vel[2] = 0
			ctx.mov[2] = ctx.clipHorizontal(p[2], low)
			ctx.collisions[2] = &p
			a.debugf("collideZ: hit %v, mov.z=%.4f", p, ctx.mov[2])
			return
		}
	}
}

// clipHorizontal returns the hitbox centre that leaves the hitbox just clear of the voxel at coordinate v
// along a horizontal axis. low is true when moving towards negative coordinates.
func (ctx *tickContext) clipHorizontal(v int, low bool) float64 {
	r := ctx.actor.Tuning.HitboxRadius
	if low {
		return float64(v+1) + r + CollisionEpsilon
	}
	return float64(v) - r - CollisionEpsilon
}
