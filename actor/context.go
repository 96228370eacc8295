package actor

import (
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/milieu/world"
)

// tickContext carries the state of one simulated tick through its phases.
type tickContext struct {
	actor *Actor
	src   world.SpotSource
	dt    float64

	// speed is the horizontal speed cap for this tick.
	speed float64
	// mov is the proposed position, clipped axis by axis during collision.
	mov mgl64.Vec3
	// pos is the position resolved by the previous collision step.
	pos mgl64.Vec3

	collisions [3]*cube.Pos
}

// resolveInput turns held keys into a horizontal acceleration and moves the free camera.
func (ctx *tickContext) resolveInput() mgl64.Vec3 {
	a, t := ctx.actor, ctx.actor.Tuning
	dir := a.Controls.Direction()
	dx, dy, dz := dir[0], dir[1], dir[2]
	s, c := a.yawSinCos()

	ctx.speed = t.SpeedHorizontal
	if a.State.Stance.Crawling() && !a.State.NoClip {
		ctx.speed *= CrawlSpeedMultiplier
	}
	xo := (s*dx - c*dz) * ctx.speed
	yo := dy * t.SpeedVertical
	zo := (s*dz + c*dx) * ctx.speed

	if a.State.NoClip {
		a.State.Cam = a.State.Cam.Add(mgl64.Vec3{xo, yo, zo}.Mul(NoClipSpeedMultiplier * ctx.dt))
		xo, zo = 0, 0
	}
	return mgl64.Vec3{xo, 0, zo}
}

// integrate applies grip, gravity and friction to the velocity and proposes a new position.
func (ctx *tickContext) integrate(input mgl64.Vec3) {
	a, t := ctx.actor, ctx.actor.Tuning
	grip, friction := t.GripAir, t.FrictionAir
	if a.State.OnGround {
		grip, friction = t.GripGround, t.FrictionGround
	}

	accel := mgl64.Vec3{input[0] * grip, -t.Gravity, input[2] * grip}
	vel := a.State.Vel
	speed := vel.Len()
	if speed <= t.StaticFrictionCutoff && a.State.OnGround {
		vel = mgl64.Vec3{}
	} else if speed != 0 {
		accel = accel.Sub(vel.Normalize().Mul(friction * speed))
	}

	// Airborne acceleration may not push horizontal speed past what is reachable on the ground.
	if !a.State.OnGround {
		maxSpeed := ctx.speed / t.FrictionGround
		hx, hz := vel[0]+accel[0], vel[2]+accel[2]
		if proposed := math.Hypot(hx, hz); proposed > maxSpeed {
			scale := maxSpeed / proposed
			accel[0] = hx*scale - vel[0]
			accel[2] = hz*scale - vel[2]
		}
	}

	a.State.SetVel(vel.Add(accel))
	ctx.mov = a.State.Pos.Add(a.State.Vel.Mul(ctx.dt))
	a.debugf("integrate: accel=%v vel=%v mov=%v", accel, a.State.Vel, ctx.mov)
}

// commit records debug text and moves the actor to the resolved position.
func (ctx *tickContext) commit() {
	a := ctx.actor
	for i := range 3 {
		a.debug[i] = AxisDebug{
			Position:  formatFloat(a.State.Pos[i]),
			Velocity:  formatFloat(a.State.Vel[i]),
			Collision: formatCollision(ctx.collisions[i]),
		}
	}
	a.State.SetPos(ctx.mov)
}

// checkStance stands a waiting actor up once the full-height hitbox fits at its new position.
func (ctx *tickContext) checkStance() {
	a := ctx.actor
	if a.State.Stance != StanceWait || a.Controls.Keys().Has(KeyCrawl) {
		return
	}
	pos, r := a.State.Pos, a.Tuning.HitboxRadius
	bx1, bx2 := bound(pos[0], r)
	bz1, bz2 := bound(pos[2], r)
	_, by1 := boundV(pos[1], a.Tuning.HitboxHeightCrawl)
	_, by2 := boundV(pos[1], a.Tuning.HitboxHeight)

	fx, fy, fz := floor(pos[0]), floor(pos[1]), floor(pos[2])
	for y := by1; y <= by2; y++ {
		for x := bx1; x <= bx2; x++ {
			for z := bz1; z <= bz2; z++ {
				if ctx.solid(cube.Pos{fx + x, fy + y, fz + z}) {
					a.debugf("stance: no headroom at %v", cube.Pos{fx + x, fy + y, fz + z})
					return
				}
			}
		}
	}
	a.State.Stance = StanceStand
}

func (ctx *tickContext) result() TickResult {
	a := ctx.actor
	return TickResult{
		Position:   a.State.Pos,
		Velocity:   a.State.Vel,
		OnGround:   a.State.OnGround,
		Collisions: ctx.collisions,
		Stance:     a.State.Stance,
	}
}
