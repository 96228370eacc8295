package actor

import "github.com/oomph-ac/milieu/world"

// Tick advances the actor by dt seconds against the voxels in src.
func (a *Actor) Tick(dt float64, src world.SpotSource) TickResult {
	a.debugf("BEGIN tick dt=%.4f pos=%v vel=%v stance=%s", dt, a.State.Pos, a.State.Vel, a.State.Stance)
	defer a.debugf("END tick pos=%v onGround=%t", a.State.Pos, a.State.OnGround)

	ctx := newCtx(a, src, dt)
	defer putCtx(ctx)

	input := ctx.resolveInput()
	ctx.integrate(input)
	ctx.tryCollisions()
	ctx.commit()
	ctx.checkStance()
	return ctx.result()
}
