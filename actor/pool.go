package actor

import (
	"sync"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/milieu/world"
)

var ctxPool = sync.Pool{
	New: func() any {
		return &tickContext{}
	},
}

func newCtx(a *Actor, src world.SpotSource, dt float64) *tickContext {
	ctx := ctxPool.Get().(*tickContext)
	ctx.actor = a
	ctx.src = src
	ctx.dt = dt
	return ctx
}

func putCtx(ctx *tickContext) {
	ctx.reset()
	ctxPool.Put(ctx)
}

func (ctx *tickContext) reset() {
	ctx.actor = nil
	ctx.src = nil
	ctx.dt = 0
	ctx.speed = 0
	ctx.mov = mgl64.Vec3{}
	ctx.pos = mgl64.Vec3{}
	ctx.collisions = [3]*cube.Pos{}
}
