package selection

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube/trace"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oomph-ac/milieu/game"
	"github.com/oomph-ac/milieu/world"
)

// DefaultReach is how far a viewcast travels, in world units.
const DefaultReach = 10.0

// Target is the outcome of a viewcast.
type Target struct {
	// Solid is the first Rich voxel on the ray, mined by the tool.
	Solid *cube.Pos
	// Adjacent is the last non-Rich voxel crossed before Solid, where blocks are placed.
	Adjacent *cube.Pos
	// Hit is where the ray enters Solid. It equals the ray origin if the origin is inside Solid.
	Hit mgl64.Vec3
	// Distance is the length of the ray up to Hit.
	Distance float64
}

// Viewcast walks the voxels along the ray from origin in direction dir for at most reach units and reports
// the first Rich voxel. Full and unallocated voxels do not stop the ray. Both targets are nil if nothing
// Rich is in reach.
func Viewcast(src world.SpotSource, origin, dir mgl64.Vec3, reach float64) Target {
	var t Target
	if dir.LenSqr() == 0 {
		return t
	}
	end := origin.Add(dir.Normalize().Mul(reach))

	var last *cube.Pos
	for pos := range game.BlocksBetween(origin, end) {
		if s, ok := src.SpotAt(pos); ok && s.IsRich() {
			solid := pos
			t.Solid, t.Adjacent = &solid, last
			t.Hit = origin
			if res, ok := trace.BBoxIntercept(game.BlockBox(pos), game.Vec64To32(origin), game.Vec64To32(end)); ok {
				t.Hit = game.Vec32To64(res.Position())
			}
			t.Distance = t.Hit.Sub(origin).Len()
			return t
		}
		p := pos
		last = &p
	}
	return t
}
