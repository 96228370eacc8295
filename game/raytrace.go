package game

import (
	"iter"
	"math"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl64"
)

// BlocksBetween walks every voxel crossed by the segment from start to end, in order, starting with the
// voxel containing start. Traversal ends once the next boundary crossing lies beyond end.
// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L67
func BlocksBetween(start, end mgl64.Vec3) iter.Seq[cube.Pos] {
	return func(yield func(cube.Pos) bool) {
		delta := end.Sub(start)
		if delta.LenSqr() <= 0 {
			return
		}
		dirVec := delta.Normalize()

		radius := delta.Len()
		stepX := SpaceshipOp(dirVec.X(), 0)
		stepY := SpaceshipOp(dirVec.Y(), 0)
		stepZ := SpaceshipOp(dirVec.Z(), 0)

		tMaxX := rayTraceDistanceToBoundary(start.X(), dirVec.X())
		tMaxY := rayTraceDistanceToBoundary(start.Y(), dirVec.Y())
		tMaxZ := rayTraceDistanceToBoundary(start.Z(), dirVec.Z())

		tDeltaX := 0.0
		if dirVec.X() != 0 {
			tDeltaX = float64(stepX) / dirVec.X()
		}

		tDeltaY := 0.0
		if dirVec.Y() != 0 {
			tDeltaY = float64(stepY) / dirVec.Y()
		}

		tDeltaZ := 0.0
		if dirVec.Z() != 0 {
			tDeltaZ = float64(stepZ) / dirVec.Z()
		}

		current := cube.PosFromVec3(start)
		for {
			if !yield(current) {
				return
			}

			if tMaxX < tMaxY && tMaxX < tMaxZ {
				if tMaxX > radius {
					return
				}
				current[0] += stepX
				tMaxX += tDeltaX
			} else if tMaxY < tMaxZ {
				if tMaxY > radius {
					return
				}
				current[1] += stepY
				tMaxY += tDeltaY
			} else {
				if tMaxZ > radius {
					return
				}
				current[2] += stepZ
				tMaxZ += tDeltaZ
			}
		}
	}
}

// https://github.com/pmmp/Math/blob/stable/src/VoxelRayTrace.php#L134
func rayTraceDistanceToBoundary(s, ds float64) float64 {
	if ds == 0 {
		return math.MaxFloat64
	}

	if ds < 0 {
		s = -s
		ds = -ds

		if math.Floor(s) == s {
			return 0
		}
	}

	return (1 - (s - math.Floor(s))) / ds
}
