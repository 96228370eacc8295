package game

import (
	df_cube "github.com/df-mc/dragonfly/server/block/cube"
	"github.com/ethaniccc/float32-cube/cube"
)

// BlockBox returns the float32 unit box occupied by the voxel at pos.
func BlockBox(pos df_cube.Pos) cube.BBox {
	x, y, z := float32(pos[0]), float32(pos[1]), float32(pos[2])
	return cube.Box(x, y, z, x+1, y+1, z+1)
}
