package world

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/oomph-ac/milieu/assert"
)

const (
	// ChunkShift is log2 of ChunkSize.
	ChunkShift = 4
	// ChunkSize is the edge length of a chunk in voxels.
	ChunkSize = 1 << ChunkShift

	localMask = ChunkSize - 1
)

// ChunkPos is the position of a chunk in chunk space.
type ChunkPos [3]int32

// ChunkPosOf returns the position of the chunk holding the voxel at pos.
func ChunkPosOf(pos cube.Pos) ChunkPos {
	return ChunkPos{int32(pos[0]) >> ChunkShift, int32(pos[1]) >> ChunkShift, int32(pos[2]) >> ChunkShift}
}

// LocalPos returns the coordinates of pos inside its chunk.
func LocalPos(pos cube.Pos) (x, y, z int) {
	return pos[0] & localMask, pos[1] & localMask, pos[2] & localMask
}

// Origin returns the world position of the chunk's lowest corner voxel.
func (p ChunkPos) Origin() cube.Pos {
	return cube.Pos{int(p[0]) << ChunkShift, int(p[1]) << ChunkShift, int(p[2]) << ChunkShift}
}

// Chunk is a dense ChunkSize³ tile of spots. New chunks are entirely Full.
type Chunk struct {
	pos   ChunkPos
	spots [ChunkSize][ChunkSize][ChunkSize]Spot
	dirty bool
}

// NewChunk returns a Full chunk at pos.
func NewChunk(pos ChunkPos) *Chunk {
	return &Chunk{pos: pos}
}

// Pos returns the chunk-space position of the chunk.
func (c *Chunk) Pos() ChunkPos {
	return c.pos
}

// Dirty reports whether the chunk changed since its surface was last collected.
func (c *Chunk) Dirty() bool {
	return c.dirty
}

// Spot returns the spot at the local coordinates passed. Coordinates outside [0, ChunkSize) panic.
func (c *Chunk) Spot(x, y, z int) Spot {
	checkLocal(x, y, z)
	return c.spots[x][y][z]
}

func (c *Chunk) setSpot(x, y, z int, s Spot) {
	checkLocal(x, y, z)
	c.spots[x][y][z] = s
}

func checkLocal(x, y, z int) {
	assert.IsTrue(x >= 0 && x < ChunkSize && y >= 0 && y < ChunkSize && z >= 0 && z < ChunkSize,
		"local chunk coordinate (%d, %d, %d) outside [0, %d)", x, y, z, ChunkSize)
}
