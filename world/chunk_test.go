package world

import (
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestSplice(t *testing.T) {
	pos := cube.Pos{-1, 15, 16}
	require.Equal(t, ChunkPos{-1, 0, 1}, ChunkPosOf(pos))
	x, y, z := LocalPos(pos)
	require.Equal(t, [3]int{15, 15, 0}, [3]int{x, y, z})

	require.Equal(t, ChunkPos{-2, -1, 0}, ChunkPosOf(cube.Pos{-17, -16, 0}))
	require.Equal(t, cube.Pos{-32, -16, 0}, ChunkPos{-2, -1, 0}.Origin())
}

func TestNewChunkIsFull(t *testing.T) {
	c := NewChunk(ChunkPos{})
	require.True(t, c.Spot(0, 0, 0).IsFull())
	require.True(t, c.Spot(15, 15, 15).IsFull())
	require.False(t, c.Dirty())
}

func TestChunkOutOfRangePanics(t *testing.T) {
	c := NewChunk(ChunkPos{})
	require.Panics(t, func() { c.Spot(16, 0, 0) })
	require.Panics(t, func() { c.Spot(0, -1, 0) })
}

func TestSpotAtAbsentChunk(t *testing.T) {
	w := NewSparseWorld(nil, nil)
	_, ok := w.SpotAt(cube.Pos{3, 3, 3})
	require.False(t, ok)
	require.Nil(t, w.ChunkAt(ChunkPos{}))

	w.SetSpot(cube.Pos{3, 3, 3}, Rich(NewBlock(0, mgl32.Vec4{1, 1, 1, 1})))
	s, ok := w.SpotAt(cube.Pos{3, 3, 3})
	require.True(t, ok)
	require.True(t, s.IsRich())

	s, ok = w.SpotAt(cube.Pos{4, 3, 3})
	require.True(t, ok)
	require.True(t, s.IsFull())
}

func TestSetSpotMarksBorderChunks(t *testing.T) {
	w := NewSparseWorld(nil, nil)
	w.SetSpot(cube.Pos{14, 5, 5}, Empty())
	require.True(t, w.ChunkAt(ChunkPos{}).Dirty())
	require.Nil(t, w.ChunkAt(ChunkPos{1, 0, 0}))

	w.SetSpot(cube.Pos{15, 5, 0}, Empty())
	require.True(t, w.ChunkAt(ChunkPos{1, 0, 0}).Dirty())
	require.True(t, w.ChunkAt(ChunkPos{0, 0, -1}).Dirty())

	dirty := w.takeDirty()
	require.Len(t, dirty, 3)
	require.Equal(t, ChunkPos{}, dirty[0].Pos())
	require.False(t, w.ChunkAt(ChunkPos{1, 0, 0}).Dirty())
}

func TestBlockTextureTable(t *testing.T) {
	// Face f uses permutation (seed >> 3f) % 8.
	seed := uint32(3) | uint32(5)<<3 | uint32(7)<<15
	b := NewBlock(seed, mgl32.Vec4{1, 1, 1, 1})
	require.Equal(t, textureTransforms[3], b.textrans[0])
	require.Equal(t, textureTransforms[5], b.textrans[1])
	require.Equal(t, textureTransforms[0], b.textrans[2])
	require.Equal(t, textureTransforms[7], b.textrans[5])
	require.Equal(t, mgl32.Vec2{0.25, 0}, b.uv(0, 0))
}

func TestOcclusionFactorBuckets(t *testing.T) {
	require.Equal(t, float32(0.55), OcclusionFactor(1))
	require.Equal(t, float32(0.7), OcclusionFactor(2))
	require.Equal(t, float32(0.85), OcclusionFactor(5))
	require.Equal(t, float32(1.0), OcclusionFactor(7))
	require.Equal(t, float32(1.0), OcclusionFactor(8))
}
