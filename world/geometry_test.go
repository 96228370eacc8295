package world

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/stretchr/testify/require"
	"github.com/zeebo/xxh3"
)

func TestGeometryEncoding(t *testing.T) {
	m := New(testGenerator(), Config{})
	m.Reveal(cube.Pos{0, 0, 0})
	g := m.CollectGeometry()

	b := g.Bytes()
	require.Len(t, b, len(g.Vertices)*vertexStride+len(g.Indices)*4)

	first := g.Vertices[0]
	require.Equal(t, first.Position[0], math.Float32frombits(binary.LittleEndian.Uint32(b[0:])))
	require.Equal(t, first.Light, math.Float32frombits(binary.LittleEndian.Uint32(b[9*4:])))

	indexStart := len(g.Vertices) * vertexStride
	require.Equal(t, uint32(2), binary.LittleEndian.Uint32(b[indexStart+2*4:]))

	// Repeated digests reuse pooled buffers and must not depend on what they held before.
	require.Equal(t, xxh3.Hash(b), g.Digest())
	require.Equal(t, xxh3.Hash(b), g.Digest())
	require.Equal(t, xxh3.Hash(nil), Geometry{}.Digest())
}
