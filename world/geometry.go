package world

import (
	"encoding/binary"
	"math"

	"github.com/oomph-ac/milieu/internal"
	"github.com/zeebo/xxh3"
)

// quadIndices is the triangle pair of one face quad.
var quadIndices = [6]uint32{0, 1, 2, 0, 2, 3}

// vertexStride is the encoded size of a Vertex: ten float32 values.
const vertexStride = 10 * 4

// Geometry is a merged vertex and index buffer ready for upload.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// Quads returns the number of face quads in the geometry.
func (g Geometry) Quads() int {
	return len(g.Vertices) / VerticesPerFace
}

// Bytes encodes the vertex buffer followed by the index buffer, little endian, in the layout the vertex
// shader expects: position, uv, colour, light.
func (g Geometry) Bytes() []byte {
	return g.AppendBytes(make([]byte, 0, len(g.Vertices)*vertexStride+len(g.Indices)*4))
}

// AppendBytes appends the encoding returned by Bytes to buf.
func (g Geometry) AppendBytes(buf []byte) []byte {
	for _, v := range g.Vertices {
		for _, f := range v.Position {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
		for _, f := range v.UV {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
		for _, f := range v.Colour {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f))
		}
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v.Light))
	}
	for _, i := range g.Indices {
		buf = binary.LittleEndian.AppendUint32(buf, i)
	}
	return buf
}

// Digest returns a hash of Bytes.
func (g Geometry) Digest() uint64 {
	bp := internal.BufferPool.Get().(*[]byte)
	*bp = g.AppendBytes((*bp)[:0])
	h := xxh3.Hash(*bp)
	*bp = (*bp)[:0]
	internal.BufferPool.Put(bp)
	return h
}

func indicesFor(vertices int) []uint32 {
	quads := vertices / VerticesPerFace
	out := make([]uint32, 0, quads*len(quadIndices))
	for l := uint32(0); l < uint32(quads*VerticesPerFace); l += VerticesPerFace {
		for _, i := range quadIndices {
			out = append(out, l+i)
		}
	}
	return out
}
