package world

import "github.com/go-gl/mathgl/mgl32"

// TextureWidth is the number of cells along one edge of the texture atlas.
const TextureWidth = 4.0

// textureTransforms holds the UV corner permutations a face may use. Each entry lists the u and then the v
// atlas offsets of the four face corners, in corner emission order.
var textureTransforms = [8][2][4]float32{
	{{1, 0, 0, 1}, {1, 1, 0, 0}},
	{{0, 0, 1, 1}, {1, 0, 0, 1}},
	{{0, 1, 1, 0}, {0, 0, 1, 1}},
	{{1, 1, 0, 0}, {0, 1, 1, 0}},
	{{0, 1, 1, 0}, {1, 1, 0, 0}},
	{{1, 1, 0, 0}, {1, 0, 0, 1}},
	{{1, 0, 0, 1}, {0, 0, 1, 1}},
	{{0, 0, 1, 1}, {0, 1, 1, 0}},
}

// Block is the appearance and mesh fragment of one Rich voxel.
type Block struct {
	colour   mgl32.Vec4
	seed     uint32
	textrans [6][2][4]float32

	vertices []Vertex
	meshed   bool
}

// NewBlock creates a block with the colour passed. The texture seed picks one of the eight UV permutations
// for each face, three bits per face.
func NewBlock(seed uint32, colour mgl32.Vec4) *Block {
	b := &Block{colour: colour, seed: seed}
	for f := range b.textrans {
		b.textrans[f] = textureTransforms[(seed>>(3*uint(f)))%8]
	}
	return b
}

// Colour returns the flat colour of the block.
func (b *Block) Colour() mgl32.Vec4 {
	return b.colour
}

// Seed returns the texture seed the block was created with.
func (b *Block) Seed() uint32 {
	return b.seed
}

// Vertices returns the cached surface of the block. The slice must not be modified.
func (b *Block) Vertices() []Vertex {
	return b.vertices
}

func (b *Block) uv(face, corner int) mgl32.Vec2 {
	t := b.textrans[face]
	return mgl32.Vec2{t[0][corner] / TextureWidth, t[1][corner] / TextureWidth}
}
