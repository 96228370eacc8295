package world

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/milieu/game"
)

// Vertex is one corner of a face quad.
type Vertex struct {
	Position mgl32.Vec3
	UV       mgl32.Vec2
	Colour   mgl32.Vec4
	Light    float32
}

// VerticesPerFace is the number of vertices emitted for each visible face.
const VerticesPerFace = 4

// faceCorners holds the unit cube corners of each face, indexed by cube.Face, wound counter-clockwise
// when seen from outside the block.
var faceCorners = [6][4][3]int{
	cube.FaceDown:  {{0, 0, 0}, {1, 0, 0}, {1, 0, 1}, {0, 0, 1}},
	cube.FaceUp:    {{0, 1, 0}, {0, 1, 1}, {1, 1, 1}, {1, 1, 0}},
	cube.FaceNorth: {{0, 0, 0}, {0, 1, 0}, {1, 1, 0}, {1, 0, 0}},
	cube.FaceSouth: {{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1}},
	cube.FaceWest:  {{0, 0, 0}, {0, 0, 1}, {0, 1, 1}, {0, 1, 0}},
	cube.FaceEast:  {{1, 0, 0}, {1, 1, 0}, {1, 1, 1}, {1, 0, 1}},
}

// faceIntensity approximates light from a sun directly overhead. Faces along x are shaded darker than faces
// along z.
var faceIntensity = [6]float32{
	cube.FaceDown:  0.5,
	cube.FaceUp:    1.0,
	cube.FaceNorth: 0.8,
	cube.FaceSouth: 0.8,
	cube.FaceWest:  0.65,
	cube.FaceEast:  0.65,
}

// occlusionLevels maps an occlusion bucket to a light multiplier. Bucket 0 is the darkest.
var occlusionLevels = [4]float32{0.55, 0.7, 0.85, 1.0}

// FaceIntensity returns the base light of a face pointing in direction f.
func FaceIntensity(f cube.Face) float32 {
	return faceIntensity[f]
}

// OcclusionFactor returns the light multiplier of a corner touched by the given number of Empty voxels out
// of the eight sharing it.
func OcclusionFactor(empty int) float32 {
	return occlusionLevels[min(3, empty/2)]
}

// cornerEmptyCount counts the Empty voxels among the eight sharing the lattice point corner.
func cornerEmptyCount(corner cube.Pos, src SpotSource) int {
	n := 0
	for dx := -1; dx <= 0; dx++ {
		for dy := -1; dy <= 0; dy++ {
			for dz := -1; dz <= 0; dz++ {
				if s, ok := src.SpotAt(corner.Add(cube.Pos{dx, dy, dz})); ok && s.IsEmpty() {
					n++
				}
			}
		}
	}
	return n
}

// buildSurface computes the exposed faces of b at pos. A face is emitted only when its neighbour is Empty;
// absent chunks count as solid.
func buildSurface(b *Block, pos cube.Pos, src SpotSource, highlight float32) []Vertex {
	var out []Vertex
	box := game.BlockBox(pos)
	lo, hi := box.Min(), box.Max()

	for _, f := range cube.Faces() {
		if s, ok := src.SpotAt(pos.Side(f)); !ok || !s.IsEmpty() {
			continue
		}
		base := highlight * faceIntensity[f]
		for i, c := range faceCorners[f] {
			p := mgl32.Vec3{lo[0], lo[1], lo[2]}
			for axis := range 3 {
				if c[axis] == 1 {
					p[axis] = hi[axis]
				}
			}
			corner := pos.Add(cube.Pos{c[0], c[1], c[2]})
			out = append(out, Vertex{
				Position: p,
				UV:       b.uv(int(f), i),
				Colour:   b.colour,
				Light:    base * OcclusionFactor(cornerEmptyCount(corner, src)),
			})
		}
	}
	return out
}
