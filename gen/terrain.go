package gen

import (
	"math"
	"math/rand/v2"

	"github.com/aquilax/go-perlin"
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/milieu/game"
	"github.com/oomph-ac/milieu/world"
)

const (
	// Scale divides world coordinates before sampling noise.
	Scale = 100.0
	// Brightness is added to every colour channel.
	Brightness = 0.8

	octaves     = 4
	persistence = 0.5
	lacunarity  = 2.0
)

// billow is fractal noise built from the absolute value of perlin noise, giving soft rounded blobs.
type billow struct {
	p *perlin.Perlin
}

func newBillow(seed int64) billow {
	return billow{p: perlin.NewPerlin(2, 2, 1, seed)}
}

func (b billow) at(x, y, z float64) float64 {
	var sum, norm float64
	amp, freq := 1.0, 1.0
	for range octaves {
		sum += (2*math.Abs(b.p.Noise3D(x*freq, y*freq, z*freq)) - 1) * amp
		norm += amp
		amp *= persistence
		freq *= lacunarity
	}
	return sum / norm
}

// Terrain colours voxels from three noise fields, one per channel. Colours depend only on the seed and
// coordinate. Texture seeds are drawn from a random source and are not reproducible unless the source is.
type Terrain struct {
	red, green, blue billow
	rng              *rand.Rand
}

// NewTerrain returns a generator for seed. Texture seeds come from rng, or from a source seeded by seed if
// rng is nil.
func NewTerrain(seed int64, rng *rand.Rand) *Terrain {
	if rng == nil {
		rng = rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15))
	}
	return &Terrain{
		red:   newBillow(seed),
		green: newBillow(seed + 1),
		blue:  newBillow(seed + 2),
		rng:   rng,
	}
}

// Colour returns the colour of the voxel at pos.
func (t *Terrain) Colour(pos cube.Pos) mgl32.Vec4 {
	x, y, z := float64(pos[0])/Scale, float64(pos[1])/Scale, float64(pos[2])/Scale
	return mgl32.Vec4{
		channel(t.red.at(x, y, z)),
		channel(t.green.at(x, y, z)),
		channel(t.blue.at(x, y, z)),
		1,
	}
}

// Generate implements world.Generator.
func (t *Terrain) Generate(pos cube.Pos) world.Appearance {
	return world.Appearance{Colour: t.Colour(pos), TextureSeed: t.rng.Uint32()}
}

func channel(v float64) float32 {
	return game.ClampFloat(float32(v+Brightness), 0, 1)
}
