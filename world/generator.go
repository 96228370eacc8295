package world

import (
	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Appearance is what the generator decides for a voxel being materialised. Colour must be a pure function
// of the seed and coordinate; TextureSeed may come from any source.
type Appearance struct {
	Colour      mgl32.Vec4
	TextureSeed uint32
}

// Generator produces the appearance of voxels as they are revealed.
type Generator interface {
	Generate(pos cube.Pos) Appearance
}

// GeneratorFunc adapts a function to a Generator.
type GeneratorFunc func(pos cube.Pos) Appearance

func (f GeneratorFunc) Generate(pos cube.Pos) Appearance {
	return f(pos)
}
