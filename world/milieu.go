package world

import (
	"log/slog"
	"time"

	"github.com/df-mc/dragonfly/server/block/cube"
	"github.com/elliotchance/orderedmap/v2"
)

// Config holds the optional collaborators of a Milieu.
type Config struct {
	Logger  *slog.Logger
	Metrics Metrics
}

// Milieu is the voxel store: a SparseWorld plus the per-chunk surface cache and highlight state. It is not
// safe for concurrent use.
type Milieu struct {
	world *SparseWorld
	gen   Generator

	// cache holds the last built surface of each chunk, in the order chunks were first built.
	cache      *orderedmap.OrderedMap[ChunkPos, []Vertex]
	highlights []cube.Pos

	logger  *slog.Logger
	metrics Metrics
}

// New returns an unexplored Milieu that materialises voxels using gen.
func New(gen Generator, conf Config) *Milieu {
	if conf.Logger == nil {
		conf.Logger = slog.New(slog.DiscardHandler)
	}
	if conf.Metrics == nil {
		conf.Metrics = NopMetrics{}
	}
	return &Milieu{
		world:   NewSparseWorld(conf.Logger, conf.Metrics),
		gen:     gen,
		cache:   orderedmap.NewOrderedMap[ChunkPos, []Vertex](),
		logger:  conf.Logger,
		metrics: conf.Metrics,
	}
}

// World returns the underlying SparseWorld.
func (m *Milieu) World() *SparseWorld {
	return m.world
}

// SpotAt returns the spot at pos. ok is false if the chunk holding pos was never allocated.
func (m *Milieu) SpotAt(pos cube.Pos) (Spot, bool) {
	return m.world.SpotAt(pos)
}

// Put places b at pos, replacing whatever was there.
func (m *Milieu) Put(pos cube.Pos, b *Block) {
	m.world.SetSpot(pos, Rich(b))
	m.remeshAround(pos)
}

// Yank removes the block at pos, leaving it Empty. It does nothing and returns false if pos is not Rich.
func (m *Milieu) Yank(pos cube.Pos) (*Block, bool) {
	s, _ := m.world.SpotAt(pos)
	b, ok := s.Block()
	if !ok {
		return nil, false
	}
	m.world.SetSpot(pos, Empty())
	m.remeshAround(pos)
	return b, true
}

// Reveal empties pos and generates every face neighbour that is still Full. The removed block is returned
// if pos was Rich.
func (m *Milieu) Reveal(pos cube.Pos) (*Block, bool) {
	s, _ := m.world.SpotAt(pos)
	b, rich := s.Block()
	if !s.IsEmpty() {
		m.world.SetSpot(pos, Empty())
	}

	generated := 0
	for _, f := range cube.Faces() {
		np := pos.Side(f)
		if ns, ok := m.world.SpotAt(np); ok && !ns.IsFull() {
			continue
		}
		app := m.gen.Generate(np)
		m.world.SetSpot(np, Rich(NewBlock(app.TextureSeed, app.Colour)))
		generated++
	}
	m.remeshAround(pos)

	m.metrics.Revealed(generated)
	m.logger.Debug("revealed voxel", "pos", pos, "generated", generated, "removed", rich)
	return b, rich
}

// SetHighlight remeshes the block at pos with its light scaled by factor. The next CollectGeometry restores
// it before rebuilding, so the highlight is visible in the block's own vertices but never in collected
// geometry. Chunks are not marked dirty.
func (m *Milieu) SetHighlight(pos cube.Pos, factor float32) {
	s, _ := m.world.SpotAt(pos)
	b, ok := s.Block()
	if !ok {
		return
	}
	m.mesh(b, pos, factor)
	m.highlights = append(m.highlights, pos)
}

// CollectGeometry rebuilds the surface of every dirty chunk and returns the merged buffers of all cached
// chunk surfaces. Active highlights are cleared first.
func (m *Milieu) CollectGeometry() Geometry {
	start := time.Now()
	for _, pos := range m.highlights {
		s, _ := m.world.SpotAt(pos)
		if b, ok := s.Block(); ok {
			m.mesh(b, pos, 1)
		}
	}
	m.highlights = m.highlights[:0]

	dirty := m.world.takeDirty()
	for _, c := range dirty {
		if v := m.rebuild(c); len(v) > 0 {
			m.cache.Set(c.pos, v)
		} else {
			m.cache.Delete(c.pos)
		}
	}

	var g Geometry
	for el := m.cache.Front(); el != nil; el = el.Next() {
		g.Vertices = append(g.Vertices, el.Value...)
	}
	g.Indices = indicesFor(len(g.Vertices))

	if len(dirty) > 0 {
		m.metrics.ChunksRebuilt(len(dirty))
		m.logger.Debug("rebuilt chunk surfaces", "chunks", len(dirty), "cached", m.cache.Len(), "vertices", len(g.Vertices))
	}
	m.metrics.Collected(len(g.Vertices), time.Since(start))
	return g
}

// CachedChunks returns the number of chunks with a cached surface.
func (m *Milieu) CachedChunks() int {
	return m.cache.Len()
}

func (m *Milieu) rebuild(c *Chunk) []Vertex {
	origin := c.pos.Origin()
	var out []Vertex
	for x := range ChunkSize {
		for y := range ChunkSize {
			for z := range ChunkSize {
				b, ok := c.spots[x][y][z].Block()
				if !ok {
					continue
				}
				if !b.meshed {
					m.mesh(b, origin.Add(cube.Pos{x, y, z}), 1)
				}
				out = append(out, b.vertices...)
			}
		}
	}
	return out
}

// remeshAround rebuilds the surface of every block in the 3x3x3 neighbourhood of pos and marks their
// chunks dirty.
func (m *Milieu) remeshAround(pos cube.Pos) {
	for dx := -1; dx <= 1; dx++ {
		for dy := -1; dy <= 1; dy++ {
			for dz := -1; dz <= 1; dz++ {
				p := pos.Add(cube.Pos{dx, dy, dz})
				s, _ := m.world.SpotAt(p)
				if b, ok := s.Block(); ok {
					m.mesh(b, p, 1)
					m.world.markDirty(ChunkPosOf(p))
				}
			}
		}
	}
}

func (m *Milieu) mesh(b *Block, pos cube.Pos, highlight float32) {
	b.vertices = buildSurface(b, pos, m.world, highlight)
	b.meshed = true
}
