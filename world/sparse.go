package world

import (
	"log/slog"

	"github.com/df-mc/dragonfly/server/block/cube"
)

// SpotSource is anything voxels can be looked up in. The bool is false when the chunk holding pos has never
// been allocated.
type SpotSource interface {
	SpotAt(pos cube.Pos) (Spot, bool)
}

// SparseWorld maps chunk positions to chunks. Chunks are allocated on first mutating access and never freed.
type SparseWorld struct {
	chunks map[ChunkPos]*Chunk
	// dirty lists dirty chunks in the order they became dirty.
	dirty []ChunkPos

	logger  *slog.Logger
	metrics Metrics
}

// NewSparseWorld returns an empty world. A nil logger or metrics disables them.
func NewSparseWorld(logger *slog.Logger, metrics Metrics) *SparseWorld {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if metrics == nil {
		metrics = NopMetrics{}
	}
	return &SparseWorld{
		chunks:  make(map[ChunkPos]*Chunk),
		logger:  logger,
		metrics: metrics,
	}
}

// ChunkAt returns the chunk at pos, or nil if it was never allocated.
func (w *SparseWorld) ChunkAt(pos ChunkPos) *Chunk {
	return w.chunks[pos]
}

// ChunkAtMut returns the chunk at pos, allocating a Full one if needed.
func (w *SparseWorld) ChunkAtMut(pos ChunkPos) *Chunk {
	c, ok := w.chunks[pos]
	if !ok {
		c = NewChunk(pos)
		w.chunks[pos] = c
		w.metrics.ChunkCreated()
		w.logger.Debug("allocated chunk", "chunkPos", pos, "chunks", len(w.chunks))
	}
	return c
}

// Len returns the number of allocated chunks.
func (w *SparseWorld) Len() int {
	return len(w.chunks)
}

// SpotAt returns the spot at the world position passed. ok is false if the chunk does not exist.
func (w *SparseWorld) SpotAt(pos cube.Pos) (s Spot, ok bool) {
	c := w.chunks[ChunkPosOf(pos)]
	if c == nil {
		return Spot{}, false
	}
	return c.Spot(LocalPos(pos)), true
}

// SetSpot writes s at pos, allocating its chunk. The chunk, and any neighbouring chunk that shares a face
// with pos, is marked dirty.
func (w *SparseWorld) SetSpot(pos cube.Pos, s Spot) {
	cp := ChunkPosOf(pos)
	x, y, z := LocalPos(pos)
	w.ChunkAtMut(cp).setSpot(x, y, z, s)
	w.markDirty(cp)
	for _, f := range cube.Faces() {
		if ncp := ChunkPosOf(pos.Side(f)); ncp != cp {
			w.markDirty(ncp)
		}
	}
}

// markDirty flags the chunk at pos, allocating it if needed.
func (w *SparseWorld) markDirty(pos ChunkPos) {
	c := w.ChunkAtMut(pos)
	if c.dirty {
		return
	}
	c.dirty = true
	w.dirty = append(w.dirty, pos)
}

// takeDirty returns the dirty chunks and clears their flags.
func (w *SparseWorld) takeDirty() []*Chunk {
	out := make([]*Chunk, 0, len(w.dirty))
	for _, pos := range w.dirty {
		c := w.chunks[pos]
		c.dirty = false
		out = append(out, c)
	}
	w.dirty = w.dirty[:0]
	return out
}
