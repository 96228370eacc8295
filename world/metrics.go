package world

import "time"

// Metrics receives counters from a Milieu as it works.
type Metrics interface {
	ChunkCreated()
	Revealed(generated int)
	ChunksRebuilt(n int)
	Collected(vertices int, took time.Duration)
}

// NopMetrics discards everything.
type NopMetrics struct{}

func (NopMetrics) ChunkCreated() {}
func (NopMetrics) Revealed(int) {}
func (NopMetrics) ChunksRebuilt(int) {}
func (NopMetrics) Collected(int, time.Duration) {}

