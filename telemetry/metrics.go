package telemetry

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "milieu"

// Metrics records voxel store activity as Prometheus metrics. It satisfies world.Metrics.
type Metrics struct {
	registry *prometheus.Registry

	chunks    prometheus.Counter
	reveals   prometheus.Counter
	generated prometheus.Counter
	rebuilt   prometheus.Counter
	vertices  prometheus.Gauge
	collect   prometheus.Histogram
	ticks     prometheus.Counter
}

// New creates metrics registered on a registry of their own.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		chunks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_created_total",
			Help:      "Number of chunks allocated by the sparse world.",
		}),
		reveals: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reveals_total",
			Help:      "Number of reveal edits.",
		}),
		generated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "blocks_generated_total",
			Help:      "Number of unexplored voxels materialised by reveals.",
		}),
		rebuilt: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "chunks_rebuilt_total",
			Help:      "Number of dirty chunk surfaces rebuilt.",
		}),
		vertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "geometry_vertices",
			Help:      "Vertices in the most recently collected geometry.",
		}),
		collect: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "collect_geometry_seconds",
			Help:      "Time spent collecting geometry.",
			Buckets:   prometheus.ExponentialBuckets(0.00005, 2, 12),
		}),
		ticks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "ticks_total",
			Help:      "Number of session ticks simulated.",
		}),
	}
	m.registry.MustRegister(m.chunks, m.reveals, m.generated, m.rebuilt, m.vertices, m.collect, m.ticks)
	return m
}

// ChunkCreated ...
func (m *Metrics) ChunkCreated() {
	m.chunks.Inc()
}

// Revealed ...
func (m *Metrics) Revealed(generated int) {
	m.reveals.Inc()
	m.generated.Add(float64(generated))
}

// ChunksRebuilt ...
func (m *Metrics) ChunksRebuilt(n int) {
	m.rebuilt.Add(float64(n))
}

// Collected ...
func (m *Metrics) Collected(vertices int, d time.Duration) {
	m.vertices.Set(float64(vertices))
	m.collect.Observe(d.Seconds())
}

// Tick counts one simulated session tick.
func (m *Metrics) Tick() {
	m.ticks.Inc()
}

// Registry returns the registry the metrics are registered on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler returns an HTTP handler serving the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
