// Package status exposes engine counters as prometheus metrics
package status

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/lixenwraith/blockfall/board"
	"github.com/lixenwraith/blockfall/engine"
)

const namespace = "blockfall"

// Registry owns a private prometheus registry for one run
// Observer callbacks arrive on the engine goroutine; collectors are safe for concurrent scrape
type Registry struct {
	reg *prometheus.Registry

	PiecesLocked prometheus.Counter
	LinesCleared prometheus.Counter
	ClearEvents  prometheus.Counter
	RowsPerClear prometheus.Histogram
	GamesOver    *prometheus.CounterVec
	FallInterval prometheus.Gauge
}

// NewRegistry creates the collectors and registers them with every series
// labelled by runID
func NewRegistry(runID string) *Registry {
	r := &Registry{
		reg: prometheus.NewRegistry(),
		PiecesLocked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pieces_locked_total",
			Help:      "Pieces merged into the grid.",
		}),
		LinesCleared: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lines_cleared_total",
			Help:      "Rows removed by compaction.",
		}),
		ClearEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "clear_events_total",
			Help:      "Lock events that removed at least one row.",
		}),
		RowsPerClear: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rows_per_clear",
			Help:      "Rows removed per clear event.",
			Buckets:   []float64{1, 2, 3, 4},
		}),
		GamesOver: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_over_total",
			Help:      "Finished runs by reason.",
		}, []string{"reason"}),
		FallInterval: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "fall_interval_seconds",
			Help:      "Current gravity interval.",
		}),
	}

	wrapped := prometheus.WrapRegistererWith(prometheus.Labels{"run_id": runID}, r.reg)
	wrapped.MustRegister(
		r.PiecesLocked,
		r.LinesCleared,
		r.ClearEvents,
		r.RowsPerClear,
		r.GamesOver,
		r.FallInterval,
	)
	return r
}

// Gatherer returns the registry for exposition
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.reg
}

// SetFallInterval records the current gravity interval
func (r *Registry) SetFallInterval(d time.Duration) {
	r.FallInterval.Set(d.Seconds())
}

// OnLock counts a merged piece
func (r *Registry) OnLock(_ *board.Piece) {
	r.PiecesLocked.Inc()
}

// OnClear counts rows and tracks the sped-up interval
func (r *Registry) OnClear(rows int, interval time.Duration) {
	r.ClearEvents.Inc()
	r.LinesCleared.Add(float64(rows))
	r.RowsPerClear.Observe(float64(rows))
	r.SetFallInterval(interval)
}

// OnGameOver counts the finished run
func (r *Registry) OnGameOver(res engine.Result) {
	r.GamesOver.WithLabelValues(res.Reason.String()).Inc()
}

var _ engine.Observer = (*Registry)(nil)
