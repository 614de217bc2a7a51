// Package metrics records search counters in a private Prometheus registry
// and writes them in the text exposition format.
package metrics

import (
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/canonlab/automorphism"
)

const namespace = "canonlab"

// Outcome labels for the processes counter.
const (
	OutcomeOK        = "ok"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Recorder accumulates search statistics across runs.
type Recorder struct {
	registry *prometheus.Registry

	Nodes         prometheus.Counter
	Leaves        prometheus.Counter
	Automorphisms prometheus.Counter
	Pruned        prometheus.Counter
	Processes     *prometheus.CounterVec
	Orbits        prometheus.Histogram
	CatalogAdds   *prometheus.CounterVec
}

// NewRecorder registers the canonlab collectors in a fresh registry.
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		Nodes: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "nodes_total",
			Help:      "Search tree nodes visited",
		}),
		Leaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "leaves_total",
			Help:      "Discrete partitions reached",
		}),
		Automorphisms: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "automorphisms_total",
			Help:      "Automorphisms found",
		}),
		Pruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "pruned_total",
			Help:      "Branches removed by orbit pruning",
		}),
		Processes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "processes_total",
			Help:      "Process calls by outcome",
		}, []string{"outcome"}),
		Orbits: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "orbits",
			Help:      "Orbit count per processed input",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		CatalogAdds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "catalog",
			Name:      "adds_total",
			Help:      "Catalog insertions by result",
		}, []string{"result"}),
	}
	r.registry.MustRegister(r.Nodes, r.Leaves, r.Automorphisms, r.Pruned, r.Processes, r.Orbits, r.CatalogAdds)

	return r
}

// Registry exposes the private registry.
func (r *Recorder) Registry() *prometheus.Registry { return r.registry }

// Observe records one Process outcome. orbits is ignored unless err is nil.
func (r *Recorder) Observe(st automorphism.Stats, orbits int, err error) {
	r.Nodes.Add(float64(st.Nodes))
	r.Leaves.Add(float64(st.Leaves))
	r.Automorphisms.Add(float64(st.Automorphisms))
	r.Pruned.Add(float64(st.Pruned))

	switch {
	case err == nil:
		r.Processes.WithLabelValues(OutcomeOK).Inc()
		r.Orbits.Observe(float64(orbits))
	case errors.Is(err, automorphism.ErrCancelled):
		r.Processes.WithLabelValues(OutcomeCancelled).Inc()
	default:
		r.Processes.WithLabelValues(OutcomeError).Inc()
	}
}

// ObserveCatalogAdd counts a catalog insertion.
func (r *Recorder) ObserveCatalogAdd(duplicate bool) {
	result := "new"
	if duplicate {
		result = "duplicate"
	}
	r.CatalogAdds.WithLabelValues(result).Inc()
}

// WriteFile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}

	return nil
}
