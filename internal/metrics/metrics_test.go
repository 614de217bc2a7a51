package metrics

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/canonlab/automorphism"
)

func TestObserve(t *testing.T) {
	r := NewRecorder()
	st := automorphism.Stats{Nodes: 5, Leaves: 3, Automorphisms: 2, Pruned: 1}

	r.Observe(st, 4, nil)
	r.Observe(st, 4, nil)
	r.Observe(automorphism.Stats{Nodes: 1}, 0, fmt.Errorf("x: %w: %w", automorphism.ErrCancelled, context.Canceled))
	r.Observe(automorphism.Stats{}, 0, errors.New("boom"))

	assert.Equal(t, 11.0, testutil.ToFloat64(r.Nodes))
	assert.Equal(t, 6.0, testutil.ToFloat64(r.Leaves))
	assert.Equal(t, 4.0, testutil.ToFloat64(r.Automorphisms))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Pruned))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.Processes.WithLabelValues(OutcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Processes.WithLabelValues(OutcomeCancelled)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.Processes.WithLabelValues(OutcomeError)))
	assert.Equal(t, 1, testutil.CollectAndCount(r.Orbits))
}

func TestCatalogAdds(t *testing.T) {
	r := NewRecorder()
	r.ObserveCatalogAdd(false)
	r.ObserveCatalogAdd(true)
	r.ObserveCatalogAdd(true)

	assert.Equal(t, 1.0, testutil.ToFloat64(r.CatalogAdds.WithLabelValues("new")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.CatalogAdds.WithLabelValues("duplicate")))
}

func TestWriteFile(t *testing.T) {
	r := NewRecorder()
	r.Observe(automorphism.Stats{Nodes: 7}, 1, nil)

	path := filepath.Join(t.TempDir(), "canonlab.prom")
	require.NoError(t, r.WriteFile(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "canonlab_search_nodes_total 7")
	assert.Contains(t, string(data), `canonlab_search_processes_total{outcome="ok"} 1`)

	assert.Error(t, r.WriteFile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
