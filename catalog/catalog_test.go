package catalog_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/canonlab/automorphism"
	"github.com/katalvlaran/canonlab/builder"
	"github.com/katalvlaran/canonlab/catalog"
)

func certificate(t *testing.T, c builder.Constructor, perm []int) automorphism.Certificate {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, c)
	require.NoError(t, err)
	if perm != nil {
		g, err = builder.Relabel(g, perm, builder.SymbolNumberIDFn("p"))
		require.NoError(t, err)
	}
	cg, err := automorphism.FromCore(g)
	require.NoError(t, err)
	s, err := automorphism.New(automorphism.WithCanonicalForm(automorphism.ConnectivityComparator(nil)))
	require.NoError(t, err)
	require.NoError(t, s.Process(context.Background(), cg))
	cert, err := s.CanonicalForm(nil)
	require.NoError(t, err)

	return cert
}

func openMemory(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.Open(catalog.InMemoryConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func TestAddDeduplicatesIsomorphicInputs(t *testing.T) {
	c := openMemory(t)

	first, err := c.Add("petersen", certificate(t, builder.Petersen(), nil))
	require.NoError(t, err)
	assert.False(t, first.Duplicate)
	assert.Equal(t, "petersen", first.Entry.Name)
	assert.Equal(t, 10, first.Entry.Order)
	assert.Equal(t, 15, first.Entry.Size)

	again, err := c.Add("petersen relabelled", certificate(t, builder.Petersen(), builder.RandomPermutation(10, 7)))
	require.NoError(t, err)
	assert.True(t, again.Duplicate)
	assert.Equal(t, "petersen", again.Entry.Name)
	assert.Equal(t, first.Entry.Hash, again.Entry.Hash)
	assert.True(t, first.Entry.Added.Equal(again.Entry.Added))

	other, err := c.Add("cycle", certificate(t, builder.Cycle(10), nil))
	require.NoError(t, err)
	assert.False(t, other.Duplicate)

	n, err := c.Count()
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLookup(t *testing.T) {
	c := openMemory(t)
	cert := certificate(t, builder.Wheel(6), nil)

	_, err := c.Lookup(cert)
	assert.ErrorIs(t, err, catalog.ErrNotFound)

	_, err = c.Add("wheel", cert)
	require.NoError(t, err)

	e, err := c.Lookup(certificate(t, builder.Wheel(6), builder.RandomPermutation(6, 3)))
	require.NoError(t, err)
	assert.Equal(t, "wheel", e.Name)

	e, err = c.LookupHash(cert.Hash())
	require.NoError(t, err)
	assert.Equal(t, "wheel", e.Name)

	_, err = c.LookupHash("deadbeef")
	assert.ErrorIs(t, err, catalog.ErrNotFound)
}

func TestEntries(t *testing.T) {
	c := openMemory(t)
	for _, k := range []int{3, 4, 5} {
		_, err := c.Add("cycle", certificate(t, builder.Cycle(k), nil))
		require.NoError(t, err)
	}

	var orders []int
	require.NoError(t, c.Entries(func(e catalog.Entry) bool {
		orders = append(orders, e.Order)
		return true
	}))
	assert.ElementsMatch(t, []int{3, 4, 5}, orders)

	seen := 0
	require.NoError(t, c.Entries(func(catalog.Entry) bool {
		seen++
		return false
	}))
	assert.Equal(t, 1, seen)
}

func TestPersistentReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "catalog")
	var logs bytes.Buffer
	cfg := catalog.DefaultConfig(dir)
	cfg.Logger = slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	c, err := catalog.Open(cfg)
	require.NoError(t, err)
	_, err = c.Add("k4", certificate(t, builder.Complete(4), nil))
	require.NoError(t, err)
	require.NoError(t, c.Compact(0.5))
	require.NoError(t, c.Close())
	assert.Contains(t, logs.String(), "catalog add")

	ro := cfg
	ro.ReadOnly = true
	c, err = catalog.Open(ro)
	require.NoError(t, err)
	defer c.Close()

	e, err := c.Lookup(certificate(t, builder.Complete(4), nil))
	require.NoError(t, err)
	assert.Equal(t, "k4", e.Name)
}

func TestClosedAndConfigErrors(t *testing.T) {
	_, err := catalog.Open(catalog.Config{})
	assert.ErrorIs(t, err, catalog.ErrConfig)
	_, err = catalog.Open(catalog.Config{InMemory: true, ReadOnly: true})
	assert.ErrorIs(t, err, catalog.ErrConfig)

	c, err := catalog.Open(catalog.InMemoryConfig())
	require.NoError(t, err)
	assert.ErrorIs(t, c.Compact(1.5), catalog.ErrConfig)
	assert.NoError(t, c.Compact(0.5))
	require.NoError(t, c.Close())
	require.NoError(t, c.Close())

	_, err = c.Add("x", automorphism.Certificate{})
	assert.ErrorIs(t, err, catalog.ErrClosed)
	_, err = c.Lookup(automorphism.Certificate{})
	assert.ErrorIs(t, err, catalog.ErrClosed)
	_, err = c.Count()
	assert.ErrorIs(t, err, catalog.ErrClosed)
	assert.ErrorIs(t, c.Entries(func(catalog.Entry) bool { return true }), catalog.ErrClosed)
}
