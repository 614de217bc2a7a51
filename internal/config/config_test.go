package config

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/canonlab/automorphism"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, automorphism.DefaultWorksize, cfg.Search.Worksize)
	assert.True(t, cfg.Search.DegreeFirst)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "canonlab.yaml")
	doc := `
search:
  worksize: 8
  sorted_neighbourhood: true
catalog:
  in_memory: true
log:
  level: debug
  format: json
metrics:
  file: /tmp/canonlab.prom
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, cfg.Search.Worksize)
	assert.True(t, cfg.Search.SortedNeighbourhood)
	assert.True(t, cfg.Search.DegreeFirst, "unset keys keep defaults")
	assert.True(t, cfg.Catalog.InMemory)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/canonlab.prom", cfg.Metrics.File)

	assert.Len(t, cfg.SearchOptions(), 3)
	cc := cfg.CatalogConfig(nil)
	assert.True(t, cc.InMemory)

	empty, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), empty)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestDecodeErrors(t *testing.T) {
	cases := map[string]string{
		"unknown key":  "search:\n  depth: 3\n",
		"worksize":     "search:\n  worksize: 0\n",
		"level":        "log:\n  level: loud\n",
		"format":       "log:\n  format: xml\n",
		"catalog path": "catalog:\n  path: \"\"\n",
		"bad yaml":     "search: [\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			assert.Error(t, Decode(strings.NewReader(doc), &cfg))
		})
	}

	cfg := Default()
	assert.ErrorIs(t, Decode(strings.NewReader("search:\n  worksize: -1\n"), &cfg), ErrInvalid)
}

func TestEmptyDocumentKeepsDefaults(t *testing.T) {
	cfg := Default()
	require.NoError(t, Decode(strings.NewReader(""), &cfg))
	assert.Equal(t, Default(), cfg)
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Search.ReverseDegree = true
	data, err := cfg.Marshal()
	require.NoError(t, err)

	back := Default()
	require.NoError(t, Decode(bytes.NewReader(data), &back))
	assert.Equal(t, cfg, back)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.Log = LogConfig{Level: "warn", Format: "json"}

	l, err := cfg.Logger(&buf)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown", slog.Int("n", 1))
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"msg":"shown"`)

	lvl, err := ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
	_, err = ParseLevel("trace")
	assert.ErrorIs(t, err, ErrInvalid)
}
