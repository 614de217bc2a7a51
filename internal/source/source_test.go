package source

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/canonlab/core"
)

func TestFormatOf(t *testing.T) {
	cases := map[string]Format{
		"a.mol":          FormatMolfile,
		"dir/B.SDF":      FormatSDF,
		"x.sd.gz":        FormatSDF,
		"graphs.yaml":    FormatGraphYAML,
		"graphs.yml.zst": FormatGraphYAML,
	}
	for name, want := range cases {
		got, err := FormatOf(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := FormatOf("notes.txt")
	assert.ErrorIs(t, err, ErrFormat)

	f, err := ParseFormat("graph-yaml")
	require.NoError(t, err)
	assert.Equal(t, "graph-yaml", f.String())
	_, err = ParseFormat("smiles")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestCompressedRoundTrip(t *testing.T) {
	payload := strings.Repeat("canonical labelling\n", 200)
	dir := t.TempDir()

	for _, name := range []string{"plain.sdf", "data.sdf.gz", "data.sdf.zst"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			w, err := Create(path)
			require.NoError(t, err)
			_, err = io.WriteString(w, payload)
			require.NoError(t, err)
			require.NoError(t, w.Close())

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			if name != "plain.sdf" {
				assert.Less(t, len(raw), len(payload), "output should be compressed")
			}

			r, err := Open(path)
			require.NoError(t, err)
			got, err := io.ReadAll(r)
			require.NoError(t, err)
			require.NoError(t, r.Close())
			assert.Equal(t, payload, string(got))
		})
	}
}

func TestNewReaderShortInput(t *testing.T) {
	r, err := NewReader(bytes.NewReader([]byte("ab")), nil)
	require.NoError(t, err)
	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "ab", string(got))
	assert.NoError(t, r.Close())

	_, err = Open(filepath.Join(t.TempDir(), "missing.mol"))
	assert.Error(t, err)
}

func TestGraphDocs(t *testing.T) {
	doc := `name: weighted path
weighted: true
vertices: [a, b, c]
edges:
  - {from: a, to: b, weight: 2}
  - {from: b, to: c}
---
name: triangle
edges:
  - {from: x, to: y}
  - {from: y, to: z}
  - {from: z, to: x}
`
	docs, err := ReadGraphs(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, docs, 2)

	g, err := docs[0].Graph()
	require.NoError(t, err)
	assert.True(t, g.Weighted())
	e, err := g.EdgeBetween("c", "b")
	require.NoError(t, err)
	assert.Equal(t, int64(1), e.Weight)

	tri, err := docs[1].Graph()
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y", "z"}, tri.Vertices())
	assert.Equal(t, 3, tri.EdgeCount())

	var buf bytes.Buffer
	require.NoError(t, WriteGraphs(&buf, []GraphDoc{DocFromGraph("tri", tri)}))
	back, err := ReadGraphs(&buf)
	require.NoError(t, err)
	require.Len(t, back, 1)
	assert.Equal(t, "tri", back[0].Name)
	assert.Len(t, back[0].Edges, 3)
}

func TestGraphDocErrors(t *testing.T) {
	_, err := ReadGraphs(strings.NewReader("name: x\ncolour: red\n"))
	assert.Error(t, err)

	loop := GraphDoc{Name: "loop", Edges: []EdgeDoc{{From: "a", To: "a"}}}
	_, err = loop.Graph()
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	badWeight := GraphDoc{Name: "w", Edges: []EdgeDoc{{From: "a", To: "b", Weight: 3}}}
	_, err = badWeight.Graph()
	assert.ErrorIs(t, err, core.ErrBadWeight)
}
