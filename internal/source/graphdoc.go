package source

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/canonlab/core"
)

// GraphDoc is the YAML form of an undirected graph:
//
//	name: triangle
//	weighted: true
//	vertices: [a, b, c]
//	edges:
//	  - {from: a, to: b, weight: 2}
//	  - {from: b, to: c}
//
// Vertices named only by edges are added implicitly.
type GraphDoc struct {
	Name     string    `yaml:"name"`
	Weighted bool      `yaml:"weighted,omitempty"`
	Vertices []string  `yaml:"vertices,omitempty"`
	Edges    []EdgeDoc `yaml:"edges"`
}

// EdgeDoc is one edge of a GraphDoc.
type EdgeDoc struct {
	From   string `yaml:"from"`
	To     string `yaml:"to"`
	Weight int64  `yaml:"weight,omitempty"`
}

// ReadGraphs decodes every YAML document in r.
func ReadGraphs(r io.Reader) ([]GraphDoc, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var docs []GraphDoc
	for {
		var d GraphDoc
		err := dec.Decode(&d)
		if errors.Is(err, io.EOF) {
			return docs, nil
		}
		if err != nil {
			return docs, fmt.Errorf("graph document %d: %w", len(docs)+1, err)
		}
		docs = append(docs, d)
	}
}

// Graph builds the core graph described by d.
func (d GraphDoc) Graph() (*core.Graph, error) {
	var opts []core.GraphOption
	if d.Weighted {
		opts = append(opts, core.WithWeighted())
	}
	g := core.NewGraph(opts...)
	for _, v := range d.Vertices {
		if err := g.AddVertex(v); err != nil {
			return nil, fmt.Errorf("graph %q: vertex %q: %w", d.Name, v, err)
		}
	}
	for i, e := range d.Edges {
		w := e.Weight
		if d.Weighted && w == 0 {
			w = 1
		}
		if _, err := g.AddEdge(e.From, e.To, w); err != nil {
			return nil, fmt.Errorf("graph %q: edge %d (%s-%s): %w", d.Name, i, e.From, e.To, err)
		}
	}

	return g, nil
}

// DocFromGraph converts g back to a GraphDoc.
func DocFromGraph(name string, g *core.Graph) GraphDoc {
	d := GraphDoc{Name: name, Weighted: g.Weighted(), Vertices: g.Vertices()}
	for _, e := range g.Edges() {
		d.Edges = append(d.Edges, EdgeDoc{From: e.From, To: e.To, Weight: e.Weight})
	}

	return d
}

// WriteGraphs encodes docs as a YAML stream.
func WriteGraphs(w io.Writer, docs []GraphDoc) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	for _, d := range docs {
		if err := enc.Encode(d); err != nil {
			return fmt.Errorf("encode graph %q: %w", d.Name, err)
		}
	}

	return enc.Close()
}
