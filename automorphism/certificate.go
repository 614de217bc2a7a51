package automorphism

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strconv"
)

// CertEdge is an edge between two canonical positions (A < B).
type CertEdge struct {
	A    int `json:"a" yaml:"a"`
	B    int `json:"b" yaml:"b"`
	Rank int `json:"rank" yaml:"rank"`
}

// Certificate is the graph relabelled by its canonical numbering. Two graphs
// searched with the same options are isomorphic iff their certificates are
// equal.
type Certificate struct {
	Order  int        `json:"order" yaml:"order"`
	Labels []string   `json:"labels,omitempty" yaml:"labels,omitempty"`
	Edges  []CertEdge `json:"edges" yaml:"edges"`
}

// CanonicalForm builds the certificate of the last processed graph. label,
// when non-nil, names the vertex colour of original vertex v and is stored
// per canonical position; edge ranks are the caller's EdgeRank values.
func (s *Search) CanonicalForm(label func(v int) string) (Certificate, error) {
	if !s.canonical() {
		return Certificate{}, fmt.Errorf("%w: canonical form was not requested", ErrConfiguration)
	}
	order := s.CanonicalNumbering()
	if order == nil {
		return Certificate{}, fmt.Errorf("%w: no processed graph", ErrConfiguration)
	}

	pos := make([]int, s.n)
	for p, v := range order {
		pos[s.inv[v]] = p
	}
	c := Certificate{Order: s.n, Edges: make([]CertEdge, 0, len(s.ig.edges))}
	if label != nil {
		c.Labels = make([]string, s.n)
		for p, v := range order {
			c.Labels[p] = label(v)
		}
	}
	for e, uv := range s.ig.edges {
		a, b := pos[uv[0]], pos[uv[1]]
		if a > b {
			a, b = b, a
		}
		r := 0
		if s.ig.rawRank != nil {
			r = s.ig.rawRank[e]
		}
		c.Edges = append(c.Edges, CertEdge{A: a, B: b, Rank: r})
	}
	sort.Slice(c.Edges, func(i, j int) bool {
		ei, ej := c.Edges[i], c.Edges[j]
		if ei.A != ej.A {
			return ei.A < ej.A
		}
		return ei.B < ej.B
	})

	return c, nil
}

// Bytes is a deterministic text encoding of c.
func (c Certificate) Bytes() []byte {
	var buf bytes.Buffer
	buf.WriteString("n ")
	buf.WriteString(strconv.Itoa(c.Order))
	buf.WriteByte('\n')
	for i, l := range c.Labels {
		fmt.Fprintf(&buf, "v %d %q\n", i, l)
	}
	for _, e := range c.Edges {
		fmt.Fprintf(&buf, "e %d %d %d\n", e.A, e.B, e.Rank)
	}

	return buf.Bytes()
}

// Hash is the hex SHA-256 of Bytes.
func (c Certificate) Hash() string {
	sum := sha256.Sum256(c.Bytes())

	return hex.EncodeToString(sum[:])
}

// Equal reports whether c and o encode the same labelled graph.
func (c Certificate) Equal(o Certificate) bool {
	return bytes.Equal(c.Bytes(), o.Bytes())
}
