// Package bfs declares options, sentinel errors and result types.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrStartVertexNotFound indicates the start vertex is not in the graph.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrGraphNil indicates a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures a traversal.
type Option func(*BFSOptions)

// BFSOptions holds hooks and limits. Use DefaultOptions and Option helpers.
type BFSOptions struct {
	// Ctx is polled before each dequeue.
	Ctx context.Context

	// OnVisit is called when a vertex is dequeued; a non-nil error aborts.
	OnVisit func(id string, depth int) error

	// MaxDepth limits exploration depth; 0 means unlimited.
	MaxDepth int

	// FilterNeighbor reports whether the edge curr→neighbor may be followed.
	FilterNeighbor func(curr, neighbor string) bool

	err error
}

// DefaultOptions returns no-op hooks, unlimited depth and a background context.
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnVisit:        func(string, int) error { return nil },
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets the cancellation context (nil is ignored).
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit sets the visit hook (nil is ignored).
func WithOnVisit(fn func(id string, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth limits the traversal depth; d<0 is recorded as ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor restricts which neighbors are followed (nil is ignored).
func WithFilterNeighbor(fn func(curr, neighbor string) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult is the outcome of one traversal.
type BFSResult struct {
	// Order is the visit sequence.
	Order []string
	// Depth maps each reached vertex to its distance from the start.
	Depth map[string]int
	// Parent maps each reached non-start vertex to its BFS-tree predecessor.
	Parent map[string]string
}

// PathTo reconstructs the start→dest path through Parent links.
func (r *BFSResult) PathTo(dest string) ([]string, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
