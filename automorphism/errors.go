package automorphism

import "errors"

var (
	// ErrGraphNil indicates a nil graph was passed to Process.
	ErrGraphNil = errors.New("automorphism: graph is nil")

	// ErrConfiguration indicates invalid or conflicting options, or a graph the
	// search cannot accept (self-loops, parallel edges, out-of-range endpoints).
	ErrConfiguration = errors.New("automorphism: invalid configuration")

	// ErrInternalInvariant indicates the search reached a state that a correct
	// implementation never produces.
	ErrInternalInvariant = errors.New("automorphism: internal invariant violated")

	// ErrCancelled indicates the context was cancelled during the search.
	ErrCancelled = errors.New("automorphism: search cancelled")
)
