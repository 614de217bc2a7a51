// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// errors.go: sentinel errors. Constructors wrap them with method context:
//
//	fmt.Errorf("%s: n=%d < min=%d: %w", method, n, min, ErrTooFewVertices)

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter below the family minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates p outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor without WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a construction that could not complete.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates an invalid parameter value (unknown variant, bad permutation).
var ErrOptionViolation = errors.New("builder: invalid option value")
