// SPDX-License-Identifier: MIT
// Package: canonlab/builder
//
// config.go: resolved builder configuration.

package builder

import (
	"math/rand"
	"strconv"
)

// builderConfig is resolved once per BuildGraph call and passed by value.
type builderConfig struct {
	// idFn maps a 0-based index to a vertex ID.
	idFn IDFn
	// rng drives stochastic constructors; nil unless WithSeed/WithRand is used.
	rng *rand.Rand
	// weightFn yields the weight of each new edge in weighted graphs.
	weightFn WeightFn

	leftPrefix  string
	rightPrefix string
}

const (
	defaultLeftPrefix  = "L" // bipartite left side label
	defaultRightPrefix = "R" // bipartite right side label
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:        decimalID,
		weightFn:    DefaultWeightFn,
		leftPrefix:  defaultLeftPrefix,
		rightPrefix: defaultRightPrefix,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.leftPrefix == "" {
		cfg.leftPrefix = defaultLeftPrefix
	}
	if cfg.rightPrefix == "" {
		cfg.rightPrefix = defaultRightPrefix
	}

	return cfg
}

// edgeWeight returns the next weight for g: cfg.weightFn in weighted graphs, 0 otherwise.
func (c builderConfig) edgeWeight(weighted bool) int64 {
	if !weighted {
		return 0
	}

	return c.weightFn(c.rng)
}

func decimalID(i int) string {
	return strconv.Itoa(i)
}
