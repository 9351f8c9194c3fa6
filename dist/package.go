// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dist provides discrete probability distributions over
// arbitrary key types and the operations needed for Bayesian
// modeling: normalization, likelihood incorporation, convolution of
// independent variables, mixtures, cumulative queries, and a Suite
// type that runs the sequential Bayesian update loop.
//
// All distribution values are immutable; every transformation returns
// a new value. The only mutable entity is the Builder, which is
// scoped to a single construction.
package dist // import "github.com/probkit/probkit/dist"

import (
	"errors"
	"math"
)

var inf = math.Inf(1)
var nan = math.NaN()

var (
	// ErrInvalidWeight is returned when a negative weight or
	// likelihood is supplied. Construction fails atomically; no
	// partial distribution is produced.
	ErrInvalidWeight = errors.New("dist: negative weight")

	// ErrZeroMass is returned by Normalize, and by Suite updates,
	// when the total probability mass is zero. It is never
	// silently coerced to a default distribution, since masking a
	// zero-likelihood outcome would hide a modeling bug.
	ErrZeroMass = errors.New("dist: total probability mass is zero")

	// ErrEmptyDist is returned by percentile and sample queries on
	// an empty distribution.
	ErrEmptyDist = errors.New("dist: empty distribution")
)
