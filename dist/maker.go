// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import "fmt"

// A Maker constructs concrete distribution values of type D over keys
// of type K. The generic transforms in this package (Map, Filter,
// Combine, Mixture) never instantiate results directly; they route
// all construction through a Maker, so the result has the caller's
// concrete type rather than a bare Pmf. For example, a Suite's Maker
// yields Suites that carry the Suite's likelihood function.
//
// This separates what operation to perform, defined once per
// transform, from how to instantiate the result, defined once per
// distribution type.
type Maker[K comparable, D any] interface {
	// Empty returns the zero-element distribution.
	Empty() D

	// Builder returns a fresh accumulator seeded from Empty.
	Builder() *Builder[K, D]

	// FromPairs seeds a Builder, adds every pair, and finalizes.
	FromPairs(pairs []Pair[K]) (D, error)
}

// A Builder accumulates weighted keys and snapshots them into an
// immutable distribution. Duplicate keys sum their weights.
//
// A Builder is scoped to a single construction. It is not safe for
// concurrent use, and Finalize poisons it: further Adds panic.
type Builder[K comparable, D any] struct {
	mass     map[K]float64
	err      error
	done     bool
	finalize func(mass map[K]float64) D
}

func newBuilder[K comparable, D any](finalize func(map[K]float64) D) *Builder[K, D] {
	return &Builder[K, D]{mass: make(map[K]float64), finalize: finalize}
}

// Add accumulates weight at key. A negative weight records
// ErrInvalidWeight; the error surfaces from Finalize and the whole
// construction fails, so no partial distribution escapes.
func (b *Builder[K, D]) Add(key K, weight float64) {
	if b.done {
		panic("dist: Add after Finalize")
	}
	if weight < 0 {
		if b.err == nil {
			b.err = fmt.Errorf("%w: %v at key %v", ErrInvalidWeight, weight, key)
		}
		return
	}
	b.mass[key] += weight
}

// Finalize snapshots the accumulated weights into an immutable
// distribution and retires the Builder.
func (b *Builder[K, D]) Finalize() (D, error) {
	if b.done {
		panic("dist: Finalize called twice")
	}
	b.done = true
	if b.err != nil {
		var zero D
		return zero, b.err
	}
	return b.finalize(b.mass), nil
}

func makeFromPairs[K comparable, D any](m Maker[K, D], pairs []Pair[K]) (D, error) {
	b := m.Builder()
	for _, pr := range pairs {
		b.Add(pr.Key, pr.Weight)
	}
	return b.Finalize()
}

// PmfMaker builds bare Pmf values. It is the Maker to use when no
// richer distribution type is in play.
type PmfMaker[K comparable] struct{}

func (PmfMaker[K]) Empty() *Pmf[K] {
	return newPmf(make(map[K]float64))
}

func (PmfMaker[K]) Builder() *Builder[K, *Pmf[K]] {
	return newBuilder(newPmf[K])
}

func (m PmfMaker[K]) FromPairs(pairs []Pair[K]) (*Pmf[K], error) {
	return makeFromPairs[K, *Pmf[K]](m, pairs)
}
