// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"cmp"
	"fmt"
	"slices"
)

// A Pair is one weighted element of a distribution.
type Pair[K comparable] struct {
	Key    K
	Weight float64
}

// A Pmf is a probability mass function: a mapping from keys to
// non-negative mass. Keys are unique; building a Pmf from duplicate
// keys sums their weights.
//
// A Pmf is an immutable value. Operations like Incorporate and the
// generic transforms in this package return new Pmfs and leave the
// receiver untouched, so Pmfs may be shared freely across goroutines.
//
// After Normalize the masses sum to 1. Incorporate generally produces
// an unnormalized intermediate; callers must Normalize before
// treating masses as probabilities.
type Pmf[K comparable] struct {
	mass map[K]float64
}

func newPmf[K comparable](mass map[K]float64) *Pmf[K] {
	return &Pmf[K]{mass: mass}
}

// FromPairs builds a Pmf from weighted keys, summing the weights of
// duplicate keys. It returns ErrInvalidWeight if any weight is
// negative.
func FromPairs[K comparable](pairs []Pair[K]) (*Pmf[K], error) {
	return PmfMaker[K]{}.FromPairs(pairs)
}

// Point returns the distribution with all mass on key.
func Point[K comparable](key K) *Pmf[K] {
	return newPmf(map[K]float64{key: 1})
}

// Uniform returns a normalized Pmf with equal mass on each key. It
// returns ErrZeroMass if no keys are given.
func Uniform[K comparable](keys ...K) (*Pmf[K], error) {
	b := PmfMaker[K]{}.Builder()
	for _, k := range keys {
		b.Add(k, 1)
	}
	p, err := b.Finalize()
	if err != nil {
		return nil, err
	}
	return p.Normalize()
}

// Len returns the number of keys in p.
func (p *Pmf[K]) Len() int {
	return len(p.mass)
}

// Prob returns the mass at key, or 0 if key is absent. Absence means
// zero probability, not an error.
func (p *Pmf[K]) Prob(key K) float64 {
	return p.mass[key]
}

// Total returns the sum of all masses in p. This is 1 for a
// normalized Pmf.
func (p *Pmf[K]) Total() float64 {
	total := 0.0
	for _, m := range p.mass {
		total += m
	}
	return total
}

// Each calls f for each (key, mass) entry of p until f returns false.
// The order is unspecified; use Pairs for a deterministic order over
// ordered key types.
func (p *Pmf[K]) Each(f func(key K, mass float64) bool) {
	for k, m := range p.mass {
		if !f(k, m) {
			return
		}
	}
}

// Normalize returns a new Pmf with every mass divided by the total,
// so the result sums to 1. It returns ErrZeroMass if the total mass
// is 0.
func (p *Pmf[K]) Normalize() (*Pmf[K], error) {
	total := p.Total()
	if total == 0 {
		return nil, ErrZeroMass
	}
	mass := make(map[K]float64, len(p.mass))
	for k, m := range p.mass {
		mass[k] = m / total
	}
	return newPmf(mass), nil
}

// Incorporate multiplies the mass at each key by like(key). This is
// the Bayesian update primitive: the result is generally unnormalized
// and callers normalize afterward. It returns ErrInvalidWeight if
// like returns a negative value.
func (p *Pmf[K]) Incorporate(like func(K) float64) (*Pmf[K], error) {
	mass := make(map[K]float64, len(p.mass))
	for k, m := range p.mass {
		l := like(k)
		if l < 0 {
			return nil, fmt.Errorf("%w: likelihood %v at key %v", ErrInvalidWeight, l, k)
		}
		mass[k] = m * l
	}
	return newPmf(mass), nil
}

// MaxProb returns the key with the largest mass and that mass (the
// mode; for a Suite posterior, the MAP estimate). Ties are broken
// arbitrarily. It returns ErrEmptyDist if p has no keys.
func (p *Pmf[K]) MaxProb() (K, float64, error) {
	var best K
	if len(p.mass) == 0 {
		return best, 0, ErrEmptyDist
	}
	bestMass := -inf
	for k, m := range p.mass {
		if m > bestMass {
			best, bestMass = k, m
		}
	}
	return best, bestMass, nil
}

// SortedKeys returns p's keys in ascending order.
func SortedKeys[K cmp.Ordered](p *Pmf[K]) []K {
	keys := make([]K, 0, len(p.mass))
	for k := range p.mass {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Pairs returns p's entries in ascending key order. This is the
// iteration surface consumed by chart renderers and other external
// collaborators: a finite, restartable, ordered sequence of
// (key, mass) pairs.
func Pairs[K cmp.Ordered](p *Pmf[K]) []Pair[K] {
	keys := SortedKeys(p)
	pairs := make([]Pair[K], len(keys))
	for i, k := range keys {
		pairs[i] = Pair[K]{Key: k, Weight: p.mass[k]}
	}
	return pairs
}

// Number constrains the key types that have a meaningful mean and
// variance.
type Number interface {
	~int | ~int64 | ~float64
}

// Mean returns the mass-weighted mean of p's keys. Unnormalized
// masses are handled by dividing by the total, so Mean agrees before
// and after Normalize. It returns NaN for an empty or zero-mass
// distribution.
func Mean[K Number](p *Pmf[K]) float64 {
	total, sum := 0.0, 0.0
	p.Each(func(k K, m float64) bool {
		total += m
		sum += float64(k) * m
		return true
	})
	if total == 0 {
		return nan
	}
	return sum / total
}

// Variance returns the mass-weighted variance of p's keys, or NaN for
// an empty or zero-mass distribution.
func Variance[K Number](p *Pmf[K]) float64 {
	mu := Mean(p)
	total, sum := 0.0, 0.0
	p.Each(func(k K, m float64) bool {
		d := float64(k) - mu
		total += m
		sum += m * d * d
		return true
	})
	if total == 0 {
		return nan
	}
	return sum / total
}
