// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"cmp"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// A Cdf is the cumulative view of a Pmf over an ordered key space:
// keys in ascending order, each paired with the total mass at or
// before it, non-decreasing and ending at the source Pmf's total
// mass (1 for a normalized source).
//
// A Cdf is a read-only snapshot. It keeps no back-reference to the
// Pmf it came from; derive a fresh one if the source changes.
type Cdf[K cmp.Ordered] struct {
	keys []K
	cum  []float64
}

// NewCdf derives the cumulative view of p.
func NewCdf[K cmp.Ordered](p *Pmf[K]) *Cdf[K] {
	keys := SortedKeys(p)
	masses := make([]float64, len(keys))
	for i, k := range keys {
		masses[i] = p.Prob(k)
	}
	cum := make([]float64, len(masses))
	if len(masses) > 0 {
		floats.CumSum(cum, masses)
	}
	return &Cdf[K]{keys: keys, cum: cum}
}

// Len returns the number of keys in c.
func (c *Cdf[K]) Len() int {
	return len(c.keys)
}

// Each calls f for each (key, cumulative probability) entry in
// ascending key order until f returns false.
func (c *Cdf[K]) Each(f func(key K, cum float64) bool) {
	for i, k := range c.keys {
		if !f(k, c.cum[i]) {
			return
		}
	}
}

// Percentile returns the smallest key whose cumulative probability is
// at least p, for p in [0, 1]. A p that exceeds the total mass clamps
// to the largest key; on a Cdf derived from an unnormalized Pmf this
// means p is effectively interpreted against the total mass, so
// normalize first when p must mean a probability. It returns
// ErrEmptyDist on an empty Cdf.
func (c *Cdf[K]) Percentile(p float64) (K, error) {
	var zero K
	if len(c.keys) == 0 {
		return zero, ErrEmptyDist
	}
	i := sort.Search(len(c.cum), func(i int) bool { return c.cum[i] >= p })
	if i == len(c.cum) {
		// p exceeds the total mass, from round-off near p=1 or
		// an unnormalized source. Clamp to the largest key.
		i = len(c.cum) - 1
	}
	return c.keys[i], nil
}

// Prob returns the cumulative probability at or before key: 0 if key
// precedes every entry and the total mass if it follows every entry.
func (c *Cdf[K]) Prob(key K) float64 {
	i := sort.Search(len(c.keys), func(i int) bool { return c.keys[i] > key })
	if i == 0 {
		return 0
	}
	return c.cum[i-1]
}

// CredibleInterval returns the central interval containing the given
// probability mass: the (1-mass)/2 and (1+mass)/2 percentiles.
func (c *Cdf[K]) CredibleInterval(mass float64) (lo, hi K, err error) {
	tail := (1 - mass) / 2
	lo, err = c.Percentile(tail)
	if err != nil {
		return
	}
	hi, err = c.Percentile(1 - tail)
	return
}

// Sample maps a uniform random variate u in [0, 1) to a key by
// inverse-transform sampling. The caller supplies the random source;
// a Cdf holds no RNG state.
func (c *Cdf[K]) Sample(u float64) (K, error) {
	return c.Percentile(u)
}

// ToPmf recovers a Pmf from c by differencing adjacent cumulative
// values.
func (c *Cdf[K]) ToPmf() (*Pmf[K], error) {
	b := PmfMaker[K]{}.Builder()
	prev := 0.0
	for i, k := range c.keys {
		b.Add(k, c.cum[i]-prev)
		prev = c.cum[i]
	}
	return b.Finalize()
}
