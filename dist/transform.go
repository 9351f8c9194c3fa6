// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// Map applies f to every key of p, summing the masses of colliding
// results. The normalization state is preserved: masses move, they
// are never rescaled, so mapping an unnormalized intermediate yields
// an unnormalized result. The result is constructed through m.
func Map[K, K2 comparable, D any](m Maker[K2, D], p *Pmf[K], f func(K) K2) (D, error) {
	b := m.Builder()
	p.Each(func(k K, mass float64) bool {
		b.Add(f(k), mass)
		return true
	})
	return b.Finalize()
}

// Filter returns the entries of p whose keys satisfy keep. Masses are
// not renormalized; callers normalize if they need probabilities.
func Filter[K comparable, D any](m Maker[K, D], p *Pmf[K], keep func(K) bool) (D, error) {
	b := m.Builder()
	p.Each(func(k K, mass float64) bool {
		if keep(k) {
			b.Add(k, mass)
		}
		return true
	})
	return b.Finalize()
}

// Combine returns the distribution of op(x, y) where x ~ a and y ~ b
// are independent: the mass at each value v is the sum of
// a.Prob(x)*b.Prob(y) over all (x, y) with op(x, y) = v.
//
// This is the general discrete convolution and costs O(|a|·|b|).
func Combine[K1, K2, K3 comparable, D any](m Maker[K3, D], a *Pmf[K1], b *Pmf[K2], op func(K1, K2) K3) (D, error) {
	bld := m.Builder()
	a.Each(func(ka K1, ma float64) bool {
		b.Each(func(kb K2, mb float64) bool {
			bld.Add(op(ka, kb), ma*mb)
			return true
		})
		return true
	})
	return bld.Finalize()
}

// Sum is Combine with addition: the distribution of x+y for
// independent x ~ a and y ~ b.
func Sum[K Number](a, b *Pmf[K]) (*Pmf[K], error) {
	return Combine[K, K, K](PmfMaker[K]{}, a, b, func(x, y K) K { return x + y })
}

// Mixture collapses a distribution over distributions into one
// distribution by the law of total probability: the mass at each key
// k is the sum over outer entries of outerMass · inner.Prob(k). Inner
// Pmfs with disjoint supports are fine; a key absent from an inner
// Pmf contributes zero mass.
func Mixture[K comparable, D any](m Maker[K, D], outer *Pmf[*Pmf[K]]) (D, error) {
	b := m.Builder()
	outer.Each(func(inner *Pmf[K], w float64) bool {
		inner.Each(func(k K, mass float64) bool {
			b.Add(k, w*mass)
			return true
		})
		return true
	})
	return b.Finalize()
}
