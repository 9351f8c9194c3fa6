// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

// A Suite couples a Pmf over hypotheses with a likelihood function
// and runs the sequential Bayesian update loop: each Update
// multiplies every hypothesis's mass by the likelihood of the
// observed evidence under that hypothesis, then renormalizes.
//
// A sequence of updates with independent evidence is order-invariant
// only if the likelihood function has no cross-evidence state. The
// Suite does not enforce this; it is a contract on the likelihood the
// caller supplies.
type Suite[H comparable, E any] struct {
	pmf  *Pmf[H]
	like func(ev E, hypo H) float64
}

// NewSuite returns a Suite over the given prior. The prior is
// normalized; NewSuite returns ErrZeroMass if it has zero total mass.
// The likelihood must return a non-negative value for every
// (evidence, hypothesis) pair.
func NewSuite[H comparable, E any](prior *Pmf[H], like func(ev E, hypo H) float64) (*Suite[H, E], error) {
	norm, err := prior.Normalize()
	if err != nil {
		return nil, err
	}
	return &Suite[H, E]{pmf: norm, like: like}, nil
}

// Update incorporates one observation and renormalizes. If the
// evidence has zero likelihood under every hypothesis, Update returns
// ErrZeroMass and leaves the Suite unchanged rather than silently
// producing an empty distribution: evidence inconsistent with every
// hypothesis is a modeling bug the caller must see.
func (s *Suite[H, E]) Update(ev E) error {
	post, err := s.pmf.Incorporate(func(h H) float64 { return s.like(ev, h) })
	if err != nil {
		return err
	}
	norm, err := post.Normalize()
	if err != nil {
		return err
	}
	s.pmf = norm
	return nil
}

// UpdateAll incorporates each observation in order. It stops at the
// first failing update, leaving the Suite at the state reached so
// far.
func (s *Suite[H, E]) UpdateAll(evs []E) error {
	for _, ev := range evs {
		if err := s.Update(ev); err != nil {
			return err
		}
	}
	return nil
}

// Posterior returns the current distribution over hypotheses. The
// returned Pmf is immutable and remains valid across later updates.
func (s *Suite[H, E]) Posterior() *Pmf[H] {
	return s.pmf
}

// Prob returns the current probability of hypothesis h.
func (s *Suite[H, E]) Prob(h H) float64 {
	return s.pmf.Prob(h)
}

// MAP returns the maximum a posteriori hypothesis and its
// probability.
func (s *Suite[H, E]) MAP() (H, float64, error) {
	return s.pmf.MaxProb()
}

// Maker returns a Maker whose distributions are Suites sharing s's
// likelihood function. Passing it to the generic transforms makes
// them Suite-preserving: mapping or filtering a Suite's posterior
// yields another Suite that can keep updating, not a bare Pmf.
func (s *Suite[H, E]) Maker() Maker[H, *Suite[H, E]] {
	return suiteMaker[H, E]{like: s.like}
}

type suiteMaker[H comparable, E any] struct {
	like func(ev E, hypo H) float64
}

func (m suiteMaker[H, E]) Empty() *Suite[H, E] {
	return &Suite[H, E]{pmf: PmfMaker[H]{}.Empty(), like: m.like}
}

func (m suiteMaker[H, E]) Builder() *Builder[H, *Suite[H, E]] {
	return newBuilder(func(mass map[H]float64) *Suite[H, E] {
		return &Suite[H, E]{pmf: newPmf(mass), like: m.like}
	})
}

func (m suiteMaker[H, E]) FromPairs(pairs []Pair[H]) (*Suite[H, E], error) {
	return makeFromPairs[H, *Suite[H, E]](m, pairs)
}
