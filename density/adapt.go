// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"github.com/probkit/probkit/dist"
)

// tailProb is the cumulative probability clamped off each side of a
// distribution's support when inferring finite bounds (0.01% per
// tail, so the effective support carries at least 99.98% of the
// mass).
const tailProb = 1e-4

// Continuous is the evaluation contract of an externally supplied
// continuous distribution. The distributions in
// gonum.org/v1/gonum/stat/distuv satisfy it.
type Continuous interface {
	// Prob returns the value of the probability density at x.
	Prob(x float64) float64

	// Quantile returns the inverse of the cumulative distribution
	// function at p.
	Quantile(p float64) float64
}

// FromContinuous adapts an external continuous distribution to the
// Pdf contract. The reported bounds cover all but the outer tailProb
// of each tail, which keeps them finite even for distributions with
// unbounded support.
func FromContinuous(d Continuous) Pdf {
	return continuousPdf{d}
}

type continuousPdf struct {
	d Continuous
}

func (c continuousPdf) Density(x float64) float64 {
	return c.d.Prob(x)
}

func (c continuousPdf) Bounds() (float64, float64) {
	return c.d.Quantile(tailProb), c.d.Quantile(1 - tailProb)
}

// Discrete is the evaluation contract of an externally supplied
// integer-valued distribution, such as distuv.Poisson or
// distuv.Binomial.
type Discrete interface {
	// Prob returns the probability mass at k.
	Prob(k float64) float64

	// CDF returns the cumulative probability at k.
	CDF(k float64) float64
}

// FromDiscrete collapses an external integer-valued distribution into
// a Pmf over ints. When the natural support is unbounded, the
// effective support is clamped to the values whose cumulative
// probability lies between tailProb and 1-tailProb; the clamped tail
// mass is dropped, so callers normalize the result. The support is
// assumed to start at or above 0, which holds for the distuv families
// this adapts.
func FromDiscrete(d Discrete) (*dist.Pmf[int], error) {
	lo := 0
	for d.CDF(float64(lo)) < tailProb {
		lo++
	}
	b := dist.PmfMaker[int]{}.Builder()
	for k := lo; ; k++ {
		b.Add(k, d.Prob(float64(k)))
		if d.CDF(float64(k)) >= 1-tailProb {
			break
		}
	}
	return b.Finalize()
}
