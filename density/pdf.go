// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package density bridges continuous probability densities and the
// discrete distributions in package dist: grid discretization,
// adapters for externally supplied distributions (such as gonum's
// stat/distuv families), and kernel density estimation.
package density // import "github.com/probkit/probkit/density"

import (
	"gonum.org/v1/gonum/floats"

	"github.com/probkit/probkit/dist"
)

// A Pdf is a continuous probability density: a pure function that is
// never negative, plus support bounds. A density need not integrate
// to exactly 1 over its support.
type Pdf interface {
	// Density returns the value of the density at x.
	Density(x float64) float64

	// Bounds returns the support of the density. Unbounded sides
	// are reported as -Inf or +Inf. The total weight outside the
	// bounds should be approximately 0.
	Bounds() (low, high float64)
}

// FromFunc wraps a raw density function with explicit support bounds.
// Use -Inf and +Inf for unbounded sides.
func FromFunc(f func(x float64) float64, low, high float64) Pdf {
	return funcPdf{f: f, low: low, high: high}
}

type funcPdf struct {
	f         func(float64) float64
	low, high float64
}

func (p funcPdf) Density(x float64) float64 { return p.f(x) }
func (p funcPdf) Bounds() (float64, float64) { return p.low, p.high }

// Discretize evaluates pdf at each grid point and collects the
// (x, density) pairs into a Pmf. The result is unnormalized; callers
// normalize when they need probabilities. Grid spacing determines the
// discretization error; no correction is applied here.
func Discretize(pdf Pdf, grid []float64) (*dist.Pmf[float64], error) {
	return DiscretizeTo(dist.PmfMaker[float64]{}, pdf, grid)
}

// DiscretizeTo is Discretize with the result constructed through m,
// for callers that need a concrete distribution type other than a
// bare Pmf.
func DiscretizeTo[D any](m dist.Maker[float64, D], pdf Pdf, grid []float64) (D, error) {
	b := m.Builder()
	for _, x := range grid {
		b.Add(x, pdf.Density(x))
	}
	return b.Finalize()
}

// Grid returns n evenly spaced points spanning [lo, hi], suitable as
// a discretization grid. n must be at least 2.
func Grid(lo, hi float64, n int) []float64 {
	xs := make([]float64, n)
	floats.Span(xs, lo, hi)
	return xs
}
