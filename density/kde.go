// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package density

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// A KDE is a Gaussian kernel density estimate built from weighted
// samples: the density at x is the weight-averaged sum of a Gaussian
// kernel shifted to each sample.
//
// The zero value is an empty estimate ready for AddSample. A KDE is a
// single-owner resource: it must not be mutated by AddSample while
// another goroutine queries it.
type KDE struct {
	// Bandwidth is the kernel bandwidth. If zero, it defaults to
	// the largest sample magnitude divided by 10000, or 1 when
	// every sample is 0.
	Bandwidth float64

	xs, weights []float64
}

// FromSamples builds a KDE over xs with unit weights. A bandwidth of
// 0 selects the default.
func FromSamples(xs []float64, bandwidth float64) *KDE {
	k := &KDE{Bandwidth: bandwidth}
	for _, x := range xs {
		k.AddSample(x, 1)
	}
	return k
}

// AddSample accumulates one sample with the given weight. It panics
// if weight is negative.
func (k *KDE) AddSample(x, weight float64) {
	if weight < 0 {
		panic("density: negative sample weight")
	}
	k.xs = append(k.xs, x)
	k.weights = append(k.weights, weight)
}

func (k *KDE) bandwidth() float64 {
	if k.Bandwidth != 0 {
		return k.Bandwidth
	}
	if len(k.xs) == 0 {
		return 1
	}
	// The bandwidth must be positive, so scale from the largest
	// sample magnitude rather than the (possibly negative) max.
	h := math.Max(math.Abs(floats.Max(k.xs)), math.Abs(floats.Min(k.xs))) / 10000
	if h == 0 {
		return 1
	}
	return h
}

// QueryDensity returns the estimated density at x. It is 0 for an
// estimate with no samples or zero total weight.
func (k *KDE) QueryDensity(x float64) float64 {
	total := floats.Sum(k.weights)
	if total == 0 {
		return 0
	}
	// Evaluating kernels shifted to each sample at x is the same
	// as evaluating one unshifted kernel at (x - xi) / h.
	h := k.bandwidth()
	sum := 0.0
	for i, xi := range k.xs {
		sum += k.weights[i] * distuv.UnitNormal.Prob((x-xi)/h)
	}
	return sum / (h * total)
}

// Density implements Pdf.
func (k *KDE) Density(x float64) float64 {
	return k.QueryDensity(x)
}

// Bounds returns the sample range padded by three bandwidths, which
// carries essentially all of a Gaussian kernel's weight.
func (k *KDE) Bounds() (float64, float64) {
	if len(k.xs) == 0 {
		return -1, 1
	}
	lo, hi := floats.Min(k.xs), floats.Max(k.xs)
	if lo == hi {
		lo, hi = lo-1, hi+1
	}
	h := k.bandwidth()
	return lo - 3*h, hi + 3*h
}
