// Copyright 2026 The probkit Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dist

import (
	"math"
	"testing"
)

func TestMapCollision(t *testing.T) {
	p, err := FromPairs([]Pair[int]{{-1, 0.25}, {1, 0.25}, {2, 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	abs, err := Map[int, int](PmfMaker[int]{}, p, func(k int) int {
		if k < 0 {
			return -k
		}
		return k
	})
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.5, abs.Prob(1)) || !aeq(0.5, abs.Prob(2)) {
		t.Errorf("want colliding keys summed to {1:0.5, 2:0.5}, got {1:%v, 2:%v}",
			abs.Prob(1), abs.Prob(2))
	}
	if abs.Len() != 2 {
		t.Errorf("want 2 keys after collision, got %d", abs.Len())
	}
}

func TestMapPreservesNormalizationState(t *testing.T) {
	p, err := FromPairs([]Pair[int]{{1, 2}, {2, 3}})
	if err != nil {
		t.Fatal(err)
	}
	m, err := Map[int, float64](PmfMaker[float64]{}, p, func(k int) float64 { return float64(k) / 2 })
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(p.Total(), m.Total()) {
		t.Errorf("Map rescaled masses: total %v -> %v", p.Total(), m.Total())
	}
}

func TestFilterKeepsMasses(t *testing.T) {
	p, err := FromPairs([]Pair[int]{{1, 0.25}, {2, 0.25}, {3, 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	odd, err := Filter[int](PmfMaker[int]{}, p, func(k int) bool { return k%2 == 1 })
	if err != nil {
		t.Fatal(err)
	}
	if odd.Len() != 2 || !aeq(0.75, odd.Total()) {
		t.Errorf("want 2 keys with total 0.75, got %d keys with total %v", odd.Len(), odd.Total())
	}
	// Masses are not renormalized.
	if !aeq(0.25, odd.Prob(1)) || !aeq(0.5, odd.Prob(3)) {
		t.Errorf("Filter rescaled masses: {1:%v, 3:%v}", odd.Prob(1), odd.Prob(3))
	}
}

func TestCombineAddition(t *testing.T) {
	a, err := Uniform(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Uniform(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	sum, err := Sum(a, b)
	if err != nil {
		t.Fatal(err)
	}
	want := map[int]float64{2: 0.25, 3: 0.5, 4: 0.25}
	for k, w := range want {
		if got := sum.Prob(k); !aeq(w, got) {
			t.Errorf("sum mass at %d: want %v, got %v", k, w, got)
		}
	}
	if !aeq(1, sum.Total()) {
		t.Errorf("want total 1, got %v", sum.Total())
	}
}

func TestCombineDice(t *testing.T) {
	d6, err := Uniform(1, 2, 3, 4, 5, 6)
	if err != nil {
		t.Fatal(err)
	}
	two, err := Sum(d6, d6)
	if err != nil {
		t.Fatal(err)
	}
	// 2d6: the mode is 7 with probability 6/36.
	if got := two.Prob(7); !aeq(6.0/36, got) {
		t.Errorf("want P(7)=6/36 for 2d6, got %v", got)
	}
	if got := two.Prob(2); !aeq(1.0/36, got) {
		t.Errorf("want P(2)=1/36 for 2d6, got %v", got)
	}
	if got := Mean(two); !aeq(7, got) {
		t.Errorf("want mean 7 for 2d6, got %v", got)
	}
}

func TestCombineTypeChange(t *testing.T) {
	suits, err := Uniform("hearts", "spades")
	if err != nil {
		t.Fatal(err)
	}
	ranks, err := Uniform(1, 2)
	if err != nil {
		t.Fatal(err)
	}
	cards, err := Combine[string, int, string](PmfMaker[string]{}, suits, ranks,
		func(s string, r int) string {
			return s[:1] + string(rune('0'+r))
		})
	if err != nil {
		t.Fatal(err)
	}
	if cards.Len() != 4 || !aeq(0.25, cards.Prob("h1")) {
		t.Errorf("want 4 cards at 0.25 each, got %d keys with P(h1)=%v", cards.Len(), cards.Prob("h1"))
	}
}

func TestMixturePointMasses(t *testing.T) {
	inner1 := Point(1)
	inner3 := Point(3)
	outer, err := FromPairs([]Pair[*Pmf[int]]{{inner1, 0.5}, {inner3, 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	mix, err := Mixture[int](PmfMaker[int]{}, outer)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(0.5, mix.Prob(1)) || !aeq(0.5, mix.Prob(3)) {
		t.Errorf("want {1:0.5, 3:0.5}, got {1:%v, 3:%v}", mix.Prob(1), mix.Prob(3))
	}
	if mix.Prob(2) != 0 {
		t.Errorf("want zero mass at 2, got %v", mix.Prob(2))
	}
}

func TestMixtureDice(t *testing.T) {
	// A bag with a d4 and a d8, drawn with equal probability. The
	// inner supports are partially disjoint: 5..8 only come from
	// the d8.
	d4, err := Uniform(1, 2, 3, 4)
	if err != nil {
		t.Fatal(err)
	}
	d8, err := Uniform(1, 2, 3, 4, 5, 6, 7, 8)
	if err != nil {
		t.Fatal(err)
	}
	outer, err := FromPairs([]Pair[*Pmf[int]]{{d4, 0.5}, {d8, 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	mix, err := Mixture[int](PmfMaker[int]{}, outer)
	if err != nil {
		t.Fatal(err)
	}
	if got := mix.Prob(1); !aeq(0.5*0.25+0.5*0.125, got) {
		t.Errorf("want P(1)=0.1875, got %v", got)
	}
	if got := mix.Prob(6); !aeq(0.5*0.125, got) {
		t.Errorf("want P(6)=0.0625, got %v", got)
	}
	if !aeq(1, mix.Total()) {
		t.Errorf("want total 1, got %v", mix.Total())
	}
}

func TestMixtureWeightsInnerMass(t *testing.T) {
	// An unnormalized inner Pmf contributes its raw masses scaled
	// by the outer weight.
	inner, err := FromPairs([]Pair[int]{{1, 2}, {2, 2}})
	if err != nil {
		t.Fatal(err)
	}
	outer, err := FromPairs([]Pair[*Pmf[int]]{{inner, 0.5}})
	if err != nil {
		t.Fatal(err)
	}
	mix, err := Mixture[int](PmfMaker[int]{}, outer)
	if err != nil {
		t.Fatal(err)
	}
	if !aeq(1, mix.Prob(1)) || !aeq(2, mix.Total()) {
		t.Errorf("want {1:1} with total 2, got {1:%v} total %v", mix.Prob(1), mix.Total())
	}
	if math.IsNaN(mix.Total()) {
		t.Error("unexpected NaN total")
	}
}
