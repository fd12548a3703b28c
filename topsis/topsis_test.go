/*
Copyright © 2025 the SiteRank authors.
This file is part of SiteRank.

SiteRank is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SiteRank is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SiteRank.  If not, see <http://www.gnu.org/licenses/>.
*/

package topsis

import (
	"errors"
	"math"
	"testing"
)

func TestRankDominance(t *testing.T) {
	// Site 0 dominates on every component, so it must take closeness 1.0
	// and site 2 (dominated on every component) closeness 0.
	matrix := []map[string]float64{
		{"a": 90, "b": 80, "c": 70},
		{"a": 50, "b": 50, "c": 50},
		{"a": 10, "b": 20, "c": 30},
	}
	weights := map[string]float64{"a": 0.5, "b": 0.3, "c": 0.2}

	res, err := Rank(matrix, weights)
	if err != nil {
		t.Fatal(err)
	}
	if res.Sites[0].Closeness != 1.0 {
		t.Errorf("dominant site: want closeness 1.0 but have %g", res.Sites[0].Closeness)
	}
	if res.Sites[2].Closeness != 0.0 {
		t.Errorf("dominated site: want closeness 0.0 but have %g", res.Sites[2].Closeness)
	}
	if res.Sites[1].Closeness <= res.Sites[2].Closeness ||
		res.Sites[1].Closeness >= res.Sites[0].Closeness {
		t.Errorf("middle site out of order: %g", res.Sites[1].Closeness)
	}
}

func TestRankClosenessBounded(t *testing.T) {
	matrix := []map[string]float64{
		{"a": 90, "b": 10},
		{"a": 10, "b": 90},
		{"a": 55, "b": 45},
	}
	res, err := Rank(matrix, map[string]float64{"a": 0.6, "b": 0.4})
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range res.Sites {
		if s.Closeness < 0 || s.Closeness > 1 {
			t.Errorf("site %d: closeness %g outside [0, 1]", i, s.Closeness)
		}
	}
}

func TestRankIdenticalSites(t *testing.T) {
	// All sites identical: every site is both ideal and anti-ideal; the
	// convention is closeness 1.0 for all.
	matrix := []map[string]float64{
		{"a": 50, "b": 50},
		{"a": 50, "b": 50},
	}
	res, err := Rank(matrix, map[string]float64{"a": 0.5, "b": 0.5})
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range res.Sites {
		if s.Closeness != 1.0 {
			t.Errorf("site %d: want closeness 1.0 but have %g", i, s.Closeness)
		}
	}
}

func TestRankZeroColumn(t *testing.T) {
	// A component that is zero everywhere must not divide by zero or
	// produce NaN.
	matrix := []map[string]float64{
		{"a": 80, "b": 0},
		{"a": 20, "b": 0},
	}
	res, err := Rank(matrix, map[string]float64{"a": 0.5, "b": 0.5})
	if err != nil {
		t.Fatal(err)
	}
	for i, s := range res.Sites {
		if math.IsNaN(s.Closeness) || math.IsInf(s.Closeness, 0) {
			t.Errorf("site %d: non-finite closeness %g", i, s.Closeness)
		}
	}
	if res.Sites[0].Closeness <= res.Sites[1].Closeness {
		t.Errorf("site with higher a should win: %g <= %g",
			res.Sites[0].Closeness, res.Sites[1].Closeness)
	}
}

func TestRankNormalization(t *testing.T) {
	matrix := []map[string]float64{
		{"a": 3},
		{"a": 4},
	}
	res, err := Rank(matrix, map[string]float64{"a": 1})
	if err != nil {
		t.Fatal(err)
	}
	// Vector normalization divides by sqrt(3² + 4²) = 5.
	if math.Abs(res.Sites[0].Normalized["a"]-0.6) > 1e-12 {
		t.Errorf("want 0.6 but have %g", res.Sites[0].Normalized["a"])
	}
	if math.Abs(res.Sites[1].Normalized["a"]-0.8) > 1e-12 {
		t.Errorf("want 0.8 but have %g", res.Sites[1].Normalized["a"])
	}
}

func TestRankEmptyMatrix(t *testing.T) {
	if _, err := Rank(nil, map[string]float64{"a": 1}); !errors.Is(err, ErrEmptyMatrix) {
		t.Errorf("want ErrEmptyMatrix but have %v", err)
	}
}
