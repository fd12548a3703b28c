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

// Package topsis ranks sites with the Technique for Order of Preference
// by Similarity to Ideal Solution: component vectors are
// vector-normalized across sites, weighted, and scored by closeness to
// the ideal solution.
package topsis

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// denomGuard keeps normalization denominators finite when a component
// is zero across all sites.
const denomGuard = 1e-9

// SiteResult holds the TOPSIS outcome for one site.
type SiteResult struct {
	Normalized         map[string]float64 `json:"normalized"`
	WeightedNormalized map[string]float64 `json:"weighted_normalized"`
	DistIdeal          float64            `json:"distance_to_ideal"`
	DistAntiIdeal      float64            `json:"distance_to_anti_ideal"`
	Closeness          float64            `json:"closeness"`
}

// Result is the full TOPSIS decision matrix outcome.
type Result struct {
	Sites     []SiteResult       `json:"sites"`
	Ideal     map[string]float64 `json:"ideal"`
	AntiIdeal map[string]float64 `json:"anti_ideal"`
}

// ErrEmptyMatrix is returned when no site component vectors are given.
var ErrEmptyMatrix = errors.New("topsis: empty component matrix")

// Rank computes TOPSIS closeness coefficients for a matrix of component
// vectors (one map per site) under the given weights. Only keys present
// in weights participate. Higher closeness is better.
func Rank(matrix []map[string]float64, weights map[string]float64) (*Result, error) {
	if len(matrix) == 0 {
		return nil, ErrEmptyMatrix
	}

	keys := make([]string, 0, len(weights))
	for k := range weights {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	n := len(matrix)
	res := &Result{
		Sites:     make([]SiteResult, n),
		Ideal:     make(map[string]float64, len(keys)),
		AntiIdeal: make(map[string]float64, len(keys)),
	}
	for i := range res.Sites {
		res.Sites[i].Normalized = make(map[string]float64, len(keys))
		res.Sites[i].WeightedNormalized = make(map[string]float64, len(keys))
	}

	col := make([]float64, n)
	for _, k := range keys {
		for i, row := range matrix {
			col[i] = row[k]
		}
		denom := floats.Norm(col, 2)
		if denom < denomGuard {
			denom = denomGuard
		}
		ideal, anti := math.Inf(-1), math.Inf(1)
		for i := range col {
			norm := col[i] / denom
			weighted := norm * weights[k]
			res.Sites[i].Normalized[k] = norm
			res.Sites[i].WeightedNormalized[k] = weighted
			ideal = math.Max(ideal, weighted)
			anti = math.Min(anti, weighted)
		}
		res.Ideal[k] = ideal
		res.AntiIdeal[k] = anti
	}

	for i := range res.Sites {
		s := &res.Sites[i]
		dPlus, dMinus := 0.0, 0.0
		for _, k := range keys {
			dPlus += (s.WeightedNormalized[k] - res.Ideal[k]) * (s.WeightedNormalized[k] - res.Ideal[k])
			dMinus += (s.WeightedNormalized[k] - res.AntiIdeal[k]) * (s.WeightedNormalized[k] - res.AntiIdeal[k])
		}
		s.DistIdeal = math.Sqrt(dPlus)
		s.DistAntiIdeal = math.Sqrt(dMinus)
		switch {
		case s.DistIdeal == 0 && s.DistAntiIdeal == 0:
			s.Closeness = 1.0
		case s.DistIdeal+s.DistAntiIdeal == 0:
			s.Closeness = 0
		default:
			s.Closeness = s.DistAntiIdeal / (s.DistIdeal + s.DistAntiIdeal)
		}
	}
	return res, nil
}
