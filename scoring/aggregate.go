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

package scoring

import "github.com/gridwatt/siterank/params"

// Aggregate is the weighted result for one site.
type Aggregate struct {
	Components    map[string]float64 `json:"component_scores"`
	Contributions map[string]float64 `json:"weighted_contributions"`
	Weights       map[string]float64 `json:"weights"`

	InternalScore float64 `json:"internal_total_score"` // [0, 100]
	Rating        float64 `json:"investment_rating"`    // [0.0, 10.0], one decimal
	Color         string  `json:"color_code"`
	Description   string  `json:"rating_description"`
}

// RatingFor maps a display rating to its legend bucket.
func RatingFor(rating float64) (color, description string) {
	for _, b := range params.RatingBuckets {
		if rating >= b.MinRating {
			return b.Color, b.Description
		}
	}
	last := params.RatingBuckets[len(params.RatingBuckets)-1]
	return last.Color, last.Description
}

// AggregateWeighted blends component scores under a normalized weight
// vector: weighted sum clamped to [0, 100], display rating one decimal
// of score/10, color and description from the legend. Components not
// named by the weights contribute nothing but stay visible in
// Components (rounded to 0.1).
func AggregateWeighted(components, weights map[string]float64) (*Aggregate, error) {
	norm, err := NormalizeWeights(weights)
	if err != nil {
		return nil, err
	}
	a := &Aggregate{
		Components:    make(map[string]float64, len(components)),
		Contributions: make(map[string]float64, len(norm)),
		Weights:       norm,
	}
	total := 0.0
	for k, w := range norm {
		contrib := components[k] * w
		a.Contributions[k] = Round1(contrib)
		total += contrib
	}
	for k, v := range components {
		a.Components[k] = Round1(v)
	}
	a.InternalScore = Clamp100(total)
	a.Rating = Round1(a.InternalScore / 10)
	a.Color, a.Description = RatingFor(a.Rating)
	return a, nil
}

// AggregatePersona blends component scores under a persona's weight
// vector.
func AggregatePersona(components map[string]float64, persona string) *Aggregate {
	a, err := AggregateWeighted(components, PersonaWeightVector(persona))
	if err != nil {
		// Persona tables are never empty; this is unreachable unless a
		// test override zeroes a whole table.
		panic(err)
	}
	return a
}

// AggregateCustom blends component scores under caller-supplied
// weights, accepting only the custom weight keys and renormalizing
// their sum to 1.0.
func AggregateCustom(components, weights map[string]float64) (*Aggregate, error) {
	filtered := make(map[string]float64, len(weights))
	for k, v := range weights {
		if params.CustomWeightKeys[k] {
			filtered[k] = v
		}
	}
	if len(filtered) == 0 {
		return nil, ErrZeroWeightSum
	}
	return AggregateWeighted(components, filtered)
}
