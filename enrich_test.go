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

package siterank

import (
	"math"
	"testing"

	"github.com/gridwatt/siterank/params"
	"github.com/gridwatt/siterank/scoring"
)

// enrichtestFeature builds a pre-scored feature for the enrichment pass.
func enrichTestFeature(t *testing.T, name string, lat, lon float64, weights map[string]float64) *Feature {
	t.Helper()
	components := map[string]float64{
		params.KeyCapacity:         70,
		params.KeyConnectionSpeed:  70,
		params.KeyResilience:       70,
		params.KeyLandPlanning:     70,
		params.KeyLatency:          70,
		params.KeyCooling:          70,
		params.KeyPriceSensitivity: 70,
	}
	agg, err := scoring.AggregateWeighted(components, weights)
	if err != nil {
		t.Fatal(err)
	}
	f, err := NewPointFeature(lat, lon, &FeatureProperties{
		SiteName:              name,
		ComponentScores:       agg.Components,
		WeightedContributions: agg.Contributions,
		PersonaWeights:        agg.Weights,
		InternalTotalScore:    agg.InternalScore,
		InvestmentRating:      agg.Rating,
		ColorCode:             agg.Color,
		RatingDescription:     agg.Description,
	})
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestEnrichTopFeatures(t *testing.T) {
	eng := testEngine(testStore())
	weights := scoring.PersonaWeightVector(params.PersonaGreenfield)

	features := []*Feature{
		enrichTestFeature(t, "highland", 58.0, -4.0, weights),
		enrichTestFeature(t, "atlantic", 45.0, -30.0, weights), // outside every zone
		enrichTestFeature(t, "london", 51.5, -0.1, weights),
	}
	eng.EnrichTopFeatures(features, weights)

	byName := make(map[string]*FeatureProperties)
	for _, f := range features {
		byName[f.Properties.SiteName] = f.Properties
	}

	highland := byName["highland"]
	if highland.TNUoSEnriched == nil || !*highland.TNUoSEnriched {
		t.Fatal("highland not enriched")
	}
	if highland.TNUoSZoneName == "" || highland.TNUoSTariff == nil {
		t.Errorf("highland zone fields missing: %+v", highland)
	}
	// All components equal 70, so the pre-enrichment rating was 7.0; a
	// low tariff score must pull the rating down.
	if *highland.RatingChange >= 0 {
		t.Errorf("highland rating change: want negative but have %g", *highland.RatingChange)
	}
	wantInternal := 0.9*70 + 0.1**highland.TNUoSScore
	if math.Abs(highland.InternalTotalScore-wantInternal) > 0.5 {
		t.Errorf("highland internal score: want ~%g but have %g",
			wantInternal, highland.InternalTotalScore)
	}

	// Outside every zone: marked unenriched, rating untouched, never
	// dropped.
	atlantic := byName["atlantic"]
	if atlantic == nil {
		t.Fatal("out-of-zone feature dropped")
	}
	if atlantic.TNUoSEnriched == nil || *atlantic.TNUoSEnriched {
		t.Error("out-of-zone feature marked enriched")
	}
	if atlantic.InvestmentRating != 7.0 {
		t.Errorf("out-of-zone rating changed: %g", atlantic.InvestmentRating)
	}

	// A cheap southern zone must beat the expensive northern one.
	london := byName["london"]
	if london.TNUoSEnriched == nil || !*london.TNUoSEnriched {
		t.Fatal("london not enriched")
	}
	if london.InvestmentRating <= highland.InvestmentRating {
		t.Errorf("london %g should outrank highland %g after enrichment",
			london.InvestmentRating, highland.InvestmentRating)
	}

	// The enriched head must be re-sorted by the new ratings.
	for i := 1; i < len(features); i++ {
		if features[i].Properties.InvestmentRating > features[i-1].Properties.InvestmentRating {
			t.Errorf("features not re-sorted at %d", i)
		}
	}
}

func TestEnrichTopFeaturesLimitsToTopK(t *testing.T) {
	eng := testEngine(testStore())
	weights := scoring.PersonaWeightVector(params.PersonaGreenfield)

	features := make([]*Feature, params.TNUoSTopK+5)
	for i := range features {
		features[i] = enrichTestFeature(t, "site", 52.0, -1.0, weights)
	}
	eng.EnrichTopFeatures(features, weights)

	enriched := 0
	for _, f := range features {
		if f.Properties.TNUoSEnriched != nil {
			enriched++
		}
	}
	if enriched != params.TNUoSTopK {
		t.Errorf("want %d features visited but have %d", params.TNUoSTopK, enriched)
	}
}
