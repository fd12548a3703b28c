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

import (
	"math"
	"testing"

	"github.com/gridwatt/siterank/params"
)

func TestCapacityScoreMonotonic(t *testing.T) {
	prev := -1.0
	for mw := 1.0; mw <= 600; mw += 10 {
		s := CapacityScore(mw, params.PersonaHyperscaler)
		if s <= prev {
			t.Fatalf("capacity score not strictly increasing at %g MW: %g <= %g", mw, s, prev)
		}
		if s < 0 || s > 100 {
			t.Fatalf("capacity score out of range at %g MW: %g", mw, s)
		}
		prev = s
	}
}

func TestCapacityScoreAtIdeal(t *testing.T) {
	for persona, cp := range params.PersonaCapacity {
		if have := CapacityScore(cp.IdealMW, persona); math.Abs(have-50) > 1e-9 {
			t.Errorf("%s: score at ideal capacity: want 50 but have %g", persona, have)
		}
	}
}

func TestCapacityScorePersonaSensitivity(t *testing.T) {
	// A 3 MW site suits edge computing far better than a hyperscaler.
	edge := CapacityScore(3, params.PersonaEdge)
	hyper := CapacityScore(3, params.PersonaHyperscaler)
	if edge <= hyper {
		t.Errorf("3 MW: edge %g should beat hyperscaler %g", edge, hyper)
	}
}

func TestDevelopmentStageScore(t *testing.T) {
	tests := []struct {
		status string
		want   float64
	}{
		{"Application Submitted", 100},
		{"operational", 10},
		{"Operational (in commission)", 10}, // substring match
		{"decommissioned", 0},
		{"Under Construction", 20},
		{"no application required", 95},
		{"", params.DefaultStatusScore},
		{"some novel status", params.DefaultStatusScore},
	}
	for _, test := range tests {
		if have := DevelopmentStageScore(test.status); have != test.want {
			t.Errorf("%q: want %g but have %g", test.status, test.want, have)
		}
	}
}

func TestStatusLookupPrefersExactMatch(t *testing.T) {
	// "appeal refused" contains "refused" substrings of other rows only
	// via ordering; the exact row must win over any substring row.
	if have := DevelopmentStageScore("appeal refused"); have != 25 {
		t.Errorf("appeal refused: want 25 but have %g", have)
	}
	// Substring ordering: "application withdrawn pending appeal" hits
	// the first table row it contains.
	if have := DevelopmentStageScore("application withdrawn pending appeal"); have != 30 {
		t.Errorf("substring match: want 30 but have %g", have)
	}
}

func TestTechnologyScore(t *testing.T) {
	tests := []struct {
		tech string
		want float64
	}{
		{"Solar Photovoltaics", 80},
		{"Wind Onshore", 60},
		{"Battery", 80},
		{"CCGT", 100},
		{"Solar/Battery Hybrid", 100}, // hybrid checked first
		{"Tidal Stream", params.DefaultTechnologyScore},
	}
	for _, test := range tests {
		if have := TechnologyScore(test.tech); have != test.want {
			t.Errorf("%q: want %g but have %g", test.tech, test.want, have)
		}
	}
}

func TestGridInfraScore(t *testing.T) {
	// Both layers at zero distance saturate the score.
	if have := GridInfraScore(map[string]float64{"substation": 0, "transmission": 0}); have != 100 {
		t.Errorf("zero distances: want 100 but have %g", have)
	}
	// One missing layer halves the ceiling.
	have := GridInfraScore(map[string]float64{"substation": 0})
	if math.Abs(have-50) > 1e-9 {
		t.Errorf("substation only: want 50 but have %g", have)
	}
	if have := GridInfraScore(nil); have != 0 {
		t.Errorf("no layers: want 0 but have %g", have)
	}
	// Farther is never better.
	near := GridInfraScore(map[string]float64{"substation": 5, "transmission": 5})
	far := GridInfraScore(map[string]float64{"substation": 50, "transmission": 50})
	if far >= near {
		t.Errorf("distance monotonicity: far %g >= near %g", far, near)
	}
}

func TestWaterResourceScore(t *testing.T) {
	if have := WaterResourceScore(nil); have != 0 {
		t.Errorf("no water: want 0 but have %g", have)
	}
	want := 100 * math.Exp(-10.0/25)
	if have := WaterResourceScore(map[string]float64{"water": 10}); math.Abs(have-want) > 1e-9 {
		t.Errorf("10 km: want %g but have %g", want, have)
	}
}

func TestTNUoSProxyTariffRange(t *testing.T) {
	for lat := 45.0; lat <= 65; lat += 0.5 {
		tariff := TNUoSProxyTariff(lat)
		if tariff < params.TNUoSProxyMin || tariff > params.TNUoSProxyMax {
			t.Errorf("lat %g: tariff %g outside proxy range", lat, tariff)
		}
	}
	south := TNUoSProxyTariff(50.0)
	north := TNUoSProxyTariff(58.0)
	if north <= south {
		t.Errorf("tariff should rise with latitude: north %g <= south %g", north, south)
	}
	if s, n := TNUoSProxyScore(50.0), TNUoSProxyScore(58.0); n >= s {
		t.Errorf("score should fall with latitude: north %g >= south %g", n, s)
	}
}

func TestEstimateCapacityFactor(t *testing.T) {
	// Solar falls with latitude, wind rises.
	if s, n := EstimateCapacityFactor("Solar", 50, nil), EstimateCapacityFactor("Solar", 60, nil); n >= s {
		t.Errorf("solar CF should fall with latitude: %g >= %g", n, s)
	}
	if s, n := EstimateCapacityFactor("Wind Onshore", 50, nil), EstimateCapacityFactor("Wind Onshore", 60, nil); n <= s {
		t.Errorf("wind CF should rise with latitude: %g <= %g", n, s)
	}
	// Offshore wind matches before the generic wind band.
	if have := EstimateCapacityFactor("Wind Offshore", 55, nil); have != 45 {
		t.Errorf("offshore: want 45 but have %g", have)
	}
	// Overrides win and are clamped.
	over := 120.0
	if have := EstimateCapacityFactor("Solar", 55, &over); have != 95 {
		t.Errorf("override clamp high: want 95 but have %g", have)
	}
	under := 1.0
	if have := EstimateCapacityFactor("Solar", 55, &under); have != 5 {
		t.Errorf("override clamp low: want 5 but have %g", have)
	}
	if have := EstimateCapacityFactor("Tidal", 55, nil); have != params.DefaultCapacityFactor {
		t.Errorf("unknown technology: want default but have %g", have)
	}
}

func TestConnectionSpeedScore(t *testing.T) {
	// Advanced stage with adjacent grid saturates.
	best := ConnectionSpeedScore("application submitted", map[string]float64{
		"substation": 0, "transmission": 0,
	})
	if best != 100 {
		t.Errorf("best case: want 100 but have %g", best)
	}
	// No grid in range: only the stage term remains, and a default
	// status stays below 35.
	isolated := ConnectionSpeedScore("", nil)
	if isolated > 35 {
		t.Errorf("isolated default-status site: want <= 35 but have %g", isolated)
	}
	// An operational site with no grid in range scores near zero.
	wantOp := params.ConnSpeedStageWeight * ((10.0-20)/(95-20)*(100-15) + 15)
	if have := ConnectionSpeedScore("operational", nil); math.Abs(have-wantOp) > 1e-9 {
		t.Errorf("operational isolated: want %g but have %g", wantOp, have)
	}
}

func TestResilienceScore(t *testing.T) {
	// Everything adjacent: 4+3+3+2 tiers saturate the table.
	all := map[string]float64{"substation": 1, "transmission": 1, "fiber": 1, "ixp": 1}
	if have := ResilienceScore(all, "Solar"); have != 95 {
		t.Errorf("all layers adjacent: want 95 but have %g", have)
	}
	// Nothing in range: floor of the table.
	if have := ResilienceScore(nil, "Solar"); have != 25 {
		t.Errorf("no layers: want 25 but have %g", have)
	}
	// Battery storage adds two tiers over bare solar.
	some := map[string]float64{"substation": 40}
	solar := ResilienceScore(some, "Solar")
	battery := ResilienceScore(some, "Battery Storage")
	if battery <= solar {
		t.Errorf("battery bump missing: %g <= %g", battery, solar)
	}
}

func TestPriceSensitivityScoreDefaultMode(t *testing.T) {
	cheap := PriceSensitivityScore(SiteParams{Technology: "Wind Onshore", Latitude: 52})
	dear := PriceSensitivityScore(SiteParams{Technology: "Battery", Latitude: 52})
	if cheap <= dear {
		t.Errorf("wind %g should beat battery %g on price", cheap, dear)
	}
	for _, s := range []float64{cheap, dear} {
		if s < 0 || s > 100 {
			t.Errorf("price score out of range: %g", s)
		}
	}
}

func TestPriceSensitivityScoreWithCap(t *testing.T) {
	generous := 200.0
	tight := 10.0
	site := SiteParams{Technology: "Wind Onshore", Latitude: 52}

	site.MaxPriceMWh = &generous
	high := PriceSensitivityScore(site)
	if high < 50 {
		t.Errorf("generous cap: want >= 50 but have %g", high)
	}
	site.MaxPriceMWh = &tight
	low := PriceSensitivityScore(site)
	if low >= 50 {
		t.Errorf("tight cap: want < 50 but have %g", low)
	}
}

func TestComponentScoresComplete(t *testing.T) {
	p := SiteParams{
		Technology:        "Solar",
		CapacityMW:        150,
		Latitude:          51.5,
		DevelopmentStatus: "in planning",
	}
	dist := map[string]float64{"substation": 5, "transmission": 10, "fiber": 3, "ixp": 8, "water": 4}
	components := ComponentScores(p, params.PersonaHyperscaler, dist)
	wantKeys := []string{
		params.KeyCapacity, params.KeyConnectionSpeed, params.KeyResilience,
		params.KeyLandPlanning, params.KeyLatency, params.KeyCooling,
		params.KeyPriceSensitivity, params.KeyLCOE, params.KeyGridInfra,
		params.KeyTNUoS,
	}
	if len(components) != len(wantKeys) {
		t.Errorf("want %d components but have %d", len(wantKeys), len(components))
	}
	for _, k := range wantKeys {
		v, ok := components[k]
		if !ok {
			t.Errorf("missing component %s", k)
			continue
		}
		if v < 0 || v > 100 {
			t.Errorf("component %s out of range: %g", k, v)
		}
	}
}
