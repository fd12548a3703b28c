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

package tnuos

import (
	"math"
	"testing"

	"github.com/gridwatt/siterank/params"
)

func TestFindZone(t *testing.T) {
	// The north of Scotland carries the highest generation tariffs.
	z, ok := FindZone(58.0, -4.0)
	if !ok {
		t.Fatal("no zone found for the north of Scotland")
	}
	if z.Tariff < 10 {
		t.Errorf("north Scotland tariff: want > 10 but have %g", z.Tariff)
	}

	// London sits in a low or negative tariff zone.
	lz, ok := FindZone(51.5, -0.1)
	if !ok {
		t.Fatal("no zone found for London")
	}
	if lz.Tariff >= z.Tariff {
		t.Errorf("London tariff %g should be below north Scotland %g", lz.Tariff, z.Tariff)
	}

	// Mid-Atlantic is outside every zone.
	if _, ok := FindZone(45.0, -30.0); ok {
		t.Error("zone found far outside Great Britain")
	}
}

func TestScoreFromTariff(t *testing.T) {
	if have := ScoreFromTariff(params.TNUoSTariffFloor); have != 100 {
		t.Errorf("floor tariff: want 100 but have %g", have)
	}
	if have := ScoreFromTariff(params.TNUoSTariffCeil); have != 0 {
		t.Errorf("ceiling tariff: want 0 but have %g", have)
	}
	prev := 101.0
	for tariff := params.TNUoSTariffFloor; tariff <= params.TNUoSTariffCeil; tariff++ {
		s := ScoreFromTariff(tariff)
		if s >= prev {
			t.Fatalf("score not strictly decreasing at tariff %g: %g >= %g", tariff, s, prev)
		}
		prev = s
	}
	// A high north-Scotland tariff lands in the bottom of the scale.
	if have := ScoreFromTariff(15.27); have > 5 {
		t.Errorf("tariff 15.27: want <= 5 but have %g", have)
	}
}

func TestInjectWeight(t *testing.T) {
	weights := map[string]float64{"a": 0.6, "b": 0.4}
	out := InjectWeight(weights)

	if math.Abs(out[params.KeyTNUoS]-params.TNUoSInjectedWeight) > 1e-9 {
		t.Errorf("injected weight: want %g but have %g",
			params.TNUoSInjectedWeight, out[params.KeyTNUoS])
	}
	if math.Abs(out["a"]-0.54) > 1e-9 || math.Abs(out["b"]-0.36) > 1e-9 {
		t.Errorf("existing weights not scaled: %v", out)
	}
	sum := 0.0
	for _, v := range out {
		sum += v
	}
	if math.Abs(sum-1) > 1e-9 {
		t.Errorf("weights sum to %g, want 1", sum)
	}
	// The input map must not be mutated.
	if weights["a"] != 0.6 || len(weights) != 2 {
		t.Errorf("input weights mutated: %v", weights)
	}
}

func TestInjectWeightIdempotent(t *testing.T) {
	once := InjectWeight(map[string]float64{"a": 0.9, params.KeyTNUoS: 0.1})
	if math.Abs(once[params.KeyTNUoS]-0.1) > 1e-9 {
		t.Errorf("existing tariff weight rescaled: %v", once)
	}
}
