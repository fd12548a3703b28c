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
)

func TestDecay2(t *testing.T) {
	tests := []struct {
		d, half, want float64
	}{
		{0, 30, 100},
		{30, 30, 50},
		{60, 30, 25},
		{15, 15, 50},
		{200, 30, 0},  // hard zero at the cutoff
		{1000, 30, 0}, // and beyond
	}
	for _, test := range tests {
		if have := Decay2(test.d, test.half); math.Abs(have-test.want) > 1e-9 {
			t.Errorf("Decay2(%g, %g): want %g but have %g", test.d, test.half, test.want, have)
		}
	}
}

func TestDecay2Monotonic(t *testing.T) {
	prev := 101.0
	for d := 0.0; d < 200; d += 5 {
		s := Decay2(d, 30)
		if s >= prev {
			t.Fatalf("Decay2 not strictly decreasing at %g km: %g >= %g", d, s, prev)
		}
		prev = s
	}
}

func TestProximityFromDistances(t *testing.T) {
	p := ProximityFromDistances(map[string]float64{
		"substation": 30,
		"fiber":      15,
		"water":      0,
	})
	if math.Abs(p.SubstationScore-50) > 1e-9 {
		t.Errorf("substation: want 50 but have %g", p.SubstationScore)
	}
	if math.Abs(p.FiberScore-50) > 1e-9 {
		t.Errorf("fiber: want 50 but have %g", p.FiberScore)
	}
	if p.WaterScore != 100 {
		t.Errorf("water: want 100 but have %g", p.WaterScore)
	}
	if p.TransmissionScore != 0 || p.IXPScore != 0 {
		t.Errorf("missing layers should score zero: %+v", p)
	}
	wantTotal := p.SubstationScore + p.FiberScore + p.WaterScore
	if math.Abs(p.TotalProximityBonus-wantTotal) > 1e-9 {
		t.Errorf("total: want %g but have %g", wantTotal, p.TotalProximityBonus)
	}

	if _, ok := p.NearestKm["transmission_km"]; ok {
		t.Error("missing layer produced a nearest-distance entry")
	}
	if p.NearestKm["substation_km"] != 30 || p.NearestKm["water_km"] != 0 {
		t.Errorf("nearest distances wrong: %v", p.NearestKm)
	}
}

func TestProximityRoundsNearestToTenth(t *testing.T) {
	p := ProximityFromDistances(map[string]float64{"substation": 12.3456})
	if p.NearestKm["substation_km"] != 12.3 {
		t.Errorf("want 12.3 but have %g", p.NearestKm["substation_km"])
	}
}
