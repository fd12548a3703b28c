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

package params

import (
	"math"
	"testing"
)

func TestPersonaWeightsSumToOne(t *testing.T) {
	for persona, weights := range PersonaWeights {
		sum := 0.0
		for _, w := range weights {
			sum += w
		}
		if math.Abs(sum-1) > 1e-6 {
			t.Errorf("%s: weights sum to %g, want 1", persona, sum)
		}
	}
}

func TestPersonaWeightsCoverSevenKeys(t *testing.T) {
	keys := []string{
		KeyCapacity, KeyConnectionSpeed, KeyResilience, KeyLandPlanning,
		KeyLatency, KeyCooling, KeyPriceSensitivity,
	}
	for persona, weights := range PersonaWeights {
		if len(weights) != len(keys) {
			t.Errorf("%s: want %d weight keys but have %d", persona, len(keys), len(weights))
		}
		for _, k := range keys {
			if _, ok := weights[k]; !ok {
				t.Errorf("%s: missing weight for %s", persona, k)
			}
		}
	}
}

func TestDevelopmentStatusTableSize(t *testing.T) {
	if len(DevelopmentStatusTable) != 18 {
		t.Errorf("want 18 status entries but have %d", len(DevelopmentStatusTable))
	}
}

func TestTNUoSZoneTable(t *testing.T) {
	if len(TNUoSZones) != 27 {
		t.Errorf("want 27 zones but have %d", len(TNUoSZones))
	}
	for _, z := range TNUoSZones {
		if z.MinLat >= z.MaxLat || z.MinLon >= z.MaxLon {
			t.Errorf("zone %d (%s): degenerate bounding box", z.ID, z.Name)
		}
		if z.Tariff < TNUoSTariffFloor || z.Tariff > TNUoSTariffCeil {
			t.Errorf("zone %d (%s): tariff %g outside [%g, %g]",
				z.ID, z.Name, z.Tariff, TNUoSTariffFloor, TNUoSTariffCeil)
		}
	}
}

func TestRatingBucketsDescending(t *testing.T) {
	for i := 1; i < len(RatingBuckets); i++ {
		if RatingBuckets[i].MinRating >= RatingBuckets[i-1].MinRating {
			t.Errorf("bucket %d out of order", i)
		}
	}
}
