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

// Package tnuos resolves Transmission Network Use of System charging
// zones from coordinates and converts zonal tariffs to scores.
package tnuos

import (
	"github.com/gridwatt/siterank/params"
	"github.com/gridwatt/siterank/scoring"
)

// FindZone returns the first zone whose bounding box contains
// (lat, lon), or false when the point falls outside every zone.
func FindZone(lat, lon float64) (params.TNUoSZone, bool) {
	for _, z := range params.TNUoSZones {
		if lat >= z.MinLat && lat <= z.MaxLat && lon >= z.MinLon && lon <= z.MaxLon {
			return z, true
		}
	}
	return params.TNUoSZone{}, false
}

// ScoreFromTariff linearly rescales a tariff from
// [params.TNUoSTariffFloor, params.TNUoSTariffCeil] £/kW to [100, 0].
// Strictly decreasing; the endpoints map exactly to 100 and 0.
func ScoreFromTariff(tariff float64) float64 {
	n := (tariff - params.TNUoSTariffFloor) / (params.TNUoSTariffCeil - params.TNUoSTariffFloor)
	return scoring.Clamp100(100 * (1 - n))
}

// InjectWeight returns weights with the tariff component present: if
// the vector lacks params.KeyTNUoS, existing weights are scaled by
// (1 − params.TNUoSInjectedWeight) and the tariff key added at that
// weight; any non-unit sum is then normalized.
func InjectWeight(weights map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(weights)+1)
	if _, ok := weights[params.KeyTNUoS]; ok {
		for k, v := range weights {
			out[k] = v
		}
	} else {
		for k, v := range weights {
			out[k] = v * (1 - params.TNUoSInjectedWeight)
		}
		out[params.KeyTNUoS] = params.TNUoSInjectedWeight
	}
	norm, err := scoring.NormalizeWeights(out)
	if err != nil {
		return out
	}
	return norm
}
