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

// Package scoring converts site attributes and nearest-infrastructure
// distances into bounded [0, 100] component scores and aggregates them
// under persona or caller-supplied weight vectors.
package scoring

import (
	"math"

	"github.com/gridwatt/siterank/params"
)

// Clamp100 restricts v to [0, 100]. Every component score passes
// through it as the final step before rounding.
func Clamp100(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Decay2 is the half-distance exponential proximity score:
// 100·2^(−d/half), clamped to [0, 100] and forced to zero at or beyond
// params.ProximityZeroBeyondKm.
func Decay2(dKm, halfKm float64) float64 {
	if dKm >= params.ProximityZeroBeyondKm {
		return 0
	}
	return Clamp100(100 * math.Exp2(-dKm/halfKm))
}

// ProximityScores holds the per-layer proximity components of one site.
type ProximityScores struct {
	SubstationScore   float64 `json:"substation_score"`
	TransmissionScore float64 `json:"transmission_score"`
	FiberScore        float64 `json:"fiber_score"`
	IXPScore          float64 `json:"ixp_score"`
	WaterScore        float64 `json:"water_score"`

	TotalProximityBonus float64 `json:"total_proximity_bonus"`

	// NearestKm holds "<layer>_km" entries for layers that produced a
	// hit, rounded to 0.1 km.
	NearestKm map[string]float64 `json:"nearest_distances"`
}

// ProximityFromDistances converts a nearest-distance map (layer → km)
// into proximity component scores. Missing layers score zero and add no
// NearestKm entry.
func ProximityFromDistances(dist map[string]float64) *ProximityScores {
	p := &ProximityScores{NearestKm: make(map[string]float64, len(dist))}
	score := func(layer string) float64 {
		d, ok := dist[layer]
		if !ok {
			return 0
		}
		p.NearestKm[layer+"_km"] = Round1(d)
		return Decay2(d, params.ProximityHalfDistanceKm[layer])
	}
	p.SubstationScore = score("substation")
	p.TransmissionScore = score("transmission")
	p.FiberScore = score("fiber")
	p.IXPScore = score("ixp")
	p.WaterScore = score("water")
	p.TotalProximityBonus = p.SubstationScore + p.TransmissionScore +
		p.FiberScore + p.IXPScore + p.WaterScore
	return p
}
