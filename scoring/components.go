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
	"strings"

	"github.com/gridwatt/siterank/params"
)

// SiteParams are the attributes of one site consumed by the component
// scorers.
type SiteParams struct {
	Technology        string
	CapacityMW        float64
	Latitude          float64
	DevelopmentStatus string

	// CapacityFactor, when non-nil, overrides the technology estimate
	// (percent, clamped to [5, 95]).
	CapacityFactor *float64

	// MaxPriceMWh, when non-nil, switches the price-sensitivity score
	// to savings-vs-overage mode.
	MaxPriceMWh *float64
}

// CapacityScore is the logistic capacity component, centered on the
// persona's ideal capacity. Strictly increasing in mw.
func CapacityScore(mw float64, persona string) float64 {
	cp, ok := params.PersonaCapacity[persona]
	if !ok {
		cp = params.DefaultCapacity
	}
	return Clamp100(100 / (1 + math.Exp(-params.CapacitySteepness*(mw-cp.IdealMW))))
}

// statusLookup matches status against an ordered table: exact
// (case-insensitive) match first, then substring match in declaration
// order.
func statusLookup(table []params.StatusScore, status string, def float64) float64 {
	s := strings.ToLower(strings.TrimSpace(status))
	if s == "" {
		return def
	}
	for _, e := range table {
		if s == e.Status {
			return e.Score
		}
	}
	for _, e := range table {
		if strings.Contains(s, e.Status) {
			return e.Score
		}
	}
	return def
}

// DevelopmentStageScore scores a development status. Operational sites
// score low: the point of the exercise is to intervene before
// commissioning, not to buy finished assets.
func DevelopmentStageScore(status string) float64 {
	return statusLookup(params.DevelopmentStatusTable, status, params.DefaultStatusScore)
}

// TechnologyScore scores a technology string by substring match.
func TechnologyScore(tech string) float64 {
	t := strings.ToLower(tech)
	for _, e := range params.TechnologyTable {
		if strings.Contains(t, e.Status) {
			return e.Score
		}
	}
	return params.DefaultTechnologyScore
}

// GridInfraScore aggregates substation and transmission proximity:
// 50·(e^(−d_sub/30) + e^(−d_trans/30)), using only layers with a
// nearest distance.
func GridInfraScore(dist map[string]float64) float64 {
	s := 0.0
	if d, ok := dist["substation"]; ok {
		s += 50 * math.Exp(-d/30)
	}
	if d, ok := dist["transmission"]; ok {
		s += 50 * math.Exp(-d/30)
	}
	return Clamp100(s)
}

// DigitalInfraScore aggregates fiber and IXP proximity:
// 50·(e^(−d_fiber/25) + e^(−d_ixp/25)).
func DigitalInfraScore(dist map[string]float64) float64 {
	s := 0.0
	if d, ok := dist["fiber"]; ok {
		s += 50 * math.Exp(-d/25)
	}
	if d, ok := dist["ixp"]; ok {
		s += 50 * math.Exp(-d/25)
	}
	return Clamp100(s)
}

// WaterResourceScore is 100·e^(−d_water/25), or zero when no water
// feature is in range.
func WaterResourceScore(dist map[string]float64) float64 {
	d, ok := dist["water"]
	if !ok {
		return 0
	}
	return Clamp100(100 * math.Exp(-d/25))
}

// LCOEStatusScore is the status-derived LCOE proxy.
func LCOEStatusScore(status string) float64 {
	return statusLookup(params.LCOEStatusTable, status, params.DefaultLCOEScore)
}

// TNUoSProxyTariff estimates the zonal tariff (£/kW) from latitude
// alone: tariffs rise roughly linearly from the south coast to the
// north of Scotland.
func TNUoSProxyTariff(lat float64) float64 {
	span := params.MaxLatitude - params.MinLatitude
	t := params.TNUoSProxyMin +
		(lat-params.MinLatitude)/span*(params.TNUoSProxyMax-params.TNUoSProxyMin)
	return math.Max(params.TNUoSProxyMin, math.Min(params.TNUoSProxyMax, t))
}

// TNUoSProxyScore maps the estimated tariff to a score; lower or
// negative tariffs score higher.
func TNUoSProxyScore(lat float64) float64 {
	t := TNUoSProxyTariff(lat)
	n := (t - params.TNUoSTariffFloor) / (params.TNUoSTariffCeil - params.TNUoSTariffFloor)
	return Clamp100(100 * (1 - n))
}

// EstimateCapacityFactor estimates the capacity factor (percent) for a
// technology at a latitude. A caller-provided override wins, clamped to
// [5, 95].
func EstimateCapacityFactor(tech string, lat float64, override *float64) float64 {
	if override != nil {
		return math.Max(5, math.Min(95, *override))
	}
	t := strings.ToLower(tech)
	for _, e := range params.CapacityFactorBands {
		if !strings.Contains(t, e.Tech) {
			continue
		}
		b := e.Band
		frac := (lat - b.MinLat) / (b.MaxLat - b.MinLat)
		frac = math.Max(0, math.Min(1, frac))
		return b.LowCF + frac*(b.HighCF-b.LowCF)
	}
	return params.DefaultCapacityFactor
}

// remapStage rescales a development-stage score from [20, 95] to
// [15, 100], clamped.
func remapStage(stage float64) float64 {
	v := (stage-20)/(95-20)*(100-15) + 15
	return Clamp100(v)
}

// ConnectionSpeedScore is the composite 0.5·remapped stage +
// 0.3·decay(substation) + 0.2·decay(transmission). Missing layers
// contribute zero decay.
func ConnectionSpeedScore(status string, dist map[string]float64) float64 {
	s := params.ConnSpeedStageWeight * remapStage(DevelopmentStageScore(status))
	if d, ok := dist["substation"]; ok {
		s += params.ConnSpeedSubstationWeight * Decay2(d, params.ConnSpeedSubstationHalfKm)
	}
	if d, ok := dist["transmission"]; ok {
		s += params.ConnSpeedTransmissionWeight * Decay2(d, params.ConnSpeedTransmissionHalfKm)
	}
	return Clamp100(s)
}

func tierCount(tiers []params.ResilienceTier, d float64) int {
	for _, t := range tiers {
		if d < t.WithinKm {
			return t.Tiers
		}
	}
	return 0
}

// ResilienceScore accumulates distance tiers across the four networked
// layers plus a technology bump, then maps the tier count to a score.
func ResilienceScore(dist map[string]float64, tech string) float64 {
	n := 0
	if d, ok := dist["substation"]; ok {
		n += tierCount(params.ResilienceSubstationTiers, d)
	}
	if d, ok := dist["transmission"]; ok {
		n += tierCount(params.ResilienceTransmissionTiers, d)
	}
	if d, ok := dist["fiber"]; ok {
		n += tierCount(params.ResilienceFiberTiers, d)
	}
	if d, ok := dist["ixp"]; ok {
		n += tierCount(params.ResilienceIXPTiers, d)
	}
	t := strings.ToLower(tech)
	if strings.Contains(t, "battery") || strings.Contains(t, "storage") {
		n += 2
	} else if strings.Contains(t, "gas") || strings.Contains(t, "diesel") {
		n += 1
	}
	table := params.ResilienceScoreByTiers
	if n >= len(table) {
		n = len(table) - 1
	}
	return table[n]
}

// PriceSensitivityScore estimates a delivered cost of energy and scores
// it. The baseline LCOE is adjusted by the ratio of the reference to
// the estimated capacity factor, then a TNUoS £/MWh impact derived from
// the latitude-proxy tariff is added. With a caller price cap, savings
// score above 50 and overage decays below 50; without one, the total
// maps linearly from [40, 100] £/MWh to [100, 0].
func PriceSensitivityScore(p SiteParams) float64 {
	base := params.DefaultPriceBaseline
	t := strings.ToLower(p.Technology)
	for _, e := range params.PriceBaselines {
		if strings.Contains(t, e.Tech) {
			base = e.Baseline
			break
		}
	}
	cf := EstimateCapacityFactor(p.Technology, p.Latitude, p.CapacityFactor)
	lcoe := base.LCOE * base.RefCF / cf

	// £/kW·yr divided by MWh/kW·yr (8760 h × CF, in MWh) gives £/MWh.
	mwhPerKW := 8.76 * cf / 100
	tnuosImpact := 0.0
	if mwhPerKW > 0 {
		tnuosImpact = TNUoSProxyTariff(p.Latitude) / mwhPerKW
	}
	total := lcoe + tnuosImpact

	if p.MaxPriceMWh != nil {
		savings := *p.MaxPriceMWh - total
		if savings >= 0 {
			return Clamp100(50 + 50*(1-math.Exp(-savings/params.PriceDecayScale)))
		}
		return Clamp100(50 * math.Exp(savings/params.PriceDecayScale))
	}
	frac := (total - params.PriceMapLow) / (params.PriceMapHigh - params.PriceMapLow)
	return Clamp100(100 * (1 - frac))
}

// ComponentScores computes the full component map for a site: the seven
// persona-weighted keys plus the always-reported LCOE, grid
// infrastructure, and TNUoS-proxy components.
func ComponentScores(p SiteParams, persona string, dist map[string]float64) map[string]float64 {
	return map[string]float64{
		params.KeyCapacity:         CapacityScore(p.CapacityMW, persona),
		params.KeyConnectionSpeed:  ConnectionSpeedScore(p.DevelopmentStatus, dist),
		params.KeyResilience:       ResilienceScore(dist, p.Technology),
		params.KeyLandPlanning:     DevelopmentStageScore(p.DevelopmentStatus),
		params.KeyLatency:          DigitalInfraScore(dist),
		params.KeyCooling:          WaterResourceScore(dist),
		params.KeyPriceSensitivity: PriceSensitivityScore(p),
		params.KeyLCOE:             LCOEStatusScore(p.DevelopmentStatus),
		params.KeyGridInfra:        GridInfraScore(dist),
		params.KeyTNUoS:            TNUoSProxyScore(p.Latitude),
	}
}
