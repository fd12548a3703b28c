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
	"github.com/gridwatt/siterank/params"
	"github.com/gridwatt/siterank/scoring"
	"github.com/gridwatt/siterank/tnuos"
)

// EnrichTopFeatures reruns the weighted aggregation of the top-K
// features (by current rating) with a zone-resolved TNUoS tariff
// component injected into the weight vector, then re-sorts the enriched
// head. Features outside every zone, and features whose re-aggregation
// fails, are marked tnuos_enriched = false and never dropped. The input
// must already be sorted by rating descending.
func (e *Engine) EnrichTopFeatures(features []*Feature, weights map[string]float64) {
	k := params.TNUoSTopK
	if k > len(features) {
		k = len(features)
	}
	enrichedWeights := tnuos.InjectWeight(weights)

	for _, f := range features[:k] {
		enriched := e.enrichOne(f, enrichedWeights)
		f.Properties.TNUoSEnriched = &enriched
	}
	sortByRating(features[:k])
}

func (e *Engine) enrichOne(f *Feature, weights map[string]float64) bool {
	p := f.Properties
	zone, ok := tnuos.FindZone(p.Latitude, p.Longitude)
	if !ok {
		return false
	}
	score := tnuos.ScoreFromTariff(zone.Tariff)

	components := make(map[string]float64, len(p.ComponentScores)+1)
	for k, v := range p.ComponentScores {
		components[k] = v
	}
	components[params.KeyTNUoS] = score

	agg, err := scoring.AggregateWeighted(components, weights)
	if err != nil {
		e.log.WithError(err).WithField("site", p.SiteName).
			Warn("tnuos enrichment failed; keeping original rating")
		return false
	}

	oldRating := p.InvestmentRating
	change := scoring.Round1(agg.Rating - oldRating)

	p.TNUoSZoneID = zone.ID
	p.TNUoSZoneName = zone.Name
	p.TNUoSTariff = &zone.Tariff
	p.TNUoSScore = &score
	p.ComponentScores = agg.Components
	p.WeightedContributions = agg.Contributions
	p.PersonaWeights = agg.Weights
	p.InternalTotalScore = agg.InternalScore
	p.InvestmentRating = agg.Rating
	p.ColorCode = agg.Color
	p.RatingDescription = agg.Description
	p.RatingChange = &change
	return true
}
