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
	"context"
	"fmt"
	"sort"

	"github.com/gridwatt/siterank/catalog"
	"github.com/gridwatt/siterank/params"
	"github.com/gridwatt/siterank/scoring"
	"github.com/gridwatt/siterank/topsis"
)

// ProjectComparison is the per-project row of CompareScoringSystems.
type ProjectComparison struct {
	SiteName         string  `json:"site_name"`
	PersonaRating    float64 `json:"persona_rating"`
	PersonaRank      int     `json:"persona_rank"`
	TOPSISCloseness  float64 `json:"topsis_closeness"`
	TOPSISRank       int     `json:"topsis_rank"`
	RankDifference   int     `json:"rank_difference"`
	InvestmentRating float64 `json:"investment_rating"`
}

// Comparison is the payload of CompareScoringSystems.
type Comparison struct {
	Projects []ProjectComparison `json:"projects"`
	Metadata *Metadata           `json:"metadata"`
}

// CompareScoringSystems scores up to limit projects under both the
// persona-weighted aggregator and TOPSIS and reports the per-project
// rank differences between the two systems.
func (e *Engine) CompareScoringSystems(ctx context.Context, limit int, persona string) (*Comparison, error) {
	start := e.now()
	res := scoring.ResolvePersona(persona, params.DefaultSupplyPersona)
	weights := scoring.PersonaWeightVector(res.Persona)

	recs, err := e.store.Fetch(ctx, catalog.CollectionRenewableProjects, limit)
	if err != nil {
		return nil, fmt.Errorf("siterank: fetching projects: %w", err)
	}
	var sites []Site
	for _, rec := range recs {
		if s, ok := SiteFromRecord(rec); ok {
			sites = append(sites, s)
		}
	}

	cat, err := e.cache.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("siterank: loading catalog: %w", err)
	}
	locs := make([]catalog.Location, len(sites))
	for i, s := range sites {
		locs[i] = catalog.Location{Lat: s.Latitude, Lon: s.Longitude}
	}
	dists, err := cat.BatchNearestDistances(ctx, locs)
	if err != nil {
		return nil, err
	}

	matrix := make([]map[string]float64, len(sites))
	rows := make([]ProjectComparison, len(sites))
	for i := range sites {
		components := scoring.ComponentScores(sites[i].scoringParams(), res.Persona, dists[i])
		matrix[i] = components
		agg, err := scoring.AggregateWeighted(components, weights)
		if err != nil {
			return nil, err
		}
		rows[i] = ProjectComparison{
			SiteName:         sites[i].SiteName,
			PersonaRating:    agg.Rating,
			InvestmentRating: agg.Rating,
		}
	}

	if len(sites) > 0 {
		tr, err := topsis.Rank(matrix, weights)
		if err != nil {
			return nil, err
		}
		for i := range rows {
			rows[i].TOPSISCloseness = tr.Sites[i].Closeness
		}
	}

	assignRanks(rows, func(r ProjectComparison) float64 { return r.PersonaRating },
		func(r *ProjectComparison, rank int) { r.PersonaRank = rank })
	assignRanks(rows, func(r ProjectComparison) float64 { return r.TOPSISCloseness },
		func(r *ProjectComparison, rank int) { r.TOPSISRank = rank })
	for i := range rows {
		rows[i].RankDifference = rows[i].PersonaRank - rows[i].TOPSISRank
	}

	return &Comparison{
		Projects: rows,
		Metadata: &Metadata{
			ScoringSystem:         ScoringSystemPersona + "_vs_" + ScoringSystemTOPSIS,
			Persona:               res.Persona,
			PersonaResolution:     res.Status,
			SourceTable:           catalog.CollectionRenewableProjects,
			TotalProcessed:        len(recs),
			ProjectsScored:        len(rows),
			ProcessingTimeSeconds: e.now().Sub(start).Seconds(),
			AlgorithmVersion:      params.AlgorithmVersion,
			RatingScale:           params.RatingScaleLegend,
		},
	}, nil
}

// assignRanks gives rank 1 to the highest value, stable in input order.
func assignRanks(rows []ProjectComparison, value func(ProjectComparison) float64,
	set func(*ProjectComparison, int)) {
	idx := make([]int, len(rows))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return value(rows[idx[a]]) > value(rows[idx[b]])
	})
	for rank, i := range idx {
		set(&rows[i], rank+1)
	}
}
