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
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridwatt/siterank/catalog"
	"github.com/gridwatt/siterank/params"
	"github.com/gridwatt/siterank/scoring"
)

// Engine runs the scoring pipeline: fetch, transform, proximity, score,
// sort, enrich, package. Safe for concurrent use; the catalog cache is
// the only shared mutable state.
type Engine struct {
	store catalog.Store
	cache *catalog.Cache
	log   *logrus.Logger
	now   func() time.Time
}

// NewEngine creates a scoring engine over a feature store. A ttl of 0
// uses params.DefaultCacheTTL for the catalog cache.
func NewEngine(store catalog.Store, ttl time.Duration, log *logrus.Logger) *Engine {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Engine{
		store: store,
		cache: catalog.NewCache(store, ttl, log),
		log:   log,
		now:   time.Now,
	}
}

// ProjectsRequest parametrizes ScoreProjects.
type ProjectsRequest struct {
	Persona     string
	Limit       int
	SourceTable string // renewable_projects (default) or tec_connections

	// CustomWeights, when non-empty, replaces the persona weight
	// vector. Keys may be frontend or backend names; the sum is
	// renormalized to 1.
	CustomWeights map[string]float64

	// EnrichTNUoS runs the top-25 tariff-zone enrichment pass.
	EnrichTNUoS bool

	// MaxPriceMWh, when non-nil, switches the price-sensitivity
	// component to savings-vs-overage mode for every site.
	MaxPriceMWh *float64
}

// ScoreProjects fetches up to Limit records from the source table,
// scores them, and returns a FeatureCollection sorted by investment
// rating descending (ties stable in input order). Store fetch failures
// are fatal; individual record failures are logged and skipped.
func (e *Engine) ScoreProjects(ctx context.Context, req ProjectsRequest) (*FeatureCollection, error) {
	start := e.now()

	res := scoring.ResolvePersona(req.Persona, params.DefaultSupplyPersona)
	weights, err := e.resolveWeights(res.Persona, req.CustomWeights)
	if err != nil {
		return nil, err
	}

	source := req.SourceTable
	if source == "" {
		source = catalog.CollectionRenewableProjects
	}
	recs, err := e.store.Fetch(ctx, source, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("siterank: fetching %s: %w", source, err)
	}

	sites := make([]Site, 0, len(recs))
	dropped := 0
	for _, rec := range recs {
		var s Site
		var ok bool
		if source == catalog.CollectionTECConnections {
			s, ok = SiteFromTECRecord(rec)
		} else {
			s, ok = SiteFromRecord(rec)
		}
		if !ok {
			dropped++
			continue
		}
		if req.MaxPriceMWh != nil {
			s.MaxPriceMWh = req.MaxPriceMWh
		}
		sites = append(sites, s)
	}
	if dropped > 0 {
		e.log.WithFields(logrus.Fields{"source": source, "dropped": dropped}).
			Debug("dropped records without finite coordinates")
	}

	features, err := e.scoreAll(ctx, sites, res.Persona, weights)
	if err != nil {
		return nil, err
	}
	sortByRating(features)

	if req.EnrichTNUoS {
		e.EnrichTopFeatures(features, weights)
	}

	md := &Metadata{
		ScoringSystem:         ScoringSystemPersona,
		Persona:               res.Persona,
		PersonaResolution:     res.Status,
		SourceTable:           source,
		TotalProcessed:        len(recs),
		ProjectsScored:        len(features),
		RecordsDropped:        dropped,
		ProcessingTimeSeconds: e.now().Sub(start).Seconds(),
		AlgorithmVersion:      params.AlgorithmVersion,
		RatingScale:           params.RatingScaleLegend,
	}
	if len(features) == 0 {
		md.Warning = "no projects with finite coordinates after filtering"
	}
	return NewFeatureCollection(features, md), nil
}

// SitesResponse is the outcome of ScoreSites.
type SitesResponse struct {
	Sites    []*Feature `json:"sites"`
	Metadata *Metadata  `json:"metadata"`
}

// ScoreSites validates and scores user-submitted sites. Validation is
// all-or-nothing: any invalid site rejects the request before scoring.
// Output preserves input order.
func (e *Engine) ScoreSites(ctx context.Context, sites []Site, persona string) (*SitesResponse, error) {
	start := e.now()
	for i := range sites {
		if err := sites[i].Validate(); err != nil {
			return nil, err
		}
	}
	res := scoring.ResolvePersona(persona, params.DefaultDemandPersona)
	weights := scoring.PersonaWeightVector(res.Persona)

	features, err := e.scoreAll(ctx, sites, res.Persona, weights)
	if err != nil {
		return nil, err
	}
	return &SitesResponse{
		Sites: features,
		Metadata: &Metadata{
			ScoringSystem:         ScoringSystemPersona,
			Persona:               res.Persona,
			PersonaResolution:     res.Status,
			TotalProcessed:        len(sites),
			ProjectsScored:        len(features),
			ProcessingTimeSeconds: e.now().Sub(start).Seconds(),
			AlgorithmVersion:      params.AlgorithmVersion,
			RatingScale:           params.RatingScaleLegend,
		},
	}, nil
}

// AnalysisCriteria are the optional knobs of PowerDeveloperAnalysis.
type AnalysisCriteria struct {
	CustomWeights map[string]float64 `json:"custom_weights,omitempty"`
	MaxPriceMWh   *float64           `json:"max_price_mwh,omitempty"`
}

// PowerDeveloperAnalysis scores projects for a power-developer persona
// with optional custom criteria and TNUoS enrichment.
func (e *Engine) PowerDeveloperAnalysis(ctx context.Context, criteria *AnalysisCriteria,
	persona string, limit int, sourceTable string) (*FeatureCollection, error) {
	req := ProjectsRequest{
		Persona:     persona,
		Limit:       limit,
		SourceTable: sourceTable,
		EnrichTNUoS: true,
	}
	if criteria != nil {
		req.CustomWeights = criteria.CustomWeights
		req.MaxPriceMWh = criteria.MaxPriceMWh
	}
	return e.ScoreProjects(ctx, req)
}

// resolveWeights returns the weight vector for a request: translated
// and renormalized custom weights when supplied, the persona vector
// otherwise.
func (e *Engine) resolveWeights(persona string, custom map[string]float64) (map[string]float64, error) {
	if len(custom) == 0 {
		return scoring.PersonaWeightVector(persona), nil
	}
	backend, err := scoring.TranslateFrontendWeights(custom)
	if err != nil {
		return nil, err
	}
	return scoring.NormalizeWeights(backend)
}

// scoreAll runs batch proximity against one catalog snapshot and scores
// every site in input order. Per-site scoring failures are logged and
// skipped.
func (e *Engine) scoreAll(ctx context.Context, sites []Site, persona string,
	weights map[string]float64) ([]*Feature, error) {
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

	features := make([]*Feature, 0, len(sites))
	for i := range sites {
		f, err := scoreOne(&sites[i], persona, weights, dists[i])
		if err != nil {
			e.log.WithError(err).WithField("site", sites[i].SiteName).
				Warn("skipping site that failed scoring")
			continue
		}
		features = append(features, f)
	}
	return features, nil
}

// scoreOne computes components and the weighted aggregate for one site
// and packages the GeoJSON feature.
func scoreOne(s *Site, persona string, weights map[string]float64,
	dist map[string]float64) (*Feature, error) {
	components := scoring.ComponentScores(s.scoringParams(), persona, dist)
	agg, err := scoring.AggregateWeighted(components, weights)
	if err != nil {
		return nil, err
	}
	prox := scoring.ProximityFromDistances(dist)
	return NewPointFeature(s.Latitude, s.Longitude, &FeatureProperties{
		SiteName:              s.SiteName,
		TechnologyType:        s.TechnologyType,
		CapacityMW:            s.CapacityMW,
		InvestmentRating:      agg.Rating,
		RatingDescription:     agg.Description,
		ColorCode:             agg.Color,
		ComponentScores:       agg.Components,
		WeightedContributions: agg.Contributions,
		Persona:               persona,
		PersonaWeights:        agg.Weights,
		InternalTotalScore:    agg.InternalScore,
		NearestInfrastructure: prox.NearestKm,
	})
}

// CatalogInfo loads (or reuses) the catalog snapshot and reports its
// per-layer feature counts and load time.
func (e *Engine) CatalogInfo(ctx context.Context) (map[string]int, time.Time, error) {
	cat, err := e.cache.Catalog(ctx)
	if err != nil {
		return nil, time.Time{}, err
	}
	return cat.LayerCounts(), cat.LoadedAt, nil
}

// sortByRating sorts descending by investment rating, stable with
// respect to input order.
func sortByRating(features []*Feature) {
	sort.SliceStable(features, func(i, j int) bool {
		return features[i].Properties.InvestmentRating > features[j].Properties.InvestmentRating
	})
}
