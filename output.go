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
	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/geojson"
)

// Scoring system identifiers used in response metadata.
const (
	ScoringSystemPersona = "persona_weighted"
	ScoringSystemTOPSIS  = "topsis"
)

// FeatureProperties carries the scoring outcome of one site.
type FeatureProperties struct {
	SiteName       string  `json:"site_name,omitempty"`
	TechnologyType string  `json:"technology_type,omitempty"`
	CapacityMW     float64 `json:"capacity_mw,omitempty"`
	Latitude       float64 `json:"latitude"`
	Longitude      float64 `json:"longitude"`

	InvestmentRating  float64 `json:"investment_rating"`
	RatingDescription string  `json:"rating_description"`
	ColorCode         string  `json:"color_code"`

	ComponentScores       map[string]float64 `json:"component_scores"`
	WeightedContributions map[string]float64 `json:"weighted_contributions"`
	Persona               string             `json:"persona"`
	PersonaWeights        map[string]float64 `json:"persona_weights"`
	InternalTotalScore    float64            `json:"internal_total_score"`
	NearestInfrastructure map[string]float64 `json:"nearest_infrastructure"`

	TNUoSZoneID   int      `json:"tnuos_zone_id,omitempty"`
	TNUoSZoneName string   `json:"tnuos_zone_name,omitempty"`
	TNUoSTariff   *float64 `json:"tnuos_tariff_pounds_per_kw,omitempty"`
	TNUoSScore    *float64 `json:"tnuos_score,omitempty"`
	TNUoSEnriched *bool    `json:"tnuos_enriched,omitempty"`
	RatingChange  *float64 `json:"rating_change,omitempty"`
}

// Feature is one scored site as a GeoJSON Feature with point geometry.
type Feature struct {
	Type       string             `json:"type"`
	Geometry   *geojson.Geometry  `json:"geometry"`
	Properties *FeatureProperties `json:"properties"`
}

// NewPointFeature builds a GeoJSON point feature at (lat, lon).
func NewPointFeature(lat, lon float64, props *FeatureProperties) (*Feature, error) {
	g, err := geojson.ToGeoJSON(geom.Point{X: lon, Y: lat})
	if err != nil {
		return nil, err
	}
	props.Latitude = lat
	props.Longitude = lon
	return &Feature{Type: "Feature", Geometry: g, Properties: props}, nil
}

// Metadata describes one scoring response.
type Metadata struct {
	ScoringSystem         string            `json:"scoring_system"`
	Persona               string            `json:"persona"`
	PersonaResolution     string            `json:"project_type_resolution"`
	SourceTable           string            `json:"source_table,omitempty"`
	TotalProcessed        int               `json:"total_projects_processed"`
	ProjectsScored        int               `json:"projects_scored"`
	RecordsDropped        int               `json:"records_dropped"`
	ProcessingTimeSeconds float64           `json:"processing_time_seconds"`
	AlgorithmVersion      string            `json:"algorithm_version"`
	RatingScale           map[string]string `json:"rating_scale"`
	Warning               string            `json:"warning,omitempty"`
}

// FeatureCollection is the GeoJSON response envelope.
type FeatureCollection struct {
	Type     string     `json:"type"`
	Features []*Feature `json:"features"`
	Metadata *Metadata  `json:"metadata,omitempty"`
}

// NewFeatureCollection wraps features in a FeatureCollection envelope.
func NewFeatureCollection(features []*Feature, md *Metadata) *FeatureCollection {
	if features == nil {
		features = []*Feature{}
	}
	return &FeatureCollection{Type: "FeatureCollection", Features: features, Metadata: md}
}
