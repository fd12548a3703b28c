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

// Package params centralizes every scoring tunable: search radii, decay
// half-distances, persona weight tables, status and technology tables,
// TNUoS zones, and the rating legend. Keeping them in one place lets
// tests override individual values without reaching into the scoring
// code.
package params

import "time"

// AlgorithmVersion identifies the scoring algorithm in response
// metadata.
const AlgorithmVersion = "2.1.0"

// DefaultCacheTTL is how long a loaded infrastructure catalog stays
// fresh. Override with the INFRA_CACHE_TTL environment variable
// (seconds).
const DefaultCacheTTL = 600 * time.Second

// UK user-submission bounds.
const (
	MinLatitude  = 49.8
	MaxLatitude  = 60.9
	MinLongitude = -10.8
	MaxLongitude = 2.0

	MinCapacityMW = 5.0
	MaxCapacityMW = 500.0

	MinCommissioningYear = 2025
	MaxCommissioningYear = 2035
)

// SearchRadiusKm is the per-layer nearest-feature search radius.
var SearchRadiusKm = map[string]float64{
	"substation":   100,
	"transmission": 100,
	"fiber":        100,
	"ixp":          100,
	"water":        100,
}

// ProximityHalfDistanceKm is the per-layer half-distance of the
// exponential proximity score: a feature at the half-distance scores 50.
var ProximityHalfDistanceKm = map[string]float64{
	"substation":   30,
	"transmission": 30,
	"fiber":        15,
	"ixp":          40,
	"water":        25,
}

// ProximityZeroBeyondKm forces a proximity score of zero at or beyond
// this distance regardless of the decay curve.
const ProximityZeroBeyondKm = 200.0

// Backend component keys.
const (
	KeyCapacity         = "capacity"
	KeyConnectionSpeed  = "connection_speed"
	KeyResilience       = "resilience"
	KeyLandPlanning     = "land_planning"
	KeyLatency          = "latency"
	KeyCooling          = "cooling"
	KeyPriceSensitivity = "price_sensitivity"
	KeyLCOE             = "lcoe_resource_quality"
	KeyGridInfra        = "grid_infrastructure"
	KeyTNUoS            = "tnuos_transmission_costs"
)

// Personas.
const (
	PersonaHyperscaler = "hyperscaler"
	PersonaColocation  = "colocation"
	PersonaEdge        = "edge_computing"
	PersonaGreenfield  = "greenfield"
	PersonaRepower     = "repower"
	PersonaStranded    = "stranded"
)

// DefaultSupplyPersona and DefaultDemandPersona are the fallbacks used
// when a request names no persona or an unknown one.
const (
	DefaultSupplyPersona = PersonaGreenfield
	DefaultDemandPersona = PersonaHyperscaler
)

// PersonaWeights maps each persona to its component weight vector.
// Every vector sums to 1.0.
var PersonaWeights = map[string]map[string]float64{
	PersonaHyperscaler: {
		KeyCapacity: 0.30, KeyConnectionSpeed: 0.20, KeyResilience: 0.15,
		KeyLandPlanning: 0.10, KeyLatency: 0.05, KeyCooling: 0.10,
		KeyPriceSensitivity: 0.10,
	},
	PersonaColocation: {
		KeyCapacity: 0.20, KeyConnectionSpeed: 0.20, KeyResilience: 0.20,
		KeyLandPlanning: 0.10, KeyLatency: 0.15, KeyCooling: 0.05,
		KeyPriceSensitivity: 0.10,
	},
	PersonaEdge: {
		KeyCapacity: 0.10, KeyConnectionSpeed: 0.15, KeyResilience: 0.15,
		KeyLandPlanning: 0.20, KeyLatency: 0.25, KeyCooling: 0.05,
		KeyPriceSensitivity: 0.10,
	},
	PersonaGreenfield: {
		KeyCapacity: 0.15, KeyConnectionSpeed: 0.25, KeyResilience: 0.15,
		KeyLandPlanning: 0.20, KeyLatency: 0.05, KeyCooling: 0.05,
		KeyPriceSensitivity: 0.15,
	},
	PersonaRepower: {
		KeyCapacity: 0.25, KeyConnectionSpeed: 0.20, KeyResilience: 0.15,
		KeyLandPlanning: 0.10, KeyLatency: 0.05, KeyCooling: 0.05,
		KeyPriceSensitivity: 0.20,
	},
	PersonaStranded: {
		KeyCapacity: 0.20, KeyConnectionSpeed: 0.30, KeyResilience: 0.10,
		KeyLandPlanning: 0.15, KeyLatency: 0.05, KeyCooling: 0.05,
		KeyPriceSensitivity: 0.15,
	},
}

// CapacityParams holds the logistic capacity curve parameters for one
// persona.
type CapacityParams struct {
	MinMW, IdealMW, MaxMW float64
}

// PersonaCapacity maps personas to capacity curve parameters.
var PersonaCapacity = map[string]CapacityParams{
	PersonaHyperscaler: {50, 100, 500},
	PersonaColocation:  {20, 70, 200},
	PersonaEdge:        {1, 10, 50},
	PersonaGreenfield:  {20, 100, 400},
	PersonaRepower:     {20, 100, 400},
	PersonaStranded:    {30, 120, 450},
}

// DefaultCapacity is used for unknown personas.
var DefaultCapacity = CapacityParams{50, 100, 400}

// CapacitySteepness is the logistic slope of the capacity score.
const CapacitySteepness = 0.05

// StatusScore is one entry of the ordered development-status table.
type StatusScore struct {
	Status string
	Score  float64
}

// DevelopmentStatusTable maps development stages to scores. Matching is
// case-insensitive: exact match first, then substring match in
// declaration order. Operational sites score low on purpose: the
// business targets intervention at pre-operational sites.
var DevelopmentStatusTable = []StatusScore{
	{"decommissioned", 0},
	{"abandoned", 5},
	{"operational", 10},
	{"under construction", 20},
	{"application refused", 25},
	{"appeal refused", 25},
	{"application withdrawn", 30},
	{"appeal withdrawn", 30},
	{"awaiting construction", 40},
	{"appeal lodged", 60},
	{"revised", 65},
	{"consented", 70},
	{"in planning", 80},
	{"pre-planning", 85},
	{"scoping", 90},
	{"concept", 90},
	{"no application required", 95},
	{"application submitted", 100},
}

// DefaultStatusScore is used when no table entry matches.
const DefaultStatusScore = 45.0

// TechnologyTable maps technology substrings to scores, checked in
// declaration order.
var TechnologyTable = []StatusScore{
	{"hybrid", 100},
	{"ccgt", 100},
	{"solar", 80},
	{"battery", 80},
	{"wind", 60},
}

// DefaultTechnologyScore is used when no technology substring matches.
const DefaultTechnologyScore = 80.0

// LCOEStatusTable maps development statuses to an LCOE-proxy score,
// checked like DevelopmentStatusTable.
var LCOEStatusTable = []StatusScore{
	{"operational", 10},
	{"under construction", 25},
	{"awaiting construction", 40},
	{"application submitted", 60},
	{"in planning", 70},
	{"consented", 85},
}

// DefaultLCOEScore is used when no LCOE table entry matches.
const DefaultLCOEScore = 50.0

// CapacityFactorBand is the latitude-dependent capacity-factor band for
// one technology, in percent. At MinLat the factor is LowCF; at MaxLat
// it is HighCF, interpolating linearly and clamping outside.
type CapacityFactorBand struct {
	LowCF, HighCF  float64
	MinLat, MaxLat float64
}

// CapacityFactorBands maps technology substrings (checked in order) to
// capacity-factor bands. Solar falls with latitude; onshore wind rises.
var CapacityFactorBands = []struct {
	Tech string
	Band CapacityFactorBand
}{
	{"offshore", CapacityFactorBand{45, 45, 50, 60}},
	{"solar", CapacityFactorBand{13, 9, 50, 60}},
	{"wind", CapacityFactorBand{25, 38, 50, 60}},
	{"battery", CapacityFactorBand{20, 20, 50, 60}},
	{"hydro", CapacityFactorBand{50, 50, 50, 60}},
	{"ccgt", CapacityFactorBand{70, 70, 50, 60}},
	{"gas", CapacityFactorBand{70, 70, 50, 60}},
	{"biomass", CapacityFactorBand{70, 70, 50, 60}},
	{"hybrid", CapacityFactorBand{50, 50, 50, 60}},
}

// DefaultCapacityFactor is used for unrecognized technologies.
const DefaultCapacityFactor = 30.0

// PriceBaseline holds the baseline LCOE and reference capacity factor
// used by the price-sensitivity score.
type PriceBaseline struct {
	LCOE  float64 // £/MWh
	RefCF float64 // percent
}

// PriceBaselines maps technology substrings (checked in order) to price
// baselines.
var PriceBaselines = []struct {
	Tech     string
	Baseline PriceBaseline
}{
	{"offshore", PriceBaseline{75, 45}},
	{"solar", PriceBaseline{60, 11}},
	{"wind", PriceBaseline{55, 30}},
	{"battery", PriceBaseline{90, 20}},
	{"ccgt", PriceBaseline{85, 70}},
	{"gas", PriceBaseline{85, 70}},
	{"hydro", PriceBaseline{65, 50}},
	{"biomass", PriceBaseline{95, 70}},
	{"hybrid", PriceBaseline{65, 50}},
}

// DefaultPriceBaseline is used for unrecognized technologies.
var DefaultPriceBaseline = PriceBaseline{70, 30}

// ResilienceTier is one distance threshold of the resilience score.
type ResilienceTier struct {
	WithinKm float64
	Tiers    int
}

// Resilience distance tiers per layer, checked in order; the first
// matching threshold wins.
var (
	ResilienceSubstationTiers = []ResilienceTier{
		{15, 4}, {30, 3}, {50, 2}, {75, 1},
	}
	ResilienceTransmissionTiers = []ResilienceTier{
		{20, 3}, {40, 2}, {75, 1},
	}
	ResilienceFiberTiers = []ResilienceTier{
		{10, 3}, {25, 2}, {50, 1},
	}
	ResilienceIXPTiers = []ResilienceTier{
		{25, 2}, {60, 1},
	}
)

// ResilienceScoreByTiers maps the accumulated tier count to a score.
// Counts above the last index use the last entry.
var ResilienceScoreByTiers = []float64{25, 25, 35, 45, 55, 65, 75, 85, 95}

// Connection-speed composite weights and stage remapping.
const (
	ConnSpeedStageWeight        = 0.50
	ConnSpeedSubstationWeight   = 0.30
	ConnSpeedTransmissionWeight = 0.20
	ConnSpeedSubstationHalfKm   = 30.0
	ConnSpeedTransmissionHalfKm = 50.0
)

// TNUoS latitude proxy: tariffs rise linearly with latitude from
// TNUoSProxyMin at MinLatitude to TNUoSProxyMax at MaxLatitude, and
// scores rescale tariffs from [TNUoSTariffFloor, TNUoSTariffCeil] to
// [100, 0].
const (
	TNUoSProxyMin    = -2.0
	TNUoSProxyMax    = 15.0
	TNUoSTariffFloor = -3.0
	TNUoSTariffCeil  = 16.0
)

// TNUoS enrichment: the tariff component is injected into the top
// TNUoSTopK features at TNUoSInjectedWeight, with existing weights
// scaled down to keep the sum at 1.
const (
	TNUoSTopK           = 25
	TNUoSInjectedWeight = 0.1
)

// Price-sensitivity mapping constants. Without a caller price cap the
// total cost maps linearly from [PriceMapLow, PriceMapHigh] £/MWh to
// [100, 0]; with a cap, savings and overages decay around 50 with
// PriceDecayScale.
const (
	PriceMapLow     = 40.0
	PriceMapHigh    = 100.0
	PriceDecayScale = 20.0
)

// RatingBucket is one row of the display-rating legend.
type RatingBucket struct {
	MinRating   float64
	Color       string
	Description string
}

// RatingBuckets is the 10-bucket display legend, highest first.
var RatingBuckets = []RatingBucket{
	{9.0, "#006400", "Excellent"},
	{8.0, "#32CD32", "Very Good"},
	{7.0, "#90EE90", "Good"},
	{6.0, "#ADFF2F", "Above Average"},
	{5.0, "#FFFF00", "Average"},
	{4.0, "#FFA500", "Below Average"},
	{3.0, "#FF6347", "Poor"},
	{2.0, "#FF4500", "Very Poor"},
	{1.0, "#B22222", "Bad"},
	{0.0, "#8B0000", "Very Bad"},
}

// RatingScaleLegend is the human-readable legend attached to response
// metadata.
var RatingScaleLegend = map[string]string{
	"9.0-10.0": "Excellent",
	"8.0-8.9":  "Very Good",
	"7.0-7.9":  "Good",
	"6.0-6.9":  "Above Average",
	"5.0-5.9":  "Average",
	"4.0-4.9":  "Below Average",
	"3.0-3.9":  "Poor",
	"2.0-2.9":  "Very Poor",
	"1.0-1.9":  "Bad",
	"0.0-0.9":  "Very Bad",
}

// FrontendWeightKeys maps the weight keys used by the web frontend to
// backend component keys for the custom-weight aggregator.
var FrontendWeightKeys = map[string]string{
	"data_center_capacity":     KeyCapacity,
	"grid_connection_speed":    KeyConnectionSpeed,
	"energy_resilience":        KeyResilience,
	"land_and_planning":        KeyLandPlanning,
	"network_latency":          KeyLatency,
	"water_cooling":            KeyCooling,
	"lcoe_resource_quality":    KeyLCOE,
	"tnuos_transmission_costs": KeyTNUoS,
}

// CustomWeightKeys is the set of backend keys the custom-weight
// aggregator accepts.
var CustomWeightKeys = map[string]bool{
	KeyCapacity:        true,
	KeyConnectionSpeed: true,
	KeyResilience:      true,
	KeyLandPlanning:    true,
	KeyLatency:         true,
	KeyCooling:         true,
	KeyLCOE:            true,
	KeyTNUoS:           true,
}
