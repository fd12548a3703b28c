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

// Package siterank ranks renewable-energy and data-center candidate
// sites against electrical, digital, and water infrastructure layers,
// producing persona-weighted investment ratings as GeoJSON features.
package siterank

import (
	"fmt"
	"math"

	"github.com/gridwatt/siterank/catalog"
	"github.com/gridwatt/siterank/params"
	"github.com/gridwatt/siterank/scoring"
)

// Site is one candidate site.
type Site struct {
	SiteName               string   `json:"site_name"`
	TechnologyType         string   `json:"technology_type"`
	CapacityMW             float64  `json:"capacity_mw"`
	Latitude               float64  `json:"latitude"`
	Longitude              float64  `json:"longitude"`
	CommissioningYear      *int     `json:"commissioning_year,omitempty"`
	IsBTM                  *bool    `json:"is_btm,omitempty"`
	DevelopmentStatusShort string   `json:"development_status_short"`
	CapacityFactor         *float64 `json:"capacity_factor,omitempty"`
	MaxPriceMWh            *float64 `json:"max_price_mwh,omitempty"`
}

func (s *Site) scoringParams() scoring.SiteParams {
	return scoring.SiteParams{
		Technology:        s.TechnologyType,
		CapacityMW:        s.CapacityMW,
		Latitude:          s.Latitude,
		DevelopmentStatus: s.DevelopmentStatusShort,
		CapacityFactor:    s.CapacityFactor,
		MaxPriceMWh:       s.MaxPriceMWh,
	}
}

// Validate checks a user-submitted site against the UK bounds. Catalog-
// sourced projects skip this: only coordinate finiteness is required
// for them.
func (s *Site) Validate() error {
	if math.IsNaN(s.Latitude) || math.IsInf(s.Latitude, 0) ||
		math.IsNaN(s.Longitude) || math.IsInf(s.Longitude, 0) {
		return fmt.Errorf("site %q: coordinates are not finite", s.SiteName)
	}
	if s.Latitude < params.MinLatitude || s.Latitude > params.MaxLatitude {
		return fmt.Errorf("site %q: latitude %g outside [%g, %g]",
			s.SiteName, s.Latitude, params.MinLatitude, params.MaxLatitude)
	}
	if s.Longitude < params.MinLongitude || s.Longitude > params.MaxLongitude {
		return fmt.Errorf("site %q: longitude %g outside [%g, %g]",
			s.SiteName, s.Longitude, params.MinLongitude, params.MaxLongitude)
	}
	if s.CapacityMW < params.MinCapacityMW || s.CapacityMW > params.MaxCapacityMW {
		return fmt.Errorf("site %q: capacity %g MW outside [%g, %g]",
			s.SiteName, s.CapacityMW, params.MinCapacityMW, params.MaxCapacityMW)
	}
	if y := s.CommissioningYear; y != nil &&
		(*y < params.MinCommissioningYear || *y > params.MaxCommissioningYear) {
		return fmt.Errorf("site %q: commissioning year %d outside [%d, %d]",
			s.SiteName, *y, params.MinCommissioningYear, params.MaxCommissioningYear)
	}
	return nil
}

// SiteFromRecord builds a Site from a renewable_projects record. Only
// coordinate finiteness is required; everything else is best-effort.
// Records without finite coordinates return false.
func SiteFromRecord(rec catalog.Record) (Site, bool) {
	lat, lon, ok := catalog.RecordLatLon(rec)
	if !ok {
		return Site{}, false
	}
	s := Site{Latitude: lat, Longitude: lon}
	s.SiteName, _ = catalog.StringField(rec, "site_name", "name", "project_name")
	s.TechnologyType, _ = catalog.StringField(rec, "technology_type", "technology")
	s.CapacityMW, _ = catalog.FloatField(rec, "capacity_mw", "installed_capacity_mw")
	s.DevelopmentStatusShort, _ = catalog.StringField(rec,
		"development_status_short", "development_status", "status")
	if cf, ok := catalog.FloatField(rec, "capacity_factor"); ok {
		s.CapacityFactor = &cf
	}
	if y, ok := catalog.IntField(rec, "commissioning_year"); ok {
		s.CommissioningYear = &y
	}
	if b, ok := catalog.BoolField(rec, "is_btm"); ok {
		s.IsBTM = &b
	}
	return s, true
}

// SiteFromTECRecord unifies a tec_connections record into the common
// site schema. The TEC register names its columns after the
// transmission-entry paperwork, so the key variants differ from the
// renewable_projects feed.
func SiteFromTECRecord(rec catalog.Record) (Site, bool) {
	lat, lon, ok := catalog.RecordLatLon(rec)
	if !ok {
		return Site{}, false
	}
	s := Site{Latitude: lat, Longitude: lon}
	s.SiteName, _ = catalog.StringField(rec,
		"project_name", "generator_name", "customer_name", "site_name")
	if s.SiteName == "" {
		if conn, ok := catalog.StringField(rec, "connection_site"); ok {
			s.SiteName = conn
		}
	}
	s.TechnologyType, _ = catalog.StringField(rec,
		"plant_type", "technology_type", "fuel_type")
	s.CapacityMW, _ = catalog.FloatField(rec,
		"mw_connected", "mw_effective", "mw_total", "capacity_mw")
	s.DevelopmentStatusShort, _ = catalog.StringField(rec,
		"project_status", "agreement_type", "development_status_short")
	if y, ok := catalog.IntField(rec, "mw_effective_date_year", "commissioning_year"); ok {
		s.CommissioningYear = &y
	}
	return s, true
}
