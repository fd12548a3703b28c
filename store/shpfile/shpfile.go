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

// Package shpfile is a read-only feature store backed by local
// shapefiles, one per collection. Infrastructure layer data is commonly
// distributed as shapefiles (OS Open Map, Ofgem and NGET releases), so
// this store lets the pipeline run fully offline.
package shpfile

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ctessum/geom"
	"github.com/ctessum/geom/encoding/shp"

	"github.com/gridwatt/siterank/catalog"
)

// Store reads one "<collection>.shp" per collection from a directory.
// Geometries are assumed to already be in WGS84 lon/lat.
type Store struct {
	dir string
}

// New creates a shapefile store rooted at dir.
func New(dir string) *Store { return &Store{dir: dir} }

// Fetch implements catalog.Store. Point shapes yield latitude/longitude
// records; polyline shapes yield records with a coordinates vertex
// list, matching what the catalog loader expects from the other feeds.
func (s *Store) Fetch(ctx context.Context, collection string, limit int) ([]catalog.Record, error) {
	path := filepath.Join(s.dir, collection+".shp")
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("shpfile: %s: %w", collection, err)
	}
	dec, err := shp.NewDecoder(path)
	if err != nil {
		return nil, fmt.Errorf("shpfile: opening %s: %w", collection, err)
	}
	defer dec.Close()

	var recs []catalog.Record
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if limit > 0 && len(recs) >= limit {
			break
		}
		g, _, more := dec.DecodeRowFields()
		if !more {
			break
		}
		if rec := geometryRecord(g); rec != nil {
			recs = append(recs, rec)
		}
	}
	if err := dec.Error(); err != nil {
		return nil, fmt.Errorf("shpfile: decoding %s: %w", collection, err)
	}
	return recs, nil
}

func geometryRecord(g geom.Geom) catalog.Record {
	switch gg := g.(type) {
	case geom.Point:
		return catalog.Record{"latitude": gg.Y, "longitude": gg.X}
	case geom.LineString:
		return catalog.Record{"coordinates": vertexList(gg)}
	case geom.MultiLineString:
		// Flatten: the proximity engine only needs segments, and the
		// loader treats the vertex list as one polyline per record.
		var all []interface{}
		for _, ls := range gg {
			all = append(all, vertexList(ls)...)
		}
		if len(all) < 2 {
			return nil
		}
		return catalog.Record{"coordinates": all}
	default:
		return nil
	}
}

func vertexList(ls geom.LineString) []interface{} {
	out := make([]interface{}, 0, len(ls))
	for _, p := range ls {
		out = append(out, []interface{}{p.X, p.Y})
	}
	return out
}
