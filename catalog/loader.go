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

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"sync"
	"time"

	"github.com/ctessum/geom"
	"github.com/sirupsen/logrus"

	"github.com/gridwatt/siterank/geo"
)

// Catalog is an immutable snapshot of all infrastructure features,
// indexed one grid per layer. Raw feature lists are retained for the
// full-scan fallback of nearest-feature queries. Safe for concurrent
// reads after construction.
type Catalog struct {
	Substations *geo.Grid[*geo.PointFeature]
	IXPs        *geo.Grid[*geo.PointFeature]
	WaterPoints *geo.Grid[*geo.PointFeature]

	Transmission *geo.Grid[*geo.LineFeature]
	Fiber        *geo.Grid[*geo.LineFeature]
	WaterLines   *geo.Grid[*geo.LineFeature]

	substationList []*geo.PointFeature
	ixpList        []*geo.PointFeature
	waterPointList []*geo.PointFeature

	transmissionList []*geo.LineFeature
	fiberList        []*geo.LineFeature
	waterLineList    []*geo.LineFeature

	LoadedAt time.Time

	// Counts holds the number of features ingested per layer; Dropped
	// the number of records discarded during normalization.
	Counts  map[string]int
	Dropped map[string]int
}

// Load fetches all five layer collections from store (in parallel) and
// builds a catalog. It is all-or-nothing: any fetch error aborts the
// load and returns an error without a partial catalog.
func Load(ctx context.Context, store Store, log *logrus.Logger) (*Catalog, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	recs := make([][]Record, len(LayerCollections))
	errs := make([]error, len(LayerCollections))
	var wg sync.WaitGroup
	for i, coll := range LayerCollections {
		wg.Add(1)
		go func(i int, coll string) {
			defer wg.Done()
			recs[i], errs[i] = store.Fetch(ctx, coll, 0)
		}(i, coll)
	}
	wg.Wait()
	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("catalog.Load: fetching %s: %w", LayerCollections[i], err)
		}
	}

	c := &Catalog{
		Substations:  geo.NewGrid[*geo.PointFeature](geo.DefaultCellDeg),
		IXPs:         geo.NewGrid[*geo.PointFeature](geo.DefaultCellDeg),
		WaterPoints:  geo.NewGrid[*geo.PointFeature](geo.DefaultCellDeg),
		Transmission: geo.NewGrid[*geo.LineFeature](geo.DefaultCellDeg),
		Fiber:        geo.NewGrid[*geo.LineFeature](geo.DefaultCellDeg),
		WaterLines:   geo.NewGrid[*geo.LineFeature](geo.DefaultCellDeg),
		LoadedAt:     time.Now(),
		Counts:       make(map[string]int),
		Dropped:      make(map[string]int),
	}

	c.ingestPoints(recs[0], geo.LayerSubstation, log)
	c.ingestLines(recs[1], geo.LayerTransmission, log)
	c.ingestLines(recs[2], geo.LayerFiber, log)
	c.ingestPoints(recs[3], geo.LayerIXP, log)
	c.ingestWater(recs[4], log)

	log.WithFields(logrus.Fields{
		"counts":  c.Counts,
		"dropped": c.Dropped,
	}).Info("catalog loaded")
	return c, nil
}

func (c *Catalog) ingestPoints(recs []Record, layer geo.Layer, log *logrus.Logger) {
	for _, rec := range recs {
		f := preparePointFeature(rec, layer)
		if f == nil {
			c.Dropped[string(layer)]++
			log.WithField("layer", layer).Debug("dropping record without parseable coordinates")
			continue
		}
		c.addPoint(layer, f)
	}
}

func (c *Catalog) ingestLines(recs []Record, layer geo.Layer, log *logrus.Logger) {
	for _, rec := range recs {
		f := prepareLineFeature(rec, layer)
		if f == nil {
			c.Dropped[string(layer)]++
			log.WithField("layer", layer).Debug("dropping record without parseable geometry")
			continue
		}
		c.addLine(layer, f)
	}
}

// ingestWater handles the polymorphic water collection: a geometry of a
// single [lon, lat] pair (or plain coordinate keys) becomes a point,
// anything longer becomes a line.
func (c *Catalog) ingestWater(recs []Record, log *logrus.Logger) {
	for _, rec := range recs {
		coords := parseVertexList(rec)
		switch {
		case len(coords) >= 2:
			f := geo.NewLineFeature(coords, geo.Meta{Name: recordName(rec), Layer: geo.LayerWater})
			c.addLine(geo.LayerWater, f)
		case len(coords) == 1:
			c.addPoint(geo.LayerWater, &geo.PointFeature{
				P:    coords[0],
				Meta: geo.Meta{Name: recordName(rec), Layer: geo.LayerWater},
			})
		default:
			if f := preparePointFeature(rec, geo.LayerWater); f != nil {
				c.addPoint(geo.LayerWater, f)
				continue
			}
			c.Dropped[string(geo.LayerWater)]++
			log.Debug("dropping water record without parseable geometry")
		}
	}
}

func (c *Catalog) addPoint(layer geo.Layer, f *geo.PointFeature) {
	switch layer {
	case geo.LayerSubstation:
		c.Substations.InsertPoint(f.Lat(), f.Lon(), f)
		c.substationList = append(c.substationList, f)
	case geo.LayerIXP:
		c.IXPs.InsertPoint(f.Lat(), f.Lon(), f)
		c.ixpList = append(c.ixpList, f)
	case geo.LayerWater:
		c.WaterPoints.InsertPoint(f.Lat(), f.Lon(), f)
		c.waterPointList = append(c.waterPointList, f)
	}
	c.Counts[string(layer)]++
}

func (c *Catalog) addLine(layer geo.Layer, f *geo.LineFeature) {
	switch layer {
	case geo.LayerTransmission:
		c.Transmission.InsertBounds(f.BBox, f)
		c.transmissionList = append(c.transmissionList, f)
	case geo.LayerFiber:
		c.Fiber.InsertBounds(f.BBox, f)
		c.fiberList = append(c.fiberList, f)
	case geo.LayerWater:
		c.WaterLines.InsertBounds(f.BBox, f)
		c.waterLineList = append(c.waterLineList, f)
	}
	c.Counts[string(layer)]++
}

// LayerCounts returns a copy of the per-layer feature counts.
func (c *Catalog) LayerCounts() map[string]int {
	out := make(map[string]int, len(c.Counts))
	for k, v := range c.Counts {
		out[k] = v
	}
	return out
}

// preparePointFeature extracts a point feature from a record, tolerating
// the coordinate key variants used by the different upstream feeds.
// Records whose coordinates do not parse as finite floats yield nil.
func preparePointFeature(rec Record, layer geo.Layer) *geo.PointFeature {
	lat, lon, ok := RecordLatLon(rec)
	if !ok {
		return nil
	}
	return &geo.PointFeature{
		P:    geom.Point{X: lon, Y: lat},
		Meta: geo.Meta{Name: recordName(rec), Layer: layer},
	}
}

// prepareLineFeature extracts a polyline feature from a record. The raw
// geometry may be a JSON string or a list of [lon, lat] pairs; records
// with fewer than two valid vertices yield nil.
func prepareLineFeature(rec Record, layer geo.Layer) *geo.LineFeature {
	coords := parseVertexList(rec)
	if len(coords) < 2 {
		return nil
	}
	return geo.NewLineFeature(coords, geo.Meta{Name: recordName(rec), Layer: layer})
}

var latKeys = []string{"latitude", "lat", "Latitude", "Lat"}
var lonKeys = []string{"longitude", "lon", "lng", "Longitude", "Lon", "Lng"}

// RecordLatLon extracts a finite (lat, lon) pair from a record,
// tolerating key variants and nested location/coordinates objects.
func RecordLatLon(rec Record) (lat, lon float64, ok bool) {
	if lat, ok1 := firstFloat(rec, latKeys); ok1 {
		if lon, ok2 := firstFloat(rec, lonKeys); ok2 {
			return lat, lon, true
		}
	}
	for _, nestKey := range []string{"location", "coordinates"} {
		switch nested := rec[nestKey].(type) {
		case map[string]interface{}:
			if lat, ok1 := firstFloat(nested, latKeys); ok1 {
				if lon, ok2 := firstFloat(nested, lonKeys); ok2 {
					return lat, lon, true
				}
			}
		case []interface{}: // [lon, lat]
			if len(nested) == 2 {
				lon, ok1 := toFiniteFloat(nested[0])
				lat, ok2 := toFiniteFloat(nested[1])
				if ok1 && ok2 {
					return lat, lon, true
				}
			}
		}
	}
	return 0, 0, false
}

func firstFloat(m map[string]interface{}, keys []string) (float64, bool) {
	for _, k := range keys {
		if v, ok := m[k]; ok {
			if f, ok := toFiniteFloat(v); ok {
				return f, true
			}
		}
	}
	return 0, false
}

func toFiniteFloat(v interface{}) (float64, bool) {
	var f float64
	switch x := v.(type) {
	case float64:
		f = x
	case float32:
		f = float64(x)
	case int:
		f = float64(x)
	case int64:
		f = float64(x)
	case json.Number:
		var err error
		f, err = x.Float64()
		if err != nil {
			return 0, false
		}
	case string:
		var err error
		f, err = strconv.ParseFloat(x, 64)
		if err != nil {
			return 0, false
		}
	default:
		return 0, false
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

var geometryKeys = []string{"geometry", "coordinates", "path", "route"}

// parseVertexList extracts the [lon, lat] vertex list of a line-type
// record. The geometry may arrive as a JSON string or as a decoded
// list; invalid vertices are skipped.
func parseVertexList(rec Record) geom.LineString {
	for _, k := range geometryKeys {
		raw, ok := rec[k]
		if !ok || raw == nil {
			continue
		}
		if s, isStr := raw.(string); isStr {
			var decoded interface{}
			if err := json.Unmarshal([]byte(s), &decoded); err != nil {
				continue
			}
			raw = decoded
		}
		list, isList := raw.([]interface{})
		if !isList {
			continue
		}
		// A bare [lon, lat] pair parses as one vertex.
		if len(list) == 2 {
			lon, ok1 := toFiniteFloat(list[0])
			lat, ok2 := toFiniteFloat(list[1])
			if ok1 && ok2 {
				return geom.LineString{{X: lon, Y: lat}}
			}
		}
		var coords geom.LineString
		for _, item := range list {
			pair, isPair := item.([]interface{})
			if !isPair || len(pair) < 2 {
				continue
			}
			lon, ok1 := toFiniteFloat(pair[0])
			lat, ok2 := toFiniteFloat(pair[1])
			if !ok1 || !ok2 {
				continue
			}
			coords = append(coords, geom.Point{X: lon, Y: lat})
		}
		if len(coords) > 0 {
			return coords
		}
	}
	return nil
}

func recordName(rec Record) string {
	for _, k := range []string{"name", "site_name", "Name", "title"} {
		if s, ok := rec[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}
