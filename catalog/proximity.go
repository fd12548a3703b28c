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
	"math"
	"runtime"
	"sync"

	"github.com/gridwatt/siterank/geo"
	"github.com/gridwatt/siterank/params"
)

// Location is a query site for the proximity engine.
type Location struct {
	Lat, Lon float64
}

// NearestPointKm returns the distance to the nearest point feature
// within rKm of (lat, lon), expanding grid rings outward and falling
// back to a linear scan of list if the grid-limited search finds
// nothing. The second return value is false when no feature lies within
// the radius.
func NearestPointKm(g *geo.Grid[*geo.PointFeature], list []*geo.PointFeature, lat, lon, rKm float64) (float64, bool) {
	maxSteps := geo.StepsForRadius(rKm)
	for steps := 1; steps <= maxSteps; steps++ {
		best := math.Inf(1)
		for _, f := range g.Query(lat, lon, steps) {
			d := geo.Haversine(lat, lon, f.Lat(), f.Lon())
			if d <= rKm && d < best {
				best = d
			}
		}
		if !math.IsInf(best, 1) {
			return best, true
		}
	}
	// Last-resort full scan guarantees correctness when the ring scan
	// misses (e.g. radii larger than the scanned window).
	best := math.Inf(1)
	for _, f := range list {
		d := geo.Haversine(lat, lon, f.Lat(), f.Lon())
		if d <= rKm && d < best {
			best = d
		}
	}
	if math.IsInf(best, 1) {
		return 0, false
	}
	return best, true
}

// NearestLineKm is the polyline counterpart of NearestPointKm.
// Candidate lines whose expanded bounding box does not reach the query
// point are rejected before any segment distance is computed.
func NearestLineKm(g *geo.Grid[*geo.LineFeature], list []*geo.LineFeature, lat, lon, rKm float64) (float64, bool) {
	nearest := func(fs []*geo.LineFeature) float64 {
		best := math.Inf(1)
		for _, f := range fs {
			if !geo.BoundsWithinSearch(f.BBox, lat, lon, rKm) {
				continue
			}
			d := f.DistanceKm(lat, lon)
			if d >= 0 && d <= rKm && d < best {
				best = d
			}
		}
		return best
	}
	maxSteps := geo.StepsForRadius(rKm)
	for steps := 1; steps <= maxSteps; steps++ {
		if best := nearest(g.Query(lat, lon, steps)); !math.IsInf(best, 1) {
			return best, true
		}
	}
	if best := nearest(list); !math.IsInf(best, 1) {
		return best, true
	}
	return 0, false
}

// NearestDistances returns the distance in kilometers from (lat, lon)
// to the nearest feature of each layer, within the per-layer search
// radius. Layers with no feature in range are absent from the result.
// The water distance is the minimum of the point and line outcomes.
func (c *Catalog) NearestDistances(lat, lon float64) map[string]float64 {
	out := make(map[string]float64, 5)

	if d, ok := NearestPointKm(c.Substations, c.substationList, lat, lon, params.SearchRadiusKm["substation"]); ok {
		out["substation"] = d
	}
	if d, ok := NearestLineKm(c.Transmission, c.transmissionList, lat, lon, params.SearchRadiusKm["transmission"]); ok {
		out["transmission"] = d
	}
	if d, ok := NearestLineKm(c.Fiber, c.fiberList, lat, lon, params.SearchRadiusKm["fiber"]); ok {
		out["fiber"] = d
	}
	if d, ok := NearestPointKm(c.IXPs, c.ixpList, lat, lon, params.SearchRadiusKm["ixp"]); ok {
		out["ixp"] = d
	}

	waterR := params.SearchRadiusKm["water"]
	wp, okP := NearestPointKm(c.WaterPoints, c.waterPointList, lat, lon, waterR)
	wl, okL := NearestLineKm(c.WaterLines, c.waterLineList, lat, lon, waterR)
	switch {
	case okP && okL:
		out["water"] = math.Min(wp, wl)
	case okP:
		out["water"] = wp
	case okL:
		out["water"] = wl
	}
	return out
}

// BatchNearestDistances computes NearestDistances for every location
// against this single catalog snapshot using a bounded worker pool.
// Results are slotted by input index, so ordering is deterministic.
// The context is checked between sites; on cancellation the partial
// results are discarded and the context error returned.
func (c *Catalog) BatchNearestDistances(ctx context.Context, locs []Location) ([]map[string]float64, error) {
	out := make([]map[string]float64, len(locs))
	workers := runtime.NumCPU()
	if workers > len(locs) {
		workers = len(locs)
	}
	if workers < 1 {
		workers = 1
	}
	idx := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range idx {
				out[i] = c.NearestDistances(locs[i].Lat, locs[i].Lon)
			}
		}()
	}
	var err error
feed:
	for i := range locs {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case idx <- i:
		}
	}
	close(idx)
	wg.Wait()
	if err != nil {
		return nil, err
	}
	return out, nil
}
