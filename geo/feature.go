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

package geo

import "github.com/ctessum/geom"

// Layer identifies one of the infrastructure layers held in a catalog.
type Layer string

// Infrastructure layers.
const (
	LayerSubstation   Layer = "substation"
	LayerTransmission Layer = "transmission"
	LayerFiber        Layer = "fiber"
	LayerIXP          Layer = "ixp"
	LayerWater        Layer = "water"
)

// Meta is the typed metadata attached to every catalog feature.
type Meta struct {
	Name  string
	Layer Layer
}

// PointFeature is a point-type infrastructure feature (substation, IXP,
// or point-type water resource). Immutable after construction.
type PointFeature struct {
	P    geom.Point // X is longitude, Y is latitude
	Meta Meta
}

// Lat returns the latitude of p.
func (p *PointFeature) Lat() float64 { return p.P.Y }

// Lon returns the longitude of p.
func (p *PointFeature) Lon() float64 { return p.P.X }

// Segment is one precomputed line segment in decimal degrees.
type Segment struct {
	ALat, ALon, BLat, BLon float64
}

// LineFeature is a polyline-type infrastructure feature (transmission
// line, fiber route, or river). Segments and BBox are derived from
// Coords at construction and must not be modified afterward.
type LineFeature struct {
	Coords   geom.LineString // X is longitude, Y is latitude
	Segments []Segment
	BBox     *geom.Bounds
	Meta     Meta
}

// NewLineFeature builds a LineFeature from a vertex list, deriving the
// adjacent-pair segment list and the axis-aligned bounding box in one
// pass. It returns nil if coords has fewer than two vertices.
func NewLineFeature(coords geom.LineString, meta Meta) *LineFeature {
	if len(coords) < 2 {
		return nil
	}
	f := &LineFeature{
		Coords:   coords,
		Segments: make([]Segment, 0, len(coords)-1),
		BBox:     geom.NewBoundsPoint(coords[0]),
		Meta:     meta,
	}
	for i := 1; i < len(coords); i++ {
		a, b := coords[i-1], coords[i]
		f.Segments = append(f.Segments, Segment{
			ALat: a.Y, ALon: a.X, BLat: b.Y, BLon: b.X,
		})
		f.BBox.Extend(geom.NewBoundsPoint(b))
	}
	return f
}

// DistanceKm returns the minimum distance in kilometers from
// (lat, lon) to any segment of f.
func (f *LineFeature) DistanceKm(lat, lon float64) float64 {
	min := -1.0
	for _, s := range f.Segments {
		d := PointToSegmentKm(lat, lon, s.ALat, s.ALon, s.BLat, s.BLon)
		if min < 0 || d < min {
			min = d
		}
	}
	return min
}
