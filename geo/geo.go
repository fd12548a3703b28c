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

// Package geo provides geodesic distance primitives and a uniform
// lat/lon grid index for nearest-feature queries.
package geo

import (
	"math"

	"github.com/ctessum/geom"
)

// EarthRadiusKm is the mean Earth radius used for haversine distances.
const EarthRadiusKm = 6371.0

// KmPerDegree is the approximate north-south extent of one degree of
// latitude.
const KmPerDegree = 111.32

// Haversine returns the great-circle distance in kilometers between
// two points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1r := lat1 * math.Pi / 180
	lat2r := lat2 * math.Pi / 180
	dLat := (lat2 - lat1) * math.Pi / 180
	dLon := (lon2 - lon1) * math.Pi / 180
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1r)*math.Cos(lat2r)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return EarthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}

// PointToSegmentKm returns the distance in kilometers from the point
// (lat, lon) to the segment (aLat, aLon)-(bLat, bLon). The projection
// onto the segment is computed in degree space and the final distance
// is the haversine from the query point to the clamped projection.
// Degree space is anisotropic away from the equator, but at the ≤100 km
// search radii used by the proximity engine the error is small.
func PointToSegmentKm(lat, lon, aLat, aLon, bLat, bLon float64) float64 {
	dLat := bLat - aLat
	dLon := bLon - aLon
	lenSq := dLat*dLat + dLon*dLon
	t := 0.0
	if lenSq > 0 {
		t = ((lat-aLat)*dLat + (lon-aLon)*dLon) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return Haversine(lat, lon, aLat+t*dLat, aLon+t*dLon)
}

// BoundsWithinSearch reports whether the bounding box b, expanded by a
// margin corresponding to rKm, contains the point (lat, lon). Bounds
// follow the geom convention: X is longitude and Y is latitude. The
// cosine floor of 0.2 keeps the longitude margin bounded near the poles.
func BoundsWithinSearch(b *geom.Bounds, lat, lon, rKm float64) bool {
	if b == nil {
		return false
	}
	latMargin := rKm / KmPerDegree
	cosLat := math.Cos(lat * math.Pi / 180)
	if cosLat < 0.2 {
		cosLat = 0.2
	}
	lonMargin := rKm / (KmPerDegree * cosLat)
	return lat >= b.Min.Y-latMargin && lat <= b.Max.Y+latMargin &&
		lon >= b.Min.X-lonMargin && lon <= b.Max.X+lonMargin
}
