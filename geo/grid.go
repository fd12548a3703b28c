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

import (
	"math"

	"github.com/ctessum/geom"
)

// DefaultCellDeg is the default grid cell size. 0.5° is roughly 55 km
// north-south, so one ring of cells covers the 100 km search radii used
// by the proximity engine.
const DefaultCellDeg = 0.5

// ApproxCellWidthKm is the approximate width of a DefaultCellDeg cell
// at the equator.
const ApproxCellWidthKm = DefaultCellDeg * KmPerDegree

type cellKey struct {
	Row, Col int
}

// Grid is a uniform lat/lon grid index. Point features occupy one cell;
// line features are stamped into every cell their bounding box overlaps.
// F must be a pointer type: query results are deduplicated by identity.
// A Grid is immutable once populated and safe for concurrent reads.
type Grid[F comparable] struct {
	cellDeg float64
	cells   map[cellKey][]F
}

// NewGrid returns an empty grid with the given cell size in degrees.
// A cellDeg ≤ 0 falls back to DefaultCellDeg.
func NewGrid[F comparable](cellDeg float64) *Grid[F] {
	if cellDeg <= 0 {
		cellDeg = DefaultCellDeg
	}
	return &Grid[F]{cellDeg: cellDeg, cells: make(map[cellKey][]F)}
}

func (g *Grid[F]) key(lat, lon float64) cellKey {
	return cellKey{
		Row: int(math.Floor((lat + 90) / g.cellDeg)),
		Col: int(math.Floor((lon + 180) / g.cellDeg)),
	}
}

// InsertPoint adds f to the cell containing (lat, lon).
func (g *Grid[F]) InsertPoint(lat, lon float64, f F) {
	k := g.key(lat, lon)
	g.cells[k] = append(g.cells[k], f)
}

// InsertBounds stamps f into every cell overlapped by b, once per cell.
// Bounds follow the geom convention: X is longitude, Y is latitude.
func (g *Grid[F]) InsertBounds(b *geom.Bounds, f F) {
	if b == nil || b.Empty() {
		return
	}
	min := g.key(b.Min.Y, b.Min.X)
	max := g.key(b.Max.Y, b.Max.X)
	for row := min.Row; row <= max.Row; row++ {
		for col := min.Col; col <= max.Col; col++ {
			k := cellKey{Row: row, Col: col}
			g.cells[k] = append(g.cells[k], f)
		}
	}
}

// Query returns every feature within ±steps cells of the cell
// containing (lat, lon). Each feature appears at most once even if it
// is stamped into several of the visited cells.
func (g *Grid[F]) Query(lat, lon float64, steps int) []F {
	if steps < 0 {
		steps = 0
	}
	origin := g.key(lat, lon)
	var out []F
	seen := make(map[F]struct{})
	for dr := -steps; dr <= steps; dr++ {
		for dc := -steps; dc <= steps; dc++ {
			k := cellKey{Row: origin.Row + dr, Col: origin.Col + dc}
			for _, f := range g.cells[k] {
				if _, ok := seen[f]; ok {
					continue
				}
				seen[f] = struct{}{}
				out = append(out, f)
			}
		}
	}
	return out
}

// Len returns the total number of cell entries in the grid. Line
// features stamped into several cells are counted once per cell.
func (g *Grid[F]) Len() int {
	n := 0
	for _, fs := range g.cells {
		n += len(fs)
	}
	return n
}

// StepsForRadius returns the number of grid rings needed to cover a
// search radius in kilometers.
func StepsForRadius(rKm float64) int {
	w := ApproxCellWidthKm
	if w < 1 {
		w = 1
	}
	steps := int(math.Ceil(rKm/w)) + 1
	if steps < 1 {
		steps = 1
	}
	return steps
}
