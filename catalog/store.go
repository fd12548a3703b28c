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

// Package catalog loads heterogeneous infrastructure records into
// immutable, grid-indexed catalog snapshots and answers
// nearest-feature queries against them.
package catalog

import "context"

// Record is one raw row from the feature store. Keys vary between
// collections and between upstream data versions; the loader absorbs
// the variance.
type Record map[string]interface{}

// Store collection names.
const (
	CollectionSubstations  = "substations"
	CollectionTransmission = "transmission_lines"
	CollectionFiber        = "fiber_cables"
	CollectionIXPs         = "internet_exchange_points"
	CollectionWater        = "water_resources"

	CollectionRenewableProjects = "renewable_projects"
	CollectionTECConnections    = "tec_connections"
)

// LayerCollections lists the five infrastructure collections a catalog
// is built from.
var LayerCollections = []string{
	CollectionSubstations,
	CollectionTransmission,
	CollectionFiber,
	CollectionIXPs,
	CollectionWater,
}

// Store delivers raw records from the external feature store. A limit
// of 0 requests every record in the collection. Implementations must be
// safe for concurrent use.
type Store interface {
	Fetch(ctx context.Context, collection string, limit int) ([]Record, error)
}
