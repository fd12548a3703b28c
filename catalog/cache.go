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
	"sync"
	"sync/atomic"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/gridwatt/siterank/params"
)

// Cache serves catalog snapshots with TTL refresh. Readers take
// lock-free snapshot reads of the current catalog pointer; at most one
// writer rebuilds the catalog at a time and swaps it in atomically.
// A failed refresh leaves the previous snapshot authoritative.
type Cache struct {
	store Store
	ttl   time.Duration
	log   *logrus.Logger

	mu      sync.Mutex // serializes refreshes
	current atomic.Pointer[Catalog]

	now func() time.Time // overridable in tests
}

// NewCache creates a catalog cache. A ttl of 0 uses
// params.DefaultCacheTTL; a negative ttl disables expiry.
func NewCache(store Store, ttl time.Duration, log *logrus.Logger) *Cache {
	if ttl == 0 {
		ttl = params.DefaultCacheTTL
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Cache{store: store, ttl: ttl, log: log, now: time.Now}
}

func (c *Cache) fresh(cat *Catalog) bool {
	if cat == nil {
		return false
	}
	if c.ttl < 0 {
		return true
	}
	return c.now().Sub(cat.LoadedAt) <= c.ttl
}

// Catalog returns the current catalog snapshot, refreshing it first if
// the TTL has expired. If a refresh fails but a previous snapshot
// exists, the stale snapshot is returned and the error is logged; the
// error is returned only when no snapshot has ever been loaded.
func (c *Cache) Catalog(ctx context.Context) (*Catalog, error) {
	if cat := c.current.Load(); c.fresh(cat) {
		return cat, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	// Another writer may have refreshed while we waited on the lock.
	if cat := c.current.Load(); c.fresh(cat) {
		return cat, nil
	}

	cat, err := Load(ctx, c.store, c.log)
	if err != nil {
		if prev := c.current.Load(); prev != nil {
			c.log.WithError(err).Warn("catalog refresh failed; serving previous snapshot")
			return prev, nil
		}
		return nil, err
	}
	c.current.Store(cat)
	return cat, nil
}

// Invalidate forces the next Catalog call to refresh.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current.Store(nil)
}
