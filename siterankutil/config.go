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

// Package siterankutil wires the scoring engine into a command-line
// interface: configuration loading, store construction, and the cobra
// command tree.
package siterankutil

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"

	"github.com/gridwatt/siterank/catalog"
	"github.com/gridwatt/siterank/store/bucket"
	"github.com/gridwatt/siterank/store/postgrest"
	"github.com/gridwatt/siterank/store/shpfile"
)

// Config is the TOML configuration of the siterank command.
// Environment variables SUPABASE_URL, SUPABASE_ANON_KEY, and
// INFRA_CACHE_TTL override the corresponding fields.
type Config struct {
	// Store selects the feature-store backend: "postgrest" (default),
	// "bucket", or "shpfile".
	Store string `toml:"store"`

	// StoreURL is the PostgREST project URL (without /rest/v1).
	StoreURL string `toml:"store_url"`
	// StoreKey is the PostgREST anon or service key.
	StoreKey string `toml:"store_key"`

	// BucketURL addresses the blob bucket for the "bucket" store,
	// e.g. "file://testdata/layers" or "s3://infra-dumps".
	BucketURL string `toml:"bucket_url"`

	// ShapefileDir is the layer directory for the "shpfile" store.
	ShapefileDir string `toml:"shapefile_dir"`

	// CacheTTLSeconds is how long a loaded catalog stays fresh.
	CacheTTLSeconds int `toml:"cache_ttl_seconds"`

	Persona     string `toml:"persona"`
	SourceTable string `toml:"source_table"`
	Limit       int    `toml:"limit"`
}

// LoadConfig reads the TOML file at path (skipped when empty) and
// applies environment overrides.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{Store: "postgrest", Limit: 100}
	if path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf("siterankutil: reading config %s: %w", path, err)
		}
	}
	if v := os.Getenv("SUPABASE_URL"); v != "" {
		cfg.StoreURL = v
	}
	if v := os.Getenv("SUPABASE_ANON_KEY"); v != "" {
		cfg.StoreKey = v
	}
	if v := os.Getenv("INFRA_CACHE_TTL"); v != "" {
		ttl, err := cast.ToIntE(v)
		if err != nil || ttl < 0 {
			return nil, fmt.Errorf("siterankutil: invalid INFRA_CACHE_TTL %q", v)
		}
		cfg.CacheTTLSeconds = ttl
	}
	return cfg, nil
}

// CacheTTL returns the configured catalog TTL as a duration; 0 means
// the package default.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

// OpenStore constructs the configured feature-store backend.
func (c *Config) OpenStore(ctx context.Context, log *logrus.Logger) (catalog.Store, error) {
	switch c.Store {
	case "", "postgrest":
		if c.StoreURL == "" {
			return nil, fmt.Errorf("siterankutil: store_url (or SUPABASE_URL) is required")
		}
		return postgrest.New(c.StoreURL, c.StoreKey, log), nil
	case "bucket":
		return bucket.Open(ctx, c.BucketURL)
	case "shpfile":
		return shpfile.New(c.ShapefileDir), nil
	default:
		return nil, fmt.Errorf("siterankutil: unknown store backend %q", c.Store)
	}
}
