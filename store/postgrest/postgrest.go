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

// Package postgrest is a feature-store client for PostgREST-style APIs
// (Supabase). Collections map to tables; fetches are retried with
// exponential backoff.
package postgrest

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"

	"github.com/gridwatt/siterank/catalog"
)

// Store fetches records over the PostgREST API. Safe for concurrent
// use.
type Store struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *logrus.Logger

	// MaxRetries bounds the retry loop per fetch.
	MaxRetries uint64
}

// New creates a store client. baseURL is the project URL without the
// /rest/v1 suffix; apiKey is the anon or service key.
func New(baseURL, apiKey string, log *logrus.Logger) *Store {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Store{
		baseURL:    baseURL,
		apiKey:     apiKey,
		client:     &http.Client{Timeout: 30 * time.Second},
		log:        log,
		MaxRetries: 4,
	}
}

// Fetch implements catalog.Store.
func (s *Store) Fetch(ctx context.Context, collection string, limit int) ([]catalog.Record, error) {
	q := url.Values{"select": {"*"}}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	u := fmt.Sprintf("%s/rest/v1/%s?%s", s.baseURL, url.PathEscape(collection), q.Encode())

	var recs []catalog.Record
	op := func() error {
		var err error
		recs, err = s.fetchOnce(ctx, u)
		return err
	}
	notify := func(err error, d time.Duration) {
		s.log.WithError(err).WithFields(logrus.Fields{
			"collection": collection,
			"retry_in":   d,
		}).Warn("store fetch failed; retrying")
	}
	policy := backoff.WithMaxRetries(backoff.NewExponentialBackOff(), s.MaxRetries)
	if err := backoff.RetryNotify(op, backoff.WithContext(policy, ctx), notify); err != nil {
		return nil, fmt.Errorf("postgrest: fetching %s: %w", collection, err)
	}
	return recs, nil
}

func (s *Store) fetchOnce(ctx context.Context, u string) ([]catalog.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, backoff.Permanent(err)
	}
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		err := fmt.Errorf("status %d: %s", resp.StatusCode, body)
		if resp.StatusCode >= 400 && resp.StatusCode < 500 && resp.StatusCode != http.StatusTooManyRequests {
			return nil, backoff.Permanent(err)
		}
		return nil, err
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber() // coordinates survive as json.Number, not lossy float re-encoding
	var recs []catalog.Record
	if err := dec.Decode(&recs); err != nil {
		return nil, backoff.Permanent(err)
	}
	return recs, nil
}
