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

// Package bucket is a feature store backed by a blob bucket holding one
// JSON dump per collection ("<collection>.json"). Buckets are addressed
// as 'provider://name': "file" for the local filesystem (e.g. for
// testing and offline snapshots) and "s3" for AWS S3.
package bucket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"gocloud.dev/blob"
	"gocloud.dev/blob/fileblob"
	"gocloud.dev/blob/s3blob"

	"github.com/gridwatt/siterank/catalog"
)

// Store reads collection dumps from a blob bucket.
type Store struct {
	bucket *blob.Bucket
}

// Open opens the bucket specified by bucketURL and wraps it as a
// feature store.
func Open(ctx context.Context, bucketURL string) (*Store, error) {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return nil, fmt.Errorf("bucket.Open: %v", err)
	}
	var b *blob.Bucket
	switch u.Scheme {
	case "file":
		b, err = fileblob.OpenBucket(u.Hostname()+u.Path, nil)
	case "s3":
		b, err = s3Bucket(ctx, u.Hostname())
	default:
		return nil, fmt.Errorf("bucket.Open: invalid provider %s", u.Scheme)
	}
	if err != nil {
		return nil, err
	}
	return &Store{bucket: b}, nil
}

// s3Bucket opens an S3 bucket. It assumes the usual AWS environment
// variables are set: AWS_REGION, AWS_ACCESS_KEY_ID, and
// AWS_SECRET_ACCESS_KEY.
func s3Bucket(ctx context.Context, name string) (*blob.Bucket, error) {
	region := os.Getenv("AWS_REGION")
	if region == "" {
		region = "eu-west-2"
	}
	c := &aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewEnvCredentials(),
	}
	s := session.Must(session.NewSession(c))
	return s3blob.OpenBucket(ctx, s, name, nil)
}

// Close releases the underlying bucket.
func (s *Store) Close() error { return s.bucket.Close() }

// Fetch implements catalog.Store.
func (s *Store) Fetch(ctx context.Context, collection string, limit int) ([]catalog.Record, error) {
	data, err := s.bucket.ReadAll(ctx, collection+".json")
	if err != nil {
		return nil, fmt.Errorf("bucket: reading %s: %w", collection, err)
	}
	var recs []catalog.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, fmt.Errorf("bucket: decoding %s: %w", collection, err)
	}
	if limit > 0 && limit < len(recs) {
		recs = recs[:limit]
	}
	return recs, nil
}
