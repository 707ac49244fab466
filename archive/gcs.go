// archive/gcs.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package archive

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"
)

// GCSBackend archives plans to a Google Cloud Storage bucket. Credentials
// come from the FLIGHTPLAN_GCS_CREDENTIALS environment variable, as JSON,
// matching the teacher's weather-ingest backend's convention of a single
// env var rather than requiring Application Default Credentials setup on
// every competition laptop.
type GCSBackend struct {
	ctx    context.Context
	client *storage.Client
	bucket *storage.BucketHandle
}

func NewGCSBackend(ctx context.Context, bucketName string) (*GCSBackend, error) {
	var opts []option.ClientOption
	if creds := os.Getenv("FLIGHTPLAN_GCS_CREDENTIALS"); creds != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(creds)))
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("archive: gcs client: %w", err)
	}

	return &GCSBackend{ctx: ctx, client: client, bucket: client.Bucket(bucketName)}, nil
}

func (g *GCSBackend) StoreObject(path string, object any) (int64, error) {
	w := g.bucket.Object(path).NewWriter(g.ctx)
	n, err := encodeObject(w, object)
	if err != nil {
		return 0, err
	}
	return n, w.Close()
}

func (g *GCSBackend) ReadObject(path string, result any) error {
	r, err := g.bucket.Object(path).NewReader(g.ctx)
	if err != nil {
		return err
	}
	defer r.Close()
	return decodeObject(r, result)
}

func (g *GCSBackend) List(ctx context.Context, prefix string) ([]string, error) {
	prefix = filepath.Clean(prefix)
	it := g.bucket.Objects(ctx, &storage.Query{Prefix: prefix})

	var names []string
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}

func (g *GCSBackend) Close() error { return g.client.Close() }
