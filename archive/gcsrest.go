// archive/gcsrest.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// GCSInventory lists archived plans via the plain GCS JSON REST API rather
// than the full cloud.google.com/go/storage client -- useful for a status
// dashboard that just wants object names and sizes for a bucket without
// linking in the heavier client.
type GCSInventory struct {
	httpClient *http.Client
	bucket     string
}

// NewGCSInventory builds a REST-based lister. If credentialsJSON is nil,
// requests are unauthenticated, which only works against a public
// bucket.
func NewGCSInventory(ctx context.Context, bucket string, credentialsJSON []byte) (*GCSInventory, error) {
	if credentialsJSON == nil {
		return &GCSInventory{httpClient: &http.Client{Timeout: 30 * time.Second}, bucket: bucket}, nil
	}

	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, "https://www.googleapis.com/auth/devstorage.read_only")
	if err != nil {
		return nil, fmt.Errorf("archive: jwt config: %w", err)
	}

	client := oauth2.NewClient(ctx, jwtConfig.TokenSource(ctx))
	client.Timeout = 30 * time.Second
	return &GCSInventory{httpClient: client, bucket: bucket}, nil
}

type gcsObject struct {
	Name string `json:"name"`
	Size string `json:"size"`
}

type gcsListResponse struct {
	Items         []gcsObject `json:"items"`
	NextPageToken string      `json:"nextPageToken"`
}

// List returns archived object names mapped to their size in bytes,
// paging through the full bucket listing under prefix.
func (g *GCSInventory) List(ctx context.Context, prefix string) (map[string]int64, error) {
	objects := make(map[string]int64)
	pageToken := ""

	for {
		apiURL := fmt.Sprintf("https://storage.googleapis.com/storage/v1/b/%s/o?projection=noAcl", g.bucket)
		if prefix != "" {
			apiURL += "&prefix=" + url.QueryEscape(prefix)
		}
		if pageToken != "" {
			apiURL += "&pageToken=" + url.QueryEscape(pageToken)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
		if err != nil {
			return nil, err
		}
		resp, err := g.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("archive: GCS REST list returned status %d", resp.StatusCode)
		}

		var page gcsListResponse
		err = json.NewDecoder(resp.Body).Decode(&page)
		resp.Body.Close()
		if err != nil {
			return nil, err
		}

		for _, obj := range page.Items {
			size, err := strconv.ParseInt(obj.Size, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("archive: parsing size for %s: %w", obj.Name, err)
			}
			objects[obj.Name] = size
		}

		if page.NextPageToken == "" {
			return objects, nil
		}
		pageToken = page.NextPageToken
	}
}
