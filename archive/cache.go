// archive/cache.go
// Copyright(c) 2022-2024 vice contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package archive

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"

	"github.com/brunoga/deep"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/kestrel-uas/flightplan/mission"
)

// PlanCache memoizes planned paths by a hash of their mission input, so
// re-running the planner on an unchanged mission file -- as happens
// constantly while tuning obstacle placement before a flight -- doesn't
// repeat the O(N^2) edge filter.
type PlanCache struct {
	lru *lru.Cache[string, []mission.GeoAlt]
}

// NewPlanCache builds an in-memory LRU cache holding up to size entries.
func NewPlanCache(size int) (*PlanCache, error) {
	c, err := lru.New[string, []mission.GeoAlt](size)
	if err != nil {
		return nil, err
	}
	return &PlanCache{lru: c}, nil
}

// Key hashes a mission record into a stable cache key. Field order in
// the JSON encoding is fixed by Record's struct tags, so the same
// mission always hashes the same way.
func Key(rec *mission.Record) (string, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:]), nil
}

// Get returns a deep copy of the cached path, if present, so a caller
// that mutates the result (e.g. appending an uploader-specific marker)
// can't corrupt the cached entry for the next lookup.
func (c *PlanCache) Get(key string) ([]mission.GeoAlt, bool) {
	path, ok := c.lru.Get(key)
	if !ok {
		return nil, false
	}
	cp, err := deep.Copy(path)
	if err != nil {
		return path, true
	}
	return cp, true
}

func (c *PlanCache) Put(key string, path []mission.GeoAlt) {
	c.lru.Add(key, path)
}
