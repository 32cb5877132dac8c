// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	defaultRenderCacheTTL = 10 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// NewRenderCache creates a cache for tree drawings keyed by tree signature.
func NewRenderCache(ttl time.Duration) *cache.Cache {
	if ttl <= 0 {
		ttl = defaultRenderCacheTTL
	}
	return cache.New(ttl, renderCacheCleanup)
}

func CacheRendering(c *cache.Cache, signature string, drawing string) {
	c.Set(signature, drawing, cache.DefaultExpiration)
}

func GetRendering(c *cache.Cache, signature string) (string, bool) {
	val, ok := c.Get(signature)
	if !ok {
		return "", false
	}
	return val.(string), true
}
