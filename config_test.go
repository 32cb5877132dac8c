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
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadConfigFromMissingFile(t *testing.T) {
	config, err := LoadConfigFrom(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigFromPartialFile(t *testing.T) {
	path := writeConfig(t, "keys:\n  numeric: true\nrender:\n  cache_ttl: 30s\n")

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.True(t, config.Keys.Numeric)
	assert.Equal(t, 30*time.Second, config.Render.CacheTTL)
	assert.True(t, config.Render.Color)
	assert.Equal(t, defaultConfig.Filter, config.Filter)
	assert.Equal(t, defaultConfig.Loader, config.Loader)
}

func TestLoadConfigFromMalformedFile(t *testing.T) {
	path := writeConfig(t, "keys: [not, a, map\n")

	config, err := LoadConfigFrom(path)
	assert.Error(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestLoadConfigZeroFilterFallsBack(t *testing.T) {
	path := writeConfig(t, "filter:\n  bloom_bits: 0\n")

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig.Filter, config.Filter)
}

func TestWriteDefaultConfigRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	require.NoError(t, writeDefaultConfig(path))

	config, err := LoadConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig, *config)
}

func TestDefaultConfigIsACopy(t *testing.T) {
	config := DefaultConfig()
	config.Keys.Numeric = true
	assert.False(t, defaultConfig.Keys.Numeric)
}
