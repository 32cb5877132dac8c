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
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/schollz/progressbar/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertKeys(t *testing.T) {
	ws := newTestWorkspace(true)

	report := InsertKeys(ws, []string{"3", "1", "2", "3", "x"})

	assert.Equal(t, LoadReport{Read: 5, Inserted: 3, Duplicates: 1, Rejected: 1}, report)
	assert.Equal(t, []string{"1", "2", "3"}, ws.InOrder())
}

func TestLoadKeysSkipsCommentsAndBlanks(t *testing.T) {
	input := strings.Join([]string{
		"# primes",
		"7",
		"",
		"  3  ",
		"5",
		"# done",
		"7",
	}, "\n")
	ws := newTestWorkspace(true)

	report, err := LoadKeys(ws, strings.NewReader(input), nil)
	require.NoError(t, err)

	assert.Equal(t, LoadReport{Read: 4, Inserted: 3, Duplicates: 1}, report)
	assert.Equal(t, []string{"3", "5", "7"}, ws.InOrder())
}

func TestLoadKeysAdvancesProgressBar(t *testing.T) {
	input := "b\na\nc\n"
	bar := progressbar.NewOptions64(int64(len(input)), progressbar.OptionSetWriter(io.Discard))
	ws := newTestWorkspace(false)

	_, err := LoadKeys(ws, strings.NewReader(input), bar)
	require.NoError(t, err)

	assert.True(t, bar.IsFinished())
	assert.Equal(t, []string{"a", "b", "c"}, ws.InOrder())
}

func TestLoadKeysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys.txt")
	require.NoError(t, os.WriteFile(path, []byte("delta\nalpha\ncharlie\nbravo\n"), 0644))
	ws := newTestWorkspace(false)

	report, err := LoadKeysFile(ws, path, 0)
	require.NoError(t, err)

	assert.Equal(t, 4, report.Inserted)
	assert.Equal(t, []string{"alpha", "bravo", "charlie", "delta"}, ws.InOrder())
	assert.NoError(t, ws.Validate())
}

func TestLoadKeysFileMissing(t *testing.T) {
	_, err := LoadKeysFile(newTestWorkspace(false), filepath.Join(t.TempDir(), "missing.txt"), 0)
	assert.ErrorContains(t, err, "not found")
}
