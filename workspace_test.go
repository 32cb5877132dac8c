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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWorkspace(numeric bool) *Workspace {
	return NewWorkspace(numeric, defaultConfig.Filter)
}

func TestWorkspaceNumericOrdering(t *testing.T) {
	ws := newTestWorkspace(true)
	for _, raw := range []string{"10", "9", "100", "-3", " 42 "} {
		inserted, err := ws.Insert(raw)
		require.NoError(t, err)
		assert.True(t, inserted)
	}

	assert.Equal(t, []string{"-3", "9", "10", "42", "100"}, ws.InOrder())

	// "010" canonicalises to "10".
	inserted, err := ws.Insert("010")
	require.NoError(t, err)
	assert.False(t, inserted)

	found, err := ws.Contains("0042")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestWorkspaceLexicalOrdering(t *testing.T) {
	ws := newTestWorkspace(false)
	for _, raw := range []string{"10", "9", "100"} {
		_, err := ws.Insert(raw)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"10", "100", "9"}, ws.InOrder())
}

func TestWorkspaceRejectsBadKeys(t *testing.T) {
	numeric := newTestWorkspace(true)
	_, err := numeric.Insert("twelve")
	assert.ErrorIs(t, err, ErrBadKey)
	_, _, err = numeric.Depth("1.5")
	assert.ErrorIs(t, err, ErrBadKey)

	lexical := newTestWorkspace(false)
	_, err = lexical.Insert("")
	assert.ErrorIs(t, err, ErrBadKey)
}

func TestWorkspaceQueries(t *testing.T) {
	ws := newTestWorkspace(true)
	for _, raw := range []string{"5", "3", "8", "1", "4", "7", "9"} {
		_, err := ws.Insert(raw)
		require.NoError(t, err)
	}

	depth, ok, err := ws.Depth("4")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, depth)

	height, ok, err := ws.HeightOf("3")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, height)

	_, ok, err = ws.Depth("6")
	require.NoError(t, err)
	assert.False(t, ok)

	low, ok := ws.Min()
	assert.True(t, ok)
	assert.Equal(t, "1", low)
	high, ok := ws.Max()
	assert.True(t, ok)
	assert.Equal(t, "9", high)

	deleted, err := ws.Delete("5")
	require.NoError(t, err)
	assert.True(t, deleted)
	assert.Equal(t, []string{"1", "3", "4", "7", "8", "9"}, ws.InOrder())
	assert.Equal(t, []string{"4", "3", "8", "1", "7", "9"}, ws.Traverse(OrderLevel))
	assert.NoError(t, ws.Validate())
}

func TestWorkspaceContainsAfterDelete(t *testing.T) {
	ws := newTestWorkspace(false)
	_, err := ws.Insert("alpha")
	require.NoError(t, err)
	_, err = ws.Delete("alpha")
	require.NoError(t, err)

	// The filter still says maybe; the tree has the final word.
	found, err := ws.Contains("alpha")
	require.NoError(t, err)
	assert.False(t, found)

	found, err = ws.Contains("never-inserted")
	require.NoError(t, err)
	assert.False(t, found)

	deleted, err := ws.Delete("never-inserted")
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestWorkspaceClear(t *testing.T) {
	ws := newTestWorkspace(false)
	_, err := ws.Insert("a")
	require.NoError(t, err)
	ws.Clear()

	assert.Empty(t, ws.InOrder())
	assert.Equal(t, -1, ws.Stats().Height)
	assert.False(t, ws.filter.TestString("a"))
}

func TestWorkspaceSignature(t *testing.T) {
	a := newTestWorkspace(true)
	b := newTestWorkspace(true)
	for _, raw := range []string{"1", "2", "3"} {
		_, _ = a.Insert(raw)
	}
	for _, raw := range []string{"2", "3", "1"} {
		_, _ = b.Insert(raw)
	}
	assert.Equal(t, a.Signature(), b.Signature())

	_, _ = b.Insert("4")
	assert.NotEqual(t, a.Signature(), b.Signature())

	assert.NotEqual(t, newTestWorkspace(true).Signature(), newTestWorkspace(false).Signature())
}

func TestParseOrder(t *testing.T) {
	for _, s := range []string{"in", "PRE", " post ", "level"} {
		_, err := ParseOrder(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseOrder("sideways")
	assert.ErrorIs(t, err, ErrBadOrder)
}
