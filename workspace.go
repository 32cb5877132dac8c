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
	"cmp"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cybrota/avlkit/avl"
	"github.com/willf/bloom"
)

var (
	ErrBadKey   = errors.New("invalid key")
	ErrBadOrder = errors.New("unknown traversal order")
)

// Order names a full traversal of the tree.
type Order string

const (
	OrderIn    Order = "in"
	OrderPre   Order = "pre"
	OrderPost  Order = "post"
	OrderLevel Order = "level"
)

func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case OrderIn, OrderPre, OrderPost, OrderLevel:
		return o, nil
	}
	return "", fmt.Errorf("%w %q (want in, pre, post or level)", ErrBadOrder, s)
}

// keyedTree hides the key type of the underlying avl.Tree. Every method takes
// and returns keys in their canonical string form.
type keyedTree interface {
	canonical(raw string) (string, error)
	insert(key string) bool
	delete(key string) bool
	contains(key string) bool
	depth(key string) (int, bool)
	heightOf(key string) (int, bool)
	min() (string, bool)
	max() (string, bool)
	traverse(order Order) []string
	outline() []avl.Placement[string]
	stats() avl.Stats
	validate() error
	clear()
}

type typedTree[K cmp.Ordered] struct {
	tree   *avl.Tree[K]
	parse  func(string) (K, error)
	format func(K) string
}

func (tt *typedTree[K]) canonical(raw string) (string, error) {
	key, err := tt.parse(raw)
	if err != nil {
		return "", err
	}
	return tt.format(key), nil
}

// must parses a key that already went through canonical.
func (tt *typedTree[K]) must(key string) K {
	k, err := tt.parse(key)
	if err != nil {
		panic(fmt.Sprintf("non-canonical key %q: %v", key, err))
	}
	return k
}

func (tt *typedTree[K]) insert(key string) bool   { return tt.tree.Insert(tt.must(key)) }
func (tt *typedTree[K]) delete(key string) bool   { return tt.tree.Delete(tt.must(key)) }
func (tt *typedTree[K]) contains(key string) bool { return tt.tree.Contains(tt.must(key)) }

func (tt *typedTree[K]) depth(key string) (int, bool)    { return tt.tree.Depth(tt.must(key)) }
func (tt *typedTree[K]) heightOf(key string) (int, bool) { return tt.tree.HeightOf(tt.must(key)) }

func (tt *typedTree[K]) min() (string, bool) {
	k, ok := tt.tree.Min()
	if !ok {
		return "", false
	}
	return tt.format(k), true
}

func (tt *typedTree[K]) max() (string, bool) {
	k, ok := tt.tree.Max()
	if !ok {
		return "", false
	}
	return tt.format(k), true
}

func (tt *typedTree[K]) traverse(order Order) []string {
	var keys []K
	switch order {
	case OrderPre:
		keys = tt.tree.PreOrder()
	case OrderPost:
		keys = tt.tree.PostOrder()
	case OrderLevel:
		keys = tt.tree.LevelOrder()
	default:
		keys = tt.tree.InOrder()
	}

	out := make([]string, len(keys))
	for i, k := range keys {
		out[i] = tt.format(k)
	}
	return out
}

func (tt *typedTree[K]) outline() []avl.Placement[string] {
	placements := tt.tree.Outline()
	out := make([]avl.Placement[string], len(placements))
	for i, p := range placements {
		out[i] = avl.Placement[string]{Key: tt.format(p.Key), Depth: p.Depth, Height: p.Height}
	}
	return out
}

func (tt *typedTree[K]) stats() avl.Stats { return tt.tree.Stats() }
func (tt *typedTree[K]) validate() error  { return tt.tree.Validate() }
func (tt *typedTree[K]) clear()           { tt.tree.Clear() }

func newNumericTree() keyedTree {
	return &typedTree[int64]{
		tree: avl.New[int64](),
		parse: func(raw string) (int64, error) {
			n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil {
				return 0, fmt.Errorf("%w %q: not a 64-bit integer", ErrBadKey, raw)
			}
			return n, nil
		},
		format: func(n int64) string { return strconv.FormatInt(n, 10) },
	}
}

func newLexicalTree() keyedTree {
	return &typedTree[string]{
		tree: avl.New[string](),
		parse: func(raw string) (string, error) {
			if raw == "" {
				return "", fmt.Errorf("%w: empty key", ErrBadKey)
			}
			return raw, nil
		},
		format: func(s string) string { return s },
	}
}

// Workspace is the string-facing view of one AVL tree used by the CLI and the
// shell. A Bloom filter of every key ever inserted short-circuits lookups of
// keys that were never there.
type Workspace struct {
	keys    keyedTree
	numeric bool

	filter      *bloom.BloomFilter
	bloomBits   uint
	bloomHashes uint
}

// NewWorkspace returns an empty workspace. Numeric workspaces order keys as
// int64, the others lexically.
func NewWorkspace(numeric bool, filter FilterConfig) *Workspace {
	ws := &Workspace{
		numeric:     numeric,
		bloomBits:   filter.BloomBits,
		bloomHashes: filter.BloomHashes,
	}
	if numeric {
		ws.keys = newNumericTree()
	} else {
		ws.keys = newLexicalTree()
	}
	ws.filter = bloom.New(ws.bloomBits, ws.bloomHashes)
	return ws
}

func (ws *Workspace) Numeric() bool {
	return ws.numeric
}

// Insert adds raw and reports whether it was new.
func (ws *Workspace) Insert(raw string) (bool, error) {
	key, err := ws.keys.canonical(raw)
	if err != nil {
		return false, err
	}
	ws.filter.AddString(key)
	return ws.keys.insert(key), nil
}

// Delete removes raw and reports whether it was present.
func (ws *Workspace) Delete(raw string) (bool, error) {
	key, err := ws.keys.canonical(raw)
	if err != nil {
		return false, err
	}
	if !ws.filter.TestString(key) {
		return false, nil
	}
	return ws.keys.delete(key), nil
}

func (ws *Workspace) Contains(raw string) (bool, error) {
	key, err := ws.keys.canonical(raw)
	if err != nil {
		return false, err
	}
	if !ws.filter.TestString(key) {
		return false, nil
	}
	return ws.keys.contains(key), nil
}

// Depth returns the number of edges between the root and raw.
func (ws *Workspace) Depth(raw string) (int, bool, error) {
	key, err := ws.keys.canonical(raw)
	if err != nil {
		return 0, false, err
	}
	depth, ok := ws.keys.depth(key)
	return depth, ok, nil
}

// HeightOf returns the height of the subtree rooted at raw.
func (ws *Workspace) HeightOf(raw string) (int, bool, error) {
	key, err := ws.keys.canonical(raw)
	if err != nil {
		return 0, false, err
	}
	height, ok := ws.keys.heightOf(key)
	return height, ok, nil
}

func (ws *Workspace) Min() (string, bool) { return ws.keys.min() }
func (ws *Workspace) Max() (string, bool) { return ws.keys.max() }

func (ws *Workspace) Traverse(order Order) []string { return ws.keys.traverse(order) }
func (ws *Workspace) InOrder() []string             { return ws.keys.traverse(OrderIn) }
func (ws *Workspace) LevelOrder() []string          { return ws.keys.traverse(OrderLevel) }

func (ws *Workspace) Outline() []avl.Placement[string] { return ws.keys.outline() }

func (ws *Workspace) Stats() avl.Stats { return ws.keys.stats() }

func (ws *Workspace) Validate() error { return ws.keys.validate() }

// Clear empties the tree and resets the membership filter.
func (ws *Workspace) Clear() {
	ws.keys.clear()
	ws.filter.ClearAll()
}

// Signature identifies the tree's exact shape: a BST is rebuilt node for node
// by inserting its level-order sequence into an empty unbalanced tree.
func (ws *Workspace) Signature() string {
	prefix := "s:"
	if ws.numeric {
		prefix = "n:"
	}
	return prefix + strings.Join(ws.LevelOrder(), "\x1f")
}
