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

// Package avl provides a height-balanced binary search tree.
//
// Every Insert and Delete restores the AVL invariant on the way back up the
// recursion: for each node the heights of its two subtrees differ by at most
// one. Contains, Insert and Delete are O(log n).
//
// A Tree is not safe for concurrent use. Callers that share one across
// goroutines must guard it with their own lock.
package avl

import "cmp"

// Tree is an ordered set of keys kept as an AVL tree. Duplicate keys are
// ignored on insert.
type Tree[K any] struct {
	root    *node[K]
	size    int
	compare func(a, b K) int

	leftRotations  int
	rightRotations int
}

// New returns an empty tree ordered by the natural order of K.
func New[K cmp.Ordered]() *Tree[K] {
	return &Tree[K]{compare: cmp.Compare[K]}
}

// NewFunc returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when a > b.
func NewFunc[K any](compare func(a, b K) int) *Tree[K] {
	if compare == nil {
		panic("avl: nil compare func")
	}
	return &Tree[K]{compare: compare}
}

// Insert adds key to the tree. It reports whether the key was absent before
// the call; inserting an existing key leaves the tree untouched.
func (tree *Tree[K]) Insert(key K) bool {
	before := tree.size
	tree.root = tree.insertRecursive(tree.root, key)
	return tree.size != before
}

func (tree *Tree[K]) insertRecursive(n *node[K], key K) *node[K] {
	if n == nil {
		tree.size++
		return newLeaf(key)
	}

	switch c := tree.compare(key, n.key); {
	case c < 0:
		n.left = tree.insertRecursive(n.left, key)
	case c > 0:
		n.right = tree.insertRecursive(n.right, key)
	default:
		return n
	}

	n.updateHeight()
	return tree.rebalance(n)
}

// Delete removes key from the tree. It reports whether the key was present;
// deleting a missing key is a no-op.
func (tree *Tree[K]) Delete(key K) bool {
	before := tree.size
	tree.root = tree.deleteRecursive(tree.root, key)
	return tree.size != before
}

func (tree *Tree[K]) deleteRecursive(n *node[K], key K) *node[K] {
	if n == nil {
		return nil // Key not found
	}

	switch c := tree.compare(key, n.key); {
	case c < 0:
		n.left = tree.deleteRecursive(n.left, key)
	case c > 0:
		n.right = tree.deleteRecursive(n.right, key)
	default:
		if n.left == nil {
			tree.size--
			return n.right
		}
		if n.right == nil {
			tree.size--
			return n.left
		}
		// Two children: pull the in-order predecessor up, then unlink its node
		// from the left subtree. The recursive call does the size bookkeeping.
		pred := maxNode(n.left)
		n.key = pred.key
		n.left = tree.deleteRecursive(n.left, pred.key)
	}

	n.updateHeight()
	return tree.rebalance(n)
}

// Clear removes every key. Rotation counters are reset too.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.size = 0
	tree.leftRotations = 0
	tree.rightRotations = 0
}
