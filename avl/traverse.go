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

package avl

import (
	list "github.com/bahlo/generic-list-go"
)

// Every traversal returns a fresh snapshot; later mutations do not affect
// a slice that has already been returned.

// InOrder returns the keys in ascending order.
func (tree *Tree[K]) InOrder() []K {
	keys := make([]K, 0, tree.size)
	inOrder(tree.root, &keys)
	return keys
}

// PreOrder returns the keys node first, then left subtree, then right subtree.
func (tree *Tree[K]) PreOrder() []K {
	keys := make([]K, 0, tree.size)
	preOrder(tree.root, &keys)
	return keys
}

// PostOrder returns the keys left subtree first, then right subtree, then node.
func (tree *Tree[K]) PostOrder() []K {
	keys := make([]K, 0, tree.size)
	postOrder(tree.root, &keys)
	return keys
}

// LevelOrder returns the keys breadth-first, left to right within a level.
func (tree *Tree[K]) LevelOrder() []K {
	keys := make([]K, 0, tree.size)
	if tree.root == nil {
		return keys
	}

	queue := list.New[*node[K]]()
	queue.PushBack(tree.root)
	for queue.Len() > 0 {
		curr := queue.Remove(queue.Front())
		if curr.left != nil {
			queue.PushBack(curr.left)
		}
		if curr.right != nil {
			queue.PushBack(curr.right)
		}
		keys = append(keys, curr.key)
	}
	return keys
}

func inOrder[K any](n *node[K], keys *[]K) {
	if n == nil {
		return
	}
	inOrder(n.left, keys)
	*keys = append(*keys, n.key)
	inOrder(n.right, keys)
}

func preOrder[K any](n *node[K], keys *[]K) {
	if n == nil {
		return
	}
	*keys = append(*keys, n.key)
	preOrder(n.left, keys)
	preOrder(n.right, keys)
}

func postOrder[K any](n *node[K], keys *[]K) {
	if n == nil {
		return
	}
	postOrder(n.left, keys)
	postOrder(n.right, keys)
	*keys = append(*keys, n.key)
}

// Placement is one node of an Outline snapshot.
type Placement[K any] struct {
	Key    K
	Depth  int
	Height int
}

// Outline returns every node in ascending key order together with its depth
// and subtree height. It carries enough to redraw the tree's shape.
func (tree *Tree[K]) Outline() []Placement[K] {
	out := make([]Placement[K], 0, tree.size)
	outline(tree.root, 0, &out)
	return out
}

func outline[K any](n *node[K], depth int, out *[]Placement[K]) {
	if n == nil {
		return
	}
	outline(n.left, depth+1, out)
	*out = append(*out, Placement[K]{Key: n.key, Depth: depth, Height: n.height})
	outline(n.right, depth+1, out)
}
