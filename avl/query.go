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

// Stats summarises the shape of a tree and the work done to keep it balanced.
type Stats struct {
	Len    int
	Height int

	// Rotation counts are cumulative since New or the last Clear. A double
	// rotation counts once in each direction.
	LeftRotations  int
	RightRotations int
}

// find walks down from the root and returns the node holding key together
// with its depth, or nil when the key is absent.
func (tree *Tree[K]) find(key K) (*node[K], int) {
	curr := tree.root
	depth := 0
	for curr != nil {
		c := tree.compare(key, curr.key)
		if c == 0 {
			return curr, depth
		}
		if c < 0 {
			curr = curr.left
		} else {
			curr = curr.right
		}
		depth++
	}
	return nil, -1
}

// Contains reports whether key is stored in the tree.
func (tree *Tree[K]) Contains(key K) bool {
	n, _ := tree.find(key)
	return n != nil
}

// Depth returns the number of edges from the root to key.
func (tree *Tree[K]) Depth(key K) (int, bool) {
	n, depth := tree.find(key)
	if n == nil {
		return 0, false
	}
	return depth, true
}

// HeightOf returns the height of the subtree rooted at key.
func (tree *Tree[K]) HeightOf(key K) (int, bool) {
	n, _ := tree.find(key)
	if n == nil {
		return 0, false
	}
	return n.height, true
}

// Height returns the height of the whole tree: 0 for a single node and
// EmptyHeight for an empty tree.
func (tree *Tree[K]) Height() int {
	return heightOf(tree.root)
}

// Min returns the smallest key.
func (tree *Tree[K]) Min() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return minNode(tree.root).key, true
}

// Max returns the largest key.
func (tree *Tree[K]) Max() (K, bool) {
	if tree.root == nil {
		var zero K
		return zero, false
	}
	return maxNode(tree.root).key, true
}

func (tree *Tree[K]) IsEmpty() bool {
	return tree.root == nil
}

func (tree *Tree[K]) Len() int {
	return tree.size
}

func (tree *Tree[K]) Stats() Stats {
	return Stats{
		Len:            tree.size,
		Height:         tree.Height(),
		LeftRotations:  tree.leftRotations,
		RightRotations: tree.rightRotations,
	}
}

// minNode and maxNode expect a non-nil subtree root.
func minNode[K any](n *node[K]) *node[K] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func maxNode[K any](n *node[K]) *node[K] {
	for n.right != nil {
		n = n.right
	}
	return n
}
