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

// rebalance expects n's height to be current. It returns the root of the
// subtree after at most one single or double rotation.
func (tree *Tree[K]) rebalance(n *node[K]) *node[K] {
	balance := n.balanceFactor()

	// Left-heavy
	if balance > 1 {
		if n.left.balanceFactor() < 0 {
			// Left-Right case
			n.left = tree.rotateLeft(n.left)
		}
		return tree.rotateRight(n)
	}

	// Right-heavy
	if balance < -1 {
		if n.right.balanceFactor() > 0 {
			// Right-Left case
			n.right = tree.rotateRight(n.right)
		}
		return tree.rotateLeft(n)
	}

	return n
}

func (tree *Tree[K]) rotateLeft(n *node[K]) *node[K] {
	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	// n is now pivot's child, so its height goes first.
	n.updateHeight()
	pivot.updateHeight()

	tree.leftRotations++
	return pivot
}

func (tree *Tree[K]) rotateRight(n *node[K]) *node[K] {
	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	tree.rightRotations++
	return pivot
}
