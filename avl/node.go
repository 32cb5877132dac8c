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

// EmptyHeight is the height of a missing subtree. A single node has height 0.
const EmptyHeight = -1

type node[K any] struct {
	key    K
	height int
	left   *node[K]
	right  *node[K]
}

func newLeaf[K any](key K) *node[K] {
	return &node[K]{key: key, height: 0}
}

func heightOf[K any](n *node[K]) int {
	if n == nil {
		return EmptyHeight
	}
	return n.height
}

func (n *node[K]) updateHeight() {
	n.height = max(heightOf(n.left), heightOf(n.right)) + 1
}

// balanceFactor is left height minus right height.
func (n *node[K]) balanceFactor() int {
	return heightOf(n.left) - heightOf(n.right)
}
