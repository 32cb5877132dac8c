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
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("avl: keys out of order")
	ErrBalance = errors.New("avl: subtree heights differ by more than one")
	ErrHeight  = errors.New("avl: cached height is stale")
	ErrSize    = errors.New("avl: cached size does not match node count")
)

// Validate walks the whole tree and checks ordering, balance, cached heights
// and the cached size. It returns the first violation found, or nil.
func (tree *Tree[K]) Validate() error {
	count, err := tree.validate(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if count != tree.size {
		return fmt.Errorf("%w: counted %d, cached %d", ErrSize, count, tree.size)
	}
	return nil
}

// validate checks the subtree rooted at n against the exclusive bounds lo and
// hi (nil meaning unbounded) and returns its node count.
func (tree *Tree[K]) validate(n *node[K], lo, hi *K) (int, error) {
	if n == nil {
		return 0, nil
	}
	if lo != nil && tree.compare(n.key, *lo) <= 0 {
		return 0, fmt.Errorf("%w: %v is not greater than %v", ErrOrder, n.key, *lo)
	}
	if hi != nil && tree.compare(n.key, *hi) >= 0 {
		return 0, fmt.Errorf("%w: %v is not less than %v", ErrOrder, n.key, *hi)
	}

	left, err := tree.validate(n.left, lo, &n.key)
	if err != nil {
		return 0, err
	}
	right, err := tree.validate(n.right, &n.key, hi)
	if err != nil {
		return 0, err
	}

	if want := max(heightOf(n.left), heightOf(n.right)) + 1; n.height != want {
		return 0, fmt.Errorf("%w: node %v has height %d, want %d", ErrHeight, n.key, n.height, want)
	}
	if bf := n.balanceFactor(); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("%w: node %v has balance factor %d", ErrBalance, n.key, bf)
	}
	return left + right + 1, nil
}
