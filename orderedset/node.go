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

package orderedset

import "fmt"

// node is a single vertex of the AVL tree. Children are owned exclusively
// by their parent; there are no parent pointers.
type node[T any] struct {
	value  T
	left   *node[T]
	right  *node[T]
	height int // height of the subtree rooted here, a leaf is 1
}

func newNode[T any](value T) *node[T] {
	return &node[T]{value: value, height: 1}
}

// heightOf returns the cached height of a subtree, 0 for an empty one.
func heightOf[T any](n *node[T]) int {
	if n == nil {
		return 0
	}
	return n.height
}

func (n *node[T]) updateHeight() {
	n.height = max(heightOf(n.left), heightOf(n.right)) + 1
}

// balanceFactor is the left height minus the right height. Children must
// already carry correct heights.
func (n *node[T]) balanceFactor() int {
	return heightOf(n.left) - heightOf(n.right)
}

func rotateLeft[T any](n *node[T]) *node[T] {
	if n == nil || n.right == nil {
		panic(fmt.Errorf("%w: rotate left needs a right child", ErrMissingChild))
	}

	pivot := n.right

	n.right = pivot.left
	pivot.left = n

	// child first, then the new subtree root
	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

func rotateRight[T any](n *node[T]) *node[T] {
	if n == nil || n.left == nil {
		panic(fmt.Errorf("%w: rotate right needs a left child", ErrMissingChild))
	}

	pivot := n.left

	n.left = pivot.right
	pivot.right = n

	n.updateHeight()
	pivot.updateHeight()

	return pivot
}

// rebalance recomputes the height of n and restores the AVL balance at n
// when it has drifted to +/-2. It returns the root of the subtree, which is
// a different node whenever a rotation happened.
func rebalance[T any](n *node[T]) *node[T] {
	n.updateHeight()

	switch bf := n.balanceFactor(); {
	case bf < -1:
		// Right-heavy
		if n.right.balanceFactor() > 0 {
			n.right = rotateRight(n.right)
		}
		return rotateLeft(n)
	case bf > 1:
		// Left-heavy
		if n.left.balanceFactor() < 0 {
			n.left = rotateLeft(n.left)
		}
		return rotateRight(n)
	}

	return n
}
