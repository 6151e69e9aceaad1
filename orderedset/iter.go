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

import "iter"

type cursorFrame[T any] struct {
	node  *node[T]
	depth int
}

// nodeCursor is an in-order traversal driven by an explicit stack of
// ancestors that still have to be produced.
type nodeCursor[T any] struct {
	stack   []cursorFrame[T]
	current *node[T]
	depth   int // depth of current, the root is 0
}

func newNodeCursor[T any](root *node[T]) nodeCursor[T] {
	return nodeCursor[T]{
		stack:   make([]cursorFrame[T], 0, heightOf(root)),
		current: root,
	}
}

// next returns the following node and its depth, or false once both the
// stack and the current subtree are empty.
func (c *nodeCursor[T]) next() (*node[T], int, bool) {
	for c.current != nil {
		c.stack = append(c.stack, cursorFrame[T]{node: c.current, depth: c.depth})
		c.current = c.current.left
		c.depth++
	}

	if len(c.stack) == 0 {
		return nil, 0, false
	}

	top := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	c.current = top.node.right
	c.depth = top.depth + 1
	return top.node, top.depth, true
}

// Iterator yields the values of a set in ascending order. It is forward
// only and cannot be restarted; ask the set for a new one instead.
type Iterator[T any] struct {
	set    *Set[T]
	cursor nodeCursor[T]
	gen    uint64
}

// Iter returns an iterator positioned before the smallest value.
func (s *Set[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		set:    s,
		cursor: newNodeCursor(s.root),
		gen:    s.gen,
	}
}

// Next returns the next value, or false when the iteration is over.
// It panics if the set changed since the iterator was created.
func (it *Iterator[T]) Next() (T, bool) {
	if it.set.gen != it.gen {
		panic(ErrConcurrentModification)
	}

	n, _, ok := it.cursor.next()
	if !ok {
		var zero T
		return zero, false
	}
	return n.value, true
}

// All returns a range-over-func sequence of the values in ascending order.
// The loop body must not change the set.
func (s *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.Iter()
		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Walk calls fn for every value in ascending order together with the depth
// of its node, the root being at depth 0. It stops when fn returns false.
func (s *Set[T]) Walk(fn func(value T, depth int) bool) {
	gen := s.gen
	c := newNodeCursor(s.root)
	for {
		if s.gen != gen {
			panic(ErrConcurrentModification)
		}
		n, depth, ok := c.next()
		if !ok || !fn(n.value, depth) {
			return
		}
	}
}
