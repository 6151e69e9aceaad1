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

import (
	"cmp"
	"iter"
)

// Set is an ordered set of unique values backed by an AVL tree.
// Use New or NewFunc to create one; the zero value has no ordering.
type Set[T any] struct {
	root *node[T]
	cmp  func(a, b T) int
	gen  uint64 // bumped on every structural change
}

// New returns an empty set ordered by the natural ordering of T.
func New[T cmp.Ordered]() *Set[T] {
	return &Set[T]{cmp: cmp.Compare[T]}
}

// NewFunc returns an empty set ordered by compare, which must be a total
// order returning a negative number, zero or a positive number.
func NewFunc[T any](compare func(a, b T) int) *Set[T] {
	if compare == nil {
		panic(ErrNilCompare)
	}
	return &Set[T]{cmp: compare}
}

// From builds a set from every value of seq. Duplicates are dropped.
func From[T cmp.Ordered](seq iter.Seq[T]) *Set[T] {
	s := New[T]()
	for v := range seq {
		s.Insert(v)
	}
	return s
}

// FromFunc is From with a custom ordering.
func FromFunc[T any](compare func(a, b T) int, seq iter.Seq[T]) *Set[T] {
	s := NewFunc(compare)
	for v := range seq {
		s.Insert(v)
	}
	return s
}

// Of builds a set holding values.
func Of[T cmp.Ordered](values ...T) *Set[T] {
	s := New[T]()
	for _, v := range values {
		s.Insert(v)
	}
	return s
}

// Insert adds value and reports whether it was absent. An equal value
// already in the set is left untouched.
func (s *Set[T]) Insert(value T) bool {
	path := make([]**node[T], 0, s.Height()+1)

	slot := &s.root
	for *slot != nil {
		path = append(path, slot)

		c := s.cmp(value, (*slot).value)
		switch {
		case c < 0:
			slot = &(*slot).left
		case c > 0:
			slot = &(*slot).right
		default:
			return false
		}
	}

	*slot = newNode(value)
	s.fixup(path)
	s.gen++
	return true
}

// Remove deletes value and reports whether it was present.
func (s *Set[T]) Remove(value T) bool {
	path := make([]**node[T], 0, s.Height()+1)

	slot := &s.root
	for {
		n := *slot
		if n == nil {
			return false
		}
		c := s.cmp(value, n.value)
		if c == 0 {
			break
		}
		path = append(path, slot)
		if c < 0 {
			slot = &n.left
		} else {
			slot = &n.right
		}
	}

	target := *slot
	switch {
	case target.left == nil:
		*slot = target.right
	case target.right == nil:
		*slot = target.left
	default:
		// The successor is the leftmost node of the right subtree. It has
		// no left child, so it is spliced out by its right child. The
		// target and every node down to the successor's parent change.
		path = append(path, slot)
		succ := &target.right
		for (*succ).left != nil {
			path = append(path, succ)
			succ = &(*succ).left
		}
		target.value = (*succ).value
		*succ = (*succ).right
	}

	s.fixup(path)
	s.gen++
	return true
}

// fixup walks the recorded slots from the deepest to the root, recomputing
// heights and rotating where the balance has drifted. A rotation rewrites
// only its own slot and deeper links, so the shallower slots stay valid.
func (s *Set[T]) fixup(path []**node[T]) {
	for i := len(path) - 1; i >= 0; i-- {
		*path[i] = rebalance(*path[i])
	}
}

// Contains reports whether value is in the set.
func (s *Set[T]) Contains(value T) bool {
	n := s.root
	for n != nil {
		c := s.cmp(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			n = n.right
		default:
			return true
		}
	}
	return false
}

// Len returns the number of values. It walks the whole set.
func (s *Set[T]) Len() int {
	count := 0
	it := s.Iter()
	for _, ok := it.Next(); ok; _, ok = it.Next() {
		count++
	}
	return count
}

func (s *Set[T]) IsEmpty() bool {
	return s.root == nil
}

// Clear drops every value.
func (s *Set[T]) Clear() {
	if s.root == nil {
		return
	}
	s.root = nil
	s.gen++
}

// Height returns the height of the tree, 0 when empty.
func (s *Set[T]) Height() int {
	return heightOf(s.root)
}

// Values returns the values in ascending order.
func (s *Set[T]) Values() []T {
	var values []T
	for v := range s.All() {
		values = append(values, v)
	}
	return values
}
