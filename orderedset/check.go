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

// Check verifies the ordering, the cached heights and the AVL balance of
// every node. It returns nil for a healthy tree, otherwise an error wrapping
// ErrOrder, ErrHeight or ErrBalance.
func (s *Set[T]) Check() error {
	_, err := s.check(s.root, nil, nil)
	return err
}

// check returns the real height of the subtree at n. lo and hi are the
// exclusive bounds inherited from the ancestors, nil when unbounded.
func (s *Set[T]) check(n *node[T], lo, hi *T) (int, error) {
	if n == nil {
		return 0, nil
	}

	if lo != nil && s.cmp(*lo, n.value) >= 0 {
		return 0, fmt.Errorf("%w: %v is not greater than %v", ErrOrder, n.value, *lo)
	}
	if hi != nil && s.cmp(n.value, *hi) >= 0 {
		return 0, fmt.Errorf("%w: %v is not less than %v", ErrOrder, n.value, *hi)
	}

	lh, err := s.check(n.left, lo, &n.value)
	if err != nil {
		return 0, err
	}
	rh, err := s.check(n.right, &n.value, hi)
	if err != nil {
		return 0, err
	}

	h := max(lh, rh) + 1
	if n.height != h {
		return 0, fmt.Errorf("%w: node %v caches %d, actual %d", ErrHeight, n.value, n.height, h)
	}
	if lh-rh > 1 || rh-lh > 1 {
		return 0, fmt.Errorf("%w: node %v has subtrees of height %d and %d", ErrBalance, n.value, lh, rh)
	}

	return h, nil
}
