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
	"fmt"
	"io"
)

type branch int

const (
	rootBranch branch = iota
	leftBranch
	rightBranch
)

// Fprint draws the tree sideways, larger values on top, one node per line
// with its cached height and balance factor. It returns the depth of the
// tree.
func (s *Set[T]) Fprint(w io.Writer) (int, error) {
	p := &printer[T]{w: w}
	depth := p.print(s.root, "", rootBranch)
	return depth, p.err
}

type printer[T any] struct {
	w   io.Writer
	err error
}

func (p *printer[T]) print(n *node[T], prefix string, br branch) int {
	if n == nil {
		return 0
	}

	rd := 0
	if n.right != nil {
		t := "       "
		if br == leftBranch {
			t = "|      "
		}
		rd = p.print(n.right, prefix+t, rightBranch)
	}

	edge := "|------+ "
	switch br {
	case leftBranch:
		edge = "\\------+ "
	case rightBranch:
		edge = "/------+ "
	}
	if p.err == nil {
		_, p.err = fmt.Fprintf(p.w, "%s%s%v (h=%d bf=%+d)\n", prefix, edge, n.value, n.height, n.balanceFactor())
	}

	ld := 0
	if n.left != nil {
		t := "       "
		if br == rightBranch {
			t = "|      "
		}
		ld = p.print(n.left, prefix+t, leftBranch)
	}

	return max(ld, rd) + 1
}
