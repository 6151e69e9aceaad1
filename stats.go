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

package main

import (
	"fmt"
	"io"
	"math"

	"github.com/cybrota/ordset/orderedset"
)

// TreeStats summarises the shape of a set's tree.
type TreeStats struct {
	Len      int
	Height   int
	Bound    int   // AVL worst case height for Len values
	PerDepth []int // nodes at each depth, root first
}

// avlHeightBound is the classic AVL limit 1.44·log2(n+2).
func avlHeightBound(n int) int {
	return int(math.Ceil(1.44 * math.Log2(float64(n+2))))
}

func computeStats[T any](set *orderedset.Set[T]) TreeStats {
	stats := TreeStats{
		Height:   set.Height(),
		PerDepth: make([]int, set.Height()),
	}

	set.Walk(func(_ T, depth int) bool {
		stats.Len++
		stats.PerDepth[depth]++
		return true
	})

	stats.Bound = avlHeightBound(stats.Len)
	return stats
}

func writeStats(w io.Writer, stats TreeStats, checkErr error, verified bool) {
	success, info, warning, errColor, reset := GetANSIColors()

	fmt.Fprintf(w, "%svalues%s  %d\n", info, reset, stats.Len)

	heightColor := success
	if stats.Height > stats.Bound {
		heightColor = warning
	}
	fmt.Fprintf(w, "%sheight%s  %s%d%s (AVL bound %d)\n", info, reset, heightColor, stats.Height, reset, stats.Bound)

	for depth, count := range stats.PerDepth {
		fmt.Fprintf(w, "  depth %2d: %d\n", depth, count)
	}

	if !verified {
		return
	}
	if checkErr != nil {
		fmt.Fprintf(w, "%scheck   FAILED: %v%s\n", errColor, checkErr, reset)
		return
	}
	fmt.Fprintf(w, "%scheck   ok%s\n", success, reset)
}
