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
	"bufio"
	"io"

	"github.com/cybrota/ordset/orderedset"
	"github.com/willf/bloom"
)

// Deduper remembers which lines it has seen. The bloom filter answers
// "definitely new" without touching the tree; a possible hit is confirmed
// against the set.
type Deduper struct {
	filter *bloom.BloomFilter
	seen   *orderedset.Set[string]

	// FalsePositives counts bloom hits the set did not confirm.
	FalsePositives int
}

func NewDeduper(cfg DedupConfig) *Deduper {
	return &Deduper{
		filter: bloom.New(cfg.BloomSize, cfg.BloomHashes),
		seen:   orderedset.New[string](),
	}
}

// Add reports whether line is seen for the first time.
func (d *Deduper) Add(line string) bool {
	if d.filter.TestString(line) {
		if d.seen.Contains(line) {
			return false
		}
		d.FalsePositives++
	}

	d.filter.AddString(line)
	d.seen.Insert(line)
	return true
}

// Seen exposes the distinct lines collected so far.
func (d *Deduper) Seen() *orderedset.Set[string] {
	return d.seen
}

// writeUnique copies every first occurrence of a line in sources to w,
// keeping input order.
func writeUnique(w io.Writer, sources []LineSource, d *Deduper, opts InputConfig, showProgress bool) error {
	out := bufio.NewWriter(w)

	var writeErr error
	for _, src := range sources {
		err := eachLine(src, opts, showProgress, func(line string) {
			if writeErr != nil || !d.Add(line) {
				return
			}
			if _, err := out.WriteString(line + "\n"); err != nil {
				writeErr = err
			}
		})
		if err != nil {
			return err
		}
		if writeErr != nil {
			return writeErr
		}
	}

	return out.Flush()
}
