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
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/cybrota/ordset/orderedset"
	"github.com/kylelemons/godebug/pretty"
)

func TestAVLHeightBound(t *testing.T) {
	tests := []struct {
		n        int
		expected int
	}{
		{7, 5},
		{1000, 15},
	}

	for _, tc := range tests {
		if got := avlHeightBound(tc.n); got != tc.expected {
			t.Errorf("avlHeightBound(%d) = %d; want %d", tc.n, got, tc.expected)
		}
	}
}

func TestComputeStats(t *testing.T) {
	stats := computeStats(orderedset.Of(1, 2, 3, 4, 5, 6, 7))

	want := TreeStats{Len: 7, Height: 3, Bound: 5, PerDepth: []int{1, 2, 4}}
	if diff := pretty.Compare(stats, want); diff != "" {
		t.Errorf("computeStats diff (-got +want):\n%s", diff)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := computeStats(orderedset.New[int]())
	if stats.Len != 0 || stats.Height != 0 || len(stats.PerDepth) != 0 {
		t.Errorf("computeStats(empty) = %+v", stats)
	}
}

func TestDepthBars(t *testing.T) {
	data, labels := depthBars(TreeStats{PerDepth: []int{1, 2, 3}})

	if diff := pretty.Compare(data, []float64{1, 2, 3}); diff != "" {
		t.Errorf("data diff (-got +want):\n%s", diff)
	}
	if diff := pretty.Compare(labels, []string{"0", "1", "2"}); diff != "" {
		t.Errorf("labels diff (-got +want):\n%s", diff)
	}
}

func TestSummaryText(t *testing.T) {
	stats := computeStats(orderedset.Of(1, 2, 3, 4, 5, 6, 7))

	text := summaryText("numbers.txt", stats, nil)
	for _, want := range []string{"numbers.txt", "Values:  7", "Full levels: 3 of 3", "[ok](fg:green)"} {
		if !strings.Contains(text, want) {
			t.Errorf("summaryText missing %q:\n%s", want, text)
		}
	}

	text = summaryText("numbers.txt", stats, errors.New("broken"))
	if !strings.Contains(text, "FAILED broken") {
		t.Errorf("summaryText does not report the failed check:\n%s", text)
	}
}

func TestWriteStats(t *testing.T) {
	stats := computeStats(orderedset.Of(1, 2, 3))

	var out bytes.Buffer
	writeStats(&out, stats, nil, false)
	if strings.Contains(out.String(), "check") {
		t.Errorf("unverified stats mention the check:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "depth  1: 2") {
		t.Errorf("stats missing depth line:\n%s", out.String())
	}

	out.Reset()
	writeStats(&out, stats, nil, true)
	if !strings.Contains(out.String(), "check   ok") {
		t.Errorf("verified stats missing ok:\n%s", out.String())
	}

	out.Reset()
	writeStats(&out, stats, errors.New("bad height"), true)
	if !strings.Contains(out.String(), "FAILED: bad height") {
		t.Errorf("verified stats missing failure:\n%s", out.String())
	}
}
