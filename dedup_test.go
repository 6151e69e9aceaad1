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
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestDeduperAdd(t *testing.T) {
	d := NewDeduper(defaultConfig.Dedup)

	tests := []struct {
		line     string
		expected bool
	}{
		{"b", true},
		{"a", true},
		{"b", false},
		{"c", true},
		{"a", false},
	}
	for _, tc := range tests {
		if got := d.Add(tc.line); got != tc.expected {
			t.Errorf("Add(%q) = %v; want %v", tc.line, got, tc.expected)
		}
	}

	if diff := pretty.Compare(d.Seen().Values(), []string{"a", "b", "c"}); diff != "" {
		t.Errorf("Seen diff (-got +want):\n%s", diff)
	}
}

func TestDeduperSaturatedFilter(t *testing.T) {
	// A one-bit filter answers "maybe" for everything after the first add.
	d := NewDeduper(DedupConfig{BloomSize: 1, BloomHashes: 1})

	for _, line := range []string{"a", "b", "c"} {
		if !d.Add(line) {
			t.Errorf("Add(%q) = false; want true", line)
		}
	}
	if d.Add("b") {
		t.Error("Add(\"b\") = true for a repeated line")
	}
	if d.FalsePositives != 2 {
		t.Errorf("FalsePositives = %d; want 2", d.FalsePositives)
	}
}

func TestWriteUnique(t *testing.T) {
	sources := []LineSource{
		{Name: "one", Reader: strings.NewReader("b\na\n\nb\n"), Size: -1},
		{Name: "two", Reader: strings.NewReader("c\n a\n"), Size: -1},
	}

	var out bytes.Buffer
	d := NewDeduper(defaultConfig.Dedup)
	if err := writeUnique(&out, sources, d, defaultConfig.Input, false); err != nil {
		t.Fatalf("writeUnique: %v", err)
	}

	if got, want := out.String(), "b\na\nc\n"; got != want {
		t.Errorf("writeUnique wrote %q; want %q", got, want)
	}
}
