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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kylelemons/godebug/pretty"
)

func TestNormalizeLine(t *testing.T) {
	tests := []struct {
		line     string
		opts     InputConfig
		expected string
		keep     bool
	}{
		{"  a  ", InputConfig{TrimSpace: true}, "a", true},
		{"  a  ", InputConfig{}, "  a  ", true},
		{"   ", InputConfig{TrimSpace: true, SkipEmpty: true}, "", false},
		{"   ", InputConfig{SkipEmpty: true}, "   ", true},
		{"", InputConfig{}, "", true},
	}

	for _, tc := range tests {
		got, keep := normalizeLine(tc.line, tc.opts)
		if got != tc.expected || keep != tc.keep {
			t.Errorf("normalizeLine(%q, %+v) = %q, %v; want %q, %v", tc.line, tc.opts, got, keep, tc.expected, tc.keep)
		}
	}
}

func TestCompareNumeric(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"2", "10", -1},
		{"10", "2", 1},
		{"-1.5", "0", -1},
		{"10", "abc", -1},
		{"abc", "2", 1},
		{"abc", "abd", -1},
		{"1", "1.0", -1},
		{"7", "7", 0},
	}

	for _, tc := range tests {
		if got := compareNumeric(tc.a, tc.b); got != tc.expected {
			t.Errorf("compareNumeric(%q, %q) = %d; want %d", tc.a, tc.b, got, tc.expected)
		}
	}
}

func TestLoadInto(t *testing.T) {
	opts := defaultConfig.Input
	set := newLineSet(opts)
	src := LineSource{Name: "test", Reader: strings.NewReader("pear\n apple\n\npear\nfig\n"), Size: -1}

	added, err := loadInto(set, src, opts, false)
	if err != nil {
		t.Fatalf("loadInto: %v", err)
	}
	if added != 3 {
		t.Errorf("loadInto added %d; want 3", added)
	}
	if diff := pretty.Compare(set.Values(), []string{"apple", "fig", "pear"}); diff != "" {
		t.Errorf("values diff (-got +want):\n%s", diff)
	}
	if err := set.Check(); err != nil {
		t.Errorf("Check: %v", err)
	}
}

func TestLoadIntoNumeric(t *testing.T) {
	opts := defaultConfig.Input
	opts.Numeric = true
	set := newLineSet(opts)
	src := LineSource{Name: "test", Reader: strings.NewReader("10\nx\n9\n-3\n10\n"), Size: -1}

	if _, err := loadInto(set, src, opts, false); err != nil {
		t.Fatalf("loadInto: %v", err)
	}
	if diff := pretty.Compare(set.Values(), []string{"-3", "9", "10", "x"}); diff != "" {
		t.Errorf("values diff (-got +want):\n%s", diff)
	}
}

func TestLoadSetFromFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.txt")
	second := filepath.Join(dir, "second.txt")
	if err := os.WriteFile(first, []byte("c\na\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("b\na\n"), 0644); err != nil {
		t.Fatal(err)
	}

	set, err := loadSet([]string{first, second}, defaultConfig.Input, false)
	if err != nil {
		t.Fatalf("loadSet: %v", err)
	}
	if diff := pretty.Compare(set.Values(), []string{"a", "b", "c"}); diff != "" {
		t.Errorf("values diff (-got +want):\n%s", diff)
	}
}

func TestOpenSourcesMissingFile(t *testing.T) {
	_, _, err := openSources([]string{filepath.Join(t.TempDir(), "nope.txt")})
	if err == nil {
		t.Error("Expected error for missing file, got nil")
	}
}

func TestNewLoadProgress(t *testing.T) {
	opts := InputConfig{ProgressThreshold: 100}

	if bar := newLoadProgress(LineSource{Size: 50}, opts, true); bar != nil {
		t.Error("small source got a progress bar")
	}
	if bar := newLoadProgress(LineSource{Size: -1}, opts, true); bar != nil {
		t.Error("source of unknown size got a progress bar")
	}
	if bar := newLoadProgress(LineSource{Size: 500}, opts, false); bar != nil {
		t.Error("progress bar shown while disabled")
	}
	if bar := newLoadProgress(LineSource{Name: "big", Size: 500}, opts, true); bar == nil {
		t.Error("large source got no progress bar")
	}
}
