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
	"testing"
	"time"

	"github.com/kylelemons/godebug/pretty"
	"github.com/patrickmn/go-cache"
)

func TestCacheLinesAndGetLines(t *testing.T) {
	c := NewFileCache(defaultConfig.Cache)
	key := "/tmp/words.txt@1"
	lines := []string{"alpha", "beta"}

	// Missing keys report a miss.
	if got, ok := GetLines(c, key); ok || got != nil {
		t.Errorf("GetLines(%q) = %v, %v; want nil, false", key, got, ok)
	}

	CacheLines(c, key, lines)

	got, ok := GetLines(c, key)
	if !ok {
		t.Fatalf("GetLines(%q) missed after CacheLines", key)
	}
	if diff := pretty.Compare(got, lines); diff != "" {
		t.Errorf("GetLines(%q) diff (-got +want):\n%s", key, diff)
	}
}

func TestCacheExpiration(t *testing.T) {
	c := cache.New(100*time.Millisecond, 50*time.Millisecond)
	key := "expiring"

	CacheLines(c, key, []string{"soon gone"})
	if _, ok := GetLines(c, key); !ok {
		t.Fatalf("GetLines(%q) missed right after caching", key)
	}

	time.Sleep(150 * time.Millisecond)

	if got, ok := GetLines(c, key); ok {
		t.Errorf("After expiration, GetLines(%q) = %v; want a miss", key, got)
	}
}

func TestReadLinesCached(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("b\n  a \n\nb\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewFileCache(defaultConfig.Cache)
	opts := defaultConfig.Input
	want := []string{"b", "a", "b"}

	lines, cached, err := readLinesCached(c, path, opts)
	if err != nil {
		t.Fatalf("readLinesCached: %v", err)
	}
	if cached {
		t.Errorf("first read reported a cache hit")
	}
	if diff := pretty.Compare(lines, want); diff != "" {
		t.Errorf("first read diff (-got +want):\n%s", diff)
	}

	lines, cached, err = readLinesCached(c, path, opts)
	if err != nil {
		t.Fatalf("readLinesCached: %v", err)
	}
	if !cached {
		t.Errorf("second read missed the cache")
	}
	if diff := pretty.Compare(lines, want); diff != "" {
		t.Errorf("second read diff (-got +want):\n%s", diff)
	}

	// Different options must not share an entry.
	raw := opts
	raw.TrimSpace = false
	raw.SkipEmpty = false
	lines, cached, err = readLinesCached(c, path, raw)
	if err != nil {
		t.Fatalf("readLinesCached: %v", err)
	}
	if cached {
		t.Errorf("read with other options reported a cache hit")
	}
	if diff := pretty.Compare(lines, []string{"b", "  a ", "", "b"}); diff != "" {
		t.Errorf("raw read diff (-got +want):\n%s", diff)
	}
}

func TestReadLinesCachedAfterModification(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.txt")
	if err := os.WriteFile(path, []byte("one\n"), 0644); err != nil {
		t.Fatal(err)
	}

	c := NewFileCache(defaultConfig.Cache)
	opts := defaultConfig.Input
	if _, _, err := readLinesCached(c, path, opts); err != nil {
		t.Fatalf("readLinesCached: %v", err)
	}

	if err := os.WriteFile(path, []byte("one\ntwo\n"), 0644); err != nil {
		t.Fatal(err)
	}
	later := time.Now().Add(time.Hour)
	if err := os.Chtimes(path, later, later); err != nil {
		t.Fatal(err)
	}

	lines, cached, err := readLinesCached(c, path, opts)
	if err != nil {
		t.Fatalf("readLinesCached: %v", err)
	}
	if cached {
		t.Errorf("modified file was served from the cache")
	}
	if diff := pretty.Compare(lines, []string{"one", "two"}); diff != "" {
		t.Errorf("diff (-got +want):\n%s", diff)
	}
}

func TestReadLinesCachedMissingFile(t *testing.T) {
	c := NewFileCache(defaultConfig.Cache)
	path := filepath.Join(t.TempDir(), "missing.txt")

	if _, _, err := readLinesCached(c, path, defaultConfig.Input); err == nil {
		t.Errorf("readLinesCached(%q) succeeded; want an error", path)
	}
}
