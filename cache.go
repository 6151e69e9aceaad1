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
	"os"
	"path/filepath"

	"github.com/patrickmn/go-cache"
)

// NewFileCache creates the cache of parsed input files used by the shell.
func NewFileCache(cfg CacheConfig) *cache.Cache {
	return cache.New(cfg.Expiration(), cfg.Cleanup())
}

// fileCacheKey identifies a file version: editing the file changes the
// modification time and so misses the cache.
func fileCacheKey(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s@%d", abs, info.ModTime().UnixNano()), nil
}

func CacheLines(c *cache.Cache, key string, lines []string) {
	c.SetDefault(key, lines)
}

func GetLines(c *cache.Cache, key string) ([]string, bool) {
	val, ok := c.Get(key)
	if !ok {
		return nil, false
	}
	return val.([]string), true
}

// readLinesCached returns the kept lines of a file, parsing it only when
// the cache has no entry for its current version.
func readLinesCached(c *cache.Cache, path string, opts InputConfig) ([]string, bool, error) {
	key, err := fileCacheKey(path)
	if err != nil {
		return nil, false, err
	}
	// the options change what is kept
	key = fmt.Sprintf("%s|%v|%v", key, opts.TrimSpace, opts.SkipEmpty)

	if lines, ok := GetLines(c, key); ok {
		return lines, true, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, false, err
	}
	defer f.Close()

	var lines []string
	src := LineSource{Name: path, Reader: f, Size: -1}
	if err := eachLine(src, opts, false, func(line string) {
		lines = append(lines, line)
	}); err != nil {
		return nil, false, err
	}

	CacheLines(c, key, lines)
	return lines, false, nil
}
