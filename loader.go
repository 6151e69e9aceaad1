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
	"cmp"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cybrota/ordset/orderedset"
	"github.com/schollz/progressbar/v3"
)

// LineSource is one input of a command: a file or stdin.
type LineSource struct {
	Name   string
	Reader io.Reader
	Size   int64 // -1 when unknown
}

// openSources opens every named file, or stdin when names is empty or "-".
// The returned func closes whatever was opened.
func openSources(names []string) ([]LineSource, func(), error) {
	if len(names) == 0 {
		names = []string{"-"}
	}

	var files []*os.File
	closeAll := func() {
		for _, f := range files {
			f.Close()
		}
	}

	sources := make([]LineSource, 0, len(names))
	for _, name := range names {
		if name == "-" {
			sources = append(sources, LineSource{Name: "stdin", Reader: os.Stdin, Size: -1})
			continue
		}

		f, err := os.Open(name)
		if err != nil {
			closeAll()
			if os.IsNotExist(err) {
				return nil, nil, fmt.Errorf("input file %s not found", name)
			}
			return nil, nil, err
		}
		files = append(files, f)

		size := int64(-1)
		if stat, err := f.Stat(); err == nil {
			size = stat.Size()
		}
		sources = append(sources, LineSource{Name: name, Reader: f, Size: size})
	}

	return sources, closeAll, nil
}

// normalizeLine applies the input options and reports whether the line
// should be kept.
func normalizeLine(line string, opts InputConfig) (string, bool) {
	if opts.TrimSpace {
		line = strings.TrimSpace(line)
	}
	if opts.SkipEmpty && line == "" {
		return "", false
	}
	return line, true
}

// compareNumeric orders lines holding numbers by value, before every other
// line. Equal numbers with different spellings ("1", "1.0") fall back to
// text order so the order stays total.
func compareNumeric(a, b string) int {
	fa, errA := strconv.ParseFloat(a, 64)
	fb, errB := strconv.ParseFloat(b, 64)

	switch {
	case errA == nil && errB == nil:
		if c := cmp.Compare(fa, fb); c != 0 {
			return c
		}
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	}
	return strings.Compare(a, b)
}

// newLineSet returns an empty set ordered as configured.
func newLineSet(opts InputConfig) *orderedset.Set[string] {
	if opts.Numeric {
		return orderedset.NewFunc(compareNumeric)
	}
	return orderedset.New[string]()
}

func newLineScanner(r io.Reader) *bufio.Scanner {
	scanner := bufio.NewScanner(r)
	// long lines are common in logs and dumps
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	return scanner
}

// newLoadProgress returns a byte progress bar on stderr for sources larger
// than the threshold, or nil.
func newLoadProgress(src LineSource, opts InputConfig, showProgress bool) *progressbar.ProgressBar {
	if !showProgress || src.Size < 0 || src.Size <= opts.ProgressThreshold {
		return nil
	}

	return progressbar.NewOptions64(src.Size,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription(fmt.Sprintf("Loading %s", src.Name)),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintln(os.Stderr)
		}),
	)
}

// eachLine calls fn for every kept line of src.
func eachLine(src LineSource, opts InputConfig, showProgress bool, fn func(line string)) error {
	r := src.Reader

	bar := newLoadProgress(src, opts, showProgress)
	if bar != nil {
		r = io.TeeReader(r, bar)
		defer bar.Finish()
	}

	scanner := newLineScanner(r)
	for scanner.Scan() {
		if line, ok := normalizeLine(scanner.Text(), opts); ok {
			fn(line)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", src.Name, err)
	}
	return nil
}

// loadInto inserts every kept line of src into set and returns the number
// of new values.
func loadInto(set *orderedset.Set[string], src LineSource, opts InputConfig, showProgress bool) (int, error) {
	added := 0
	err := eachLine(src, opts, showProgress, func(line string) {
		if set.Insert(line) {
			added++
		}
	})
	return added, err
}

// loadSet builds a set out of the named inputs.
func loadSet(names []string, opts InputConfig, showProgress bool) (*orderedset.Set[string], error) {
	sources, closeAll, err := openSources(names)
	if err != nil {
		return nil, err
	}
	defer closeAll()

	set := newLineSet(opts)
	for _, src := range sources {
		if _, err := loadInto(set, src, opts, showProgress); err != nil {
			return nil, err
		}
	}
	return set, nil
}
