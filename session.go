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
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/cybrota/ordset/orderedset"
	"github.com/mattn/go-shellwords"
	"github.com/patrickmn/go-cache"
)

// ErrQuit is returned by Exec for the quit and exit commands.
var ErrQuit = errors.New("quit")

const sessionHelp = `# Shell commands

| Command | Effect |
|---|---|
| ` + "`add VALUE...`" + ` | insert values |
| ` + "`rm VALUE...`" + ` | remove values |
| ` + "`has VALUE`" + ` | membership test |
| ` + "`ls`" + ` | list values in order |
| ` + "`len`" + `, ` + "`height`" + ` | size and tree height |
| ` + "`tree`" + ` | draw the tree |
| ` + "`check`" + ` | verify order, heights and balance |
| ` + "`load FILE...`" + ` | insert every line of the files |
| ` + "`clear`" + ` | remove everything |
| ` + "`copy`" + ` | copy the listing to the clipboard |
| ` + "`quit`" + ` | leave the shell |

Quote values with spaces: ` + "`add \"two words\"`" + `
`

// Output is the result of one shell command.
type Output struct {
	Text     string
	Markdown bool
}

// Session runs shell commands against a live set. It is driven from a
// single goroutine.
type Session struct {
	set      *orderedset.Set[string]
	opts     InputConfig
	files    *cache.Cache
	copyText func(string) error
}

func NewSession(set *orderedset.Set[string], opts InputConfig, files *cache.Cache) *Session {
	return &Session{
		set:      set,
		opts:     opts,
		files:    files,
		copyText: clipboard.WriteAll,
	}
}

// Exec parses a command line and runs it.
func (s *Session) Exec(line string) (Output, error) {
	words, err := shellwords.Parse(line)
	if err != nil {
		return Output{}, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	if len(words) == 0 {
		return Output{}, nil
	}

	name, args := words[0], words[1:]
	switch name {
	case "add", "insert":
		return s.add(args)
	case "rm", "remove":
		return s.remove(args)
	case "has", "contains":
		if len(args) != 1 {
			return Output{}, fmt.Errorf("usage: has VALUE")
		}
		if s.set.Contains(args[0]) {
			return Output{Text: "yes"}, nil
		}
		return Output{Text: "no"}, nil
	case "ls", "list":
		return Output{Text: s.listing()}, nil
	case "len":
		return Output{Text: strconv.Itoa(s.set.Len())}, nil
	case "height":
		return Output{Text: strconv.Itoa(s.set.Height())}, nil
	case "tree":
		var sb strings.Builder
		if _, err := s.set.Fprint(&sb); err != nil {
			return Output{}, err
		}
		return Output{Text: strings.TrimRight(sb.String(), "\n")}, nil
	case "check":
		if err := s.set.Check(); err != nil {
			return Output{}, err
		}
		return Output{Text: "ok"}, nil
	case "load":
		return s.load(args)
	case "clear":
		s.set.Clear()
		return Output{Text: "cleared"}, nil
	case "copy":
		if err := s.copyText(s.listing()); err != nil {
			return Output{}, fmt.Errorf("failed to copy to clipboard: %w", err)
		}
		return Output{Text: "copied to clipboard"}, nil
	case "help":
		return Output{Text: sessionHelp, Markdown: true}, nil
	case "quit", "exit":
		return Output{}, ErrQuit
	}

	return Output{}, fmt.Errorf("unknown command %q, try help", name)
}

func (s *Session) add(values []string) (Output, error) {
	if len(values) == 0 {
		return Output{}, fmt.Errorf("usage: add VALUE...")
	}
	added := 0
	for _, v := range values {
		if s.set.Insert(v) {
			added++
		}
	}
	return Output{Text: fmt.Sprintf("added %d of %d", added, len(values))}, nil
}

func (s *Session) remove(values []string) (Output, error) {
	if len(values) == 0 {
		return Output{}, fmt.Errorf("usage: rm VALUE...")
	}
	removed := 0
	for _, v := range values {
		if s.set.Remove(v) {
			removed++
		}
	}
	return Output{Text: fmt.Sprintf("removed %d of %d", removed, len(values))}, nil
}

func (s *Session) load(paths []string) (Output, error) {
	if len(paths) == 0 {
		return Output{}, fmt.Errorf("usage: load FILE...")
	}

	var report []string
	for _, path := range paths {
		lines, cached, err := readLinesCached(s.files, path, s.opts)
		if err != nil {
			return Output{Text: strings.Join(report, "\n")}, err
		}

		added := 0
		for _, line := range lines {
			if s.set.Insert(line) {
				added++
			}
		}

		note := ""
		if cached {
			note = " (cached)"
		}
		report = append(report, fmt.Sprintf("%s: %d lines, %d new%s", path, len(lines), added, note))
	}
	return Output{Text: strings.Join(report, "\n")}, nil
}

func (s *Session) listing() string {
	return strings.Join(s.set.Values(), "\n")
}
