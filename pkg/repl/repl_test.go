/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"sort"
	"testing"
)

func TestParseREPLCommand(t *testing.T) {
	tt := []struct {
		test string
		line string
		kind CommandKind
		data string
	}{
		{"empty line submits", "", CommandSubmit, ""},
		{"whitespace submits", "   \t", CommandSubmit, ""},
		{"source", "type Foo {", CommandSource, "type Foo {"},
		{"source keeps indentation", "    a: int", CommandSource, "    a: int"},
		{"spread is source", "  ...Base", CommandSource, "  ...Base"},
		{"help", ".help", CommandHelp, ""},
		{"tokens upper case", ".TOKENS", CommandTokens, ""},
		{"clear with argument", ".clear now", CommandClear, ""},
		{"exit", " .exit ", CommandExit, ""},
		{"unknown", ".quit", CommandUnknown, ".quit"},
	}

	for _, tc := range tt {
		t.Run(tc.test, func(t *testing.T) {
			cmd := ParseREPLCommand(tc.line)
			if cmd.Kind != tc.kind {
				t.Errorf("wanted kind %d, got %d", tc.kind, cmd.Kind)
			}
			if cmd.Data != tc.data {
				t.Errorf("wanted data '%s', got '%s'", tc.data, cmd.Data)
			}
		})
	}
}

func TestSession(t *testing.T) {
	s := Session{}

	if s.Pending() {
		t.Error("new session should have nothing pending")
	}

	s.Feed("type Foo {")
	s.Feed("    a: int")
	s.Feed("}")

	if !s.Pending() || s.Peek() != "type Foo {\n    a: int\n}\n" {
		t.Errorf("unexpected pending source %q", s.Peek())
	}

	name, source := s.Take()
	if name != "repl-1" || source != "type Foo {\n    a: int\n}\n" {
		t.Errorf("unexpected submission %s %q", name, source)
	}

	if s.Pending() {
		t.Error("take should empty the buffer")
	}

	s.Feed("error Foo")
	s.Reset()
	s.Feed("error Bar")
	if name, source = s.Take(); name != "repl-2" || source != "error Bar\n" {
		t.Errorf("unexpected submission %s %q", name, source)
	}
}

func complete(c *WordCompleter, line string) []string {
	candidates, _ := c.Do([]rune(line), len([]rune(line)))
	ret := []string{}
	for _, r := range candidates {
		ret = append(ret, string(r))
	}
	sort.Strings(ret)
	return ret
}

func TestWordCompleter(t *testing.T) {
	c := NewCompleter()

	got := complete(c, "type Foo { a: da")
	if len(got) != 2 || got[0] != "te" || got[1] != "tetime" {
		t.Errorf("unexpected completions %v", got)
	}

	got = complete(c, "func")
	if len(got) != 1 || got[0] != "tion" {
		t.Errorf("unexpected completions %v", got)
	}

	got = complete(c, ".to")
	if len(got) != 1 || got[0] != "kens" {
		t.Errorf("unexpected completions %v", got)
	}

	if got = complete(c, "type Foo "); len(got) != 0 {
		t.Errorf("wanted no completions after a space, got %v", got)
	}

	_, length := c.Do([]rune("get ui"), 6)
	if length != 2 {
		t.Errorf("wanted prefix length 2, got %d", length)
	}
}
