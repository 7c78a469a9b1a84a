/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"fmt"
	"strings"
)

// A Session accumulates lines of source until they are submitted. Each
// submission is parsed as its own document.
type Session struct {
	buffer strings.Builder
	lines  int
	count  int
}

// Feed adds a source line to the pending buffer
func (s *Session) Feed(line string) {
	s.buffer.WriteString(line)
	s.buffer.WriteByte('\n')
	s.lines++
}

// Pending reports whether there are lines waiting to be submitted
func (s *Session) Pending() bool {
	return s.lines > 0
}

// Take returns a name and the pending source, and empties the buffer
func (s *Session) Take() (string, string) {
	s.count++
	source := s.buffer.String()
	s.Reset()
	return fmt.Sprintf("repl-%d", s.count), source
}

// Peek returns the pending source without consuming it
func (s *Session) Peek() string {
	return s.buffer.String()
}

func (s *Session) Reset() {
	s.buffer.Reset()
	s.lines = 0
}
