/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package repl

import (
	"sort"
	"strings"
	"unicode"

	"github.com/chzyer/readline"

	"github.com/dburkart/sdkgen/pkg/sdkgen/scanner"
)

// WordCompleter completes the word under the cursor from a fixed vocabulary
type WordCompleter struct {
	Words []string
}

var _ readline.AutoCompleter = (*WordCompleter)(nil)

// NewCompleter completes keywords, primitive types and meta commands
func NewCompleter() *WordCompleter {
	words := make([]string, 0, len(scanner.Keywords)+len(scanner.Primitives)+len(Commands))
	for k := range scanner.Keywords {
		words = append(words, k)
	}
	words = append(words, scanner.Primitives...)
	for c := range Commands {
		words = append(words, c)
	}
	sort.Strings(words)

	return &WordCompleter{Words: words}
}

// Do implements readline.AutoCompleter. Candidates are returned as the
// suffix still to be typed.
func (c *WordCompleter) Do(line []rune, pos int) ([][]rune, int) {
	start := pos
	for start > 0 && (unicode.IsLetter(line[start-1]) || unicode.IsDigit(line[start-1]) || line[start-1] == '.') {
		start--
	}

	prefix := string(line[start:pos])
	if prefix == "" {
		return nil, 0
	}

	var candidates [][]rune
	for _, w := range c.Words {
		if w != prefix && strings.HasPrefix(w, prefix) {
			candidates = append(candidates, []rune(w[len(prefix):]))
		}
	}

	return candidates, len(prefix)
}
