/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dburkart/sdkgen/pkg/common/parse"
)

const eof = rune(-1)

// A Scanner produces one token at a time from Input. It holds no lookahead
// between calls, only the scan position, and is not safe for concurrent use.
type Scanner struct {
	Input    string
	Filename string
	Pos      int
	Line     int
	Column   int
}

func New(filename, input string) *Scanner {
	s := &Scanner{Input: input, Filename: filename}
	s.init()
	return s
}

func (s *Scanner) init() {
	if s.Line == 0 {
		s.Line = 1
		s.Column = 1
	}
	if s.Filename == "" {
		s.Filename = "-"
	}
}

func (s *Scanner) position() parse.Position {
	return parse.Position{Filename: s.Filename, Line: s.Line, Column: s.Column}
}

// current returns the rune under the scan position, or eof
func (s *Scanner) current() (rune, int) {
	if s.Pos >= len(s.Input) {
		return eof, 0
	}
	return utf8.DecodeRuneInString(s.Input[s.Pos:])
}

// peek returns the rune n bytes past the scan position, or eof
func (s *Scanner) peek(n int) rune {
	if s.Pos+n >= len(s.Input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(s.Input[s.Pos+n:])
	return r
}

// next consumes the current rune, keeping line and column up to date
func (s *Scanner) next() rune {
	r, width := s.current()
	if r == eof {
		return eof
	}
	s.Pos += width
	if r == '\n' {
		s.Line++
		s.Column = 1
	} else {
		s.Column++
	}
	return r
}

func isLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isAlphaNumeric(r rune) bool {
	return isLetter(r) || (r >= '0' && r <= '9')
}

// unexpected reports the rune under the scan position as a lexical error
func (s *Scanner) unexpected() error {
	r, width := s.current()
	err := &parse.LexicalError{
		Location: parse.Location{Start: s.Pos, End: s.Pos + width},
		Position: s.position(),
	}
	if r == eof {
		err.Message = fmt.Sprintf("Error: unexpected end of file at %s", s.Filename)
	} else {
		err.Message = fmt.Sprintf("Error: unexpected character %q", r)
	}
	return err
}

// SkipTrivia consumes whitespace and comments up to the next significant
// rune. An unterminated block comment consumes the rest of the input.
func (s *Scanner) SkipTrivia() {
	for {
		r, _ := s.current()
		switch {
		case r == ' ' || r == '\t' || r == '\r' || r == '\n':
			s.next()
		case r == '/' && s.peek(1) == '/':
			for r != eof && r != '\n' {
				s.next()
				r, _ = s.current()
			}
		case r == '/' && s.peek(1) == '*':
			s.next()
			s.next()
			for {
				r, _ = s.current()
				if r == eof {
					break
				}
				if r == '*' && s.peek(1) == '/' {
					s.next()
					s.next()
					break
				}
				s.next()
			}
		default:
			return
		}
	}
}

// MatchWord consumes a letter followed by any number of letters and digits,
// returning the spelling.
func (s *Scanner) MatchWord() string {
	start := s.Pos
	for r, _ := s.current(); isAlphaNumeric(r); r, _ = s.current() {
		s.next()
	}
	return s.Input[start:s.Pos]
}

// MatchString consumes a double-quoted literal, returning its value with
// escapes resolved. '\n' and '\t' are control characters, any other escaped
// rune stands for itself.
func (s *Scanner) MatchString() (string, error) {
	var value strings.Builder

	s.next()
	for {
		r, _ := s.current()
		switch r {
		case eof:
			return "", s.unexpected()
		case '\\':
			s.next()
			escaped, _ := s.current()
			switch escaped {
			case eof:
				return "", s.unexpected()
			case 'n':
				value.WriteRune('\n')
			case 't':
				value.WriteRune('\t')
			default:
				value.WriteRune(escaped)
			}
		case '"':
			s.next()
			return value.String(), nil
		default:
			value.WriteRune(r)
		}
		s.next()
	}
}

// Emit the next Token found on Scanner.Input. At the end of input a TOK_EOF
// token is returned, never an error.
func (s *Scanner) Emit() (parse.Token, error) {
	var t parse.Token

	s.init()
	s.SkipTrivia()

	start := s.Pos
	t.Position = s.position()

	r, _ := s.current()
	switch {
	case r == eof:
		t.Type = TOK_EOF
	case r == '{':
		t.Type = TOK_CURLY_O
		s.next()
	case r == '}':
		t.Type = TOK_CURLY_X
		s.next()
	case r == '(':
		t.Type = TOK_PAREN_L
		s.next()
	case r == ')':
		t.Type = TOK_PAREN_R
		s.next()
	case r == '?':
		t.Type = TOK_OPTIONAL
		s.next()
	case r == ':':
		t.Type = TOK_COLON
		s.next()
	case r == '=':
		t.Type = TOK_EQUAL
		s.next()
	case r == '!':
		t.Type = TOK_EXCLAMATION
		s.next()
	case r == ',':
		t.Type = TOK_COMMA
		s.next()
	case r == '[':
		s.next()
		if r, _ = s.current(); r != ']' {
			return t, s.unexpected()
		}
		s.next()
		t.Type = TOK_ARRAY
	case r == '.':
		for i := 0; i < 3; i++ {
			if r, _ = s.current(); r != '.' {
				return t, s.unexpected()
			}
			s.next()
		}
		t.Type = TOK_SPREAD
	case r == '$':
		s.next()
		if r, _ = s.current(); !isLetter(r) {
			return t, s.unexpected()
		}
		t.Type = TOK_OPTION
		t.Value = s.MatchWord()
	case r == '"':
		value, err := s.MatchString()
		if err != nil {
			return t, err
		}
		t.Type = TOK_STRING
		t.Value = value
	case isLetter(r):
		t.Value = s.MatchWord()
		t.Type = Classify(t.Value)
	default:
		// Consume a lone '/' so the error points past it, as for '[' and '.'
		if r == '/' {
			s.next()
		}
		return t, s.unexpected()
	}

	t.Lexeme = s.Input[start:s.Pos]
	t.Location = parse.Location{Start: start, End: s.Pos}

	return t, nil
}

// Tokens scans the whole input, returning every token before TOK_EOF.
func (s *Scanner) Tokens() ([]parse.Token, error) {
	var tokens []parse.Token
	for {
		tok, err := s.Emit()
		if err != nil {
			return tokens, err
		}
		if tok.Type == TOK_EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}
