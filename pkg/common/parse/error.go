/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"errors"
	"fmt"
	"strings"
)

// ErrRedeclare is wrapped by every SyntaxError raised for a name that was
// already declared in the same scope.
var ErrRedeclare = errors.New("redeclare")

type SyntaxError struct {
	Location Location
	Position Position
	Message  string
	Err      error
}

func NewSyntaxError(t Token, m string) SyntaxError {
	return SyntaxError{Location: t.Location, Position: t.Position, Message: m}
}

// NewRedeclareError reports t as a second declaration of name within kind
// (field, parameter, value).
func NewRedeclareError(t Token, kind, name string) SyntaxError {
	return SyntaxError{
		Location: t.Location,
		Position: t.Position,
		Message:  fmt.Sprintf("Error: cannot redeclare %s '%s'", kind, name),
		Err:      ErrRedeclare,
	}
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", s.Position, s.Message)
}

func (s *SyntaxError) Unwrap() error {
	return s.Err
}

// FormatError renders the offending line of input with the token underlined.
func (s *SyntaxError) FormatError(input string) string {
	return formatLocated(input, s.Location, s.Position, s.Message)
}

// LexicalError is raised by the scanner for malformed or unterminated
// character sequences.
type LexicalError struct {
	Location Location
	Position Position
	Message  string
}

func (l *LexicalError) Error() string {
	return fmt.Sprintf("%s: %s", l.Position, l.Message)
}

func (l *LexicalError) FormatError(input string) string {
	return formatLocated(input, l.Location, l.Position, l.Message)
}

func formatLocated(input string, loc Location, pos Position, message string) string {
	lineStart := 0
	if loc.Start > len(input) {
		loc.Start = len(input)
	}
	if i := strings.LastIndexByte(input[:loc.Start], '\n'); i >= 0 {
		lineStart = i + 1
	}
	lineEnd := len(input)
	if i := strings.IndexByte(input[lineStart:], '\n'); i >= 0 {
		lineEnd = lineStart + i
	}

	end := loc.End
	if end > lineEnd {
		end = lineEnd
	}
	repeat := end - loc.Start - 1
	if repeat < 0 {
		repeat = 0
	}

	errorString := fmt.Sprintf("Syntax error found in %s:\n", pos)
	errorString += input[lineStart:lineEnd]
	errorString += fmt.Sprintf("\n%s^%s ", strings.Repeat(" ", loc.Start-lineStart), strings.Repeat("~", repeat))
	errorString += fmt.Sprintf("%s\n", message)
	return errorString
}
