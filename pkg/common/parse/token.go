/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import "fmt"

type TokenType interface {
	ToString() string
}

// Location is a half-open byte range into the scanned input
type Location struct {
	Start int
	End   int
}

// Position is the human facing location of a token, used for diagnostics
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

type Token struct {
	Type     TokenType
	Lexeme   string
	Value    string
	Location Location
	Position Position
}
