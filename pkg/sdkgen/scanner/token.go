/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

type TokenType int

const (
	TOK_INVALID TokenType = iota
	TOK_EOF

	// Symbols
	TOK_CURLY_O
	TOK_CURLY_X
	TOK_PAREN_L
	TOK_PAREN_R
	TOK_OPTIONAL
	TOK_COLON
	TOK_EQUAL
	TOK_EXCLAMATION
	TOK_COMMA
	TOK_ARRAY
	TOK_SPREAD

	// Keywords
	TOK_TYPE
	TOK_GET
	TOK_FUNCTION
	TOK_ENUM
	TOK_IMPORT
	TOK_ERROR
	TOK_TRUE
	TOK_FALSE

	TOK_PRIMITIVE
	TOK_IDENTIFIER
	TOK_STRING
	TOK_OPTION
)

func (t TokenType) ToString() string {
	switch t {
	case TOK_INVALID:
		return "TOK_INVALID"
	case TOK_EOF:
		return "TOK_EOF"
	case TOK_CURLY_O:
		return "TOK_CURLY_O"
	case TOK_CURLY_X:
		return "TOK_CURLY_X"
	case TOK_PAREN_L:
		return "TOK_PAREN_L"
	case TOK_PAREN_R:
		return "TOK_PAREN_R"
	case TOK_OPTIONAL:
		return "TOK_OPTIONAL"
	case TOK_COLON:
		return "TOK_COLON"
	case TOK_EQUAL:
		return "TOK_EQUAL"
	case TOK_EXCLAMATION:
		return "TOK_EXCLAMATION"
	case TOK_COMMA:
		return "TOK_COMMA"
	case TOK_ARRAY:
		return "TOK_ARRAY"
	case TOK_SPREAD:
		return "TOK_SPREAD"
	case TOK_TYPE:
		return "TOK_TYPE"
	case TOK_GET:
		return "TOK_GET"
	case TOK_FUNCTION:
		return "TOK_FUNCTION"
	case TOK_ENUM:
		return "TOK_ENUM"
	case TOK_IMPORT:
		return "TOK_IMPORT"
	case TOK_ERROR:
		return "TOK_ERROR"
	case TOK_TRUE:
		return "TOK_TRUE"
	case TOK_FALSE:
		return "TOK_FALSE"
	case TOK_PRIMITIVE:
		return "TOK_PRIMITIVE"
	case TOK_IDENTIFIER:
		return "TOK_IDENTIFIER"
	case TOK_STRING:
		return "TOK_STRING"
	case TOK_OPTION:
		return "TOK_OPTION"
	}
	return "TOK_UNKNOWN"
}

// IsKeyword reports whether t is one of the reserved words
func (t TokenType) IsKeyword() bool {
	return t >= TOK_TYPE && t <= TOK_FALSE
}

// IsWord reports whether t was scanned from a bare word. Any word may be used
// where a field, parameter or enum value name is expected.
func (t TokenType) IsWord() bool {
	return t.IsKeyword() || t == TOK_PRIMITIVE || t == TOK_IDENTIFIER
}
