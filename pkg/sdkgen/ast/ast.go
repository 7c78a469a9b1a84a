/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"strings"

	"github.com/dburkart/sdkgen/pkg/common/parse"
)

type ASTNode interface {
	Value() string
	Pos() parse.Position
}

type Visitor interface {
	Visit(ASTNode) Visitor
}

// Modifier wraps the type built so far. Modifiers apply in slice order, so
// the last modifier is the outermost.
type Modifier int

const (
	ModOptional Modifier = iota
	ModArray
)

func (m Modifier) String() string {
	if m == ModArray {
		return "[]"
	}
	return "?"
}

type OptionKind int

const (
	OptionString OptionKind = iota
	OptionBool
)

type (
	BaseNode struct {
		Token parse.Token
	}

	// Document is the root of a parsed source, holding top-level declarations
	// in source order.
	Document struct {
		BaseNode
		Items []ASTNode
	}

	OptionNode struct {
		BaseNode
		Name string
		Kind OptionKind
		Val  string
	}

	ImportNode struct {
		BaseNode
		Path string
	}

	ErrorNode struct {
		BaseNode
		Name string
	}

	EnumNode struct {
		BaseNode
		Name   string
		Values []EnumValueNode
	}

	EnumValueNode struct {
		BaseNode
		Name string
	}

	StructNode struct {
		BaseNode
		Name    string
		Members []ASTNode
	}

	// SpreadNode includes every field of the named type. The name is not
	// resolved here.
	SpreadNode struct {
		BaseNode
		Name string
	}

	FieldNode struct {
		BaseNode
		Name string
		Type *TypeRefNode
	}

	GetNode struct {
		BaseNode
		Name   string
		Return *TypeRefNode
	}

	FunctionNode struct {
		BaseNode
		Name   string
		Params []FieldNode
		Return *TypeRefNode
	}

	TypeRefNode struct {
		BaseNode
		Base      string
		Primitive bool
		Modifiers []Modifier
	}
)

func (b *BaseNode) Value() string {
	return b.Token.Lexeme
}

func (b *BaseNode) Pos() parse.Position {
	return b.Token.Position
}

func (d *Document) Value() string {
	return d.Token.Position.Filename
}

func (o *OptionNode) Value() string {
	return o.Name
}

func (i *ImportNode) Value() string {
	return i.Path
}

func (e *ErrorNode) Value() string {
	return e.Name
}

func (e *EnumNode) Value() string {
	return e.Name
}

func (e *EnumValueNode) Value() string {
	return e.Name
}

func (s *StructNode) Value() string {
	return s.Name
}

func (s *SpreadNode) Value() string {
	return s.Name
}

func (f *FieldNode) Value() string {
	return f.Name
}

func (g *GetNode) Value() string {
	return g.Name
}

func (f *FunctionNode) Value() string {
	return f.Name
}

func (t *TypeRefNode) Value() string {
	return t.String()
}

// String renders the type reference the way it is written in source
func (t *TypeRefNode) String() string {
	var b strings.Builder
	b.WriteString(t.Base)
	for _, m := range t.Modifiers {
		b.WriteString(m.String())
	}
	return b.String()
}

// Fields returns the field members of s, skipping spreads
func (s *StructNode) Fields() []*FieldNode {
	var fields []*FieldNode
	for _, m := range s.Members {
		if f, ok := m.(*FieldNode); ok {
			fields = append(fields, f)
		}
	}
	return fields
}

// Spreads returns the names of the types whose fields s includes
func (s *StructNode) Spreads() []string {
	var names []string
	for _, m := range s.Members {
		if sp, ok := m.(*SpreadNode); ok {
			names = append(names, sp.Name)
		}
	}
	return names
}

type Stats struct {
	Options   int
	Imports   int
	Errors    int
	Enums     int
	Types     int
	Gets      int
	Functions int
}

// Stats counts the top-level declarations of d by kind
func (d *Document) Stats() Stats {
	var s Stats
	for _, item := range d.Items {
		switch item.(type) {
		case *OptionNode:
			s.Options++
		case *ImportNode:
			s.Imports++
		case *ErrorNode:
			s.Errors++
		case *EnumNode:
			s.Enums++
		case *StructNode:
			s.Types++
		case *GetNode:
			s.Gets++
		case *FunctionNode:
			s.Functions++
		}
	}
	return s
}
