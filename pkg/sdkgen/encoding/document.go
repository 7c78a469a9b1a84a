/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package encoding

import (
	"github.com/dburkart/sdkgen/pkg/common/parse"
	"github.com/dburkart/sdkgen/pkg/sdkgen/ast"
)

// Document is the serializable form of an ast.Document handed to code
// generators and returned by the parse service.
type Document struct {
	Filename string        `json:"filename" yaml:"filename" msgpack:"filename"`
	Items    []Declaration `json:"items" yaml:"items" msgpack:"items"`
}

type Declaration struct {
	Kind     string   `json:"kind" yaml:"kind" msgpack:"kind"`
	Name     string   `json:"name,omitempty" yaml:"name,omitempty" msgpack:"name,omitempty"`
	Value    *string  `json:"value,omitempty" yaml:"value,omitempty" msgpack:"value,omitempty"`
	Bool     bool     `json:"bool,omitempty" yaml:"bool,omitempty" msgpack:"bool,omitempty"`
	Path     string   `json:"path,omitempty" yaml:"path,omitempty" msgpack:"path,omitempty"`
	Values   []string `json:"values,omitempty" yaml:"values,omitempty" msgpack:"values,omitempty"`
	Members  []Member `json:"members,omitempty" yaml:"members,omitempty" msgpack:"members,omitempty"`
	Params   []Member `json:"params,omitempty" yaml:"params,omitempty" msgpack:"params,omitempty"`
	Returns  *TypeRef `json:"returns,omitempty" yaml:"returns,omitempty" msgpack:"returns,omitempty"`
	Position Position `json:"position" yaml:"position" msgpack:"position"`
}

type Member struct {
	Kind     string   `json:"kind" yaml:"kind" msgpack:"kind"`
	Name     string   `json:"name" yaml:"name" msgpack:"name"`
	Type     *TypeRef `json:"type,omitempty" yaml:"type,omitempty" msgpack:"type,omitempty"`
	Position Position `json:"position" yaml:"position" msgpack:"position"`
}

// TypeRef lists modifiers innermost first, each one wrapping the previous
type TypeRef struct {
	Base      string   `json:"base" yaml:"base" msgpack:"base"`
	Primitive bool     `json:"primitive" yaml:"primitive" msgpack:"primitive"`
	Modifiers []string `json:"modifiers,omitempty" yaml:"modifiers,omitempty" msgpack:"modifiers,omitempty"`
}

type Position struct {
	Line   int `json:"line" yaml:"line" msgpack:"line"`
	Column int `json:"column" yaml:"column" msgpack:"column"`
}

func position(p parse.Position) Position {
	return Position{Line: p.Line, Column: p.Column}
}

func typeRef(t *ast.TypeRefNode) *TypeRef {
	if t == nil {
		return nil
	}

	ref := TypeRef{Base: t.Base, Primitive: t.Primitive}
	for _, m := range t.Modifiers {
		switch m {
		case ast.ModOptional:
			ref.Modifiers = append(ref.Modifiers, "optional")
		case ast.ModArray:
			ref.Modifiers = append(ref.Modifiers, "array")
		}
	}
	return &ref
}

func field(f *ast.FieldNode) Member {
	return Member{Kind: "field", Name: f.Name, Type: typeRef(f.Type), Position: position(f.Pos())}
}

// FromDocument converts doc into its serializable form
func FromDocument(doc *ast.Document) Document {
	out := Document{Filename: doc.Pos().Filename, Items: []Declaration{}}

	for _, item := range doc.Items {
		d := Declaration{Name: item.Value(), Position: position(item.Pos())}

		switch n := item.(type) {
		case *ast.OptionNode:
			d.Kind = "option"
			val := n.Val
			d.Value = &val
			d.Bool = n.Kind == ast.OptionBool
		case *ast.ImportNode:
			d.Kind = "import"
			d.Name = ""
			d.Path = n.Path
		case *ast.ErrorNode:
			d.Kind = "error"
		case *ast.EnumNode:
			d.Kind = "enum"
			for _, v := range n.Values {
				d.Values = append(d.Values, v.Name)
			}
		case *ast.StructNode:
			d.Kind = "type"
			for _, m := range n.Members {
				switch m := m.(type) {
				case *ast.SpreadNode:
					d.Members = append(d.Members, Member{Kind: "spread", Name: m.Name, Position: position(m.Pos())})
				case *ast.FieldNode:
					d.Members = append(d.Members, field(m))
				}
			}
		case *ast.GetNode:
			d.Kind = "get"
			d.Returns = typeRef(n.Return)
		case *ast.FunctionNode:
			d.Kind = "function"
			for idx := range n.Params {
				d.Params = append(d.Params, field(&n.Params[idx]))
			}
			d.Returns = typeRef(n.Return)
		}

		out.Items = append(out.Items, d)
	}

	return out
}
