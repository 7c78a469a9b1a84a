/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"reflect"
	"strconv"
	"strings"
)

// Dumper renders an indented outline of a tree. Positions are left out, so
// two dumps are equal whenever the trees are structurally equal.
type Dumper struct {
	Output string
	indent int
}

func (d *Dumper) Visit(node ASTNode) Visitor {
	if node == nil {
		d.indent -= 1
		return nil
	}

	level := strings.Repeat("    ", d.indent)

	value := node.Value()
	switch t := node.(type) {
	case *Document:
		value = ""
	case *OptionNode:
		value = t.Name + " = " + t.Val
		if t.Kind == OptionString {
			value = t.Name + " = " + strconv.Quote(t.Val)
		}
	case *ImportNode:
		value = strconv.Quote(t.Path)
	case *TypeRefNode:
		kind := "ref"
		if t.Primitive {
			kind = "primitive"
		}
		value = kind + "(" + t.Base + ")"
		for _, m := range t.Modifiers {
			value += " " + m.String()
		}
	}

	t := reflect.TypeOf(node)
	output := level + t.Elem().Name() + "[" + value + "]" + "\n"

	d.Output += output
	d.indent += 1

	return d
}

// Dump returns the outline of node
func Dump(node ASTNode) string {
	d := Dumper{}
	Walk(&d, node)
	return d.Output
}
