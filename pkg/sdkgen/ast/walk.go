/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

// Walk traverses node depth-first in source order. Visit is called with nil
// once all children of a node have been walked.
func Walk(v Visitor, node ASTNode) {
	if v = v.Visit(node); v == nil {
		return
	}

	switch n := node.(type) {
	case *Document:
		for _, item := range n.Items {
			Walk(v, item)
		}

	case *OptionNode, *ImportNode, *ErrorNode, *SpreadNode, *EnumValueNode, *TypeRefNode:
		// Skip, leaf nodes

	case *EnumNode:
		for idx := range n.Values {
			Walk(v, &n.Values[idx])
		}

	case *StructNode:
		for _, m := range n.Members {
			Walk(v, m)
		}

	case *FieldNode:
		Walk(v, n.Type)

	case *GetNode:
		Walk(v, n.Return)

	case *FunctionNode:
		for idx := range n.Params {
			Walk(v, &n.Params[idx])
		}

		if n.Return != nil {
			Walk(v, n.Return)
		}

	default:
		panic("Unexpected ASTNode passed to Walk")
	}

	v.Visit(nil)
}
