/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package ast

import (
	"fmt"
	"strings"
)

// Render returns canonical source text for doc. Parsing the result yields a
// document with the same Dump as doc.
func Render(doc *Document) string {
	var b strings.Builder

	for i, item := range doc.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		renderItem(&b, item)
	}

	return b.String()
}

func renderItem(b *strings.Builder, item ASTNode) {
	switch n := item.(type) {
	case *OptionNode:
		value := n.Val
		if n.Kind == OptionString {
			value = quote(n.Val)
		}
		fmt.Fprintf(b, "$%s = %s\n", n.Name, value)
	case *ImportNode:
		fmt.Fprintf(b, "import %s\n", quote(n.Path))
	case *ErrorNode:
		fmt.Fprintf(b, "error %s\n", n.Name)
	case *EnumNode:
		fmt.Fprintf(b, "enum %s {\n", n.Name)
		for _, v := range n.Values {
			fmt.Fprintf(b, "    %s\n", v.Name)
		}
		b.WriteString("}\n")
	case *StructNode:
		fmt.Fprintf(b, "type %s {\n", n.Name)
		for _, m := range n.Members {
			switch m := m.(type) {
			case *SpreadNode:
				fmt.Fprintf(b, "    ...%s\n", m.Name)
			case *FieldNode:
				fmt.Fprintf(b, "    %s: %s\n", m.Name, m.Type)
			}
		}
		b.WriteString("}\n")
	case *GetNode:
		fmt.Fprintf(b, "get %s(): %s\n", n.Name, n.Return)
	case *FunctionNode:
		params := make([]string, 0, len(n.Params))
		for _, p := range n.Params {
			params = append(params, fmt.Sprintf("%s: %s", p.Name, p.Type))
		}
		fmt.Fprintf(b, "function %s(%s)", n.Name, strings.Join(params, ", "))
		if n.Return != nil {
			fmt.Fprintf(b, ": %s", n.Return)
		}
		b.WriteString("\n")
	}
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)

func quote(s string) string {
	return `"` + quoteReplacer.Replace(s) + `"`
}
