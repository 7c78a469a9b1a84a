/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package encoding

import (
	"strconv"

	"github.com/dburkart/sdkgen/pkg/common/parse"
	"github.com/dburkart/sdkgen/pkg/sdkgen/ast"
)

// TokenTable lists a scanned token stream
type TokenTable []parse.Token

func (t TokenTable) Headers() []string {
	return []string{"kind", "lexeme", "value", "line", "column"}
}

func (t TokenTable) Values() [][]string {
	rows := make([][]string, 0, len(t))
	for _, tok := range t {
		rows = append(rows, []string{
			tok.Type.ToString(),
			tok.Lexeme,
			tok.Value,
			strconv.Itoa(tok.Position.Line),
			strconv.Itoa(tok.Position.Column),
		})
	}
	return rows
}

// Summary lists the top-level declarations of one or more documents
type Summary []*ast.Document

func (s Summary) Headers() []string {
	return []string{"file", "line", "kind", "name", "detail"}
}

func (s Summary) Values() [][]string {
	rows := [][]string{}
	for _, doc := range s {
		for _, d := range FromDocument(doc).Items {
			detail := ""
			switch {
			case d.Value != nil:
				detail = *d.Value
			case d.Path != "":
				detail = d.Path
			case d.Kind == "enum":
				detail = strconv.Itoa(len(d.Values)) + " values"
			case d.Kind == "type":
				detail = strconv.Itoa(len(d.Members)) + " members"
			case d.Kind == "function":
				detail = strconv.Itoa(len(d.Params)) + " params"
			}
			if d.Returns != nil {
				detail += " -> " + returnString(d.Returns)
			}

			rows = append(rows, []string{
				doc.Pos().Filename,
				strconv.Itoa(d.Position.Line),
				d.Kind,
				d.Name,
				detail,
			})
		}
	}
	return rows
}

func returnString(t *TypeRef) string {
	s := t.Base
	for _, m := range t.Modifiers {
		if m == "array" {
			s += "[]"
		} else {
			s += "?"
		}
	}
	return s
}
