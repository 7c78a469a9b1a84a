/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package encoding

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/dburkart/sdkgen/pkg/sdkgen/ast"
	"github.com/dburkart/sdkgen/pkg/sdkgen/parser"
	"github.com/dburkart/sdkgen/pkg/sdkgen/scanner"
)

const source = `
$url = "api.cubos.io/sdkgenspec"
error NotFound
type User {
    ...Base
    name: string?
    tags: string[]?
}
function find(query: string): User[]
`

func mustParse(t *testing.T) *ast.Document {
	doc, err := parser.Parse("users.sdkgen", source)
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func TestFromDocument(t *testing.T) {
	doc := FromDocument(mustParse(t))

	if doc.Filename != "users.sdkgen" || len(doc.Items) != 4 {
		t.Fatalf("unexpected document %+v", doc)
	}

	user := doc.Items[2]
	if user.Kind != "type" || len(user.Members) != 3 {
		t.Fatalf("unexpected type %+v", user)
	}

	if user.Members[0].Kind != "spread" || user.Members[0].Name != "Base" {
		t.Errorf("unexpected spread %+v", user.Members[0])
	}

	tags := user.Members[2].Type
	if tags.Base != "string" || !tags.Primitive || strings.Join(tags.Modifiers, ",") != "array,optional" {
		t.Errorf("unexpected type ref %+v", tags)
	}

	find := doc.Items[3]
	if find.Kind != "function" || len(find.Params) != 1 || find.Returns.Base != "User" || find.Returns.Primitive {
		t.Errorf("unexpected function %+v", find)
	}

	if find.Position.Line != 9 {
		t.Errorf("wanted function on line 9, got %d", find.Position.Line)
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocument(&buf, "json", mustParse(t)); err != nil {
		t.Fatal(err)
	}

	var doc Document
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}

	if doc.Items[0].Kind != "option" || *doc.Items[0].Value != "api.cubos.io/sdkgenspec" {
		t.Errorf("unexpected option %+v", doc.Items[0])
	}
}

func TestWriteYAML(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocument(&buf, "yaml", mustParse(t)); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "kind: error") {
		t.Errorf("wanted error declaration in yaml output:\n%s", buf.String())
	}

	var doc Document
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}

	if len(doc.Items) != 4 || doc.Items[1].Name != "NotFound" {
		t.Errorf("unexpected yaml document %+v", doc)
	}
}

func TestWriteMsgpack(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocument(&buf, "msgpack", mustParse(t)); err != nil {
		t.Fatal(err)
	}

	var doc Document
	if err := msgpack.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}

	if len(doc.Items) != 4 || doc.Items[3].Name != "find" {
		t.Errorf("unexpected msgpack document %+v", doc)
	}
}

func TestWriteSource(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocument(&buf, "sdkgen", mustParse(t)); err != nil {
		t.Fatal(err)
	}

	if !strings.Contains(buf.String(), "function find(query: string): User[]") {
		t.Errorf("unexpected rendering:\n%s", buf.String())
	}
}

func TestWriteUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteDocument(&buf, "xml", mustParse(t)); err == nil {
		t.Error("expected unsupported format to fail")
	}
}

func TestTokenTableCSV(t *testing.T) {
	s := scanner.Scanner{Input: "get foo(): int?"}
	tokens, err := s.Tokens()
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := NewOutputWriter(&buf, "csv").Write(TokenTable(tokens)); err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(tokens)+1 {
		t.Fatalf("wanted %d lines, got %d", len(tokens)+1, len(lines))
	}

	if lines[0] != "kind,lexeme,value,line,column" {
		t.Errorf("unexpected header %s", lines[0])
	}

	if lines[2] != "TOK_IDENTIFIER,foo,foo,1,5" {
		t.Errorf("unexpected row %s", lines[2])
	}
}

func TestSummaryTable(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutputWriter(&buf, "text").Write(Summary{mustParse(t)}); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"NOTFOUND", "3 members", "1 params -> User[]"} {
		if !strings.Contains(strings.ToUpper(buf.String()), strings.ToUpper(want)) {
			t.Errorf("wanted '%s' in table:\n%s", want, buf.String())
		}
	}
}

func TestSummaryJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := NewOutputWriter(&buf, "json").Write(Summary{mustParse(t)}); err != nil {
		t.Fatal(err)
	}

	var rows []map[string]string
	if err := json.Unmarshal(buf.Bytes(), &rows); err != nil {
		t.Fatal(err)
	}

	if len(rows) != 4 || rows[1]["kind"] != "error" || rows[1]["file"] != "users.sdkgen" {
		t.Errorf("unexpected rows %v", rows)
	}
}

func TestWriteEncodedRejectsSourceFormats(t *testing.T) {
	var buf bytes.Buffer
	for _, format := range []string{"text", "sdkgen"} {
		if err := WriteEncoded(&buf, format, FromDocument(mustParse(t))); err == nil {
			t.Errorf("expected %s to require an AST", format)
		}
	}
}
