/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parser

import (
	"fmt"

	"github.com/dburkart/sdkgen/pkg/common/parse"
	"github.com/dburkart/sdkgen/pkg/sdkgen/ast"
	"github.com/dburkart/sdkgen/pkg/sdkgen/scanner"
)

// Parse parses input as a complete document. filename is only used in
// diagnostics.
func Parse(filename, input string) (*ast.Document, error) {
	p := Parser{Scanner: scanner.Scanner{Input: input, Filename: filename}}
	return p.Parse()
}

// A Parser owns its Scanner exclusively. Since the scanner keeps no
// lookahead, the parser buffers the one token it peeks at.
type Parser struct {
	Scanner scanner.Scanner

	lookahead *parse.Token
}

// Parse consumes the whole token stream. It stops at the first lexical or
// syntax error, in which case no document is returned.
func (p *Parser) Parse() (doc *ast.Document, err error) {
	defer func() {
		if e := recover(); e != nil {
			switch e := e.(type) {
			case parse.SyntaxError:
				err = &e
			case *parse.LexicalError:
				err = e
			default:
				panic(e)
			}
			doc = nil
		}
	}()

	doc = p.document()
	return
}

func (p *Parser) peek() parse.Token {
	if p.lookahead == nil {
		tok, err := p.Scanner.Emit()
		if err != nil {
			panic(err)
		}
		p.lookahead = &tok
	}
	return *p.lookahead
}

func (p *Parser) next() parse.Token {
	tok := p.peek()
	p.lookahead = nil
	return tok
}

func (p *Parser) expect(t scanner.TokenType, expected string) parse.Token {
	tok := p.next()
	if tok.Type != t {
		panic(unexpected(tok, expected))
	}
	return tok
}

func isWord(tok parse.Token) bool {
	t, ok := tok.Type.(scanner.TokenType)
	return ok && t.IsWord()
}

func unexpected(tok parse.Token, expected string) parse.SyntaxError {
	found := fmt.Sprintf("token '%s'", tok.Lexeme)
	if tok.Type == scanner.TOK_EOF {
		found = "end of file"
	}
	return parse.NewSyntaxError(tok, fmt.Sprintf("Error: unexpected %s, expected %s", found, expected))
}

// document returns a Document
//
// Grammar:
//
//	document        = *( option / import / error / enum / struct / get / function )
func (p *Parser) document() *ast.Document {
	first := p.peek()

	doc := ast.Document{BaseNode: ast.BaseNode{Token: parse.Token{
		Position: parse.Position{Filename: first.Position.Filename, Line: 1, Column: 1},
	}}}

	for {
		var item ast.ASTNode

		tok := p.peek()
		switch tok.Type {
		case scanner.TOK_EOF:
			return &doc
		case scanner.TOK_OPTION:
			item = p.option()
		case scanner.TOK_IMPORT:
			item = p.importDecl()
		case scanner.TOK_ERROR:
			item = p.errorDecl()
		case scanner.TOK_ENUM:
			item = p.enumDecl()
		case scanner.TOK_TYPE:
			item = p.structDecl()
		case scanner.TOK_GET:
			item = p.getDecl()
		case scanner.TOK_FUNCTION:
			item = p.functionDecl()
		default:
			panic(unexpected(tok, "a declaration (type, enum, error, get, function, import or $option)"))
		}

		doc.Items = append(doc.Items, item)
	}
}

// option returns an OptionNode
//
// Grammar:
//
//	option          = "$" NAME "=" ( STRING / "true" / "false" )
func (p *Parser) option() ast.ASTNode {
	tok := p.expect(scanner.TOK_OPTION, "a global option")
	o := ast.OptionNode{BaseNode: ast.BaseNode{Token: tok}, Name: tok.Value}

	p.expect(scanner.TOK_EQUAL, "'='")

	value := p.next()
	switch value.Type {
	case scanner.TOK_STRING:
		o.Kind = ast.OptionString
		o.Val = value.Value
	case scanner.TOK_TRUE, scanner.TOK_FALSE:
		o.Kind = ast.OptionBool
		o.Val = value.Value
	default:
		panic(unexpected(value, fmt.Sprintf("a string or boolean value for option '%s'", o.Name)))
	}

	return &o
}

// importDecl returns an ImportNode. The path is recorded, not resolved.
//
// Grammar:
//
//	import          = "import" STRING
func (p *Parser) importDecl() ast.ASTNode {
	tok := p.expect(scanner.TOK_IMPORT, "'import'")
	path := p.expect(scanner.TOK_STRING, "a quoted path after 'import'")

	return &ast.ImportNode{BaseNode: ast.BaseNode{Token: tok}, Path: path.Value}
}

// errorDecl returns an ErrorNode
//
// Grammar:
//
//	error           = "error" IDENT
func (p *Parser) errorDecl() ast.ASTNode {
	p.expect(scanner.TOK_ERROR, "'error'")
	name := p.expect(scanner.TOK_IDENTIFIER, "an error name")

	return &ast.ErrorNode{BaseNode: ast.BaseNode{Token: name}, Name: name.Value}
}

// enumDecl returns an EnumNode
//
// Grammar:
//
//	enum            = "enum" IDENT "{" *word "}"
func (p *Parser) enumDecl() ast.ASTNode {
	p.expect(scanner.TOK_ENUM, "'enum'")
	name := p.expect(scanner.TOK_IDENTIFIER, "an enum name")
	p.expect(scanner.TOK_CURLY_O, "'{'")

	e := ast.EnumNode{BaseNode: ast.BaseNode{Token: name}, Name: name.Value}
	seen := make(map[string]bool)

	for {
		tok := p.next()
		if tok.Type == scanner.TOK_CURLY_X {
			break
		}

		if !isWord(tok) {
			panic(unexpected(tok, "an enum value or '}'"))
		}

		if seen[tok.Value] {
			panic(parse.NewRedeclareError(tok, "enum value", tok.Value))
		}
		seen[tok.Value] = true

		e.Values = append(e.Values, ast.EnumValueNode{BaseNode: ast.BaseNode{Token: tok}, Name: tok.Value})
	}

	return &e
}

// structDecl returns a StructNode. Field names must be unique within the
// struct; spreads are not checked.
//
// Grammar:
//
//	struct          = "type" IDENT "{" *( spread / field ) "}"
//	spread          = "..." IDENT
func (p *Parser) structDecl() ast.ASTNode {
	p.expect(scanner.TOK_TYPE, "'type'")
	name := p.expect(scanner.TOK_IDENTIFIER, "a type name")
	p.expect(scanner.TOK_CURLY_O, "'{'")

	s := ast.StructNode{BaseNode: ast.BaseNode{Token: name}, Name: name.Value}
	seen := make(map[string]bool)

	for {
		tok := p.peek()

		switch {
		case tok.Type == scanner.TOK_CURLY_X:
			p.next()
			return &s
		case tok.Type == scanner.TOK_SPREAD:
			p.next()
			target := p.expect(scanner.TOK_IDENTIFIER, "a type name after '...'")
			s.Members = append(s.Members, &ast.SpreadNode{BaseNode: ast.BaseNode{Token: target}, Name: target.Value})
		case isWord(tok):
			field := p.field()
			if seen[field.Name] {
				panic(parse.NewRedeclareError(field.Token, "field", field.Name))
			}
			seen[field.Name] = true
			s.Members = append(s.Members, field)
		default:
			panic(unexpected(tok, "a field name, '...' or '}'"))
		}
	}
}

// field returns a FieldNode. Any word may name a field, including keywords
// and primitive type names.
//
// Grammar:
//
//	field           = word ":" type-ref
func (p *Parser) field() *ast.FieldNode {
	name := p.next()
	if !isWord(name) {
		panic(unexpected(name, "a name"))
	}

	p.expect(scanner.TOK_COLON, fmt.Sprintf("':' after '%s'", name.Value))

	return &ast.FieldNode{
		BaseNode: ast.BaseNode{Token: name},
		Name:     name.Value,
		Type:     p.typeRef(),
	}
}

// getDecl returns a GetNode
//
// Grammar:
//
//	get             = "get" IDENT "(" ")" ":" type-ref
func (p *Parser) getDecl() ast.ASTNode {
	p.expect(scanner.TOK_GET, "'get'")
	name := p.expect(scanner.TOK_IDENTIFIER, "an operation name")
	p.expect(scanner.TOK_PAREN_L, "'('")
	p.expect(scanner.TOK_PAREN_R, "')'")
	p.expect(scanner.TOK_COLON, "':'")

	return &ast.GetNode{
		BaseNode: ast.BaseNode{Token: name},
		Name:     name.Value,
		Return:   p.typeRef(),
	}
}

// functionDecl returns a FunctionNode. Parameter names must be unique within
// the signature.
//
// Grammar:
//
//	function        = "function" IDENT "(" [ field *( "," field ) ] ")" [ ":" type-ref ]
func (p *Parser) functionDecl() ast.ASTNode {
	p.expect(scanner.TOK_FUNCTION, "'function'")
	name := p.expect(scanner.TOK_IDENTIFIER, "an operation name")
	p.expect(scanner.TOK_PAREN_L, "'('")

	f := ast.FunctionNode{BaseNode: ast.BaseNode{Token: name}, Name: name.Value}

	if p.peek().Type == scanner.TOK_PAREN_R {
		p.next()
	} else {
		seen := make(map[string]bool)
		for {
			param := p.field()
			if seen[param.Name] {
				panic(parse.NewRedeclareError(param.Token, "parameter", param.Name))
			}
			seen[param.Name] = true
			f.Params = append(f.Params, *param)

			tok := p.next()
			if tok.Type == scanner.TOK_PAREN_R {
				break
			}
			if tok.Type != scanner.TOK_COMMA {
				panic(unexpected(tok, "',' or ')'"))
			}
		}
	}

	if p.peek().Type == scanner.TOK_COLON {
		p.next()
		f.Return = p.typeRef()
	}

	return &f
}

// typeRef returns a TypeRefNode. Modifiers are consumed greedily and kept
// in source order.
//
// Grammar:
//
//	type-ref        = ( PRIMITIVE / IDENT ) *( "?" / "[]" )
func (p *Parser) typeRef() *ast.TypeRefNode {
	tok := p.next()

	t := ast.TypeRefNode{BaseNode: ast.BaseNode{Token: tok}, Base: tok.Value}
	switch tok.Type {
	case scanner.TOK_PRIMITIVE:
		t.Primitive = true
	case scanner.TOK_IDENTIFIER:
	default:
		panic(unexpected(tok, "a type"))
	}

	for {
		switch p.peek().Type {
		case scanner.TOK_OPTIONAL:
			t.Modifiers = append(t.Modifiers, ast.ModOptional)
		case scanner.TOK_ARRAY:
			t.Modifiers = append(t.Modifiers, ast.ModArray)
		default:
			return &t
		}
		p.next()
	}
}
