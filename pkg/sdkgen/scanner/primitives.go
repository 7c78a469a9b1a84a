/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package scanner

// Primitives is the closed set of built-in type names, in declaration order.
var Primitives = []string{
	"bool", "int", "uint", "float", "string", "date", "datetime", "bytes",
	"money", "cpf", "cnpj", "email", "phone", "cep", "latlng", "url",
	"uuid", "hex", "base64", "safehtml", "xml",
}

// Keywords maps reserved spellings to their token type. Keywords are checked
// before primitives when classifying a word.
var Keywords = map[string]TokenType{
	"type":     TOK_TYPE,
	"get":      TOK_GET,
	"function": TOK_FUNCTION,
	"enum":     TOK_ENUM,
	"import":   TOK_IMPORT,
	"error":    TOK_ERROR,
	"true":     TOK_TRUE,
	"false":    TOK_FALSE,
}

var primitiveSet = func() map[string]struct{} {
	set := make(map[string]struct{}, len(Primitives))
	for _, p := range Primitives {
		set[p] = struct{}{}
	}
	return set
}()

func IsPrimitive(name string) bool {
	_, ok := primitiveSet[name]
	return ok
}

// Classify returns the token type for a scanned word
func Classify(word string) TokenType {
	if t, ok := Keywords[word]; ok {
		return t
	}
	if IsPrimitive(word) {
		return TOK_PRIMITIVE
	}
	return TOK_IDENTIFIER
}
