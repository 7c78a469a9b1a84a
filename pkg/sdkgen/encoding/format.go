/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package encoding

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/dburkart/sdkgen/pkg/sdkgen/ast"
)

// Formats are the encodings accepted by WriteDocument
var Formats = []string{"text", "sdkgen", "json", "yaml", "msgpack"}

// WriteDocument writes doc to w in the named format. "text" is the indented
// AST dump and "sdkgen" the canonical source rendering.
func WriteDocument(w io.Writer, format string, doc *ast.Document) error {
	var err error

	switch format {
	case "text":
		_, err = io.WriteString(w, ast.Dump(doc))
	case "sdkgen":
		_, err = io.WriteString(w, ast.Render(doc))
	default:
		return WriteEncoded(w, format, FromDocument(doc))
	}

	return errors.Wrapf(err, "unable to write %s output", format)
}

// WriteEncoded writes an already converted document. Only the serialized
// formats (json, yaml, msgpack) are supported.
func WriteEncoded(w io.Writer, format string, doc Document) error {
	var err error

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		err = enc.Encode(doc)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(doc)
		if err == nil {
			err = enc.Close()
		}
	case "msgpack":
		err = msgpack.NewEncoder(w).Encode(doc)
	default:
		return errors.Errorf("unsupported output format '%s'", format)
	}

	return errors.Wrapf(err, "unable to write %s output", format)
}
