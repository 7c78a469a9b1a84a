/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package sdkgen

import (
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/dburkart/sdkgen/pkg/sdkgen/encoding"
	"github.com/dburkart/sdkgen/pkg/sdkgen/loader"
)

// A LocalClient parses in-process. Relative paths given to ParseFile are
// read from the connection string's root.
type LocalClient struct {
	target ConnectionString
}

func (client *LocalClient) Open(target ConnectionString) error {
	client.target = target
	return nil
}

func (client *LocalClient) Close() error {
	return nil
}

func (client *LocalClient) Parse(filename, source string) (encoding.Document, error) {
	result, err := loader.ParseSource(filename, source)
	return documentOrError(result, err)
}

func (client *LocalClient) ParseFile(path string) (encoding.Document, error) {
	if path != "-" && !filepath.IsAbs(path) {
		path = filepath.Join(client.target.Root, path)
	}

	result, err := loader.ParseFile(path)
	return documentOrError(result, err)
}

func documentOrError(result loader.Result, err error) (encoding.Document, error) {
	if err != nil {
		var sourceError *loader.SourceError
		if errors.As(err, &sourceError) {
			return encoding.Document{}, newParseError(sourceError)
		}
		return encoding.Document{}, err
	}

	return encoding.FromDocument(result.Document), nil
}

func newParseError(e *loader.SourceError) *ParseError {
	pe := &ParseError{Message: e.Error(), Kind: e.Kind(), Diagnostic: e.Diagnostic()}
	if pos, ok := e.Position(); ok {
		pe.Filename = pos.Filename
		pe.Line = pos.Line
		pe.Column = pos.Column
	}
	return pe
}
