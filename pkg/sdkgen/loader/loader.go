/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package loader

import (
	"context"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/dburkart/sdkgen/pkg/common/parse"
	"github.com/dburkart/sdkgen/pkg/sdkgen/ast"
	"github.com/dburkart/sdkgen/pkg/sdkgen/parser"
)

type Result struct {
	Path     string
	Source   string
	Document *ast.Document
	Duration time.Duration
}

// SourceError ties a lexical or syntax error to the source it was found in
type SourceError struct {
	Path   string
	Source string
	Err    error
}

func (e *SourceError) Error() string {
	return e.Err.Error()
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// Diagnostic renders the error with the offending line of source underlined
func (e *SourceError) Diagnostic() string {
	var syntaxError *parse.SyntaxError
	if errors.As(e.Err, &syntaxError) {
		return syntaxError.FormatError(e.Source)
	}

	var lexicalError *parse.LexicalError
	if errors.As(e.Err, &lexicalError) {
		return lexicalError.FormatError(e.Source)
	}

	return e.Err.Error()
}

// Kind classifies the error as "lexical", "syntax" or "redeclare"
func (e *SourceError) Kind() string {
	var syntaxError *parse.SyntaxError
	if errors.As(e.Err, &syntaxError) {
		if errors.Is(syntaxError, parse.ErrRedeclare) {
			return "redeclare"
		}
		return "syntax"
	}

	var lexicalError *parse.LexicalError
	if errors.As(e.Err, &lexicalError) {
		return "lexical"
	}

	return "unknown"
}

// Position reports where in the source the error was found
func (e *SourceError) Position() (parse.Position, bool) {
	var syntaxError *parse.SyntaxError
	if errors.As(e.Err, &syntaxError) {
		return syntaxError.Position, true
	}

	var lexicalError *parse.LexicalError
	if errors.As(e.Err, &lexicalError) {
		return lexicalError.Position, true
	}

	return parse.Position{}, false
}

// ParseSource parses an in-memory source
func ParseSource(filename, source string) (Result, error) {
	start := time.Now()
	doc, err := parser.Parse(filename, source)
	result := Result{Path: filename, Source: source, Document: doc, Duration: time.Since(start)}
	if err != nil {
		return result, &SourceError{Path: filename, Source: source, Err: err}
	}
	return result, nil
}

// ParseReader reads r to the end and parses it as filename
func ParseReader(filename string, r io.Reader) (Result, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Result{Path: filename}, errors.Wrapf(err, "unable to read %s", filename)
	}
	return ParseSource(filename, string(b))
}

// ReadSource reads the file at path. A path of "-" reads stdin.
func ReadSource(path string) (string, error) {
	var b []byte
	var err error

	if path == "-" {
		b, err = io.ReadAll(os.Stdin)
	} else {
		b, err = os.ReadFile(path)
	}
	if err != nil {
		return "", errors.Wrapf(err, "unable to read %s", path)
	}

	return string(b), nil
}

// ParseFile reads and parses the file at path. A path of "-" reads stdin.
func ParseFile(path string) (Result, error) {
	source, err := ReadSource(path)
	if err != nil {
		return Result{Path: path}, err
	}
	return ParseSource(path, source)
}

// ParseFiles parses every path with its own parser, at most jobs at a time.
// Results are returned in the order of paths. The first failure cancels the
// files not yet started and is returned.
func ParseFiles(ctx context.Context, log zerolog.Logger, paths []string, jobs int) ([]Result, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			result, err := ParseFile(path)
			results[i] = result
			if err != nil {
				log.Debug().Err(err).Str("file", path).Msg("unable to parse file")
				return err
			}

			log.Debug().
				Str("file", path).
				Str("size", humanize.Bytes(uint64(len(result.Source)))).
				Dur("took", result.Duration).
				Int("declarations", len(result.Document.Items)).
				Msg("parsed file")

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
