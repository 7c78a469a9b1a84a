/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package parse

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	sdkgen "github.com/dburkart/sdkgen/api"
	"github.com/dburkart/sdkgen/pkg/sdkgen/loader"
)

func init() {
	color.NoColor = true
}

func TestReportSourceError(t *testing.T) {
	_, err := loader.ParseSource("bad.sdkgen", "type Foo {\n  a: int\n  a: int\n}")

	var buf bytes.Buffer
	Report(&buf, err)

	out := buf.String()
	if !strings.HasPrefix(out, "redeclare error in bad.sdkgen\n") {
		t.Errorf("unexpected header:\n%s", out)
	}
	if !strings.Contains(out, "  a: int\n  ^") {
		t.Errorf("wanted diagnostic in output:\n%s", out)
	}
}

func TestReportParseError(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, &sdkgen.ParseError{Message: "m", Kind: "lexical", Filename: "x.sdkgen", Diagnostic: "diag\n"})

	if buf.String() != "lexical error in x.sdkgen\ndiag\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestReportOtherError(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, errors.New("boom"))

	if buf.String() != "boom\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestWriteStats(t *testing.T) {
	a, err := loader.ParseSource("a.sdkgen", "error Foo\ntype User {\n  name: string\n}")
	if err != nil {
		t.Fatal(err)
	}
	b, err := loader.ParseSource("b.sdkgen", "get users(): User[]")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := writeStats(&buf, zerolog.Nop(), []loader.Result{a, b}); err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"a.sdkgen", "b.sdkgen", "1 members", "users"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("wanted '%s' in summary:\n%s", want, buf.String())
		}
	}
}

func TestSupported(t *testing.T) {
	if !supported("yaml") || supported("xml") {
		t.Error("unexpected format support")
	}
}
