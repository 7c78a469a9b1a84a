/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package sdkgen

import (
	"errors"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/dburkart/sdkgen/pkg/server"
)

const source = `
$url = "api.cubos.io/sdkgenspec"
error NotFound
type User {
    name: string
    email: string?
}
get user(): User
`

func clients(t *testing.T) map[string]Client {
	srv := server.New(zerolog.Nop(), 0, 0, 1<<20)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	local, err := NewClient("")
	if err != nil {
		t.Fatal(err)
	}

	remote, err := NewClient("sdkgen://" + strings.TrimPrefix(ts.URL, "http://"))
	if err != nil {
		t.Fatal(err)
	}

	t.Cleanup(func() {
		local.Close()
		remote.Close()
	})

	return map[string]Client{"local": local, "remote": remote}
}

func TestNewClient(t *testing.T) {
	c, err := NewClient("./specs")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*LocalClient); !ok {
		t.Errorf("wanted a local client, got %T", c)
	}

	c, err = NewClient("http://localhost:8001")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.(*RemoteClient); !ok {
		t.Errorf("wanted a remote client, got %T", c)
	}

	if _, err = NewClient("tcp://localhost:8001"); err == nil {
		t.Error("wanted unknown scheme to fail")
	}
}

func TestClientParse(t *testing.T) {
	for name, c := range clients(t) {
		t.Run(name, func(t *testing.T) {
			doc, err := c.Parse("api.sdkgen", source)
			if err != nil {
				t.Fatal(err)
			}

			if doc.Filename != "api.sdkgen" || len(doc.Items) != 4 {
				t.Fatalf("unexpected document %+v", doc)
			}

			user := doc.Items[2]
			if user.Kind != "type" || user.Name != "User" || len(user.Members) != 2 {
				t.Errorf("unexpected type %+v", user)
			}

			if user.Position.Line != 4 {
				t.Errorf("wanted type on line 4, got %d", user.Position.Line)
			}
		})
	}
}

func TestClientParseError(t *testing.T) {
	for name, c := range clients(t) {
		t.Run(name, func(t *testing.T) {
			_, err := c.Parse("bad.sdkgen", "type Baz {\n    a: int\n    b: bool\n    a: int\n}")

			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("wanted *ParseError, got %v", err)
			}

			if pe.Kind != "redeclare" || pe.Filename != "bad.sdkgen" || pe.Line != 4 || pe.Column != 5 {
				t.Errorf("unexpected parse error %+v", pe)
			}

			if !strings.Contains(pe.Error(), "redeclare") {
				t.Errorf("wanted redeclare in message, got %s", pe.Error())
			}
		})
	}
}

func TestClientParseFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.sdkgen"), []byte(source), 0666); err != nil {
		t.Fatal(err)
	}

	local, err := NewClient("file://" + dir)
	if err != nil {
		t.Fatal(err)
	}

	doc, err := local.ParseFile("a.sdkgen")
	if err != nil {
		t.Fatal(err)
	}

	if len(doc.Items) != 4 {
		t.Errorf("wanted 4 declarations, got %d", len(doc.Items))
	}

	for name, c := range clients(t) {
		t.Run(name, func(t *testing.T) {
			doc, err := c.ParseFile(filepath.Join(dir, "a.sdkgen"))
			if err != nil {
				t.Fatal(err)
			}
			if doc.Filename != filepath.Join(dir, "a.sdkgen") {
				t.Errorf("unexpected filename %s", doc.Filename)
			}
		})
	}
}

func TestRemoteClientUnreachable(t *testing.T) {
	ts := httptest.NewServer(nil)
	addr := strings.TrimPrefix(ts.URL, "http://")
	ts.Close()

	c := &RemoteClient{Retries: 1}
	if err := c.Open(ConnectionString{Address: addr}); err != nil {
		t.Fatal(err)
	}

	_, err := c.Parse("a.sdkgen", "error Foo")
	if err == nil || !strings.Contains(err.Error(), "unable to reach") {
		t.Errorf("wanted unreachable error, got %v", err)
	}
}
