/*
 * Copyright (c) 2022-2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package sdkgen

import (
	"github.com/dburkart/sdkgen/pkg/sdkgen/encoding"
)

type Client interface {
	Open(ConnectionString) error
	Close() error
	// Parse parses source as filename and returns the serializable document.
	// Parse failures are returned as *ParseError.
	Parse(filename, source string) (encoding.Document, error)
	ParseFile(path string) (encoding.Document, error)
}

// ParseError describes a source that was rejected by the parser, either
// in-process or by a remote parse service.
type ParseError struct {
	Message    string `json:"error"`
	Kind       string `json:"kind"`
	Filename   string `json:"filename,omitempty"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewClient creates a Client for connstr. An empty or file:// connection
// string parses in-process; sdkgen:// and http:// talk to a parse service.
func NewClient(connstr string) (Client, error) {
	var client Client

	target, err := ParseConnectionString(connstr)
	if err != nil {
		return nil, err
	}

	if target.Local {
		client = &LocalClient{}
	} else {
		client = &RemoteClient{}
	}

	err = client.Open(target)
	if err != nil {
		return nil, err
	}

	return client, nil
}
