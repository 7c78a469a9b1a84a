/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package sdkgen

import (
	"net/url"

	"github.com/pkg/errors"
)

var Protocol = "sdkgen"

type ConnectionString struct {
	Local bool
	// Address is "local", or host:port of a parse service
	Address string
	// Root is the directory relative paths are read from by a local client
	Root string
}

// ParseConnectionString takes a connection string and parses it into the parts
// a client needs. It only returns an error if the scheme is unknown.
//
// Formats:
//
//	./path/to/sources
//	file://./path/to/sources
//	sdkgen://<host:port>
//	http://<host:port>
func ParseConnectionString(connStr string) (ConnectionString, error) {
	ret := ConnectionString{
		Local:   true,
		Address: "local",
		Root:    ".",
	}

	if connStr == "" {
		return ret, nil
	}

	u, err := url.Parse(connStr)
	if err != nil {
		return ConnectionString{}, errors.Wrapf(err, "invalid connection string %s", connStr)
	}

	switch u.Scheme {
	case "", "file":
		p := u.Path
		if u.Host != "" {
			p = u.Host + p
		}
		if p != "" {
			ret.Root = p
		}
		return ret, nil
	case Protocol, "http":
		if u.Host == "" {
			return ConnectionString{}, errors.Errorf("missing host in %s", connStr)
		}
		ret.Local = false
		ret.Address = u.Host
		ret.Root = ""
		return ret, nil
	}

	return ConnectionString{}, errors.Errorf("unrecognized scheme: %s", u.Scheme)
}
