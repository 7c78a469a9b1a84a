/*
 * Copyright (c) 2023, Dana Burkart <dana.burkart@gmail.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package sdkgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/dburkart/sdkgen/pkg/sdkgen/encoding"
	"github.com/dburkart/sdkgen/pkg/sdkgen/loader"
)

// A RemoteClient sends sources to a parse service over HTTP.
type RemoteClient struct {
	target ConnectionString
	http   *http.Client

	// Retries is how many times a request is re-sent after the connection
	// is refused or reset
	Retries int
}

func (client *RemoteClient) Open(target ConnectionString) error {
	client.target = target
	client.http = &http.Client{Timeout: 30 * time.Second}
	if client.Retries == 0 {
		client.Retries = 3
	}
	return nil
}

func (client *RemoteClient) Close() error {
	client.http.CloseIdleConnections()
	return nil
}

func (client *RemoteClient) endpoint(filename string) string {
	return fmt.Sprintf("http://%s/parse?filename=%s", client.target.Address, url.QueryEscape(filename))
}

// send posts source, retrying with backoff while the service is unreachable
func (client *RemoteClient) send(filename string, source []byte) (*http.Response, error) {
	var resp *http.Response
	var err error

	for i := 0; ; i++ {
		resp, err = client.http.Post(client.endpoint(filename), "text/plain", bytes.NewReader(source))
		if err == nil {
			return resp, nil
		}

		if i >= client.Retries || !(errors.Is(err, syscall.ECONNREFUSED) || errors.Is(err, syscall.ECONNRESET)) {
			return nil, errors.Wrapf(err, "unable to reach %s", client.target.Address)
		}

		delay := time.Duration(math.Exp2(float64(i)))
		time.Sleep(delay * 100 * time.Millisecond)
	}
}

func (client *RemoteClient) Parse(filename, source string) (encoding.Document, error) {
	resp, err := client.send(filename, []byte(source))
	if err != nil {
		return encoding.Document{}, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var doc encoding.Document
		if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
			return encoding.Document{}, errors.Wrap(err, "unable to decode document")
		}
		return doc, nil
	case http.StatusUnprocessableEntity:
		var pe ParseError
		if err := json.NewDecoder(resp.Body).Decode(&pe); err != nil {
			return encoding.Document{}, errors.Wrap(err, "unable to decode parse error")
		}
		return encoding.Document{}, &pe
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
	return encoding.Document{}, errors.Errorf("%s: %s", resp.Status, bytes.TrimSpace(body))
}

// ParseFile reads path locally and sends its contents to the service
func (client *RemoteClient) ParseFile(path string) (encoding.Document, error) {
	source, err := loader.ReadSource(path)
	if err != nil {
		return encoding.Document{}, err
	}

	return client.Parse(path, source)
}
