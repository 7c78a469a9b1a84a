/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/dburkart/sdkgen/pkg/sdkgen/encoding"
	"github.com/dburkart/sdkgen/pkg/sdkgen/loader"
)

const RequestIDHeader = "X-Request-Id"

// ErrorResponse is returned with status 422 when a source does not parse
type ErrorResponse struct {
	Error      string `json:"error"`
	Kind       string `json:"kind"`
	Filename   string `json:"filename,omitempty"`
	Line       int    `json:"line,omitempty"`
	Column     int    `json:"column,omitempty"`
	Diagnostic string `json:"diagnostic,omitempty"`
}

type Server struct {
	log     zerolog.Logger
	metrics MetricsStore
	stats   *SourceStats

	port        int
	metricsPort int
	maxBytes    int64
}

func New(log zerolog.Logger, port, metricsPort int, maxBytes int64) *Server {
	s := &Server{
		log:         log,
		metrics:     NewMetricsStore(),
		stats:       &SourceStats{},
		port:        port,
		metricsPort: metricsPort,
		maxBytes:    maxBytes,
	}
	s.metrics.RegisterCollector(NewSourceStatsCollector(s.stats))
	return s
}

func (s *Server) Metrics() MetricsStore {
	return s.metrics
}

// Handler routes the parse service endpoints
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/parse", s.instrument("parse", s.handleParse))
	mux.HandleFunc("/healthz", s.instrument("healthz", func(w http.ResponseWriter, r *http.Request) int {
		w.WriteHeader(http.StatusOK)
		io.WriteString(w, "ok\n")
		return http.StatusOK
	}))
	return mux
}

type handlerFunc func(http.ResponseWriter, *http.Request) int

func (s *Server) instrument(endpoint string, h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		t := time.Now()

		id := r.Header.Get(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)

		code := h(w, r)

		took := time.Since(t)
		s.metrics.IncRequests(endpoint, strconv.Itoa(code))
		s.metrics.ObserveResponseNS(endpoint, took.Nanoseconds())
		s.log.Debug().
			Str("request-id", id).
			Str("endpoint", endpoint).
			Int("code", code).
			Dur("took", took).
			Msg("handled request")
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) int {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error().Err(err).Msg("unable to write response")
	}
	return code
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) int {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		return s.writeJSON(w, http.StatusMethodNotAllowed, ErrorResponse{Error: "only POST is supported", Kind: "request"})
	}

	filename := r.URL.Query().Get("filename")
	if filename == "" {
		filename = "-"
	}

	body := io.Reader(r.Body)
	if s.maxBytes > 0 {
		body = http.MaxBytesReader(w, r.Body, s.maxBytes)
	}

	result, err := loader.ParseReader(filename, body)
	if err != nil {
		var sourceError *loader.SourceError
		if !errors.As(err, &sourceError) {
			s.log.Error().Err(err).Str("filename", filename).Msg("unable to read request body")
			return s.writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: err.Error(), Kind: "request"})
		}

		resp := errorResponse(sourceError)
		s.metrics.IncParseErrors(resp.Kind)
		return s.writeJSON(w, http.StatusUnprocessableEntity, resp)
	}

	s.stats.Documents.Add(1)
	s.stats.Bytes.Add(int64(len(result.Source)))

	stats := result.Document.Stats()
	for kind, n := range map[string]int{
		"option":   stats.Options,
		"import":   stats.Imports,
		"error":    stats.Errors,
		"enum":     stats.Enums,
		"type":     stats.Types,
		"get":      stats.Gets,
		"function": stats.Functions,
	} {
		s.metrics.AddDeclarations(kind, n)
	}

	return s.writeJSON(w, http.StatusOK, encoding.FromDocument(result.Document))
}

func errorResponse(e *loader.SourceError) ErrorResponse {
	resp := ErrorResponse{Error: e.Error(), Kind: e.Kind(), Diagnostic: e.Diagnostic()}
	if pos, ok := e.Position(); ok {
		resp.Filename = pos.Filename
		resp.Line = pos.Line
		resp.Column = pos.Column
	}
	return resp
}

// ServeParse blocks serving the parse endpoints on the configured port
func (s *Server) ServeParse() error {
	s.log.Info().Int("port", s.port).Msg("listening for parse requests")
	err := http.ListenAndServe(fmt.Sprintf(":%d", s.port), s.Handler())
	return errors.Wrap(err, "parse service stopped")
}

// ServeMetrics blocks serving /metrics on the metrics port
func (s *Server) ServeMetrics() error {
	s.log.Info().Int("port", s.metricsPort).Msg("/metrics endpoint started")
	mux := http.NewServeMux()
	mux.Handle("/metrics", s.metrics.Handler())
	err := http.ListenAndServe(fmt.Sprintf(":%d", s.metricsPort), mux)
	return errors.Wrap(err, "metrics endpoint stopped")
}
