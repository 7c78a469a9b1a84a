/*
 * Copyright (c) 2022, Gideon Williams <gideon@gideonw.com>
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type MetricsStore interface {
	Registry() *prometheus.Registry
	RegisterCollector(c prometheus.Collector)
	Handler() http.Handler

	// Collection
	IncRequests(endpoint, code string)
	ObserveResponseNS(endpoint string, t int64)
	AddDeclarations(kind string, n int)
	IncParseErrors(kind string)
}

type metricsStore struct {
	registry     *prometheus.Registry
	Requests     *prometheus.CounterVec
	ResponseNS   *prometheus.HistogramVec
	Declarations *prometheus.CounterVec
	ParseErrors  *prometheus.CounterVec
}

var (
	EndpointLabel = "endpoint"
	CodeLabel     = "code"
	KindLabel     = "kind"
)

func NewMetricsStore() MetricsStore {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(
			collectors.WithGoCollectorRuntimeMetrics(collectors.MetricsAll),
		),
	)

	buckets := []float64{}
	for i := 1; i < 20; i++ {
		buckets = append(buckets, float64(2*i*int(time.Millisecond)))
	}

	factory := promauto.With(reg)
	return &metricsStore{
		registry: reg,
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sdkgen_requests",
			Help: "Request counts per endpoint and status code",
		}, []string{EndpointLabel, CodeLabel}),
		ResponseNS: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sdkgen_response_ns",
			Help:    "Response times per endpoint",
			Buckets: buckets,
		}, []string{EndpointLabel}),
		Declarations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sdkgen_declarations",
			Help: "Top-level declarations parsed, by kind",
		}, []string{KindLabel}),
		ParseErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sdkgen_parse_errors",
			Help: "Rejected sources, by error kind (lexical, syntax, redeclare)",
		}, []string{KindLabel}),
	}
}

func (ms *metricsStore) Registry() *prometheus.Registry {
	return ms.registry
}

func (ms *metricsStore) RegisterCollector(c prometheus.Collector) {
	ms.registry.MustRegister(c)
}

func (ms *metricsStore) Handler() http.Handler {
	return promhttp.HandlerFor(ms.Registry(), promhttp.HandlerOpts{Registry: ms.Registry()})
}

func (ms *metricsStore) IncRequests(endpoint, code string) {
	ms.Requests.With(prometheus.Labels{EndpointLabel: endpoint, CodeLabel: code}).Inc()
}

func (ms *metricsStore) ObserveResponseNS(endpoint string, t int64) {
	ms.ResponseNS.
		With(prometheus.Labels{EndpointLabel: endpoint}).
		Observe(float64(t))
}

func (ms *metricsStore) AddDeclarations(kind string, n int) {
	ms.Declarations.With(prometheus.Labels{KindLabel: kind}).Add(float64(n))
}

func (ms *metricsStore) IncParseErrors(kind string) {
	ms.ParseErrors.With(prometheus.Labels{KindLabel: kind}).Inc()
}
