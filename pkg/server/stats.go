/*
 * Copyright (c) 2022, Gideon Williams gideon@gideonw.com
 *
 * SPDX-License-Identifier: BSD-2-Clause
 */

package server

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
)

// SourceStats accumulates totals over every source the server has accepted
type SourceStats struct {
	Documents atomic.Int64
	Bytes     atomic.Int64
}

type sourceStatsCollector struct {
	stats *SourceStats

	documents *prometheus.Desc
	bytes     *prometheus.Desc
}

func NewSourceStatsCollector(stats *SourceStats) prometheus.Collector {
	return &sourceStatsCollector{
		stats: stats,
		documents: prometheus.NewDesc(
			"sdkgen_documents",
			"Number of documents parsed successfully.",
			nil, nil,
		),
		bytes: prometheus.NewDesc(
			"sdkgen_source_bytes",
			"Bytes of source parsed successfully.",
			nil, nil,
		),
	}
}

// Describe implements Collector.
func (c *sourceStatsCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.documents
	ch <- c.bytes
}

// Collect implements Collector.
func (c *sourceStatsCollector) Collect(ch chan<- prometheus.Metric) {
	ch <- prometheus.MustNewConstMetric(c.documents, prometheus.CounterValue, float64(c.stats.Documents.Load()))
	ch <- prometheus.MustNewConstMetric(c.bytes, prometheus.CounterValue, float64(c.stats.Bytes.Load()))
}
