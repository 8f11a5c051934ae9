// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import (
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	slotURL      = "url"
	slotOriginal = "original"
)

var (
	// metricsEnabled controls whether Prometheus metrics are recorded.
	metricsEnabled atomic.Bool

	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parseurl_cache_lookups_total",
			Help: "Memoized URL lookups by cache slot and result",
		},
		[]string{"slot", "result"},
	)

	parses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "parseurl_parses_total",
			Help: "URL parses by the stage that produced the record",
		},
		[]string{"tier"},
	)
)

// EnableMetrics turns Prometheus recording on or off for every Parser, including
// Default. Options.Metrics enables a single Parser instead.
func EnableMetrics(enabled bool) {
	metricsEnabled.Store(enabled)
}

// MetricsEnabled reports whether Prometheus recording is on.
func MetricsEnabled() bool {
	return metricsEnabled.Load()
}

func (p *Parser) recording() bool {
	return p.metrics || metricsEnabled.Load()
}

func (p *Parser) recordLookup(slot string, hit bool) {
	if !p.recording() {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	cacheLookups.With(prometheus.Labels{"slot": slot, "result": result}).Inc()
}

func (p *Parser) recordParse(t tier) {
	if !p.recording() {
		return
	}
	parses.With(prometheus.Labels{"tier": string(t)}).Inc()
}
