// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import (
	"testing"

	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_RecordsTiersAndLookups(t *testing.T) {
	EnableMetrics(true)
	t.Cleanup(func() { EnableMetrics(false) })

	fast := promtest.ToFloat64(parses.WithLabelValues(string(tierFast)))
	legacy := promtest.ToFloat64(parses.WithLabelValues(string(tierLegacy)))
	hits := promtest.ToFloat64(cacheLookups.WithLabelValues(slotURL, "hit"))
	misses := promtest.ToFloat64(cacheLookups.WithLabelValues(slotURL, "miss"))
	originalMisses := promtest.ToFloat64(cacheLookups.WithLabelValues(slotOriginal, "miss"))

	req := NewRequest("/metrics/test")
	Parse(req)
	Parse(req)
	req.SetOriginalURL("/a%zz#b")
	Original(req)

	assert.Equal(t, fast+1, promtest.ToFloat64(parses.WithLabelValues(string(tierFast))))
	assert.Equal(t, legacy+1, promtest.ToFloat64(parses.WithLabelValues(string(tierLegacy))))
	assert.Equal(t, misses+1, promtest.ToFloat64(cacheLookups.WithLabelValues(slotURL, "miss")))
	assert.Equal(t, hits+1, promtest.ToFloat64(cacheLookups.WithLabelValues(slotURL, "hit")))
	assert.Equal(t, originalMisses+1, promtest.ToFloat64(cacheLookups.WithLabelValues(slotOriginal, "miss")))
}

func TestMetrics_DisabledRecordsNothing(t *testing.T) {
	EnableMetrics(false)
	assert.False(t, MetricsEnabled())

	before := promtest.ToFloat64(parses.WithLabelValues(string(tierMinimal)))
	New(Options{DisableLegacy: true}).ParseFull("/a\x00 b")
	assert.Equal(t, before, promtest.ToFloat64(parses.WithLabelValues(string(tierMinimal))))
}

func TestMetrics_PerParser(t *testing.T) {
	EnableMetrics(false)

	scoped := New(Options{Metrics: true})
	before := promtest.ToFloat64(parses.WithLabelValues(string(tierFull)))
	lookups := promtest.ToFloat64(cacheLookups.WithLabelValues(slotURL, "miss"))

	scoped.ParseFull("/scoped")
	scoped.Parse(NewRequest("/scoped"))
	assert.Equal(t, before+1, promtest.ToFloat64(parses.WithLabelValues(string(tierFull))))
	assert.Equal(t, lookups+1, promtest.ToFloat64(cacheLookups.WithLabelValues(slotURL, "miss")))

	New(Options{}).ParseFull("/unscoped")
	Default.ParseFull("/unscoped")
	assert.Equal(t, before+1, promtest.ToFloat64(parses.WithLabelValues(string(tierFull))))
	assert.False(t, MetricsEnabled())
}
