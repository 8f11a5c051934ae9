// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import (
	neturl "net/url"
	"strings"

	"github.com/jongio/parseurl/logutil"
)

// DefaultBase is the placeholder origin relative strings are parsed against.
const DefaultBase = "http://localhost"

// tier names the stage that produced a record.
type tier string

const (
	tierFast    tier = "fast"
	tierFull    tier = "full"
	tierLegacy  tier = "legacy"
	tierMinimal tier = "minimal"
)

// Options configures a Parser. The zero value selects the defaults.
type Options struct {
	Base          string       // Placeholder origin for relative strings (DefaultBase)
	Primitive     Primitive    // Primary parser (StdPrimitive)
	Legacy        LegacyParser // Fallback when Primitive fails (ParseLegacy)
	DisableLegacy bool         // Return the minimal record as soon as Primitive fails
	Metrics       bool         // Record Prometheus counters for this Parser only
	Logger        *logutil.ComponentLogger
}

// Parser parses and memoizes request URLs. It is immutable after New and safe for
// concurrent use.
type Parser struct {
	base      string
	primitive Primitive
	legacy    LegacyParser
	metrics   bool
	log       *logutil.ComponentLogger
}

// Default is the Parser behind the package-level functions.
var Default = New(Options{})

// New creates a Parser from opts.
func New(opts Options) *Parser {
	p := &Parser{
		base:      normalizeBase(opts.Base),
		primitive: opts.Primitive,
		legacy:    opts.Legacy,
		metrics:   opts.Metrics,
		log:       opts.Logger,
	}
	if p.primitive == nil {
		p.primitive = StdPrimitive
	}
	if p.legacy == nil {
		p.legacy = ParseLegacy
	}
	if opts.DisableLegacy {
		p.legacy = nil
	}
	if p.log == nil {
		p.log = logutil.NewLogger("parseurl")
	}
	return p
}

// Base returns the placeholder origin in use.
func (p *Parser) Base() string {
	return p.base
}

// normalizeBase reduces base to a lower-cased origin without a default port or
// trailing slash, so "HTTP://Example:80/" and "http://example" behave the same.
func normalizeBase(base string) string {
	base = strings.TrimRight(trim(base), "/")
	if base == "" {
		return DefaultBase
	}
	u, err := neturl.Parse(base)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return base
	}
	scheme := strings.ToLower(u.Scheme)
	hostname, port := normalizeHost(u, scheme)
	if port != "" {
		hostname += ":" + port
	}
	return scheme + "://" + hostname
}

// Parse returns the parsed form of req's current URL, memoized on req. It returns
// nil when req has no URL.
func (p *Parser) Parse(req *Request) *URL {
	if req == nil {
		return nil
	}
	req.mu.Lock()
	defer req.mu.Unlock()

	if !req.hasURL {
		return nil
	}
	return p.memoize(slotURL, req.url, &req.parsedURL)
}

// Original returns the parsed form of req's original URL, memoized in its own slot.
// When no original URL is set it returns Parse(req).
func (p *Parser) Original(req *Request) *URL {
	if req == nil {
		return nil
	}
	req.mu.Lock()
	if !req.hasOriginalURL {
		req.mu.Unlock()
		return p.Parse(req)
	}
	defer req.mu.Unlock()

	return p.memoize(slotOriginal, req.originalURL, &req.parsedOriginalURL)
}

// memoize returns *slot when it was parsed from raw, otherwise parses raw and
// replaces *slot. Caller must hold the request lock.
func (p *Parser) memoize(name, raw string, slot **URL) *URL {
	if fresh(raw, *slot) {
		p.recordLookup(name, true)
		return *slot
	}
	p.recordLookup(name, false)

	u, t := p.fastParse(raw)
	p.recordParse(t)
	u.tag(raw)
	*slot = u
	return u
}

// ParseString parses s through the fast path without memoization.
func (p *Parser) ParseString(s string) *URL {
	u, t := p.fastParse(s)
	p.recordParse(t)
	return u
}

// ParseFull parses s with the full parser, skipping the fast path.
func (p *Parser) ParseFull(s string) *URL {
	u, t := p.fullParse(s)
	p.recordParse(t)
	return u
}

// Parse returns Default.Parse(req).
func Parse(req *Request) *URL {
	return Default.Parse(req)
}

// Original returns Default.Original(req).
func Original(req *Request) *URL {
	return Default.Original(req)
}

// ParseString returns Default.ParseString(s).
func ParseString(s string) *URL {
	return Default.ParseString(s)
}
