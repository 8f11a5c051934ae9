// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import (
	neturl "net/url"
)

// URL is the normalized parse result. Empty strings mean the component is absent.
type URL struct {
	Href     string `json:"href,omitempty" yaml:"href,omitempty"`
	Path     string `json:"path,omitempty" yaml:"path,omitempty"`
	Pathname string `json:"pathname,omitempty" yaml:"pathname,omitempty"`
	Search   string `json:"search,omitempty" yaml:"search,omitempty"`
	Query    string `json:"query,omitempty" yaml:"query,omitempty"`
	Hash     string `json:"hash,omitempty" yaml:"hash,omitempty"`
	Host     string `json:"host,omitempty" yaml:"host,omitempty"`
	Hostname string `json:"hostname,omitempty" yaml:"hostname,omitempty"`
	Port     string `json:"port,omitempty" yaml:"port,omitempty"`
	Protocol string `json:"protocol,omitempty" yaml:"protocol,omitempty"`
	Auth     string `json:"auth,omitempty" yaml:"auth,omitempty"`

	// Annotations holds values callers attach to a memoized record. They live as
	// long as the record does and are gone after a re-parse.
	Annotations map[string]any `json:"-" yaml:"-"`

	raw    string
	tagged bool
}

// HasQuery reports whether the URL had a "?" component, even an empty one.
func (u *URL) HasQuery() bool {
	return u != nil && u.Search != ""
}

// IsAbsolute reports whether authority fields were populated.
func (u *URL) IsAbsolute() bool {
	return u != nil && u.Protocol != ""
}

// Values decodes Query. Malformed pairs are dropped the same way net/url does.
func (u *URL) Values() neturl.Values {
	if !u.HasQuery() {
		return neturl.Values{}
	}
	v, _ := neturl.ParseQuery(u.Query)
	return v
}

// Annotate attaches a transient value to the record.
func (u *URL) Annotate(key string, value any) {
	if u.Annotations == nil {
		u.Annotations = make(map[string]any)
	}
	u.Annotations[key] = value
}

// Annotation returns a value previously attached with Annotate.
func (u *URL) Annotation(key string) (any, bool) {
	if u == nil || u.Annotations == nil {
		return nil, false
	}
	v, ok := u.Annotations[key]
	return v, ok
}

func (u *URL) String() string {
	if u == nil {
		return ""
	}
	return u.Href
}

// tag marks the record as memoized from raw.
func (u *URL) tag(raw string) {
	u.raw = raw
	u.tagged = true
}

// fresh reports whether cached was memoized from exactly raw.
func fresh(raw string, cached *URL) bool {
	return cached != nil && cached.tagged && cached.raw == raw
}
