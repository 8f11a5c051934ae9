// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import "sync"

// Request carries the raw URL strings of one HTTP request plus the two cache slots
// Parse and Original memoize into. The zero value has neither URL set.
//
// A Request is safe for concurrent use. The parser holds its lock across the
// freshness check, the parse, and the store, so a raw string is parsed at most
// once per slot.
type Request struct {
	mu sync.Mutex

	url            string
	hasURL         bool
	originalURL    string
	hasOriginalURL bool

	parsedURL         *URL
	parsedOriginalURL *URL
}

// NewRequest returns a Request with url set and originalUrl unset.
func NewRequest(rawURL string) *Request {
	return &Request{url: rawURL, hasURL: true}
}

// SetURL replaces the current URL. The cached parse is invalidated lazily on the
// next Parse call.
func (r *Request) SetURL(rawURL string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.url = rawURL
	r.hasURL = true
}

// UnsetURL removes the current URL. The cached parse, if any, stays in its slot.
func (r *Request) UnsetURL() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.url = ""
	r.hasURL = false
}

// URL returns the current URL and whether it is set.
func (r *Request) URL() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.url, r.hasURL
}

// SetOriginalURL sets the URL as first received, before any rewriting.
func (r *Request) SetOriginalURL(rawURL string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.originalURL = rawURL
	r.hasOriginalURL = true
}

// UnsetOriginalURL removes the original URL so Original falls back to Parse.
func (r *Request) UnsetOriginalURL() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.originalURL = ""
	r.hasOriginalURL = false
}

// OriginalURL returns the original URL and whether it is set.
func (r *Request) OriginalURL() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.originalURL, r.hasOriginalURL
}

// CachedURL returns the record in the current-URL slot, nil if nothing was parsed yet.
func (r *Request) CachedURL() *URL {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.parsedURL
}

// CachedOriginalURL returns the record in the original-URL slot.
func (r *Request) CachedOriginalURL() *URL {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.parsedOriginalURL
}
