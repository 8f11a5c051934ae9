// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import (
	"context"
	"net/http"
)

type contextKey struct{}

// Middleware attaches a Request to the context of every request that does not carry
// one yet. The original URL is the request-target as received; the current URL
// follows r.URL as later handlers rewrite it.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := FromContext(r.Context()); ok {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), contextKey{}, newHTTPRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// FromContext returns the Request attached by Middleware.
func FromContext(ctx context.Context) (*Request, bool) {
	req, ok := ctx.Value(contextKey{}).(*Request)
	return req, ok && req != nil
}

// FromHTTP returns the Request for r with its current URL synced to r.URL. Without
// Middleware a new, unshared Request is returned.
func FromHTTP(r *http.Request) *Request {
	req, ok := FromContext(r.Context())
	if !ok {
		return newHTTPRequest(r)
	}

	if r.URL == nil {
		req.UnsetURL()
		return req
	}
	uri := r.URL.RequestURI()
	if cur, has := req.URL(); !has || cur != uri {
		req.SetURL(uri)
	}
	return req
}

func newHTTPRequest(r *http.Request) *Request {
	req := &Request{}
	if r.URL != nil {
		req.url, req.hasURL = r.URL.RequestURI(), true
	}
	switch {
	case r.RequestURI != "":
		req.originalURL, req.hasOriginalURL = r.RequestURI, true
	case req.hasURL:
		req.originalURL, req.hasOriginalURL = req.url, true
	}
	return req
}

// ParseHTTP parses r's current URL, memoized across handlers when Middleware is installed.
func (p *Parser) ParseHTTP(r *http.Request) *URL {
	if r == nil {
		return nil
	}
	return p.Parse(FromHTTP(r))
}

// OriginalHTTP parses the request-target r arrived with.
func (p *Parser) OriginalHTTP(r *http.Request) *URL {
	if r == nil {
		return nil
	}
	return p.Original(FromHTTP(r))
}

// ParseHTTP returns Default.ParseHTTP(r).
func ParseHTTP(r *http.Request) *URL {
	return Default.ParseHTTP(r)
}

// OriginalHTTP returns Default.OriginalHTTP(r).
func OriginalHTTP(r *http.Request) *URL {
	return Default.OriginalHTTP(r)
}
