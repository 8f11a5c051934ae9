// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware_MemoizesAcrossHandlers(t *testing.T) {
	var first, second *URL
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		second = ParseHTTP(r)
	})
	outer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		first = ParseHTTP(r)
		inner.ServeHTTP(w, r)
	})

	r := httptest.NewRequest(http.MethodGet, "/foo/bar?fizz=buzz", nil)
	Middleware(outer).ServeHTTP(httptest.NewRecorder(), r)

	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Equal(t, "/foo/bar", first.Pathname)
	assert.Equal(t, "fizz=buzz", first.Query)
}

func TestMiddleware_StripPrefixSplitsCurrentAndOriginal(t *testing.T) {
	var outerURL, current, original *URL
	handler := http.StripPrefix("/api", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current = ParseHTTP(r)
		original = OriginalHTTP(r)
	}))
	outer := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		outerURL = ParseHTTP(r)
		handler.ServeHTTP(w, r)
	})

	r := httptest.NewRequest(http.MethodGet, "/api/users?id=1", nil)
	Middleware(outer).ServeHTTP(httptest.NewRecorder(), r)

	require.NotNil(t, current)
	assert.Equal(t, "/api/users", outerURL.Pathname)
	assert.Equal(t, "/users", current.Pathname)
	assert.Equal(t, "?id=1", current.Search)
	assert.NotSame(t, outerURL, current)
	assert.Equal(t, "/api/users", original.Pathname)
	assert.Equal(t, "/api/users?id=1", original.Href)
}

func TestMiddleware_KeepsOuterRequest(t *testing.T) {
	var seen *Request
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = FromContext(r.Context())
	}))

	var outer *Request
	wrapped := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		outer, _ = FromContext(r.Context())
		handler.ServeHTTP(w, r)
	}))

	wrapped.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/x", nil))
	require.NotNil(t, outer)
	assert.Same(t, outer, seen)
}

func TestParseHTTP_AbsoluteForm(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "http://example.com:8080/x?y=1", nil)

	var current, original *URL
	Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		current = ParseHTTP(r)
		original = OriginalHTTP(r)
	})).ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "/x", current.Pathname)
	assert.Empty(t, current.Host)
	assert.Equal(t, "example.com:8080", original.Host)
	assert.Equal(t, "8080", original.Port)
	assert.Equal(t, "/x?y=1", original.Path)
}

func TestParseHTTP_WithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/plain?q", nil)

	u := ParseHTTP(r)
	require.NotNil(t, u)
	assert.Equal(t, "/plain", u.Pathname)
	assert.Equal(t, "q", u.Query)

	_, ok := FromContext(r.Context())
	assert.False(t, ok)
}

func TestParseHTTP_ClientRequestWithoutRequestURI(t *testing.T) {
	r, err := http.NewRequest(http.MethodGet, "http://example.com/a%20b?c=d", nil)
	require.NoError(t, err)

	u := OriginalHTTP(r)
	assert.Equal(t, "/a%20b", u.Pathname)
	assert.Equal(t, "?c=d", u.Search)
}

func TestParseHTTP_Nil(t *testing.T) {
	assert.Nil(t, ParseHTTP(nil))
	assert.Nil(t, OriginalHTTP(nil))
}

func TestFromHTTP_MissingURL(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x", nil)

	var u *URL
	Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL = nil
		u = ParseHTTP(r)
	})).ServeHTTP(httptest.NewRecorder(), r)

	assert.Nil(t, u)
}
