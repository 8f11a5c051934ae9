// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package parseurl parses a request's URL string into a legacy-shaped record and
// memoizes the result on the request.
//
// Middleware stacks tend to ask for "the parsed URL of this request" many times per
// request. Parse and Original cache the record on the Request and only re-parse when
// the raw string changes, so repeated calls return the same *URL.
//
// # Usage
//
//	req := parseurl.NewRequest("/foo/bar?fizz=buzz")
//	u := parseurl.Parse(req)
//	fmt.Println(u.Pathname, u.Query) // /foo/bar fizz=buzz
//
// With net/http, install Middleware once and read the record from any handler:
//
//	mux.Handle("/", parseurl.Middleware(handler))
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//		u := parseurl.ParseHTTP(r)
//		orig := parseurl.OriginalHTTP(r)
//		...
//	}
//
// # Parsing Strategy
//
// Strings that start with "/" and contain no whitespace or "#" are split on the first
// "?" without touching net/url. Everything else goes through the full parser, which
// trims whitespace, parses with a Primitive (net/url by default) and maps the result
// into URL. Relative strings are parsed against a placeholder base and keep the
// trimmed input as Href. Paths starting with "/" keep their text verbatim, so both
// routes give the same Pathname for the same path.
//
// The full parser never fails. If the primitive rejects the string, a lenient legacy
// splitter is tried; if that fails too, a minimal record is returned whose Href, Path
// and Pathname hold the trimmed input.
//
// # Field Representation
//
// Unset fields are empty strings. Search keeps its leading "?" so a bare trailing "?"
// is still visible; use HasQuery to tell an empty query from no query.
package parseurl
