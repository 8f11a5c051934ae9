// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import (
	"errors"
	"fmt"
	neturl "net/url"
)

// Primitive is the URL parser the full parser delegates to.
//
// With an empty base, rawURL must be absolute and Parse must fail when it is not.
// With a base, rawURL is resolved against it.
type Primitive interface {
	Parse(rawURL, base string) (*neturl.URL, error)
}

// PrimitiveFunc adapts a function to Primitive.
type PrimitiveFunc func(rawURL, base string) (*neturl.URL, error)

// Parse calls f(rawURL, base).
func (f PrimitiveFunc) Parse(rawURL, base string) (*neturl.URL, error) {
	return f(rawURL, base)
}

// StdPrimitive parses with net/url.
var StdPrimitive Primitive = PrimitiveFunc(stdParse)

var errMissingScheme = errors.New("missing protocol scheme")

func stdParse(rawURL, base string) (*neturl.URL, error) {
	if base == "" {
		u, err := neturl.Parse(rawURL)
		if err != nil {
			return nil, err
		}
		if u.Scheme == "" {
			return nil, &neturl.Error{Op: "parse", URL: rawURL, Err: errMissingScheme}
		}
		return u, nil
	}

	b, err := neturl.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base %q: %w", base, err)
	}
	return b.Parse(rawURL)
}
