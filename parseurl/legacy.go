// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import (
	"errors"
	"fmt"
	"strings"
)

// LegacyParser is the fallback used when the Primitive rejects a string. It builds
// the record directly, without field mapping.
type LegacyParser func(rawURL string) (*URL, error)

var (
	errControlChar = errors.New("invalid control character in URL")
	errInvalidPort = errors.New("invalid port")
)

// ParseLegacy splits a URL on its delimiters without validating escapes or host
// syntax, which is enough for strings net/url refuses such as "/a%zz#b". Tab, CR and
// LF are removed first; any other ASCII control character, or a port that is not
// numeric, is an error.
func ParseLegacy(rawURL string) (*URL, error) {
	s := strings.Map(func(r rune) rune {
		if r == '\t' || r == '\n' || r == '\r' {
			return -1
		}
		return r
	}, trim(rawURL))

	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] == 0x7f {
			return nil, fmt.Errorf("parse %q: %w", s, errControlChar)
		}
	}

	rec := &URL{}
	rest := s

	if i := strings.IndexByte(rest, '#'); i >= 0 {
		if frag := rest[i+1:]; frag != "" {
			rec.Hash = "#" + frag
		}
		rest = rest[:i]
	}
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rec.Search = rest[i:]
		rec.Query = rest[i+1:]
		rest = rest[:i]
	}

	if scheme, after, ok := splitScheme(rest); ok {
		authority, path := after, ""
		if i := strings.IndexByte(after, '/'); i >= 0 {
			authority, path = after[:i], after[i:]
		}
		if i := strings.LastIndexByte(authority, '@'); i >= 0 {
			rec.Auth = authority[:i]
			authority = authority[i+1:]
		}

		hostname, port := splitHostPort(authority)
		if !isDigits(port) {
			return nil, fmt.Errorf("parse %q: %w %q", s, errInvalidPort, port)
		}
		if def, special := defaultPorts[scheme]; special && port == def {
			port = ""
		}

		rec.Protocol = scheme + ":"
		rec.Hostname = strings.ToLower(hostname)
		rec.Port = port
		rec.Host = rec.Hostname
		if port != "" {
			rec.Host += ":" + port
		}
		rest = path
	}

	rec.Pathname = rest
	if rec.Pathname == "" {
		rec.Pathname = "/"
	}
	rec.Path = rec.Pathname + rec.Search

	if rec.Protocol != "" {
		userinfo := ""
		if rec.Auth != "" {
			userinfo = rec.Auth + "@"
		}
		rec.Href = rec.Protocol + "//" + userinfo + rec.Host + rec.Path + rec.Hash
	} else {
		rec.Href = rec.Path + rec.Hash
	}

	return rec, nil
}

// splitScheme returns the lower-cased scheme and the text after "://" when s starts
// with a syntactically valid scheme.
func splitScheme(s string) (scheme, rest string, ok bool) {
	i := strings.Index(s, "://")
	if i <= 0 {
		return "", s, false
	}
	for j := 0; j < i; j++ {
		c := s[j]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case j > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return "", s, false
		}
	}
	return strings.ToLower(s[:i]), s[i+3:], true
}

func splitHostPort(authority string) (host, port string) {
	if strings.HasPrefix(authority, "[") {
		if i := strings.IndexByte(authority, ']'); i >= 0 {
			host, rest := authority[:i+1], authority[i+1:]
			return host, strings.TrimPrefix(rest, ":")
		}
		return authority, ""
	}
	if i := strings.LastIndexByte(authority, ':'); i >= 0 {
		return authority[:i], authority[i+1:]
	}
	return authority, ""
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
