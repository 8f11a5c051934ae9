// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import (
	"fmt"
	neturl "net/url"
	"strings"
	"unicode"

	"golang.org/x/net/idna"
)

// defaultPorts lists the schemes whose hosts are IDNA-normalized, with the port
// that is dropped from Host when given explicitly.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ws":    "80",
	"wss":   "443",
	"ftp":   "21",
	"file":  "",
}

// fullParse parses any string through the primitive and maps the result. It falls
// back to the legacy parser and then to a minimal record, so it always returns.
func (p *Parser) fullParse(s string) (*URL, tier) {
	s = trim(s)
	relative := strings.HasPrefix(s, "/") || !strings.Contains(s, "://")

	u, err := p.primary(s, relative)
	if err == nil {
		return p.mapURL(s, u, relative), tierFull
	}
	p.log.Debug("primary parser rejected url", "url", s, "error", err)

	if p.legacy != nil {
		rec, lerr := p.callLegacy(s)
		if lerr == nil {
			return rec, tierLegacy
		}
		p.log.Debug("legacy parser rejected url", "url", s, "error", lerr)
	}

	return &URL{Href: s, Path: s, Pathname: s}, tierMinimal
}

// primary runs the primitive. A path is appended to the placeholder origin rather
// than resolved, so "//a@b" stays a path instead of becoming an authority.
func (p *Parser) primary(s string, relative bool) (u *neturl.URL, err error) {
	defer func() {
		if r := recover(); r != nil {
			u, err = nil, fmt.Errorf("primitive panicked: %v", r)
		}
	}()

	switch {
	case !relative:
		u, err = p.primitive.Parse(s, "")
	case strings.HasPrefix(s, "/"):
		u, err = p.primitive.Parse(p.base+s, "")
	default:
		u, err = p.primitive.Parse(s, p.base)
	}
	if err == nil && u == nil {
		err = fmt.Errorf("primitive returned no URL for %q", s)
	}
	return u, err
}

func (p *Parser) callLegacy(s string) (rec *URL, err error) {
	defer func() {
		if r := recover(); r != nil {
			rec, err = nil, fmt.Errorf("legacy parser panicked: %v", r)
		}
	}()

	rec, err = p.legacy(s)
	if err == nil && rec == nil {
		err = fmt.Errorf("legacy parser returned no URL for %q", s)
	}
	return rec, err
}

// mapURL converts the primitive's result into the legacy shape. s is the trimmed
// input string. A relative href is the input itself.
func (p *Parser) mapURL(s string, u *neturl.URL, relative bool) *URL {
	if strings.HasPrefix(s, "/") {
		return splitPath(s)
	}

	rec := &URL{}

	if u.Opaque != "" {
		rec.Pathname = u.Opaque
	} else {
		rec.Pathname = u.EscapedPath()
	}
	if rec.Pathname == "" {
		rec.Pathname = "/"
	}
	if u.RawQuery != "" || u.ForceQuery {
		rec.Search = "?" + u.RawQuery
		rec.Query = u.RawQuery
	}
	if u.Fragment != "" {
		rec.Hash = "#" + u.EscapedFragment()
	}
	rec.Path = rec.Pathname + rec.Search

	if relative {
		rec.Href = s
		if rec.Href == "" {
			rec.Href = "/"
		}
		return rec
	}

	scheme := strings.ToLower(u.Scheme)
	hostname, port := normalizeHost(u, scheme)
	host := hostname
	if port != "" {
		host += ":" + port
	}

	hasAuthority := scheme != "" && strings.Contains(s, "://")
	if hasAuthority {
		rec.Protocol = scheme + ":"
		rec.Host = host
		rec.Hostname = hostname
		rec.Port = port
		rec.Auth = auth(u.User)
	}
	rec.Href = serialize(u, scheme, host, rec, hasAuthority)

	return rec
}

// splitPath builds the record for a path the primitive accepted, keeping the input
// text verbatim so it matches the fast path byte for byte.
func splitPath(s string) *URL {
	rec := &URL{Href: s}
	rest := s
	if i := strings.IndexByte(rest, '#'); i >= 0 {
		if frag := rest[i+1:]; frag != "" {
			rec.Hash = "#" + frag
		}
		rest = rest[:i]
	}
	rec.Pathname = rest
	if i := strings.IndexByte(rest, '?'); i >= 0 {
		rec.Pathname, rec.Search, rec.Query = rest[:i], rest[i:], rest[i+1:]
	}
	rec.Path = rec.Pathname + rec.Search
	return rec
}

func normalizeHost(u *neturl.URL, scheme string) (hostname, port string) {
	hostname = u.Hostname()
	port = u.Port()

	if strings.Contains(hostname, ":") {
		hostname = "[" + strings.ToLower(hostname) + "]"
	} else if _, special := defaultPorts[scheme]; special && hostname != "" {
		if ascii, err := idna.Lookup.ToASCII(hostname); err == nil {
			hostname = ascii
		} else {
			hostname = strings.ToLower(hostname)
		}
	}

	if def, special := defaultPorts[scheme]; special && port == def {
		port = ""
	}
	return hostname, port
}

func auth(ui *neturl.Userinfo) string {
	if ui == nil {
		return ""
	}
	if password, ok := ui.Password(); ok && password != "" {
		return ui.Username() + ":" + password
	}
	return ui.Username()
}

func serialize(u *neturl.URL, scheme, host string, rec *URL, hasAuthority bool) string {
	var b strings.Builder
	if scheme != "" {
		b.WriteString(scheme)
		b.WriteByte(':')
	}

	if u.Opaque != "" {
		b.WriteString(u.Opaque)
	} else {
		if hasAuthority || u.Host != "" || u.User != nil {
			b.WriteString("//")
			if u.User != nil {
				b.WriteString(u.User.String())
				b.WriteByte('@')
			}
			b.WriteString(host)
		}
		b.WriteString(rec.Pathname)
	}

	b.WriteString(rec.Search)
	b.WriteString(rec.Hash)
	return b.String()
}

// trim strips the same characters as JavaScript's String.prototype.trim.
func trim(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == '\ufeff' || (unicode.IsSpace(r) && r != '\u0085')
	})
}
