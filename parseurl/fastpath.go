// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

// fastParse splits plain "/path?query" strings without the full parser. Anything
// that could need trimming or fragment handling is handed to fullParse untouched.
func (p *Parser) fastParse(s string) (*URL, tier) {
	if len(s) == 0 || s[0] != '/' {
		return p.fullParse(s)
	}

	pathname := s
	search, query := "", ""
	split := false

	for i, c := range s[1:] {
		switch c {
		case '?':
			if !split {
				i++
				pathname = s[:i]
				search = s[i:]
				query = s[i+1:]
				split = true
			}
		case '\t', '\n', '\f', '\r', ' ', '#', '\u00a0', '\ufeff':
			return p.fullParse(s)
		}
	}

	return &URL{
		Href:     s,
		Path:     s,
		Pathname: pathname,
		Search:   search,
		Query:    query,
	}, tierFast
}
