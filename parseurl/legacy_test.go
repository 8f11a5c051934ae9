// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

package parseurl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacy(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want URL
	}{
		{
			name: "relative path with query and fragment",
			in:   "/a%zz?x=1#f",
			want: URL{Href: "/a%zz?x=1#f", Path: "/a%zz?x=1", Pathname: "/a%zz", Search: "?x=1", Query: "x=1", Hash: "#f"},
		},
		{
			name: "tabs and newlines removed",
			in:   "/a\tb\n?c\r=d",
			want: URL{Href: "/ab?c=d", Path: "/ab?c=d", Pathname: "/ab", Search: "?c=d", Query: "c=d"},
		},
		{
			name: "empty fragment dropped",
			in:   "/a#",
			want: URL{Href: "/a", Path: "/a", Pathname: "/a"},
		},
		{
			name: "absolute with auth and default port",
			in:   "HTTPS://u:p@Host.Example:443",
			want: URL{
				Href:     "https://u:p@host.example/",
				Path:     "/",
				Pathname: "/",
				Host:     "host.example",
				Hostname: "host.example",
				Protocol: "https:",
				Auth:     "u:p",
			},
		},
		{
			name: "ipv6 with port",
			in:   "http://[::1]:8080/x",
			want: URL{
				Href:     "http://[::1]:8080/x",
				Path:     "/x",
				Pathname: "/x",
				Host:     "[::1]:8080",
				Hostname: "[::1]",
				Port:     "8080",
				Protocol: "http:",
			},
		},
		{
			name: "invalid scheme characters treated as path",
			in:   "1ab://x",
			want: URL{Href: "1ab://x", Path: "1ab://x", Pathname: "1ab://x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLegacy(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestParseLegacy_Errors(t *testing.T) {
	_, err := ParseLegacy("/a\x01b")
	assert.True(t, errors.Is(err, errControlChar), "got %v", err)

	_, err = ParseLegacy("http://host:8x/")
	assert.True(t, errors.Is(err, errInvalidPort), "got %v", err)
}
