package main

import (
	"sort"
	"strings"

	"github.com/jongio/parseurl/cliout"
	"github.com/jongio/parseurl/parseurl"
	"github.com/spf13/cobra"
)

type parseResult struct {
	Input       string        `json:"input" yaml:"input"`
	URL         *parseurl.URL `json:"url" yaml:"url"`
	OriginalURL *parseurl.URL `json:"originalUrl,omitempty" yaml:"originalUrl,omitempty"`
}

func newParseCommand() *cobra.Command {
	var (
		full     bool
		original string
		base     string
	)

	cmd := &cobra.Command{
		Use:   "parse [flags] <url>...",
		Short: "Parse URLs and print their components",
		Example: `  parseurl parse "/foo/bar?fizz=buzz"
  parseurl parse -o json "http://user@example.com:8080/a#b"
  parseurl parse --original /api/users /users`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parser := parseurl.New(parseurl.Options{Base: base})
			withOriginal := cmd.Flags().Changed("original")

			results := make([]parseResult, 0, len(args))
			for _, raw := range args {
				res := parseResult{Input: raw}
				if full {
					res.URL = parser.ParseFull(raw)
				} else {
					req := parseurl.NewRequest(raw)
					res.URL = parser.Parse(req)
					if withOriginal {
						req.SetOriginalURL(original)
						res.OriginalURL = parser.Original(req)
					}
				}
				results = append(results, res)
			}

			var data any = results
			if len(results) == 1 {
				data = results[0]
			}
			return cliout.Print(data, func() {
				for _, res := range results {
					printResult(res)
				}
			})
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Skip the fast path and use the full parser")
	cmd.Flags().StringVar(&original, "original", "", "Original URL to parse alongside each current URL")
	cmd.Flags().StringVar(&base, "base", "", "Placeholder origin for relative URLs")
	cmd.MarkFlagsMutuallyExclusive("full", "original")
	return cmd
}

func printResult(res parseResult) {
	cliout.Header(res.Input)
	if strings.TrimSpace(res.Input) != res.Input {
		cliout.Warning("Surrounding whitespace was trimmed before parsing")
	}
	printURL(res.URL)
	if res.OriginalURL != nil {
		cliout.Newline()
		cliout.Item("%s", cliout.Highlight("Original"))
		printURL(res.OriginalURL)
	}
}

func printURL(u *parseurl.URL) {
	cliout.Label("Href", u.Href)
	cliout.Label("Protocol", u.Protocol)
	cliout.Label("Auth", u.Auth)
	cliout.Label("Host", u.Host)
	cliout.Label("Hostname", u.Hostname)
	cliout.Label("Port", u.Port)
	cliout.Label("Pathname", u.Pathname)
	cliout.Label("Search", u.Search)
	cliout.Label("Hash", u.Hash)

	values := u.Values()
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		cliout.Item("  %s = %s", k, strings.Join(values[k], ", "))
	}
}
