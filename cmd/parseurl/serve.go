package main

import (
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/jongio/parseurl/cliout"
	"github.com/jongio/parseurl/inspect"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

type serveOptions struct {
	configPath      string
	addr            string
	prefix          string
	placeholderBase string
	rateLimit       float64
	burst           int
	metrics         bool
}

type serveStatus struct {
	URL     string `json:"url" yaml:"url"`
	Prefix  string `json:"prefix,omitempty" yaml:"prefix,omitempty"`
	Metrics bool   `json:"metrics" yaml:"metrics"`
}

func printServeStatus(s serveStatus) {
	cliout.Success("Serving on %s", cliout.Highlight("%s", s.URL))
	if s.Prefix != "" {
		cliout.Info("Stripping %s before parsing the current URL", s.Prefix)
	}
	if s.Metrics {
		cliout.Info("Metrics at %s/metrics", s.URL)
	}
	cliout.Item("%s", cliout.Muted("Press Ctrl+C to stop"))
}

func newServeCommand() *cobra.Command {
	opts := &serveOptions{}

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve an endpoint that reports each request's parsed URLs",
		Long: `Serve answers every request with a JSON report of its current and original URL.
Settings come from --config, then flags, then PARSEURL_* environment variables
standing in for flags that were not given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.config(cmd.Flags())
			if err != nil {
				return err
			}
			ln, err := net.Listen("tcp", cfg.Addr)
			if err != nil {
				return fmt.Errorf("failed to listen on %s: %w", cfg.Addr, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			origin := "http://" + ln.Addr().String()
			status := serveStatus{URL: origin, Prefix: cfg.Prefix, Metrics: cfg.Metrics}
			if err := cliout.Print(status, func() { printServeStatus(status) }); err != nil {
				_ = ln.Close()
				return err
			}

			if err := inspect.ServeListener(ctx, cfg, ln); err != nil {
				return err
			}
			if !cliout.IsStructured() {
				cliout.Info("Server stopped")
			}
			return nil
		},
	}

	opts.bind(cmd.Flags())
	return cmd
}

func (o *serveOptions) bind(flags *pflag.FlagSet) {
	defaults := inspect.DefaultConfig()
	flags.StringVarP(&o.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVar(&o.addr, "addr", defaults.Addr, "Listen address")
	flags.StringVar(&o.prefix, "prefix", defaults.Prefix, "Path prefix stripped before the current URL is parsed")
	flags.StringVar(&o.placeholderBase, "placeholder-base", defaults.PlaceholderBase, "Placeholder origin for relative URLs")
	flags.Float64Var(&o.rateLimit, "rate-limit", defaults.RateLimit, "Requests per second, 0 for unlimited")
	flags.IntVar(&o.burst, "burst", defaults.Burst, "Requests allowed above the rate limit at once")
	flags.BoolVar(&o.metrics, "metrics", defaults.Metrics, "Expose Prometheus metrics on /metrics")
}

// config loads the file, if any, and overlays every flag that was set.
func (o *serveOptions) config(flags *pflag.FlagSet) (inspect.Config, error) {
	cfg := inspect.DefaultConfig()
	if o.configPath != "" {
		loaded, err := inspect.LoadConfig(o.configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	if flags.Changed("addr") {
		cfg.Addr = o.addr
	}
	if flags.Changed("prefix") {
		cfg.Prefix = o.prefix
	}
	if flags.Changed("placeholder-base") {
		cfg.PlaceholderBase = o.placeholderBase
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit = o.rateLimit
	}
	if flags.Changed("burst") {
		cfg.Burst = o.burst
	}
	if flags.Changed("metrics") {
		cfg.Metrics = o.metrics
	}
	return cfg, cfg.Validate()
}
