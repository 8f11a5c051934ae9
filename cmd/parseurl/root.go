package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jongio/parseurl/cliout"
	"github.com/jongio/parseurl/logutil"
	"github.com/jongio/parseurl/version"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// envPrefix names the environment variables that stand in for unset flags,
// e.g. PARSEURL_RATE_LIMIT for --rate-limit.
const envPrefix = "PARSEURL_"

type rootOptions struct {
	debug      bool
	structured bool
	noColor    bool
	output     string
}

func newRootCommand() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "parseurl",
		Short:         "Parse and inspect request URLs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := applyEnv(cmd.Flags()); err != nil {
				return err
			}
			logutil.SetupLogger(opts.debug, opts.structured)
			if opts.noColor {
				cliout.NoColor()
			} else {
				cliout.ResetColor()
			}
			return cliout.SetFormat(opts.output)
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")
	flags.BoolVar(&opts.structured, "structured-logs", false, "Write logs as JSON")
	flags.StringVarP(&opts.output, "output", "o", "default", "Output format (default, json, yaml)")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable colored output")

	cmd.AddCommand(
		newParseCommand(),
		newServeCommand(),
		version.NewCommand(version.New("parseurl")),
	)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return fmt.Errorf("%w\nRun '%s --help' for usage", err, c.CommandPath())
	})
	return cmd
}

// applyEnv sets every flag not given on the command line from its PARSEURL_*
// environment variable, when present.
func applyEnv(flags *pflag.FlagSet) error {
	var errs []string
	flags.VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}
		value, ok := os.LookupEnv(envName(f.Name))
		if !ok {
			return
		}
		if err := flags.Set(f.Name, value); err != nil {
			errs = append(errs, fmt.Sprintf("%s: %v", envName(f.Name), err))
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("invalid environment: %s", strings.Join(errs, "; "))
	}
	return nil
}

func envName(flag string) string {
	return envPrefix + strings.ToUpper(strings.ReplaceAll(flag, "-", "_"))
}
