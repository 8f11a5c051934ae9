// Command parseurl parses request URLs the way the parseurl package does and can
// serve an inspection endpoint that reports them.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jongio/parseurl/cliout"
)

func main() {
	os.Exit(execute(context.Background(), os.Args[1:]))
}

// execute runs the CLI and returns the process exit code. Errors go to stdout in
// the default format and to stderr when the output is meant for machines.
func execute(ctx context.Context, args []string) int {
	cmd := newRootCommand()
	cmd.SetArgs(args)
	if err := cmd.ExecuteContext(ctx); err != nil {
		if cliout.IsStructured() {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		} else {
			cliout.Error("%v", err)
		}
		return 1
	}
	return 0
}
