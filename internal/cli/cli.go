// Package cli wires the observe command: flags, environment defaults, logging,
// the walkthrough and the optional introspection server.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
)

// MainWithArgs is a testable variant of Main. It returns an exit code
// (0 for success, non-zero on error).
func MainWithArgs(ctx context.Context, args []string, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	root := buildRootCmd(stdout, stderr, lookupEnv)
	root.SetArgs(args)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(stderr, "observe:", err)
		return 1
	}
	return 0
}

// Main runs the observe command against the process arguments and environment.
func Main() int {
	return MainWithArgs(context.Background(), os.Args[1:], os.Stdout, os.Stderr, os.LookupEnv)
}
