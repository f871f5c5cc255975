// Package main provides deltatool, a command-line front end for the
// pkg/delta operational-transform primitives: compose, transform, invert,
// diff and apply a Quill Delta against JSON-encoded input.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "deltatool",
		Short:         "Inspect and manipulate Quill Deltas",
		Long:          `deltatool composes, transforms, inverts, diffs and applies Quill Deltas read as JSON from files or stdin.`,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.AddCommand(
		newComposeCmd(),
		newTransformCmd(),
		newInvertCmd(),
		newDiffCmd(),
		newApplyCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "deltatool: %v\n", err)
		os.Exit(1)
	}
}
