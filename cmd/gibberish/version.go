package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Overridden at build time via -ldflags.
var (
	version   = "0.3.0-dev"
	gitCommit = ""
	buildDate = ""
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gibberish %s\n", color.New(color.FgCyan, color.Bold).Sprint(version))
			if gitCommit != "" {
				fmt.Fprintf(out, "commit:  %s\n", gitCommit)
			}
			if buildDate != "" {
				fmt.Fprintf(out, "built:   %s\n", buildDate)
			}
			return nil
		},
	}
}
