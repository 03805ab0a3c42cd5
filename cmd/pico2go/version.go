package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akrennmair/pico/pico2go"
)

// version can be overridden at build time via -ldflags.
var version = "0.1.0-dev"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of pico2go",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			name := color.New(color.FgYellow, color.Bold).Sprint("pico2go")
			ver := color.New(color.FgGreen, color.Bold).Sprint(version)
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", name, ver)
			fmt.Fprintf(cmd.OutOrStdout(), "runtime %s\n", pico2go.DefaultRuntime)
		},
	}
}
