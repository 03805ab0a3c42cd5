package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/akrennmair/pico/parser"
)

func newParseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse file.pico",
		Short: "Dump the syntax tree of a pico source file",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
}

func runParse(cmd *cobra.Command, args []string) error {
	sourceFile := args[0]

	_, logger, err := loadConfig(cmd, sourceFile)
	if err != nil {
		return err
	}

	source, err := readSource(sourceFile)
	if err != nil {
		return err
	}

	p := parser.NewParser(sourceFile, source)
	p.SetLogger(logger)

	prog, err := p.Parse()
	if err != nil {
		return fmt.Errorf("parsing %s failed: %w", sourceFile, err)
	}

	// calls and return statements refer back to their function.
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, MaxDepth: 12, SortKeys: true}
	cfg.Fdump(cmd.OutOrStdout(), prog)

	return nil
}
