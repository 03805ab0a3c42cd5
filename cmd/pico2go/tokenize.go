package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akrennmair/pico/parser"
)

func newTokenizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokenize file.pico",
		Short: "Print the tokens of a pico source file",
		Args:  cobra.ExactArgs(1),
		RunE:  runTokenize,
	}
}

func runTokenize(cmd *cobra.Command, args []string) error {
	sourceFile := args[0]

	source, err := readSource(sourceFile)
	if err != nil {
		return err
	}

	tokens, err := parser.Tokenize(sourceFile, source)
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	posColor := color.New(color.Faint)
	kindColor := color.New(color.FgCyan)

	out := cmd.OutOrStdout()
	for _, tok := range tokens {
		pos := posColor.Sprintf("%d:%d", tok.Line, tok.Column)
		if tok.Text == "" {
			fmt.Fprintf(out, "%s\t%s\n", pos, kindColor.Sprint(tok.Kind))
			continue
		}
		fmt.Fprintf(out, "%s\t%s\t%s\n", pos, kindColor.Sprint(tok.Kind), strconv.Quote(tok.Text))
	}

	return nil
}
