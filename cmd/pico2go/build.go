package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akrennmair/pico/parser"
	"github.com/akrennmair/pico/pico2go"
	"github.com/akrennmair/pico/pico2go/system"
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [flags] file.pico",
		Short: "Translate a pico source file to Go",
		Long:  `Build parses a pico source file and writes the equivalent Go program. Without -o, the output is written next to the source file.`,
		Args:  cobra.ExactArgs(1),
		RunE:  runBuild,
	}

	cmd.Flags().StringP("output", "o", "", "output file, - for standard output")

	return cmd
}

func runBuild(cmd *cobra.Command, args []string) error {
	sourceFile := args[0]

	outputFile, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	if outputFile == "" {
		outputFile = system.StripExt(sourceFile) + ".go"
	}

	cfg, logger, err := loadConfig(cmd, sourceFile)
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

	goSource, err := pico2go.Transpile(prog,
		pico2go.WithRuntime(cfg.Build.Runtime),
		pico2go.WithHeader(cfg.Build.Header),
		pico2go.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("transpiling %s failed: %w", sourceFile, err)
	}

	if err := writeOutput(cmd.OutOrStdout(), outputFile, goSource); err != nil {
		return err
	}

	logger.Debug("Translated program", "source", sourceFile, "output", outputFile, "functions", len(prog.Functions))

	return nil
}
