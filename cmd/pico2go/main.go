package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/akrennmair/pico/internal/config"
	"github.com/akrennmair/pico/internal/logging"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pico2go",
		Short:         "Translate pico programs to Go",
		Long:          `pico2go translates programs written in the pico language into Go source code.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupColor(cmd)
		},
	}

	rootCmd.PersistentFlags().String("config", "", "path to pico.toml (default: search upward from the source file)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")

	rootCmd.AddCommand(newBuildCmd())
	rootCmd.AddCommand(newTokenizeCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func setupColor(cmd *cobra.Command) error {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}

	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	case "auto":
		color.NoColor = !isTerminal(os.Stdout) || !isTerminal(os.Stderr)
	default:
		return fmt.Errorf("invalid value for --color: %q (expected auto, on or off)", colorFlag)
	}

	return nil
}

// loadConfig resolves the configuration for sourceFile and creates a logger
// according to it.
func loadConfig(cmd *cobra.Command, sourceFile string) (config.Config, *slog.Logger, error) {
	configFile, err := cmd.Root().PersistentFlags().GetString("config")
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	verbose, err := cmd.Root().PersistentFlags().GetBool("verbose")
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to get verbose flag: %w", err)
	}

	cfg, err := config.Resolve(configFile, filepath.Dir(sourceFile))
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	level, err := cfg.LogLevel()
	if err != nil {
		return config.Config{}, nil, err
	}
	if verbose {
		level = slog.LevelDebug
	}

	logger := logging.New(level, cmd.ErrOrStderr())
	if cfg.Path != "" {
		logger.Debug("Loaded configuration", "path", cfg.Path)
	}

	return cfg, logger, nil
}

func readSource(sourceFile string) (string, error) {
	source, err := os.ReadFile(sourceFile)
	if err != nil {
		return "", fmt.Errorf("reading file %s failed: %w", sourceFile, err)
	}
	return string(source), nil
}

func writeOutput(w io.Writer, outputFile, content string) error {
	if outputFile == "-" {
		_, err := io.WriteString(w, content)
		return err
	}

	if err := os.WriteFile(outputFile, []byte(content), 0644); err != nil {
		return fmt.Errorf("couldn't write to output file %s: %w", outputFile, err)
	}

	return nil
}
