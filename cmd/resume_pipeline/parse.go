package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pipeline/internal/config"
	"github.com/jonathan/resume-pipeline/internal/pipeline"
	"github.com/jonathan/resume-pipeline/internal/types"
)

var parseCommand = &cobra.Command{
	Use:   "parse",
	Short: "Parse a raw model response into a validated resume",
	Long: `Reads a raw model response from a file and runs it through the pipeline:
repair cascade for structured candidates, section extraction for prose, then
entity validation. The validated resume and run trace are printed as JSON.`,
	RunE: runParseCmd,
}

var (
	parseConfigPath string
	parseInput      string
	parseOrigin     string
	parseVerbose    bool
)

func init() {
	parseCommand.Flags().StringVar(&parseConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	parseCommand.Flags().StringVarP(&parseInput, "input", "i", "", "Path to the raw model response file")
	parseCommand.Flags().StringVar(&parseOrigin, "origin", "structured", "Response origin: \"structured\" or \"prose\"")
	parseCommand.Flags().BoolVarP(&parseVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(parseCommand)
}

// loadMergedConfig loads the optional config file and applies the flags the
// user actually set on top of it.
func loadMergedConfig(cmd *cobra.Command, path string, apply func(cfg *config.Config)) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	apply(&cfg)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func originFromLabel(label string) types.Origin {
	if label == "prose" {
		return types.OriginProse
	}
	return types.OriginStructured
}

func runParseCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, parseConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("input") {
			cfg.Input = parseInput
		}
		if cmd.Flags().Changed("origin") {
			cfg.Origin = parseOrigin
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = parseVerbose
		}
	})
	if err != nil {
		return err
	}
	if cfg.Input == "" {
		return fmt.Errorf("--input is required")
	}

	data, err := os.ReadFile(cfg.Input)
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}

	outcome := pipeline.Process(types.RawResponse{
		Text:   string(data),
		Origin: originFromLabel(cfg.Origin),
	}, pipeline.Options{Verbose: cfg.Verbose, Out: os.Stderr})

	encoded, err := json.MarshalIndent(outcome, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode outcome: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(encoded))
	return nil
}
