package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pipeline/internal/config"
	"github.com/jonathan/resume-pipeline/internal/pipeline"
	"github.com/jonathan/resume-pipeline/internal/synthesis"
	"github.com/jonathan/resume-pipeline/internal/types"
)

var renderCommand = &cobra.Command{
	Use:   "render",
	Short: "Parse a raw model response and render block sequences",
	Long: `Runs the full parse pipeline on a raw model response, then synthesizes
the validated resume into an ordered block sequence per output format.
Blocks are written as JSON, one file per format, or to stdout when no
output directory is given.`,
	RunE: runRenderCmd,
}

var (
	renderConfigPath string
	renderInput      string
	renderOrigin     string
	renderFormats    []string
	renderOutputDir  string
	renderVerbose    bool
)

func init() {
	renderCommand.Flags().StringVar(&renderConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	renderCommand.Flags().StringVarP(&renderInput, "input", "i", "", "Path to the raw model response file")
	renderCommand.Flags().StringVar(&renderOrigin, "origin", "structured", "Response origin: \"structured\" or \"prose\"")
	renderCommand.Flags().StringSliceVarP(&renderFormats, "format", "f", nil, "Output formats (default: all)")
	renderCommand.Flags().StringVarP(&renderOutputDir, "output-dir", "o", "", "Directory for rendered block JSON (default: stdout)")
	renderCommand.Flags().BoolVarP(&renderVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(renderCommand)
}

func toFormats(labels []string) []synthesis.Format {
	formats := make([]synthesis.Format, 0, len(labels))
	for _, label := range labels {
		formats = append(formats, synthesis.Format(label))
	}
	return formats
}

// writeRendered emits each format's block sequence, either to
// <dir>/resume.<format>.json or to stdout.
func writeRendered(rendered map[synthesis.Format][]types.RenderBlock, outputDir string) error {
	if outputDir != "" {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	for format, blocks := range rendered {
		encoded, err := json.MarshalIndent(blocks, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode %s blocks: %w", format, err)
		}

		if outputDir == "" {
			fmt.Fprintf(os.Stdout, "--- %s ---\n%s\n", format, encoded)
			continue
		}

		path := filepath.Join(outputDir, fmt.Sprintf("resume.%s.json", format))
		if err := os.WriteFile(path, append(encoded, '\n'), 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
	}
	return nil
}

func runRenderCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, renderConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("input") {
			cfg.Input = renderInput
		}
		if cmd.Flags().Changed("origin") {
			cfg.Origin = renderOrigin
		}
		if cmd.Flags().Changed("format") {
			cfg.Formats = renderFormats
		}
		if cmd.Flags().Changed("output-dir") {
			cfg.OutputDir = renderOutputDir
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = renderVerbose
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

	rendered, err := pipeline.RenderAll(cmd.Context(), outcome.Resume, toFormats(cfg.Formats))
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	return writeRendered(rendered, cfg.OutputDir)
}
