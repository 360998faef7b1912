package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-pipeline/internal/config"
	"github.com/jonathan/resume-pipeline/internal/llm"
	"github.com/jonathan/resume-pipeline/internal/pipeline"
)

var generateCommand = &cobra.Command{
	Use:   "generate",
	Short: "Generate, parse, and render a resume end to end",
	Long: `Builds a resume prompt from the candidate background and target role,
calls the Gemini API, then runs the response through the repair, validation,
and synthesis pipeline. Rendered block sequences are written per format.`,
	RunE: runGenerateCmd,
}

var (
	generateConfigPath string
	generateBackground string
	generateJob        string
	generateAPIKey     string
	generateModel      string
	generateFormats    []string
	generateOutputDir  string
	generateVerbose    bool
)

func init() {
	generateCommand.Flags().StringVar(&generateConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	generateCommand.Flags().StringVarP(&generateBackground, "background", "b", "", "Path to the candidate background text")
	generateCommand.Flags().StringVarP(&generateJob, "job", "j", "", "Path to the target role description (optional)")
	generateCommand.Flags().StringVarP(&generateAPIKey, "api-key", "k", "", "Gemini API key (optional, defaults to GEMINI_API_KEY env var)")
	generateCommand.Flags().StringVarP(&generateModel, "model", "m", "", "Override the standard-tier model name")
	generateCommand.Flags().StringSliceVarP(&generateFormats, "format", "f", nil, "Output formats (default: all)")
	generateCommand.Flags().StringVarP(&generateOutputDir, "output-dir", "o", "", "Directory for rendered block JSON (default: stdout)")
	generateCommand.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(generateCommand)
}

func runGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadMergedConfig(cmd, generateConfigPath, func(cfg *config.Config) {
		if cmd.Flags().Changed("background") {
			cfg.Background = generateBackground
		}
		if cmd.Flags().Changed("job") {
			cfg.Job = generateJob
		}
		if cmd.Flags().Changed("api-key") {
			cfg.APIKey = generateAPIKey
		}
		if cmd.Flags().Changed("model") {
			cfg.Model = generateModel
		}
		if cmd.Flags().Changed("format") {
			cfg.Formats = generateFormats
		}
		if cmd.Flags().Changed("output-dir") {
			cfg.OutputDir = generateOutputDir
		}
		if cmd.Flags().Changed("verbose") {
			cfg.Verbose = generateVerbose
		}
	})
	if err != nil {
		return err
	}
	if cfg.Background == "" {
		return fmt.Errorf("--background is required")
	}

	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return fmt.Errorf("API key required: set --api-key flag or GEMINI_API_KEY environment variable")
	}

	background, err := os.ReadFile(cfg.Background)
	if err != nil {
		return fmt.Errorf("failed to read background: %w", err)
	}

	var job []byte
	if cfg.Job != "" {
		if job, err = os.ReadFile(cfg.Job); err != nil {
			return fmt.Errorf("failed to read job description: %w", err)
		}
	}

	modelConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		modelConfig = modelConfig.WithModel(llm.TierStandard, cfg.Model)
	}

	client, err := llm.NewGeminiClient(cmd.Context(), modelConfig, apiKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	raw, err := llm.GenerateResume(cmd.Context(), client, string(background), string(job))
	if err != nil {
		return fmt.Errorf("failed to generate resume: %w", err)
	}

	outcome := pipeline.Process(raw, pipeline.Options{Verbose: cfg.Verbose, Out: os.Stderr})

	if cfg.Verbose {
		encoded, err := json.MarshalIndent(outcome, "", "  ")
		if err == nil {
			fmt.Fprintln(os.Stderr, string(encoded))
		}
	}

	rendered, err := pipeline.RenderAll(cmd.Context(), outcome.Resume, toFormats(cfg.Formats))
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}

	return writeRendered(rendered, cfg.OutputDir)
}
