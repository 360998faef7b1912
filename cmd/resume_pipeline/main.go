// Package main provides the resume pipeline CLI: parse raw model responses,
// render block sequences, and run the full generate-parse-render loop.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_pipeline",
	Short: "Resume generation pipeline",
	Long:  "Turns raw generative-model responses (structured candidates or free-form prose) into validated resumes and per-format render block sequences.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
