package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/promptlint/promptlint/internal/ui"
)

var (
	// Global flags
	verbose    bool
	format     string
	configPath string

	globalUI *ui.UI
)

// RootCmd is the base command for the promptlint CLI
var RootCmd = &cobra.Command{
	Use:   "promptlint",
	Short: "Analyze and rewrite LLM prompts",
	Long: `promptlint classifies a prompt's intent and task category, scores it
against the six-dimension GOLDEN rubric (Goal, Output, Limits, Data,
Evaluation, Next), and detects structural anti-patterns.

When a prompt scores poorly, promptlint can rewrite it through a configured
AI provider, falling back through your provider list by priority.`,
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

// GetUI returns the process-wide UI, creating it from the format flag on
// first use
func GetUI() *ui.UI {
	if globalUI == nil {
		globalUI = ui.New(os.Stdout, os.Stderr, format)
	}
	return globalUI
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	RootCmd.PersistentFlags().StringVarP(&format, "format", "f", "terminal", "Output format (terminal, json)")
	RootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file")
}
