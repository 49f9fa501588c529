package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/promptlint/promptlint/internal/config"
	"github.com/promptlint/promptlint/internal/engine"
	"github.com/promptlint/promptlint/internal/llm"
	"github.com/promptlint/promptlint/internal/reporter"
	"github.com/promptlint/promptlint/internal/rewrite"
	"github.com/promptlint/promptlint/internal/ui"

	// Register the provider adapters.
	_ "github.com/promptlint/promptlint/internal/llm/providers"
)

var (
	style      string
	maxRetries int
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [prompt]",
	Short: "Rewrite a prompt through a configured AI provider",
	Long: `Analyze a prompt, build an improvement request targeting its weak
GOLDEN dimensions, and send it to your highest-priority enabled provider.
When a provider fails, the next one by priority is tried until the
attempt budget runs out.

Examples:
  promptlint rewrite "make it better"
  promptlint rewrite --style comprehensive "이 코드 정리해줘"
  cat prompt.txt | promptlint rewrite --format json`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runRewrite,
	SilenceUsage: true,
}

func init() {
	rewriteCmd.Flags().StringVar(&style, "style", rewrite.StyleBalanced,
		"Rewrite style (conservative, balanced, comprehensive)")
	rewriteCmd.Flags().IntVar(&maxRetries, "max-retries", llm.DefaultMaxRetries,
		"Total provider attempts before giving up")
	rewriteCmd.Flags().StringVar(&contextDir, "context", "", "Project directory to detect session context from")
	rewriteCmd.Flags().BoolVar(&noContext, "no-context", false, "Skip session context detection")
	RootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	prompt, err := readPrompt(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	u := GetUI()

	progress := u.StartProgress()
	defer func() {
		if progress != nil {
			progress.Done(nil)
		}
	}()

	if progress != nil {
		progress.SetStage(ui.StageLoadConfig)
	}

	cfg, err := config.LoadDefault(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if progress != nil {
		progress.SetStage(ui.StageAnalyze)
	}

	sessionCtx := detectContext()
	eng := engine.New(nil)
	analysis := eng.Analyze(prompt, sessionCtx)

	variant := rewrite.ForStyle(rewrite.Input{
		Prompt:         prompt,
		Classification: analysis.Classification,
		Score:          analysis.Score,
		AntiPatterns:   analysis.AntiPatterns,
		Context:        sessionCtx,
	}, style)

	if progress != nil {
		progress.SetStage(ui.StageRewrite)
		progress.SetAttemptCount(maxRetries)
	}

	logger := slog.New(slog.DiscardHandler)
	if verbose {
		logger = slog.New(slog.NewTextHandler(u.ErrWriter, nil))
	}

	manager := llm.NewManager(
		llm.WithLogger(logger),
		llm.WithAttemptHooks(
			func(vendor string, attempt int) { progress.ProviderStart(vendor) },
			func(vendor string, success bool) { progress.AttemptDone() },
		),
	)
	result := manager.RewriteWithFallback(cmd.Context(), variant.Request, cfg.Providers, maxRetries)

	if progress != nil {
		progress.Done(nil)
		progress = nil
	}

	var rep reporter.Reporter
	switch {
	case u.IsJSON():
		rep = reporter.NewJSONReporter(u.Writer)
	default:
		rep = reporter.NewTerminalReporter(u.Writer, u.Styles)
	}

	return rep.ReportRewrite(variant, result)
}
