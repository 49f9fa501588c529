package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/promptlint/promptlint/internal/engine"
	"github.com/promptlint/promptlint/internal/reporter"
	"github.com/promptlint/promptlint/internal/session"
	"github.com/promptlint/promptlint/internal/ui"
)

var (
	contextDir string
	noContext  bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [prompt]",
	Short: "Classify and score a prompt",
	Long: `Classify a prompt's intent and task category, score it against the
GOLDEN rubric, and report consistency violations and anti-patterns.

The prompt is read from the first argument, or from stdin when no
argument is given.

Examples:
  promptlint analyze "버그 수정해줘: 로그인이 안 돼요"
  cat prompt.txt | promptlint analyze
  promptlint analyze --format json "Fix the login bug" > report.json`,
	Args:         cobra.MaximumNArgs(1),
	RunE:         runAnalyze,
	SilenceUsage: true,
}

func init() {
	analyzeCmd.Flags().StringVar(&contextDir, "context", "", "Project directory to detect session context from")
	analyzeCmd.Flags().BoolVar(&noContext, "no-context", false, "Skip session context detection")
	RootCmd.AddCommand(analyzeCmd)
}

// readPrompt resolves the prompt text from args or stdin
func readPrompt(args []string, stdin io.Reader) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading prompt from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

// detectContext resolves the session context for the current invocation
func detectContext() *session.Context {
	if noContext {
		return nil
	}
	dir := contextDir
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil
		}
		dir = wd
	}
	return session.Detect(dir)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
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
		progress.SetStage(ui.StageAnalyze)
	}

	sessionCtx := detectContext()

	eng := engine.New(nil)

	if progress != nil {
		progress.SetStage(ui.StageScore)
	}

	analysis := eng.Analyze(prompt, sessionCtx)

	if progress != nil {
		progress.Done(nil)
		progress = nil
	}

	if verbose {
		fmt.Fprintf(u.ErrWriter, "language=%s complexity=%s words=%d\n",
			analysis.Classification.Features.Language,
			analysis.Classification.Features.Complexity,
			analysis.Classification.Features.WordCount)
	}

	var rep reporter.Reporter
	switch {
	case u.IsJSON():
		rep = reporter.NewJSONReporter(u.Writer)
	default:
		rep = reporter.NewTerminalReporter(u.Writer, u.Styles)
	}

	return rep.ReportAnalysis(analysis)
}
