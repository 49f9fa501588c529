package reporter

import (
	"fmt"
	"io"
	"strings"

	"github.com/promptlint/promptlint/internal/engine"
	"github.com/promptlint/promptlint/internal/golden"
	"github.com/promptlint/promptlint/internal/llm"
	"github.com/promptlint/promptlint/internal/patterns"
	"github.com/promptlint/promptlint/internal/rewrite"
	"github.com/promptlint/promptlint/internal/ui"
)

// TerminalReporter outputs results to the terminal with colors
type TerminalReporter struct {
	w      io.Writer
	styles *ui.Styles
}

// NewTerminalReporter creates a new terminal reporter
func NewTerminalReporter(w io.Writer, styles *ui.Styles) *TerminalReporter {
	if styles == nil {
		styles = ui.NewStyles(false)
	}
	return &TerminalReporter{w: w, styles: styles}
}

// ReportAnalysis outputs one analysis to the terminal
func (r *TerminalReporter) ReportAnalysis(a *engine.Analysis) error {
	s := r.styles

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render("Classification"))
	fmt.Fprintf(r.w, "  Intent:   %s %s\n",
		string(a.Classification.Intent),
		s.Subheader.Render(fmt.Sprintf("(%.0f%% confidence)", a.Classification.IntentConfidence*100)))
	fmt.Fprintf(r.w, "  Category: %s %s\n",
		string(a.Classification.Category),
		s.Subheader.Render(fmt.Sprintf("(%.0f%% confidence)", a.Classification.CategoryConfidence*100)))
	if len(a.Classification.MatchedKeywords) > 0 {
		fmt.Fprintf(r.w, "  Keywords: %s\n",
			s.Subheader.Render(strings.Join(a.Classification.MatchedKeywords, ", ")))
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render("GOLDEN Score"))
	for _, dim := range golden.Dimensions {
		v := a.Score.Dimension(dim)
		fmt.Fprintf(r.w, "  %-12s %s %s\n",
			s.Dimension.Render(dim),
			s.Score(v).Render(fmt.Sprintf("%.2f", v)),
			scoreBar(v))
	}
	fmt.Fprintf(r.w, "  %-12s %s\n",
		s.Header.Render("total"),
		s.Score(a.Score.Total).Render(fmt.Sprintf("%.2f", a.Score.Total)))

	if a.Density.Adjustment != 0 {
		fmt.Fprintf(r.w, "  %s\n",
			s.Subheader.Render(fmt.Sprintf("density %.2f (adjustment %+.2f)", a.Density.Density, a.Density.Adjustment)))
	}

	if len(a.Violations) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Header.Render("Consistency"))
		for _, v := range a.Violations {
			fmt.Fprintf(r.w, "  %s %s %s\n",
				s.Medium.Render(s.IconMedium),
				v.Rule,
				s.Subheader.Render(fmt.Sprintf("(%s %.2f -> %.2f)", v.Dimension, v.Before, v.After)))
		}
	}

	if len(a.AntiPatterns) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Header.Render("Anti-patterns"))
		for _, ap := range a.AntiPatterns {
			r.printAntiPattern(ap)
		}
	}

	r.printSummary(a)
	return nil
}

func (r *TerminalReporter) printAntiPattern(ap patterns.AntiPattern) {
	s := r.styles

	var style = s.Low
	icon := s.IconLow
	switch ap.Severity {
	case patterns.SeverityHigh:
		style = s.High
		icon = s.IconHigh
	case patterns.SeverityMedium:
		style = s.Medium
		icon = s.IconMedium
	}

	fmt.Fprintf(r.w, "  %s %s", style.Render(icon), ap.Message)
	if ap.Matched != "" {
		fmt.Fprintf(r.w, " %s", s.Subheader.Render(fmt.Sprintf("[%s]", ap.Matched)))
	}
	fmt.Fprintln(r.w)
}

func (r *TerminalReporter) printSummary(a *engine.Analysis) {
	s := r.styles
	summary := ComputeSummary(a)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Separator.Render("─────────────────────────────────────"))

	if len(summary.WeakDimensions) > 0 {
		fmt.Fprintf(r.w, "Weak dimensions: %s\n",
			s.ScoreWeak.Render(strings.Join(summary.WeakDimensions, ", ")))
	} else {
		fmt.Fprintf(r.w, "%s All dimensions above %.1f\n", s.Success.Render(s.IconSuccess), golden.WeakThreshold)
	}
	fmt.Fprintf(r.w, "Rewrite confidence: %s\n",
		s.Score(a.Confidence).Render(fmt.Sprintf("%.0f%%", a.Confidence*100)))
}

// ReportRewrite outputs the result of a rewrite attempt
func (r *TerminalReporter) ReportRewrite(v rewrite.Variant, res llm.ResultWithProvider) error {
	s := r.styles

	if !res.Success {
		fmt.Fprintf(r.w, "%s Rewrite failed: %s\n", s.High.Render(s.IconHigh), res.Error)
		return fmt.Errorf("rewrite failed")
	}

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, s.Header.Render(fmt.Sprintf("Rewritten prompt (%s)", v.Style)))
	fmt.Fprintln(r.w, res.RewrittenPrompt)

	if res.Explanation != "" {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Header.Render("Explanation"))
		fmt.Fprintf(r.w, "  %s\n", res.Explanation)
	}

	if len(res.Improvements) > 0 {
		fmt.Fprintln(r.w)
		fmt.Fprintln(r.w, s.Header.Render("Improvements"))
		for _, imp := range res.Improvements {
			fmt.Fprintf(r.w, "  %s %s\n", s.Success.Render(s.IconSuccess), imp)
		}
	}

	fmt.Fprintln(r.w)
	provider := res.Vendor
	if res.WasFallback {
		provider += " (fallback"
		if res.FallbackReason != "" {
			provider += ": " + res.FallbackReason
		}
		provider += ")"
	}
	fmt.Fprintf(r.w, "%s\n", s.Provider.Render("via "+provider))

	return nil
}

// scoreBar renders a ten-cell bar for a 0-1 score
func scoreBar(v float64) string {
	filled := int(v * 10)
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}
