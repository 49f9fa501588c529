package reporter

import (
	"github.com/promptlint/promptlint/internal/engine"
	"github.com/promptlint/promptlint/internal/golden"
	"github.com/promptlint/promptlint/internal/llm"
	"github.com/promptlint/promptlint/internal/patterns"
	"github.com/promptlint/promptlint/internal/rewrite"
)

// Reporter defines the interface for outputting analysis and rewrite results
type Reporter interface {
	// ReportAnalysis outputs the result of analyzing one prompt
	ReportAnalysis(a *engine.Analysis) error

	// ReportRewrite outputs the result of a rewrite attempt
	ReportRewrite(v rewrite.Variant, res llm.ResultWithProvider) error
}

// Summary holds summary statistics for an analysis
type Summary struct {
	Total          float64
	WeakDimensions []string
	Violations     int
	HighFlaws      int
	MediumFlaws    int
	LowFlaws       int
}

// ComputeSummary computes summary statistics from an analysis
func ComputeSummary(a *engine.Analysis) Summary {
	s := Summary{
		Total:          a.Score.Total,
		WeakDimensions: a.Score.WeakDimensions(golden.WeakThreshold),
		Violations:     len(a.Violations),
	}

	for _, ap := range a.AntiPatterns {
		switch ap.Severity {
		case patterns.SeverityHigh:
			s.HighFlaws++
		case patterns.SeverityMedium:
			s.MediumFlaws++
		case patterns.SeverityLow:
			s.LowFlaws++
		}
	}

	return s
}
