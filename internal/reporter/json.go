package reporter

import (
	"encoding/json"
	"io"

	"github.com/promptlint/promptlint/internal/engine"
	"github.com/promptlint/promptlint/internal/llm"
	"github.com/promptlint/promptlint/internal/rewrite"
)

// JSONReporter outputs results as JSON
type JSONReporter struct {
	w io.Writer
}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter(w io.Writer) *JSONReporter {
	return &JSONReporter{w: w}
}

// analysisOutput represents the analysis JSON output format
type analysisOutput struct {
	Analysis *engine.Analysis `json:"analysis"`
	Weak     []string         `json:"weakDimensions"`
}

// rewriteOutput represents the rewrite JSON output format
type rewriteOutput struct {
	Style            string                 `json:"style"`
	TargetDimensions []string               `json:"targetDimensions"`
	Confidence       float64                `json:"confidence"`
	Result           llm.ResultWithProvider `json:"result"`
}

// ReportAnalysis outputs an analysis as JSON
func (r *JSONReporter) ReportAnalysis(a *engine.Analysis) error {
	output := analysisOutput{
		Analysis: a,
		Weak:     ComputeSummary(a).WeakDimensions,
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// ReportRewrite outputs a rewrite result as JSON
func (r *JSONReporter) ReportRewrite(v rewrite.Variant, res llm.ResultWithProvider) error {
	output := rewriteOutput{
		Style:            v.Style,
		TargetDimensions: v.TargetDimensions,
		Confidence:       v.Confidence,
		Result:           res,
	}

	encoder := json.NewEncoder(r.w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
