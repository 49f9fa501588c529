// Package rewrite builds rewrite candidates from an evaluation: which
// dimensions to improve, at which ambition level, with what calibrated
// confidence. Generation is template-based and deterministic; the actual
// rewriting happens at a provider.
package rewrite

import (
	"github.com/promptlint/promptlint/internal/calibrate"
	"github.com/promptlint/promptlint/internal/classify"
	"github.com/promptlint/promptlint/internal/golden"
	"github.com/promptlint/promptlint/internal/llm"
	"github.com/promptlint/promptlint/internal/patterns"
	"github.com/promptlint/promptlint/internal/session"
)

// Rewrite ambition levels.
const (
	StyleConservative  = "conservative"
	StyleBalanced      = "balanced"
	StyleComprehensive = "comprehensive"
)

// Styles lists the supported levels in ascending ambition.
var Styles = []string{StyleConservative, StyleBalanced, StyleComprehensive}

// dimensionDirectives maps each GOLDEN dimension to the improvement
// instruction sent to the provider when that dimension is weak.
var dimensionDirectives = map[string]string{
	golden.DimGoal:       "State the goal explicitly: what outcome should exist when the work is done",
	golden.DimOutput:     "Specify the expected output format and shape (code, list, table, prose)",
	golden.DimLimits:     "Name the constraints: scope, exclusions, and anything that must not change",
	golden.DimData:       "Include the relevant inputs: code, examples, error messages, or references",
	golden.DimEvaluation: "Add verifiable success criteria: how to tell the result is correct",
	golden.DimNext:       "Clarify follow-up expectations: what happens after this step",
}

// Variant is one rewrite candidate: the request to send and the calibrated
// confidence that a rewrite at this level will improve the prompt.
type Variant struct {
	Style            string             `json:"style"`
	TargetDimensions []string           `json:"targetDimensions"`
	Confidence       float64            `json:"confidence"`
	Request          llm.RewriteRequest `json:"-"`
}

// Input bundles everything variant generation consumes.
type Input struct {
	Prompt         string
	Classification classify.Result
	Score          golden.Score
	AntiPatterns   []patterns.AntiPattern
	Context        *session.Context
}

// Generate builds the three standard candidates. Conservative touches only
// the weakest dimensions, balanced everything below the improvable
// threshold, comprehensive all six.
func Generate(in Input) []Variant {
	variants := make([]Variant, 0, len(Styles))
	for _, style := range Styles {
		variants = append(variants, build(in, style))
	}
	return variants
}

// ForStyle builds a single candidate at the given ambition level.
// Unrecognized styles fall back to balanced.
func ForStyle(in Input, style string) Variant {
	switch style {
	case StyleConservative, StyleBalanced, StyleComprehensive:
	default:
		style = StyleBalanced
	}
	return build(in, style)
}

func build(in Input, style string) Variant {
	targets := targetDimensions(in.Score, style)

	instructions := make([]string, 0, len(targets)+1)
	for _, dim := range targets {
		instructions = append(instructions, dimensionDirectives[dim])
	}
	if style == StyleComprehensive {
		instructions = append(instructions, "Restructure the prompt with headings or lists where it helps readability")
	}

	confidence := calibrate.Confidence(calibrate.Factors{
		ClassificationConfidence: in.Classification.IntentConfidence,
		DimensionsImproved:       calibrate.DimensionsImproved(in.Score),
		AntiPatternFree:          calibrate.AntiPatternFree(in.AntiPatterns),
		TemplateMatch:            calibrate.TemplateFit(in.Classification.Category),
		ContextRichness:          calibrate.ContextRichness(in.Context),
	})

	return Variant{
		Style:            style,
		TargetDimensions: targets,
		Confidence:       confidence,
		Request: llm.RewriteRequest{
			Prompt:       in.Prompt,
			Style:        style,
			Instructions: instructions,
			Context:      in.Context,
		},
	}
}

// targetDimensions picks which dimensions a style addresses.
func targetDimensions(s golden.Score, style string) []string {
	switch style {
	case StyleConservative:
		weak := s.WeakDimensions(0.3)
		if len(weak) == 0 {
			weak = s.WeakDimensions(0.5)
		}
		if len(weak) > 2 {
			weak = weak[:2]
		}
		return weak
	case StyleComprehensive:
		return append([]string(nil), golden.Dimensions...)
	default:
		return s.WeakDimensions(0.5)
	}
}
