// Package engine bundles the full analysis pipeline behind one call:
// feature extraction, intent/category classification, GOLDEN scoring,
// consistency validation, quality-density correction, anti-pattern
// detection, and confidence calibration. The pipeline is synchronous, pure,
// and safe for concurrent use; only the rewrite path (internal/llm) does I/O.
package engine

import (
	"github.com/promptlint/promptlint/internal/calibrate"
	"github.com/promptlint/promptlint/internal/classify"
	"github.com/promptlint/promptlint/internal/golden"
	"github.com/promptlint/promptlint/internal/patterns"
	"github.com/promptlint/promptlint/internal/session"
)

// Analysis is the complete record for one prompt, handed to the UI and
// history collaborators.
type Analysis struct {
	Text           string                 `json:"text"`
	Classification classify.Result        `json:"classification"`
	RawScore       golden.Score           `json:"rawScore"`
	Score          golden.Score           `json:"score"`
	Violations     []golden.Violation     `json:"violations,omitempty"`
	Density        golden.DensityResult   `json:"density"`
	AntiPatterns   []patterns.AntiPattern `json:"antiPatterns,omitempty"`
	Confidence     float64                `json:"confidence"`
}

// Engine runs analyses over one immutable rule set.
type Engine struct {
	rules      *patterns.RuleSet
	classifier *classify.Classifier
}

// New creates an engine. A nil rule set uses the production tables.
func New(rules *patterns.RuleSet) *Engine {
	if rules == nil {
		rules = patterns.Default()
	}
	return &Engine{
		rules:      rules,
		classifier: classify.New(rules),
	}
}

// Rules exposes the engine's rule set for collaborators (variant generation,
// density reporting). Read-only.
func (e *Engine) Rules() *patterns.RuleSet {
	return e.rules
}

// Analyze runs the full pipeline over one prompt. sessionCtx may be nil.
func (e *Engine) Analyze(text string, sessionCtx *session.Context) *Analysis {
	classification := e.classifier.Classify(text)

	raw := golden.Evaluate(text, classification.Features, e.rules)
	density := golden.MeasureDensity(text, e.rules)
	corrected := golden.ApplyDensity(raw, density)
	adjusted, violations := golden.ValidateConsistency(corrected)

	antiPatterns := e.rules.DetectAntiPatterns(text)

	confidence := calibrate.Confidence(calibrate.Factors{
		ClassificationConfidence: classification.IntentConfidence,
		DimensionsImproved:       calibrate.DimensionsImproved(adjusted),
		AntiPatternFree:          calibrate.AntiPatternFree(antiPatterns),
		TemplateMatch:            calibrate.TemplateFit(classification.Category),
		ContextRichness:          calibrate.ContextRichness(sessionCtx),
	})

	return &Analysis{
		Text:           text,
		Classification: classification,
		RawScore:       raw,
		Score:          adjusted,
		Violations:     violations,
		Density:        density,
		AntiPatterns:   antiPatterns,
		Confidence:     confidence,
	}
}
