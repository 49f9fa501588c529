// Package calibrate combines independent quality signals into one calibrated
// confidence number for a candidate rewrite. The output is deliberately
// clamped away from both extremes: a rule-based estimate must not claim
// near-certainty, nor near-zero.
package calibrate

import (
	"strings"

	"github.com/promptlint/promptlint/internal/golden"
	"github.com/promptlint/promptlint/internal/patterns"
	"github.com/promptlint/promptlint/internal/session"
)

// Calibration weights and bounds.
const (
	weightClassification = 0.30
	weightDimensions     = 0.25
	weightAntiPattern    = 0.15
	weightTemplate       = 0.15
	weightContext        = 0.15

	ConfidenceFloor   = 0.30
	ConfidenceCeiling = 0.95
)

// Anti-pattern severity penalties applied to the anti-pattern-free factor.
const (
	penaltyHigh   = 0.30
	penaltyMedium = 0.15
	penaltyLow    = 0.05
)

// improvableBelow marks a dimension as expected to improve under a rewrite.
const improvableBelow = 0.5

// Factors holds the five independent calibration inputs. All values are in
// [0,1] except DimensionsImproved, which counts dimensions (0-6).
type Factors struct {
	ClassificationConfidence float64 `json:"classificationConfidence"`
	DimensionsImproved       int     `json:"dimensionsImproved"`
	AntiPatternFree          float64 `json:"antiPatternFree"`
	TemplateMatch            float64 `json:"templateMatch"`
	ContextRichness          float64 `json:"contextRichness"`
}

// Confidence folds the factors into a single calibrated value in
// [ConfidenceFloor, ConfidenceCeiling].
func Confidence(f Factors) float64 {
	raw := f.ClassificationConfidence*weightClassification +
		(float64(f.DimensionsImproved)/6)*weightDimensions +
		f.AntiPatternFree*weightAntiPattern +
		f.TemplateMatch*weightTemplate +
		f.ContextRichness*weightContext

	if raw < ConfidenceFloor {
		return ConfidenceFloor
	}
	if raw > ConfidenceCeiling {
		return ConfidenceCeiling
	}
	return raw
}

// DimensionsImproved counts the GOLDEN dimensions currently below the
// improvable threshold; each is assumed improvable by a rewrite.
func DimensionsImproved(s golden.Score) int {
	return len(s.WeakDimensions(improvableBelow))
}

// AntiPatternFree converts detected anti-patterns into a [0,1] factor:
// 1.0 with no findings, otherwise 1 minus severity-weighted penalties per
// occurrence, floored at zero.
func AntiPatternFree(found []patterns.AntiPattern) float64 {
	score := 1.0
	for _, ap := range found {
		switch ap.Severity {
		case patterns.SeverityHigh:
			score -= penaltyHigh
		case patterns.SeverityMedium:
			score -= penaltyMedium
		case patterns.SeverityLow:
			score -= penaltyLow
		}
	}
	if score < 0 {
		return 0
	}
	return score
}

// templateFit scores how well a category maps onto a rewrite template.
// Categories with well-understood shapes rewrite more predictably.
var templateFit = map[patterns.Category]float64{
	patterns.CategoryBugFix:        0.9,
	patterns.CategoryFeature:       0.8,
	patterns.CategoryRefactor:      0.8,
	patterns.CategoryTesting:       0.8,
	patterns.CategoryDocumentation: 0.7,
	patterns.CategoryReview:        0.7,
	patterns.CategoryExplanation:   0.6,
	patterns.CategoryTranslation:   0.9,
	patterns.CategorySummarization: 0.7,
	patterns.CategoryAnalysis:      0.6,
	patterns.CategoryPlanning:      0.5,
	patterns.CategoryWriting:       0.5,
}

// TemplateFit returns the template-fit factor for a task category.
// Unknown categories get a low but nonzero fit.
func TemplateFit(cat patterns.Category) float64 {
	if fit, ok := templateFit[cat]; ok {
		return fit
	}
	return 0.3
}

// ContextRichness measures how much session context is available: 0.2 with
// none, otherwise a 0.3 base plus up to 0.7 across five independent checks,
// capped at 1.0.
func ContextRichness(ctx *session.Context) float64 {
	if ctx.IsEmpty() {
		return 0.2
	}

	richness := 0.3
	if len(ctx.TechStack) > 0 {
		richness += 0.14
	}
	if len(strings.Fields(ctx.CurrentTask)) >= 3 {
		richness += 0.14
	}
	if len(ctx.RecentFiles) > 0 {
		richness += 0.14
	}
	if ctx.LastExchange != "" {
		richness += 0.14
	}
	if ctx.GitBranch != "" {
		richness += 0.14
	}
	if richness > 1.0 {
		richness = 1.0
	}
	return richness
}
