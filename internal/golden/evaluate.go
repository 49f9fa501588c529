package golden

import (
	"strings"

	"github.com/promptlint/promptlint/internal/features"
	"github.com/promptlint/promptlint/internal/patterns"
)

// Per-dimension scoring constants for the heuristic evaluator.
const (
	dimensionBase    = 0.2  // every dimension starts here for non-empty text
	indicatorWeight  = 0.25 // per indicator-family hit
	dimensionCeiling = 1.0
)

// Evaluate produces raw per-dimension GOLDEN scores for a prompt using the
// indicator keyword families plus a few structural signals. It is the local
// stand-in for an upstream scorer: deterministic, total, and cheap. Callers
// normally pass the result through ValidateConsistency and ApplyDensity.
func Evaluate(text string, f features.PromptFeatures, rules *patterns.RuleSet) Score {
	if strings.TrimSpace(text) == "" {
		return New(0, 0, 0, 0, 0, 0)
	}

	lower := strings.ToLower(text)

	dims := make(map[string]float64, len(Dimensions))
	for _, dim := range Dimensions {
		hits := 0
		if table := rules.GoldenIndicators[dim]; table != nil {
			hits = len(table.Match(lower))
		}
		dims[dim] = dimensionBase + indicatorWeight*float64(hits)
	}

	// Structural signals beyond keywords: included code or files count as
	// supplied data; a question mark implies the asker expects an answer
	// shape; explicit structure suggests the output is constrained.
	if f.HasCodeBlock || f.HasFilePath || f.HasURL {
		dims[DimData] += 0.2
	}
	if f.HasQuestion {
		dims[DimOutput] += 0.1
	}
	if f.Complexity == features.ComplexityComplex {
		dims[DimLimits] += 0.05
		dims[DimGoal] -= 0.05
	}

	for dim, v := range dims {
		if v > dimensionCeiling {
			dims[dim] = dimensionCeiling
		}
	}

	return New(dims[DimGoal], dims[DimOutput], dims[DimLimits], dims[DimData], dims[DimEvaluation], dims[DimNext])
}
