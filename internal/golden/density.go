package golden

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/promptlint/promptlint/internal/patterns"
)

// Structural marker weights for quality density. Code fences carry the most
// signal; bare list items the least.
const (
	weightCodeBlock = 4
	weightPairedTag = 3
	weightHeader    = 2
	weightListItem  = 1
)

// Verbosity thresholds. The 200/400 word breakpoints are calibrated
// constants, not derived values.
const (
	densityBonusRate    = 0.15
	densityBonusCap     = 0.10
	verbosityMildWords  = 200
	verbosityMildMax    = 0.3
	verbosityMildPen    = 0.05
	verbosityHarshWords = 400
	verbosityHarshMax   = 0.4
	verbosityHarshPen   = 0.10
)

// pairedTagPattern matches an HTML-like open tag with a matching close tag.
var pairedTagPattern = regexp.MustCompile(`<([a-zA-Z][a-zA-Z0-9_-]*)[^>]*>[\s\S]*?</([a-zA-Z][a-zA-Z0-9_-]*)>`)

// DensityResult reports the quality-density measurement and the score
// adjustment it implies.
type DensityResult struct {
	Density    float64 `json:"density"`
	Bonus      float64 `json:"bonus"`
	Penalty    float64 `json:"penalty"` // <= 0
	Adjustment float64 `json:"adjustment"`
}

// MeasureDensity counts weighted structural markers and GOLDEN-indicator
// keyword hits, normalized per 10 words and capped at 1.0. The resulting
// adjustment counteracts naive length-based scoring bias: dense structure
// earns a small bonus, long low-density text a penalty. The harsher
// verbosity penalty replaces the milder one; the combined adjustment is
// floored at zero overall.
func MeasureDensity(textContent string, rules *patterns.RuleSet) DensityResult {
	wordCount := len(strings.Fields(textContent))
	if wordCount == 0 {
		return DensityResult{}
	}

	weighted := countStructuralMarkers(textContent)

	lower := strings.ToLower(textContent)
	for _, dim := range Dimensions {
		if table := rules.GoldenIndicators[dim]; table != nil {
			weighted += len(table.Match(lower))
		}
	}

	density := float64(weighted) / (float64(wordCount) / 10)
	if density > 1.0 {
		density = 1.0
	}

	bonus := density * densityBonusRate
	if bonus > densityBonusCap {
		bonus = densityBonusCap
	}

	var penalty float64
	switch {
	case wordCount > verbosityHarshWords && density < verbosityHarshMax:
		penalty = -verbosityHarshPen
	case wordCount > verbosityMildWords && density < verbosityMildMax:
		penalty = -verbosityMildPen
	}

	adjustment := bonus + penalty
	if adjustment < 0 {
		adjustment = 0
	}

	return DensityResult{
		Density:    density,
		Bonus:      bonus,
		Penalty:    penalty,
		Adjustment: adjustment,
	}
}

// countStructuralMarkers walks the markdown AST for fenced code blocks,
// headings, and list items, and scans raw text for paired markup tags.
func countStructuralMarkers(content string) int {
	md := goldmark.New()
	source := []byte(content)
	doc := md.Parser().Parse(text.NewReader(source))

	weighted := 0
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock:
			weighted += weightCodeBlock
		case *ast.Heading:
			weighted += weightHeader
		case *ast.ListItem:
			weighted += weightListItem
		}
		return ast.WalkContinue, nil
	})

	for _, m := range pairedTagPattern.FindAllStringSubmatch(content, -1) {
		if strings.EqualFold(m[1], m[2]) {
			weighted += weightPairedTag
		}
	}

	return weighted
}

// ApplyDensity adds the density adjustment to every dimension of the score,
// clamped to [0,1] per dimension, and recomputes Total. A zero adjustment
// returns the score unchanged.
func ApplyDensity(s Score, d DensityResult) Score {
	if d.Adjustment == 0 {
		return s
	}
	return New(
		s.Goal+d.Adjustment,
		s.Output+d.Adjustment,
		s.Limits+d.Adjustment,
		s.Data+d.Adjustment,
		s.Evaluation+d.Adjustment,
		s.Next+d.Adjustment,
	)
}
