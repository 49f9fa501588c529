// Package classify scores prompt text against the static pattern tables to
// determine intent and task category. Classification is pure and
// deterministic: the same text and rule set always produce the same result.
package classify

import (
	"strings"

	"github.com/promptlint/promptlint/internal/features"
	"github.com/promptlint/promptlint/internal/patterns"
)

// questionMarkBonus is added directly to the question intent score when the
// text contains a literal question mark.
const questionMarkBonus = 2

// Fallback confidences when no keyword produced a signal.
const (
	fallbackIntentConfidence   = 0.5
	fallbackCategoryConfidence = 0.3
)

// IntentResult is the outcome of intent classification.
type IntentResult struct {
	Intent          patterns.Intent `json:"intent"`
	Confidence      float64         `json:"confidence"`
	MatchedKeywords []string        `json:"matchedKeywords"`
}

// CategoryResult is the outcome of task category classification.
type CategoryResult struct {
	Category        patterns.Category `json:"category"`
	Confidence      float64           `json:"confidence"`
	MatchedKeywords []string          `json:"matchedKeywords"`
}

// Result bundles both classifications with the features they used.
// Produced fresh per call and never mutated afterwards.
type Result struct {
	Intent             patterns.Intent         `json:"intent"`
	IntentConfidence   float64                 `json:"intentConfidence"`
	Category           patterns.Category       `json:"category"`
	CategoryConfidence float64                 `json:"categoryConfidence"`
	MatchedKeywords    []string                `json:"matchedKeywords"`
	Features           features.PromptFeatures `json:"features"`
}

// Classifier scores text against an immutable rule set.
type Classifier struct {
	rules *patterns.RuleSet
}

// New creates a classifier over the given rule set. Tests pass reduced rule
// sets; production callers pass patterns.Default().
func New(rules *patterns.RuleSet) *Classifier {
	return &Classifier{rules: rules}
}

// Classify runs intent and category classification over the same text.
func (c *Classifier) Classify(text string) Result {
	f := features.Extract(text)
	intent := c.classifyIntent(text, f)
	category := c.ClassifyCategory(text)

	merged := make([]string, 0, len(intent.MatchedKeywords)+len(category.MatchedKeywords))
	merged = append(merged, intent.MatchedKeywords...)
	merged = append(merged, category.MatchedKeywords...)

	return Result{
		Intent:             intent.Intent,
		IntentConfidence:   intent.Confidence,
		Category:           category.Category,
		CategoryConfidence: category.Confidence,
		MatchedKeywords:    merged,
		Features:           f,
	}
}

// ClassifyIntent determines the communicative purpose of the text.
func (c *Classifier) ClassifyIntent(text string) IntentResult {
	return c.classifyIntent(text, features.Extract(text))
}

func (c *Classifier) classifyIntent(text string, f features.PromptFeatures) IntentResult {
	if strings.TrimSpace(text) == "" {
		return IntentResult{Intent: patterns.IntentUnknown, Confidence: fallbackIntentConfidence}
	}

	lower := strings.ToLower(text)

	scores := make(map[patterns.Intent]float64, len(patterns.Intents))
	var matched []string

	for _, intent := range patterns.Intents {
		table := c.rules.IntentKeywords[intent]
		if table == nil {
			continue
		}
		hits := table.Match(lower)
		scores[intent] += float64(len(hits))
		matched = append(matched, hits...)
	}

	if f.HasQuestion {
		scores[patterns.IntentQuestion] += questionMarkBonus
	}

	// Negation markers weaken the intents they target, floored at zero.
	for _, neg := range c.rules.Negation {
		if len(neg.Markers.Match(lower)) == 0 {
			continue
		}
		for _, intent := range neg.Intents {
			scores[intent] -= neg.Penalty
			if scores[intent] < 0 {
				scores[intent] = 0
			}
		}
	}

	var total float64
	for _, s := range scores {
		total += s
	}

	if len(matched) == 0 || total <= 0 {
		return IntentResult{
			Intent:     inferIntentFromFeatures(f),
			Confidence: fallbackIntentConfidence,
		}
	}

	best := argmaxIntent(scores, f.HasQuestion)
	confidence := scores[best]/total + 0.2
	if confidence > 1.0 {
		confidence = 1.0
	}

	return IntentResult{Intent: best, Confidence: confidence, MatchedKeywords: matched}
}

// argmaxIntent picks the highest-scoring intent. On an exact tie between
// command and question, command wins unless the text contains a question mark.
func argmaxIntent(scores map[patterns.Intent]float64, hasQuestion bool) patterns.Intent {
	best := patterns.Intents[0]
	for _, intent := range patterns.Intents[1:] {
		if scores[intent] > scores[best] {
			best = intent
		}
	}

	if scores[patterns.IntentCommand] == scores[patterns.IntentQuestion] && scores[best] == scores[patterns.IntentCommand] {
		if hasQuestion {
			return patterns.IntentQuestion
		}
		return patterns.IntentCommand
	}

	return best
}

// inferIntentFromFeatures is the last-resort intent inference. Unlike
// category, intent never resolves to unknown for non-empty text.
func inferIntentFromFeatures(f features.PromptFeatures) patterns.Intent {
	switch {
	case f.HasQuestion:
		return patterns.IntentQuestion
	case f.Complexity == features.ComplexityComplex:
		return patterns.IntentInstruction
	default:
		return patterns.IntentCommand
	}
}

// ClassifyCategory determines what kind of work the text requests. With no
// keyword signal at all it resolves to unknown rather than a default.
func (c *Classifier) ClassifyCategory(text string) CategoryResult {
	lower := strings.ToLower(text)

	scores := make(map[patterns.Category]float64, len(patterns.Categories))
	matchedSet := make(map[string]bool)
	var matched []string

	for _, cat := range patterns.Categories {
		table := c.rules.CategoryKeywords[cat]
		if table == nil {
			continue
		}
		hits := table.Match(lower)
		scores[cat] += float64(len(hits))
		for _, kw := range hits {
			if !matchedSet[kw] {
				matchedSet[kw] = true
				matched = append(matched, kw)
			}
		}
	}

	if len(matched) == 0 {
		return CategoryResult{Category: patterns.CategoryUnknown, Confidence: fallbackCategoryConfidence}
	}

	c.applyDisambiguation(lower, matchedSet, scores)
	c.applyCooccurrence(lower, scores)

	best := patterns.Categories[0]
	var total float64
	for _, cat := range patterns.Categories {
		total += scores[cat]
		if scores[cat] > scores[best] {
			best = cat
		}
	}

	if total <= 0 {
		return CategoryResult{Category: patterns.CategoryUnknown, Confidence: fallbackCategoryConfidence}
	}

	confidence := scores[best]/total + 0.2
	if confidence > 1.0 {
		confidence = 1.0
	}

	return CategoryResult{Category: best, Confidence: confidence, MatchedKeywords: matched}
}

// applyDisambiguation settles ambiguous keywords. A rule only engages when
// its keyword matched and more than one of its conflicting categories already
// scored; the first resolution whose cues appear takes the bonus and ends the
// rule's evaluation.
func (c *Classifier) applyDisambiguation(lower string, matchedSet map[string]bool, scores map[patterns.Category]float64) {
	for _, rule := range c.rules.Disambiguation {
		if !matchedSet[rule.Keyword] {
			continue
		}

		nonzero := 0
		for _, cat := range rule.Conflicting {
			if scores[cat] > 0 {
				nonzero++
			}
		}
		if nonzero < 2 {
			continue
		}

		for _, res := range rule.Resolutions {
			if len(res.Cues.Match(lower)) > 0 {
				scores[res.Category] += res.Bonus
				break
			}
		}
	}
}

// applyCooccurrence adds every bonus whose keyword tables all matched.
// Rows fire independently of each other and of disambiguation.
func (c *Classifier) applyCooccurrence(lower string, scores map[patterns.Category]float64) {
	for _, rule := range c.rules.Cooccurrence {
		all := true
		for i := range rule.Keywords {
			if len(rule.Keywords[i].Match(lower)) == 0 {
				all = false
				break
			}
		}
		if all {
			scores[rule.Category] += rule.Bonus
		}
	}
}
