// Package patterns holds the static keyword tables driving intent and task
// category classification. Tables are immutable after construction and carry
// no hidden state: tests substitute smaller RuleSets via classify.New.
//
// Korean keywords are matched by substring (the language is agglutinative, so
// affixes make word boundaries unreliable), English keywords by word-boundary
// regex (to avoid matching a keyword inside an unrelated longer word). This
// asymmetry is deliberate and load-bearing.
package patterns

import (
	"regexp"
	"strings"
)

// Intent is the communicative purpose of a single prompt
type Intent string

const (
	IntentCommand       Intent = "command"
	IntentQuestion      Intent = "question"
	IntentInstruction   Intent = "instruction"
	IntentFeedback      Intent = "feedback"
	IntentContext       Intent = "context"
	IntentClarification Intent = "clarification"
	IntentUnknown       Intent = "unknown"
)

// Category is the kind of work a prompt requests
type Category string

const (
	CategoryBugFix        Category = "bug-fix"
	CategoryFeature       Category = "feature"
	CategoryRefactor      Category = "refactor"
	CategoryReview        Category = "review"
	CategoryTesting       Category = "testing"
	CategoryDocumentation Category = "documentation"
	CategoryExplanation   Category = "explanation"
	CategoryTranslation   Category = "translation"
	CategorySummarization Category = "summarization"
	CategoryAnalysis      Category = "analysis"
	CategoryPlanning      Category = "planning"
	CategoryWriting       Category = "writing"
	CategoryUnknown       Category = "unknown"
)

// Categories lists the twelve concrete task categories (excluding unknown).
var Categories = []Category{
	CategoryBugFix, CategoryFeature, CategoryRefactor, CategoryReview,
	CategoryTesting, CategoryDocumentation, CategoryExplanation,
	CategoryTranslation, CategorySummarization, CategoryAnalysis,
	CategoryPlanning, CategoryWriting,
}

// Intents lists the six concrete intents (excluding unknown).
var Intents = []Intent{
	IntentCommand, IntentQuestion, IntentInstruction,
	IntentFeedback, IntentContext, IntentClarification,
}

// KeywordTable holds bilingual keywords for one label. Korean entries are
// matched by substring, English entries by the pre-compiled boundary regexes.
type KeywordTable struct {
	Korean  []string
	English []string

	englishRe []*regexp.Regexp
}

// Match returns every keyword found in text, using the per-script matching
// convention. text must already be lowercased by the caller.
func (t *KeywordTable) Match(text string) []string {
	var matched []string
	for _, kw := range t.Korean {
		if containsSubstring(text, kw) {
			matched = append(matched, kw)
		}
	}
	for i, re := range t.englishRe {
		if re.MatchString(text) {
			matched = append(matched, t.English[i])
		}
	}
	return matched
}

// DisambiguationRule resolves an ambiguous keyword that scores several
// conflicting categories. When the keyword matched and more than one of the
// conflicting categories already has a nonzero score, the first resolution
// whose cue is present wins its bonus; later resolutions are not evaluated.
type DisambiguationRule struct {
	Keyword     string
	Conflicting []Category
	Resolutions []Resolution
}

// Resolution maps a contextual cue to the category it settles the keyword on.
type Resolution struct {
	Cues     KeywordTable
	Category Category
	Bonus    float64
}

// CooccurrenceRule adds a bonus to a category when all of its keywords appear
// in the text. All rows whose keywords are present fire independently.
type CooccurrenceRule struct {
	Keywords []KeywordTable // every table must match at least one keyword
	Category Category
	Bonus    float64
}

// NegationRule subtracts a penalty from the scores of the affected intents
// when the marker appears. Scores are floored at zero afterwards.
type NegationRule struct {
	Markers KeywordTable
	Intents []Intent
	Penalty float64 // 0.3 to 0.5 depending on pattern strength
}

// RuleSet bundles every static table the classifier and scorer consume.
// A RuleSet is read-only after construction; no locking is needed.
type RuleSet struct {
	IntentKeywords   map[Intent]*KeywordTable
	CategoryKeywords map[Category]*KeywordTable
	Disambiguation   []DisambiguationRule
	Cooccurrence     []CooccurrenceRule
	Negation         []NegationRule

	// GoldenIndicators holds one keyword family per GOLDEN dimension,
	// consumed by the quality-density correction and the raw scorer.
	GoldenIndicators map[string]*KeywordTable

	// AntiPatterns are structural/content flaws fed into calibration.
	AntiPatterns []AntiPatternRule
}

func containsSubstring(text, kw string) bool {
	return kw != "" && strings.Contains(text, kw)
}

// compile pre-builds the word-boundary regexes for a table's English keywords.
func (t *KeywordTable) compile() {
	t.englishRe = make([]*regexp.Regexp, len(t.English))
	for i, kw := range t.English {
		t.englishRe[i] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(kw) + `\b`)
	}
}

// newTable builds a compiled bilingual keyword table.
func newTable(korean, english []string) KeywordTable {
	t := KeywordTable{Korean: korean, English: english}
	t.compile()
	return t
}

// newTablePtr is newTable returning a pointer, for map values.
func newTablePtr(korean, english []string) *KeywordTable {
	t := newTable(korean, english)
	return &t
}
