package features

import (
	"strings"
	"unicode"
)

// Language is the dominant script hint for a prompt
type Language string

const (
	LanguageKorean  Language = "ko"
	LanguageEnglish Language = "en"
	LanguageMixed   Language = "mixed"
)

// Complexity buckets a prompt by structural effort required to answer it
type Complexity string

const (
	ComplexitySimple   Complexity = "simple"
	ComplexityModerate Complexity = "moderate"
	ComplexityComplex  Complexity = "complex"
)

// PromptFeatures holds structural features derived once from raw prompt text.
// Values are immutable after extraction.
type PromptFeatures struct {
	Length         int        `json:"length"`
	WordCount      int        `json:"wordCount"`
	HasCodeBlock   bool       `json:"hasCodeBlock"`
	HasURL         bool       `json:"hasUrl"`
	HasFilePath    bool       `json:"hasFilePath"`
	HasQuestion    bool       `json:"hasQuestion"`
	HasExclamation bool       `json:"hasExclamation"`
	Language       Language   `json:"language"`
	Complexity     Complexity `json:"complexity"`
}

// Extract derives features from raw prompt text. It is a pure function: it
// never fails, accepts any string including empty, and runs in O(n).
func Extract(text string) PromptFeatures {
	words := strings.Fields(text)

	f := PromptFeatures{
		Length:         len(text),
		WordCount:      len(words),
		HasCodeBlock:   strings.Contains(text, "```"),
		HasURL:         strings.Contains(text, "http://") || strings.Contains(text, "https://"),
		HasFilePath:    hasFilePath(words),
		HasQuestion:    strings.Contains(text, "?"),
		HasExclamation: strings.Contains(text, "!"),
		Language:       detectLanguage(text),
	}
	f.Complexity = bucketComplexity(f.WordCount, f.HasCodeBlock)

	return f
}

// detectLanguage counts characters per script and labels the dominant one.
// A script must exceed the other by more than 2x to win; otherwise "mixed".
func detectLanguage(text string) Language {
	var hangul, latin int
	for _, r := range text {
		switch {
		case unicode.Is(unicode.Hangul, r):
			hangul++
		case unicode.Is(unicode.Latin, r):
			latin++
		}
	}

	switch {
	case hangul > latin*2:
		return LanguageKorean
	case latin > hangul*2:
		return LanguageEnglish
	default:
		return LanguageMixed
	}
}

func bucketComplexity(wordCount int, hasCodeBlock bool) Complexity {
	if wordCount < 10 && !hasCodeBlock {
		return ComplexitySimple
	}
	if wordCount < 50 || (hasCodeBlock && wordCount < 100) {
		return ComplexityModerate
	}
	return ComplexityComplex
}

// hasFilePath detects path-like tokens (slash-separated with an extension,
// or dotfile/relative prefixes).
func hasFilePath(words []string) bool {
	for _, w := range words {
		w = strings.Trim(w, ".,;:()[]{}\"'`")
		if strings.HasPrefix(w, "./") || strings.HasPrefix(w, "../") || strings.HasPrefix(w, "~/") {
			return true
		}
		if strings.Contains(w, "/") && strings.Contains(w, ".") && !strings.Contains(w, "://") {
			return true
		}
	}
	return false
}
