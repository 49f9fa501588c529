package features

import (
	"strings"
	"testing"
)

func TestExtractEmpty(t *testing.T) {
	f := Extract("")
	if f.Length != 0 || f.WordCount != 0 {
		t.Errorf("Extract(\"\") = %+v, want zero length and word count", f)
	}
	if f.Complexity != ComplexitySimple {
		t.Errorf("Complexity = %v, want %v", f.Complexity, ComplexitySimple)
	}
}

func TestExtractStructural(t *testing.T) {
	tests := []struct {
		name string
		text string
		want PromptFeatures
	}{
		{
			name: "question mark",
			text: "why is this slow?",
			want: PromptFeatures{HasQuestion: true},
		},
		{
			name: "code block",
			text: "fix this:\n```go\nfunc main() {}\n```",
			want: PromptFeatures{HasCodeBlock: true},
		},
		{
			name: "url",
			text: "see https://example.com/docs for details",
			want: PromptFeatures{HasURL: true},
		},
		{
			name: "relative file path",
			text: "edit ./cmd/main.go please",
			want: PromptFeatures{HasFilePath: true},
		},
		{
			name: "path with extension",
			text: "the bug is in internal/server/handler.go somewhere",
			want: PromptFeatures{HasFilePath: true},
		},
		{
			name: "exclamation",
			text: "this is broken!",
			want: PromptFeatures{HasExclamation: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := Extract(tt.text)
			if f.HasQuestion != tt.want.HasQuestion {
				t.Errorf("HasQuestion = %v, want %v", f.HasQuestion, tt.want.HasQuestion)
			}
			if f.HasCodeBlock != tt.want.HasCodeBlock {
				t.Errorf("HasCodeBlock = %v, want %v", f.HasCodeBlock, tt.want.HasCodeBlock)
			}
			if f.HasURL != tt.want.HasURL {
				t.Errorf("HasURL = %v, want %v", f.HasURL, tt.want.HasURL)
			}
			if f.HasFilePath != tt.want.HasFilePath {
				t.Errorf("HasFilePath = %v, want %v", f.HasFilePath, tt.want.HasFilePath)
			}
			if f.HasExclamation != tt.want.HasExclamation {
				t.Errorf("HasExclamation = %v, want %v", f.HasExclamation, tt.want.HasExclamation)
			}
		})
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{"pure korean", "버그를 수정해 주세요", LanguageKorean},
		{"pure english", "fix the login bug please", LanguageEnglish},
		{"korean with term", "이 API 버그 고쳐줘 제발 빨리요", LanguageKorean},
		{"balanced mix", "로그인 bug 수정 fix", LanguageMixed},
		{"no letters", "12345 !!!", LanguageMixed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detectLanguage(tt.text); got != tt.want {
				t.Errorf("detectLanguage(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestBucketComplexity(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Complexity
	}{
		{"short", "fix the bug", ComplexitySimple},
		{"short with code", "fix ```x := 1```", ComplexityModerate},
		{"medium", strings.Repeat("word ", 30), ComplexityModerate},
		{"long", strings.Repeat("word ", 60), ComplexityComplex},
		{"long with code", strings.Repeat("word ", 60) + "\n```\ncode\n```", ComplexityModerate},
		{"very long with code", strings.Repeat("word ", 120) + "\n```\ncode\n```", ComplexityComplex},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(tt.text).Complexity; got != tt.want {
				t.Errorf("Complexity = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractDeterministic(t *testing.T) {
	text := "버그 수정해줘: ./auth/login.go 에서 500 에러가 나요?"
	first := Extract(text)
	for i := 0; i < 5; i++ {
		if got := Extract(text); got != first {
			t.Fatalf("Extract not deterministic: %+v != %+v", got, first)
		}
	}
}
