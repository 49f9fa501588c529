package patterns

import (
	"testing"
)

func TestKeywordTableMatchAsymmetry(t *testing.T) {
	table := newTablePtr([]string{"수정"}, []string{"fix"})

	tests := []struct {
		name string
		text string
		want []string
	}{
		// Korean keywords match as substrings so inflected forms hit.
		{"korean inflected", "이 버그를 수정해주세요", []string{"수정"}},
		{"korean bare", "수정 부탁", []string{"수정"}},
		// English keywords require word boundaries.
		{"english word", "please fix the bug", []string{"fix"}},
		{"english inside longer word", "prefix and suffix handling", nil},
		{"english punctuation boundary", "fix: the login flow", []string{"fix"}},
		{"no match", "아무 관련 없는 텍스트", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Match(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("Match(%q) = %v, want %v", tt.text, got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("Match(%q)[%d] = %q, want %q", tt.text, i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestDefaultTablesComplete(t *testing.T) {
	rs := Default()

	for _, intent := range Intents {
		table := rs.IntentKeywords[intent]
		if table == nil {
			t.Errorf("no keyword table for intent %q", intent)
			continue
		}
		if len(table.Korean) == 0 || len(table.English) == 0 {
			t.Errorf("intent %q table missing a language: ko=%d en=%d",
				intent, len(table.Korean), len(table.English))
		}
	}

	for _, cat := range Categories {
		table := rs.CategoryKeywords[cat]
		if table == nil {
			t.Errorf("no keyword table for category %q", cat)
			continue
		}
		if len(table.Korean) == 0 || len(table.English) == 0 {
			t.Errorf("category %q table missing a language: ko=%d en=%d",
				cat, len(table.Korean), len(table.English))
		}
	}

	for _, dim := range []string{"goal", "output", "limits", "data", "evaluation", "next"} {
		if rs.GoldenIndicators[dim] == nil {
			t.Errorf("no indicator table for dimension %q", dim)
		}
	}
}

func TestDetectAntiPatterns(t *testing.T) {
	rs := Default()

	tests := []struct {
		name    string
		text    string
		wantIDs []string
	}{
		{
			name:    "clean prompt",
			text:    "Add retry logic to the HTTP client in internal/fetch.",
			wantIDs: nil,
		},
		{
			name:    "vague qualifier",
			text:    "adjust the spacing properly",
			wantIDs: []string{"vague-qualifier"},
		},
		{
			name:    "contradiction needs both markers",
			text:    "always validate inputs",
			wantIDs: nil,
		},
		{
			name:    "contradiction fires with both",
			text:    "always use tabs but never use tabs",
			wantIDs: []string{"contradictory-markers"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found := rs.DetectAntiPatterns(tt.text)
			var ids []string
			for _, ap := range found {
				ids = append(ids, ap.ID)
			}
			if len(ids) != len(tt.wantIDs) {
				t.Fatalf("DetectAntiPatterns(%q) = %v, want %v", tt.text, ids, tt.wantIDs)
			}
			for i := range ids {
				if ids[i] != tt.wantIDs[i] {
					t.Errorf("id[%d] = %q, want %q", i, ids[i], tt.wantIDs[i])
				}
			}
		})
	}
}

func TestDetectAntiPatternsEmpty(t *testing.T) {
	if found := Default().DetectAntiPatterns(""); len(found) != 0 {
		t.Errorf("DetectAntiPatterns(\"\") = %v, want none", found)
	}
}
