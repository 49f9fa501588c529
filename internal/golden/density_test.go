package golden

import (
	"strings"
	"testing"

	"github.com/promptlint/promptlint/internal/patterns"
)

// emptyRules avoids indicator keyword hits so structural counting can be
// asserted exactly.
func emptyRules() *patterns.RuleSet {
	return &patterns.RuleSet{
		GoldenIndicators: map[string]*patterns.KeywordTable{},
	}
}

func TestMeasureDensityEmpty(t *testing.T) {
	d := MeasureDensity("", emptyRules())
	if d != (DensityResult{}) {
		t.Errorf("MeasureDensity(\"\") = %+v, want zero result", d)
	}
}

func TestMeasureDensityStructuralWeights(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantWeighted int
	}{
		{
			name:         "code fence",
			text:         "alpha beta gamma delta epsilon zeta eta theta iota kappa\n```\ncode\n```",
			wantWeighted: 4,
		},
		{
			name:         "heading",
			text:         "# Title\nalpha beta gamma delta epsilon zeta eta theta iota",
			wantWeighted: 2,
		},
		{
			name:         "list items",
			text:         "alpha beta gamma delta epsilon zeta eta\n- one\n- two\n- three",
			wantWeighted: 3,
		},
		{
			name:         "paired tags",
			text:         "alpha beta gamma delta epsilon zeta eta theta <task>do the thing</task>",
			wantWeighted: 3,
		},
		{
			name:         "mismatched tags ignored",
			text:         "alpha beta gamma delta epsilon zeta eta theta <task>do the thing</other>",
			wantWeighted: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := countStructuralMarkers(tt.text); got != tt.wantWeighted {
				t.Errorf("countStructuralMarkers = %d, want %d", got, tt.wantWeighted)
			}
		})
	}
}

func TestMeasureDensityBonusCap(t *testing.T) {
	// Ten words with a code fence: weighted 4 over 1.4 ten-word units gives
	// density 1.0 (capped), bonus capped at 0.10.
	text := "alpha beta gamma delta epsilon zeta eta theta iota kappa\n```\ncode\n```"
	d := MeasureDensity(text, emptyRules())

	if d.Density <= 0 {
		t.Fatalf("Density = %v, want positive", d.Density)
	}
	if d.Bonus > densityBonusCap {
		t.Errorf("Bonus = %v, want capped at %v", d.Bonus, densityBonusCap)
	}
	if d.Penalty != 0 {
		t.Errorf("Penalty = %v, want 0 for short text", d.Penalty)
	}
	if d.Adjustment != d.Bonus {
		t.Errorf("Adjustment = %v, want bonus %v", d.Adjustment, d.Bonus)
	}
}

func TestMeasureDensityVerbosityPenalty(t *testing.T) {
	tests := []struct {
		name        string
		words       int
		wantPenalty float64
	}{
		{"short prose", 150, 0},
		{"mild verbosity", 250, -verbosityMildPen},
		{"harsh verbosity replaces mild", 450, -verbosityHarshPen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := strings.Repeat("filler ", tt.words)
			d := MeasureDensity(text, emptyRules())
			if d.Penalty != tt.wantPenalty {
				t.Errorf("Penalty = %v, want %v", d.Penalty, tt.wantPenalty)
			}
			if d.Adjustment < 0 {
				t.Errorf("Adjustment = %v, want floored at 0", d.Adjustment)
			}
		})
	}
}

func TestMeasureDensityIndicatorHits(t *testing.T) {
	rules := patterns.Default()

	// "goal" and "output" each carry an indicator keyword.
	plain := "please make the thing faster somehow you know"
	marked := "goal: faster responses. output: a benchmark table please now"

	dPlain := MeasureDensity(plain, rules)
	dMarked := MeasureDensity(marked, rules)

	if dMarked.Density <= dPlain.Density {
		t.Errorf("indicator-bearing text density %v, want above plain %v",
			dMarked.Density, dPlain.Density)
	}
}

func TestApplyDensity(t *testing.T) {
	s := New(0.5, 0.5, 0.5, 0.95, 0.5, 0.5)

	adjusted := ApplyDensity(s, DensityResult{Adjustment: 0.1})
	if !almostEqual(adjusted.Goal, 0.6) {
		t.Errorf("Goal = %v, want 0.6", adjusted.Goal)
	}
	if !almostEqual(adjusted.Data, 1.0) {
		t.Errorf("Data = %v, want clamped to 1.0", adjusted.Data)
	}

	mean := (adjusted.Goal + adjusted.Output + adjusted.Limits +
		adjusted.Data + adjusted.Evaluation + adjusted.Next) / 6
	if !almostEqual(adjusted.Total, mean) {
		t.Errorf("Total = %v, want mean %v", adjusted.Total, mean)
	}

	if got := ApplyDensity(s, DensityResult{}); got != s {
		t.Errorf("zero adjustment changed the score: %+v", got)
	}
}
