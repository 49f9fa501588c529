package golden

import (
	"math"
	"reflect"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewClampsAndComputesTotal(t *testing.T) {
	s := New(1.5, -0.2, 0.5, 0.5, 0.5, 0.5)

	if s.Goal != 1.0 {
		t.Errorf("Goal = %v, want clamped to 1.0", s.Goal)
	}
	if s.Output != 0.0 {
		t.Errorf("Output = %v, want clamped to 0.0", s.Output)
	}

	want := (1.0 + 0.0 + 0.5 + 0.5 + 0.5 + 0.5) / 6
	if !almostEqual(s.Total, want) {
		t.Errorf("Total = %v, want %v", s.Total, want)
	}
}

func TestDimensionLookup(t *testing.T) {
	s := New(0.1, 0.2, 0.3, 0.4, 0.5, 0.6)

	tests := []struct {
		dim  string
		want float64
	}{
		{DimGoal, 0.1},
		{DimOutput, 0.2},
		{DimLimits, 0.3},
		{DimData, 0.4},
		{DimEvaluation, 0.5},
		{DimNext, 0.6},
		{"bogus", 0},
	}

	for _, tt := range tests {
		t.Run(tt.dim, func(t *testing.T) {
			if got := s.Dimension(tt.dim); !almostEqual(got, tt.want) {
				t.Errorf("Dimension(%q) = %v, want %v", tt.dim, got, tt.want)
			}
		})
	}
}

func TestWeakDimensions(t *testing.T) {
	s := New(0.8, 0.2, 0.5, 0.3, 0.9, 0.49)

	got := s.WeakDimensions(0.5)
	want := []string{DimOutput, DimData, DimNext}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WeakDimensions(0.5) = %v, want %v", got, want)
	}

	if got := s.WeakDimensions(0); got != nil {
		t.Errorf("WeakDimensions(0) = %v, want none", got)
	}
}

func TestValidateConsistencyGoalWithoutOutput(t *testing.T) {
	in := New(0.8, 0.2, 0.5, 0.5, 0.5, 0.5)

	adjusted, violations := ValidateConsistency(in)

	if len(violations) != 1 {
		t.Fatalf("violations = %v, want exactly one", violations)
	}
	v := violations[0]
	if v.Rule != "goal-without-output" || v.Dimension != DimGoal {
		t.Errorf("violation = %+v, want goal-without-output on goal", v)
	}
	if !almostEqual(v.Before, 0.8) || !almostEqual(v.After, 0.7) {
		t.Errorf("before/after = %v/%v, want 0.8/0.7", v.Before, v.After)
	}
	if !almostEqual(adjusted.Goal, 0.7) {
		t.Errorf("adjusted.Goal = %v, want 0.7", adjusted.Goal)
	}

	wantTotal := (0.7 + 0.2 + 0.5 + 0.5 + 0.5 + 0.5) / 6
	if !almostEqual(adjusted.Total, wantTotal) {
		t.Errorf("adjusted.Total = %v, want %v recomputed from adjusted dimensions", adjusted.Total, wantTotal)
	}
}

func TestValidateConsistencyNoViolations(t *testing.T) {
	in := New(0.6, 0.6, 0.6, 0.6, 0.4, 0.6)

	adjusted, violations := ValidateConsistency(in)
	if len(violations) != 0 {
		t.Fatalf("violations = %v, want none", violations)
	}
	if adjusted != in {
		t.Errorf("adjusted = %+v, want unchanged %+v", adjusted, in)
	}
}

func TestValidateConsistencyMultipleRulesFire(t *testing.T) {
	// Goal is low while evaluation, limits, and next are high: three
	// independent rules fire against the same input.
	in := New(0.2, 0.5, 0.8, 0.5, 0.6, 0.7)

	adjusted, violations := ValidateConsistency(in)

	fired := make(map[string]bool, len(violations))
	for _, v := range violations {
		fired[v.Rule] = true
	}
	for _, rule := range []string{"evaluation-without-goal", "limits-without-goal", "next-without-goal"} {
		if !fired[rule] {
			t.Errorf("rule %q did not fire; violations = %v", rule, violations)
		}
	}
	if len(violations) != 3 {
		t.Errorf("got %d violations, want 3: %v", len(violations), violations)
	}

	if !almostEqual(adjusted.Evaluation, 0.45) {
		t.Errorf("Evaluation = %v, want 0.45", adjusted.Evaluation)
	}
	if !almostEqual(adjusted.Limits, 0.70) {
		t.Errorf("Limits = %v, want 0.70", adjusted.Limits)
	}
	if !almostEqual(adjusted.Next, 0.55) {
		t.Errorf("Next = %v, want 0.55", adjusted.Next)
	}
}

func TestValidateConsistencyTotalStaysMean(t *testing.T) {
	inputs := []Score{
		New(0.8, 0.1, 0.9, 0.9, 0.9, 0.9),
		New(0.1, 0.9, 0.1, 0.1, 0.9, 0.9),
		New(0, 0, 0, 0, 0, 0),
		New(1, 1, 1, 1, 1, 1),
	}

	for _, in := range inputs {
		adjusted, _ := ValidateConsistency(in)
		mean := (adjusted.Goal + adjusted.Output + adjusted.Limits +
			adjusted.Data + adjusted.Evaluation + adjusted.Next) / 6
		if !almostEqual(adjusted.Total, mean) {
			t.Errorf("Total = %v, want mean %v for %+v", adjusted.Total, mean, adjusted)
		}
	}
}
