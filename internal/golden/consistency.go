package golden

// Violation records one triggered consistency rule: which dimension it
// penalized and the value before and after. Violations are side-information;
// they never block a score from being returned.
type Violation struct {
	Rule      string  `json:"rule"`
	Dimension string  `json:"dimension"`
	Before    float64 `json:"before"`
	After     float64 `json:"after"`
}

// consistencyRule penalizes a dimension when a logically incoherent
// combination of two dimensions is observed.
type consistencyRule struct {
	id        string
	condition func(Score) bool
	dimension string
	penalty   float64
}

// consistencyRules is the fixed rule table. Rules are not mutually exclusive:
// every applicable rule fires, and penalties targeting the same dimension
// compound. Each dimension is floored at zero after its own penalty.
var consistencyRules = []consistencyRule{
	{
		// A clearly stated goal with no expected output usually means the
		// goal statement is aspirational rather than actionable.
		id:        "goal-without-output",
		condition: func(s Score) bool { return s.Goal > 0.7 && s.Output < 0.3 },
		dimension: DimGoal,
		penalty:   0.10,
	},
	{
		id:        "evaluation-without-goal",
		condition: func(s Score) bool { return s.Evaluation > 0.5 && s.Goal < 0.4 },
		dimension: DimEvaluation,
		penalty:   0.15,
	},
	{
		id:        "limits-without-goal",
		condition: func(s Score) bool { return s.Limits > 0.7 && s.Goal < 0.3 },
		dimension: DimLimits,
		penalty:   0.10,
	},
	{
		id:        "data-without-output",
		condition: func(s Score) bool { return s.Data > 0.7 && s.Output < 0.2 },
		dimension: DimData,
		penalty:   0.10,
	},
	{
		id:        "next-without-goal",
		condition: func(s Score) bool { return s.Next > 0.6 && s.Goal < 0.3 },
		dimension: DimNext,
		penalty:   0.15,
	},
	{
		id:        "output-without-data",
		condition: func(s Score) bool { return s.Output > 0.8 && s.Data < 0.2 },
		dimension: DimOutput,
		penalty:   0.05,
	},
}

// ValidateConsistency checks the raw scores for logically incoherent
// dimension combinations and penalizes them. Conditions are evaluated against
// the input scores, so rule order does not affect which rules fire. If any
// rule fired, Total is recomputed from the adjusted dimensions.
func ValidateConsistency(s Score) (Score, []Violation) {
	adjusted := s
	var violations []Violation

	for _, rule := range consistencyRules {
		if !rule.condition(s) {
			continue
		}

		before := adjusted.Dimension(rule.dimension)
		after := before - rule.penalty
		if after < 0 {
			after = 0
		}
		adjusted.setDimension(rule.dimension, after)

		violations = append(violations, Violation{
			Rule:      rule.id,
			Dimension: rule.dimension,
			Before:    before,
			After:     after,
		})
	}

	if len(violations) > 0 {
		adjusted.recomputeTotal()
	}

	return adjusted, violations
}
