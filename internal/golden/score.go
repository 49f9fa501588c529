// Package golden implements the six-dimension prompt-quality rubric
// (Goal, Output, Limits, Data, Evaluation, Next): raw scoring, consistency
// validation, and the quality-density length-bias correction.
package golden

// Dimension names, used in violation records and indicator lookups.
const (
	DimGoal       = "goal"
	DimOutput     = "output"
	DimLimits     = "limits"
	DimData       = "data"
	DimEvaluation = "evaluation"
	DimNext       = "next"
)

// Dimensions lists the six rubric dimensions in canonical order.
var Dimensions = []string{DimGoal, DimOutput, DimLimits, DimData, DimEvaluation, DimNext}

// WeakThreshold is the default cutoff below which a dimension is reported
// as needing improvement.
const WeakThreshold = 0.5

// Score holds the six dimension scores in [0,1] plus their arithmetic mean.
// Total must equal the mean of the six dimensions at every observation point;
// any step that changes a dimension recomputes Total before returning.
type Score struct {
	Goal       float64 `json:"goal"`
	Output     float64 `json:"output"`
	Limits     float64 `json:"limits"`
	Data       float64 `json:"data"`
	Evaluation float64 `json:"evaluation"`
	Next       float64 `json:"next"`
	Total      float64 `json:"total"`
}

// New builds a Score from the six dimensions with Total computed.
func New(goal, output, limits, data, evaluation, next float64) Score {
	s := Score{
		Goal:       clamp01(goal),
		Output:     clamp01(output),
		Limits:     clamp01(limits),
		Data:       clamp01(data),
		Evaluation: clamp01(evaluation),
		Next:       clamp01(next),
	}
	s.recomputeTotal()
	return s
}

// Dimension returns the named dimension's value. Unknown names return 0.
func (s Score) Dimension(name string) float64 {
	switch name {
	case DimGoal:
		return s.Goal
	case DimOutput:
		return s.Output
	case DimLimits:
		return s.Limits
	case DimData:
		return s.Data
	case DimEvaluation:
		return s.Evaluation
	case DimNext:
		return s.Next
	}
	return 0
}

func (s *Score) setDimension(name string, v float64) {
	switch name {
	case DimGoal:
		s.Goal = v
	case DimOutput:
		s.Output = v
	case DimLimits:
		s.Limits = v
	case DimData:
		s.Data = v
	case DimEvaluation:
		s.Evaluation = v
	case DimNext:
		s.Next = v
	}
}

func (s *Score) recomputeTotal() {
	s.Total = (s.Goal + s.Output + s.Limits + s.Data + s.Evaluation + s.Next) / 6
}

// WeakDimensions returns the dimensions scoring below the threshold, in
// canonical order.
func (s Score) WeakDimensions(threshold float64) []string {
	var weak []string
	for _, dim := range Dimensions {
		if s.Dimension(dim) < threshold {
			weak = append(weak, dim)
		}
	}
	return weak
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
