package patterns

import "strings"

// AntiPatternSeverity weights how much a detected flaw should reduce rewrite
// confidence.
type AntiPatternSeverity string

const (
	SeverityHigh   AntiPatternSeverity = "high"
	SeverityMedium AntiPatternSeverity = "medium"
	SeverityLow    AntiPatternSeverity = "low"
)

// AntiPatternRule describes one structural or content flaw to detect.
type AntiPatternRule struct {
	ID       string
	Severity AntiPatternSeverity
	Message  string

	// Markers trigger the rule when any keyword matches.
	Markers KeywordTable

	// RequireAll, when non-empty, additionally requires a match from every
	// listed table (used for contradiction-style pairs).
	RequireAll []KeywordTable
}

// AntiPattern is one detected flaw in a prompt.
type AntiPattern struct {
	ID       string              `json:"id"`
	Severity AntiPatternSeverity `json:"severity"`
	Message  string              `json:"message"`
	Matched  string              `json:"matched,omitempty"`
}

// DetectAntiPatterns scans text against the rule set's anti-pattern table.
// Pure and total: empty text simply yields no findings.
func (rs *RuleSet) DetectAntiPatterns(text string) []AntiPattern {
	lower := strings.ToLower(text)

	var found []AntiPattern
	for _, rule := range rs.AntiPatterns {
		matched := rule.Markers.Match(lower)
		if len(matched) == 0 {
			continue
		}
		if !allTablesMatch(lower, rule.RequireAll) {
			continue
		}
		found = append(found, AntiPattern{
			ID:       rule.ID,
			Severity: rule.Severity,
			Message:  rule.Message,
			Matched:  matched[0],
		})
	}
	return found
}

func allTablesMatch(lower string, tables []KeywordTable) bool {
	for i := range tables {
		if len(tables[i].Match(lower)) == 0 {
			return false
		}
	}
	return true
}

func defaultAntiPatterns() []AntiPatternRule {
	return []AntiPatternRule{
		{
			ID:       "do-everything",
			Severity: SeverityHigh,
			Message:  "Prompt delegates the entire decision (\"just do everything\") with no direction",
			Markers:  newTable([]string{"알아서 다", "알아서 해", "전부 다 해", "다 해줘"}, []string{"do everything", "handle everything", "whatever you think"}),
		},
		{
			ID:       "vague-qualifier",
			Severity: SeverityLow,
			Message:  "Vague qualifier without concrete criteria",
			Markers:  newTable([]string{"적절히", "적당히", "알맞게", "잘 좀"}, []string{"appropriate", "properly", "as needed", "when necessary", "nicely"}),
		},
		{
			ID:       "incomplete-list",
			Severity: SeverityLow,
			Message:  "Trailing open-ended list; the model must guess the missing items",
			Markers:  newTable([]string{"등등", "기타 등"}, []string{"etc", "and so on", "and more"}),
		},
		{
			ID:       "contradictory-markers",
			Severity: SeverityMedium,
			Message:  "Contains both absolute-positive and absolute-negative directives",
			Markers:  newTable([]string{"항상"}, []string{"always"}),
			RequireAll: []KeywordTable{
				newTable([]string{"절대"}, []string{"never"}),
			},
		},
		{
			ID:       "multiple-asks",
			Severity: SeverityMedium,
			Message:  "Several unrelated requests bundled into one prompt",
			Markers:  newTable([]string{"그리고 또", "하는 김에", "추가로 또"}, []string{"also do", "while you're at it", "and additionally"}),
		},
	}
}
