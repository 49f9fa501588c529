package llm

import (
	"encoding/json"
	"regexp"
	"strings"
)

// genericExplanation is used when a vendor reply carried no structured
// explanation of its own.
const genericExplanation = "Rewritten for clarity against the GOLDEN rubric."

// placeholderExplanation overrides the explanation when unresolved template
// placeholders had to be removed.
const placeholderExplanation = "The provider left unresolved placeholders in its rewrite; they were removed and the original prompt was kept where nothing usable remained."

// placeholderPattern matches bracketed filler tokens such as
// "[YOUR GOAL HERE]" or "[프로젝트명]" that a vendor failed to substitute.
var placeholderPattern = regexp.MustCompile(`\[[^\[\]\n]{1,80}\]`)

// multiSpacePattern collapses whitespace runs left behind by stripping.
var multiSpacePattern = regexp.MustCompile(`[ \t]{2,}`)

// rewritePayload is the strict output-JSON contract every vendor is
// instructed to follow.
type rewritePayload struct {
	RewrittenPrompt string   `json:"rewrittenPrompt"`
	Explanation     string   `json:"explanation"`
	Improvements    []string `json:"improvements"`
}

// ParseReply normalizes a raw vendor reply into a successful Result.
// If the reply embeds a JSON object it is extracted and decoded; otherwise
// the entire trimmed reply is treated as the rewritten prompt with a generic
// explanation. Unresolved bracketed placeholders are stripped afterwards;
// when stripping leaves nothing usable the original prompt is returned with
// the explanation overridden to say so.
func ParseReply(reply, originalPrompt string) Result {
	res := Result{
		Success:         true,
		RewrittenPrompt: strings.TrimSpace(reply),
		Explanation:     genericExplanation,
	}

	if raw := ExtractJSON(reply); raw != "" {
		var payload rewritePayload
		if err := json.Unmarshal([]byte(raw), &payload); err == nil && strings.TrimSpace(payload.RewrittenPrompt) != "" {
			res.RewrittenPrompt = strings.TrimSpace(payload.RewrittenPrompt)
			res.Improvements = payload.Improvements
			if strings.TrimSpace(payload.Explanation) != "" {
				res.Explanation = strings.TrimSpace(payload.Explanation)
			}
		}
	}

	if placeholderPattern.MatchString(res.RewrittenPrompt) {
		stripped := StripPlaceholders(res.RewrittenPrompt)
		if stripped == "" {
			res.RewrittenPrompt = originalPrompt
		} else {
			res.RewrittenPrompt = stripped
		}
		res.Explanation = placeholderExplanation
	}

	return res
}

// StripPlaceholders removes bracketed filler tokens and tidies the
// whitespace they leave behind.
func StripPlaceholders(s string) string {
	s = placeholderPattern.ReplaceAllString(s, "")
	s = multiSpacePattern.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

// ExtractJSON pulls an embedded JSON object out of a vendor reply that may
// wrap it in markdown fences or prose. Falls back to the greedy
// brace-matched substring (first '{' to last '}').
func ExtractJSON(s string) string {
	s = strings.TrimSpace(s)

	if strings.HasPrefix(s, "{") && strings.HasSuffix(s, "}") {
		return s
	}

	if idx := strings.Index(s, "```json"); idx != -1 {
		start := idx + 7
		if end := strings.Index(s[start:], "```"); end != -1 {
			return strings.TrimSpace(s[start : start+end])
		}
	}

	if idx := strings.Index(s, "```"); idx != -1 {
		start := idx + 3
		if nlIdx := strings.Index(s[start:], "\n"); nlIdx != -1 {
			start += nlIdx + 1
		}
		if end := strings.Index(s[start:], "```"); end != -1 {
			candidate := strings.TrimSpace(s[start : start+end])
			if strings.HasPrefix(candidate, "{") {
				return candidate
			}
		}
	}

	if start := strings.Index(s, "{"); start != -1 {
		if end := strings.LastIndex(s, "}"); end > start {
			return s[start : end+1]
		}
	}

	return ""
}
