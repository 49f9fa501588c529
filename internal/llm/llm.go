// Package llm defines the provider contract for external rewrite vendors and
// the priority-ordered fallback orchestration across them. The classification
// and scoring path never touches this package; it is the only part of the
// engine that performs I/O.
package llm

import "github.com/promptlint/promptlint/internal/session"

// Known vendor identifiers. The set of adapters is closed; config entries
// referencing anything else fail at attempt time, not at load time.
const (
	VendorOpenAI     = "openai"
	VendorClaude     = "claude"
	VendorGemini     = "gemini"
	VendorOllama     = "ollama"
	VendorClaudeCode = "claude-code"
)

// ProviderConfig is one configured vendor entry. Created and edited by the
// settings surface; read-only to the engine.
type ProviderConfig struct {
	Vendor   string `yaml:"vendor" json:"vendor"`
	APIKey   string `yaml:"api_key" json:"-"`
	Enabled  bool   `yaml:"enabled" json:"enabled"`
	Primary  bool   `yaml:"primary" json:"primary"`
	Priority int    `yaml:"priority" json:"priority"` // 1 = tried first
	Model    string `yaml:"model,omitempty" json:"model,omitempty"`
}

// RewriteRequest is the vendor-agnostic rewrite instruction.
type RewriteRequest struct {
	// Prompt is the original user prompt to improve.
	Prompt string

	// Style selects the rewrite ambition level
	// ("conservative", "balanced", "comprehensive").
	Style string

	// Instructions are concrete improvement directives derived from the
	// GOLDEN evaluation (e.g. "state the expected output format").
	Instructions []string

	// Context optionally grounds the rewrite in the user's working session.
	Context *session.Context
}

// Result is the normalized outcome of one provider attempt. Ephemeral:
// the engine never persists it.
type Result struct {
	Success         bool     `json:"success"`
	RewrittenPrompt string   `json:"rewrittenPrompt,omitempty"`
	Explanation     string   `json:"explanation,omitempty"`
	Improvements    []string `json:"improvements,omitempty"`
	Error           string   `json:"error,omitempty"`
}

// Failure builds a failed Result with the given user-presentable message.
func Failure(msg string) Result {
	return Result{Error: msg}
}

// ResultWithProvider extends Result with which vendor produced it and
// whether (and why) fallback occurred. This is the unit handed to the UI
// and history collaborators.
type ResultWithProvider struct {
	Result
	Vendor         string `json:"vendor,omitempty"`
	WasFallback    bool   `json:"wasFallback"`
	FallbackReason string `json:"fallbackReason,omitempty"`
}
