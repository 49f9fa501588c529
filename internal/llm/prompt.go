package llm

import (
	"fmt"
	"strings"
)

// systemPrompt is the fixed rewrite instruction shared across vendors. It
// describes the rubric and the strict output-JSON contract; adapters send it
// as the system message (or vendor equivalent).
const systemPrompt = `You are a prompt engineering assistant. Improve the user's prompt against the GOLDEN rubric:

- Goal: the desired outcome is stated explicitly
- Output: the expected output format and shape are specified
- Limits: constraints, scope, and exclusions are named
- Data: relevant inputs, examples, or references are included
- Evaluation: success criteria are verifiable
- Next: follow-up expectations are clear

Preserve the user's language (Korean stays Korean, English stays English) and their actual intent. Never invent requirements the user did not imply. Never leave template placeholders like [GOAL] in the rewritten prompt.

Respond with ONLY a JSON object, no other text:
{"rewrittenPrompt": "...", "explanation": "...", "improvements": ["...", "..."]}`

// SystemPrompt returns the shared rewrite system instruction.
func SystemPrompt() string {
	return systemPrompt
}

// UserPrompt renders the rewrite request as the user message: the original
// prompt, the style, the concrete improvement directives, and whatever
// session context is available.
func UserPrompt(req RewriteRequest) string {
	var sb strings.Builder

	if req.Style != "" {
		fmt.Fprintf(&sb, "Rewrite style: %s\n\n", req.Style)
	}

	if len(req.Instructions) > 0 {
		sb.WriteString("Focus on these improvements:\n")
		for _, inst := range req.Instructions {
			fmt.Fprintf(&sb, "- %s\n", inst)
		}
		sb.WriteString("\n")
	}

	if ctx := req.Context; !ctx.IsEmpty() {
		sb.WriteString("Working context:\n")
		if ctx.ProjectName != "" {
			fmt.Fprintf(&sb, "- Project: %s\n", ctx.ProjectName)
		}
		if len(ctx.TechStack) > 0 {
			fmt.Fprintf(&sb, "- Tech stack: %s\n", strings.Join(ctx.TechStack, ", "))
		}
		if ctx.CurrentTask != "" {
			fmt.Fprintf(&sb, "- Current task: %s\n", ctx.CurrentTask)
		}
		if len(ctx.RecentFiles) > 0 {
			fmt.Fprintf(&sb, "- Recent files: %s\n", strings.Join(ctx.RecentFiles, ", "))
		}
		if ctx.GitBranch != "" {
			fmt.Fprintf(&sb, "- Git branch: %s\n", ctx.GitBranch)
		}
		if ctx.LastExchange != "" {
			fmt.Fprintf(&sb, "- Previous exchange: %s\n", ctx.LastExchange)
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "Prompt to rewrite:\n%s", req.Prompt)

	return sb.String()
}
