package providers

import (
	"context"
	"errors"
	"strings"

	claudecode "github.com/severity1/claude-agent-sdk-go"

	"github.com/promptlint/promptlint/internal/llm"
)

func init() {
	llm.RegisterProvider(&ClaudeCodeProvider{})
}

// ClaudeCodeProvider drives the locally installed Claude Code CLI instead of
// a remote API. Authentication belongs to the CLI, so the configured key is
// only a non-blank marker ("cli" by convention) satisfying the uniform
// contract.
type ClaudeCodeProvider struct{}

func (p *ClaudeCodeProvider) Name() string {
	return llm.VendorClaudeCode
}

// RewritePrompt runs one rewrite query through the Claude Code CLI.
func (p *ClaudeCodeProvider) RewritePrompt(ctx context.Context, req llm.RewriteRequest, apiKey, model string) llm.Result {
	if strings.TrimSpace(apiKey) == "" {
		return llm.BlankKeyFailure(p.Name())
	}
	if model == "" {
		model = "sonnet"
	}

	// The CLI has no separate system-message channel here; prepend the
	// rubric instruction to the query.
	query := llm.SystemPrompt() + "\n\n" + llm.UserPrompt(req)

	iterator, err := claudecode.Query(ctx, query,
		claudecode.WithModel(model),
		claudecode.WithMaxTurns(1),
	)
	if err != nil {
		if claudecode.IsCLINotFoundError(err) {
			return llm.Failure("claude-code CLI not found: install Claude Code to use this provider")
		}
		return llm.Failure(llm.ErrorNetwork.Describe(p.Name(), err))
	}
	defer iterator.Close()

	var sb strings.Builder
	for {
		message, err := iterator.Next(ctx)
		if err != nil {
			if errors.Is(err, claudecode.ErrNoMoreMessages) {
				break
			}
			return llm.Failure(llm.ErrorServer.Describe(p.Name(), err))
		}

		if assistantMsg, ok := message.(*claudecode.AssistantMessage); ok {
			for _, block := range assistantMsg.Content {
				if textBlock, ok := block.(*claudecode.TextBlock); ok {
					sb.WriteString(textBlock.Text)
				}
			}
		}
	}

	reply := sb.String()
	if strings.TrimSpace(reply) == "" {
		return llm.Failure(llm.ErrorInvalidResponse.Describe(p.Name(), nil))
	}

	return llm.ParseReply(reply, req.Prompt)
}

// ValidateKey reports whether the Claude Code CLI is available locally.
func (p *ClaudeCodeProvider) ValidateKey(ctx context.Context, apiKey string) bool {
	if strings.TrimSpace(apiKey) == "" {
		return false
	}
	iterator, err := claudecode.Query(ctx, "ping",
		claudecode.WithModel("sonnet"),
		claudecode.WithMaxTurns(1),
	)
	if err != nil {
		return false
	}
	iterator.Close()
	return true
}
