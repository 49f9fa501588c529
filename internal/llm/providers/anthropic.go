// Package providers implements the vendor adapters behind the llm.Provider
// contract. Each adapter recovers every vendor-specific failure locally and
// reports it as a categorized failure result; nothing is thrown past this
// boundary. Importers register the full set with a blank import.
package providers

import (
	"context"
	"errors"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/promptlint/promptlint/internal/llm"
)

const defaultClaudeModel = string(anthropic.ModelClaude3_5Haiku20241022)

func init() {
	llm.RegisterProvider(&ClaudeProvider{})
}

// ClaudeProvider adapts the Anthropic Messages API.
type ClaudeProvider struct{}

func (p *ClaudeProvider) Name() string {
	return llm.VendorClaude
}

// RewritePrompt sends one rewrite request to the Anthropic API.
func (p *ClaudeProvider) RewritePrompt(ctx context.Context, req llm.RewriteRequest, apiKey, model string) llm.Result {
	if strings.TrimSpace(apiKey) == "" {
		return llm.BlankKeyFailure(p.Name())
	}
	if model == "" {
		model = defaultClaudeModel
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	resp, err := client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: 2048,
		System: []anthropic.TextBlockParam{
			{Text: llm.SystemPrompt()},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(llm.UserPrompt(req))),
		},
	})
	if err != nil {
		return llm.Failure(categorizeAnthropicError(err).Describe(p.Name(), err))
	}

	var reply string
	for _, block := range resp.Content {
		if block.Type == "text" {
			reply += block.Text
		}
	}
	if strings.TrimSpace(reply) == "" {
		return llm.Failure(llm.ErrorInvalidResponse.Describe(p.Name(), nil))
	}

	return llm.ParseReply(reply, req.Prompt)
}

// ValidateKey checks the key against the models endpoint.
func (p *ClaudeProvider) ValidateKey(ctx context.Context, apiKey string) bool {
	if strings.TrimSpace(apiKey) == "" {
		return false
	}
	client := anthropic.NewClient(option.WithAPIKey(apiKey))
	_, err := client.Models.List(ctx, anthropic.ModelListParams{})
	return err == nil
}

func categorizeAnthropicError(err error) llm.ErrorCategory {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return llm.CategorizeStatus(apiErr.StatusCode)
	}
	if llm.IsNetworkError(err) {
		return llm.ErrorNetwork
	}
	return llm.ErrorServer
}
