package providers

import (
	"context"
	"errors"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/promptlint/promptlint/internal/llm"
)

const defaultOpenAIModel = openai.GPT4oMini

func init() {
	llm.RegisterProvider(&OpenAIProvider{})
}

// OpenAIProvider adapts the OpenAI chat completions API.
type OpenAIProvider struct{}

func (p *OpenAIProvider) Name() string {
	return llm.VendorOpenAI
}

// RewritePrompt sends one rewrite request to the OpenAI API.
func (p *OpenAIProvider) RewritePrompt(ctx context.Context, req llm.RewriteRequest, apiKey, model string) llm.Result {
	if strings.TrimSpace(apiKey) == "" {
		return llm.BlankKeyFailure(p.Name())
	}
	if model == "" {
		model = defaultOpenAIModel
	}

	client := openai.NewClient(apiKey)

	resp, err := client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: llm.SystemPrompt()},
			{Role: openai.ChatMessageRoleUser, Content: llm.UserPrompt(req)},
		},
	})
	if err != nil {
		return llm.Failure(categorizeOpenAIError(err).Describe(p.Name(), err))
	}

	if len(resp.Choices) == 0 || strings.TrimSpace(resp.Choices[0].Message.Content) == "" {
		return llm.Failure(llm.ErrorInvalidResponse.Describe(p.Name(), nil))
	}

	return llm.ParseReply(resp.Choices[0].Message.Content, req.Prompt)
}

// ValidateKey checks the key against the models endpoint.
func (p *OpenAIProvider) ValidateKey(ctx context.Context, apiKey string) bool {
	if strings.TrimSpace(apiKey) == "" {
		return false
	}
	client := openai.NewClient(apiKey)
	_, err := client.ListModels(ctx)
	return err == nil
}

func categorizeOpenAIError(err error) llm.ErrorCategory {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return llm.CategorizeStatus(apiErr.HTTPStatusCode)
	}
	if llm.IsNetworkError(err) {
		return llm.ErrorNetwork
	}
	return llm.ErrorServer
}
