package providers

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"github.com/promptlint/promptlint/internal/llm"
)

const defaultGeminiModel = "gemini-2.0-flash"

func init() {
	llm.RegisterProvider(&GeminiProvider{})
}

// GeminiProvider adapts the Google Gemini API via the genai SDK.
type GeminiProvider struct{}

func (p *GeminiProvider) Name() string {
	return llm.VendorGemini
}

// RewritePrompt sends one rewrite request to the Gemini API.
func (p *GeminiProvider) RewritePrompt(ctx context.Context, req llm.RewriteRequest, apiKey, model string) llm.Result {
	if strings.TrimSpace(apiKey) == "" {
		return llm.BlankKeyFailure(p.Name())
	}
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return llm.Failure(llm.ErrorNetwork.Describe(p.Name(), err))
	}

	contents := []*genai.Content{
		genai.NewContentFromText(llm.UserPrompt(req), genai.RoleUser),
	}
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(llm.SystemPrompt(), genai.RoleUser),
	}

	resp, err := client.Models.GenerateContent(ctx, model, contents, cfg)
	if err != nil {
		return llm.Failure(categorizeGeminiError(err).Describe(p.Name(), err))
	}

	reply := resp.Text()
	if strings.TrimSpace(reply) == "" {
		return llm.Failure(llm.ErrorInvalidResponse.Describe(p.Name(), nil))
	}

	return llm.ParseReply(reply, req.Prompt)
}

// ValidateKey checks the key with a minimal generation request.
func (p *GeminiProvider) ValidateKey(ctx context.Context, apiKey string) bool {
	if strings.TrimSpace(apiKey) == "" {
		return false
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return false
	}
	contents := []*genai.Content{genai.NewContentFromText("ping", genai.RoleUser)}
	_, err = client.Models.GenerateContent(ctx, defaultGeminiModel, contents, nil)
	return err == nil
}

func categorizeGeminiError(err error) llm.ErrorCategory {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return llm.CategorizeStatus(apiErr.Code)
	}
	if llm.IsNetworkError(err) {
		return llm.ErrorNetwork
	}
	return llm.ErrorServer
}
