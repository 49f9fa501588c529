package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/promptlint/promptlint/internal/llm"
)

const (
	defaultOllamaBaseURL = "http://localhost:11434/v1"
	defaultOllamaModel   = "llama3.1"
)

// maxOllamaResponse bounds the response body read.
const maxOllamaResponse = 4 * 1024 * 1024

func init() {
	llm.RegisterProvider(&OllamaProvider{})
}

// OllamaProvider adapts a local Ollama server through its OpenAI-compatible
// chat completions endpoint. The key is not sent anywhere meaningful, but
// the uniform contract still requires a non-blank value ("local" by
// convention) so a disabled-looking entry never reaches the network.
type OllamaProvider struct {
	// BaseURL overrides the server address; empty uses the local default.
	BaseURL string

	httpClient *http.Client
}

func (p *OllamaProvider) Name() string {
	return llm.VendorOllama
}

type ollamaChatRequest struct {
	Model    string              `json:"model"`
	Messages []ollamaChatMessage `json:"messages"`
}

type ollamaChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ollamaChatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
		FinishReason string `json:"finish_reason"`
	} `json:"choices"`
}

// RewritePrompt sends one rewrite request to the local server.
func (p *OllamaProvider) RewritePrompt(ctx context.Context, req llm.RewriteRequest, apiKey, model string) llm.Result {
	if strings.TrimSpace(apiKey) == "" {
		return llm.BlankKeyFailure(p.Name())
	}
	if model == "" {
		model = defaultOllamaModel
	}

	body, err := json.Marshal(ollamaChatRequest{
		Model: model,
		Messages: []ollamaChatMessage{
			{Role: "system", Content: llm.SystemPrompt()},
			{Role: "user", Content: llm.UserPrompt(req)},
		},
	})
	if err != nil {
		return llm.Failure(llm.ErrorInvalidResponse.Describe(p.Name(), err))
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.chatURL(), bytes.NewReader(body))
	if err != nil {
		return llm.Failure(llm.ErrorNetwork.Describe(p.Name(), err))
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client().Do(httpReq)
	if err != nil {
		return llm.Failure(llm.ErrorNetwork.Describe(p.Name(), err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return llm.Failure(llm.CategorizeStatus(resp.StatusCode).Describe(p.Name(), fmt.Errorf("status %d", resp.StatusCode)))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxOllamaResponse))
	if err != nil {
		return llm.Failure(llm.ErrorNetwork.Describe(p.Name(), err))
	}

	var parsed ollamaChatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return llm.Failure(llm.ErrorInvalidResponse.Describe(p.Name(), err))
	}
	if len(parsed.Choices) == 0 || strings.TrimSpace(parsed.Choices[0].Message.Content) == "" {
		return llm.Failure(llm.ErrorInvalidResponse.Describe(p.Name(), nil))
	}

	return llm.ParseReply(parsed.Choices[0].Message.Content, req.Prompt)
}

// ValidateKey checks that the server is reachable.
func (p *OllamaProvider) ValidateKey(ctx context.Context, apiKey string) bool {
	if strings.TrimSpace(apiKey) == "" {
		return false
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL()+"/models", nil)
	if err != nil {
		return false
	}
	resp, err := p.client().Do(httpReq)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

func (p *OllamaProvider) baseURL() string {
	base := p.BaseURL
	if base == "" {
		base = defaultOllamaBaseURL
	}
	return strings.TrimSuffix(base, "/")
}

func (p *OllamaProvider) chatURL() string {
	return p.baseURL() + "/chat/completions"
}

func (p *OllamaProvider) client() *http.Client {
	if p.httpClient != nil {
		return p.httpClient
	}
	return &http.Client{Timeout: 120 * time.Second}
}
