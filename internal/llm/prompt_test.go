package llm

import (
	"net/http"
	"strings"
	"testing"

	"github.com/promptlint/promptlint/internal/session"
)

func TestUserPrompt(t *testing.T) {
	req := RewriteRequest{
		Prompt:       "make the login faster",
		Style:        "balanced",
		Instructions: []string{"State the goal explicitly"},
		Context: &session.Context{
			ProjectName: "shop",
			TechStack:   []string{"Go", "PostgreSQL"},
			GitBranch:   "feat/login",
		},
	}

	out := UserPrompt(req)

	for _, want := range []string{
		"Rewrite style: balanced",
		"State the goal explicitly",
		"Project: shop",
		"Go, PostgreSQL",
		"feat/login",
		"make the login faster",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("UserPrompt missing %q:\n%s", want, out)
		}
	}
}

func TestUserPromptMinimal(t *testing.T) {
	out := UserPrompt(RewriteRequest{Prompt: "fix it"})

	if strings.Contains(out, "Working context") {
		t.Error("empty context should not be rendered")
	}
	if !strings.HasSuffix(out, "fix it") {
		t.Errorf("prompt should come last:\n%s", out)
	}
}

func TestCategorizeStatus(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorCategory
	}{
		{http.StatusUnauthorized, ErrorAuthentication},
		{http.StatusForbidden, ErrorAuthentication},
		{http.StatusTooManyRequests, ErrorRateLimit},
		{http.StatusInternalServerError, ErrorServer},
		{http.StatusBadGateway, ErrorServer},
		{http.StatusBadRequest, ErrorInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			if got := CategorizeStatus(tt.status); got != tt.want {
				t.Errorf("CategorizeStatus(%d) = %v, want %v", tt.status, got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	msg := ErrorAuthentication.Describe("claude", nil)
	if !strings.Contains(msg, "claude") || !strings.Contains(msg, "API key") {
		t.Errorf("Describe = %q", msg)
	}
}
