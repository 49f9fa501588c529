package session

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		ctx  *Context
		want bool
	}{
		{"nil", nil, true},
		{"zero value", &Context{}, true},
		{"project name", &Context{ProjectName: "shop"}, false},
		{"branch only", &Context{GitBranch: "main"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ctx.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()

	files := map[string]string{
		"go.mod":   "module example.com/shop\n",
		"Gemfile":  "source 'https://rubygems.org'\n",
		".git/HEAD": "ref: refs/heads/feat/payments\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}

	ctx := Detect(dir)

	if ctx.ProjectName != filepath.Base(dir) {
		t.Errorf("ProjectName = %q, want %q", ctx.ProjectName, filepath.Base(dir))
	}
	if len(ctx.TechStack) != 2 {
		t.Fatalf("TechStack = %v, want Go and Ruby", ctx.TechStack)
	}
	stacks := map[string]bool{}
	for _, s := range ctx.TechStack {
		stacks[s] = true
	}
	if !stacks["Go"] || !stacks["Ruby"] {
		t.Errorf("TechStack = %v, want Go and Ruby", ctx.TechStack)
	}
	if ctx.GitBranch != "feat/payments" {
		t.Errorf("GitBranch = %q, want feat/payments", ctx.GitBranch)
	}
}

func TestDetectEmptyDir(t *testing.T) {
	ctx := Detect(t.TempDir())

	if len(ctx.TechStack) != 0 {
		t.Errorf("TechStack = %v, want empty", ctx.TechStack)
	}
	if ctx.GitBranch != "" {
		t.Errorf("GitBranch = %q, want empty", ctx.GitBranch)
	}
	if ctx.IsEmpty() {
		t.Error("IsEmpty() = true: the project name alone should count as context")
	}
}

func TestDetectDetachedHead(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".git"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".git", "HEAD"),
		[]byte("3f2a91c8d0e1\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if got := Detect(dir).GitBranch; got != "" {
		t.Errorf("GitBranch = %q, want empty for detached HEAD", got)
	}
}
