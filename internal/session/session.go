// Package session carries optional working-context for a prompt: what the
// user is building, with what stack, and what just happened. The analysis
// engine never requires it; it only enriches calibration and rewriting.
package session

import (
	"os"
	"path/filepath"
	"strings"
)

// Context describes the environment a prompt was written in. All fields are
// optional; the zero value means "no session context available".
type Context struct {
	ProjectName  string   `json:"projectName,omitempty"`
	TechStack    []string `json:"techStack,omitempty"`
	CurrentTask  string   `json:"currentTask,omitempty"`
	RecentFiles  []string `json:"recentFiles,omitempty"`
	GitBranch    string   `json:"gitBranch,omitempty"`
	LastExchange string   `json:"lastExchange,omitempty"`
}

// IsEmpty reports whether no context information is present at all.
func (c *Context) IsEmpty() bool {
	if c == nil {
		return true
	}
	return c.ProjectName == "" && len(c.TechStack) == 0 && c.CurrentTask == "" &&
		len(c.RecentFiles) == 0 && c.GitBranch == "" && c.LastExchange == ""
}

// manifestStacks maps well-known manifest files to the stack they imply.
var manifestStacks = map[string]string{
	"go.mod":           "Go",
	"package.json":     "Node.js",
	"tsconfig.json":    "TypeScript",
	"Cargo.toml":       "Rust",
	"pyproject.toml":   "Python",
	"requirements.txt": "Python",
	"pom.xml":          "Java",
	"build.gradle":     "Java",
	"Gemfile":          "Ruby",
	"composer.json":    "PHP",
}

// Detect builds best-effort context from a local directory: project name
// from the directory, tech stack from manifest files, and git branch from
// .git/HEAD. Detection never fails; missing information stays empty.
func Detect(dir string) *Context {
	ctx := &Context{}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return ctx
	}
	ctx.ProjectName = filepath.Base(abs)

	for manifest, stack := range manifestStacks {
		if _, err := os.Stat(filepath.Join(abs, manifest)); err == nil {
			if !contains(ctx.TechStack, stack) {
				ctx.TechStack = append(ctx.TechStack, stack)
			}
		}
	}

	ctx.GitBranch = readGitBranch(abs)

	return ctx
}

// readGitBranch parses .git/HEAD for the checked-out branch name.
func readGitBranch(dir string) string {
	data, err := os.ReadFile(filepath.Join(dir, ".git", "HEAD"))
	if err != nil {
		return ""
	}
	head := strings.TrimSpace(string(data))
	if ref, ok := strings.CutPrefix(head, "ref: refs/heads/"); ok {
		return ref
	}
	return ""
}

func contains(items []string, v string) bool {
	for _, item := range items {
		if item == v {
			return true
		}
	}
	return false
}
