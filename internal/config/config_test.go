package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParse(t *testing.T) {
	data := []byte(`
providers:
  - vendor: claude
    enabled: true
    primary: true
    priority: 1
    model: claude-3-5-haiku-20241022
    api_key: sk-ant-test
  - vendor: openai
    enabled: false
    priority: 2
    api_key: sk-oa-test
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(cfg.Providers) != 2 {
		t.Fatalf("got %d providers, want 2", len(cfg.Providers))
	}

	claude := cfg.Providers[0]
	if claude.Vendor != "claude" || !claude.Enabled || !claude.Primary || claude.Priority != 1 {
		t.Errorf("claude config = %+v", claude)
	}
	if claude.Model != "claude-3-5-haiku-20241022" {
		t.Errorf("Model = %q", claude.Model)
	}
	if claude.APIKey != "sk-ant-test" {
		t.Errorf("APIKey = %q", claude.APIKey)
	}

	if cfg.Providers[1].Enabled {
		t.Error("openai should be disabled")
	}
}

func TestParseExpandsEnv(t *testing.T) {
	t.Setenv("PROMPTLINT_TEST_KEY", "sk-from-env")

	data := []byte(`
providers:
  - vendor: openai
    enabled: true
    api_key: ${PROMPTLINT_TEST_KEY}
`)

	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cfg.Providers[0].APIKey != "sk-from-env" {
		t.Errorf("APIKey = %q, want expanded env value", cfg.Providers[0].APIKey)
	}
}

func TestParseInvalid(t *testing.T) {
	if _, err := Parse([]byte("providers: [unclosed")); err == nil {
		t.Error("expected error for invalid YAML")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing explicit file")
	}
}

func TestLoadDefaultExplicit(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "providers:\n  - vendor: ollama\n    enabled: true\n    api_key: local\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := LoadDefault(path)
	if err != nil {
		t.Fatalf("LoadDefault failed: %v", err)
	}
	if len(cfg.Providers) != 1 || cfg.Providers[0].Vendor != "ollama" {
		t.Errorf("config = %+v", cfg)
	}
}

func TestLoadDefaultExplicitMissing(t *testing.T) {
	if _, err := LoadDefault(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("explicit path that does not exist should error")
	}
}
