package reporter

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/promptlint/promptlint/internal/engine"
	"github.com/promptlint/promptlint/internal/llm"
	"github.com/promptlint/promptlint/internal/rewrite"
)

func sampleAnalysis(t *testing.T) *engine.Analysis {
	t.Helper()
	return engine.New(nil).Analyze("로그인 버그 고쳐줘, 자꾸 죽어", nil)
}

func TestJSONReporterAnalysis(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)

	if err := r.ReportAnalysis(sampleAnalysis(t)); err != nil {
		t.Fatalf("ReportAnalysis failed: %v", err)
	}

	var out map[string]any
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	if _, ok := out["analysis"]; !ok {
		t.Error("missing analysis key")
	}
	if _, ok := out["weakDimensions"]; !ok {
		t.Error("missing weakDimensions key")
	}
}

func TestJSONReporterRewrite(t *testing.T) {
	var buf bytes.Buffer
	r := NewJSONReporter(&buf)

	v := rewrite.Variant{Style: rewrite.StyleBalanced, TargetDimensions: []string{"goal"}, Confidence: 0.7}
	res := llm.ResultWithProvider{
		Result: llm.Result{Success: true, RewrittenPrompt: "better"},
		Vendor: "claude",
	}

	if err := r.ReportRewrite(v, res); err != nil {
		t.Fatalf("ReportRewrite failed: %v", err)
	}

	var out struct {
		Style  string `json:"style"`
		Result struct {
			Success bool   `json:"success"`
			Vendor  string `json:"vendor"`
		} `json:"result"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if out.Style != "balanced" || !out.Result.Success || out.Result.Vendor != "claude" {
		t.Errorf("output = %+v", out)
	}
}

func TestTerminalReporterAnalysis(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf, nil)

	if err := r.ReportAnalysis(sampleAnalysis(t)); err != nil {
		t.Fatalf("ReportAnalysis failed: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Classification", "GOLDEN Score", "bug-fix", "total"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestTerminalReporterRewriteFailure(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf, nil)

	err := r.ReportRewrite(rewrite.Variant{Style: rewrite.StyleBalanced},
		llm.ResultWithProvider{Result: llm.Failure("claude down")})
	if err == nil {
		t.Fatal("expected error for failed rewrite")
	}
	if !strings.Contains(buf.String(), "claude down") {
		t.Errorf("output missing failure reason:\n%s", buf.String())
	}
}

func TestTerminalReporterRewriteFallbackNote(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminalReporter(&buf, nil)

	res := llm.ResultWithProvider{
		Result:         llm.Result{Success: true, RewrittenPrompt: "better"},
		Vendor:         "openai",
		WasFallback:    true,
		FallbackReason: "claude authentication failed",
	}
	if err := r.ReportRewrite(rewrite.Variant{Style: rewrite.StyleBalanced}, res); err != nil {
		t.Fatalf("ReportRewrite failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "openai") || !strings.Contains(out, "fallback") {
		t.Errorf("output missing fallback note:\n%s", out)
	}
}
